package solve

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/equipsize/internal/domain"
)

func TestFixedPoint_Converges(t *testing.T) {
	// x = cos(x) has a single attracting fixed point near 0.739085.
	x, n, err := FixedPoint(math.Cos, 1, Options{Tolerance: 1e-12, MaxIterations: 500})
	require.NoError(t, err)
	assert.InDelta(t, 0.7390851332151607, x, 1e-10)
	assert.Greater(t, n, 1)
}

func TestFixedPoint_ReturnsLatestIterate(t *testing.T) {
	// Halving from 1 with a 60% tolerance stops at the first step: the
	// relative change (1 - 0.5) / 1 = 0.5 is within bounds and 0.5 is returned.
	x, n, err := FixedPoint(func(x float64) float64 { return x / 2 }, 1, Options{Tolerance: 0.6, MaxIterations: 10})
	require.NoError(t, err)
	assert.Equal(t, 0.5, x)
	assert.Equal(t, 1, n)
}

func TestFixedPoint_DefaultsApplied(t *testing.T) {
	x, _, err := FixedPoint(func(x float64) float64 { return 0.5*x + 1 }, 0.25, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 2, x, 0.01)
}

func TestFixedPoint_Errors(t *testing.T) {
	tests := []struct {
		name   string
		f      func(float64) float64
		x0     float64
		opts   Options
		reason string
	}{
		{
			name:   "divergent sequence hits the bound",
			f:      func(x float64) float64 { return 2 * x },
			x0:     1,
			opts:   Options{Tolerance: 1e-6, MaxIterations: 20},
			reason: "iteration bound exceeded",
		},
		{
			name:   "oscillation hits the bound",
			f:      func(x float64) float64 { return -x },
			x0:     1,
			opts:   Options{Tolerance: 1e-6, MaxIterations: 50},
			reason: "iteration bound exceeded",
		},
		{
			name:   "infinite iterate",
			f:      func(x float64) float64 { return x / 0 },
			x0:     1,
			opts:   DefaultOptions(),
			reason: "non-finite iterate",
		},
		{
			name:   "nan iterate",
			f:      func(x float64) float64 { return math.NaN() },
			x0:     1,
			opts:   DefaultOptions(),
			reason: "non-finite iterate",
		},
		{
			name:   "zero start",
			f:      func(x float64) float64 { return x + 1 },
			x0:     0,
			opts:   DefaultOptions(),
			reason: "zero iterate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := FixedPoint(tt.f, tt.x0, tt.opts)
			require.ErrorIs(t, err, domain.ErrNonConvergence)

			var iterErr *IterationError
			require.True(t, errors.As(err, &iterErr))
			assert.Equal(t, tt.reason, iterErr.Reason)
		})
	}
}
