package exchanger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/equipsize/internal/domain"
)

func TestEstimateTubeCount(t *testing.T) {
	tests := []struct {
		name string
		in   TubeCountInput
		want int
	}{
		{name: "typical bundle", in: TubeCountInput{Area: 50, TubeOD: 0.025, Length: 5, MaxTubes: 500}, want: 128},
		{name: "no area needs no tubes", in: TubeCountInput{Area: 0, TubeOD: 0.025, Length: 5, MaxTubes: 500}, want: 0},
		{name: "exactly one tube is never raised", in: TubeCountInput{Area: 0.3, TubeOD: 0.025, Length: 5, MaxTubes: 500}, want: 1},
		{name: "small count raised to minimum", in: TubeCountInput{Area: 1, TubeOD: 0.025, Length: 5, MaxTubes: 500}, want: 20},
		{name: "custom minimum", in: TubeCountInput{Area: 1, TubeOD: 0.025, Length: 5, MaxTubes: 500, MinTubes: 8}, want: 8},
		{name: "fractional count rounds up to minimum", in: TubeCountInput{Area: 19.5 * math.Pi * 0.025 * 5, TubeOD: 0.025, Length: 5, MaxTubes: 500}, want: 20},
		{name: "exceeds maximum", in: TubeCountInput{Area: 500, TubeOD: 0.025, Length: 5, MaxTubes: 500}, want: Infeasible},
		{name: "raised minimum exceeds maximum", in: TubeCountInput{Area: 1, TubeOD: 0.025, Length: 5, MaxTubes: 10}, want: Infeasible},
		{name: "count equal to maximum allowed", in: TubeCountInput{Area: 50, TubeOD: 0.025, Length: 5, MaxTubes: 128}, want: 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTubeCount(tt.in))
		})
	}
}

func TestBaffleSpacing(t *testing.T) {
	tests := []struct {
		name        string
		diameter    float64
		cut         float64
		wantCount   int
		wantSpacing float64
	}{
		{name: "zero diameter", diameter: 0, cut: 25, wantCount: 0, wantSpacing: 0},
		{name: "small shell needs no baffle", diameter: 0.3, cut: 25, wantCount: 0, wantSpacing: 0},
		{name: "half rounds down to even", diameter: 0.45, cut: 25, wantCount: 0, wantSpacing: 0},
		{name: "one and a half rounds up to even", diameter: 1.35, cut: 25, wantCount: 2, wantSpacing: 0.6000000000000001},
		{name: "two metre shell", diameter: 2.0, cut: 25, wantCount: 2, wantSpacing: 0.8888888888888888},
		{name: "negative diameter floored", diameter: -3, cut: 25, wantCount: 0, wantSpacing: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, spacing := BaffleSpacing(tt.diameter, tt.cut)
			assert.Equal(t, tt.wantCount, count)
			assert.InDelta(t, tt.wantSpacing, spacing, 1e-12)
		})
	}
}

func TestShellDiameter(t *testing.T) {
	tests := []struct {
		name string
		in   ShellInput
		want float64
	}{
		{name: "triangular", in: ShellInput{TubeCount: 128, TubeOD: 0.025, Pitch: PitchTriangular}, want: 0.22819498438961952},
		{name: "square", in: ShellInput{TubeCount: 128, TubeOD: 0.025, Pitch: PitchSquare}, want: 0.2593124822609313},
		{name: "floored at default minimum", in: ShellInput{TubeCount: 10, TubeOD: 0.02, Pitch: PitchTriangular}, want: DefaultMinShellDiameter},
		{name: "floored at custom minimum", in: ShellInput{TubeCount: 128, TubeOD: 0.025, Pitch: PitchSquare, MinShellDiameter: 0.5}, want: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShellDiameter(tt.in)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-12)
		})
	}
}

func TestShellDiameter_InvalidPitch(t *testing.T) {
	for _, p := range []Pitch{"", "x", "hexagonal", "T"} {
		_, err := ShellDiameter(ShellInput{TubeCount: 10, TubeOD: 0.02, Pitch: p})
		require.ErrorIs(t, err, domain.ErrInvalidArgument, "pitch %q", p)
	}
}

func TestParsePitch(t *testing.T) {
	for in, want := range map[string]Pitch{
		"t":          PitchTriangular,
		"Triangular": PitchTriangular,
		" s ":        PitchSquare,
		"square":     PitchSquare,
	} {
		got, err := ParsePitch(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePitch("rotated-square")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	assert.Equal(t, "triangular", PitchTriangular.String())
	assert.Equal(t, "square", PitchSquare.String())
}

func TestWeight_BaffleCountedTwice(t *testing.T) {
	got := Weight(WeightInput{
		ShellDiameter: 0.6,
		TubeLength:    5,
		TubeOD:        0.025,
		TubeCount:     128,
		BaffleSpacing: 0.4,
	})

	assert.InEpsilon(t, 1992.2424389057282, got.Total, 1e-9)
	assert.InEpsilon(t, 1074.8270970816047, got.Shell, 1e-9)
	assert.InEpsilon(t, 762.3032149868444, got.Tube, 1e-9)

	noBaffles := Weight(WeightInput{ShellDiameter: 0.6, TubeLength: 5, TubeOD: 0.025, TubeCount: 128})
	assert.InEpsilon(t, 919.7149702443257, noBaffles.Shell, 1e-9)
	assert.Zero(t, noBaffles.Baffle)

	// The baffle weight appears inside Shell and again in Total.
	assert.InEpsilon(t, got.Shell-noBaffles.Shell, got.Baffle, 1e-9)
	assert.InEpsilon(t, got.Shell+got.Tube+got.Baffle, got.Total, 1e-12)
	assert.InEpsilon(t, noBaffles.Total+2*got.Baffle, got.Total, 1e-9)
}

func TestWeight_BaffleWindow(t *testing.T) {
	base := WeightInput{ShellDiameter: 0.6, TubeLength: 5, TubeOD: 0.025, TubeCount: 128}

	for _, spacing := range []float64{0, -1, 5, 6} {
		in := base
		in.BaffleSpacing = spacing
		assert.Zero(t, Weight(in).Baffle, "spacing %v", spacing)
	}

	in := base
	in.BaffleSpacing = 4.9
	assert.Positive(t, Weight(in).Baffle)
}

func TestWeight_BafflesUseShellDensity(t *testing.T) {
	in := WeightInput{ShellDiameter: 0.6, TubeLength: 5, TubeOD: 0.025, TubeCount: 128, BaffleSpacing: 1}
	heavyTubes := in
	heavyTubes.TubeDensity = 9000

	assert.InEpsilon(t, Weight(in).Baffle, Weight(heavyTubes).Baffle, 1e-12)

	lightShell := in
	lightShell.ShellDensity = 2700
	assert.InEpsilon(t, Weight(in).Baffle*2700/7850, Weight(lightShell).Baffle, 1e-9)
}

func TestDesign(t *testing.T) {
	t.Run("small bundle without baffles", func(t *testing.T) {
		got, err := Design(DesignInput{Area: 50, TubeOD: 0.025, TubeLength: 5, MaxTubes: 500, Pitch: PitchTriangular, BaffleCut: 25})
		require.NoError(t, err)
		assert.True(t, got.Feasible)
		assert.Equal(t, 128, got.TubeCount)
		assert.InEpsilon(t, 0.22819498438961952, got.ShellDiameter, 1e-12)
		assert.Equal(t, 0, got.BaffleCount)
		assert.Zero(t, got.BaffleSpacing)
		assert.InEpsilon(t, 1099.7695237825205, got.Weight.Total, 1e-9)
	})

	t.Run("large square bundle with baffles", func(t *testing.T) {
		got, err := Design(DesignInput{Area: 2000, TubeOD: 0.019, TubeLength: 6, MaxTubes: 20000, Pitch: PitchSquare, BaffleCut: 25})
		require.NoError(t, err)
		assert.Equal(t, 5585, got.TubeCount)
		assert.InEpsilon(t, 1.301798055941244, got.ShellDiameter, 1e-12)
		assert.Equal(t, 1, got.BaffleCount)
		assert.InEpsilon(t, 1.0414384447529952, got.BaffleSpacing, 1e-12)
		assert.InEpsilon(t, 32511.720280027406, got.Weight.Total, 1e-9)
		assert.InEpsilon(t, 2741.3968497344367, got.Weight.Shell, 1e-9)
		assert.InEpsilon(t, 29451.407997542072, got.Weight.Tube, 1e-9)
	})

	t.Run("infeasible is not an error", func(t *testing.T) {
		got, err := Design(DesignInput{Area: 500, TubeOD: 0.025, TubeLength: 5, MaxTubes: 500, Pitch: PitchTriangular})
		require.NoError(t, err)
		assert.False(t, got.Feasible)
		assert.Equal(t, Infeasible, got.TubeCount)
	})

	t.Run("bad pitch", func(t *testing.T) {
		_, err := Design(DesignInput{Area: 50, TubeOD: 0.025, TubeLength: 5, MaxTubes: 500, Pitch: "q"})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}
