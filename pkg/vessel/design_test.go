package vessel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/equipsize/internal/domain"
)

func TestDesignPressure(t *testing.T) {
	tests := []struct {
		name string
		kPa  float64
		want float64
	}{
		{name: "vacuum", kPa: 10, want: 10},
		{name: "near atmospheric boundary", kPa: 34.5, want: 10},
		{name: "correlation", kPa: 101, want: 21.685373790209894},
		{name: "correlation boundary", kPa: 6895, want: 1106.9411823229707},
		{name: "linear", kPa: 7000, want: 1116.7926000000002},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, DesignPressure(tt.kPa), 1e-9)
		})
	}
}

func TestDesignTemperature(t *testing.T) {
	assert.InDelta(t, 130.33, DesignTemperature(300), 1e-9)
	assert.InDelta(t, 82, DesignTemperature(273.15), 1e-9)
}

func TestElasticModulus(t *testing.T) {
	tests := []struct {
		f    float64
		want float64
	}{
		{f: 130, want: 30.2e6},
		{f: 200, want: 29.5e6},
		{f: 399.9, want: 29.5e6},
		{f: 400, want: 28.3e6},
		{f: 650, want: 26.0e6},
		{f: 1200, want: 26.0e6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ElasticModulus(tt.f), "T=%v", tt.f)
	}
}

func TestAllowableStress(t *testing.T) {
	tests := []struct {
		f    float64
		want float64
	}{
		{f: -40, want: 15000},
		{f: 750, want: 15000},
		{f: 750.1, want: 14750},
		{f: 800, want: 14750},
		{f: 850, want: 14200},
		{f: 900, want: 13100},
	}
	for _, tt := range tests {
		got, err := AllowableStress(tt.f)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "T=%v", tt.f)
	}

	_, err := AllowableStress(900.01)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
