package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKelvinToFahrenheit(t *testing.T) {
	tests := []struct {
		name string
		k    float64
		want float64
	}{
		{name: "freezing point", k: 273.15, want: 32},
		{name: "boiling point", k: 373.15, want: 212},
		{name: "room temperature", k: 300, want: 80.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KelvinToFahrenheit(tt.k), 1e-9)
		})
	}
}

func TestAreas(t *testing.T) {
	assert.InDelta(t, math.Pi/4, CircleArea(1), 1e-12)
	assert.InDelta(t, CircleArea(2)-CircleArea(1), AnnulusArea(2, 1), 1e-12)
	assert.Zero(t, AnnulusArea(1, 1))
}
