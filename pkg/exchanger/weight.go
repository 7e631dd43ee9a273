package exchanger

import (
	"math"

	"github.com/bft-labs/equipsize/pkg/units"
)

// Default wall thicknesses (m) and densities (kg/m³) for carbon steel.
const (
	DefaultShellThickness  = 0.0127
	DefaultTubeThickness   = 0.00211
	DefaultBaffleThickness = 0.00635
	DefaultSteelDensity    = 7850.0
)

// WeightInput describes the exchanger geometry. Zero thicknesses and
// densities are replaced by the defaults.
type WeightInput struct {
	ShellDiameter   float64 // m
	TubeLength      float64 // m
	TubeOD          float64 // m
	TubeCount       int
	BaffleSpacing   float64 // m, zero for no baffles
	ShellThickness  float64 // m
	TubeThickness   float64 // m
	BaffleThickness float64 // m
	ShellDensity    float64 // kg/m³, also used for baffles
	TubeDensity     float64 // kg/m³
}

// WeightResult is the exchanger weight breakdown in kg. Shell includes
// Baffle, and Total adds Baffle once more.
type WeightResult struct {
	Total  float64
	Shell  float64
	Tube   float64
	Baffle float64
}

// WithDefaults returns a copy of in with zero thicknesses and densities
// replaced by the carbon steel defaults.
func (in WeightInput) WithDefaults() WeightInput {
	if in.ShellThickness == 0 {
		in.ShellThickness = DefaultShellThickness
	}
	if in.TubeThickness == 0 {
		in.TubeThickness = DefaultTubeThickness
	}
	if in.BaffleThickness == 0 {
		in.BaffleThickness = DefaultBaffleThickness
	}
	if in.ShellDensity == 0 {
		in.ShellDensity = DefaultSteelDensity
	}
	if in.TubeDensity == 0 {
		in.TubeDensity = DefaultSteelDensity
	}
	return in
}

// Weight returns the steel weight of the shell, tubes and baffles.
// Baffles are only counted when 0 < BaffleSpacing < TubeLength; each one is
// a full disk of the shell inner diameter.
func Weight(in WeightInput) WeightResult {
	in = in.WithDefaults()

	shellID := in.ShellDiameter - 2*in.ShellThickness
	shellVolume := units.AnnulusArea(in.ShellDiameter, shellID) * in.TubeLength

	tubeID := in.TubeOD - 2*in.TubeThickness
	tubeVolume := float64(in.TubeCount) * units.AnnulusArea(in.TubeOD, tubeID) * in.TubeLength

	var baffle float64
	if in.BaffleSpacing > 0 && in.BaffleSpacing < in.TubeLength {
		count := math.Floor(in.TubeLength / in.BaffleSpacing)
		baffle = units.CircleArea(shellID) * in.BaffleThickness * count * in.ShellDensity
	}

	shell := shellVolume*in.ShellDensity + baffle
	tube := tubeVolume * in.TubeDensity
	return WeightResult{
		Total:  shell + tube + baffle,
		Shell:  shell,
		Tube:   tube,
		Baffle: baffle,
	}
}
