// Package equipsize provides first-pass sizing for process equipment: a
// vertical gas-liquid separator, a shell-and-tube heat exchanger and a
// vertical pressure vessel weight estimate.
//
// Example usage:
//
//	sep := equipsize.SizeSeparator(equipsize.SeparatorInput{
//	    VaporDensity:  1.2,
//	    LiquidDensity: 1000,
//	    GasFlow:       1.0,
//	    LiquidFlow:    0.01,
//	    GasViscosity:  1.8e-5,
//	})
//	fmt.Printf("D = %.2f m\n", sep.Diameter)
//
//	res, err := equipsize.VesselWeight(equipsize.VesselInput{
//	    LowestPressure:     101,
//	    HighestTemperature: 300,
//	    Diameter:           1,
//	    Length:             5,
//	    Density:            7850,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("W = %.0f kg\n", res.Weight)
package equipsize

import (
	"github.com/bft-labs/equipsize/internal/domain"
	"github.com/bft-labs/equipsize/pkg/exchanger"
	"github.com/bft-labs/equipsize/pkg/separator"
	"github.com/bft-labs/equipsize/pkg/vessel"
)

// SeparatorInput describes the two-phase feed of a separator.
// Zero optional fields take the separator defaults.
type SeparatorInput = separator.Input

// SeparatorResult holds the sized separator dimensions.
type SeparatorResult = separator.Result

// SizeSeparator sizes a vertical gas-liquid separator.
func SizeSeparator(in SeparatorInput) SeparatorResult {
	return separator.Size(in.WithDefaults())
}

// Pitch is a tube layout pattern.
type Pitch = exchanger.Pitch

// Tube layouts.
const (
	PitchTriangular = exchanger.PitchTriangular
	PitchSquare     = exchanger.PitchSquare
)

// ExchangerInput collects everything needed for a first-pass exchanger.
type ExchangerInput = exchanger.DesignInput

// ExchangerResult is a first-pass exchanger design.
type ExchangerResult = exchanger.DesignResult

// ExchangerWeight is the shell, tube and baffle weight breakdown.
type ExchangerWeight = exchanger.WeightResult

// InfeasibleTubeCount is the tube count reported when the required count
// exceeds the maximum.
const InfeasibleTubeCount = exchanger.Infeasible

// DesignExchanger estimates tube count, shell diameter, baffles and weight.
func DesignExchanger(in ExchangerInput) (ExchangerResult, error) {
	return exchanger.Design(in)
}

// EstimateTubeCount returns the tube count covering area (m²), or
// InfeasibleTubeCount when it exceeds maxTubes.
func EstimateTubeCount(area, tubeOD, tubeLength float64, maxTubes, minTubes int) int {
	return exchanger.EstimateTubeCount(exchanger.TubeCountInput{
		Area:     area,
		TubeOD:   tubeOD,
		Length:   tubeLength,
		MaxTubes: maxTubes,
		MinTubes: minTubes,
	})
}

// ShellDiameter returns the shell diameter (m) for a tube bundle.
func ShellDiameter(tubeCount int, tubeOD float64, pitch Pitch, minShellDiameter float64) (float64, error) {
	return exchanger.ShellDiameter(exchanger.ShellInput{
		TubeCount:        tubeCount,
		TubeOD:           tubeOD,
		Pitch:            pitch,
		MinShellDiameter: minShellDiameter,
	})
}

// BaffleSpacing returns the baffle count and spacing (m) for a shell.
func BaffleSpacing(shellDiameter, cutPercent float64) (int, float64) {
	return exchanger.BaffleSpacing(shellDiameter, cutPercent)
}

// VesselInput is the operating envelope and geometry of a vessel.
type VesselInput = vessel.Input

// VesselResult is a vessel weight with its intermediate design values.
type VesselResult = vessel.Result

// VesselEstimator computes vessel weights with configurable iteration
// bounds and logging.
type VesselEstimator = vessel.Estimator

// NewVesselEstimator returns an estimator configured by opts.
func NewVesselEstimator(opts ...vessel.Option) *VesselEstimator {
	return vessel.New(opts...)
}

// VesselWeight estimates the shell weight (kg) of a vertical vessel with
// the default estimator.
func VesselWeight(in VesselInput) (VesselResult, error) {
	return vessel.Weight(in)
}

// Errors returned by the calculators. Use errors.Is to test for them.
var (
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrNonConvergence  = domain.ErrNonConvergence
)
