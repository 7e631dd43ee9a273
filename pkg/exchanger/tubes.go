package exchanger

import "math"

// DefaultMinTubes is the smallest practical bundle size.
const DefaultMinTubes = 20

// Infeasible is returned by EstimateTubeCount when the required tube count
// exceeds the allowed maximum.
const Infeasible = 0

// TubeCountInput describes the required area and the tube geometry.
type TubeCountInput struct {
	Area     float64 // required heat transfer area, m²
	TubeOD   float64 // tube outer diameter, m
	Length   float64 // tube length, m
	MaxTubes int
	MinTubes int // zero means DefaultMinTubes
}

// EstimateTubeCount returns the number of tubes whose outer surface covers
// in.Area. Counts between 2 and MinTubes-1 are raised to MinTubes; a single
// tube is left alone. A count above MaxTubes returns Infeasible.
func EstimateTubeCount(in TubeCountInput) int {
	minTubes := in.MinTubes
	if minTubes == 0 {
		minTubes = DefaultMinTubes
	}

	perTube := math.Pi * in.TubeOD * in.Length
	total := int(math.Ceil(in.Area / perTube))

	if total > 1 && total < minTubes {
		total = minTubes
	}
	if total > in.MaxTubes {
		return Infeasible
	}
	return total
}
