package exchanger

import (
	"fmt"
	"math"
	"strings"

	"github.com/bft-labs/equipsize/internal/domain"
)

// DefaultMinShellDiameter is the smallest shell considered, m.
const DefaultMinShellDiameter = 0.15

// shellClearance scales the bundle diameter to the shell diameter.
const shellClearance = 1.3

// Pitch is the tube layout pattern.
type Pitch string

const (
	PitchTriangular Pitch = "t"
	PitchSquare     Pitch = "s"
)

// ParsePitch accepts "t", "triangular", "s" or "square" in any case.
func ParsePitch(s string) (Pitch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "t", "triangular":
		return PitchTriangular, nil
	case "s", "square":
		return PitchSquare, nil
	default:
		return "", fmt.Errorf("%w: pitch type %q, use 't' for triangular or 's' for square", domain.ErrInvalidArgument, s)
	}
}

// Factor returns the pitch-to-diameter ratio for the layout.
func (p Pitch) Factor() (float64, error) {
	switch p {
	case PitchTriangular:
		return 1.1, nil
	case PitchSquare:
		return 1.25, nil
	default:
		return 0, fmt.Errorf("%w: pitch type %q, use 't' for triangular or 's' for square", domain.ErrInvalidArgument, string(p))
	}
}

// String returns the long name of the layout.
func (p Pitch) String() string {
	switch p {
	case PitchTriangular:
		return "triangular"
	case PitchSquare:
		return "square"
	default:
		return string(p)
	}
}

// ShellInput describes the tube bundle.
type ShellInput struct {
	TubeCount        int
	TubeOD           float64 // m
	Pitch            Pitch
	MinShellDiameter float64 // m, zero means DefaultMinShellDiameter
}

// ShellDiameter returns the shell diameter (m) for a circular bundle of
// in.TubeCount tubes on the given pitch, never below MinShellDiameter.
func ShellDiameter(in ShellInput) (float64, error) {
	factor, err := in.Pitch.Factor()
	if err != nil {
		return 0, err
	}
	minDiameter := in.MinShellDiameter
	if minDiameter == 0 {
		minDiameter = DefaultMinShellDiameter
	}

	pitch := in.TubeOD * factor
	bundle := math.Sqrt(float64(in.TubeCount) * pitch * pitch / math.Pi)
	return math.Max(bundle*shellClearance, minDiameter), nil
}
