package vessel

import (
	"fmt"
	"math"

	"github.com/bft-labs/equipsize/internal/domain"
	"github.com/bft-labs/equipsize/pkg/units"
)

// Pressure regime limits, kPa.
const (
	NearAtmosphericLimit = 34.5
	CorrelationLimit     = 6895.0
	InternalPressureMin  = 101.0
)

// Design pressure correlation (psig).
const (
	minDesignPressure = 10.0
	dpC0              = 0.60608
	dpC1              = 0.91615
	dpC2              = 0.0015655
	dpHighFactor      = 1.1
)

// DesignMargin is added to the maximum operating temperature, °F.
const DesignMargin = 50.0

// MaxStressTemperature is the last tabulated allowable stress band, °F.
const MaxStressTemperature = 900.0

// DesignPressure returns the design pressure in psig for the lowest
// operating pressure in kPa.
func DesignPressure(lowestKPa float64) float64 {
	switch {
	case lowestKPa <= NearAtmosphericLimit:
		return minDesignPressure
	case lowestKPa <= CorrelationLimit:
		lp := math.Log(lowestKPa * units.KPaToPsi)
		return math.Exp(dpC0 + dpC1*lp + dpC2*lp*lp)
	default:
		return dpHighFactor * lowestKPa * units.KPaToPsi
	}
}

// DesignTemperature returns the design temperature in °F for the highest
// operating temperature in K.
func DesignTemperature(highestK float64) float64 {
	return units.KelvinToFahrenheit(highestK) + DesignMargin
}

// ElasticModulus returns the carbon steel modulus of elasticity in psi at
// the design temperature in °F.
func ElasticModulus(designF float64) float64 {
	switch {
	case designF < 200:
		return 30.2e6
	case designF < 400:
		return 29.5e6
	case designF < 650:
		return 28.3e6
	default:
		return 26.0e6
	}
}

// AllowableStress returns the carbon steel allowable stress in psi at the
// design temperature in °F. Temperatures above MaxStressTemperature are
// outside the table and return domain.ErrInvalidArgument.
func AllowableStress(designF float64) (float64, error) {
	switch {
	case designF <= 750:
		return 15000, nil
	case designF <= 800:
		return 14750, nil
	case designF <= 850:
		return 14200, nil
	case designF <= MaxStressTemperature:
		return 13100, nil
	default:
		return 0, fmt.Errorf("%w: design temperature %.1f °F exceeds %.0f °F allowable stress table",
			domain.ErrInvalidArgument, designF, MaxStressTemperature)
	}
}
