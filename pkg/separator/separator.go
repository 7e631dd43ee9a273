// Package separator sizes a vertical gas-liquid knock-out drum so that the
// superficial gas velocity equals the terminal settling velocity of the
// smallest droplet that must be removed.
//
// Size performs no argument checks. Callers must supply LiquidDensity >
// VaporDensity and strictly positive flows and viscosity; otherwise the
// result contains NaN or Inf.
package separator

import (
	"math"

	"github.com/bft-labs/equipsize/pkg/units"
)

// Defaults for the optional Input fields.
const (
	DefaultHeightDiameterRatio = 3.0
	DefaultDropletDiameter     = 1e-4 // m
)

// liquidLengthFraction is the share of vessel length assumed to hold liquid
// when computing hold-up time.
const liquidLengthFraction = 0.1

// Input describes the two-phase feed and the vessel proportions.
type Input struct {
	VaporDensity        float64 // kg/m³
	LiquidDensity       float64 // kg/m³
	GasFlow             float64 // m³/s
	LiquidFlow          float64 // m³/s
	GasViscosity        float64 // Pa·s
	HeightDiameterRatio float64 // length / diameter
	DropletDiameter     float64 // critical droplet diameter, m
}

// Result holds the derived separator dimensions.
type Result struct {
	Diameter         float64 // m
	Length           float64 // m
	Volume           float64 // m³
	HoldUpTime       float64 // h
	GasVelocity      float64 // m/s
	TerminalVelocity float64 // m/s
}

// DefaultInput returns an Input with the optional fields set.
func DefaultInput() Input {
	return Input{
		HeightDiameterRatio: DefaultHeightDiameterRatio,
		DropletDiameter:     DefaultDropletDiameter,
	}
}

// WithDefaults returns a copy of in with zero optional fields replaced by
// their defaults.
func (in Input) WithDefaults() Input {
	if in.HeightDiameterRatio == 0 {
		in.HeightDiameterRatio = DefaultHeightDiameterRatio
	}
	if in.DropletDiameter == 0 {
		in.DropletDiameter = DefaultDropletDiameter
	}
	return in
}

// TerminalVelocity returns the settling velocity of a droplet of the
// critical diameter using the dimensionless diameter/velocity correlation
// u* = (18/d*² + 0.591/√d*)⁻¹.
func TerminalVelocity(in Input) float64 {
	dRho := in.LiquidDensity - in.VaporDensity
	mu := in.GasViscosity

	dStar := in.DropletDiameter * math.Cbrt(in.VaporDensity*dRho*units.Gravity/(mu*mu))
	uStar := 1 / (18/(dStar*dStar) + 0.591/math.Sqrt(dStar))
	return uStar * math.Pow(in.VaporDensity*in.VaporDensity/(mu*dRho*units.Gravity), -1.0/3)
}

// Size computes the vessel diameter at which the gas velocity equals the
// droplet terminal velocity, then derives length, volume and hold-up time.
func Size(in Input) Result {
	in = in.WithDefaults()

	ut := TerminalVelocity(in)
	d := math.Sqrt(4 * in.GasFlow / (math.Pi * ut))
	length := in.HeightDiameterRatio * d

	return Result{
		Diameter:         d,
		Length:           length,
		Volume:           units.CircleArea(d) * length,
		HoldUpTime:       math.Pi * (liquidLengthFraction * length) * d * d / (4 * in.LiquidFlow) / units.SecondsPerHour,
		GasVelocity:      4 * in.GasFlow / (math.Pi * d * d),
		TerminalVelocity: ut,
	}
}
