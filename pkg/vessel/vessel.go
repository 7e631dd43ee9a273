package vessel

import (
	"fmt"
	"math"

	"github.com/bft-labs/equipsize/pkg/log"
	"github.com/bft-labs/equipsize/pkg/solve"
	"github.com/bft-labs/equipsize/pkg/units"
)

// Thickness constants, inches.
const (
	InitialThickness    = 0.25
	MinThickness        = 0.25
	CorrosionAllowance  = 0.125
	ThinWallRatioLimit  = 0.05
	headLengthFactor    = 0.8
	windDiameterOffset  = 18.0
	windCoefficient     = 0.22
	bucklingCoefficient = 1.3
	bucklingExponent    = 0.4
)

// Regime names the wall thickness procedure applied.
type Regime string

const (
	RegimeInternalPressure Regime = "internal-pressure"
	RegimeExternalPressure Regime = "external-pressure"
)

// Input is the operating envelope and geometry of the vessel.
type Input struct {
	LowestPressure     float64 // kPa
	HighestTemperature float64 // K
	Diameter           float64 // m
	Length             float64 // tangent-to-tangent, m
	Density            float64 // shell material, kg/m³
}

// Result is the vessel weight and the intermediate design values that
// produced it. Thicknesses are in inches.
type Result struct {
	Weight   float64 // kg
	WeightLb float64 // lb

	DesignPressure    float64 // psig
	DesignTemperature float64 // °F
	Modulus           float64 // psi
	AllowableStress   float64 // psi

	Regime            Regime
	SeismicThickness  float64 // tE
	PressureThickness float64 // tp, internal-pressure regime only
	Correction        float64 // tEC, external-pressure regime only
	Thickness         float64 // final wall thickness
	Floored           bool    // Thickness was raised to MinThickness
	Iterations        int

	Warnings []string
}

// Estimator computes vessel weights. The zero value is not usable; use New.
type Estimator struct {
	solve    solve.Options
	logger   log.Logger
	modulus  float64
	override bool
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithLogger sets the logger used for advisory warnings.
func WithLogger(l log.Logger) Option {
	return func(e *Estimator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTolerance sets the relative convergence tolerance of the thickness
// iterations. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(e *Estimator) {
		if tol > 0 {
			e.solve.Tolerance = tol
		}
	}
}

// WithMaxIterations bounds the thickness iterations. Non-positive values
// are ignored.
func WithMaxIterations(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.solve.MaxIterations = n
		}
	}
}

// WithModulus replaces the tabulated modulus of elasticity (psi).
func WithModulus(psi float64) Option {
	return func(e *Estimator) {
		e.modulus = psi
		e.override = true
	}
}

// New creates an Estimator with the default tolerance (0.001) and iteration
// bound (1000).
func New(opts ...Option) *Estimator {
	e := &Estimator{
		solve:  solve.DefaultOptions(),
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Weight estimates the vessel weight with a default Estimator.
func Weight(in Input) (Result, error) {
	return New().Weight(in)
}

// Weight estimates the vessel weight. It fails with domain.ErrInvalidArgument
// when the design temperature is beyond the stress table and with
// domain.ErrNonConvergence when a thickness iteration does not settle.
func (e *Estimator) Weight(in Input) (Result, error) {
	res := Result{
		DesignPressure:    DesignPressure(in.LowestPressure),
		DesignTemperature: DesignTemperature(in.HighestTemperature),
	}
	res.Modulus = ElasticModulus(res.DesignTemperature)
	if e.override {
		res.Modulus = e.modulus
	}

	stress, err := AllowableStress(res.DesignTemperature)
	if err != nil {
		return Result{}, err
	}
	res.AllowableStress = stress

	di := in.Diameter * units.MetreToInch
	li := in.Length * units.MetreToInch

	if in.LowestPressure >= InternalPressureMin {
		err = e.internalPressure(&res, di, li)
	} else {
		err = e.externalPressure(&res, di, li)
	}
	if err != nil {
		return Result{}, err
	}

	if res.Thickness < MinThickness {
		res.Thickness = MinThickness
		res.Floored = true
	}

	t := res.Thickness
	res.WeightLb = math.Pi * t * (in.Density * units.KgPerM3ToLbPerIn3) * (di + t) * (li + headLengthFactor*di)
	res.Weight = res.WeightLb / units.KgToLb
	return res, nil
}

// internalPressure combines the wind/seismic thickness with the hoop-stress
// thickness.
func (e *Estimator) internalPressure(res *Result, di, li float64) error {
	s, pd := res.AllowableStress, res.DesignPressure
	tE, n, err := solve.FixedPoint(func(t float64) float64 {
		return windCoefficient * ((di + t) + windDiameterOffset) * (li * li) / (s * (di + t) * (di + t))
	}, InitialThickness, e.solve)
	if err != nil {
		return fmt.Errorf("internal-pressure thickness: %w", err)
	}

	tp := (pd * di) / (2*s - 1.2*pd)

	res.Regime = RegimeInternalPressure
	res.SeismicThickness = tE
	res.PressureThickness = tp
	res.Iterations = n
	res.Thickness = (tp + tE + tp) / 2
	return nil
}

// externalPressure uses the elastic buckling thickness plus corrosion
// allowance and, when positive, the stiffening correction.
func (e *Estimator) externalPressure(res *Result, di, li float64) error {
	pd, em := res.DesignPressure, res.Modulus
	tE, n, err := solve.FixedPoint(func(t float64) float64 {
		return bucklingCoefficient * (di + t) * math.Pow((pd*li)/(em*(di+t)), bucklingExponent)
	}, InitialThickness, e.solve)
	if err != nil {
		return fmt.Errorf("external-pressure thickness: %w", err)
	}

	if ratio := tE / di; ratio >= ThinWallRatioLimit {
		msg := fmt.Sprintf("thickness to diameter ratio %.4f is at or above %.2f, outside the buckling correlation", ratio, ThinWallRatioLimit)
		res.Warnings = append(res.Warnings, msg)
		e.logger.Warn("vessel wall fails thin-wall check",
			log.Float64("ratio", ratio),
			log.Float64("limit", ThinWallRatioLimit),
		)
	}

	tEC := li*(0.18*di-2.2)*1e-5 - 0.19

	res.Regime = RegimeExternalPressure
	res.SeismicThickness = tE
	res.Iterations = n
	res.Correction = tEC
	if tEC > 0 {
		res.Thickness = tEC + tE + CorrosionAllowance
	} else {
		res.Thickness = tE + CorrosionAllowance
	}
	return nil
}
