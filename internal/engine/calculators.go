package engine

import (
	"github.com/bft-labs/equipsize/internal/cases"
	"github.com/bft-labs/equipsize/pkg/exchanger"
	"github.com/bft-labs/equipsize/pkg/separator"
	"github.com/bft-labs/equipsize/pkg/vessel"
)

// SeparatorCalculator sizes a gas-liquid separator case.
type SeparatorCalculator struct {
	c cases.SeparatorCase
}

// NewSeparatorCalculator returns a calculator for c.
func NewSeparatorCalculator(c cases.SeparatorCase) *SeparatorCalculator {
	return &SeparatorCalculator{c: c}
}

func (s *SeparatorCalculator) Name() string { return s.c.Name }
func (s *SeparatorCalculator) Kind() Kind   { return KindSeparator }

func (s *SeparatorCalculator) Calculate() (Outcome, error) {
	res := separator.Size(s.c.Input())
	return SeparatorOutcome{
		Name:             s.c.Name,
		Diameter:         res.Diameter,
		Length:           res.Length,
		Volume:           res.Volume,
		HoldUpTime:       res.HoldUpTime,
		GasVelocity:      res.GasVelocity,
		TerminalVelocity: res.TerminalVelocity,
	}, nil
}

// ExchangerCalculator designs a shell-and-tube exchanger case.
type ExchangerCalculator struct {
	c cases.ExchangerCase
}

// NewExchangerCalculator returns a calculator for c.
func NewExchangerCalculator(c cases.ExchangerCase) *ExchangerCalculator {
	return &ExchangerCalculator{c: c}
}

func (x *ExchangerCalculator) Name() string { return x.c.Name }
func (x *ExchangerCalculator) Kind() Kind   { return KindExchanger }

func (x *ExchangerCalculator) Calculate() (Outcome, error) {
	in, err := x.c.Input()
	if err != nil {
		return nil, err
	}
	res, err := exchanger.Design(in)
	if err != nil {
		return nil, err
	}
	return ExchangerOutcome{
		Name:          x.c.Name,
		Pitch:         in.Pitch.String(),
		Feasible:      res.Feasible,
		TubeCount:     res.TubeCount,
		ShellDiameter: res.ShellDiameter,
		BaffleCount:   res.BaffleCount,
		BaffleSpacing: res.BaffleSpacing,
		Weight:        res.Weight.Total,
		ShellWeight:   res.Weight.Shell,
		TubeWeight:    res.Weight.Tube,
		BaffleWeight:  res.Weight.Baffle,
	}, nil
}

// VesselCalculator estimates a vertical vessel weight case.
type VesselCalculator struct {
	c   cases.VesselCase
	est *vessel.Estimator
}

// NewVesselCalculator returns a calculator for c. A nil est uses the
// default estimator.
func NewVesselCalculator(c cases.VesselCase, est *vessel.Estimator) *VesselCalculator {
	if est == nil {
		est = vessel.New()
	}
	return &VesselCalculator{c: c, est: est}
}

func (v *VesselCalculator) Name() string { return v.c.Name }
func (v *VesselCalculator) Kind() Kind   { return KindVessel }

func (v *VesselCalculator) Calculate() (Outcome, error) {
	res, err := v.est.Weight(v.c.Input())
	if err != nil {
		return nil, err
	}
	return VesselOutcome{
		Name:              v.c.Name,
		Regime:            string(res.Regime),
		DesignPressure:    res.DesignPressure,
		DesignTemperature: res.DesignTemperature,
		Modulus:           res.Modulus,
		AllowableStress:   res.AllowableStress,
		Thickness:         res.Thickness,
		Floored:           res.Floored,
		Iterations:        res.Iterations,
		Weight:            res.Weight,
		WeightLb:          res.WeightLb,
		Warnings:          res.Warnings,
	}, nil
}

var (
	_ Calculator = (*SeparatorCalculator)(nil)
	_ Calculator = (*ExchangerCalculator)(nil)
	_ Calculator = (*VesselCalculator)(nil)
)
