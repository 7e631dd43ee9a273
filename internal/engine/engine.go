package engine

import (
	"context"
	"fmt"

	"github.com/bft-labs/equipsize/internal/cases"
	"github.com/bft-labs/equipsize/pkg/log"
	"github.com/bft-labs/equipsize/pkg/vessel"
)

// Engine orchestrates Calculators and aggregates their outcomes.
type Engine struct {
	calculators []Calculator
	logger      log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-case progress and failures.
func WithLogger(l log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an Engine with no calculators registered.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		calculators: make([]Calculator, 0),
		logger:      log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromCases creates an Engine with one calculator per case in f. Vessel
// cases share est.
func FromCases(f cases.File, est *vessel.Estimator, opts ...Option) *Engine {
	e := NewEngine(opts...)
	for _, c := range f.Separators {
		e.Register(NewSeparatorCalculator(c))
	}
	for _, c := range f.Exchangers {
		e.Register(NewExchangerCalculator(c))
	}
	for _, c := range f.Vessels {
		e.Register(NewVesselCalculator(c, est))
	}
	return e
}

// Register adds a Calculator. Calculators run in registration order.
// Register panics if a calculator of the same Kind and Name is already
// registered, as the two outcomes could not be told apart in a Report.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Kind() == c.Kind() && existing.Name() == c.Name() {
			panic(fmt.Sprintf("engine: %s calculator %q already registered", c.Kind(), c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Len returns the number of registered calculators.
func (e *Engine) Len() int {
	return len(e.calculators)
}

// Run executes all registered calculators. Case failures are collected in
// Report.Errors; Run itself only fails when ctx is done, returning the
// partial report.
func (e *Engine) Run(ctx context.Context) (Report, error) {
	var report Report
	for _, calc := range e.calculators {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		out, err := calc.Calculate()
		if err != nil {
			e.logger.Error("case failed",
				log.String("kind", string(calc.Kind())),
				log.String("name", calc.Name()),
				log.Err(err),
			)
			report.Errors = append(report.Errors, CaseError{
				Kind:  calc.Kind(),
				Name:  calc.Name(),
				Error: err.Error(),
			})
			continue
		}

		e.logger.Debug("case calculated",
			log.String("kind", string(calc.Kind())),
			log.String("name", calc.Name()),
		)
		out.record(&report)
	}
	return report, nil
}
