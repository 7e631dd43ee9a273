// Package app wires configuration, case files, the engine and the report
// writers together for the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/equipsize/internal/cases"
	"github.com/bft-labs/equipsize/internal/cliconfig"
	"github.com/bft-labs/equipsize/internal/engine"
	"github.com/bft-labs/equipsize/internal/report"
	"github.com/bft-labs/equipsize/internal/watch"
	"github.com/bft-labs/equipsize/pkg/log"
	"github.com/bft-labs/equipsize/pkg/vessel"
)

// ErrCasesFailed is returned when a run completes with at least one failed
// case. The report has still been written.
var ErrCasesFailed = errors.New("one or more cases failed")

// App runs case files under a validated configuration.
type App struct {
	cfg       cliconfig.Config
	out       io.Writer
	logger    log.Logger
	validator *cases.Validator
	estimator *vessel.Estimator
}

// New returns an App writing reports to out. cfg must already be validated.
func New(cfg cliconfig.Config, out io.Writer, logger log.Logger) *App {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &App{
		cfg:       cfg,
		out:       out,
		logger:    logger,
		validator: cases.NewValidator(),
		estimator: vessel.New(
			vessel.WithLogger(logger),
			vessel.WithTolerance(cfg.Tolerance),
			vessel.WithMaxIterations(cfg.MaxIterations),
		),
	}
}

// Run validates f, calculates every case and writes the report in the
// configured format, plus a workbook when an XLSX path is configured.
func (a *App) Run(ctx context.Context, f cases.File) (engine.Report, error) {
	if err := a.validator.Validate(f); err != nil {
		return engine.Report{}, err
	}

	rep, err := engine.FromCases(f, a.estimator, engine.WithLogger(a.logger)).Run(ctx)
	if err != nil {
		return rep, err
	}

	if err := report.Write(a.out, a.cfg.Output, rep); err != nil {
		return rep, fmt.Errorf("write report: %w", err)
	}
	if a.cfg.XLSXPath != "" {
		if err := report.SaveXLSX(a.cfg.XLSXPath, rep); err != nil {
			return rep, fmt.Errorf("write workbook: %w", err)
		}
		a.logger.Info("workbook written", log.String("path", a.cfg.XLSXPath))
	}

	a.logger.Info("cases calculated",
		log.Int("total", rep.Len()),
		log.Int("failed", len(rep.Errors)),
	)
	if rep.Failed() {
		return rep, fmt.Errorf("%w: %d of %d", ErrCasesFailed, len(rep.Errors), rep.Len())
	}
	return rep, nil
}

// RunFile loads the case file at path and runs it.
func (a *App) RunFile(ctx context.Context, path string) (engine.Report, error) {
	f, err := cases.Load(path)
	if err != nil {
		return engine.Report{}, err
	}
	a.logger.Debug("case file loaded", log.String("path", path), log.Int("cases", f.Len()))
	return a.Run(ctx, f)
}

// Watch runs the configured case file and reruns it on every change until
// ctx is done.
func (a *App) Watch(ctx context.Context) error {
	if a.cfg.CasesPath == "" {
		return errors.New("no case file configured")
	}
	w := watch.New(a.cfg.CasesPath, func(ctx context.Context) error {
		_, err := a.RunFile(ctx, a.cfg.CasesPath)
		return err
	}, watch.WithDebounce(a.cfg.Debounce), watch.WithLogger(a.logger))
	return w.Run(ctx)
}
