package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/equipsize/internal/app"
	"github.com/bft-labs/equipsize/internal/cliconfig"
	"github.com/bft-labs/equipsize/pkg/log"
)

const helpDescription = `
First-pass sizing for process equipment.

Calculators:
  - separator   vertical gas-liquid separator diameter, length and hold-up
  - exchanger   shell-and-tube tube count, shell, baffles and weight
  - vessel      vertical pressure vessel wall thickness and shell weight

Run one calculation from flags, or many from a TOML case file with "run".
"watch" reruns a case file every time it is saved.
`

var exampleUsage = strings.TrimSpace(`
  equipsize vessel --pressure 101 --temperature 300 --diameter 1 --length 5
  equipsize exchanger --area 50 --tube-od 0.025 --tube-length 5 --max-tubes 500 --pitch t
  equipsize run --cases plant.toml -o json --xlsx plant.xlsx
  equipsize watch --cases plant.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cli carries the configuration shared by every subcommand.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	stdout  io.Writer
	stderr  io.Writer
	zl      zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{
		cfg:    cliconfig.DefaultConfig(),
		stdout: stdout,
		stderr: stderr,
	}
	c.zl, _ = log.NewConsole(stderr, c.cfg.LogLevel)

	root := &cobra.Command{
		Use:           "equipsize",
		Short:         "First-pass sizing for separators, heat exchangers and pressure vessels",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.equipsize/config.toml)")
	pf.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVarP(&c.cfg.Output, "output", "o", c.cfg.Output, "report format: "+strings.Join(cliconfig.OutputFormats, ", "))
	pf.IntVar(&c.cfg.MaxIterations, "max-iterations", c.cfg.MaxIterations, "iteration bound for wall thickness solves")
	pf.Float64Var(&c.cfg.Tolerance, "tolerance", c.cfg.Tolerance, "relative convergence tolerance for wall thickness solves")

	root.AddCommand(
		c.separatorCmd(),
		c.exchangerCmd(),
		c.vesselCmd(),
		c.runCmd(),
		c.watchCmd(),
	)
	return root
}

// loadConfig applies the config file, then EQUIPSIZE_* environment
// variables, keeping any flag set on the command line.
func (c *cli) loadConfig(cmd *cobra.Command) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	zl, err := log.NewConsole(c.stderr, c.cfg.LogLevel)
	if err != nil {
		return err
	}
	c.zl = zl
	c.zl.Debug().Interface("config", c.cfg).Msg("configuration")
	return nil
}

func (c *cli) app() *app.App {
	return app.New(c.cfg, c.stdout, log.NewZerologAdapterWithLogger(c.zl))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		zl, _ := log.NewConsole(os.Stderr, "info")
		zl.Error().Err(err).Msg("equipsize")
		stop()
		os.Exit(1)
	}
}
