package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/bft-labs/equipsize/internal/cases"
	"github.com/bft-labs/equipsize/pkg/exchanger"
	"github.com/bft-labs/equipsize/pkg/separator"
)

func (c *cli) separatorCmd() *cobra.Command {
	sc := cases.SeparatorCase{
		Name:                "separator",
		HeightDiameterRatio: separator.DefaultHeightDiameterRatio,
		DropletDiameter:     separator.DefaultDropletDiameter,
	}
	cmd := &cobra.Command{
		Use:   "separator",
		Short: "Size a vertical gas-liquid separator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app().Run(cmd.Context(), cases.File{Separators: []cases.SeparatorCase{sc}})
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&sc.Name, "name", sc.Name, "case name shown in the report")
	f.Float64Var(&sc.VaporDensity, "vapor-density", 0, "vapor density (kg/m³)")
	f.Float64Var(&sc.LiquidDensity, "liquid-density", 0, "liquid density (kg/m³)")
	f.Float64Var(&sc.GasFlow, "gas-flow", 0, "gas volumetric flow (m³/s)")
	f.Float64Var(&sc.LiquidFlow, "liquid-flow", 0, "liquid volumetric flow (m³/s)")
	f.Float64Var(&sc.GasViscosity, "gas-viscosity", 0, "gas dynamic viscosity (Pa·s)")
	f.Float64Var(&sc.HeightDiameterRatio, "height-diameter-ratio", sc.HeightDiameterRatio, "vessel length to diameter ratio")
	f.Float64Var(&sc.DropletDiameter, "droplet-diameter", sc.DropletDiameter, "critical droplet diameter (m)")
	markRequired(cmd, "vapor-density", "liquid-density", "gas-flow", "liquid-flow", "gas-viscosity")
	return cmd
}

func (c *cli) exchangerCmd() *cobra.Command {
	ec := cases.ExchangerCase{
		Name:             "exchanger",
		MinTubes:         exchanger.DefaultMinTubes,
		Pitch:            string(exchanger.PitchTriangular),
		MinShellDiameter: exchanger.DefaultMinShellDiameter,
		BaffleCut:        25,
		ShellThickness:   exchanger.DefaultShellThickness,
		TubeThickness:    exchanger.DefaultTubeThickness,
		BaffleThickness:  exchanger.DefaultBaffleThickness,
		ShellDensity:     exchanger.DefaultSteelDensity,
		TubeDensity:      exchanger.DefaultSteelDensity,
	}
	cmd := &cobra.Command{
		Use:   "exchanger",
		Short: "Design a shell-and-tube heat exchanger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app().Run(cmd.Context(), cases.File{Exchangers: []cases.ExchangerCase{ec}})
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&ec.Name, "name", ec.Name, "case name shown in the report")
	f.Float64Var(&ec.Area, "area", 0, "required heat transfer area (m²)")
	f.Float64Var(&ec.TubeOD, "tube-od", 0, "tube outer diameter (m)")
	f.Float64Var(&ec.TubeLength, "tube-length", 0, "tube length (m)")
	f.IntVar(&ec.MaxTubes, "max-tubes", 0, "largest acceptable tube count")
	f.IntVar(&ec.MinTubes, "min-tubes", ec.MinTubes, "smallest tube count for a multi-tube bundle")
	f.StringVar(&ec.Pitch, "pitch", ec.Pitch, "tube layout: t (triangular) or s (square)")
	f.Float64Var(&ec.MinShellDiameter, "min-shell-diameter", ec.MinShellDiameter, "smallest shell diameter (m)")
	f.Float64Var(&ec.BaffleCut, "baffle-cut", ec.BaffleCut, "baffle cut (% of shell diameter)")
	f.Float64Var(&ec.ShellThickness, "shell-thickness", ec.ShellThickness, "shell wall thickness (m)")
	f.Float64Var(&ec.TubeThickness, "tube-thickness", ec.TubeThickness, "tube wall thickness (m)")
	f.Float64Var(&ec.BaffleThickness, "baffle-thickness", ec.BaffleThickness, "baffle plate thickness (m)")
	f.Float64Var(&ec.ShellDensity, "shell-density", ec.ShellDensity, "shell and baffle material density (kg/m³)")
	f.Float64Var(&ec.TubeDensity, "tube-density", ec.TubeDensity, "tube material density (kg/m³)")
	markRequired(cmd, "area", "tube-od", "tube-length", "max-tubes")
	return cmd
}

func (c *cli) vesselCmd() *cobra.Command {
	vc := cases.VesselCase{Name: "vessel", Density: 7850}
	cmd := &cobra.Command{
		Use:   "vessel",
		Short: "Estimate the shell weight of a vertical pressure vessel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app().Run(cmd.Context(), cases.File{Vessels: []cases.VesselCase{vc}})
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&vc.Name, "name", vc.Name, "case name shown in the report")
	f.Float64Var(&vc.LowestPressure, "pressure", 0, "lowest operating pressure (kPa)")
	f.Float64Var(&vc.HighestTemperature, "temperature", 0, "highest operating temperature (K)")
	f.Float64Var(&vc.Diameter, "diameter", 0, "inside diameter (m)")
	f.Float64Var(&vc.Length, "length", 0, "tangent-to-tangent length (m)")
	f.Float64Var(&vc.Density, "density", vc.Density, "shell material density (kg/m³)")
	markRequired(cmd, "pressure", "temperature", "diameter", "length")
	return cmd
}

func (c *cli) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Calculate every case in a TOML case file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.CasesPath == "" {
				return errors.New("--cases is required")
			}
			_, err := c.app().RunFile(cmd.Context(), c.cfg.CasesPath)
			return err
		},
	}
	cmd.Flags().StringVar(&c.cfg.CasesPath, "cases", c.cfg.CasesPath, "TOML case file")
	cmd.Flags().StringVar(&c.cfg.XLSXPath, "xlsx", c.cfg.XLSXPath, "also write the report as an Excel workbook")
	return cmd
}

func (c *cli) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recalculate a TOML case file every time it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.CasesPath == "" {
				return errors.New("--cases is required")
			}
			return c.app().Watch(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&c.cfg.CasesPath, "cases", c.cfg.CasesPath, "TOML case file")
	cmd.Flags().StringVar(&c.cfg.XLSXPath, "xlsx", c.cfg.XLSXPath, "also write the report as an Excel workbook")
	cmd.Flags().DurationVar(&c.cfg.Debounce, "debounce", c.cfg.Debounce, "quiet period after a change before recalculating")
	return cmd
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}
