// Package report renders an engine.Report as text, JSON, YAML, TOML or an
// Excel workbook.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml/v2"
	"sigs.k8s.io/yaml"

	"github.com/bft-labs/equipsize/internal/cliconfig"
	"github.com/bft-labs/equipsize/internal/engine"
)

// Write renders r to w in the given output format.
func Write(w io.Writer, format string, r engine.Report) error {
	switch format {
	case cliconfig.OutputText, "":
		return writeText(w, r)
	case cliconfig.OutputJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case cliconfig.OutputYAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case cliconfig.OutputTOML:
		if err := toml.NewEncoder(w).Encode(r); err != nil {
			return fmt.Errorf("marshal toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, use one of %s", format, strings.Join(cliconfig.OutputFormats, ", "))
	}
}

func writeText(w io.Writer, r engine.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	sections := 0
	section := func() {
		if sections > 0 {
			fmt.Fprintln(tw)
		}
		sections++
	}

	if len(r.Separators) > 0 {
		section()
		fmt.Fprintln(tw, "SEPARATOR\tDIAMETER (m)\tLENGTH (m)\tVOLUME (m3)\tHOLD-UP (h)\tGAS VEL (m/s)\tTERMINAL VEL (m/s)")
		for _, s := range r.Separators {
			fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
				s.Name, s.Diameter, s.Length, s.Volume, s.HoldUpTime, s.GasVelocity, s.TerminalVelocity)
		}
	}

	if len(r.Exchangers) > 0 {
		section()
		fmt.Fprintln(tw, "EXCHANGER\tPITCH\tTUBES\tSHELL (m)\tBAFFLES\tSPACING (m)\tWEIGHT (kg)")
		for _, x := range r.Exchangers {
			if !x.Feasible {
				fmt.Fprintf(tw, "%s\t%s\tinfeasible\t-\t-\t-\t-\n", x.Name, x.Pitch)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%.4f\t%d\t%.4f\t%.1f\n",
				x.Name, x.Pitch, x.TubeCount, x.ShellDiameter, x.BaffleCount, x.BaffleSpacing, x.Weight)
		}
	}

	var warnings []string
	if len(r.Vessels) > 0 {
		section()
		fmt.Fprintln(tw, "VESSEL\tREGIME\tP (psig)\tT (F)\tTHICKNESS (in)\tITERATIONS\tWEIGHT (kg)\tWEIGHT (lb)")
		for _, v := range r.Vessels {
			thickness := fmt.Sprintf("%.4f", v.Thickness)
			if v.Floored {
				thickness += " (min)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.1f\t%s\t%d\t%.1f\t%.1f\n",
				v.Name, v.Regime, v.DesignPressure, v.DesignTemperature, thickness, v.Iterations, v.Weight, v.WeightLb)
			for _, msg := range v.Warnings {
				warnings = append(warnings, v.Name+": "+msg)
			}
		}
	}

	if len(r.Errors) > 0 {
		section()
		fmt.Fprintln(tw, "KIND\tCASE\tERROR")
		for _, e := range r.Errors {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Kind, e.Name, e.Error)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	if len(warnings) > 0 {
		fmt.Fprintln(w)
		for _, msg := range warnings {
			fmt.Fprintf(w, "warning: %s\n", msg)
		}
	}
	if sections == 0 {
		_, err := fmt.Fprintln(w, "no cases")
		return err
	}
	return nil
}
