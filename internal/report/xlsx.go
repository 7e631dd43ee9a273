package report

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/bft-labs/equipsize/internal/engine"
)

// Sheet names in the workbook written by WriteXLSX.
const (
	SheetSeparators = "Separators"
	SheetExchangers = "Exchangers"
	SheetVessels    = "Vessels"
	SheetErrors     = "Errors"
)

type sheet struct {
	name    string
	headers []string
	rows    [][]interface{}
}

// WriteXLSX writes r as an Excel workbook with one sheet per equipment kind
// and one for failed cases.
func WriteXLSX(w io.Writer, r engine.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets(r) {
		idx, err := f.NewSheet(s.name)
		if err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}

		headers := make([]interface{}, len(s.headers))
		for j, h := range s.headers {
			headers[j] = h
		}
		if err := f.SetSheetRow(s.name, "A1", &headers); err != nil {
			return fmt.Errorf("write %s header: %w", s.name, err)
		}
		for j, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			row := row
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return fmt.Errorf("write %s row %d: %w", s.name, j+1, err)
			}
		}
	}
	_ = f.DeleteSheet("Sheet1")

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes r as an Excel workbook at path.
func SaveXLSX(path string, r engine.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteXLSX(file, r); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func sheets(r engine.Report) []sheet {
	sep := sheet{
		name:    SheetSeparators,
		headers: []string{"Name", "Diameter (m)", "Length (m)", "Volume (m3)", "Hold-up time (h)", "Gas velocity (m/s)", "Terminal velocity (m/s)"},
	}
	for _, s := range r.Separators {
		sep.rows = append(sep.rows, []interface{}{s.Name, s.Diameter, s.Length, s.Volume, s.HoldUpTime, s.GasVelocity, s.TerminalVelocity})
	}

	ex := sheet{
		name:    SheetExchangers,
		headers: []string{"Name", "Pitch", "Feasible", "Tubes", "Shell diameter (m)", "Baffles", "Baffle spacing (m)", "Weight (kg)", "Shell (kg)", "Tubes (kg)", "Baffles (kg)"},
	}
	for _, x := range r.Exchangers {
		ex.rows = append(ex.rows, []interface{}{x.Name, x.Pitch, x.Feasible, x.TubeCount, x.ShellDiameter, x.BaffleCount, x.BaffleSpacing, x.Weight, x.ShellWeight, x.TubeWeight, x.BaffleWeight})
	}

	ves := sheet{
		name:    SheetVessels,
		headers: []string{"Name", "Regime", "Design pressure (psig)", "Design temperature (F)", "Modulus (psi)", "Allowable stress (psi)", "Thickness (in)", "Floored", "Iterations", "Weight (kg)", "Weight (lb)"},
	}
	for _, v := range r.Vessels {
		ves.rows = append(ves.rows, []interface{}{v.Name, v.Regime, v.DesignPressure, v.DesignTemperature, v.Modulus, v.AllowableStress, v.Thickness, v.Floored, v.Iterations, v.Weight, v.WeightLb})
	}

	errs := sheet{
		name:    SheetErrors,
		headers: []string{"Kind", "Name", "Error"},
	}
	for _, e := range r.Errors {
		errs.rows = append(errs.rows, []interface{}{string(e.Kind), e.Name, e.Error})
	}

	return []sheet{sep, ex, ves, errs}
}
