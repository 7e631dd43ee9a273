package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"sigs.k8s.io/yaml"

	"github.com/bft-labs/equipsize/internal/engine"
)

func sampleReport() engine.Report {
	return engine.Report{
		Separators: []engine.SeparatorOutcome{{
			Name: "V-100", Diameter: 2.245661764405803, Length: 6.736985293217409,
			Volume: 26.68358452038112, HoldUpTime: 0.07412106811216979,
			GasVelocity: 0.25247677230439747, TerminalVelocity: 0.3,
		}},
		Exchangers: []engine.ExchangerOutcome{
			{Name: "E-101", Pitch: "triangular", Feasible: true, TubeCount: 128, ShellDiameter: 0.228, BaffleCount: 20, BaffleSpacing: 0.24, Weight: 1099.77},
			{Name: "E-102", Pitch: "square"},
		},
		Vessels: []engine.VesselOutcome{{
			Name: "T-200", Regime: "internal-pressure", DesignPressure: 10, DesignTemperature: 130.73,
			Thickness: 0.25, Floored: true, Iterations: 0, Weight: 914.052955359689, WeightLb: 2015.1,
			Warnings: []string{"thin wall"},
		}},
		Errors: []engine.CaseError{{Kind: engine.KindVessel, Name: "T-201", Error: "equipsize: invalid argument"}},
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "text", sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "SEPARATOR")
	assert.Contains(t, out, "2.2457")
	assert.Contains(t, out, "infeasible")
	assert.Contains(t, out, "0.2500 (min)")
	assert.Contains(t, out, "warning: T-200: thin wall")
	assert.Contains(t, out, "T-201")
}

func TestWrite_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "text", engine.Report{}))
	assert.Equal(t, "no cases\n", buf.String())
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", sampleReport()))

	var got map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got["separators"], 1)
	assert.Equal(t, "V-100", got["separators"][0]["name"])
	assert.InDelta(t, 2.245661764405803, got["separators"][0]["diameter_m"], 1e-12)
	assert.Equal(t, float64(128), got["exchangers"][0]["tube_count"])
	assert.Equal(t, "T-201", got["errors"][0]["name"])
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "yaml", sampleReport()))
	assert.Contains(t, buf.String(), "vessels:")
	assert.Contains(t, buf.String(), "regime: internal-pressure")

	var got engine.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Vessels, 1)
	assert.Equal(t, "T-200", got.Vessels[0].Name)
	assert.True(t, got.Vessels[0].Floored)
	assert.Equal(t, []string{"thin wall"}, got.Vessels[0].Warnings)
}

func TestWrite_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "toml", sampleReport()))
	assert.Contains(t, buf.String(), "[[vessel]]")

	var got engine.Report
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Exchangers, 2)
	assert.Equal(t, 128, got.Exchangers[0].TubeCount)
	assert.Equal(t, "T-201", got.Errors[0].Name)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "csv", sampleReport())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "csv"))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSeparators, SheetExchangers, SheetVessels, SheetErrors}, f.GetSheetList())

	rows, err := f.GetRows(SheetExchangers)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "E-101", rows[1][0])
	assert.Equal(t, "128", rows[1][3])
	assert.Equal(t, "E-102", rows[2][0])

	rows, err = f.GetRows(SheetErrors)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"vessel", "T-201", "equipsize: invalid argument"}, rows[1])
}

func TestSaveXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, SaveXLSX(path, sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(SheetVessels, "A2")
	require.NoError(t, err)
	assert.Equal(t, "T-200", v)
}
