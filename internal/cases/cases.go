// Package cases loads and validates TOML case files. A case file lists any
// number of separator, exchanger and vessel calculations:
//
//	[[separator]]
//	name = "V-100"
//	vapor_density = 1.2
//	liquid_density = 1000
//	gas_flow = 1.0
//	liquid_flow = 0.01
//	gas_viscosity = 1.8e-5
//
//	[[vessel]]
//	name = "T-200"
//	lowest_pressure = 101
//	highest_temperature = 300
//	diameter = 1
//	length = 5
//	density = 7850
package cases

import (
	"bytes"
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/equipsize/pkg/exchanger"
	"github.com/bft-labs/equipsize/pkg/separator"
	"github.com/bft-labs/equipsize/pkg/vessel"
)

// File is the content of a case file.
type File struct {
	Separators []SeparatorCase `toml:"separator" validate:"unique=Name,dive"`
	Exchangers []ExchangerCase `toml:"exchanger" validate:"unique=Name,dive"`
	Vessels    []VesselCase    `toml:"vessel" validate:"unique=Name,dive"`
}

// Len returns the total number of cases.
func (f File) Len() int {
	return len(f.Separators) + len(f.Exchangers) + len(f.Vessels)
}

// SeparatorCase is a gas-liquid separator sizing request. Zero optional
// fields take the separator package defaults.
type SeparatorCase struct {
	Name                string  `toml:"name" validate:"required"`
	VaporDensity        float64 `toml:"vapor_density" validate:"finite,gt=0"`
	LiquidDensity       float64 `toml:"liquid_density" validate:"finite,gtfield=VaporDensity"`
	GasFlow             float64 `toml:"gas_flow" validate:"finite,gt=0"`
	LiquidFlow          float64 `toml:"liquid_flow" validate:"finite,gt=0"`
	GasViscosity        float64 `toml:"gas_viscosity" validate:"finite,gt=0"`
	HeightDiameterRatio float64 `toml:"height_diameter_ratio,omitempty" validate:"finite,gte=0"`
	DropletDiameter     float64 `toml:"droplet_diameter,omitempty" validate:"finite,gte=0"`
}

// Input converts the case to a separator.Input with defaults applied.
func (c SeparatorCase) Input() separator.Input {
	return separator.Input{
		VaporDensity:        c.VaporDensity,
		LiquidDensity:       c.LiquidDensity,
		GasFlow:             c.GasFlow,
		LiquidFlow:          c.LiquidFlow,
		GasViscosity:        c.GasViscosity,
		HeightDiameterRatio: c.HeightDiameterRatio,
		DropletDiameter:     c.DropletDiameter,
	}.WithDefaults()
}

// ExchangerCase is a shell-and-tube exchanger design request.
type ExchangerCase struct {
	Name             string  `toml:"name" validate:"required"`
	Area             float64 `toml:"area" validate:"finite,gte=0"`
	TubeOD           float64 `toml:"tube_od" validate:"finite,gt=0"`
	TubeLength       float64 `toml:"tube_length" validate:"finite,gt=0"`
	MaxTubes         int     `toml:"max_tubes" validate:"gt=0"`
	MinTubes         int     `toml:"min_tubes,omitempty" validate:"gte=0"`
	Pitch            string  `toml:"pitch" validate:"required,pitch"`
	MinShellDiameter float64 `toml:"min_shell_diameter,omitempty" validate:"finite,gte=0"`
	BaffleCut        float64 `toml:"baffle_cut" validate:"finite,gte=0,lte=100"`
	ShellThickness   float64 `toml:"shell_thickness,omitempty" validate:"finite,gte=0"`
	TubeThickness    float64 `toml:"tube_thickness,omitempty" validate:"finite,gte=0"`
	BaffleThickness  float64 `toml:"baffle_thickness,omitempty" validate:"finite,gte=0"`
	ShellDensity     float64 `toml:"shell_density,omitempty" validate:"finite,gte=0"`
	TubeDensity      float64 `toml:"tube_density,omitempty" validate:"finite,gte=0"`
}

// Input converts the case to an exchanger.DesignInput.
func (c ExchangerCase) Input() (exchanger.DesignInput, error) {
	pitch, err := exchanger.ParsePitch(c.Pitch)
	if err != nil {
		return exchanger.DesignInput{}, err
	}
	return exchanger.DesignInput{
		Area:             c.Area,
		TubeOD:           c.TubeOD,
		TubeLength:       c.TubeLength,
		MaxTubes:         c.MaxTubes,
		MinTubes:         c.MinTubes,
		Pitch:            pitch,
		MinShellDiameter: c.MinShellDiameter,
		BaffleCut:        c.BaffleCut,
		ShellThickness:   c.ShellThickness,
		TubeThickness:    c.TubeThickness,
		BaffleThickness:  c.BaffleThickness,
		ShellDensity:     c.ShellDensity,
		TubeDensity:      c.TubeDensity,
	}, nil
}

// VesselCase is a vertical vessel weight request.
type VesselCase struct {
	Name               string  `toml:"name" validate:"required"`
	LowestPressure     float64 `toml:"lowest_pressure" validate:"finite,gt=0"`
	HighestTemperature float64 `toml:"highest_temperature" validate:"finite,gt=0"`
	Diameter           float64 `toml:"diameter" validate:"finite,gt=0"`
	Length             float64 `toml:"length" validate:"finite,gt=0"`
	Density            float64 `toml:"density" validate:"finite,gt=0"`
}

// Input converts the case to a vessel.Input.
func (c VesselCase) Input() vessel.Input {
	return vessel.Input{
		LowestPressure:     c.LowestPressure,
		HighestTemperature: c.HighestTemperature,
		Diameter:           c.Diameter,
		Length:             c.Length,
		Density:            c.Density,
	}
}

// Decode parses a case file from r. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode cases: %w", err)
	}
	return f, nil
}

// Load reads, decodes and validates the case file at path.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	f, err := Decode(bytes.NewReader(b))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := NewValidator().Validate(f); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
