package engine

// Kind identifies which calculator family produced an outcome.
type Kind string

const (
	KindSeparator Kind = "separator"
	KindExchanger Kind = "exchanger"
	KindVessel    Kind = "vessel"
)

// Calculator sizes one piece of equipment.
type Calculator interface {
	// Name returns the case name. It must be unique within a Kind.
	Name() string
	// Kind returns the calculator family.
	Kind() Kind
	// Calculate runs the sizing and returns its outcome or an error.
	Calculate() (Outcome, error)
}

// Outcome is a calculator result that knows where it belongs in a Report.
type Outcome interface {
	record(r *Report)
}

// Report is the collected output of an Engine run.
type Report struct {
	Separators []SeparatorOutcome `json:"separators,omitempty" toml:"separator,omitempty"`
	Exchangers []ExchangerOutcome `json:"exchangers,omitempty" toml:"exchanger,omitempty"`
	Vessels    []VesselOutcome    `json:"vessels,omitempty" toml:"vessel,omitempty"`
	Errors     []CaseError        `json:"errors,omitempty" toml:"error,omitempty"`
}

// Len returns the number of cases in the report, failed ones included.
func (r Report) Len() int {
	return len(r.Separators) + len(r.Exchangers) + len(r.Vessels) + len(r.Errors)
}

// Failed reports whether any case failed.
func (r Report) Failed() bool {
	return len(r.Errors) > 0
}

// CaseError records a case that could not be calculated.
type CaseError struct {
	Kind  Kind   `json:"kind" toml:"kind"`
	Name  string `json:"name" toml:"name"`
	Error string `json:"error" toml:"error"`
}

// SeparatorOutcome is a sized gas-liquid separator.
type SeparatorOutcome struct {
	Name             string  `json:"name" toml:"name"`
	Diameter         float64 `json:"diameter_m" toml:"diameter_m"`
	Length           float64 `json:"length_m" toml:"length_m"`
	Volume           float64 `json:"volume_m3" toml:"volume_m3"`
	HoldUpTime       float64 `json:"hold_up_time_h" toml:"hold_up_time_h"`
	GasVelocity      float64 `json:"gas_velocity_m_s" toml:"gas_velocity_m_s"`
	TerminalVelocity float64 `json:"terminal_velocity_m_s" toml:"terminal_velocity_m_s"`
}

func (o SeparatorOutcome) record(r *Report) { r.Separators = append(r.Separators, o) }

// ExchangerOutcome is a first-pass shell-and-tube exchanger design. When
// Feasible is false only TubeCount is set.
type ExchangerOutcome struct {
	Name          string  `json:"name" toml:"name"`
	Pitch         string  `json:"pitch" toml:"pitch"`
	Feasible      bool    `json:"feasible" toml:"feasible"`
	TubeCount     int     `json:"tube_count" toml:"tube_count"`
	ShellDiameter float64 `json:"shell_diameter_m" toml:"shell_diameter_m"`
	BaffleCount   int     `json:"baffle_count" toml:"baffle_count"`
	BaffleSpacing float64 `json:"baffle_spacing_m" toml:"baffle_spacing_m"`
	Weight        float64 `json:"weight_kg" toml:"weight_kg"`
	ShellWeight   float64 `json:"shell_weight_kg" toml:"shell_weight_kg"`
	TubeWeight    float64 `json:"tube_weight_kg" toml:"tube_weight_kg"`
	BaffleWeight  float64 `json:"baffle_weight_kg" toml:"baffle_weight_kg"`
}

func (o ExchangerOutcome) record(r *Report) { r.Exchangers = append(r.Exchangers, o) }

// VesselOutcome is an estimated vertical vessel weight.
type VesselOutcome struct {
	Name              string   `json:"name" toml:"name"`
	Regime            string   `json:"regime" toml:"regime"`
	DesignPressure    float64  `json:"design_pressure_psig" toml:"design_pressure_psig"`
	DesignTemperature float64  `json:"design_temperature_f" toml:"design_temperature_f"`
	Modulus           float64  `json:"modulus_psi" toml:"modulus_psi"`
	AllowableStress   float64  `json:"allowable_stress_psi" toml:"allowable_stress_psi"`
	Thickness         float64  `json:"thickness_in" toml:"thickness_in"`
	Floored           bool     `json:"floored" toml:"floored"`
	Iterations        int      `json:"iterations" toml:"iterations"`
	Weight            float64  `json:"weight_kg" toml:"weight_kg"`
	WeightLb          float64  `json:"weight_lb" toml:"weight_lb"`
	Warnings          []string `json:"warnings,omitempty" toml:"warnings,omitempty"`
}

func (o VesselOutcome) record(r *Report) { r.Vessels = append(r.Vessels, o) }
