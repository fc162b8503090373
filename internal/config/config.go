package config

import (
	"math"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/san-kum/haot/internal/quantum"
	"gopkg.in/yaml.v3"
)

const (
	DefaultExperiment     = "kerl"
	DefaultMolecule       = "N2"
	DefaultWavelengthNM   = 633.0
	DefaultEnergyModel    = "coupled"
	DefaultVibrationalMax = 10
	DefaultRotationalMax  = 60
)

type Config struct {
	Experiment        string             `yaml:"experiment"`
	DataDir           string             `yaml:"data_dir"`
	OutputDir         string             `yaml:"output_dir"`
	InputDir          string             `yaml:"input_dir"`
	Files             []string           `yaml:"files,omitempty"`
	Molecule          string             `yaml:"molecule"`
	WavelengthNM      float64            `yaml:"wavelength_nm"`
	EnergyModel       string             `yaml:"energy_model"`
	Temperature       Sweep              `yaml:"temperature"`
	Altitude          Sweep              `yaml:"altitude"`
	VibrationalMax    int                `yaml:"vibrational_max"`
	RotationalMax     int                `yaml:"rotational_max"`
	VaporPressureMbar float64            `yaml:"vapor_pressure_mbar"`
	Composition       map[string]float64 `yaml:"composition,omitempty"`
	IncidentIndex     float64            `yaml:"incident_index"`
	PathLengthM       float64            `yaml:"path_length_m"`
}

// Sweep is an inclusive range walked in fixed steps.
type Sweep struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

// Values expands the sweep. A zero step yields Start alone.
func (s Sweep) Values() []float64 {
	if s.Step <= 0 || s.Stop <= s.Start {
		return []float64{s.Start}
	}
	n := int(math.Floor((s.Stop-s.Start)/s.Step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Start + float64(i)*s.Step
	}
	return out
}

func (s Sweep) validate(name string) error {
	if math.IsNaN(s.Start) || math.IsNaN(s.Stop) || math.IsNaN(s.Step) {
		return errors.Newf("%s sweep has NaN bounds", name)
	}
	if s.Step < 0 {
		return errors.Newf("%s sweep step %g is negative", name, s.Step)
	}
	if s.Stop < s.Start {
		return errors.Newf("%s sweep stops at %g before it starts at %g", name, s.Stop, s.Start)
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Experiment:     DefaultExperiment,
		DataDir:        "runs",
		OutputDir:      "output",
		InputDir:       "data",
		Molecule:       DefaultMolecule,
		WavelengthNM:   DefaultWavelengthNM,
		EnergyModel:    DefaultEnergyModel,
		Temperature:    Sweep{Start: 100, Stop: 3000, Step: 100},
		Altitude:       Sweep{Start: 0, Stop: 80000, Step: 2000},
		VibrationalMax: DefaultVibrationalMax,
		RotationalMax:  DefaultRotationalMax,
		IncidentIndex:  1.0,
		PathLengthM:    1.0,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the ranges the analyses cannot recover from. Species
// and molecule names are left to the physics packages.
func (c *Config) Validate() error {
	if _, err := c.Model(); err != nil {
		return err
	}
	if c.DataDir == "" || c.OutputDir == "" {
		return errors.New("data_dir and output_dir must be set")
	}
	if !(c.WavelengthNM > 0) {
		return errors.Newf("wavelength %g nm must be positive", c.WavelengthNM)
	}
	if c.VibrationalMax < 0 || c.RotationalMax < 0 {
		return errors.Newf("quantum number cutoffs (%d, %d) must not be negative",
			c.VibrationalMax, c.RotationalMax)
	}
	if c.VaporPressureMbar < 0 {
		return errors.Newf("vapor pressure %g mbar must not be negative", c.VaporPressureMbar)
	}
	if !(c.IncidentIndex > 0) {
		return errors.Newf("incident index %g must be positive", c.IncidentIndex)
	}
	if err := c.Temperature.validate("temperature"); err != nil {
		return err
	}
	return c.Altitude.validate("altitude")
}

// Model parses EnergyModel.
func (c *Config) Model() (quantum.EnergyModel, error) {
	return quantum.ParseEnergyModel(c.EnergyModel)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	if c.Files != nil {
		out.Files = append([]string(nil), c.Files...)
	}
	if c.Composition != nil {
		out.Composition = make(map[string]float64, len(c.Composition))
		for k, v := range c.Composition {
			out.Composition[k] = v
		}
	}
	return &out
}
