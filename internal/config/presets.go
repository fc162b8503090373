package config

import "sort"

func preset(experiment string, edit func(*Config)) *Config {
	cfg := DefaultConfig()
	cfg.Experiment = experiment
	edit(cfg)
	return cfg
}

var Presets = map[string]map[string]*Config{
	"atmosphere": {
		"dry": preset("atmosphere", func(c *Config) {
			c.Composition = map[string]float64{"N2": 0.79, "O2": 0.21}
		}),
		"rain": preset("atmosphere", func(c *Config) {
			c.Composition = map[string]float64{"N2": 0.79, "O2": 0.21}
			c.VaporPressureMbar = 20
			c.Altitude = Sweep{Start: 0, Stop: 10000, Step: 500}
		}),
	},
	"kerl": {
		"633nm": preset("kerl", func(c *Config) {
			c.WavelengthNM = 633
			c.Temperature = Sweep{Start: 0, Stop: 1000, Step: 50}
		}),
		"532nm": preset("kerl", func(c *Config) {
			c.WavelengthNM = 532
			c.Temperature = Sweep{Start: 0, Stop: 1000, Step: 50}
		}),
	},
	"buldakov": {
		"N2": preset("buldakov", func(c *Config) {
			c.Molecule = "N2"
			c.VibrationalMax = 20
			c.RotationalMax = 100
		}),
		"O2": preset("buldakov", func(c *Config) {
			c.Molecule = "O2"
			c.VibrationalMax = 20
			c.RotationalMax = 100
		}),
	},
	"distribution": {
		"O2_J30": preset("distribution", func(c *Config) {
			c.Molecule = "O2"
			c.RotationalMax = 30
			c.VibrationalMax = 10
			c.Temperature = Sweep{Start: 300, Stop: 3000, Step: 300}
		}),
	},
}

// GetPreset returns a copy of the named preset, nil if there is none.
func GetPreset(experiment, name string) *Config {
	byName, ok := Presets[experiment]
	if !ok {
		return nil
	}
	cfg, ok := byName[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(experiment string) []string {
	byName, ok := Presets[experiment]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListExperiments names the experiments that have presets.
func ListExperiments() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
