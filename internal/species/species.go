// Package species holds the per-species physical and spectroscopic
// constant tables.
//
// Tables are plain data. Map getters return a fresh copy on every call,
// struct getters return values, so callers may modify what they receive.
package species

import (
	"sort"

	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/units"
)

// Spectroscopy holds diatomic band constants, all in cm^-1 except RE.
type Spectroscopy struct {
	OmegaE  float64 `yaml:"omega_e"`  // harmonic vibrational frequency
	OmegaXE float64 `yaml:"omega_xe"` // first anharmonicity
	BE      float64 `yaml:"b_e"`      // equilibrium rotational constant
	AlphaE  float64 `yaml:"alpha_e"`  // vibration-rotation coupling
	DE      float64 `yaml:"d_e"`      // centrifugal distortion
	RE      float64 `yaml:"r_e"`      // equilibrium bond length, A
}

// Derivatives are the mean polarizability and its first
// three derivatives with respect to the reduced displacement ξ = (r-re)/re,
// in m^3.
type Derivatives struct {
	Zeroth float64
	First  float64
	Second float64
	Third  float64
}

// Kerl parameterizes the temperature and frequency dependent mean
// polarizability of Kerl, Hohm and Varnhorst (1992).
type Kerl struct {
	GroundPolarizability float64 // m^3
	GroundFrequency      float64 // rad/s
	B                    float64 // 1/K
	C                    float64 // 1/K^2
}

// polarizability in cm^3, SU2/Mutation++ convention.
var polarizability = map[string]float64{
	aero.NP:  0.559e-24,
	aero.OP:  0.345e-24,
	aero.NOP: 1.021e-24,
	aero.N2P: 2.386e-24,
	aero.O2P: 0.238e-24,
	aero.N:   1.100e-24,
	aero.O:   0.802e-24,
	aero.NO:  1.700e-24,
	aero.N2:  1.7403e-24,
	aero.O2:  1.5689e-24,
}

// karl2003 Gladstone-Dale constants in m^3/kg, AIAA 2003-4252.
var karl2003 = map[string]float64{
	aero.N:  0.301e-3,
	aero.O:  0.182e-3,
	aero.NO: 0.221e-3,
	aero.N2: 0.238e-3,
	aero.O2: 0.190e-3,
}

// neutral molar masses in g/mol
var neutralMolarMass = map[string]float64{
	aero.N:   14.0067,
	aero.O:   15.9994,
	aero.NO:  30.0061,
	aero.N2:  28.0134,
	aero.O2:  31.9988,
	aero.H2:  2.01588,
	aero.Air: 28.9647,
}

// Huber and Herzberg, Constants of Diatomic Molecules (NIST WebBook).
var spectroscopy = map[string]Spectroscopy{
	aero.N2:  {OmegaE: 2358.57, OmegaXE: 14.324, BE: 1.99824, AlphaE: 0.017318, DE: 5.76e-6, RE: 1.09768},
	aero.O2:  {OmegaE: 1580.193, OmegaXE: 11.981, BE: 1.44563, AlphaE: 0.01593, DE: 4.839e-6, RE: 1.20752},
	aero.H2:  {OmegaE: 4401.21, OmegaXE: 121.33, BE: 60.853, AlphaE: 3.062, DE: 0.0471, RE: 0.74144},
	aero.N2P: {OmegaE: 2207.00, OmegaXE: 16.10, BE: 1.93176, AlphaE: 0.01881, DE: 6.10e-6, RE: 1.11642},
	aero.O2P: {OmegaE: 1904.70, OmegaXE: 16.25, BE: 1.6913, AlphaE: 0.01976, DE: 5.29e-6, RE: 1.1164},
	aero.NO:  {OmegaE: 1904.20, OmegaXE: 14.075, BE: 1.67195, AlphaE: 0.0171, DE: 0.54e-6, RE: 1.15077},
	aero.NOP: {OmegaE: 2376.72, OmegaXE: 16.255, BE: 1.99727, AlphaE: 0.01889, DE: 5.64e-6, RE: 1.06322},
}

// Buldakov et al., "Temperature dependence of polarizability of diatomic
// homonuclear molecules", values in A^3.
var derivatives = map[string][4]float64{
	aero.H2: {0.7849, 0.90, 0.49, -0.85},
	aero.N2: {1.7801, 1.86, 1.2, -4.6},
	aero.O2: {1.6180, 1.76, 3.4, -23.7},
}

// Kerl et al., Ber. Bunsenges. Phys. Chem. 96, 753 (1992).
// {alpha0 A^3, omega0 1e16 rad/s, b 1e-6/K, c 1e-9/K^2}
var kerl = map[string][4]float64{
	aero.H2:  {0.80320, 2.1399, 5.87, 7.544},
	aero.N2:  {1.7406, 2.6049, 1.8, 0.683},
	aero.O2:  {1.5658, 2.1801, -2.369, 8.687},
	aero.Air: {1.6970, 2.47044, 10.6, 7.909},
}

func copyTable(src map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Polarizability returns the static polarizability volume per species, cm^3.
func Polarizability() map[string]float64 {
	return copyTable(polarizability)
}

// Karl2003 returns the empirical Gladstone-Dale constant per species, m^3/kg.
func Karl2003() map[string]float64 {
	return copyTable(karl2003)
}

// MolarMass returns the molar mass per species in g/mol. Ion masses are
// the parent neutral less one electron.
func MolarMass() map[string]float64 {
	out := copyTable(neutralMolarMass)
	for _, ion := range aero.IonSpecies {
		out[ion] = neutralMolarMass[aero.Neutral(ion)] - units.ElectronMolarMass
	}
	return out
}

// MolarMassOf looks up a single species.
func MolarMassOf(name string) (float64, error) {
	if m, ok := neutralMolarMass[name]; ok {
		return m, nil
	}
	if aero.IsIon(name) {
		if m, ok := neutralMolarMass[aero.Neutral(name)]; ok {
			if _, known := polarizability[name]; known {
				return m - units.ElectronMolarMass, nil
			}
		}
	}
	return 0, aero.UnknownSpecies(name, "molar mass")
}

// PolarizabilityOf looks up a single species, cm^3.
func PolarizabilityOf(name string) (float64, error) {
	a, ok := polarizability[name]
	if !ok {
		return 0, aero.UnknownSpecies(name, "polarizability")
	}
	return a, nil
}

func SpectroscopyConstants(molecule string) (Spectroscopy, error) {
	s, ok := spectroscopy[molecule]
	if !ok {
		return Spectroscopy{}, aero.UnknownSpecies(molecule, "spectroscopy")
	}
	return s, nil
}

func PolarizabilityDerivatives(molecule string) (Derivatives, error) {
	d, ok := derivatives[molecule]
	if !ok {
		return Derivatives{}, aero.UnknownSpecies(molecule, "polarizability derivatives")
	}
	return Derivatives{
		Zeroth: units.AngstromCubedToCubicMeter(d[0]),
		First:  units.AngstromCubedToCubicMeter(d[1]),
		Second: units.AngstromCubedToCubicMeter(d[2]),
		Third:  units.AngstromCubedToCubicMeter(d[3]),
	}, nil
}

func KerlInterpolation(molecule string) (Kerl, error) {
	k, ok := kerl[molecule]
	if !ok {
		return Kerl{}, aero.UnknownSpecies(molecule, "Kerl interpolation")
	}
	return Kerl{
		GroundPolarizability: units.AngstromCubedToCubicMeter(k[0]),
		GroundFrequency:      k[1] * 1e16,
		B:                    k[2] * 1e-6,
		C:                    k[3] * 1e-9,
	}, nil
}

// Molecules lists the names accepted by each molecule-keyed table, sorted.
func Molecules(table string) []string {
	var names []string
	switch table {
	case "spectroscopy":
		for k := range spectroscopy {
			names = append(names, k)
		}
	case "derivatives":
		for k := range derivatives {
			names = append(names, k)
		}
	case "kerl":
		for k := range kerl {
			names = append(names, k)
		}
	default:
		return nil
	}
	sort.Strings(names)
	return names
}
