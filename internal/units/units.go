// Package units converts between the spectroscopic, CGS and SI units used
// by the optics and quantum packages.
package units

import (
	"math"

	"gonum.org/v1/gonum/unit/constant"
)

// SI values of the physical constants the toolkit needs.
const (
	Avogadro           = float64(constant.Avogadro)           // 1/mol
	Boltzmann          = float64(constant.Boltzmann)          // J/K
	Planck             = float64(constant.Planck)             // J s
	SpeedOfLight       = float64(constant.LightSpeedInVacuum) // m/s
	VacuumPermittivity = float64(constant.ElectricConstant)   // F/m

	// ElectronMolarMass is the molar mass of the electron, g/mol.
	ElectronMolarMass = 5.48579909065e-4
)

// SecondRadiation is hc/k in cm K.
const SecondRadiation = Planck * SpeedOfLight * 100 / Boltzmann

// WavenumberToJoule converts a wavenumber in cm^-1 to energy in J.
func WavenumberToJoule(k float64) float64 {
	return k * 100 * Planck * SpeedOfLight
}

// JouleToWavenumber converts energy in J to a wavenumber in cm^-1.
func JouleToWavenumber(e float64) float64 {
	return e / (100 * Planck * SpeedOfLight)
}

// WavenumberToKelvin converts a wavenumber in cm^-1 to its characteristic temperature.
func WavenumberToKelvin(k float64) float64 {
	return k * SecondRadiation
}

// GramPerMoleToKilogramPerMole converts g/mol to kg/mol.
func GramPerMoleToKilogramPerMole(m float64) float64 {
	return m * 1e-3
}

// MolarMassToKilogram returns the mass of a single particle, kg, of a
// species with molar mass m in g/mol.
func MolarMassToKilogram(m float64) float64 {
	return GramPerMoleToKilogramPerMole(m) / Avogadro
}

// PolarizabilityCGSToSI converts a polarizability volume in cm^3 to the SI
// polarizability in C m^2/V (F m^2).
func PolarizabilityCGSToSI(alpha float64) float64 {
	return alpha * 4 * math.Pi * VacuumPermittivity * 1e-6
}

// AngstromCubedToCubicMeter converts a polarizability volume in A^3 to m^3.
func AngstromCubedToCubicMeter(alpha float64) float64 {
	return alpha * 1e-30
}

// AngularFrequency returns 2πc/λ in rad/s for a wavelength in nm. An
// infinite wavelength is the static limit and yields 0.
func AngularFrequency(wavelengthNM float64) float64 {
	if math.IsInf(wavelengthNM, 1) {
		return 0
	}
	return 2 * math.Pi * SpeedOfLight / (wavelengthNM * 1e-9)
}
