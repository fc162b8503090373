package quantum

import (
	"math"

	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/species"
	"github.com/san-kum/haot/internal/units"
)

func checkTemperature(t float64, molecule string) error {
	if !(t > 0) || math.IsInf(t, 0) {
		return aero.InvalidInput("temperature", molecule, t)
	}
	return nil
}

func checkCutoffs(c species.Spectroscopy, molecule string, vmax, jmax int) error {
	return checkState(c, molecule, State{V: vmax, J: jmax})
}

// weight is the degeneracy-weighted Boltzmann factor of a level whose
// energy is e cm^-1 above the reference.
func weight(e float64, j int, t float64) float64 {
	return float64(2*j+1) * math.Exp(-units.SecondRadiation*e/t)
}

// BoltzmannFactor returns (2J+1)·exp(−hcE/kT) with E the level energy
// under model, measured from the potential minimum.
func BoltzmannFactor(t float64, molecule string, s State, model EnergyModel) (float64, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return 0, err
	}
	if err := checkTemperature(t, molecule); err != nil {
		return 0, err
	}
	if err := checkState(c, molecule, s); err != nil {
		return 0, err
	}
	return weight(energy(c, s, model), s.J, t), nil
}

// PartitionFunction sums Boltzmann factors over 0 ≤ v ≤ vmax, 0 ≤ J ≤ jmax.
func PartitionFunction(t float64, molecule string, vmax, jmax int, model EnergyModel) (float64, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return 0, err
	}
	if err := checkTemperature(t, molecule); err != nil {
		return 0, err
	}
	if err := checkCutoffs(c, molecule, vmax, jmax); err != nil {
		return 0, err
	}

	z := 0.0
	for v := 0; v <= vmax; v++ {
		for j := 0; j <= jmax; j++ {
			z += weight(energy(c, State{v, j}, model), j, t)
		}
	}
	return z, nil
}

// VibrationalPartitionFunction sums exp(−hcEv/kT) over 0 ≤ v ≤ vmax.
func VibrationalPartitionFunction(t float64, molecule string, vmax int) (float64, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return 0, err
	}
	if err := checkTemperature(t, molecule); err != nil {
		return 0, err
	}
	if err := checkCutoffs(c, molecule, vmax, 0); err != nil {
		return 0, err
	}

	z := 0.0
	for v := 0; v <= vmax; v++ {
		z += weight(vibrational(c, v), 0, t)
	}
	return z, nil
}

// RotationalPartitionFunction sums (2J+1)·exp(−hcEJ/kT) over 0 ≤ J ≤ jmax.
func RotationalPartitionFunction(t float64, molecule string, jmax int) (float64, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return 0, err
	}
	if err := checkTemperature(t, molecule); err != nil {
		return 0, err
	}
	if err := checkCutoffs(c, molecule, 0, jmax); err != nil {
		return 0, err
	}

	z := 0.0
	for j := 0; j <= jmax; j++ {
		z += weight(rotational(c, j), j, t)
	}
	return z, nil
}
