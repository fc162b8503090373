package quantum

import (
	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/species"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// JointDistribution returns the equilibrium population of every level
// (v, J) with v ≤ vmax and J ≤ jmax. Rows are v, columns J.
func JointDistribution(t float64, molecule string, vmax, jmax int, model EnergyModel) (*mat.Dense, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return nil, err
	}
	if err := checkTemperature(t, molecule); err != nil {
		return nil, err
	}
	if err := checkCutoffs(c, molecule, vmax, jmax); err != nil {
		return nil, err
	}

	// energies measured from the ground level keep the weights in range at
	// low temperature; the normalized result is unchanged.
	ground := energy(c, State{}, model)
	p := mat.NewDense(vmax+1, jmax+1, nil)
	for v := 0; v <= vmax; v++ {
		for j := 0; j <= jmax; j++ {
			p.Set(v, j, weight(energy(c, State{v, j}, model)-ground, j, t))
		}
	}

	// the ground level contributes exactly 1, so the sum never vanishes.
	p.Scale(1/mat.Sum(p), p)
	return p, nil
}

// VibrationalDistribution returns the population of each v ≤ vmax summed
// over J ≤ jmax.
func VibrationalDistribution(t float64, molecule string, vmax, jmax int, model EnergyModel) ([]float64, error) {
	p, err := JointDistribution(t, molecule, vmax, jmax, model)
	if err != nil {
		return nil, err
	}
	out := make([]float64, vmax+1)
	for v := range out {
		out[v] = floats.Sum(mat.Row(nil, v, p))
	}
	return out, nil
}

// RotationalDistribution returns the population of each J ≤ jmax summed
// over v ≤ vmax.
func RotationalDistribution(t float64, molecule string, vmax, jmax int, model EnergyModel) ([]float64, error) {
	p, err := JointDistribution(t, molecule, vmax, jmax, model)
	if err != nil {
		return nil, err
	}
	out := make([]float64, jmax+1)
	for j := range out {
		out[j] = floats.Sum(mat.Col(nil, j, p))
	}
	return out, nil
}

// ProbabilityOfState returns the population of s among the levels bounded
// by vmax and jmax.
func ProbabilityOfState(t float64, molecule string, s State, vmax, jmax int, model EnergyModel) (float64, error) {
	if s.V < 0 || s.V > vmax {
		return 0, aero.InvalidInput("vibrational number", molecule, float64(s.V))
	}
	if s.J < 0 || s.J > jmax {
		return 0, aero.InvalidInput("rotational number", molecule, float64(s.J))
	}
	p, err := JointDistribution(t, molecule, vmax, jmax, model)
	if err != nil {
		return 0, err
	}
	return p.At(s.V, s.J), nil
}
