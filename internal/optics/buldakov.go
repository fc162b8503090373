package optics

import (
	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/quantum"
	"github.com/san-kum/haot/internal/species"
	"gonum.org/v1/gonum/mat"
)

// buldakov caches the per-molecule inputs of the expansion.
type buldakov struct {
	r  float64 // Be/ωe
	d  quantum.Dunham
	pd species.Derivatives
}

func newBuldakov(molecule string) (buldakov, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return buldakov{}, err
	}
	pd, err := species.PolarizabilityDerivatives(molecule)
	if err != nil {
		return buldakov{}, err
	}
	d, err := quantum.DunhamCoefficients(molecule)
	if err != nil {
		return buldakov{}, err
	}
	return buldakov{r: c.BE / c.OmegaE, d: d, pd: pd}, nil
}

// at evaluates αe + α1⟨ξ⟩ + α2⟨ξ²⟩/2 + α3⟨ξ³⟩/6, αk the k-th derivative,
// with the moments of the Dunham oscillator to second order in Be/ωe.
func (b buldakov) at(v, j int) float64 {
	r, r2 := b.r, b.r*b.r
	a1, a2, a3 := b.d.A1, b.d.A2, b.d.A3
	x := float64(v) + 0.5
	x2 := x * x
	l := float64(j) * float64(j+1)
	a1sq := a1 * a1
	a1cb := a1sq * a1

	xi1 := -3*a1*r*x + r2*(4*l-
		3*(5*a3-13*a1*a2+7.5*a1cb)*x2-
		0.25*(15*a3-23*a1*a2+10.5*a1cb))
	xi2 := 2*r*x + r2*((15*a1sq-6*a2)*x2+(1.75*a1sq-1.5*a2))
	xi3 := -r2 * a1 * (15*x2 + 1.75)

	return b.pd.Zeroth + b.pd.First*xi1 + b.pd.Second*xi2/2 + b.pd.Third*xi3/6
}

func checkQuantumNumbers(v, j int, molecule string) error {
	vmax, err := quantum.MaxVibrational(molecule)
	if err != nil {
		return err
	}
	if v < 0 || v > vmax {
		return aero.InvalidInput("vibrational number", molecule, float64(v))
	}
	if j < 0 {
		return aero.InvalidInput("rotational number", molecule, float64(j))
	}
	return nil
}

// BuldakovExpansion returns the polarizability of molecule in level (v, J),
// m^3, following Buldakov et al.
func BuldakovExpansion(v, j int, molecule string) (float64, error) {
	b, err := newBuldakov(molecule)
	if err != nil {
		return 0, err
	}
	if err := checkQuantumNumbers(v, j, molecule); err != nil {
		return 0, err
	}
	return b.at(v, j), nil
}

// BuldakovGrid evaluates the expansion for every v ≤ vmax, J ≤ jmax. Rows
// are v, columns J, matching quantum.JointDistribution.
func BuldakovGrid(molecule string, vmax, jmax int) (*mat.Dense, error) {
	b, err := newBuldakov(molecule)
	if err != nil {
		return nil, err
	}
	if err := checkQuantumNumbers(vmax, jmax, molecule); err != nil {
		return nil, err
	}
	g := mat.NewDense(vmax+1, jmax+1, nil)
	for v := 0; v <= vmax; v++ {
		for j := 0; j <= jmax; j++ {
			g.Set(v, j, b.at(v, j))
		}
	}
	return g, nil
}

// BuldakovThermalAverage weighs the state polarizabilities with the
// equilibrium populations at temperature t, m^3.
func BuldakovThermalAverage(t float64, molecule string, vmax, jmax int, model quantum.EnergyModel) (float64, error) {
	g, err := BuldakovGrid(molecule, vmax, jmax)
	if err != nil {
		return 0, err
	}
	p, err := quantum.JointDistribution(t, molecule, vmax, jmax, model)
	if err != nil {
		return 0, err
	}
	var w mat.Dense
	w.MulElem(g, p)
	return mat.Sum(&w), nil
}
