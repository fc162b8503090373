package optics

import (
	"fmt"
	"math"

	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/species"
	"github.com/san-kum/haot/internal/units"
)

// KerlPolarizability returns the mean polarizability, m^3,
//
//	α(T, ω) = α0·(1 + bT + cT²) / (1 − (ω/ω0)²)
//
// at temperature t in K and vacuum wavelength in nm. An infinite
// wavelength gives the static polarizability. At T = 0 the result reduces
// to the ground polarizability α0 only in that static limit: at a finite
// wavelength it keeps the dispersion factor, about 1.013·α0 for N2 at
// 633 nm.
func KerlPolarizability(t float64, molecule string, wavelengthNM float64) (float64, error) {
	k, err := species.KerlInterpolation(molecule)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return 0, aero.InvalidInput("temperature", molecule, t)
	}
	if !(wavelengthNM > 0) {
		return 0, aero.InvalidInput("wavelength", molecule, wavelengthNM)
	}

	ratio := units.AngularFrequency(wavelengthNM) / k.GroundFrequency
	d := 1 - ratio*ratio
	if math.Abs(d) < 1e-12 {
		return 0, aero.Degenerate("Kerl polarizability",
			fmt.Sprintf("%g nm is resonant with %s", wavelengthNM, molecule))
	}
	return k.GroundPolarizability * (1 + k.B*t + k.C*t*t) / d, nil
}
