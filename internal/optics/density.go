package optics

import (
	"math"

	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/species"
	"github.com/san-kum/haot/internal/units"
)

func checkDensity(name string, rho float64) error {
	if math.IsNaN(rho) || math.IsInf(rho, 0) || rho < 0 {
		return aero.InvalidInput("density", name, rho)
	}
	return nil
}

func numberDensity(name string, rho float64) (float64, error) {
	if err := checkDensity(name, rho); err != nil {
		return 0, err
	}
	m, err := species.MolarMassOf(name)
	if err != nil {
		return 0, err
	}
	return rho * units.Avogadro / units.GramPerMoleToKilogramPerMole(m), nil
}

// GasNumberDensity converts mass densities (kg/m^3) to number densities
// (particles/m^3).
func GasNumberDensity(c aero.Composition) (aero.Composition, error) {
	out := make(aero.Composition, len(c))
	for _, name := range c.Species() {
		n, err := numberDensity(name, c[name])
		if err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, nil
}
