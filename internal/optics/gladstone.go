package optics

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/species"
	"github.com/san-kum/haot/internal/units"
)

// TotalKey names the mixture entry in GladstoneDaleMixture.Map.
const TotalKey = "gladstone_dale"

// GladstoneDaleMixture holds the mass-weighted contribution of every
// species and their sum, m^3/kg.
type GladstoneDaleMixture struct {
	Species map[string]float64 `json:"species"`
	Total   float64            `json:"gladstone_dale"`
}

// Map flattens the mixture into species keys plus TotalKey.
func (m GladstoneDaleMixture) Map() map[string]float64 {
	out := make(map[string]float64, len(m.Species)+1)
	for k, v := range m.Species {
		out[k] = v
	}
	out[TotalKey] = m.Total
	return out
}

// GladstoneDaleConstants returns the specific Gladstone-Dale constant
// K = α·NA/(2ε0·M) of every species with a tabulated polarizability, m^3/kg.
// For a dilute gas n − 1 = Σ Ki·ρi.
func GladstoneDaleConstants() map[string]float64 {
	pol := species.Polarizability()
	mass := species.MolarMass()
	out := make(map[string]float64, len(pol))
	for name, a := range pol {
		m := units.GramPerMoleToKilogramPerMole(mass[name])
		out[name] = units.PolarizabilityCGSToSI(a) * units.Avogadro / (2 * units.VacuumPermittivity * m)
	}
	return out
}

// GladstoneDale weighs each species constant by its mass fraction.
func GladstoneDale(c aero.Composition) (GladstoneDaleMixture, error) {
	return mixture(c, GladstoneDaleConstants(), "Gladstone-Dale")
}

// EmpiricalGladstoneDale is GladstoneDale with the Karl (2003) constants.
// Only neutral species are tabulated.
func EmpiricalGladstoneDale(c aero.Composition) (GladstoneDaleMixture, error) {
	return mixture(c, species.Karl2003(), "Karl 2003")
}

func mixture(c aero.Composition, constants map[string]float64, table string) (GladstoneDaleMixture, error) {
	names := c.Species()
	total := 0.0
	for _, name := range names {
		if _, ok := constants[name]; !ok {
			return GladstoneDaleMixture{}, errors.Wrap(aero.UnknownSpecies(name, table), "Gladstone-Dale mixture")
		}
		if err := checkDensity(name, c[name]); err != nil {
			return GladstoneDaleMixture{}, errors.Wrap(err, "Gladstone-Dale mixture")
		}
		total += c[name]
	}
	if total == 0 {
		return GladstoneDaleMixture{}, aero.Degenerate("Gladstone-Dale mixture",
			fmt.Sprintf("total density of %d species is zero", len(names)))
	}

	m := GladstoneDaleMixture{Species: make(map[string]float64, len(names))}
	for _, name := range names {
		k := constants[name] * c[name] / total
		m.Species[name] = k
		m.Total += k
	}
	return m, nil
}
