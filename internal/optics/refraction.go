package optics

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/species"
	"github.com/san-kum/haot/internal/units"
)

// Refraction carries a quantity evaluated with both the dilute and the
// dense (Lorentz-Lorenz) index of refraction.
type Refraction struct {
	Dilute float64 `json:"dilute"`
	Dense  float64 `json:"dense"`
}

func (r Refraction) apply(f func(float64) float64) Refraction {
	return Refraction{Dilute: f(r.Dilute), Dense: f(r.Dense)}
}

// polarizationSum returns Σ αi·Ni in SI units (F/m).
func polarizationSum(c aero.Composition) (float64, error) {
	sum := 0.0
	for _, name := range c.Species() {
		a, err := species.PolarizabilityOf(name)
		if err != nil {
			return 0, err
		}
		n, err := numberDensity(name, c[name])
		if err != nil {
			return 0, err
		}
		sum += units.PolarizabilityCGSToSI(a) * n
	}
	return sum, nil
}

// IndexOfRefraction returns n = 1 + Σ αiNi/(2ε0) and the Clausius-Mossotti
// solution n = sqrt((2x+1)/(1-x)), x = Σ αiNi/(3ε0).
func IndexOfRefraction(c aero.Composition) (Refraction, error) {
	sum, err := polarizationSum(c)
	if err != nil {
		return Refraction{}, errors.Wrap(err, "index of refraction")
	}

	eps0 := units.VacuumPermittivity
	x := sum / (3 * eps0)
	if x >= 1 {
		return Refraction{}, aero.Degenerate("dense index of refraction",
			fmt.Sprintf("Clausius-Mossotti term %g is not below 1", x))
	}

	return Refraction{
		Dilute: 1 + sum/(2*eps0),
		Dense:  math.Sqrt((2*x + 1) / (1 - x)),
	}, nil
}

// Reflectivity is the normal-incidence Fresnel reflectance from a medium of
// index nIncident.
func Reflectivity(n Refraction, nIncident float64) Refraction {
	return n.apply(func(v float64) float64 {
		r := (nIncident - v) / (nIncident + v)
		return r * r
	})
}

// DielectricMaterialConst returns the permittivity ε0·n², F/m.
func DielectricMaterialConst(n Refraction) Refraction {
	return n.apply(func(v float64) float64 {
		return units.VacuumPermittivity * v * v
	})
}

// OpticalPathLength returns n·distance.
func OpticalPathLength(n Refraction, distance float64) Refraction {
	return n.apply(func(v float64) float64 {
		return v * distance
	})
}
