package optics

import (
	"github.com/cockroachdb/errors"
	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/atmosphere"
	"github.com/san-kum/haot/internal/species"
)

// DryAir mole fractions.
var DryAir = aero.Composition{aero.N2: 0.79, aero.O2: 0.21}

// AtmosphericIndexOfRefraction evaluates the empirical refractivity
// N = 79·P/T − 11·e/T + 3.8e5·e/T² with P and the water vapor partial
// pressure e in mbar, and returns 1 + N·1e-6.
func AtmosphericIndexOfRefraction(altitude, vaporPressure float64) (float64, error) {
	if !(vaporPressure >= 0) {
		return 0, aero.InvalidInput("vapor pressure", "", vaporPressure)
	}
	p, err := atmosphere.At(altitude)
	if err != nil {
		return 0, err
	}
	t := p.Temperature
	mbar := p.Pressure * 0.01

	refractivity := 79*mbar/t - 11*vaporPressure/t + 3.8e5*vaporPressure/(t*t)
	return 1 + refractivity*1e-6, nil
}

// AtmosphericGladstoneDale returns (n − 1)/ρ of the standard atmosphere at
// altitude for a gas of the given mole fractions. A nil or empty
// composition means DryAir.
func AtmosphericGladstoneDale(altitude float64, moleFractions aero.Composition) (float64, error) {
	if len(moleFractions) == 0 {
		moleFractions = DryAir
	}
	p, err := atmosphere.At(altitude)
	if err != nil {
		return 0, err
	}

	massDensity, err := partialDensities(moleFractions, p.Density)
	if err != nil {
		return 0, errors.Wrap(err, "atmospheric Gladstone-Dale")
	}
	n, err := IndexOfRefraction(massDensity)
	if err != nil {
		return 0, err
	}
	return (n.Dilute - 1) / p.Density, nil
}

// partialDensities splits rho among species by mole fraction.
func partialDensities(x aero.Composition, rho float64) (aero.Composition, error) {
	names := x.Species()
	mean := 0.0
	for _, name := range names {
		if err := checkDensity(name, x[name]); err != nil {
			return nil, err
		}
		m, err := species.MolarMassOf(name)
		if err != nil {
			return nil, err
		}
		mean += x[name] * m
	}
	if mean == 0 {
		return nil, aero.Degenerate("mole fraction conversion", "mole fractions sum to zero")
	}

	out := make(aero.Composition, len(names))
	for _, name := range names {
		m, _ := species.MolarMassOf(name)
		out[name] = rho * x[name] * m / mean
	}
	return out, nil
}
