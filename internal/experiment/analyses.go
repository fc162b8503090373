package experiment

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/atmosphere"
	"github.com/san-kum/haot/internal/config"
	"github.com/san-kum/haot/internal/optics"
	"github.com/san-kum/haot/internal/quantum"
	"github.com/san-kum/haot/internal/species"
	"github.com/san-kum/haot/internal/units"
	"gonum.org/v1/gonum/mat"
)

const polarizabilityLabel = "polarizability [A^3]"

func angstromCubed(m3 float64) float64 {
	return m3 / units.AngstromCubedToCubicMeter(1)
}

// Kerl sweeps the temperature for every molecule with Kerl parameters at
// cfg.WavelengthNM.
func Kerl(ctx context.Context, cfg *config.Config) (*Result, error) {
	temps := cfg.Temperature.Values()
	res := newResult("kerl", "temperature [K]", polarizabilityLabel, temps)

	for _, mol := range species.Molecules("kerl") {
		alpha, err := sweep(ctx, temps, func(t float64) (float64, error) {
			a, err := optics.KerlPolarizability(t, mol, cfg.WavelengthNM)
			return angstromCubed(a), err
		})
		if err != nil {
			return nil, errors.Wrapf(err, "kerl %s", mol)
		}
		res.Add(mol, alpha)
	}
	return res, nil
}

// rotationalColumns picks up to five evenly spread J values in [0, jmax].
func rotationalColumns(jmax int) []int {
	var out []int
	seen := map[int]bool{}
	for k := 0; k <= 4; k++ {
		j := jmax * k / 4
		if !seen[j] {
			seen[j] = true
			out = append(out, j)
		}
	}
	return out
}

// Buldakov tabulates α(v, J) against v for a handful of rotational levels.
func Buldakov(ctx context.Context, cfg *config.Config) (*Result, error) {
	g, err := optics.BuldakovGrid(cfg.Molecule, cfg.VibrationalMax, cfg.RotationalMax)
	if err != nil {
		return nil, errors.Wrapf(err, "buldakov %s", cfg.Molecule)
	}
	res := newResult("buldakov", "vibrational level v", polarizabilityLabel, intRange(cfg.VibrationalMax))

	for _, j := range rotationalColumns(cfg.RotationalMax) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		col := mat.Col(nil, j, g)
		for i := range col {
			col[i] = angstromCubed(col[i])
		}
		res.Add(fmt.Sprintf("J=%d", j), col)
	}
	res.Metrics["ground"] = angstromCubed(g.At(0, 0))
	return res, nil
}

// Distribution gives the rotational population of cfg.Molecule at every
// temperature of the sweep.
func Distribution(ctx context.Context, cfg *config.Config) (*Result, error) {
	model, err := cfg.Model()
	if err != nil {
		return nil, err
	}
	res := newResult("distribution", "rotational level J", "probability", intRange(cfg.RotationalMax))

	for _, t := range cfg.Temperature.Values() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := quantum.RotationalDistribution(t, cfg.Molecule, cfg.VibrationalMax, cfg.RotationalMax, model)
		if err != nil {
			return nil, errors.Wrapf(err, "distribution %s at %g K", cfg.Molecule, t)
		}
		res.Add(fmt.Sprintf("T=%gK", t), p)
	}
	return res, nil
}

// Partition sweeps the temperature for the total, vibrational and
// rotational partition functions.
func Partition(ctx context.Context, cfg *config.Config) (*Result, error) {
	model, err := cfg.Model()
	if err != nil {
		return nil, err
	}
	temps := cfg.Temperature.Values()
	res := newResult("partition", "temperature [K]", "partition function", temps)
	mol, vmax, jmax := cfg.Molecule, cfg.VibrationalMax, cfg.RotationalMax

	columns := []struct {
		name string
		f    func(t float64) (float64, error)
	}{
		{"total", func(t float64) (float64, error) { return quantum.PartitionFunction(t, mol, vmax, jmax, model) }},
		{"vibrational", func(t float64) (float64, error) { return quantum.VibrationalPartitionFunction(t, mol, vmax) }},
		{"rotational", func(t float64) (float64, error) { return quantum.RotationalPartitionFunction(t, mol, jmax) }},
	}
	for _, c := range columns {
		z, err := sweep(ctx, temps, c.f)
		if err != nil {
			return nil, errors.Wrapf(err, "%s partition function of %s", c.name, mol)
		}
		res.Add(c.name, z)
	}
	return res, nil
}

// Thermal compares the Boltzmann-averaged Buldakov polarizability with
// the Kerl interpolation when the molecule has both.
func Thermal(ctx context.Context, cfg *config.Config) (*Result, error) {
	model, err := cfg.Model()
	if err != nil {
		return nil, err
	}
	temps := cfg.Temperature.Values()
	res := newResult("thermal", "temperature [K]", polarizabilityLabel, temps)
	mol := cfg.Molecule

	avg, err := sweep(ctx, temps, func(t float64) (float64, error) {
		a, err := optics.BuldakovThermalAverage(t, mol, cfg.VibrationalMax, cfg.RotationalMax, model)
		return angstromCubed(a), err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "thermal average of %s", mol)
	}
	res.Add("buldakov", avg)

	if _, err := species.KerlInterpolation(mol); err != nil {
		return res, nil
	}
	kerl, err := sweep(ctx, temps, func(t float64) (float64, error) {
		a, err := optics.KerlPolarizability(t, mol, cfg.WavelengthNM)
		return angstromCubed(a), err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "kerl %s", mol)
	}
	res.Add("kerl", kerl)
	return res, nil
}

// Atmosphere walks the altitude sweep through the standard atmosphere.
func Atmosphere(ctx context.Context, cfg *config.Config) (*Result, error) {
	alts := cfg.Altitude.Values()
	res := newResult("atmosphere", "altitude [m]", "mixed units", alts)
	x := aero.Composition(cfg.Composition)

	props := make([]atmosphere.Properties, len(alts))
	for i, z := range alts {
		p, err := atmosphere.At(z)
		if err != nil {
			return nil, err
		}
		props[i] = p
	}
	column := func(f func(atmosphere.Properties) float64) []float64 {
		out := make([]float64, len(props))
		for i, p := range props {
			out[i] = f(p)
		}
		return out
	}
	res.Add("temperature", column(func(p atmosphere.Properties) float64 { return p.Temperature }))
	res.Add("pressure", column(func(p atmosphere.Properties) float64 { return p.Pressure }))
	res.Add("density", column(func(p atmosphere.Properties) float64 { return p.Density }))

	refractivity, err := sweep(ctx, alts, func(z float64) (float64, error) {
		n, err := optics.AtmosphericIndexOfRefraction(z, cfg.VaporPressureMbar)
		return (n - 1) * 1e6, err
	})
	if err != nil {
		return nil, err
	}
	res.Add("refractivity", refractivity)

	gd, err := sweep(ctx, alts, func(z float64) (float64, error) {
		return optics.AtmosphericGladstoneDale(z, x)
	})
	if err != nil {
		return nil, err
	}
	res.Add("gladstone_dale", gd)
	return res, nil
}

// Gladstone lists the computed constant of every species. Karl's
// empirical values and the constant of cfg.Composition, if any, go to
// the metrics.
func Gladstone(ctx context.Context, cfg *config.Config) (*Result, error) {
	k := optics.GladstoneDaleConstants()
	names := aero.Composition(k).Species()

	res := newResult("gladstone", "species", "Gladstone-Dale constant [m^3/kg]", intRange(len(names)-1))
	res.Labels = names
	values := make([]float64, len(names))
	for i, name := range names {
		values[i] = k[name]
	}
	res.Add("computed", values)

	for name, v := range species.Karl2003() {
		res.Metrics["karl_2003."+name] = v
	}
	if len(cfg.Composition) > 0 {
		m, err := optics.GladstoneDale(aero.Composition(cfg.Composition))
		if err != nil {
			return nil, err
		}
		res.Metrics["mixture"] = m.Total
	}
	return res, ctx.Err()
}
