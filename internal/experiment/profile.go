package experiment

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/dataset"
	"github.com/san-kum/haot/internal/optics"
	log "github.com/sirupsen/logrus"
)

// Profile evaluates the optical response along a CFD heat-bath run:
// temperatures, n − 1 in both forms, the mixture Gladstone-Dale constant,
// its value frozen at the initial composition and each species
// contribution. Runs with ions also get the ion mass fraction. The
// metrics carry the correlation of the mixture constant with Tt, Tv and
// sqrt(Tt·Tv).
func Profile(ctx context.Context, d *dataset.Dataset) (*Result, error) {
	p := d.Densities()

	index, err := optics.IndexOfRefractionSeries(p)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", d.Name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gd, err := optics.GladstoneDaleSeries(p)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", d.Name)
	}

	res := newResult("profile_"+d.Name, "time [s]", "mixed units", d.Time)
	res.Add("Tt", d.TransRot)
	res.Add("Tv", d.VibElec)

	dilute := make([]float64, len(index))
	dense := make([]float64, len(index))
	for i, n := range index {
		dilute[i] = n.Dilute - 1
		dense[i] = n.Dense - 1
	}
	res.Add("dilute", dilute)
	res.Add("dense", dense)

	total := make([]float64, len(gd))
	for i, m := range gd {
		total[i] = m.Total
	}
	res.Add(optics.TotalKey, total)

	initial := make([]float64, len(total))
	if len(total) > 0 {
		for i := range initial {
			initial[i] = total[0]
		}
	}
	res.Add(optics.TotalKey+".initial", initial)

	if d.HasIons {
		res.Add("ion_fraction", ionFraction(p))
	}

	for _, name := range p.Species() {
		col := make([]float64, len(gd))
		for i, m := range gd {
			col[i] = m.Species[name]
		}
		res.Add("gd."+name, col)
	}

	res.Summarize()

	mean := make([]float64, len(d.TransRot))
	for i := range mean {
		mean[i] = math.Sqrt(d.TransRot[i] * d.VibElec[i])
	}
	for name, temperature := range map[string][]float64{"Tt": d.TransRot, "Tv": d.VibElec, "sqrtTtTv": mean} {
		for k, v := range correlations(total, temperature) {
			res.Metrics["corr."+name+"."+k] = v
		}
	}

	log.WithFields(log.Fields{
		"dataset": d.Name,
		"gas":     d.GasType,
		"samples": d.Len(),
	}).Info("evaluated CFD profile")
	return res, nil
}

// ionFraction is the ion share of the heavy-particle mass density.
func ionFraction(p aero.Profile) []float64 {
	ions, neutral := p.Ions(), p.Neutral()
	out := make([]float64, p.Len())
	for i := range out {
		charged := ions.Sample(i).Total()
		all := charged + neutral.Sample(i).Total()
		if all > 0 {
			out[i] = charged / all
		}
	}
	return out
}
