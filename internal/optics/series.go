package optics

import (
	"github.com/cockroachdb/errors"
	"github.com/san-kum/haot/internal/aero"
)

// IndexOfRefractionSeries evaluates IndexOfRefraction sample by sample.
func IndexOfRefractionSeries(p aero.Profile) ([]Refraction, error) {
	out := make([]Refraction, p.Len())
	for i := range out {
		n, err := IndexOfRefraction(p.Sample(i))
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		out[i] = n
	}
	return out, nil
}

// GladstoneDaleSeries evaluates GladstoneDale sample by sample.
func GladstoneDaleSeries(p aero.Profile) ([]GladstoneDaleMixture, error) {
	out := make([]GladstoneDaleMixture, p.Len())
	for i := range out {
		m, err := GladstoneDale(p.Sample(i))
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d", i)
		}
		out[i] = m
	}
	return out, nil
}
