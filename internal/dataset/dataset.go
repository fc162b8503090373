// Package dataset loads CFD heat-bath outputs: one csv per run with the
// time, the translational-rotational and vibrational-electronic
// temperatures and the mass density of every species in kg/m^3.
package dataset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gocarina/gocsv"
	"github.com/san-kum/haot/internal/aero"
	log "github.com/sirupsen/logrus"
)

// Gas types a heat bath can be seeded with.
const (
	GasN2  = "N2"
	GasO2  = "O2"
	GasAir = "Air"
)

// row mirrors one csv line. Ion and electron columns are optional.
type row struct {
	Time float64 `csv:"time"`
	Tt   float64 `csv:"Tt"`
	Tv   float64 `csv:"Tv"`

	N  float64 `csv:"N"`
	O  float64 `csv:"O"`
	NO float64 `csv:"NO"`
	N2 float64 `csv:"N2"`
	O2 float64 `csv:"O2"`

	NP       *float64 `csv:"N+"`
	OP       *float64 `csv:"O+"`
	NOP      *float64 `csv:"NO+"`
	N2P      *float64 `csv:"N2+"`
	O2P      *float64 `csv:"O2+"`
	Electron *float64 `csv:"e+"`
}

func (r *row) neutrals() map[string]float64 {
	return map[string]float64{
		aero.N: r.N, aero.O: r.O, aero.NO: r.NO, aero.N2: r.N2, aero.O2: r.O2,
	}
}

func (r *row) ions() map[string]*float64 {
	return map[string]*float64{
		aero.NP: r.NP, aero.OP: r.OP, aero.NOP: r.NOP, aero.N2P: r.N2P, aero.O2P: r.O2P,
	}
}

// Dataset is one loaded CFD run.
type Dataset struct {
	Name    string
	GasType string
	HasIons bool

	Time      []float64
	TransRot  []float64 // Tt, K
	VibElec   []float64 // Tv, K
	Electrons []float64 // nil without an e+ column

	species aero.Profile
}

// Densities returns the neutral and ion densities, electrons excluded.
// The profile is a copy.
func (d *Dataset) Densities() aero.Profile {
	return d.species.WithoutElectrons()
}

// Len is the number of time samples.
func (d *Dataset) Len() int { return len(d.Time) }

// gasType follows the seed gas: pure N2 or O2 when the other molecule is
// absent from the first sample.
func gasType(first *row) string {
	switch {
	case first.N2 != 0 && first.O2 == 0:
		return GasN2
	case first.O2 != 0 && first.N2 == 0:
		return GasO2
	default:
		return GasAir
	}
}

// excluded lists the neutrals a pure gas cannot form.
func excluded(gas string) map[string]bool {
	switch gas {
	case GasN2:
		return map[string]bool{aero.O: true, aero.O2: true, aero.NO: true}
	case GasO2:
		return map[string]bool{aero.N: true, aero.N2: true, aero.NO: true}
	}
	return nil
}

// ionColumns reports whether the first row carries the ion set. Ions come
// as a block: a partial set, or electrons without ions, is an error.
func ionColumns(first *row) (bool, error) {
	var missing []string
	for name, v := range first.ions() {
		if v == nil {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)

	switch {
	case len(missing) == 0:
		return true, nil
	case len(missing) < len(aero.IonSpecies):
		return false, errors.Newf("missing ion columns %s", strings.Join(missing, ", "))
	case first.Electron != nil:
		return false, errors.New("e+ column without ion columns")
	}
	return false, nil
}

// Load reads a CFD csv.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", path)
	}
	defer f.Close()

	var rows []*row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, errors.Wrapf(err, "parse dataset %s", path)
	}
	if len(rows) == 0 {
		return nil, errors.Newf("dataset %s has no samples", path)
	}

	hasIons, err := ionColumns(rows[0])
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s", path)
	}

	d := &Dataset{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		GasType:  gasType(rows[0]),
		HasIons:  hasIons,
		Time:     make([]float64, len(rows)),
		TransRot: make([]float64, len(rows)),
		VibElec:  make([]float64, len(rows)),
		species:  aero.Profile{},
	}
	skip := excluded(d.GasType)
	for name := range rows[0].neutrals() {
		if !skip[name] {
			d.species[name] = make([]float64, len(rows))
		}
	}
	if d.HasIons {
		for name := range rows[0].ions() {
			d.species[name] = make([]float64, len(rows))
		}
		if rows[0].Electron != nil {
			d.Electrons = make([]float64, len(rows))
		} else {
			log.WithField("dataset", d.Name).Warn("ion columns without an e+ column, electron density unavailable")
		}
	}

	for i, r := range rows {
		d.Time[i], d.TransRot[i], d.VibElec[i] = r.Time, r.Tt, r.Tv
		for name, v := range r.neutrals() {
			if col, ok := d.species[name]; ok {
				col[i] = v
			}
		}
		if !d.HasIons {
			continue
		}
		for name, v := range r.ions() {
			if v == nil {
				return nil, errors.Newf("dataset %s: row %d is missing %s", path, i, name)
			}
			d.species[name][i] = *v
		}
		if d.Electrons != nil && r.Electron != nil {
			d.Electrons[i] = *r.Electron
		}
	}

	log.WithFields(log.Fields{
		"dataset": d.Name,
		"gas":     d.GasType,
		"ions":    d.HasIons,
		"samples": d.Len(),
	}).Debug("loaded CFD dataset")
	return d, nil
}

// LoadAll loads files from dir. With no files it loads every csv in dir,
// sorted by name.
func LoadAll(dir string, files []string) ([]*Dataset, error) {
	if len(files) == 0 {
		matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", dir)
		}
		sort.Strings(matches)
		files = matches
	} else {
		paths := make([]string, len(files))
		for i, name := range files {
			if filepath.Ext(name) == "" {
				name += ".csv"
			}
			paths[i] = filepath.Join(dir, name)
		}
		files = paths
	}

	out := make([]*Dataset, 0, len(files))
	for _, path := range files {
		d, err := Load(path)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
