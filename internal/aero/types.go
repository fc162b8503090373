package aero

import (
	"sort"
	"strings"
)

// Species names as they appear in CFD output.
const (
	N   = "N"
	O   = "O"
	NO  = "NO"
	N2  = "N2"
	O2  = "O2"
	NP  = "N+"
	OP  = "O+"
	NOP = "NO+"
	N2P = "N2+"
	O2P = "O2+"

	H2  = "H2"
	Air = "Air"

	// Electron is the free-electron column some solvers write next to the
	// ion densities. It carries no polarizability.
	Electron = "e+"
)

// NeutralSpecies and IonSpecies list the 5-species and ionized 11-species
// air models in solver column order.
var (
	NeutralSpecies = []string{N, O, NO, N2, O2}
	IonSpecies     = []string{NP, OP, NOP, N2P, O2P}
)

// IsIon reports whether name is a positively charged species.
func IsIon(name string) bool {
	return len(name) > 1 && !IsElectron(name) && strings.HasSuffix(name, "+")
}

// IsElectron reports whether name is a free-electron column.
func IsElectron(name string) bool {
	return name == Electron || name == "e-"
}

// Neutral strips a trailing ion marker: "NO+" → "NO".
func Neutral(name string) string {
	if IsIon(name) {
		return strings.TrimSuffix(name, "+")
	}
	return name
}

type Composition map[string]float64

func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Species returns the keys in sorted order.
func (c Composition) Species() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c Composition) Total() float64 {
	sum := 0.0
	for _, k := range c.Species() {
		sum += c[k]
	}
	return sum
}

func (c Composition) filter(keep func(string) bool) Composition {
	out := make(Composition, len(c))
	for k, v := range c {
		if keep(k) {
			out[k] = v
		}
	}
	return out
}

// Neutral returns the neutral species only.
func (c Composition) Neutral() Composition {
	return c.filter(func(k string) bool { return !IsIon(k) && !IsElectron(k) })
}

// Ions returns the charged heavy species only.
func (c Composition) Ions() Composition {
	return c.filter(IsIon)
}

// WithoutElectrons drops free-electron entries and keeps every heavy species.
func (c Composition) WithoutElectrons() Composition {
	return c.filter(func(k string) bool { return !IsElectron(k) })
}

// Profile holds one density per sample for each species. All series are
// expected to share the same length.
type Profile map[string][]float64

// Len returns the number of samples, the length of the shortest series.
func (p Profile) Len() int {
	n := -1
	for _, series := range p {
		if n < 0 || len(series) < n {
			n = len(series)
		}
	}
	if n < 0 {
		return 0
	}
	return n
}

// Sample returns the composition at index i.
func (p Profile) Sample(i int) Composition {
	c := make(Composition, len(p))
	for k, series := range p {
		if i < len(series) {
			c[k] = series[i]
		}
	}
	return c
}

func (p Profile) Species() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p Profile) filter(keep func(string) bool) Profile {
	out := make(Profile, len(p))
	for k, series := range p {
		if keep(k) {
			c := make([]float64, len(series))
			copy(c, series)
			out[k] = c
		}
	}
	return out
}

func (p Profile) Neutral() Profile {
	return p.filter(func(k string) bool { return !IsIon(k) && !IsElectron(k) })
}

func (p Profile) Ions() Profile {
	return p.filter(IsIon)
}

func (p Profile) WithoutElectrons() Profile {
	return p.filter(func(k string) bool { return !IsElectron(k) })
}
