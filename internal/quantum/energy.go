package quantum

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/species"
)

// State indexes a rovibrational level.
type State struct {
	V int
	J int
}

func (s State) String() string {
	return fmt.Sprintf("(v=%d, J=%d)", s.V, s.J)
}

// EnergyModel selects how vibration and rotation combine.
type EnergyModel int

const (
	// Separable adds independent anharmonic vibration and rigid rotor
	// with centrifugal distortion.
	Separable EnergyModel = iota
	// Coupled adds the vibration-rotation interaction αe(v+½)J(J+1).
	Coupled
)

func (m EnergyModel) String() string {
	switch m {
	case Separable:
		return "separable"
	case Coupled:
		return "coupled"
	default:
		return fmt.Sprintf("EnergyModel(%d)", int(m))
	}
}

func ParseEnergyModel(s string) (EnergyModel, error) {
	switch strings.ToLower(s) {
	case "separable", "harmonic", "":
		return Separable, nil
	case "coupled", "born-oppenheimer", "born_oppenheimer":
		return Coupled, nil
	}
	return 0, fmt.Errorf("unknown energy model: %s", s)
}

// MaxVibrational returns the highest vibrational number for which the
// anharmonic ladder is still rising, v+½ < ωe/(2ωexe).
func MaxVibrational(molecule string) (int, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return 0, err
	}
	return maxVibrational(c), nil
}

func maxVibrational(c species.Spectroscopy) int {
	if c.OmegaXE <= 0 {
		return 1 << 30
	}
	return int(c.OmegaE/(2*c.OmegaXE) - 0.5)
}

// MaxRotational returns the highest rotational number for which the
// distorted rotor ladder is still rising, J(J+1) < Be/(2De).
func MaxRotational(molecule string) (int, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return 0, err
	}
	return maxRotational(c), nil
}

func maxRotational(c species.Spectroscopy) int {
	if c.DE <= 0 {
		return 1 << 30
	}
	l := c.BE / (2 * c.DE)
	j := int((math.Sqrt(1+4*l) - 1) / 2)
	for j > 0 && float64(j)*float64(j+1) >= l {
		j--
	}
	return j
}

func checkState(c species.Spectroscopy, molecule string, s State) error {
	if s.V < 0 || s.V > maxVibrational(c) {
		return aero.InvalidInput("vibrational number", molecule, float64(s.V))
	}
	if s.J < 0 || s.J > maxRotational(c) {
		return aero.InvalidInput("rotational number", molecule, float64(s.J))
	}
	return nil
}

func vibrational(c species.Spectroscopy, v int) float64 {
	x := float64(v) + 0.5
	return c.OmegaE*x - c.OmegaXE*x*x
}

func rotational(c species.Spectroscopy, j int) float64 {
	l := float64(j) * float64(j+1)
	return c.BE*l - c.DE*l*l
}

func energy(c species.Spectroscopy, s State, model EnergyModel) float64 {
	e := vibrational(c, s.V) + rotational(c, s.J)
	if model == Coupled {
		e -= c.AlphaE * (float64(s.V) + 0.5) * float64(s.J) * float64(s.J+1)
	}
	return e
}

// VibrationalEnergy returns ωe(v+½) − ωexe(v+½)², cm^-1.
func VibrationalEnergy(v int, molecule string) (float64, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return 0, err
	}
	if err := checkState(c, molecule, State{V: v}); err != nil {
		return 0, err
	}
	return vibrational(c, v), nil
}

// RotationalEnergy returns BeJ(J+1) − De[J(J+1)]², cm^-1.
func RotationalEnergy(j int, molecule string) (float64, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return 0, err
	}
	if err := checkState(c, molecule, State{J: j}); err != nil {
		return 0, err
	}
	return rotational(c, j), nil
}

// BornOppenheimer returns the vibrational plus rotational energy with the
// vibration-rotation coupling term, cm^-1.
func BornOppenheimer(v, j int, molecule string) (float64, error) {
	return Energy(State{V: v, J: j}, molecule, Coupled)
}

// Energy returns the level energy under the chosen model, cm^-1.
func Energy(s State, molecule string, model EnergyModel) (float64, error) {
	c, err := species.SpectroscopyConstants(molecule)
	if err != nil {
		return 0, err
	}
	if err := checkState(c, molecule, s); err != nil {
		return 0, err
	}
	return energy(c, s, model), nil
}
