package quantum

import (
	"errors"
	"testing"

	"github.com/san-kum/haot/internal/aero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVibrationalEnergy(t *testing.T) {
	e, err := VibrationalEnergy(0, aero.N2)
	require.NoError(t, err)
	assert.InDelta(t, 2358.57*0.5-14.324*0.25, e, 1e-9)

	e1, err := VibrationalEnergy(1, aero.N2)
	require.NoError(t, err)
	// fundamental band origin of N2, ωe − 2ωexe
	assert.InDelta(t, 2329.922, e1-e, 1e-3)
}

func TestRotationalEnergy(t *testing.T) {
	e, err := RotationalEnergy(0, aero.O2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)

	e, err = RotationalEnergy(1, aero.N2)
	require.NoError(t, err)
	assert.InDelta(t, 2*1.99824-4*5.76e-6, e, 1e-12)
}

func TestBornOppenheimerCoupling(t *testing.T) {
	vib, _ := VibrationalEnergy(2, aero.N2)
	rot, _ := RotationalEnergy(3, aero.N2)

	bo, err := BornOppenheimer(2, 3, aero.N2)
	require.NoError(t, err)
	assert.InDelta(t, vib+rot-0.017318*2.5*12, bo, 1e-9)

	sep, err := Energy(State{V: 2, J: 3}, aero.N2, Separable)
	require.NoError(t, err)
	assert.InDelta(t, vib+rot, sep, 1e-9)
	assert.Less(t, bo, sep)
}

func TestEnergyRejectsInvalidStates(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		molecule string
		want     error
	}{
		{"negative v", State{V: -1}, aero.N2, aero.ErrInvalidPhysicalInput},
		{"negative J", State{J: -2}, aero.O2, aero.ErrInvalidPhysicalInput},
		{"past dissociation", State{V: 40}, aero.H2, aero.ErrInvalidPhysicalInput},
		{"past the rotor maximum", State{J: 25}, aero.H2, aero.ErrInvalidPhysicalInput},
		{"no band constants", State{}, aero.Air, aero.ErrUnknownSpecies},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Energy(tt.state, tt.molecule, Coupled)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestMaxVibrational(t *testing.T) {
	v, err := MaxVibrational(aero.H2)
	require.NoError(t, err)
	assert.Equal(t, 17, v)

	v, err = MaxVibrational(aero.N2)
	require.NoError(t, err)
	assert.Greater(t, v, 70)
}

func TestMaxRotational(t *testing.T) {
	j, err := MaxRotational(aero.H2)
	require.NoError(t, err)
	assert.Equal(t, 24, j)

	j, err = MaxRotational(aero.N2)
	require.NoError(t, err)
	assert.Greater(t, j, 400)

	_, err = MaxRotational(aero.Air)
	assert.ErrorIs(t, err, aero.ErrUnknownSpecies)
}

func TestParseEnergyModel(t *testing.T) {
	m, err := ParseEnergyModel("Born-Oppenheimer")
	require.NoError(t, err)
	assert.Equal(t, Coupled, m)

	m, err = ParseEnergyModel("")
	require.NoError(t, err)
	assert.Equal(t, Separable, m)
	assert.Equal(t, "separable", m.String())

	_, err = ParseEnergyModel("quantum-foam")
	assert.Error(t, err)
}

func TestDunhamCoefficients(t *testing.T) {
	d, err := DunhamCoefficients(aero.N2)
	require.NoError(t, err)
	assert.InDelta(t, -2.705, d.A1, 1e-3)
	assert.InDelta(t, 4.367, d.A2, 1e-3)
	assert.InDelta(t, d.A1*d.A1*d.A1/4, d.A3, 1e-12)
	assert.InDelta(t, 2358.57*2358.57/(4*1.99824), d.A0, 1e-6)

	_, err = DunhamCoefficients("Ar")
	assert.ErrorIs(t, err, aero.ErrUnknownSpecies)
}
