package optics

import (
	"testing"

	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/quantum"
	"github.com/san-kum/haot/internal/species"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuldakovGroundLevel(t *testing.T) {
	a, err := BuldakovExpansion(0, 0, aero.N2)
	require.NoError(t, err)
	assert.InDelta(t, 1.78703e-30, a, 1e-35)

	pd, err := species.PolarizabilityDerivatives(aero.N2)
	require.NoError(t, err)
	// zero-point motion raises the polarizability slightly above αe
	assert.Greater(t, a, pd.Zeroth)
	assert.Less(t, (a-pd.Zeroth)/pd.Zeroth, 0.01)
}

func TestBuldakovGrowsWithExcitation(t *testing.T) {
	for _, mol := range []string{aero.N2, aero.O2, aero.H2} {
		prev, err := BuldakovExpansion(0, 0, mol)
		require.NoError(t, err)
		for v := 1; v <= 5; v++ {
			a, err := BuldakovExpansion(v, 0, mol)
			require.NoError(t, err)
			assert.Greater(t, a, prev, "%s v=%d", mol, v)
			prev = a
		}

		j0, _ := BuldakovExpansion(0, 0, mol)
		j10, err := BuldakovExpansion(0, 10, mol)
		require.NoError(t, err)
		assert.Greater(t, j10, j0, "%s centrifugal stretching", mol)
	}
}

func TestBuldakovErrors(t *testing.T) {
	_, err := BuldakovExpansion(0, 0, aero.NO)
	assert.ErrorIs(t, err, aero.ErrUnknownSpecies)

	_, err = BuldakovExpansion(-1, 0, aero.N2)
	assert.ErrorIs(t, err, aero.ErrInvalidPhysicalInput)

	_, err = BuldakovExpansion(0, -1, aero.N2)
	assert.ErrorIs(t, err, aero.ErrInvalidPhysicalInput)
}

func TestBuldakovGridMatchesExpansion(t *testing.T) {
	g, err := BuldakovGrid(aero.O2, 3, 4)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 5, c)

	a, err := BuldakovExpansion(2, 3, aero.O2)
	require.NoError(t, err)
	assert.Equal(t, a, g.At(2, 3))
}

func TestBuldakovThermalAverage(t *testing.T) {
	ground, err := BuldakovExpansion(0, 0, aero.N2)
	require.NoError(t, err)

	cold, err := BuldakovThermalAverage(0.1, aero.N2, 5, 40, quantum.Coupled)
	require.NoError(t, err)
	assert.InEpsilon(t, ground, cold, 1e-12)

	warm, err := BuldakovThermalAverage(300, aero.N2, 5, 40, quantum.Coupled)
	require.NoError(t, err)
	hot, err := BuldakovThermalAverage(3000, aero.N2, 5, 40, quantum.Coupled)
	require.NoError(t, err)
	assert.Greater(t, warm, cold)
	assert.Greater(t, hot, warm)

	_, err = BuldakovThermalAverage(0, aero.N2, 5, 40, quantum.Coupled)
	assert.ErrorIs(t, err, aero.ErrInvalidPhysicalInput)
}
