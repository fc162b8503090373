package quantum

import (
	"math"
	"testing"

	"github.com/san-kum/haot/internal/aero"
	"github.com/san-kum/haot/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestBoltzmannFactor(t *testing.T) {
	e, err := BornOppenheimer(1, 4, aero.O2)
	require.NoError(t, err)

	b, err := BoltzmannFactor(1000, aero.O2, State{V: 1, J: 4}, Coupled)
	require.NoError(t, err)
	assert.InEpsilon(t, 9*math.Exp(-units.SecondRadiation*e/1000), b, 1e-12)
}

func TestBoltzmannFactorRejectsTemperature(t *testing.T) {
	for _, temp := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, err := BoltzmannFactor(temp, aero.N2, State{}, Separable)
		assert.ErrorIs(t, err, aero.ErrInvalidPhysicalInput, "T=%v", temp)
	}
}

func TestPartitionFunctionIsSumOfFactors(t *testing.T) {
	const vmax, jmax = 3, 5
	z, err := PartitionFunction(2000, aero.N2, vmax, jmax, Coupled)
	require.NoError(t, err)

	sum := 0.0
	for v := 0; v <= vmax; v++ {
		for j := 0; j <= jmax; j++ {
			b, err := BoltzmannFactor(2000, aero.N2, State{V: v, J: j}, Coupled)
			require.NoError(t, err)
			sum += b
		}
	}
	assert.InEpsilon(t, sum, z, 1e-12)
}

func TestSeparablePartitionFunctionFactorizes(t *testing.T) {
	const vmax, jmax = 4, 30
	z, err := PartitionFunction(1500, aero.O2, vmax, jmax, Separable)
	require.NoError(t, err)
	zv, err := VibrationalPartitionFunction(1500, aero.O2, vmax)
	require.NoError(t, err)
	zr, err := RotationalPartitionFunction(1500, aero.O2, jmax)
	require.NoError(t, err)

	assert.InEpsilon(t, zv*zr, z, 1e-12)
}

func TestDistributionsNormalize(t *testing.T) {
	for _, temp := range []float64{50, 300, 2000, 20000} {
		for _, model := range []EnergyModel{Separable, Coupled} {
			joint, err := JointDistribution(temp, aero.N2, 10, 40, model)
			require.NoError(t, err)
			r, c := joint.Dims()
			assert.Equal(t, 11, r)
			assert.Equal(t, 41, c)
			assert.InDelta(t, 1.0, mat.Sum(joint), 1e-12, "joint T=%v %v", temp, model)

			vib, err := VibrationalDistribution(temp, aero.N2, 10, 40, model)
			require.NoError(t, err)
			assert.Len(t, vib, 11)
			assert.InDelta(t, 1.0, floats.Sum(vib), 1e-12)

			rot, err := RotationalDistribution(temp, aero.N2, 10, 40, model)
			require.NoError(t, err)
			assert.Len(t, rot, 41)
			assert.InDelta(t, 1.0, floats.Sum(rot), 1e-12)
		}
	}
}

func TestVibrationalPopulationDecreases(t *testing.T) {
	vib, err := VibrationalDistribution(1000, aero.O2, 20, 30, Coupled)
	require.NoError(t, err)
	for v := 1; v < len(vib); v++ {
		assert.Less(t, vib[v], vib[v-1], "v=%d", v)
	}
}

func TestProbabilityOfState(t *testing.T) {
	const vmax, jmax = 5, 30
	s := State{V: 2, J: 10}

	p, err := ProbabilityOfState(2000, aero.O2, s, vmax, jmax, Coupled)
	require.NoError(t, err)

	b, _ := BoltzmannFactor(2000, aero.O2, s, Coupled)
	z, _ := PartitionFunction(2000, aero.O2, vmax, jmax, Coupled)
	assert.InEpsilon(t, b/z, p, 1e-10)

	_, err = ProbabilityOfState(2000, aero.O2, State{V: 6}, vmax, jmax, Coupled)
	assert.ErrorIs(t, err, aero.ErrInvalidPhysicalInput)
}

func TestColdGasSitsInGroundState(t *testing.T) {
	p, err := ProbabilityOfState(0.1, aero.N2, State{}, 5, 5, Separable)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-12)
}
