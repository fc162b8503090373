package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWavenumberRoundTrip(t *testing.T) {
	for _, k := range []float64{1, 1580.193, 2358.57, 4401.21} {
		assert.InDelta(t, k, JouleToWavenumber(WavenumberToJoule(k)), k*1e-12)
	}
}

func TestSecondRadiationConstant(t *testing.T) {
	// CODATA c2 = 1.438776877 cm K
	assert.InDelta(t, 1.438776877, SecondRadiation, 1e-8)
	assert.InDelta(t, 3393.5, WavenumberToKelvin(2358.57), 0.1)
}

func TestMolarMassToKilogram(t *testing.T) {
	// one N2 molecule weighs about 4.65e-26 kg
	assert.InDelta(t, 4.6518e-26, MolarMassToKilogram(28.0134), 1e-30)
	assert.Equal(t, 0.028, GramPerMoleToKilogramPerMole(28))
}

func TestPolarizabilityCGSToSI(t *testing.T) {
	// 1 A^3 = 1e-24 cm^3 corresponds to 1.11265e-40 C m^2/V
	assert.InDelta(t, 1.11265e-40, PolarizabilityCGSToSI(1e-24), 1e-44)
	assert.InEpsilon(t, 1.7801e-30, AngstromCubedToCubicMeter(1.7801), 1e-12)
}

func TestAngularFrequency(t *testing.T) {
	assert.InDelta(t, 2.9758e15, AngularFrequency(633), 1e11)
	assert.Equal(t, 0.0, AngularFrequency(math.Inf(1)))
}
