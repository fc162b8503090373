// Package atmosphere implements the 1976 U.S. Standard Atmosphere below
// 86 km geometric altitude.
package atmosphere

import (
	"math"

	"github.com/san-kum/haot/internal/aero"
)

const (
	EarthRadius   = 6356766.0 // m, effective radius for geopotential altitude
	Gravity       = 9.80665   // m/s^2
	GasConstant   = 8.31432   // J/(mol K), value adopted by the 1976 standard
	AirMolarMass  = 0.0289644 // kg/mol
	SeaLevelTemp  = 288.15    // K
	SeaLevelPress = 101325.0  // Pa

	MinAltitude = -5000.0 // m
	MaxAltitude = 86000.0 // m
)

type layer struct {
	base  float64 // geopotential altitude, m
	lapse float64 // K/m
}

var layers = []layer{
	{0, -0.0065},
	{11000, 0},
	{20000, 0.001},
	{32000, 0.0028},
	{47000, 0},
	{51000, -0.0028},
	{71000, -0.002},
}

// base temperature and pressure of every layer, derived once.
var baseTemp, basePress = func() ([]float64, []float64) {
	t := make([]float64, len(layers))
	p := make([]float64, len(layers))
	t[0], p[0] = SeaLevelTemp, SeaLevelPress
	for i := 1; i < len(layers); i++ {
		t[i], p[i] = extrapolate(layers[i-1], t[i-1], p[i-1], layers[i].base)
	}
	return t, p
}()

func extrapolate(l layer, tb, pb, h float64) (float64, float64) {
	const k = Gravity * AirMolarMass / GasConstant
	dh := h - l.base
	if l.lapse == 0 {
		return tb, pb * math.Exp(-k*dh/tb)
	}
	t := tb + l.lapse*dh
	return t, pb * math.Pow(tb/t, k/l.lapse)
}

type Properties struct {
	Altitude    float64 // geometric, m
	Temperature float64 // K
	Pressure    float64 // Pa
	Density     float64 // kg/m^3
}

// Geopotential converts geometric altitude to geopotential altitude.
func Geopotential(z float64) float64 {
	return EarthRadius * z / (EarthRadius + z)
}

// At returns the standard atmosphere at geometric altitude z in meters.
func At(z float64) (Properties, error) {
	if math.IsNaN(z) || z < MinAltitude || z > MaxAltitude {
		return Properties{}, aero.InvalidInput("altitude", "", z)
	}
	h := Geopotential(z)

	i := 0
	for i+1 < len(layers) && h >= layers[i+1].base {
		i++
	}
	t, p := extrapolate(layers[i], baseTemp[i], basePress[i], h)

	return Properties{
		Altitude:    z,
		Temperature: t,
		Pressure:    p,
		Density:     p * AirMolarMass / (GasConstant * t),
	}, nil
}
