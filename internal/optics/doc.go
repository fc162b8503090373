// Package optics converts species densities into optical properties of a
// gas: refractive index, Gladstone-Dale constants, and temperature or
// state dependent polarizability.
//
// Densities are mass densities in kg/m^3 keyed by the species names of
// package [aero]. Electron columns must be removed first, see
// [aero.Composition.WithoutElectrons].
package optics
