// Package viz provides the terminal polarizability explorer.
//
// The explorer is a Bubble Tea program over the Kerl interpolation: pick a
// molecule, move the temperature and the wavelength, and read the Kerl
// polarizability, the Boltzmann-averaged Buldakov polarizability where
// derivatives are tabulated, and the rotational population.
//
// # Key Bindings
//
//	j/k   - Select molecule
//	h/l   - Temperature down/up
//	[/]   - Wavelength down/up
//	s     - Toggle the static (infinite wavelength) limit
//	t     - Cycle color themes
//	q     - Quit
package viz
