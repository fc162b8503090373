// Package aero provides the shared vocabulary of the aero-optics toolkit.
//
// The package defines the value types exchanged between the physics
// packages and their callers:
//
//   - [Composition]: species name → scalar density or mole fraction
//   - [Profile]: species name → one density per CFD sample
//   - [UnknownSpeciesError], [DegenerateInputError],
//     [InvalidPhysicalInputError]: the error taxonomy of the core
//
// # Example
//
//	air := aero.Composition{aero.N2: 1.14, aero.O2: 0.348}
//	n, err := optics.IndexOfRefraction(air)
//
// # Views
//
// Compositions are never mutated by the core. Filtering, such as dropping
// ions before a neutral-only plot, goes through [Composition.Neutral] and
// friends, which return copies.
package aero
