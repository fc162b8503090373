// Package quantum evaluates rovibrational energy levels of diatomic
// molecules and their equilibrium Boltzmann statistics.
//
// Energies are wavenumbers in cm^-1, temperatures in K. Every function is
// a pure map from its arguments and the [species] tables to a number;
// invalid quantum numbers and temperatures are rejected with
// [aero.InvalidPhysicalInputError] rather than propagated as NaN.
//
// # Distributions
//
// Population probabilities come in three fixed shapes:
//
//   - [JointDistribution]: (vmax+1)×(jmax+1) matrix over (v, J)
//   - [VibrationalDistribution]: marginal over J, length vmax+1
//   - [RotationalDistribution]: marginal over v, length jmax+1
//
// Each sums to one.
package quantum
