package aero

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Domain errors for optical and quantum computations.
var (
	// ErrUnknownSpecies indicates a species or molecule missing from a constant table.
	ErrUnknownSpecies = errors.New("aero: unknown species")

	// ErrDegenerateInput indicates a vanishing denominator or resonance.
	ErrDegenerateInput = errors.New("aero: degenerate input")

	// ErrInvalidPhysicalInput indicates a value outside its physical domain.
	ErrInvalidPhysicalInput = errors.New("aero: invalid physical input")
)

// UnknownSpeciesError reports which table lacked which key.
type UnknownSpeciesError struct {
	Species string
	Table   string
}

func (e *UnknownSpeciesError) Error() string {
	return fmt.Sprintf("aero: unknown species %q in %s table", e.Species, e.Table)
}

func (e *UnknownSpeciesError) Is(target error) bool {
	return target == ErrUnknownSpecies
}

// DegenerateInputError reports a computation whose denominator vanished.
type DegenerateInputError struct {
	Op     string
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("aero: degenerate input to %s: %s", e.Op, e.Reason)
}

func (e *DegenerateInputError) Is(target error) bool {
	return target == ErrDegenerateInput
}

// InvalidPhysicalInputError reports a rejected boundary value. Species is
// empty when the quantity is not tied to one.
type InvalidPhysicalInputError struct {
	Quantity string
	Species  string
	Value    float64
}

func (e *InvalidPhysicalInputError) Error() string {
	if e.Species != "" {
		return fmt.Sprintf("aero: invalid %s %g for %s", e.Quantity, e.Value, e.Species)
	}
	return fmt.Sprintf("aero: invalid %s %g", e.Quantity, e.Value)
}

func (e *InvalidPhysicalInputError) Is(target error) bool {
	return target == ErrInvalidPhysicalInput
}

func UnknownSpecies(species, table string) error {
	return &UnknownSpeciesError{Species: species, Table: table}
}

func Degenerate(op, reason string) error {
	return &DegenerateInputError{Op: op, Reason: reason}
}

func InvalidInput(quantity, species string, value float64) error {
	return &InvalidPhysicalInputError{Quantity: quantity, Species: species, Value: value}
}
