package radial

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpec is matched by every error caused by sector parameters
	// that cannot produce a sector.
	ErrInvalidSpec = errors.New("invalid sector spec")
	// ErrInvalidFillet is matched by errors of fillets that cannot be
	// constructed.
	ErrInvalidFillet = errors.New("invalid fillet")
)

// SpecError describes a sector parameter that is out of range.
type SpecError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("radial: %s: %s = %g: %s", ErrInvalidSpec, e.Field, e.Value, e.Reason)
}

func (e *SpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// GeometryError describes a fillet that cannot be constructed, usually
// because its radius is too large for the primitives it rounds.
//
// Slot is the index of the sector being built, or -1 if the fillet was
// requested directly. Errors with a slot also match ErrInvalidSpec.
type GeometryError struct {
	Slot   int
	Radius float64
	Reason string
}

func (e *GeometryError) Error() string {
	if e.Slot < 0 {
		return fmt.Sprintf("radial: %s of radius %g: %s", ErrInvalidFillet, e.Radius, e.Reason)
	}
	return fmt.Sprintf("radial: slot %d: %s of radius %g: %s", e.Slot, ErrInvalidFillet, e.Radius, e.Reason)
}

func (e *GeometryError) Is(target error) bool {
	switch target {
	case ErrInvalidFillet:
		return true
	case ErrInvalidSpec:
		return e.Slot >= 0
	default:
		return false
	}
}

func filletError(radius float64, format string, args ...any) *GeometryError {
	return &GeometryError{
		Slot:   -1,
		Radius: radius,
		Reason: fmt.Sprintf(format, args...),
	}
}
