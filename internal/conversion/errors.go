package conversion

import (
	"errors"
	"fmt"

	"k8s-translator/internal/common"
	"k8s-translator/internal/path"
)

// Direction is the way a conversion runs.
type Direction int

const (
	// DirectionTo converts from the descriptor into the foreign document.
	DirectionTo Direction = iota
	// DirectionFrom converts from the foreign document back into the descriptor.
	DirectionFrom
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirectionTo:
		return "to"
	case DirectionFrom:
		return "from"
	default:
		return common.UnknownStr
	}
}

// ErrInvalidValue is the cause used by conversions rejecting a present value.
var ErrInvalidValue = errors.New("invalid value")

// ConversionError reports a conversion that failed on a present value.
type ConversionError struct {
	Direction Direction
	// Field is the logical field being converted.
	Field path.Path
	// Path is the location the result was headed for.
	Path  path.Path
	Cause error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s field %q at %q: %v", e.Direction, e.Field.String(), e.Path.String(), e.Cause)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Invalid returns an error wrapping ErrInvalidValue for v.
func Invalid(v any, format string, args ...any) error {
	return fmt.Errorf("%w %v (%T): %s", ErrInvalidValue, v, v, fmt.Sprintf(format, args...))
}
