package chrono

import (
	"errors"
	"fmt"
)

// Sentinel errors for the chrono package.
// Use errors.Is to check: errors.Is(err, chrono.ErrOverflow)
var (
	ErrOverflow           = errors.New("chrono: arithmetic overflow")
	ErrValueOutOfRange    = errors.New("chrono: field value out of range")
	ErrUnsupportedField   = errors.New("chrono: field does not support this operation")
	ErrIncompatibleFields = errors.New("chrono: fields incompatible for carry")
	ErrInvalidArgument    = errors.New("chrono: invalid argument")
)

// FieldValueError reports a value that lies outside a field's allowed bounds.
// It wraps [ErrValueOutOfRange], so errors.Is(err, ErrValueOutOfRange) matches.
type FieldValueError struct {
	Field DateTimeFieldType // field whose bounds were violated
	Value int32             // offending value
	Min   int32             // smallest allowed value
	Max   int32             // largest allowed value
}

func (e *FieldValueError) Error() string {
	return fmt.Sprintf("chrono: value %d for %s must be in range [%d,%d]", e.Value, e.Field, e.Min, e.Max)
}

func (e *FieldValueError) Unwrap() error {
	return ErrValueOutOfRange
}

// verifyValueBounds checks value against [min, max] for the given field type.
func verifyValueBounds(t DateTimeFieldType, value, min, max int32) error {
	if value < min || value > max {
		return &FieldValueError{Field: t, Value: value, Min: min, Max: max}
	}
	return nil
}
