package chrono

import "fmt"

// remainderField is a calendar component derived as the remainder of a
// wrapped field's value modulo a constant, such as year-of-century from
// year-of-era. It is the complement of [NewDividedField]: for any instant,
// divided*divisor + remainder equals the wrapped value.
type remainderField struct {
	DateTimeField // wrapped field

	dtype    DateTimeFieldType
	divisor  int32
	rangeDur DurationField // wrapped unit scaled by the divisor
}

// NewRemainderField returns a calendar field whose value is the wrapped
// field's value modulo divisor, in [0, divisor-1]. Negative wrapped values
// use floor semantics, so the result is never negative. Its range duration
// is the wrapped field's unit scaled by the divisor.
//
// NewRemainderField returns [ErrInvalidArgument] if the wrapped field is
// nil or unsupported, or if divisor is less than 2.
func NewRemainderField(field DateTimeField, t DateTimeFieldType, divisor int32) (DateTimeField, error) {
	if field == nil || !field.IsSupported() {
		return nil, fmt.Errorf("remainder %s field requires a supported wrapped field: %w", t, ErrInvalidArgument)
	}
	if divisor < 2 {
		return nil, fmt.Errorf("divisor %d for %s field: %w", divisor, t, ErrInvalidArgument)
	}
	rangeDur, err := NewScaledDurationField(field.DurationField(), t.RangeDurationType(), divisor)
	if err != nil {
		return nil, err
	}
	return &remainderField{
		DateTimeField: field,
		dtype:         t,
		divisor:       divisor,
		rangeDur:      rangeDur,
	}, nil
}

func (f *remainderField) Type() DateTimeFieldType { return f.dtype }

func (f *remainderField) Get(instant int64) int32 {
	return modulo(f.DateTimeField.Get(instant), f.divisor)
}

func (f *remainderField) Set(instant int64, value int32) (int64, error) {
	if err := verifyValueBounds(f.dtype, value, 0, f.divisor-1); err != nil {
		return 0, err
	}
	divided := divide(f.DateTimeField.Get(instant), f.divisor)
	stored, err := SafeToInt(int64(divided)*int64(f.divisor) + int64(value))
	if err != nil {
		return 0, err
	}
	return f.DateTimeField.Set(instant, stored)
}

func (f *remainderField) AddWrapField(instant int64, amount int32) (int64, error) {
	return addWrapFieldInstant(f, instant, amount)
}

func (f *remainderField) AddPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addPartialField(f, p, fieldIndex, values, amount, false)
}

func (f *remainderField) AddWrapPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addPartialField(f, p, fieldIndex, values, amount, true)
}

func (f *remainderField) AddWrapFieldPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addWrapFieldPartial(f, p, fieldIndex, values, amount)
}

func (f *remainderField) SetPartial(p Partial, fieldIndex int, values []int32, value int32) ([]int32, error) {
	return setPartialField(f, p, fieldIndex, values, value)
}

func (f *remainderField) RangeDurationField() DurationField { return f.rangeDur }

func (f *remainderField) MinimumValue() int32                            { return 0 }
func (f *remainderField) MinimumValueAt(instant int64) int32             { return 0 }
func (f *remainderField) MinimumValueIn(p Partial, values []int32) int32 { return 0 }

func (f *remainderField) MaximumValue() int32                            { return f.divisor - 1 }
func (f *remainderField) MaximumValueAt(instant int64) int32             { return f.divisor - 1 }
func (f *remainderField) MaximumValueIn(p Partial, values []int32) int32 { return f.divisor - 1 }

func (f *remainderField) RoundHalfEven(instant int64) int64 {
	return roundHalfEvenField(f, instant)
}
