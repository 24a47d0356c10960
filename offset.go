package chrono

import (
	"fmt"
	"math"
)

// offsetField is a calendar component whose value is a wrapped field's
// value shifted by a constant, such as a year field counted from a
// different epoch.
type offsetField struct {
	DateTimeField // wrapped field

	dtype  DateTimeFieldType
	offset int32
	min    int32
	max    int32
}

// NewOffsetField returns a calendar field whose value is the wrapped
// field's value plus offset. The bounds are the wrapped field's bounds
// shifted by the offset, saturated at the int32 limits.
//
// NewOffsetField returns [ErrInvalidArgument] if the wrapped field is nil
// or unsupported, or if offset is 0.
func NewOffsetField(field DateTimeField, t DateTimeFieldType, offset int32) (DateTimeField, error) {
	return NewOffsetFieldWithLimits(field, t, offset, math.MinInt32, math.MaxInt32)
}

// NewOffsetFieldWithLimits is like [NewOffsetField], but additionally
// narrows the derived bounds to [minValue, maxValue]. Limits wider than
// the derived bounds have no effect.
func NewOffsetFieldWithLimits(field DateTimeField, t DateTimeFieldType, offset, minValue, maxValue int32) (DateTimeField, error) {
	if field == nil || !field.IsSupported() {
		return nil, fmt.Errorf("offset %s field requires a supported wrapped field: %w", t, ErrInvalidArgument)
	}
	if offset == 0 {
		return nil, fmt.Errorf("offset 0 for %s field: %w", t, ErrInvalidArgument)
	}
	min := saturate32(int64(field.MinimumValue()) + int64(offset))
	if minValue > min {
		min = minValue
	}
	max := saturate32(int64(field.MaximumValue()) + int64(offset))
	if maxValue < max {
		max = maxValue
	}
	if min > max {
		return nil, fmt.Errorf("offset %s field bounds [%d,%d]: %w", t, min, max, ErrInvalidArgument)
	}
	return &offsetField{
		DateTimeField: field,
		dtype:         t,
		offset:        offset,
		min:           min,
		max:           max,
	}, nil
}

// saturate32 clamps v to the int32 range.
func saturate32(v int64) int32 {
	switch {
	case v < math.MinInt32:
		return math.MinInt32
	case v > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(v)
}

func (f *offsetField) Type() DateTimeFieldType { return f.dtype }

func (f *offsetField) Get(instant int64) int32 {
	return f.DateTimeField.Get(instant) + f.offset
}

func (f *offsetField) Set(instant int64, value int32) (int64, error) {
	if err := verifyValueBounds(f.dtype, value, f.min, f.max); err != nil {
		return 0, err
	}
	return f.DateTimeField.Set(instant, value-f.offset)
}

// Add shifts the instant, then verifies that the resulting value still
// lies within the possibly narrowed bounds.
func (f *offsetField) Add(instant int64, amount int64) (int64, error) {
	instant, err := f.DateTimeField.Add(instant, amount)
	if err != nil {
		return 0, err
	}
	if err := verifyValueBounds(f.dtype, f.Get(instant), f.min, f.max); err != nil {
		return 0, err
	}
	return instant, nil
}

func (f *offsetField) AddWrapField(instant int64, amount int32) (int64, error) {
	return addWrapFieldInstant(f, instant, amount)
}

func (f *offsetField) AddPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addPartialField(f, p, fieldIndex, values, amount, false)
}

func (f *offsetField) AddWrapPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addPartialField(f, p, fieldIndex, values, amount, true)
}

func (f *offsetField) AddWrapFieldPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addWrapFieldPartial(f, p, fieldIndex, values, amount)
}

func (f *offsetField) SetPartial(p Partial, fieldIndex int, values []int32, value int32) ([]int32, error) {
	return setPartialField(f, p, fieldIndex, values, value)
}

func (f *offsetField) MinimumValue() int32                            { return f.min }
func (f *offsetField) MinimumValueAt(instant int64) int32             { return f.min }
func (f *offsetField) MinimumValueIn(p Partial, values []int32) int32 { return f.min }

func (f *offsetField) MaximumValue() int32                            { return f.max }
func (f *offsetField) MaximumValueAt(instant int64) int32             { return f.max }
func (f *offsetField) MaximumValueIn(p Partial, values []int32) int32 { return f.max }

func (f *offsetField) RoundHalfEven(instant int64) int64 {
	return roundHalfEvenField(f, instant)
}
