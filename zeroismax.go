package chrono

import "fmt"

// zeroIsMaxField is a calendar component that reports a wrapped field's
// zero value as the maximum plus one, converting 0-based fields such as
// hour-of-day (0-23) into 1-based clock fields (1-24).
type zeroIsMaxField struct {
	DateTimeField // wrapped field

	dtype DateTimeFieldType
}

// NewZeroIsMaxField returns a calendar field that renames the wrapped
// field's zero value to its maximum plus one, so values run from 1 to
// wrapped maximum + 1.
//
// NewZeroIsMaxField returns [ErrInvalidArgument] if the wrapped field is
// nil or unsupported, or if its minimum value is not zero.
func NewZeroIsMaxField(field DateTimeField, t DateTimeFieldType) (DateTimeField, error) {
	if field == nil || !field.IsSupported() {
		return nil, fmt.Errorf("zero-is-max %s field requires a supported wrapped field: %w", t, ErrInvalidArgument)
	}
	if field.MinimumValue() != 0 {
		return nil, fmt.Errorf("zero-is-max %s field requires a wrapped minimum of 0, got %d: %w", t, field.MinimumValue(), ErrInvalidArgument)
	}
	return &zeroIsMaxField{DateTimeField: field, dtype: t}, nil
}

func (f *zeroIsMaxField) Type() DateTimeFieldType { return f.dtype }

func (f *zeroIsMaxField) Get(instant int64) int32 {
	value := f.DateTimeField.Get(instant)
	if value == 0 {
		return f.MaximumValue()
	}
	return value
}

func (f *zeroIsMaxField) Set(instant int64, value int32) (int64, error) {
	max := f.MaximumValue()
	if err := verifyValueBounds(f.dtype, value, 1, max); err != nil {
		return 0, err
	}
	if value == max {
		value = 0
	}
	return f.DateTimeField.Set(instant, value)
}

func (f *zeroIsMaxField) AddWrapField(instant int64, amount int32) (int64, error) {
	return addWrapFieldInstant(f, instant, amount)
}

func (f *zeroIsMaxField) AddPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addPartialField(f, p, fieldIndex, values, amount, false)
}

func (f *zeroIsMaxField) AddWrapPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addPartialField(f, p, fieldIndex, values, amount, true)
}

func (f *zeroIsMaxField) AddWrapFieldPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addWrapFieldPartial(f, p, fieldIndex, values, amount)
}

func (f *zeroIsMaxField) SetPartial(p Partial, fieldIndex int, values []int32, value int32) ([]int32, error) {
	return setPartialField(f, p, fieldIndex, values, value)
}

func (f *zeroIsMaxField) MinimumValue() int32                            { return 1 }
func (f *zeroIsMaxField) MinimumValueAt(instant int64) int32             { return 1 }
func (f *zeroIsMaxField) MinimumValueIn(p Partial, values []int32) int32 { return 1 }

func (f *zeroIsMaxField) MaximumValue() int32 {
	return f.DateTimeField.MaximumValue() + 1
}

func (f *zeroIsMaxField) MaximumValueAt(instant int64) int32 {
	return f.DateTimeField.MaximumValueAt(instant) + 1
}

func (f *zeroIsMaxField) MaximumValueIn(p Partial, values []int32) int32 {
	return f.DateTimeField.MaximumValueIn(p, values) + 1
}

func (f *zeroIsMaxField) RoundHalfEven(instant int64) int64 {
	return roundHalfEvenField(f, instant)
}
