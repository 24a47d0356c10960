package chrono

import "fmt"

// dividedField is a calendar component derived by dividing a wrapped
// field's value by a constant, such as century-of-era from year-of-era.
// Division uses floor semantics, so negative wrapped values divide
// towards negative infinity.
type dividedField struct {
	DateTimeField // wrapped field

	dtype   DateTimeFieldType
	divisor int32
	unit    DurationField // wrapped unit scaled by the divisor
	min     int32
	max     int32
}

// NewDividedField returns a calendar field whose value is the wrapped
// field's value divided by divisor, rounding towards negative infinity.
// Its unit duration is the wrapped field's unit scaled by the divisor.
//
// NewDividedField returns [ErrInvalidArgument] if the wrapped field is
// nil or unsupported, or if divisor is less than 2.
func NewDividedField(field DateTimeField, t DateTimeFieldType, divisor int32) (DateTimeField, error) {
	if field == nil || !field.IsSupported() {
		return nil, fmt.Errorf("divided %s field requires a supported wrapped field: %w", t, ErrInvalidArgument)
	}
	if divisor < 2 {
		return nil, fmt.Errorf("divisor %d for %s field: %w", divisor, t, ErrInvalidArgument)
	}
	unit, err := NewScaledDurationField(field.DurationField(), t.DurationType(), divisor)
	if err != nil {
		return nil, err
	}
	return &dividedField{
		DateTimeField: field,
		dtype:         t,
		divisor:       divisor,
		unit:          unit,
		min:           divide(field.MinimumValue(), divisor),
		max:           divide(field.MaximumValue(), divisor),
	}, nil
}

// divide calculates ⌊value / divisor⌋ with floor semantics.
func divide(value, divisor int32) int32 {
	if value >= 0 {
		return value / divisor
	}
	return (value+1)/divisor - 1
}

// modulo calculates value - divisor * ⌊value / divisor⌋, in [0, divisor-1].
func modulo(value, divisor int32) int32 {
	if value >= 0 {
		return value % divisor
	}
	return (value+1)%divisor + divisor - 1
}

func (f *dividedField) Type() DateTimeFieldType { return f.dtype }

func (f *dividedField) Get(instant int64) int32 {
	return divide(f.DateTimeField.Get(instant), f.divisor)
}

func (f *dividedField) Set(instant int64, value int32) (int64, error) {
	if err := verifyValueBounds(f.dtype, value, f.min, f.max); err != nil {
		return 0, err
	}
	remainder := modulo(f.DateTimeField.Get(instant), f.divisor)
	stored, err := SafeToInt(int64(value)*int64(f.divisor) + int64(remainder))
	if err != nil {
		return 0, err
	}
	return f.DateTimeField.Set(instant, stored)
}

func (f *dividedField) Add(instant int64, amount int64) (int64, error) {
	scaled, err := SafeMultiply64(amount, int64(f.divisor))
	if err != nil {
		return 0, err
	}
	return f.DateTimeField.Add(instant, scaled)
}

func (f *dividedField) AddWrapField(instant int64, amount int32) (int64, error) {
	return addWrapFieldInstant(f, instant, amount)
}

func (f *dividedField) AddPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addPartialField(f, p, fieldIndex, values, amount, false)
}

func (f *dividedField) AddWrapPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addPartialField(f, p, fieldIndex, values, amount, true)
}

func (f *dividedField) AddWrapFieldPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addWrapFieldPartial(f, p, fieldIndex, values, amount)
}

func (f *dividedField) SetPartial(p Partial, fieldIndex int, values []int32, value int32) ([]int32, error) {
	return setPartialField(f, p, fieldIndex, values, value)
}

func (f *dividedField) Difference(minuend, subtrahend int64) (int64, error) {
	diff, err := f.DateTimeField.Difference(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return diff / int64(f.divisor), nil
}

func (f *dividedField) DurationField() DurationField { return f.unit }

func (f *dividedField) MinimumValue() int32                            { return f.min }
func (f *dividedField) MinimumValueAt(instant int64) int32             { return f.min }
func (f *dividedField) MinimumValueIn(p Partial, values []int32) int32 { return f.min }

func (f *dividedField) MaximumValue() int32                            { return f.max }
func (f *dividedField) MaximumValueAt(instant int64) int32             { return f.max }
func (f *dividedField) MaximumValueIn(p Partial, values []int32) int32 { return f.max }

func (f *dividedField) RoundFloor(instant int64) int64 {
	// Align the wrapped field to the first wrapped value of this field's
	// current value, then floor on the wrapped unit.
	wrapped := f.DateTimeField
	aligned, err := wrapped.Set(instant, f.Get(instant)*f.divisor)
	if err != nil {
		panic(fmt.Sprintf("RoundFloor(%d) on %s failed: %v", instant, f.dtype, err)) // unreachable: the value was read from the same axis
	}
	return wrapped.RoundFloor(aligned)
}

func (f *dividedField) RoundCeiling(instant int64) int64 {
	return roundCeilingField(f, instant)
}

func (f *dividedField) RoundHalfFloor(instant int64) int64 {
	return roundHalfFloorField(f, instant)
}

func (f *dividedField) RoundHalfCeiling(instant int64) int64 {
	return roundHalfCeilingField(f, instant)
}

func (f *dividedField) RoundHalfEven(instant int64) int64 {
	return roundHalfEvenField(f, instant)
}

func (f *dividedField) Remainder(instant int64) int64 {
	return fieldRemainder(f, instant)
}
