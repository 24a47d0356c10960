package chrono

import "fmt"

// preciseField is a calendar component whose unit and range are both
// fixed millisecond multiples, such as second-of-minute or hour-of-day.
// Values run from 0 to range-1 and are aligned to the epoch.
type preciseField struct {
	dtype      DateTimeFieldType
	unit       DurationField
	rangeDur   DurationField
	unitMillis int64
	rangeSize  int64 // number of values, rangeDur.UnitMillis() / unitMillis
}

// NewPreciseField returns a calendar field counting whole units of unit
// within the larger rangeField unit, with values running from 0 to
// rangeField/unit - 1. Both duration fields must be precise, and the
// range must span at least two unit values.
//
// NewPreciseField returns [ErrInvalidArgument] if either duration field
// is nil, unsupported or imprecise, if the unit is shorter than one
// millisecond, or if the range spans fewer than two values.
func NewPreciseField(t DateTimeFieldType, unit, rangeField DurationField) (DateTimeField, error) {
	switch {
	case unit == nil || !unit.IsSupported() || !unit.IsPrecise():
		return nil, fmt.Errorf("%s field requires a precise unit duration: %w", t, ErrInvalidArgument)
	case rangeField == nil || !rangeField.IsSupported() || !rangeField.IsPrecise():
		return nil, fmt.Errorf("%s field requires a precise range duration: %w", t, ErrInvalidArgument)
	case unit.UnitMillis() < 1:
		return nil, fmt.Errorf("unit of %d ms for %s field: %w", unit.UnitMillis(), t, ErrInvalidArgument)
	}
	rangeSize := rangeField.UnitMillis() / unit.UnitMillis()
	if rangeSize < 2 {
		return nil, fmt.Errorf("range of %s field spans %d value(s), need at least 2: %w", t, rangeSize, ErrInvalidArgument)
	}
	return &preciseField{
		dtype:      t,
		unit:       unit,
		rangeDur:   rangeField,
		unitMillis: unit.UnitMillis(),
		rangeSize:  rangeSize,
	}, nil
}

func (f *preciseField) Type() DateTimeFieldType { return f.dtype }
func (f *preciseField) IsSupported() bool       { return true }
func (f *preciseField) IsLenient() bool         { return false }

func (f *preciseField) Get(instant int64) int32 {
	if instant >= 0 {
		return int32((instant / f.unitMillis) % f.rangeSize)
	}
	return int32(f.rangeSize - 1 + ((instant+1)/f.unitMillis)%f.rangeSize)
}

func (f *preciseField) Set(instant int64, value int32) (int64, error) {
	if err := verifyValueBounds(f.dtype, value, f.MinimumValueAt(instant), f.MaximumValueAt(instant)); err != nil {
		return 0, err
	}
	shift, err := SafeMultiply64(int64(value)-int64(f.Get(instant)), f.unitMillis)
	if err != nil {
		return 0, err
	}
	return SafeAdd64(instant, shift)
}

func (f *preciseField) Add(instant int64, amount int64) (int64, error) {
	return f.unit.Add(instant, amount)
}

func (f *preciseField) AddWrapField(instant int64, amount int32) (int64, error) {
	return addWrapFieldInstant(f, instant, amount)
}

func (f *preciseField) AddPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addPartialField(f, p, fieldIndex, values, amount, false)
}

func (f *preciseField) AddWrapPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addPartialField(f, p, fieldIndex, values, amount, true)
}

func (f *preciseField) AddWrapFieldPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return addWrapFieldPartial(f, p, fieldIndex, values, amount)
}

func (f *preciseField) SetPartial(p Partial, fieldIndex int, values []int32, value int32) ([]int32, error) {
	return setPartialField(f, p, fieldIndex, values, value)
}

func (f *preciseField) Difference(minuend, subtrahend int64) (int64, error) {
	return f.unit.Difference(minuend, subtrahend)
}

func (f *preciseField) DurationField() DurationField      { return f.unit }
func (f *preciseField) RangeDurationField() DurationField { return f.rangeDur }

func (f *preciseField) IsLeap(instant int64) bool        { return false }
func (f *preciseField) LeapAmount(instant int64) int32   { return 0 }
func (f *preciseField) LeapDurationField() DurationField { return nil }

func (f *preciseField) MinimumValue() int32                            { return 0 }
func (f *preciseField) MinimumValueAt(instant int64) int32             { return 0 }
func (f *preciseField) MinimumValueIn(p Partial, values []int32) int32 { return 0 }

func (f *preciseField) MaximumValue() int32                            { return int32(f.rangeSize - 1) }
func (f *preciseField) MaximumValueAt(instant int64) int32             { return f.MaximumValue() }
func (f *preciseField) MaximumValueIn(p Partial, values []int32) int32 { return f.MaximumValue() }

func (f *preciseField) RoundFloor(instant int64) int64 {
	if instant >= 0 {
		return instant - instant%f.unitMillis
	}
	instant++
	return instant - instant%f.unitMillis - f.unitMillis
}

func (f *preciseField) RoundCeiling(instant int64) int64 {
	if instant > 0 {
		instant--
		return instant - instant%f.unitMillis + f.unitMillis
	}
	return instant - instant%f.unitMillis
}

func (f *preciseField) RoundHalfFloor(instant int64) int64 {
	return roundHalfFloorField(f, instant)
}

func (f *preciseField) RoundHalfCeiling(instant int64) int64 {
	return roundHalfCeilingField(f, instant)
}

func (f *preciseField) RoundHalfEven(instant int64) int64 {
	return roundHalfEvenField(f, instant)
}

func (f *preciseField) Remainder(instant int64) int64 {
	if instant >= 0 {
		return instant % f.unitMillis
	}
	return (instant+1)%f.unitMillis + f.unitMillis - 1
}
