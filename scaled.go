package chrono

import "fmt"

// scaledDurationField is a duration field whose unit is a whole multiple
// of a wrapped field's unit, such as weeks built from days.
type scaledDurationField struct {
	DurationField // wrapped field

	dtype  DurationFieldType
	scalar int32
}

// NewScaledDurationField returns a duration field whose unit is
// scalar times the unit of the wrapped field.
//
// NewScaledDurationField returns [ErrInvalidArgument] if the wrapped field
// is nil or unsupported, or if scalar is 0 or 1.
func NewScaledDurationField(field DurationField, t DurationFieldType, scalar int32) (DurationField, error) {
	if field == nil || !field.IsSupported() {
		return nil, fmt.Errorf("scaled %s field requires a supported wrapped field: %w", t, ErrInvalidArgument)
	}
	if scalar == 0 || scalar == 1 {
		return nil, fmt.Errorf("scalar %d for %s field: %w", scalar, t, ErrInvalidArgument)
	}
	return &scaledDurationField{DurationField: field, dtype: t, scalar: scalar}, nil
}

func (f *scaledDurationField) Type() DurationFieldType { return f.dtype }

func (f *scaledDurationField) UnitMillis() int64 {
	return f.DurationField.UnitMillis() * int64(f.scalar)
}

func (f *scaledDurationField) Value(duration int64) (int64, error) {
	v, err := f.DurationField.Value(duration)
	if err != nil {
		return 0, err
	}
	return v / int64(f.scalar), nil
}

func (f *scaledDurationField) ValueAt(duration, instant int64) (int64, error) {
	v, err := f.DurationField.ValueAt(duration, instant)
	if err != nil {
		return 0, err
	}
	return v / int64(f.scalar), nil
}

func (f *scaledDurationField) Millis(value int64) (int64, error) {
	scaled, err := SafeMultiply64(value, int64(f.scalar))
	if err != nil {
		return 0, err
	}
	return f.DurationField.Millis(scaled)
}

func (f *scaledDurationField) MillisAt(value, instant int64) (int64, error) {
	scaled, err := SafeMultiply64(value, int64(f.scalar))
	if err != nil {
		return 0, err
	}
	return f.DurationField.MillisAt(scaled, instant)
}

func (f *scaledDurationField) Add(instant, value int64) (int64, error) {
	scaled, err := SafeMultiply64(value, int64(f.scalar))
	if err != nil {
		return 0, err
	}
	return f.DurationField.Add(instant, scaled)
}

func (f *scaledDurationField) Difference(minuend, subtrahend int64) (int64, error) {
	diff, err := f.DurationField.Difference(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return diff / int64(f.scalar), nil
}

func (f *scaledDurationField) Compare(other DurationField) int {
	return compareUnits(f, other)
}
