package chrono

import "fmt"

// DurationField represents a unit of elapsed time, such as an hour or
// a month. A field converts between millisecond durations and whole
// counts of its unit, and shifts instants by whole units.
//
// Precise fields have a fixed unit length in milliseconds. Imprecise
// fields, such as months, vary in length; their conversions are defined
// only relative to a reference instant, and their instant-free Value and
// Millis report [ErrUnsupportedField].
//
// All implementations in this package are immutable and safe for
// concurrent use by multiple goroutines.
type DurationField interface {
	// Type returns the unit this field measures.
	Type() DurationFieldType

	// IsSupported reports whether this field performs real computations.
	// It is false only for the sentinel returned by
	// [UnsupportedDurationField].
	IsSupported() bool

	// IsPrecise reports whether the unit length is fixed in milliseconds.
	IsPrecise() bool

	// UnitMillis returns the exact unit length for precise fields and the
	// average unit length for imprecise fields.
	UnitMillis() int64

	// Value returns the number of whole units in the given millisecond
	// duration, rounded towards zero.
	Value(duration int64) (int64, error)

	// ValueAt is like Value, but measures the duration starting at the
	// given instant, which matters for imprecise fields.
	ValueAt(duration, instant int64) (int64, error)

	// Millis returns the millisecond length of the given number of units.
	Millis(value int64) (int64, error)

	// MillisAt is like Millis, but measures units starting at the given
	// instant, which matters for imprecise fields.
	MillisAt(value, instant int64) (int64, error)

	// Add shifts the instant by the given number of units.
	Add(instant, value int64) (int64, error)

	// Difference returns the number of whole units between subtrahend and
	// minuend, such that Difference(Add(i, n), i) == n.
	Difference(minuend, subtrahend int64) (int64, error)

	// Compare orders duration fields by nominal unit length only;
	// precision is ignored.
	Compare(other DurationField) int
}

// compareUnits orders two duration fields by unit length.
func compareUnits(a, b DurationField) int {
	switch au, bu := a.UnitMillis(), b.UnitMillis(); {
	case au < bu:
		return -1
	case au > bu:
		return 1
	default:
		return 0
	}
}

// preciseDurationField is a duration field with a fixed unit length.
type preciseDurationField struct {
	dtype      DurationFieldType
	unitMillis int64
}

// NewPreciseDurationField returns a duration field for the given unit with
// a fixed length of unitMillis milliseconds.
//
// NewPreciseDurationField returns [ErrInvalidArgument] if unitMillis is
// less than 1.
func NewPreciseDurationField(t DurationFieldType, unitMillis int64) (DurationField, error) {
	if unitMillis < 1 {
		return nil, fmt.Errorf("unit of %d ms for %s field: %w", unitMillis, t, ErrInvalidArgument)
	}
	return &preciseDurationField{dtype: t, unitMillis: unitMillis}, nil
}

func (f *preciseDurationField) Type() DurationFieldType { return f.dtype }
func (f *preciseDurationField) IsSupported() bool       { return true }
func (f *preciseDurationField) IsPrecise() bool         { return true }
func (f *preciseDurationField) UnitMillis() int64       { return f.unitMillis }

func (f *preciseDurationField) Value(duration int64) (int64, error) {
	return duration / f.unitMillis, nil
}

func (f *preciseDurationField) ValueAt(duration, instant int64) (int64, error) {
	return duration / f.unitMillis, nil
}

func (f *preciseDurationField) Millis(value int64) (int64, error) {
	return SafeMultiply64(value, f.unitMillis)
}

func (f *preciseDurationField) MillisAt(value, instant int64) (int64, error) {
	return SafeMultiply64(value, f.unitMillis)
}

func (f *preciseDurationField) Add(instant, value int64) (int64, error) {
	addition, err := SafeMultiply64(value, f.unitMillis)
	if err != nil {
		return 0, err
	}
	return SafeAdd64(instant, addition)
}

func (f *preciseDurationField) Difference(minuend, subtrahend int64) (int64, error) {
	diff, err := SafeSubtract64(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return diff / f.unitMillis, nil
}

func (f *preciseDurationField) Compare(other DurationField) int {
	return compareUnits(f, other)
}

// linkedDurationField routes unit arithmetic back into an imprecise
// calendar field's own Add and Difference, breaking the circular
// dependency between a calendar field and its unit duration field.
type linkedDurationField struct {
	dtype      DurationFieldType
	unitMillis int64
	field      DateTimeField
}

// LinkedDurationField returns the duration field of an imprecise calendar
// field. The returned field reports the given average unit length and
// delegates all arithmetic to the calendar field's Add and Difference,
// so conversions are exact even though the unit length varies.
//
// The calendar field must not delegate its own Add or Difference back to
// the returned duration field.
func LinkedDurationField(t DurationFieldType, averageUnitMillis int64, field DateTimeField) DurationField {
	return &linkedDurationField{dtype: t, unitMillis: averageUnitMillis, field: field}
}

func (f *linkedDurationField) Type() DurationFieldType { return f.dtype }
func (f *linkedDurationField) IsSupported() bool       { return true }
func (f *linkedDurationField) IsPrecise() bool         { return false }
func (f *linkedDurationField) UnitMillis() int64       { return f.unitMillis }

func (f *linkedDurationField) Value(duration int64) (int64, error) {
	return 0, fmt.Errorf("%s duration is imprecise and convertible only relative to an instant: %w", f.dtype, ErrUnsupportedField)
}

func (f *linkedDurationField) ValueAt(duration, instant int64) (int64, error) {
	end, err := SafeAdd64(instant, duration)
	if err != nil {
		return 0, err
	}
	return f.field.Difference(end, instant)
}

func (f *linkedDurationField) Millis(value int64) (int64, error) {
	return 0, fmt.Errorf("%s duration is imprecise and convertible only relative to an instant: %w", f.dtype, ErrUnsupportedField)
}

func (f *linkedDurationField) MillisAt(value, instant int64) (int64, error) {
	end, err := f.field.Add(instant, value)
	if err != nil {
		return 0, err
	}
	return SafeSubtract64(end, instant)
}

func (f *linkedDurationField) Add(instant, value int64) (int64, error) {
	return f.field.Add(instant, value)
}

func (f *linkedDurationField) Difference(minuend, subtrahend int64) (int64, error) {
	return f.field.Difference(minuend, subtrahend)
}

func (f *linkedDurationField) Compare(other DurationField) int {
	return compareUnits(f, other)
}
