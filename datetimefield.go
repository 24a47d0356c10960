package chrono

import "fmt"

// DateTimeField represents a calendar component, such as month-of-year,
// anchored either to an absolute millisecond instant or to a partial date.
// A field reads, stores, shifts and rounds its component with well-defined
// carry and bounds semantics; all other components of the instant pass
// through unchanged unless an operation's contract says otherwise.
//
// All implementations in this package are immutable and safe for
// concurrent use by multiple goroutines.
//
// Get, the bounds accessors and the rounding methods are total for every
// supported field and have no error return; calling them on the sentinel
// returned by [UnsupportedDateTimeField] panics.
type DateTimeField interface {
	// Type returns the calendar component this field represents.
	Type() DateTimeFieldType

	// IsSupported reports whether this field performs real computations.
	// It is false only for the sentinel returned by
	// [UnsupportedDateTimeField].
	IsSupported() bool

	// IsLenient reports whether Set accepts out-of-range values by
	// rolling them over into larger fields.
	IsLenient() bool

	// Get returns the field's value at the given instant.
	Get(instant int64) int32

	// Set returns the instant with this field's value replaced. Unless
	// the field is lenient, values outside the instant's bounds are
	// rejected with a [FieldValueError].
	Set(instant int64, value int32) (int64, error)

	// Add shifts the instant by the given number of this field's units.
	// Larger fields overflow automatically, since all fields share the
	// millisecond axis.
	Add(instant int64, amount int64) (int64, error)

	// AddWrapField adds to this field's value, wrapping within its bounds
	// at the given instant. Larger fields are never modified.
	AddWrapField(instant int64, amount int32) (int64, error)

	// AddPartial adds amount units of this field, the one at
	// values[fieldIndex], to a partial date ordered largest field first.
	// Overflow carries into the next larger field; carrying past the
	// outermost field, or into a field whose unit does not match this
	// field's range unit, fails with [ErrIncompatibleFields]. The values
	// slice is mutated in place and returned.
	AddPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error)

	// AddWrapPartial is like AddPartial, except that overflow at the
	// outermost field wraps back into that field's range instead of
	// failing.
	AddWrapPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error)

	// AddWrapFieldPartial adds to this field's value in a partial date,
	// wrapping within the field's own bounds. Larger fields are never
	// modified; smaller fields are re-clamped.
	AddWrapFieldPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error)

	// SetPartial stores a value into a partial date, then clamps every
	// smaller field into its possibly narrowed range.
	SetPartial(p Partial, fieldIndex int, values []int32, value int32) ([]int32, error)

	// Difference returns the number of whole units of this field between
	// subtrahend and minuend, such that Difference(Add(i, n), i) == n.
	Difference(minuend, subtrahend int64) (int64, error)

	// DurationField returns the duration field representing this field's
	// unit.
	DurationField() DurationField

	// RangeDurationField returns the duration field of the larger unit
	// bounding this field's value range, or nil if the range is
	// unbounded.
	RangeDurationField() DurationField

	// IsLeap reports whether the field's value at the instant is part of
	// a leap unit, such as a day in a leap year for day-of-year.
	IsLeap(instant int64) bool

	// LeapAmount returns the size of the leap at the instant, typically
	// 0 or 1.
	LeapAmount(instant int64) int32

	// LeapDurationField returns the duration field of the leap unit, or
	// nil if this field has no leap concept.
	LeapDurationField() DurationField

	// MinimumValue returns the smallest value this field ever takes.
	MinimumValue() int32

	// MinimumValueAt returns the smallest valid value at the instant.
	MinimumValueAt(instant int64) int32

	// MinimumValueIn returns the smallest valid value given the other
	// values of a partial date.
	MinimumValueIn(p Partial, values []int32) int32

	// MaximumValue returns the largest value this field ever takes.
	MaximumValue() int32

	// MaximumValueAt returns the largest valid value at the instant.
	MaximumValueAt(instant int64) int32

	// MaximumValueIn returns the largest valid value given the other
	// values of a partial date.
	MaximumValueIn(p Partial, values []int32) int32

	// RoundFloor returns the largest instant not after the given instant
	// at which this field's remainder is zero.
	RoundFloor(instant int64) int64

	// RoundCeiling returns the smallest instant not before the given
	// instant at which this field's remainder is zero.
	RoundCeiling(instant int64) int64

	// RoundHalfFloor rounds to the nearer of floor and ceiling, ties
	// going to the floor.
	RoundHalfFloor(instant int64) int64

	// RoundHalfCeiling rounds to the nearer of floor and ceiling, ties
	// going to the ceiling.
	RoundHalfCeiling(instant int64) int64

	// RoundHalfEven rounds to the nearer of floor and ceiling, ties going
	// to whichever makes this field's value even.
	RoundHalfEven(instant int64) int64

	// Remainder returns instant - RoundFloor(instant).
	Remainder(instant int64) int64
}

// Partial is an ordered subset of calendar fields without a full instant,
// largest-duration field first. It gives the partial-date operations of
// [DateTimeField] access to sibling fields for carry and clamping.
//
// Implementations are provided by the value classes built on top of this
// package; the field algebra itself only consumes the interface.
type Partial interface {
	// Size returns the number of fields in the partial.
	Size() int

	// FieldType returns the type of the field at the given index.
	FieldType(index int) DateTimeFieldType

	// Field returns the field at the given index.
	Field(index int) DateTimeField

	// Value returns the value of the field at the given index.
	Value(index int) int32
}

// addWrapFieldInstant implements AddWrapField from Get, Set and the
// field's bounds at the instant.
func addWrapFieldInstant(f DateTimeField, instant int64, amount int32) (int64, error) {
	wrapped, err := AddWrapped(f.Get(instant), amount, f.MinimumValueAt(instant), f.MaximumValueAt(instant))
	if err != nil {
		return 0, err
	}
	return f.Set(instant, wrapped)
}

// addPartialField implements the carry loop shared by AddPartial and
// AddWrapPartial. Under the wrapped policy, overflow at field index 0
// wraps back into that field's range; under the bounded policy it fails.
func addPartialField(f DateTimeField, p Partial, fieldIndex int, values []int32, amount int32, wrapOutermost bool) ([]int32, error) {
	if amount == 0 {
		return values, nil
	}
	var next DateTimeField
	for amount > 0 {
		max := f.MaximumValueIn(p, values)
		proposed := int64(values[fieldIndex]) + int64(amount)
		if proposed <= int64(max) {
			values[fieldIndex] = int32(proposed)
			break
		}
		consumed := int64(max) + 1 - int64(values[fieldIndex])
		if next == nil && fieldIndex == 0 {
			if !wrapOutermost {
				return nil, fmt.Errorf("cannot carry past outermost %s field: %w", f.Type(), ErrIncompatibleFields)
			}
			amount = int32(int64(amount) - consumed)
			values[fieldIndex] = f.MinimumValueIn(p, values)
			continue
		}
		if next == nil {
			next = p.Field(fieldIndex - 1)
			if err := verifyCarryCompatible(f, next); err != nil {
				return nil, err
			}
		}
		amount = int32(int64(amount) - consumed)
		var err error
		if wrapOutermost {
			values, err = next.AddWrapPartial(p, fieldIndex-1, values, 1)
		} else {
			values, err = next.AddPartial(p, fieldIndex-1, values, 1)
		}
		if err != nil {
			return nil, err
		}
		values[fieldIndex] = f.MinimumValueIn(p, values)
	}
	for amount < 0 {
		min := f.MinimumValueIn(p, values)
		proposed := int64(values[fieldIndex]) + int64(amount)
		if proposed >= int64(min) {
			values[fieldIndex] = int32(proposed)
			break
		}
		consumed := int64(min) - 1 - int64(values[fieldIndex])
		if next == nil && fieldIndex == 0 {
			if !wrapOutermost {
				return nil, fmt.Errorf("cannot carry past outermost %s field: %w", f.Type(), ErrIncompatibleFields)
			}
			amount = int32(int64(amount) - consumed)
			values[fieldIndex] = f.MaximumValueIn(p, values)
			continue
		}
		if next == nil {
			next = p.Field(fieldIndex - 1)
			if err := verifyCarryCompatible(f, next); err != nil {
				return nil, err
			}
		}
		amount = int32(int64(amount) - consumed)
		var err error
		if wrapOutermost {
			values, err = next.AddWrapPartial(p, fieldIndex-1, values, -1)
		} else {
			values, err = next.AddPartial(p, fieldIndex-1, values, -1)
		}
		if err != nil {
			return nil, err
		}
		values[fieldIndex] = f.MaximumValueIn(p, values)
	}
	return setPartialField(f, p, fieldIndex, values, values[fieldIndex])
}

// verifyCarryCompatible checks that overflow of f may be carried into the
// next larger field: f's range unit must be the larger field's unit.
func verifyCarryCompatible(f, next DateTimeField) error {
	rdf := f.RangeDurationField()
	if rdf == nil || rdf.Type() != next.DurationField().Type() {
		return fmt.Errorf("range unit of %s does not match unit of %s: %w", f.Type(), next.Type(), ErrIncompatibleFields)
	}
	return nil
}

// addWrapFieldPartial implements AddWrapFieldPartial from the field's
// bounds within the partial.
func addWrapFieldPartial(f DateTimeField, p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	wrapped, err := AddWrapped(values[fieldIndex], amount, f.MinimumValueIn(p, values), f.MaximumValueIn(p, values))
	if err != nil {
		return nil, err
	}
	return f.SetPartial(p, fieldIndex, values, wrapped)
}

// setPartialField stores a value into a partial date, then walks every
// smaller field and clamps it into its possibly narrowed range. Values
// only ever move towards the nearer bound.
func setPartialField(f DateTimeField, p Partial, fieldIndex int, values []int32, value int32) ([]int32, error) {
	if err := verifyValueBounds(f.Type(), value, f.MinimumValueIn(p, values), f.MaximumValueIn(p, values)); err != nil {
		return nil, err
	}
	values[fieldIndex] = value
	for i := fieldIndex + 1; i < p.Size(); i++ {
		g := p.Field(i)
		if max := g.MaximumValueIn(p, values); values[i] > max {
			values[i] = max
		}
		if min := g.MinimumValueIn(p, values); values[i] < min {
			values[i] = min
		}
	}
	return values, nil
}

// roundCeilingField derives RoundCeiling as one unit past RoundFloor for
// instants that are not already aligned.
func roundCeilingField(f DateTimeField, instant int64) int64 {
	floor := f.RoundFloor(instant)
	if floor == instant {
		return instant
	}
	ceiling, err := f.Add(floor, 1)
	if err != nil {
		panic(fmt.Sprintf("RoundCeiling(%d) on %s failed: %v", instant, f.Type(), err)) // unreachable away from the axis limits
	}
	return ceiling
}

func roundHalfFloorField(f DateTimeField, instant int64) int64 {
	floor := f.RoundFloor(instant)
	ceiling := f.RoundCeiling(instant)
	if instant-floor <= ceiling-instant {
		return floor
	}
	return ceiling
}

func roundHalfCeilingField(f DateTimeField, instant int64) int64 {
	floor := f.RoundFloor(instant)
	ceiling := f.RoundCeiling(instant)
	if ceiling-instant <= instant-floor {
		return ceiling
	}
	return floor
}

func roundHalfEvenField(f DateTimeField, instant int64) int64 {
	floor := f.RoundFloor(instant)
	ceiling := f.RoundCeiling(instant)
	switch diffFloor, diffCeiling := instant-floor, ceiling-instant; {
	case diffFloor < diffCeiling:
		return floor
	case diffCeiling < diffFloor:
		return ceiling
	default:
		// Halfway: pick the one that leaves this field's value even.
		if f.Get(ceiling)&1 == 0 {
			return ceiling
		}
		return floor
	}
}

func fieldRemainder(f DateTimeField, instant int64) int64 {
	return instant - f.RoundFloor(instant)
}
