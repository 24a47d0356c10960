/*
Package chrono implements the composable calendar-field algebra that
chronologies are assembled from: duration fields measuring units of
elapsed time, calendar fields reading and writing components of an
instant, and decorators that derive new fields from existing ones.

# Representation

Instants and durations are int64 millisecond counts on an axis whose
zero is the epoch. Calendar field values are int32. A [DurationField]
converts between millisecond durations and whole counts of one unit; a
[DateTimeField] reads one calendar component out of an instant, writes
it back, and shifts instants by whole units of the component.

Precise duration fields have a fixed unit length; imprecise fields such
as months vary, and their conversions are defined only relative to an
instant. [LinkedDurationField] derives the duration field of an
imprecise calendar field from the calendar field's own arithmetic, and
[ImpreciseDifference] implements the matching guess-and-correct
difference.

# Composition

Derived fields are built by wrapping, not by reimplementing:

  - [NewDividedField] and [NewRemainderField] split a field by a
    divisor, such as century-of-era and year-of-century from year.
  - [NewOffsetField] shifts all values by a constant.
  - [NewScaledDurationField] multiplies a duration field's unit.
  - [NewSkipField] and [NewSkipUndoField] remove or re-insert one value
    of the sequence, for numbering systems with no year zero.
  - [NewZeroIsMaxField] renames zero to maximum plus one, turning
    hour-of-day 0-23 into clock-hour 1-24.
  - [NewLenientField] and [NewStrictField] switch a field between
    rejecting out-of-range values and rolling them over into larger
    fields.

Each wrapper delegates everything it does not change to the wrapped
field, so decorators stack in any order.

# Partial instants

A [Partial] is an ordered slice of field values, largest unit first,
without a complete instant behind it. The Partial variants of Add and
Set operate on the value slice directly, carrying overflow into the
adjacent larger field, wrapping in place, or failing when no larger
field can absorb the carry.

# Rounding

Every calendar field rounds instants to its unit boundary: RoundFloor,
RoundCeiling, RoundHalfFloor, RoundHalfCeiling, RoundHalfEven, and
Remainder. The half variants agree except at the exact midpoint.

# Errors

All fallible operations return an error instead of panicking:

  - [ErrValueOutOfRange] (carried by [FieldValueError]) when a value is
    outside a field's bounds;
  - [ErrOverflow] when millisecond arithmetic exceeds int64 or a value
    exceeds int32;
  - [ErrUnsupportedField] when an operation is not defined for a field,
    including all conversions on the sentinels from
    [UnsupportedDurationField] and [UnsupportedDateTimeField];
  - [ErrIncompatibleFields] when a partial carry reaches a field that
    cannot absorb it;
  - [ErrInvalidArgument] when a constructor is misused.

Methods without an error result, such as Get and the rounding family,
are total on supported fields and panic only on the unsupported
sentinels.

Methods starting with Must are provided for each constructor and panic
on error, for assembling chronologies from known-good constants.

# Concurrency

All field implementations in this package are immutable and safe for
concurrent use by multiple goroutines.
*/
package chrono
