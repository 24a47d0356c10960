package chrono

import (
	"fmt"
	"sync"
)

// Sentinel caches, populated on first use and never evicted. A race that
// briefly constructs two sentinels for the same key is harmless, as they
// are value-equal; the mutex keeps allocation bounded.
var (
	sentinelMu            sync.Mutex
	durationSentinelCache map[DurationFieldType]*unsupportedDurationField
	dateTimeSentinelCache map[DateTimeFieldType]*unsupportedDateTimeField
)

// UnsupportedDurationField returns the process-wide sentinel duration
// field for a unit absent from a chronology. The sentinel reports
// IsSupported false and fails every conversion with
// [ErrUnsupportedField].
func UnsupportedDurationField(t DurationFieldType) DurationField {
	sentinelMu.Lock()
	defer sentinelMu.Unlock()
	if f, ok := durationSentinelCache[t]; ok {
		return f
	}
	if durationSentinelCache == nil {
		durationSentinelCache = make(map[DurationFieldType]*unsupportedDurationField)
	}
	f := &unsupportedDurationField{dtype: t}
	durationSentinelCache[t] = f
	return f
}

// UnsupportedDateTimeField returns the process-wide sentinel calendar
// field for a component absent from a chronology, attached to the given
// duration field. The sentinel reports IsSupported false; Add and
// Difference still delegate to the duration field when it is supported,
// and every other fallible operation fails with [ErrUnsupportedField].
//
// Operations without an error return, such as Get and the rounding
// family, panic when invoked on the sentinel.
func UnsupportedDateTimeField(t DateTimeFieldType, duration DurationField) DateTimeField {
	if duration == nil {
		duration = UnsupportedDurationField(t.DurationType())
	}
	sentinelMu.Lock()
	defer sentinelMu.Unlock()
	if f, ok := dateTimeSentinelCache[t]; ok && f.duration == duration {
		return f
	}
	if dateTimeSentinelCache == nil {
		dateTimeSentinelCache = make(map[DateTimeFieldType]*unsupportedDateTimeField)
	}
	f := &unsupportedDateTimeField{dtype: t, duration: duration}
	dateTimeSentinelCache[t] = f
	return f
}

type unsupportedDurationField struct {
	dtype DurationFieldType
}

func (f *unsupportedDurationField) Type() DurationFieldType { return f.dtype }
func (f *unsupportedDurationField) IsSupported() bool       { return false }
func (f *unsupportedDurationField) IsPrecise() bool         { return true }
func (f *unsupportedDurationField) UnitMillis() int64       { return 0 }

func (f *unsupportedDurationField) Value(duration int64) (int64, error) {
	return 0, f.err()
}

func (f *unsupportedDurationField) ValueAt(duration, instant int64) (int64, error) {
	return 0, f.err()
}

func (f *unsupportedDurationField) Millis(value int64) (int64, error) {
	return 0, f.err()
}

func (f *unsupportedDurationField) MillisAt(value, instant int64) (int64, error) {
	return 0, f.err()
}

func (f *unsupportedDurationField) Add(instant, value int64) (int64, error) {
	return 0, f.err()
}

func (f *unsupportedDurationField) Difference(minuend, subtrahend int64) (int64, error) {
	return 0, f.err()
}

func (f *unsupportedDurationField) Compare(other DurationField) int { return 0 }

func (f *unsupportedDurationField) err() error {
	return fmt.Errorf("%s duration: %w", f.dtype, ErrUnsupportedField)
}

type unsupportedDateTimeField struct {
	dtype    DateTimeFieldType
	duration DurationField
}

func (f *unsupportedDateTimeField) Type() DateTimeFieldType { return f.dtype }
func (f *unsupportedDateTimeField) IsSupported() bool       { return false }
func (f *unsupportedDateTimeField) IsLenient() bool         { return false }

func (f *unsupportedDateTimeField) Get(instant int64) int32 {
	panic(fmt.Sprintf("Get(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) Set(instant int64, value int32) (int64, error) {
	return 0, f.err()
}

// Add delegates to the attached duration field, which may be supported
// even though the calendar component is not.
func (f *unsupportedDateTimeField) Add(instant int64, amount int64) (int64, error) {
	if !f.duration.IsSupported() {
		return 0, f.err()
	}
	return f.duration.Add(instant, amount)
}

func (f *unsupportedDateTimeField) AddWrapField(instant int64, amount int32) (int64, error) {
	return 0, f.err()
}

func (f *unsupportedDateTimeField) AddPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return nil, f.err()
}

func (f *unsupportedDateTimeField) AddWrapPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return nil, f.err()
}

func (f *unsupportedDateTimeField) AddWrapFieldPartial(p Partial, fieldIndex int, values []int32, amount int32) ([]int32, error) {
	return nil, f.err()
}

func (f *unsupportedDateTimeField) SetPartial(p Partial, fieldIndex int, values []int32, value int32) ([]int32, error) {
	return nil, f.err()
}

// Difference delegates to the attached duration field, which may be
// supported even though the calendar component is not.
func (f *unsupportedDateTimeField) Difference(minuend, subtrahend int64) (int64, error) {
	if !f.duration.IsSupported() {
		return 0, f.err()
	}
	return f.duration.Difference(minuend, subtrahend)
}

func (f *unsupportedDateTimeField) DurationField() DurationField      { return f.duration }
func (f *unsupportedDateTimeField) RangeDurationField() DurationField { return nil }

func (f *unsupportedDateTimeField) IsLeap(instant int64) bool {
	panic(fmt.Sprintf("IsLeap(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) LeapAmount(instant int64) int32 {
	panic(fmt.Sprintf("LeapAmount(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) LeapDurationField() DurationField { return nil }

func (f *unsupportedDateTimeField) MinimumValue() int32 {
	panic(fmt.Sprintf("MinimumValue() failed: %v", f.err()))
}

func (f *unsupportedDateTimeField) MinimumValueAt(instant int64) int32 {
	panic(fmt.Sprintf("MinimumValueAt(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) MinimumValueIn(p Partial, values []int32) int32 {
	panic(fmt.Sprintf("MinimumValueIn() failed: %v", f.err()))
}

func (f *unsupportedDateTimeField) MaximumValue() int32 {
	panic(fmt.Sprintf("MaximumValue() failed: %v", f.err()))
}

func (f *unsupportedDateTimeField) MaximumValueAt(instant int64) int32 {
	panic(fmt.Sprintf("MaximumValueAt(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) MaximumValueIn(p Partial, values []int32) int32 {
	panic(fmt.Sprintf("MaximumValueIn() failed: %v", f.err()))
}

func (f *unsupportedDateTimeField) RoundFloor(instant int64) int64 {
	panic(fmt.Sprintf("RoundFloor(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) RoundCeiling(instant int64) int64 {
	panic(fmt.Sprintf("RoundCeiling(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) RoundHalfFloor(instant int64) int64 {
	panic(fmt.Sprintf("RoundHalfFloor(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) RoundHalfCeiling(instant int64) int64 {
	panic(fmt.Sprintf("RoundHalfCeiling(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) RoundHalfEven(instant int64) int64 {
	panic(fmt.Sprintf("RoundHalfEven(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) Remainder(instant int64) int64 {
	panic(fmt.Sprintf("Remainder(%d) failed: %v", instant, f.err()))
}

func (f *unsupportedDateTimeField) err() error {
	return fmt.Errorf("%s field: %w", f.dtype, ErrUnsupportedField)
}
