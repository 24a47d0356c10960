package chrono

import "fmt"

// MustPreciseDurationField is like [NewPreciseDurationField] but panics
// instead of returning an error. It simplifies chronology assembly, where
// construction arguments are known constants.
func MustPreciseDurationField(t DurationFieldType, unitMillis int64) DurationField {
	f, err := NewPreciseDurationField(t, unitMillis)
	if err != nil {
		panic(fmt.Sprintf("MustPreciseDurationField(%v, %v) failed: %v", t, unitMillis, err))
	}
	return f
}

// MustScaledDurationField is like [NewScaledDurationField] but panics
// instead of returning an error.
func MustScaledDurationField(field DurationField, t DurationFieldType, scalar int32) DurationField {
	f, err := NewScaledDurationField(field, t, scalar)
	if err != nil {
		panic(fmt.Sprintf("MustScaledDurationField(%v, %v) failed: %v", t, scalar, err))
	}
	return f
}

// MustPreciseField is like [NewPreciseField] but panics instead of
// returning an error.
func MustPreciseField(t DateTimeFieldType, unit, rangeField DurationField) DateTimeField {
	f, err := NewPreciseField(t, unit, rangeField)
	if err != nil {
		panic(fmt.Sprintf("MustPreciseField(%v) failed: %v", t, err))
	}
	return f
}

// MustDividedField is like [NewDividedField] but panics instead of
// returning an error.
func MustDividedField(field DateTimeField, t DateTimeFieldType, divisor int32) DateTimeField {
	f, err := NewDividedField(field, t, divisor)
	if err != nil {
		panic(fmt.Sprintf("MustDividedField(%v, %v) failed: %v", t, divisor, err))
	}
	return f
}

// MustRemainderField is like [NewRemainderField] but panics instead of
// returning an error.
func MustRemainderField(field DateTimeField, t DateTimeFieldType, divisor int32) DateTimeField {
	f, err := NewRemainderField(field, t, divisor)
	if err != nil {
		panic(fmt.Sprintf("MustRemainderField(%v, %v) failed: %v", t, divisor, err))
	}
	return f
}

// MustOffsetField is like [NewOffsetField] but panics instead of
// returning an error.
func MustOffsetField(field DateTimeField, t DateTimeFieldType, offset int32) DateTimeField {
	f, err := NewOffsetField(field, t, offset)
	if err != nil {
		panic(fmt.Sprintf("MustOffsetField(%v, %v) failed: %v", t, offset, err))
	}
	return f
}

// MustSkipField is like [NewSkipField] but panics instead of returning
// an error.
func MustSkipField(field DateTimeField, skip int32) DateTimeField {
	f, err := NewSkipField(field, skip)
	if err != nil {
		panic(fmt.Sprintf("MustSkipField(%v) failed: %v", skip, err))
	}
	return f
}

// MustSkipUndoField is like [NewSkipUndoField] but panics instead of
// returning an error.
func MustSkipUndoField(field DateTimeField, skip int32) DateTimeField {
	f, err := NewSkipUndoField(field, skip)
	if err != nil {
		panic(fmt.Sprintf("MustSkipUndoField(%v) failed: %v", skip, err))
	}
	return f
}

// MustZeroIsMaxField is like [NewZeroIsMaxField] but panics instead of
// returning an error.
func MustZeroIsMaxField(field DateTimeField, t DateTimeFieldType) DateTimeField {
	f, err := NewZeroIsMaxField(field, t)
	if err != nil {
		panic(fmt.Sprintf("MustZeroIsMaxField(%v) failed: %v", t, err))
	}
	return f
}

// MustLenientField is like [NewLenientField] but panics instead of
// returning an error.
func MustLenientField(field, local DateTimeField, zone ZoneConverter) DateTimeField {
	f, err := NewLenientField(field, local, zone)
	if err != nil {
		panic(fmt.Sprintf("MustLenientField failed: %v", err))
	}
	return f
}

// MustStrictField is like [NewStrictField] but panics instead of
// returning an error.
func MustStrictField(field DateTimeField) DateTimeField {
	f, err := NewStrictField(field)
	if err != nil {
		panic(fmt.Sprintf("MustStrictField failed: %v", err))
	}
	return f
}
