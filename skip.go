package chrono

import "fmt"

// skipField is a calendar component that omits one value from a wrapped
// field's sequence, used for numbering systems with no year zero.
// Wrapped values at or below the skip value shift down by one, so the
// skip value itself is never observed.
type skipField struct {
	DateTimeField // wrapped field

	skip int32
	min  int32
}

// NewSkipField returns a calendar field identical to the wrapped field
// except that the value skip never occurs: reading shifts values at or
// below skip down by one, and storing skip fails with a [FieldValueError].
//
// NewSkipField returns [ErrInvalidArgument] if the wrapped field is nil
// or unsupported.
func NewSkipField(field DateTimeField, skip int32) (DateTimeField, error) {
	if field == nil || !field.IsSupported() {
		return nil, fmt.Errorf("skip field requires a supported wrapped field: %w", ErrInvalidArgument)
	}
	f := &skipField{DateTimeField: field, skip: skip}
	switch min := field.MinimumValue(); {
	case min < skip:
		f.min = min - 1
	case min == skip:
		f.min = skip + 1
	default:
		f.min = min
	}
	return f, nil
}

func (f *skipField) Get(instant int64) int32 {
	value := f.DateTimeField.Get(instant)
	if value <= f.skip {
		value--
	}
	return value
}

func (f *skipField) Set(instant int64, value int32) (int64, error) {
	if err := verifyValueBounds(f.Type(), value, f.min, f.MaximumValue()); err != nil {
		return 0, err
	}
	if value <= f.skip {
		if value == f.skip {
			return 0, &FieldValueError{Field: f.Type(), Value: value, Min: f.min, Max: f.MaximumValue()}
		}
		value++
	}
	return f.DateTimeField.Set(instant, value)
}

func (f *skipField) MinimumValue() int32 { return f.min }

// skipUndoField re-inserts the value a [NewSkipField] omits, recovering
// the wrapped field's original sequence.
type skipUndoField struct {
	DateTimeField // wrapped field

	skip int32
	min  int32
}

// NewSkipUndoField returns the inverse of [NewSkipField]: the wrapped
// field is assumed to omit the value skip, and the returned field exposes
// a contiguous sequence that includes it. The minimum-value derivation is
// deliberately not the mirror image of the skip field's; the pair is
// verified by the round-trip property instead.
//
// NewSkipUndoField returns [ErrInvalidArgument] if the wrapped field is
// nil or unsupported.
func NewSkipUndoField(field DateTimeField, skip int32) (DateTimeField, error) {
	if field == nil || !field.IsSupported() {
		return nil, fmt.Errorf("skip-undo field requires a supported wrapped field: %w", ErrInvalidArgument)
	}
	f := &skipUndoField{DateTimeField: field, skip: skip}
	switch min := field.MinimumValue(); {
	case min < skip:
		f.min = min + 1
	case min == skip+1:
		f.min = skip
	default:
		f.min = min
	}
	return f, nil
}

func (f *skipUndoField) Get(instant int64) int32 {
	value := f.DateTimeField.Get(instant)
	if value < f.skip {
		value++
	}
	return value
}

func (f *skipUndoField) Set(instant int64, value int32) (int64, error) {
	if err := verifyValueBounds(f.Type(), value, f.min, f.MaximumValue()); err != nil {
		return 0, err
	}
	if value <= f.skip {
		value--
	}
	return f.DateTimeField.Set(instant, value)
}

func (f *skipUndoField) MinimumValue() int32 { return f.min }
