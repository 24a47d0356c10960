package chrono

import "fmt"

// ZoneConverter converts between the UTC millisecond axis and a local
// millisecond axis. It is the only time-zone capability this package
// consumes; implementations come from the hosting chronology.
//
// UTCZone is the identity converter for zone-less chronologies.
type ZoneConverter interface {
	// UTCToLocal shifts a UTC instant onto the local axis.
	UTCToLocal(instant int64) int64

	// LocalToUTC shifts a local instant back to UTC. When the local
	// instant is ambiguous or falls into a gap, originalUTC identifies
	// the conversion the caller started from; strict conversions resolve
	// gaps towards the original offset.
	LocalToUTC(local int64, strict bool, originalUTC int64) int64
}

// UTCZone is the identity [ZoneConverter]: the local axis is the UTC axis.
var UTCZone ZoneConverter = utcZone{}

type utcZone struct{}

func (utcZone) UTCToLocal(instant int64) int64 { return instant }

func (utcZone) LocalToUTC(local int64, strict bool, originalUTC int64) int64 { return local }

// lenientField is a calendar component whose Set accepts any value by
// converting the excess into an Add on the local time axis, rather than
// rejecting it.
type lenientField struct {
	DateTimeField // wrapped field

	local DateTimeField
	zone  ZoneConverter
}

// NewLenientField returns a lenient view of the given field: Set accepts
// out-of-range values by computing the signed difference from the current
// value and adding it on the local time axis, so excess rolls over into
// larger fields. The local field is the same calendar component computed
// directly on the local axis (the field itself for zone-less
// chronologies); zone converts between the axes, with [UTCZone] for no
// conversion.
//
// If the field is already lenient it is returned unchanged, and a strict
// view obtained from [NewStrictField] is unwrapped first.
//
// NewLenientField returns [ErrInvalidArgument] if any argument is nil or
// the field is unsupported.
func NewLenientField(field DateTimeField, local DateTimeField, zone ZoneConverter) (DateTimeField, error) {
	if s, ok := field.(*strictField); ok {
		field = s.DateTimeField
	}
	if field == nil || !field.IsSupported() {
		return nil, fmt.Errorf("lenient field requires a supported wrapped field: %w", ErrInvalidArgument)
	}
	if local == nil || zone == nil {
		return nil, fmt.Errorf("lenient %s field requires a local field and a zone converter: %w", field.Type(), ErrInvalidArgument)
	}
	if field.IsLenient() {
		return field, nil
	}
	return &lenientField{DateTimeField: field, local: local, zone: zone}, nil
}

func (f *lenientField) IsLenient() bool { return true }

// Set accepts any value, converting the difference from the current value
// into a zone-aware add so that out-of-range values roll over into larger
// fields.
func (f *lenientField) Set(instant int64, value int32) (int64, error) {
	localInstant := f.zone.UTCToLocal(instant)
	diff, err := SafeSubtract64(int64(value), int64(f.Get(instant)))
	if err != nil {
		return 0, err
	}
	localInstant, err = f.local.Add(localInstant, diff)
	if err != nil {
		return 0, err
	}
	return f.zone.LocalToUTC(localInstant, false, instant), nil
}

// strictField is a calendar component whose Set always bounds-checks,
// even when the wrapped field is lenient.
type strictField struct {
	DateTimeField // wrapped field
}

// NewStrictField returns a strict view of the given field: Set rejects
// values outside the bounds at the instant with a [FieldValueError].
// If the field is already strict it is returned unchanged, and a lenient
// view obtained from [NewLenientField] is unwrapped first.
//
// NewStrictField returns [ErrInvalidArgument] if the field is nil or
// unsupported.
func NewStrictField(field DateTimeField) (DateTimeField, error) {
	if l, ok := field.(*lenientField); ok {
		field = l.DateTimeField
	}
	if field == nil || !field.IsSupported() {
		return nil, fmt.Errorf("strict field requires a supported wrapped field: %w", ErrInvalidArgument)
	}
	if !field.IsLenient() {
		return field, nil
	}
	return &strictField{DateTimeField: field}, nil
}

func (f *strictField) IsLenient() bool { return false }

func (f *strictField) Set(instant int64, value int32) (int64, error) {
	if err := verifyValueBounds(f.Type(), value, f.MinimumValueAt(instant), f.MaximumValueAt(instant)); err != nil {
		return 0, err
	}
	return f.DateTimeField.Set(instant, value)
}
