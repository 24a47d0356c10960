package chrono

import (
	"errors"
	"testing"
)

func TestUnsupportedDurationField(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		a := UnsupportedDurationField(DurationWeeks)
		b := UnsupportedDurationField(DurationWeeks)
		if a != b {
			t.Errorf("two sentinels for the same unit are distinct")
		}
		if a == UnsupportedDurationField(DurationHalfdays) {
			t.Errorf("sentinels for different units are identical")
		}
	})
	t.Run("properties", func(t *testing.T) {
		f := UnsupportedDurationField(DurationWeeks)
		if f.IsSupported() {
			t.Errorf("IsSupported() = true, want false")
		}
		if !f.IsPrecise() {
			t.Errorf("IsPrecise() = false, want true")
		}
		if f.UnitMillis() != 0 {
			t.Errorf("UnitMillis() = %d, want 0", f.UnitMillis())
		}
		if f.Compare(MustPreciseDurationField(DurationDays, testMillisPerDay)) != 0 {
			t.Errorf("Compare() != 0")
		}
	})
	t.Run("error", func(t *testing.T) {
		f := UnsupportedDurationField(DurationWeeks)
		ops := map[string]func() error{
			"Value":      func() error { _, err := f.Value(0); return err },
			"ValueAt":    func() error { _, err := f.ValueAt(0, 0); return err },
			"Millis":     func() error { _, err := f.Millis(0); return err },
			"MillisAt":   func() error { _, err := f.MillisAt(0, 0); return err },
			"Add":        func() error { _, err := f.Add(0, 0); return err },
			"Difference": func() error { _, err := f.Difference(0, 0); return err },
		}
		for name, op := range ops {
			if err := op(); !errors.Is(err, ErrUnsupportedField) {
				t.Errorf("%s = %v, want %v", name, err, ErrUnsupportedField)
			}
		}
	})
}

func TestUnsupportedDateTimeField(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		a := UnsupportedDateTimeField(FieldEra, nil)
		b := UnsupportedDateTimeField(FieldEra, nil)
		if a != b {
			t.Errorf("two sentinels for the same field are distinct")
		}
		if a.IsSupported() {
			t.Errorf("IsSupported() = true, want false")
		}
		// Without a duration, the sentinel carries the matching
		// unsupported duration sentinel.
		if got := a.DurationField(); got != UnsupportedDurationField(DurationEras) {
			t.Errorf("DurationField() = %v, want the eras sentinel", got)
		}
	})
	t.Run("delegation", func(t *testing.T) {
		// Add and Difference still work through a supported duration
		// field.
		years := MustPreciseDurationField(DurationYears, testMillisPerYear)
		f := UnsupportedDateTimeField(FieldYearOfEra, years)
		got, err := f.Add(0, 2)
		if err != nil {
			t.Fatalf("Add(0, 2) failed: %v", err)
		}
		if want := 2 * testMillisPerYear; got != want {
			t.Errorf("Add(0, 2) = %d, want %d", got, want)
		}
		diff, err := f.Difference(2*testMillisPerYear, 0)
		if err != nil {
			t.Fatalf("Difference failed: %v", err)
		}
		if diff != 2 {
			t.Errorf("Difference(2y, 0) = %d, want 2", diff)
		}
	})
	t.Run("error", func(t *testing.T) {
		f := UnsupportedDateTimeField(FieldWeekyear, nil)
		values := []int32{1}
		p := &testPartial{fields: []DateTimeField{f}, values: values}
		ops := map[string]func() error{
			"Set":                 func() error { _, err := f.Set(0, 1); return err },
			"Add":                 func() error { _, err := f.Add(0, 1); return err },
			"AddWrapField":        func() error { _, err := f.AddWrapField(0, 1); return err },
			"Difference":          func() error { _, err := f.Difference(0, 0); return err },
			"AddPartial":          func() error { _, err := f.AddPartial(p, 0, values, 1); return err },
			"AddWrapPartial":      func() error { _, err := f.AddWrapPartial(p, 0, values, 1); return err },
			"AddWrapFieldPartial": func() error { _, err := f.AddWrapFieldPartial(p, 0, values, 1); return err },
			"SetPartial":          func() error { _, err := f.SetPartial(p, 0, values, 1); return err },
		}
		for name, op := range ops {
			if err := op(); !errors.Is(err, ErrUnsupportedField) {
				t.Errorf("%s = %v, want %v", name, err, ErrUnsupportedField)
			}
		}
	})
	t.Run("panic", func(t *testing.T) {
		f := UnsupportedDateTimeField(FieldDayOfWeek, nil)
		ops := map[string]func(){
			"Get":              func() { f.Get(0) },
			"IsLeap":           func() { f.IsLeap(0) },
			"LeapAmount":       func() { f.LeapAmount(0) },
			"MinimumValue":     func() { f.MinimumValue() },
			"MaximumValue":     func() { f.MaximumValue() },
			"MinimumValueAt":   func() { f.MinimumValueAt(0) },
			"MaximumValueAt":   func() { f.MaximumValueAt(0) },
			"RoundFloor":       func() { f.RoundFloor(0) },
			"RoundCeiling":     func() { f.RoundCeiling(0) },
			"RoundHalfFloor":   func() { f.RoundHalfFloor(0) },
			"RoundHalfCeiling": func() { f.RoundHalfCeiling(0) },
			"RoundHalfEven":    func() { f.RoundHalfEven(0) },
			"Remainder":        func() { f.Remainder(0) },
		}
		for name, op := range ops {
			func() {
				defer func() {
					if recover() == nil {
						t.Errorf("%s did not panic", name)
					}
				}()
				op()
			}()
		}
	})
}
