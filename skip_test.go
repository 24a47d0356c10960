package chrono

import (
	"errors"
	"testing"
)

func TestNewSkipField(t *testing.T) {
	year := testYear()
	t.Run("success", func(t *testing.T) {
		skipped, err := NewSkipField(year, 0)
		if err != nil {
			t.Fatalf("NewSkipField(year, 0) failed: %v", err)
		}
		// Removing one value extends the minimum by one.
		if got := skipped.MinimumValue(); got != -5001 {
			t.Errorf("MinimumValue() = %d, want -5001", got)
		}
	})
	t.Run("minimum equals skip", func(t *testing.T) {
		skipped, err := NewSkipField(testYearOfEra(), 0)
		if err != nil {
			t.Fatalf("NewSkipField(yearOfEra, 0) failed: %v", err)
		}
		if got := skipped.MinimumValue(); got != 1 {
			t.Errorf("MinimumValue() = %d, want 1", got)
		}
	})
	t.Run("error", func(t *testing.T) {
		tests := map[string]DateTimeField{
			"nil field":         nil,
			"unsupported field": UnsupportedDateTimeField(FieldYear, nil),
		}
		for name, field := range tests {
			_, err := NewSkipField(field, 0)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("%s: NewSkipField() = %v, want %v", name, err, ErrInvalidArgument)
			}
		}
	})
}

func TestSkipField_Get(t *testing.T) {
	year := testYear()
	skipped := MustSkipField(year, 0)
	tests := []struct {
		year, want int32
	}{
		{2, 2},
		{1, 1},
		{0, -1},
		{-1, -2},
		{-43, -44},
	}
	for _, tt := range tests {
		if got := skipped.Get(testYearInstant(tt.year)); got != tt.want {
			t.Errorf("Get(year %d) = %d, want %d", tt.year, got, tt.want)
		}
	}
	// The skipped value never appears.
	for y := int32(-10); y <= 10; y++ {
		if got := skipped.Get(testYearInstant(y)); got == 0 {
			t.Errorf("Get(year %d) = 0, the skipped value must not occur", y)
		}
	}
}

func TestSkipField_Set(t *testing.T) {
	year := testYear()
	skipped := MustSkipField(year, 0)
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value, wantYear int32
		}{
			{1, 1},
			{2, 2},
			{-1, 0},
			{-2, -1},
			{-44, -43},
		}
		for _, tt := range tests {
			got, err := skipped.Set(testYearInstant(500), tt.value)
			if err != nil {
				t.Errorf("Set(%d) failed: %v", tt.value, err)
				continue
			}
			if gotYear := year.Get(got); gotYear != tt.wantYear {
				t.Errorf("Set(%d) lands in wrapped year %d, want %d", tt.value, gotYear, tt.wantYear)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		_, err := skipped.Set(testYearInstant(500), 0)
		if !errors.Is(err, ErrValueOutOfRange) {
			t.Errorf("Set(0) = %v, want %v", err, ErrValueOutOfRange)
		}
		var fve *FieldValueError
		if !errors.As(err, &fve) {
			t.Fatalf("Set(0) error is not a *FieldValueError: %v", err)
		}
		if fve.Value != 0 {
			t.Errorf("Set(0) error value = %d, want 0", fve.Value)
		}
	})
}

func TestNewSkipUndoField(t *testing.T) {
	t.Run("minimum", func(t *testing.T) {
		skipped := MustSkipField(testYear(), 0)
		undone, err := NewSkipUndoField(skipped, 0)
		if err != nil {
			t.Fatalf("NewSkipUndoField failed: %v", err)
		}
		if got := undone.MinimumValue(); got != -5000 {
			t.Errorf("MinimumValue() = %d, want -5000", got)
		}
	})
	t.Run("minimum equals skip plus one", func(t *testing.T) {
		undone, err := NewSkipUndoField(testMonthOfYear(), 0)
		if err != nil {
			t.Fatalf("NewSkipUndoField(monthOfYear, 0) failed: %v", err)
		}
		if got := undone.MinimumValue(); got != 0 {
			t.Errorf("MinimumValue() = %d, want 0", got)
		}
	})
	t.Run("error", func(t *testing.T) {
		_, err := NewSkipUndoField(nil, 0)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewSkipUndoField(nil, 0) = %v, want %v", err, ErrInvalidArgument)
		}
	})
}

func TestSkipUndoField_RoundTrip(t *testing.T) {
	// Undoing a skip recovers the wrapped field exactly, including the
	// skipped value itself.
	year := testYear()
	skipped := MustSkipField(year, 0)
	undone := MustSkipUndoField(skipped, 0)
	t.Run("get", func(t *testing.T) {
		for y := int32(-4); y <= 4; y++ {
			if got := undone.Get(testYearInstant(y)); got != y {
				t.Errorf("Get(year %d) = %d, want %d", y, got, y)
			}
		}
	})
	t.Run("set", func(t *testing.T) {
		for v := int32(-4); v <= 4; v++ {
			got, err := undone.Set(testYearInstant(500), v)
			if err != nil {
				t.Errorf("Set(%d) failed: %v", v, err)
				continue
			}
			if gotYear := year.Get(got); gotYear != v {
				t.Errorf("Set(%d) lands in wrapped year %d, want %d", v, gotYear, v)
			}
		}
	})
}
