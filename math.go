package chrono

import (
	"fmt"
	"math"
)

// SafeAdd calculates a + b, reporting [ErrOverflow] if the sum is not
// representable as an int32.
func SafeAdd(a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return int32(sum), nil
}

// SafeAdd64 calculates a + b, reporting [ErrOverflow] if the sum is not
// representable as an int64.
func SafeAdd64(a, b int64) (int64, error) {
	sum := a + b
	// Overflow iff both operands have the same sign and the result does not.
	if (a^sum) < 0 && (a^b) >= 0 {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return sum, nil
}

// SafeSubtract calculates a - b, reporting [ErrOverflow] if the difference
// is not representable as an int32.
func SafeSubtract(a, b int32) (int32, error) {
	diff := int64(a) - int64(b)
	if diff < math.MinInt32 || diff > math.MaxInt32 {
		return 0, fmt.Errorf("%d - %d: %w", a, b, ErrOverflow)
	}
	return int32(diff), nil
}

// SafeSubtract64 calculates a - b, reporting [ErrOverflow] if the difference
// is not representable as an int64.
func SafeSubtract64(a, b int64) (int64, error) {
	diff := a - b
	// Overflow iff the operands have differing signs and the result has
	// the sign of the subtrahend.
	if (a^b) < 0 && (b^diff) >= 0 {
		return 0, fmt.Errorf("%d - %d: %w", a, b, ErrOverflow)
	}
	return diff, nil
}

// SafeMultiply calculates a * b, reporting [ErrOverflow] if the product is
// not representable as an int32.
func SafeMultiply(a, b int32) (int32, error) {
	prod := int64(a) * int64(b)
	if prod < math.MinInt32 || prod > math.MaxInt32 {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return int32(prod), nil
}

// SafeMultiply64 calculates a * b, reporting [ErrOverflow] if the product is
// not representable as an int64.
func SafeMultiply64(a, b int64) (int64, error) {
	switch {
	case b == 0 || a == 0:
		return 0, nil
	case b == 1:
		return a, nil
	case a == math.MinInt64 || b == math.MinInt64:
		// MinInt64 survives multiplication only by one.
		if a == math.MinInt64 && b == 1 {
			return a, nil
		}
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	prod := a * b
	if prod/b != a {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return prod, nil
}

// SafeNegate calculates -a, reporting [ErrOverflow] for math.MinInt32,
// whose negation is not representable.
func SafeNegate(a int32) (int32, error) {
	if a == math.MinInt32 {
		return 0, fmt.Errorf("-(%d): %w", a, ErrOverflow)
	}
	return -a, nil
}

// SafeToInt narrows a to an int32, reporting [ErrOverflow] if the value
// does not fit.
func SafeToInt(a int64) (int32, error) {
	if a < math.MinInt32 || a > math.MaxInt32 {
		return 0, fmt.Errorf("%d: %w", a, ErrOverflow)
	}
	return int32(a), nil
}

// WrappedValue maps value into [min, max] by modular wrap-around, so that
// the result is congruent to value modulo (max - min + 1). The modulo is
// Euclidean: negative inputs wrap correctly.
//
// WrappedValue reports [ErrInvalidArgument] unless min < max.
func WrappedValue(value, min, max int32) (int32, error) {
	if min >= max {
		return 0, fmt.Errorf("wrap range [%d,%d]: %w", min, max, ErrInvalidArgument)
	}
	return wrap64(int64(value), min, max), nil
}

// AddWrapped calculates value + amount wrapped into [min, max].
// The intermediate sum is computed in 64 bits, so it cannot overflow.
//
// AddWrapped reports [ErrInvalidArgument] unless min < max.
func AddWrapped(value, amount, min, max int32) (int32, error) {
	if min >= max {
		return 0, fmt.Errorf("wrap range [%d,%d]: %w", min, max, ErrInvalidArgument)
	}
	return wrap64(int64(value)+int64(amount), min, max), nil
}

// wrap64 maps v into [min, max] by Euclidean modulo. Requires min < max.
func wrap64(v int64, min, max int32) int32 {
	size := int64(max) - int64(min) + 1
	v -= int64(min)
	v %= size
	if v < 0 {
		v += size
	}
	return int32(v + int64(min))
}

// floorDiv calculates ⌊a / b⌋, rounding towards negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod calculates a - b * ⌊a / b⌋, which has the sign of b.
func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}
