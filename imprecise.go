package chrono

// ImpreciseDifference returns the number of whole units of an imprecise
// calendar field between subtrahend and minuend. The unit length varies,
// so the result starts from an estimate based on the average unit length
// and is then corrected by single steps against the field's own Add until
// it is exact, which guarantees Difference(Add(i, n), i) == n.
//
// Calendar fields built on [LinkedDurationField] use this to implement
// Difference; averageUnitMillis must be positive.
func ImpreciseDifference(field DateTimeField, averageUnitMillis int64, minuend, subtrahend int64) (int64, error) {
	if minuend < subtrahend {
		diff, err := ImpreciseDifference(field, averageUnitMillis, subtrahend, minuend)
		if err != nil {
			return 0, err
		}
		return -diff, nil
	}

	difference := (minuend - subtrahend) / averageUnitMillis
	end, err := field.Add(subtrahend, difference)
	if err != nil {
		return 0, err
	}
	switch {
	case end < minuend:
		// Undershot: step forward until just past the minuend, then back off.
		for end <= minuend {
			difference++
			if end, err = field.Add(subtrahend, difference); err != nil {
				return 0, err
			}
		}
		difference--
	case end > minuend:
		// Overshot: step backward until at or before the minuend.
		for end > minuend {
			difference--
			if end, err = field.Add(subtrahend, difference); err != nil {
				return 0, err
			}
		}
	}
	return difference, nil
}
