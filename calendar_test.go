package chrono

// The tests run against a toy calendar of fixed 360-day years, twelve
// 30-day months and 24-hour days, so every expected value can be
// recomputed by hand.
const (
	testMillisPerSecond = int64(1000)
	testMillisPerMinute = 60 * testMillisPerSecond
	testMillisPerHour   = 60 * testMillisPerMinute
	testMillisPerDay    = 24 * testMillisPerHour
	testMillisPerMonth  = 30 * testMillisPerDay
	testMillisPerYear   = 12 * testMillisPerMonth
	testMillisPerEra    = 10000 * testMillisPerYear
)

func testHourOfDay() DateTimeField {
	return MustPreciseField(FieldHourOfDay,
		MustPreciseDurationField(DurationHours, testMillisPerHour),
		MustPreciseDurationField(DurationDays, testMillisPerDay))
}

// testYearOfEra counts years 0 through 9999 within the era.
func testYearOfEra() DateTimeField {
	return MustPreciseField(FieldYearOfEra,
		MustPreciseDurationField(DurationYears, testMillisPerYear),
		MustPreciseDurationField(DurationEras, testMillisPerEra))
}

// testYear counts years from the middle of the era, so values run from
// -5000 to 4999 and negative values exercise the floor arithmetic.
func testYear() DateTimeField {
	return MustOffsetField(testYearOfEra(), FieldYear, -5000)
}

// testYearInstant returns the first instant of the given testYear value.
func testYearInstant(year int32) int64 {
	return (int64(year) + 5000) * testMillisPerYear
}

// testMonthOfYear counts months 1 through 12.
func testMonthOfYear() DateTimeField {
	return MustOffsetField(MustPreciseField(FieldMonthOfYear,
		MustPreciseDurationField(DurationMonths, testMillisPerMonth),
		MustPreciseDurationField(DurationYears, testMillisPerYear)), FieldMonthOfYear, 1)
}

// testDayOfMonthBase counts days 1 through 30; the partial tests narrow
// its maxima per month.
func testDayOfMonthBase() DateTimeField {
	return MustOffsetField(MustPreciseField(FieldDayOfMonth,
		MustPreciseDurationField(DurationDays, testMillisPerDay),
		MustPreciseDurationField(DurationMonths, testMillisPerMonth)), FieldDayOfMonth, 1)
}
