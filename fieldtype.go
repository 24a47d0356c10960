package chrono

// DurationFieldType identifies the unit a duration field measures.
type DurationFieldType int

const (
	DurationEras DurationFieldType = iota
	DurationCenturies
	DurationWeekyears
	DurationYears
	DurationMonths
	DurationWeeks
	DurationDays
	DurationHalfdays
	DurationHours
	DurationMinutes
	DurationSeconds
	DurationMillis
)

// DurationNone marks the absence of a range duration, for fields such as
// era whose value is not bounded by a larger unit.
const DurationNone DurationFieldType = -1

var durationFieldNames = [...]string{
	DurationEras:      "eras",
	DurationCenturies: "centuries",
	DurationWeekyears: "weekyears",
	DurationYears:     "years",
	DurationMonths:    "months",
	DurationWeeks:     "weeks",
	DurationDays:      "days",
	DurationHalfdays:  "halfdays",
	DurationHours:     "hours",
	DurationMinutes:   "minutes",
	DurationSeconds:   "seconds",
	DurationMillis:    "millis",
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t DurationFieldType) String() string {
	if t < 0 || int(t) >= len(durationFieldNames) {
		return "unknown"
	}
	return durationFieldNames[t]
}

// DateTimeFieldType identifies a calendar component, such as month-of-year.
// Each type carries the unit it counts in and, where one exists, the larger
// unit that bounds its value range.
type DateTimeFieldType int

const (
	FieldEra DateTimeFieldType = iota
	FieldYearOfEra
	FieldCenturyOfEra
	FieldYearOfCentury
	FieldYear
	FieldDayOfYear
	FieldMonthOfYear
	FieldDayOfMonth
	FieldWeekyearOfCentury
	FieldWeekyear
	FieldWeekOfWeekyear
	FieldDayOfWeek
	FieldHalfdayOfDay
	FieldHourOfHalfday
	FieldClockhourOfHalfday
	FieldClockhourOfDay
	FieldHourOfDay
	FieldMinuteOfDay
	FieldMinuteOfHour
	FieldSecondOfDay
	FieldSecondOfMinute
	FieldMillisOfDay
	FieldMillisOfSecond
)

type dateTimeFieldInfo struct {
	name     string
	unit     DurationFieldType
	rangeDur DurationFieldType
}

var dateTimeFieldInfos = [...]dateTimeFieldInfo{
	FieldEra:                {"era", DurationEras, DurationNone},
	FieldYearOfEra:          {"yearOfEra", DurationYears, DurationEras},
	FieldCenturyOfEra:       {"centuryOfEra", DurationCenturies, DurationEras},
	FieldYearOfCentury:      {"yearOfCentury", DurationYears, DurationCenturies},
	FieldYear:               {"year", DurationYears, DurationNone},
	FieldDayOfYear:          {"dayOfYear", DurationDays, DurationYears},
	FieldMonthOfYear:        {"monthOfYear", DurationMonths, DurationYears},
	FieldDayOfMonth:         {"dayOfMonth", DurationDays, DurationMonths},
	FieldWeekyearOfCentury:  {"weekyearOfCentury", DurationWeekyears, DurationCenturies},
	FieldWeekyear:           {"weekyear", DurationWeekyears, DurationNone},
	FieldWeekOfWeekyear:     {"weekOfWeekyear", DurationWeeks, DurationWeekyears},
	FieldDayOfWeek:          {"dayOfWeek", DurationDays, DurationWeeks},
	FieldHalfdayOfDay:       {"halfdayOfDay", DurationHalfdays, DurationDays},
	FieldHourOfHalfday:      {"hourOfHalfday", DurationHours, DurationHalfdays},
	FieldClockhourOfHalfday: {"clockhourOfHalfday", DurationHours, DurationHalfdays},
	FieldClockhourOfDay:     {"clockhourOfDay", DurationHours, DurationDays},
	FieldHourOfDay:          {"hourOfDay", DurationHours, DurationDays},
	FieldMinuteOfDay:        {"minuteOfDay", DurationMinutes, DurationDays},
	FieldMinuteOfHour:       {"minuteOfHour", DurationMinutes, DurationHours},
	FieldSecondOfDay:        {"secondOfDay", DurationSeconds, DurationDays},
	FieldSecondOfMinute:     {"secondOfMinute", DurationSeconds, DurationMinutes},
	FieldMillisOfDay:        {"millisOfDay", DurationMillis, DurationDays},
	FieldMillisOfSecond:     {"millisOfSecond", DurationMillis, DurationSeconds},
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t DateTimeFieldType) String() string {
	if t < 0 || int(t) >= len(dateTimeFieldInfos) {
		return "unknown"
	}
	return dateTimeFieldInfos[t].name
}

// DurationType returns the unit this field type counts in.
func (t DateTimeFieldType) DurationType() DurationFieldType {
	if t < 0 || int(t) >= len(dateTimeFieldInfos) {
		return DurationNone
	}
	return dateTimeFieldInfos[t].unit
}

// RangeDurationType returns the larger unit that bounds this field type's
// value range, or [DurationNone] if the range is unbounded.
func (t DateTimeFieldType) RangeDurationType() DurationFieldType {
	if t < 0 || int(t) >= len(dateTimeFieldInfos) {
		return DurationNone
	}
	return dateTimeFieldInfos[t].rangeDur
}
