// Package field defines the calendrical fields printed and parsed by the
// format package, their value ranges, and the contract a value must satisfy
// to be printed.
//
// A [Field] is an opaque, comparable key such as [Year] or [HourOfDay]. Each
// field reports the [ValueRange] of legal values along with a pair of
// [Unit]s describing what it counts and what it counts within (hours within
// days, months within quarters). The units are descriptive only; the
// calendar arithmetic itself lives in package time.
package field

import (
	"errors"
	"fmt"
)

// ErrRange wraps errors returned for values outside a field's range.
var ErrRange = errors.New("range")

// Field identifies a named, integer-valued calendrical quantity.
type Field uint8

//revive:disable:exported
const (
	Era                 Field = iota + 1 // Era
	YearOfEra                            // YearOfEra
	Year                                 // Year
	QuarterOfYear                        // QuarterOfYear
	MonthOfQuarter                       // MonthOfQuarter
	MonthOfYear                          // MonthOfYear
	WeekBasedYear                        // WeekBasedYear
	WeekOfWeekBasedYear                  // WeekOfWeekBasedYear
	DayOfYear                            // DayOfYear
	DayOfMonth                           // DayOfMonth
	DayOfWeek                            // DayOfWeek
	AmPmOfDay                            // AmPmOfDay
	ClockHourOfAmPm                      // ClockHourOfAmPm
	HourOfAmPm                           // HourOfAmPm
	ClockHourOfDay                       // ClockHourOfDay
	HourOfDay                            // HourOfDay
	MinuteOfHour                         // MinuteOfHour
	SecondOfMinute                       // SecondOfMinute
	NanoOfSecond                         // NanoOfSecond
	MilliOfDay                           // MilliOfDay
	NanoOfDay                            // NanoOfDay
	OffsetSeconds                        // ZoneOffset
)

// rule describes the static properties of a field.
type rule struct {
	name   string
	rng    ValueRange
	unit   Unit
	within Unit
}

const (
	maxYear      = 999_999_999
	nanosPerDay  = 86_400_000_000_000
	millisPerDay = 86_400_000
	maxOffset    = 18 * 3600
)

//nolint:gochecknoglobals
var rules = [...]rule{
	Era:                 {"Era", Fixed(0, 1), Eras, Forever},
	YearOfEra:           {"YearOfEra", Variable(1, 1, maxYear, maxYear+1), Years, Eras},
	Year:                {"Year", Fixed(-maxYear, maxYear), Years, Forever},
	QuarterOfYear:       {"QuarterOfYear", Fixed(1, 4), Quarters, Years},
	MonthOfQuarter:      {"MonthOfQuarter", Fixed(1, 3), Months, Quarters},
	MonthOfYear:         {"MonthOfYear", Fixed(1, 12), Months, Years},
	WeekBasedYear:       {"WeekBasedYear", Fixed(-maxYear, maxYear), WeekBasedYears, Forever},
	WeekOfWeekBasedYear: {"WeekOfWeekBasedYear", Variable(1, 1, 52, 53), Weeks, WeekBasedYears},
	DayOfYear:           {"DayOfYear", Variable(1, 1, 365, 366), Days, Years},
	DayOfMonth:          {"DayOfMonth", Variable(1, 1, 28, 31), Days, Months},
	DayOfWeek:           {"DayOfWeek", Fixed(1, 7), Days, Weeks},
	AmPmOfDay:           {"AmPmOfDay", Fixed(0, 1), HalfDays, Days},
	ClockHourOfAmPm:     {"ClockHourOfAmPm", Fixed(1, 12), Hours, HalfDays},
	HourOfAmPm:          {"HourOfAmPm", Fixed(0, 11), Hours, HalfDays},
	ClockHourOfDay:      {"ClockHourOfDay", Fixed(1, 24), Hours, Days},
	HourOfDay:           {"HourOfDay", Fixed(0, 23), Hours, Days},
	MinuteOfHour:        {"MinuteOfHour", Fixed(0, 59), Minutes, Hours},
	SecondOfMinute:      {"SecondOfMinute", Fixed(0, 59), Seconds, Minutes},
	NanoOfSecond:        {"NanoOfSecond", Fixed(0, 999_999_999), Nanos, Seconds},
	MilliOfDay:          {"MilliOfDay", Fixed(0, millisPerDay-1), Millis, Days},
	NanoOfDay:           {"NanoOfDay", Fixed(0, nanosPerDay-1), Nanos, Days},
	OffsetSeconds:       {"ZoneOffset", Fixed(-maxOffset, maxOffset), Seconds, Forever},
}

// All returns every defined field in declaration order.
func All() []Field {
	all := make([]Field, 0, len(rules)-1)
	for f := Era; int(f) < len(rules); f++ {
		all = append(all, f)
	}
	return all
}

// Valid reports whether f is a defined field.
func (f Field) Valid() bool {
	return f > 0 && int(f) < len(rules)
}

// String returns the name of the field, e.g. "HourOfDay".
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", f)
	}
	return rules[f].name
}

// ID returns the qualified identifier of the field, e.g. "ISO.HourOfDay".
func (f Field) ID() string {
	return "ISO." + f.String()
}

// Range returns the range of legal values for f. Returns the zero
// ValueRange for an undefined field.
func (f Field) Range() ValueRange {
	if !f.Valid() {
		return ValueRange{}
	}
	return rules[f].rng
}

// Unit returns the unit f is measured in.
func (f Field) Unit() Unit {
	if !f.Valid() {
		return 0
	}
	return rules[f].unit
}

// RangeUnit returns the unit f is bound by, such that f counts Unit within
// RangeUnit.
func (f Field) RangeUnit() Unit {
	if !f.Valid() {
		return 0
	}
	return rules[f].within
}

// IsDate reports whether f is a date field.
func (f Field) IsDate() bool {
	return f >= Era && f <= DayOfWeek
}

// IsTime reports whether f is a time-of-day field.
func (f Field) IsTime() bool {
	return f >= AmPmOfDay && f <= NanoOfDay
}

// Check returns an error if value is not valid for f.
func (f Field) Check(value int64) error {
	return f.Range().Check(f, value)
}
