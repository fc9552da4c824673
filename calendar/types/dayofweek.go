package types

import (
	"fmt"
	"time"

	"github.com/cquiroz/threetenbp/calendar/field"
)

// DayOfWeek is a day of the week numbered from Monday (1) to Sunday (7) as
// in ISO-8601.
type DayOfWeek int

//revive:disable:exported
const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayOfWeekOf returns the DayOfWeek for the ISO value v.
func DayOfWeekOf(v int) (DayOfWeek, error) {
	if v < int(Monday) || v > int(Sunday) {
		return 0, fmt.Errorf("%w: invalid value for DayOfWeek: %d", ErrType, v)
	}
	return DayOfWeek(v), nil
}

// FromWeekday converts w into a DayOfWeek.
func FromWeekday(w time.Weekday) DayOfWeek {
	if w == time.Sunday {
		return Sunday
	}
	return DayOfWeek(w)
}

// Weekday converts d into a time.Weekday.
func (d DayOfWeek) Weekday() time.Weekday {
	return time.Weekday(d % 7)
}

// Plus returns the day of the week days after d. days may be negative.
func (d DayOfWeek) Plus(days int) DayOfWeek {
	n := (int(d) - 1 + days%7 + 7) % 7
	return DayOfWeek(n + 1)
}

// Get returns the DayOfWeek field.
func (d DayOfWeek) Get(f field.Field) (int64, bool) {
	if f == field.DayOfWeek {
		return int64(d), true
	}
	return 0, false
}

// String returns the English name of d.
func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return d.Weekday().String()
}

// YearMonth represents a month in a year, such as 2008-06.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Get returns the value of the year or month field f.
func (ym YearMonth) Get(f field.Field) (int64, bool) {
	switch f {
	case field.Year, field.Era, field.YearOfEra, field.QuarterOfYear,
		field.MonthOfQuarter, field.MonthOfYear:
		return dateField(time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, offsetZero), f)
	}
	return 0, false
}

// String returns the ISO representation of ym, such as "2008-06".
func (ym YearMonth) String() string {
	s := NewDate(time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, offsetZero)).String()
	return s[:len(s)-3]
}
