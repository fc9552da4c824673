package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/cquiroz/threetenbp/calendar/field"
)

// Date represents a date without a time or offset, such as 2008-06-30.
type Date struct {
	time.Time
}

// NewDate coerces src into a Date.
func NewDate(src time.Time) *Date {
	return &Date{
		time.Date(src.Year(), src.Month(), src.Day(), 0, 0, 0, 0, offsetZero),
	}
}

// DateOf returns the Date for year, month, and day. Returns an error if the
// day does not exist in the month, or the month is out of range.
func DateOf(year int, month time.Month, day int) (*Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, offsetZero)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return nil, fmt.Errorf(
			"%w: invalid date: year %d, month %d, day %d",
			ErrType, year, month, day,
		)
	}
	return &Date{t}, nil
}

// GoTime returns the underlying time.Time object.
func (d *Date) GoTime() time.Time { return d.Time }

// Get returns the value of the date field f.
func (d *Date) Get(f field.Field) (int64, bool) {
	return dateField(d.Time, f)
}

// AtTime combines d with t into a DateTime.
func (d *Date) AtTime(t *Time) *DateTime {
	return &DateTime{time.Date(
		d.Year(), d.Month(), d.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), offsetZero,
	)}
}

// String returns the ISO representation of d, such as "2008-06-30".
func (d *Date) String() string {
	var buf strings.Builder
	appendDate(&buf, d.Time)
	return buf.String()
}

// Compare compares the date d with u. If d is before u, it returns -1; if d
// is after u, it returns +1; if they're the same, it returns 0.
func (d *Date) Compare(u *Date) int {
	return d.Time.Compare(u.Time)
}
