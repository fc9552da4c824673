package types

import (
	"strings"
	"time"

	"github.com/cquiroz/threetenbp/calendar/field"
)

// DateTime represents a date and time without an offset, such as
// 2008-06-30T10:15:30.
type DateTime struct {
	time.Time
}

// NewDateTime coerces src into a DateTime, discarding its location.
func NewDateTime(src time.Time) *DateTime {
	return &DateTime{time.Date(
		src.Year(), src.Month(), src.Day(),
		src.Hour(), src.Minute(), src.Second(), src.Nanosecond(),
		offsetZero,
	)}
}

// GoTime returns the underlying time.Time object.
func (dt *DateTime) GoTime() time.Time { return dt.Time }

// Get returns the value of the date or time field f.
func (dt *DateTime) Get(f field.Field) (int64, bool) {
	if v, ok := dateField(dt.Time, f); ok {
		return v, true
	}
	return timeField(dt.Time, f)
}

// Date returns the date part of dt.
func (dt *DateTime) Date() *Date { return NewDate(dt.Time) }

// TimeOfDay returns the time part of dt.
func (dt *DateTime) TimeOfDay() *Time { return NewTime(dt.Time) }

// AtOffset combines dt with off into an OffsetDateTime.
func (dt *DateTime) AtOffset(off ZoneOffset) *OffsetDateTime {
	t := dt.Time
	return &OffsetDateTime{time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		off.Location(),
	)}
}

// String returns the ISO representation of dt, such as
// "2008-06-30T10:15:30".
func (dt *DateTime) String() string {
	var buf strings.Builder
	appendDate(&buf, dt.Time)
	buf.WriteByte('T')
	appendTime(&buf, dt.Time)
	return buf.String()
}

// Compare compares dt with u. If dt is before u, it returns -1; if dt is
// after u, it returns +1; if they're the same, it returns 0.
func (dt *DateTime) Compare(u *DateTime) int {
	return dt.Time.Compare(u.Time)
}
