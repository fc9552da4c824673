package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/cquiroz/threetenbp/calendar/field"
)

// Time represents a time of day without a date or offset, such as
// 10:15:30.
type Time struct {
	time.Time
}

// NewTime coerces src into a Time on the zero date.
func NewTime(src time.Time) *Time {
	return &Time{
		time.Date(
			0, 1, 1, src.Hour(), src.Minute(), src.Second(),
			src.Nanosecond(), offsetZero,
		),
	}
}

// TimeOf returns the Time for hour, minute, second, and nanosecond. Returns
// an error if any value is out of range.
func TimeOf(hour, minute, second, nano int) (*Time, error) {
	for _, v := range []struct {
		f   field.Field
		val int
	}{
		{field.HourOfDay, hour},
		{field.MinuteOfHour, minute},
		{field.SecondOfMinute, second},
		{field.NanoOfSecond, nano},
	} {
		if err := v.f.Check(int64(v.val)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrType, err)
		}
	}
	return &Time{time.Date(0, 1, 1, hour, minute, second, nano, offsetZero)}, nil
}

// GoTime returns the underlying time.Time object.
func (t *Time) GoTime() time.Time { return t.Time }

// Get returns the value of the time field f.
func (t *Time) Get(f field.Field) (int64, bool) {
	return timeField(t.Time, f)
}

// String returns the ISO representation of t, such as "10:15" or
// "10:15:30.123".
func (t *Time) String() string {
	var buf strings.Builder
	appendTime(&buf, t.Time)
	return buf.String()
}

// Compare compares the time of day t with u. If t is before u, it returns
// -1; if t is after u, it returns +1; if they're the same, it returns 0.
func (t *Time) Compare(u *Time) int {
	return t.Time.Compare(u.Time)
}
