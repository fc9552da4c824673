// Package types provides the temporal values printed and parsed by the
// format package.
//
// Each type wraps a time.Time and implements [field.Accessor], reporting the
// ISO calendar fields it supports. Calendar arithmetic (month lengths, leap
// years, week numbering) is delegated to package time.
package types

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/cquiroz/threetenbp/calendar/field"
)

// ErrType wraps errors returned by the types package.
var ErrType = errors.New("type")

const (
	secondsPerHour   = 60 * 60
	secondsPerMinute = 60
	nanosPerSecond   = int64(time.Second)
	nanosPerMilli    = int64(time.Millisecond)
)

// Temporal defines the interface for all date and time values.
type Temporal interface {
	field.Accessor

	// GoTime returns the underlying time.Time object.
	GoTime() time.Time
}

// dateField returns the value of the date field f for t.
func dateField(t time.Time, f field.Field) (int64, bool) {
	year := int64(t.Year())
	month := int64(t.Month())
	switch f {
	case field.Era:
		if year >= 1 {
			return 1, true
		}
		return 0, true
	case field.YearOfEra:
		if year >= 1 {
			return year, true
		}
		return 1 - year, true
	case field.Year:
		return year, true
	case field.QuarterOfYear:
		return (month-1)/3 + 1, true
	case field.MonthOfQuarter:
		return (month-1)%3 + 1, true
	case field.MonthOfYear:
		return month, true
	case field.WeekBasedYear:
		wby, _ := t.ISOWeek()
		return int64(wby), true
	case field.WeekOfWeekBasedYear:
		_, week := t.ISOWeek()
		return int64(week), true
	case field.DayOfYear:
		return int64(t.YearDay()), true
	case field.DayOfMonth:
		return int64(t.Day()), true
	case field.DayOfWeek:
		return int64(FromWeekday(t.Weekday())), true
	}
	return 0, false
}

// timeField returns the value of the time-of-day field f for t.
func timeField(t time.Time, f field.Field) (int64, bool) {
	hour := int64(t.Hour())
	switch f {
	case field.AmPmOfDay:
		return hour / 12, true
	case field.ClockHourOfAmPm:
		if h := hour % 12; h != 0 {
			return h, true
		}
		return 12, true
	case field.HourOfAmPm:
		return hour % 12, true
	case field.ClockHourOfDay:
		if hour == 0 {
			return 24, true
		}
		return hour, true
	case field.HourOfDay:
		return hour, true
	case field.MinuteOfHour:
		return int64(t.Minute()), true
	case field.SecondOfMinute:
		return int64(t.Second()), true
	case field.NanoOfSecond:
		return int64(t.Nanosecond()), true
	case field.MilliOfDay:
		return nanoOfDay(t) / nanosPerMilli, true
	case field.NanoOfDay:
		return nanoOfDay(t), true
	}
	return 0, false
}

func nanoOfDay(t time.Time) int64 {
	secs := int64(t.Hour())*secondsPerHour + int64(t.Minute())*secondsPerMinute + int64(t.Second())
	return secs*nanosPerSecond + int64(t.Nanosecond())
}

// appendDate appends the ISO representation of the date of t, using at
// least four year digits and a sign for years beyond 9999 or before 0.
func appendDate(buf *strings.Builder, t time.Time) {
	year := t.Year()
	switch {
	case year > 9999:
		buf.WriteByte('+')
		buf.WriteString(strconv.Itoa(year))
	case year < 0:
		buf.WriteByte('-')
		pad(buf, -year, 4)
	default:
		pad(buf, year, 4)
	}
	buf.WriteByte('-')
	pad(buf, int(t.Month()), 2)
	buf.WriteByte('-')
	pad(buf, t.Day(), 2)
}

// appendTime appends the ISO representation of the time of t. Seconds are
// omitted when zero, and the fraction uses the shortest of 3, 6, or 9
// digits that represents it exactly.
func appendTime(buf *strings.Builder, t time.Time) {
	pad(buf, t.Hour(), 2)
	buf.WriteByte(':')
	pad(buf, t.Minute(), 2)
	sec, nano := t.Second(), t.Nanosecond()
	if sec == 0 && nano == 0 {
		return
	}
	buf.WriteByte(':')
	pad(buf, sec, 2)
	switch {
	case nano == 0:
	case nano%1_000_000 == 0:
		buf.WriteByte('.')
		pad(buf, nano/1_000_000, 3)
	case nano%1000 == 0:
		buf.WriteByte('.')
		pad(buf, nano/1000, 6)
	default:
		buf.WriteByte('.')
		pad(buf, nano, 9)
	}
}

// pad writes the non-negative value v left-padded with zeros to width.
func pad(buf *strings.Builder, v, width int) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		buf.WriteByte('0')
	}
	buf.WriteString(s)
}
