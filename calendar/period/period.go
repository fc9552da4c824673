// Package period provides Period, an amount of time in years, months, days,
// hours, minutes, seconds, and nanoseconds, and parses and prints its
// ISO-8601 text form, such as "P2Y3M25DT1H30M10.5S".
package period

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrPeriod wraps period parsing and construction errors.
	ErrPeriod = errors.New("period")

	// ErrScan wraps scanning errors.
	ErrScan = errors.New("scan")
)

// Period is an amount of time in seven independent components. The
// components are not normalized against each other: PT90M and PT1H30M are
// different periods. The zero value is the zero period.
type Period struct {
	Years   int32
	Months  int32
	Days    int32
	Hours   int32
	Minutes int32
	Seconds int32

	// Nanos holds the fraction of the seconds. When both Seconds and Nanos
	// are non-zero they have the same sign.
	Nanos int64
}

// Of returns the period with the given components. Returns an error if
// seconds and nanos are both non-zero with different signs.
func Of(years, months, days, hours, minutes, seconds int32, nanos int64) (Period, error) {
	if (seconds > 0 && nanos < 0) || (seconds < 0 && nanos > 0) {
		return Period{}, fmt.Errorf(
			"%w: seconds %d and nanoseconds %d must have the same sign",
			ErrPeriod, seconds, nanos,
		)
	}
	return Period{
		Years:   years,
		Months:  months,
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
		Nanos:   nanos,
	}, nil
}

// IsZero reports whether every component of p is zero.
func (p Period) IsZero() bool {
	return p == Period{}
}

// HasTime reports whether p has a non-zero hour, minute, second, or
// nanosecond component.
func (p Period) HasTime() bool {
	return p.Hours != 0 || p.Minutes != 0 || p.Seconds != 0 || p.Nanos != 0
}

// Duration returns the time components of p as a time.Duration. Returns an
// error if p has a year, month, or day component, as their lengths vary, or
// if the total overflows a time.Duration.
func (p Period) Duration() (time.Duration, error) {
	if p.Years != 0 || p.Months != 0 || p.Days != 0 {
		return 0, fmt.Errorf("%w: %v has a date-based component", ErrPeriod, p)
	}
	total := int64(0)
	for _, c := range []struct {
		n    int64
		unit time.Duration
	}{
		{int64(p.Hours), time.Hour},
		{int64(p.Minutes), time.Minute},
		{int64(p.Seconds), time.Second},
		{p.Nanos, time.Nanosecond},
	} {
		v := c.n * int64(c.unit)
		if (c.n != 0 && v/c.n != int64(c.unit)) ||
			(v > 0 && total > math.MaxInt64-v) ||
			(v < 0 && total < math.MinInt64-v) {
			return 0, fmt.Errorf("%w: %v overflows a duration", ErrPeriod, p)
		}
		total += v
	}
	return time.Duration(total), nil
}

// String returns the ISO-8601 form of p, such as "P2Y3M25DT1H30M10.5S".
// Zero components are omitted and the fractional seconds use as few digits
// as possible. A period whose components are all zero, once whole seconds
// are carried out of Nanos, is "PT0S".
func (p Period) String() string {
	var buf strings.Builder
	buf.WriteByte('P')
	for _, c := range []struct {
		val  int32
		unit byte
	}{
		{p.Years, 'Y'}, {p.Months, 'M'}, {p.Days, 'D'},
	} {
		if c.val != 0 {
			buf.WriteString(strconv.Itoa(int(c.val)))
			buf.WriteByte(c.unit)
		}
	}

	secs := secondsText(p.Seconds, p.Nanos)
	if p.Hours == 0 && p.Minutes == 0 && secs == "" {
		if buf.Len() == 1 {
			return "PT0S"
		}
		return buf.String()
	}
	buf.WriteByte('T')
	if p.Hours != 0 {
		buf.WriteString(strconv.Itoa(int(p.Hours)))
		buf.WriteByte('H')
	}
	if p.Minutes != 0 {
		buf.WriteString(strconv.Itoa(int(p.Minutes)))
		buf.WriteByte('M')
	}
	buf.WriteString(secs)
	return buf.String()
}

// secondsText returns seconds and nanos as a decimal number of seconds
// followed by 'S', carrying whole seconds out of nanos, or "" if they sum
// to zero.
func secondsText(seconds int32, nanos int64) string {
	const nanosPerSecond = int64(time.Second)
	secs := int64(seconds) + nanos/nanosPerSecond
	nanos %= nanosPerSecond
	switch {
	case secs > 0 && nanos < 0:
		secs--
		nanos += nanosPerSecond
	case secs < 0 && nanos > 0:
		secs++
		nanos -= nanosPerSecond
	}
	switch {
	case nanos == 0 && secs == 0:
		return ""
	case nanos == 0:
		return strconv.FormatInt(secs, 10) + "S"
	}

	var buf strings.Builder
	if secs < 0 || nanos < 0 {
		buf.WriteByte('-')
	}
	buf.WriteString(strconv.FormatInt(max(secs, -secs), 10))
	buf.WriteByte('.')
	frac := strconv.FormatInt(max(nanos, -nanos), 10)
	buf.WriteString(strings.Repeat("0", 9-len(frac)))
	buf.WriteString(strings.TrimRight(frac, "0"))
	buf.WriteByte('S')
	return buf.String()
}

// Scan implements sql.Scanner so Periods can be read from databases
// transparently. Database types that map to string and []byte are
// supported. NULL and empty values scan as the zero period.
func (p *Period) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		*p = Period{}
	case string:
		if src == "" {
			*p = Period{}
			return nil
		}
		parsed, err := Parse(src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScan, err)
		}
		*p = parsed
	case []byte:
		return p.Scan(string(src))
	default:
		return fmt.Errorf("%w: unable to scan type %T into Period", ErrScan, src)
	}
	return nil
}

// Value implements driver.Valuer so that Periods can be written to
// databases transparently as strings.
func (p Period) Value() (driver.Value, error) {
	return p.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return p.MarshalBinary()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(data []byte) error {
	return p.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p Period) MarshalBinary() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Period) UnmarshalBinary(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScan, err)
	}
	*p = parsed
	return nil
}
