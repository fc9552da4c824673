// Package calendar prints and parses calendar dates, times, and periods as
// text. It is a thin entry point to the subpackages:
//
//   - [format] compiles patterns such as "yyyy-MM-dd HH:mm" into Formatters
//     that print values and parse text back into fields, and defines the
//     predefined ISO-8601 and RFC-1123 formats.
//   - [chrono] resolves parsed fields into dates and times.
//   - [period] parses and prints ISO-8601 periods such as "P2Y3M25D".
//   - [types] provides the date, time, offset, and zone values.
//   - [locale] provides the localized names and patterns.
package calendar

import (
	"github.com/cquiroz/threetenbp/calendar/format"
	"github.com/cquiroz/threetenbp/calendar/period"
)

// Pattern compiles pattern into a Formatter configured by opts. See
// [format.Pattern] for the pattern letters.
func Pattern(pattern string, opts ...format.Option) (*format.Formatter, error) {
	//nolint:wrapcheck // Okay to return unwrapped error
	return format.Pattern(pattern, opts...)
}

// MustPattern is like Pattern but panics if pattern is invalid.
func MustPattern(pattern string, opts ...format.Option) *format.Formatter {
	return format.MustPattern(pattern, opts...)
}

// Predefined returns the predefined Formatter named name, such as
// "ISO_LOCAL_DATE" or "RFC_1123_DATE_TIME".
func Predefined(name string) (*format.Formatter, bool) {
	return format.Predefined(name)
}

// ParsePeriod parses an ISO-8601 period such as "P2Y3M25DT10H30M". See
// [period.Parse] for the grammar.
func ParsePeriod(text string) (period.Period, error) {
	//nolint:wrapcheck // Okay to return unwrapped error
	return period.Parse(text)
}

// MustParsePeriod is like ParsePeriod but panics on parse failure.
func MustParsePeriod(text string) period.Period {
	return period.MustParse(text)
}
