package format

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/cquiroz/threetenbp/calendar/chrono"
	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/locale"
)

//nolint:gochecknoglobals
var (
	// ISOLocalDate formats a date such as "2011-12-03". Years outside
	// 0000 to 9999 carry a sign.
	ISOLocalDate = NewBuilder().
		AppendValueRange(field.Year, 4, 10, SignExceedsPad).
		AppendLiteral("-").
		AppendValueWidth(field.MonthOfYear, 2).
		AppendLiteral("-").
		AppendValueWidth(field.DayOfMonth, 2).
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISOOffsetDate formats a date with an offset, such as
	// "2011-12-03+01:00".
	ISOOffsetDate = NewBuilder().
		ParseCaseInsensitive().
		Append(ISOLocalDate).
		AppendOffsetID().
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISODate formats a date with an optional offset, such as "2011-12-03"
	// or "2011-12-03+01:00".
	ISODate = NewBuilder().
		ParseCaseInsensitive().
		Append(ISOLocalDate).
		OptionalStart().
		AppendOffsetID().
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISOLocalTime formats a time such as "10:15" or "10:15:30.123". The
	// seconds and fraction are optional when parsing.
	ISOLocalTime = NewBuilder().
		AppendValueWidth(field.HourOfDay, 2).
		AppendLiteral(":").
		AppendValueWidth(field.MinuteOfHour, 2).
		OptionalStart().
		AppendLiteral(":").
		AppendValueWidth(field.SecondOfMinute, 2).
		OptionalStart().
		AppendFraction(field.NanoOfSecond, 0, 9, true).
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISOOffsetTime formats a time with an offset, such as
	// "10:15:30+01:00".
	ISOOffsetTime = NewBuilder().
		ParseCaseInsensitive().
		Append(ISOLocalTime).
		AppendOffsetID().
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISOTime formats a time with an optional offset.
	ISOTime = NewBuilder().
		ParseCaseInsensitive().
		Append(ISOLocalTime).
		OptionalStart().
		AppendOffsetID().
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISOLocalDateTime formats a date and time such as
	// "2011-12-03T10:15:30".
	ISOLocalDateTime = NewBuilder().
		ParseCaseInsensitive().
		Append(ISOLocalDate).
		AppendLiteral("T").
		Append(ISOLocalTime).
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISOOffsetDateTime formats a date and time with an offset, such as
	// "2011-12-03T10:15:30+01:00".
	ISOOffsetDateTime = NewBuilder().
		ParseCaseInsensitive().
		Append(ISOLocalDateTime).
		AppendOffsetID().
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISOZonedDateTime formats a date and time with an offset and an
	// optional zone region, such as
	// "2011-12-03T10:15:30+01:00[Europe/Paris]".
	ISOZonedDateTime = NewBuilder().
		Append(ISOOffsetDateTime).
		OptionalStart().
		AppendLiteral("[").
		ParseCaseSensitive().
		AppendZoneRegionID().
		AppendLiteral("]").
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISODateTime formats a date and time with an optional offset and zone
	// region.
	ISODateTime = NewBuilder().
		Append(ISOLocalDateTime).
		OptionalStart().
		AppendOffsetID().
		OptionalStart().
		AppendLiteral("[").
		ParseCaseSensitive().
		AppendZoneRegionID().
		AppendLiteral("]").
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISOOrdinalDate formats a year and day of year, such as "2012-337".
	ISOOrdinalDate = NewBuilder().
		ParseCaseInsensitive().
		AppendValueRange(field.Year, 4, 10, SignExceedsPad).
		AppendLiteral("-").
		AppendValueWidth(field.DayOfYear, 3).
		OptionalStart().
		AppendOffsetID().
		MustFormatter(WithResolverStyle(chrono.Strict))

	// ISOWeekDate formats a week-based date, such as "2012-W48-6".
	ISOWeekDate = NewBuilder().
		ParseCaseInsensitive().
		AppendValueRange(field.WeekBasedYear, 4, 10, SignExceedsPad).
		AppendLiteral("-W").
		AppendValueWidth(field.WeekOfWeekBasedYear, 2).
		AppendLiteral("-").
		AppendValueWidth(field.DayOfWeek, 1).
		OptionalStart().
		AppendOffsetID().
		MustFormatter(WithResolverStyle(chrono.Strict))

	// BasicISODate formats a date without separators, such as "20111203",
	// with an optional offset such as "+0100".
	BasicISODate = NewBuilder().
		ParseCaseInsensitive().
		AppendValueWidth(field.Year, 4).
		AppendValueWidth(field.MonthOfYear, 2).
		AppendValueWidth(field.DayOfMonth, 2).
		OptionalStart().
		AppendOffset("+HHMMss", "Z").
		MustFormatter(WithResolverStyle(chrono.Strict))

	// RFC1123DateTime formats a date and time such as
	// "Tue, 3 Jun 2008 11:05:30 GMT". The day of week and seconds are
	// optional when parsing.
	RFC1123DateTime = NewBuilder().
		ParseCaseInsensitive().
		ParseLenient().
		OptionalStart().
		AppendTextLookup(field.DayOfWeek, rfcDays).
		AppendLiteral(", ").
		OptionalEnd().
		AppendValueRange(field.DayOfMonth, 1, 2, SignNotNegative).
		AppendLiteral(" ").
		AppendTextLookup(field.MonthOfYear, rfcMonths).
		AppendLiteral(" ").
		AppendValueWidth(field.Year, 4).
		AppendLiteral(" ").
		AppendValueWidth(field.HourOfDay, 2).
		AppendLiteral(":").
		AppendValueWidth(field.MinuteOfHour, 2).
		OptionalStart().
		AppendLiteral(":").
		AppendValueWidth(field.SecondOfMinute, 2).
		OptionalEnd().
		AppendLiteral(" ").
		AppendOffset("+HHMM", "GMT").
		MustFormatter(WithResolverStyle(chrono.Strict))
)

//nolint:gochecknoglobals
var (
	rfcDays = map[int64]string{
		1: "Mon", 2: "Tue", 3: "Wed", 4: "Thu", 5: "Fri", 6: "Sat", 7: "Sun",
	}
	rfcMonths = map[int64]string{
		1: "Jan", 2: "Feb", 3: "Mar", 4: "Apr", 5: "May", 6: "Jun",
		7: "Jul", 8: "Aug", 9: "Sep", 10: "Oct", 11: "Nov", 12: "Dec",
	}

	predefined = map[string]*Formatter{
		"ISO_LOCAL_DATE":       ISOLocalDate,
		"ISO_OFFSET_DATE":      ISOOffsetDate,
		"ISO_DATE":             ISODate,
		"ISO_LOCAL_TIME":       ISOLocalTime,
		"ISO_OFFSET_TIME":      ISOOffsetTime,
		"ISO_TIME":             ISOTime,
		"ISO_LOCAL_DATE_TIME":  ISOLocalDateTime,
		"ISO_OFFSET_DATE_TIME": ISOOffsetDateTime,
		"ISO_ZONED_DATE_TIME":  ISOZonedDateTime,
		"ISO_DATE_TIME":        ISODateTime,
		"ISO_ORDINAL_DATE":     ISOOrdinalDate,
		"ISO_WEEK_DATE":        ISOWeekDate,
		"BASIC_ISO_DATE":       BasicISODate,
		"RFC_1123_DATE_TIME":   RFC1123DateTime,
	}
)

// Predefined returns the predefined formatter with the given name, such as
// "ISO_LOCAL_DATE" or "RFC_1123_DATE_TIME".
func Predefined(name string) (*Formatter, bool) {
	f, ok := predefined[name]
	return f, ok
}

// PredefinedNames returns the names accepted by Predefined, sorted.
func PredefinedNames() []string {
	names := maps.Keys(predefined)
	slices.Sort(names)
	return names
}

// OfLocalizedDate returns a Formatter for the locale's date pattern in
// style.
func OfLocalizedDate(style locale.FormatStyle, opts ...Option) *Formatter {
	return NewBuilder().AppendLocalized(&style, nil).MustFormatter(opts...)
}

// OfLocalizedTime returns a Formatter for the locale's time pattern in
// style.
func OfLocalizedTime(style locale.FormatStyle, opts ...Option) *Formatter {
	return NewBuilder().AppendLocalized(nil, &style).MustFormatter(opts...)
}

// OfLocalizedDateTime returns a Formatter for the locale's date and time
// patterns.
func OfLocalizedDateTime(date, time locale.FormatStyle, opts ...Option) *Formatter {
	return NewBuilder().AppendLocalized(&date, &time).MustFormatter(opts...)
}
