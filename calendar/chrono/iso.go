package chrono

import (
	"fmt"
	"time"

	"golang.org/x/exp/maps"

	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/types"
)

//nolint:gochecknoglobals
var (
	// ISO is the ISO-8601 calendar system, the proleptic Gregorian calendar
	// with ISO week numbering.
	ISO Chronology = isoChronology{}

	// ThaiBuddhist is the Thai solar calendar, which numbers years from
	// 543 BCE and otherwise follows the ISO calendar.
	ThaiBuddhist Chronology = thaiBuddhistChronology{}
)

// dateRule combines a set of date fields into a date.
type dateRule struct {
	name   string
	fields []field.Field
	build  func(values field.Values, style ResolverStyle) (*types.Date, error)
}

// applies reports whether all of the rule's fields are present in values.
func (r *dateRule) applies(values field.Values) bool {
	for _, f := range r.fields {
		if _, ok := values[f]; !ok {
			return false
		}
	}
	return true
}

//nolint:gochecknoglobals
var isoDateRules = []*dateRule{
	{
		name:   "year-month-day",
		fields: []field.Field{field.Year, field.MonthOfYear, field.DayOfMonth},
		build:  yearMonthDay,
	},
	{
		name:   "year-day-of-year",
		fields: []field.Field{field.Year, field.DayOfYear},
		build:  yearDayOfYear,
	},
	{
		name:   "week-based-year-week-day",
		fields: []field.Field{field.WeekBasedYear, field.WeekOfWeekBasedYear, field.DayOfWeek},
		build:  weekDate,
	},
}

type isoChronology struct{}

func (isoChronology) ID() string { return "ISO" }

// Localize returns acc, which already reports ISO fields.
func (isoChronology) Localize(acc field.Accessor) field.Accessor { return acc }

// ResolveDate applies each ISO date rule whose fields are present in values.
// Every applicable rule must derive the same date.
func (isoChronology) ResolveDate(values field.Values, style ResolverStyle) (*types.Date, error) {
	if err := resolveEra(values, style); err != nil {
		return nil, err
	}
	if err := resolveQuarter(values, style); err != nil {
		return nil, err
	}

	var (
		date *types.Date
		from string
	)
	for _, rule := range isoDateRules {
		if !rule.applies(values) {
			continue
		}
		if err := check(values, rule.name, style, rule.fields...); err != nil {
			return nil, err
		}
		// Years beyond the range cannot be represented, even leniently.
		if err := check(values, rule.name, Strict, field.Year, field.WeekBasedYear); err != nil {
			return nil, err
		}
		d, err := rule.build(values, style)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrResolve, rule.name, err)
		}
		if date != nil && date.Compare(d) != 0 {
			return nil, fmt.Errorf(
				"%w: %s derived %v but %s derived %v",
				ErrResolve, from, date, rule.name, d,
			)
		}
		date, from = d, rule.name
	}
	return date, nil
}

// resolveEra merges YearOfEra and Era into Year. Without an Era, the current
// era is assumed unless Year places the date before it.
func resolveEra(values field.Values, style ResolverStyle) error {
	const rule = "year-of-era"
	yoe, ok := values[field.YearOfEra]
	if !ok {
		return nil
	}
	if err := check(values, rule, style, field.YearOfEra, field.Era); err != nil {
		return err
	}
	era, ok := values[field.Era]
	if !ok {
		era = 1
		if y, ok := values[field.Year]; ok && y < 1 {
			era = 0
		}
	}
	year := yoe
	if era == 0 {
		year = 1 - yoe
	}
	return put(values, rule, field.Year, year)
}

// resolveQuarter merges QuarterOfYear and MonthOfQuarter into MonthOfYear.
func resolveQuarter(values field.Values, style ResolverStyle) error {
	const rule = "quarter-of-year"
	q, ok := values[field.QuarterOfYear]
	if !ok {
		return nil
	}
	moq, ok := values[field.MonthOfQuarter]
	if !ok {
		return nil
	}
	if err := check(values, rule, style, field.QuarterOfYear, field.MonthOfQuarter); err != nil {
		return err
	}
	return put(values, rule, field.MonthOfYear, (q-1)*3+moq)
}

func yearMonthDay(values field.Values, style ResolverStyle) (*types.Date, error) {
	year := int(values[field.Year])
	month := time.Month(values[field.MonthOfYear])
	day := int(values[field.DayOfMonth])
	if style == Lenient {
		return types.NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)), nil
	}
	return types.DateOf(year, month, day)
}

func yearDayOfYear(values field.Values, style ResolverStyle) (*types.Date, error) {
	year := int(values[field.Year])
	doy := int(values[field.DayOfYear])
	t := time.Date(year, time.January, doy, 0, 0, 0, 0, time.UTC)
	if style != Lenient && t.Year() != year {
		return nil, fmt.Errorf("day %d does not exist in year %d", doy, year)
	}
	return types.NewDate(t), nil
}

func weekDate(values field.Values, style ResolverStyle) (*types.Date, error) {
	wby := int(values[field.WeekBasedYear])
	week := int(values[field.WeekOfWeekBasedYear])
	dow := int(values[field.DayOfWeek])

	// Week one is the week containing January 4th.
	jan4 := time.Date(wby, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, 1-int(types.FromWeekday(jan4.Weekday())))
	t := monday.AddDate(0, 0, (week-1)*7+dow-1)
	if style != Lenient {
		if y, w := t.ISOWeek(); y != wby || w != week {
			return nil, fmt.Errorf("week %d does not exist in week-based-year %d", week, wby)
		}
	}
	return types.NewDate(t), nil
}

const thaiYearOffset = 543

type thaiBuddhistChronology struct{}

func (thaiBuddhistChronology) ID() string { return "ThaiBuddhist" }

// ResolveDate converts the Thai years in values to ISO years and applies
// the ISO rules.
func (thaiBuddhistChronology) ResolveDate(values field.Values, style ResolverStyle) (*types.Date, error) {
	if err := resolveEra(values, style); err != nil {
		return nil, err
	}
	iso := maps.Clone(values)
	delete(iso, field.Era)
	delete(iso, field.YearOfEra)
	for _, f := range []field.Field{field.Year, field.WeekBasedYear} {
		if y, ok := iso[f]; ok {
			iso[f] = y - thaiYearOffset
		}
	}
	date, err := ISO.ResolveDate(iso, style)
	if err != nil {
		return nil, err
	}

	// Keep the fields the ISO rules derived, such as the month of a quarter.
	for f, v := range iso {
		switch f {
		case field.Era, field.YearOfEra, field.Year, field.WeekBasedYear:
			continue
		}
		if _, ok := values[f]; !ok {
			values[f] = v
		}
	}
	return date, nil
}

// Localize returns an Accessor reporting Thai years for acc.
func (thaiBuddhistChronology) Localize(acc field.Accessor) field.Accessor {
	return thaiAccessor{acc}
}

type thaiAccessor struct {
	field.Accessor
}

func (a thaiAccessor) Get(f field.Field) (int64, bool) {
	switch f {
	case field.Year, field.WeekBasedYear:
		if v, ok := a.Accessor.Get(f); ok {
			return v + thaiYearOffset, true
		}
		return 0, false
	case field.Era, field.YearOfEra:
		y, ok := a.Accessor.Get(field.Year)
		if !ok {
			return 0, false
		}
		y += thaiYearOffset
		if f == field.Era {
			if y >= 1 {
				return 1, true
			}
			return 0, true
		}
		if y >= 1 {
			return y, true
		}
		return 1 - y, true
	}
	return a.Accessor.Get(f)
}

func (a thaiAccessor) ZoneID() (string, bool) {
	if z, ok := a.Accessor.(field.ZoneAccessor); ok {
		return z.ZoneID()
	}
	return "", false
}
