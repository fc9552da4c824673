package chrono

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/types"
)

func TestFieldsString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	fs := &Fields{Values: field.Values{
		field.Year:          2008,
		field.MonthOfYear:   6,
		field.OffsetSeconds: 16 * 3600,
	}, Zone: "+18:00"}
	a.Equal(
		"{ISO.MonthOfYear=6, ISO.Year=2008, ISO.TimeZone=+18:00, ISO.ZoneOffset=+16:00}",
		fs.String(),
	)
	a.Equal("{}", (&Fields{}).String())
	a.Equal("{ISO.TimeZone=Europe/Paris}", (&Fields{Zone: "Europe/Paris"}).String())

	v, ok := fs.Get(field.Year)
	a.True(ok)
	a.Equal(int64(2008), v)
	id, ok := fs.ZoneID()
	a.True(ok)
	a.Equal("+18:00", id)
	_, ok = (&Fields{}).ZoneID()
	a.False(ok)
}

func TestResolveDates(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		values field.Values
		style  ResolverStyle
		exp    string
	}{
		{
			name:   "year_month_day",
			values: field.Values{field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30},
			exp:    "2008-06-30",
		},
		{
			name:   "year_day_of_year",
			values: field.Values{field.Year: 2008, field.DayOfYear: 182},
			exp:    "2008-06-30",
		},
		{
			name:   "leap_day_of_year",
			values: field.Values{field.Year: 2008, field.DayOfYear: 366},
			exp:    "2008-12-31",
		},
		{
			name: "week_date",
			values: field.Values{
				field.WeekBasedYear: 2009, field.WeekOfWeekBasedYear: 1, field.DayOfWeek: 1,
			},
			exp: "2008-12-29",
		},
		{
			name: "week_53",
			values: field.Values{
				field.WeekBasedYear: 2020, field.WeekOfWeekBasedYear: 53, field.DayOfWeek: 7,
			},
			exp: "2021-01-03",
		},
		{
			name: "quarter_month",
			values: field.Values{
				field.Year: 2008, field.QuarterOfYear: 2, field.MonthOfQuarter: 3, field.DayOfMonth: 30,
			},
			exp: "2008-06-30",
		},
		{
			name: "year_of_era",
			values: field.Values{
				field.YearOfEra: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30,
			},
			exp: "2008-06-30",
		},
		{
			name: "before_common_era",
			values: field.Values{
				field.Era: 0, field.YearOfEra: 1, field.MonthOfYear: 1, field.DayOfMonth: 1,
			},
			exp: "0000-01-01",
		},
		{
			name: "agreeing_rules",
			values: field.Values{
				field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30,
				field.DayOfYear: 182, field.DayOfWeek: 1,
			},
			exp: "2008-06-30",
		},
		{
			name:   "lenient_month_overflow",
			values: field.Values{field.Year: 2008, field.MonthOfYear: 14, field.DayOfMonth: 35},
			style:  Lenient,
			exp:    "2009-03-07",
		},
		{
			name:   "lenient_day_of_year",
			values: field.Values{field.Year: 2007, field.DayOfYear: 366},
			style:  Lenient,
			exp:    "2008-01-01",
		},
		{
			name:   "no_date",
			values: field.Values{field.Year: 2008, field.MonthOfYear: 6},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := Resolve(&Fields{Values: tc.values}, tc.style)
			require.NoError(t, err)
			if tc.exp == "" {
				assert.Nil(t, res.Date)
				return
			}
			require.NotNil(t, res.Date)
			assert.Equal(t, tc.exp, res.Date.String())
		})
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		values field.Values
		err    string
	}{
		{
			name:   "invalid_day",
			values: field.Values{field.Year: 2007, field.MonthOfYear: 2, field.DayOfMonth: 29},
			err:    "resolve: year-month-day: type: invalid date: year 2007, month 2, day 29",
		},
		{
			name:   "month_range",
			values: field.Values{field.Year: 2007, field.MonthOfYear: 13, field.DayOfMonth: 1},
			err:    "resolve: year-month-day: range: invalid value for MonthOfYear (valid values 1 - 12): 13",
		},
		{
			name:   "day_of_year",
			values: field.Values{field.Year: 2007, field.DayOfYear: 366},
			err:    "resolve: year-day-of-year: day 366 does not exist in year 2007",
		},
		{
			name: "week_53",
			values: field.Values{
				field.WeekBasedYear: 2021, field.WeekOfWeekBasedYear: 53, field.DayOfWeek: 1,
			},
			err: "resolve: week-based-year-week-day: week 53 does not exist in week-based-year 2021",
		},
		{
			name: "contradicting_rules",
			values: field.Values{
				field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30, field.DayOfYear: 183,
			},
			err: "resolve: year-month-day derived 2008-06-30 but year-day-of-year derived 2008-07-01",
		},
		{
			name: "quarter_conflict",
			values: field.Values{
				field.Year: 2008, field.QuarterOfYear: 1, field.MonthOfQuarter: 3,
				field.MonthOfYear: 6, field.DayOfMonth: 30,
			},
			err: "resolve: quarter-of-year derived MonthOfYear 3, which conflicts with 6",
		},
		{
			name: "era_conflict",
			values: field.Values{
				field.Era: 1, field.YearOfEra: 2008, field.Year: 2007,
			},
			err: "resolve: year-of-era derived Year 2008, which conflicts with 2007",
		},
		{
			name: "day_of_week_cross_check",
			values: field.Values{
				field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30, field.DayOfWeek: 2,
			},
			err: "resolve: parsed DayOfWeek 2 conflicts with resolved value 1",
		},
		{
			name: "clock_hour_conflict",
			values: field.Values{
				field.ClockHourOfDay: 13, field.HourOfDay: 14,
			},
			err: "resolve: clock-hour-of-day derived HourOfDay 13, which conflicts with 14",
		},
		{
			name: "am_pm_cross_check",
			values: field.Values{
				field.HourOfDay: 14, field.AmPmOfDay: 0,
			},
			err: "resolve: parsed AmPmOfDay 0 conflicts with resolved value 1",
		},
		{
			name:   "minute_range",
			values: field.Values{field.HourOfDay: 10, field.MinuteOfHour: 60},
			err:    "resolve: hour-minute-second: type: range: invalid value for MinuteOfHour (valid values 0 - 59): 60",
		},
		{
			name:   "offset_range",
			values: field.Values{field.OffsetSeconds: 20 * 3600},
			err:    "resolve: offset: type: range: invalid value for ZoneOffset (valid values -64800 - 64800): 72000",
		},
		{
			name:   "clock_hour_range",
			values: field.Values{field.ClockHourOfDay: 0},
			err:    "resolve: clock-hour-of-day: range: invalid value for ClockHourOfDay (valid values 1 - 24): 0",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Resolve(&Fields{Values: tc.values}, Strict)
			require.ErrorIs(t, err, ErrResolve)
			require.EqualError(t, err, tc.err)
		})
	}
}

func TestResolveTime(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		values field.Values
		exp    string
	}{
		{"hour_only", field.Values{field.HourOfDay: 10}, "10:00"},
		{"hour_minute", field.Values{field.HourOfDay: 10, field.MinuteOfHour: 15}, "10:15"},
		{
			"full",
			field.Values{
				field.HourOfDay: 10, field.MinuteOfHour: 15, field.SecondOfMinute: 30,
				field.NanoOfSecond: 500_000_000,
			},
			"10:15:30.500",
		},
		{"clock_hour_24", field.Values{field.ClockHourOfDay: 24, field.MinuteOfHour: 5}, "00:05"},
		{"pm", field.Values{field.AmPmOfDay: 1, field.ClockHourOfAmPm: 12, field.MinuteOfHour: 1}, "12:01"},
		{"am_twelve", field.Values{field.AmPmOfDay: 0, field.ClockHourOfAmPm: 12}, "00:00"},
		{"pm_hour", field.Values{field.AmPmOfDay: 1, field.HourOfAmPm: 3}, "15:00"},
		{"milli_of_day", field.Values{field.MilliOfDay: 49_530_123}, "13:45:30.123"},
		{"nano_of_day", field.Values{field.NanoOfDay: 3_600_000_000_001}, "01:00:00.000000001"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := Resolve(&Fields{Values: tc.values}, Strict)
			require.NoError(t, err)
			require.NotNil(t, res.Time)
			assert.Equal(t, tc.exp, res.Time.String())
		})
	}
}

func TestResolveDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	values := field.Values{field.YearOfEra: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30}
	orig := field.Values{field.YearOfEra: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30}
	res, err := Resolve(&Fields{Values: values}, Strict)
	require.NoError(t, err)
	if diff := cmp.Diff(orig, values); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
	exp := field.Values{
		field.YearOfEra: 2008, field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30,
	}
	if diff := cmp.Diff(exp, res.Fields); diff != "" {
		t.Errorf("merged fields (-want +got):\n%s", diff)
	}
}

func TestResolvedValues(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	res, err := Resolve(&Fields{
		Values: field.Values{
			field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30,
			field.HourOfDay: 10, field.MinuteOfHour: 15,
			field.OffsetSeconds: 3600,
		},
		Zone: "Europe/Paris",
	}, Strict)
	r.NoError(err)
	a.Equal(ISO, res.Chronology)

	d, err := res.LocalDate()
	r.NoError(err)
	a.Equal("2008-06-30", d.String())
	tm, err := res.LocalTime()
	r.NoError(err)
	a.Equal("10:15", tm.String())
	dt, err := res.LocalDateTime()
	r.NoError(err)
	a.Equal("2008-06-30T10:15", dt.String())
	odt, err := res.OffsetDateTime()
	r.NoError(err)
	a.Equal("2008-06-30T10:15+01:00", odt.String())
	zdt, err := res.ZonedDateTime()
	r.NoError(err)
	a.Equal("2008-06-30T11:15+02:00[Europe/Paris]", zdt.String())
	ym, err := res.YearMonth()
	r.NoError(err)
	a.Equal(types.YearMonth{Year: 2008, Month: time.June}, ym)

	v, ok := res.Get(field.DayOfWeek)
	a.True(ok)
	a.Equal(int64(1), v)
	v, ok = res.Get(field.ClockHourOfAmPm)
	a.True(ok)
	a.Equal(int64(10), v)
	v, ok = res.Get(field.OffsetSeconds)
	a.True(ok)
	a.Equal(int64(3600), v)
	id, ok := res.ZoneID()
	a.True(ok)
	a.Equal("Europe/Paris", id)
}

func TestResolvedZoneWithoutOffset(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	res, err := Resolve(&Fields{
		Values: field.Values{
			field.Year: 2008, field.MonthOfYear: 1, field.DayOfMonth: 15, field.HourOfDay: 9,
		},
		Zone: "Europe/Paris",
	}, Strict)
	r.NoError(err)
	zdt, err := res.ZonedDateTime()
	r.NoError(err)
	a.Equal("2008-01-15T09:00+01:00[Europe/Paris]", zdt.String())

	_, err = res.OffsetDateTime()
	r.ErrorIs(err, ErrIncomplete)

	res.Zone = "Nowhere/Special"
	_, err = res.ZonedDateTime()
	r.ErrorIs(err, ErrResolve)

	res.Zone = ""
	_, err = res.ZonedDateTime()
	r.ErrorIs(err, ErrIncomplete)
	r.EqualError(err, "resolve: incomplete: unable to obtain a zone from "+
		"{ISO.DayOfMonth=15, ISO.HourOfDay=9, ISO.MonthOfYear=1, ISO.Year=2008}")
}

func TestResolvedIncomplete(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	res, err := Resolve(&Fields{Values: field.Values{field.Year: 2008}}, Strict)
	r.NoError(err)
	_, err = res.LocalDate()
	r.ErrorIs(err, ErrIncomplete)
	r.ErrorIs(err, ErrResolve)
	r.EqualError(err, "resolve: incomplete: unable to obtain a date from {ISO.Year=2008}")
	_, err = res.LocalTime()
	r.ErrorIs(err, ErrIncomplete)
	_, err = res.LocalDateTime()
	r.ErrorIs(err, ErrIncomplete)
	_, err = res.ZonedDateTime()
	r.ErrorIs(err, ErrIncomplete)
	_, err = res.YearMonth()
	r.ErrorIs(err, ErrIncomplete)

	res, err = Resolve(&Fields{Values: field.Values{field.Year: 2008, field.MonthOfYear: 2}}, Strict)
	r.NoError(err)
	ym, err := res.YearMonth()
	r.NoError(err)
	a.Equal(types.YearMonth{Year: 2008, Month: time.February}, ym)

	res, err = Resolve(&Fields{}, Strict)
	r.NoError(err)
	a.Empty(res.Fields)
	_, ok := res.Get(field.Year)
	a.False(ok)
}

func TestThaiBuddhist(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	res, err := Resolve(&Fields{
		Values:     field.Values{field.Year: 2551, field.MonthOfYear: 6, field.DayOfMonth: 30},
		Chronology: ThaiBuddhist,
	}, Strict)
	r.NoError(err)
	a.Equal("2008-06-30", res.Date.String())
	v, ok := res.Get(field.Year)
	a.True(ok)
	a.Equal(int64(2551), v)
	ym, err := res.YearMonth()
	r.NoError(err)
	a.Equal(types.YearMonth{Year: 2008, Month: time.June}, ym)

	res, err = Resolve(&Fields{
		Values:     field.Values{field.YearOfEra: 2551, field.Era: 1, field.DayOfYear: 182},
		Chronology: ThaiBuddhist,
	}, Strict)
	r.NoError(err)
	r.NotNil(res.Date)
	a.Equal("2008-06-30", res.Date.String())

	// A month derived from the quarter is kept without a day.
	res, err = Resolve(&Fields{
		Values: field.Values{
			field.Year: 2551, field.QuarterOfYear: 2, field.MonthOfQuarter: 3,
		},
		Chronology: ThaiBuddhist,
	}, Strict)
	r.NoError(err)
	a.Nil(res.Date)
	a.Equal(int64(6), res.Fields[field.MonthOfYear])
	a.Equal(int64(2551), res.Fields[field.Year])
	ym, err = res.YearMonth()
	r.NoError(err)
	a.Equal(types.YearMonth{Year: 2008, Month: time.June}, ym)

	date := types.NewDate(time.Date(2008, 6, 30, 0, 0, 0, 0, time.UTC))
	thai := ThaiBuddhist.Localize(date)
	for f, exp := range map[field.Field]int64{
		field.Year:          2551,
		field.YearOfEra:     2551,
		field.Era:           1,
		field.WeekBasedYear: 2551,
		field.DayOfMonth:    30,
	} {
		got, ok := thai.Get(f)
		a.True(ok, f.String())
		a.Equal(exp, got, f.String())
	}
	_, ok = thai.(field.ZoneAccessor).ZoneID()
	a.False(ok)

	early := ThaiBuddhist.Localize(types.NewDate(time.Date(-600, 1, 1, 0, 0, 0, 0, time.UTC)))
	era, _ := early.Get(field.Era)
	a.Equal(int64(0), era)
	yoe, _ := early.Get(field.YearOfEra)
	a.Equal(int64(58), yoe)

	_, ok = ThaiBuddhist.Localize(types.NewTime(time.Now())).Get(field.Year)
	a.False(ok)
	_, ok = ThaiBuddhist.Localize(types.NewTime(time.Now())).Get(field.Era)
	a.False(ok)
}

func TestOf(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	c, err := Of("ISO")
	r.NoError(err)
	a.Equal(ISO, c)
	c, err = Of("ThaiBuddhist")
	r.NoError(err)
	a.Equal(ThaiBuddhist, c)
	_, err = Of("Julian")
	r.ErrorIs(err, ErrChronology)
	r.EqualError(err, `chronology: unknown chronology "Julian"`)

	a.Equal("Strict", Strict.String())
	a.Equal("Lenient", Lenient.String())
}
