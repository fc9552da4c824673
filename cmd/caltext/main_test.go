package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cquiroz/threetenbp/calendar/format"
	"github.com/cquiroz/threetenbp/calendar/period"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		exp  string
	}{
		{
			name: "format_pattern",
			args: []string{"format", "-p", "dd MMM yyyy", "2008-06-30"},
			exp:  "30 Jun 2008\n",
		},
		{
			name: "format_locale",
			args: []string{"format", "-p", "EEEE d MMMM", "--locale", "fr", "2008-06-30"},
			exp:  "lundi 30 juin\n",
		},
		{
			name: "format_predefined",
			args: []string{"format", "-p", "ISO_WEEK_DATE", "2008-06-30"},
			exp:  "2008-W27-1\n",
		},
		{
			name: "format_default_pattern",
			args: []string{"format", "2008-06-30T11:05+01:00"},
			exp:  "2008-06-30T11:05:00+01:00\n",
		},
		{
			name: "format_time",
			args: []string{"format", "-p", "h:mm a", "23:05"},
			exp:  "11:05 PM\n",
		},
		{
			name: "format_zone",
			args: []string{"format", "-p", "yyyy-MM-dd HH:mm xxx", "--zone", "Asia/Tokyo", "2008-06-30T10:15:00Z"},
			exp:  "2008-06-30 19:15 +09:00\n",
		},
		{
			name: "parse_pattern",
			args: []string{"parse", "-p", "yyyy-MM-dd HH:mm", "2008-06-30 11:05"},
			exp: "fields: {ISO.DayOfMonth=30, ISO.HourOfDay=11, ISO.MinuteOfHour=5, " +
				"ISO.MonthOfYear=6, ISO.YearOfEra=2008}\n" +
				"date: 2008-06-30\n" +
				"time: 11:05\n",
		},
		{
			name: "parse_zoned",
			args: []string{"parse", "2008-06-30T11:05:30+01:00[Europe/Paris]"},
			exp: "fields: {ISO.DayOfMonth=30, ISO.HourOfDay=11, ISO.MinuteOfHour=5, " +
				"ISO.MonthOfYear=6, ISO.SecondOfMinute=30, ISO.Year=2008, " +
				"ISO.TimeZone=Europe/Paris, ISO.ZoneOffset=+01:00}\n" +
				"date: 2008-06-30\n" +
				"time: 11:05:30\n" +
				"offset: +01:00\n" +
				"zone: Europe/Paris\n" +
				"zoned: 2008-06-30T12:05:30+02:00[Europe/Paris]\n",
		},
		{
			name: "parse_zone_flag",
			args: []string{"parse", "-p", "ISO_LOCAL_DATE_TIME", "--zone", "Asia/Tokyo", "2008-06-30T10:15"},
			exp: "fields: {ISO.DayOfMonth=30, ISO.HourOfDay=10, ISO.MinuteOfHour=15, " +
				"ISO.MonthOfYear=6, ISO.Year=2008, ISO.TimeZone=Asia/Tokyo}\n" +
				"date: 2008-06-30\n" +
				"time: 10:15\n" +
				"zone: Asia/Tokyo\n" +
				"zoned: 2008-06-30T10:15+09:00[Asia/Tokyo]\n",
		},
		{
			name: "parse_lenient",
			args: []string{"parse", "-p", "yyyy-M-d", "--lenient", "2008-02-30"},
			exp: "fields: {ISO.DayOfMonth=30, ISO.MonthOfYear=2, ISO.YearOfEra=2008}\n" +
				"date: 2008-03-01\n",
		},
		{
			name: "parse_lenient_predefined",
			args: []string{"parse", "-p", "ISO_LOCAL_DATE", "--lenient", "2008-6-30"},
			exp: "fields: {ISO.DayOfMonth=30, ISO.MonthOfYear=6, ISO.Year=2008}\n" +
				"date: 2008-06-30\n",
		},
		{
			name: "period",
			args: []string{"period", "P1DT1H", "pt1,5s", "PT0S"},
			exp:  "P1DT1H\nPT1.5S\t1.5s\nPT0S\t0s\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, errOut, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, out)
			assert.Empty(t, errOut)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		err  error
		msg  string
	}{
		{
			name: "bad_pattern",
			args: []string{"format", "-p", "yyyy{", "2008-06-30"},
			err:  format.ErrPattern,
			msg:  `pattern: pattern includes reserved character '{' at index 4: "yyyy{"`,
		},
		{
			name: "bad_value",
			args: []string{"format", "-p", "yyyy", "yesterday"},
			err:  format.ErrParse,
			msg:  `value "yesterday" is not an ISO date, time, or date-time: parse: text "yesterday" could not be parsed at index 0`,
		},
		{
			name: "unsupported_field",
			args: []string{"format", "-p", "HH:mm", "2008-06-30"},
			err:  format.ErrUnsupportedField,
			msg:  "print: unsupported field: HourOfDay",
		},
		{
			name: "parse_error",
			args: []string{"parse", "-p", "ISO_LOCAL_DATE", "2008-6-30"},
			err:  format.ErrParse,
			msg:  `parse: text "2008-6-30" could not be parsed at index 5`,
		},
		{
			name: "period_error",
			args: []string{"period", "P1Y2Y"},
			err:  period.ErrPeriod,
			msg:  `period: text "P1Y2Y" could not be parsed at index 4: unit 'Y' out of order`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, errOut, err := run(t, tc.args...)
			require.ErrorIs(t, err, tc.err)
			assert.EqualError(t, err, tc.msg)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "Error: "+tc.msg)
		})
	}

	t.Run("bad_locale", func(t *testing.T) {
		t.Parallel()
		_, _, err := run(t, "format", "--locale", "!!", "2008-06-30")
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), `invalid locale "!!": `))
	})
}

func TestVerbose(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	out, errOut, err := run(t, "--verbose", "format", "-p", "yyyy", "2008-06-30")
	require.NoError(t, err)
	a.Equal("2008\n", out)
	a.Contains(errOut, `level=DEBUG msg="compiled pattern" pattern=yyyy`)
	a.NotContains(errOut, "time=")

	_, errOut, err = run(t, "format", "-p", "yyyy", "2008-06-30")
	require.NoError(t, err)
	a.Empty(errOut)

	_, errOut, err = run(t, "-v", "parse", "-p", "ISO_LOCAL_DATE", "2008-06-30")
	require.NoError(t, err)
	a.Contains(errOut, `level=DEBUG msg="predefined format" pattern=ISO_LOCAL_DATE`)
}

func TestPredefinedList(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "predefined")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(format.PredefinedNames()))
	assert.Contains(t, out, "ISO_LOCAL_DATE\tValue(Year,4,10,ExceedsPad)'-'Value(MonthOfYear,2)'-'Value(DayOfMonth,2)\n")
}
