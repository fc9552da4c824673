package period

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		text string
		exp  Period
	}{
		{"Pt0S", Period{}},
		{"pT0S", Period{}},
		{"PT0S", Period{}},
		{"Pt0s", Period{}},
		{"pt0s", Period{}},
		{"P0Y0M0DT0H0M0.0S", Period{}},

		{"P1Y", Period{Years: 1}},
		{"P100Y", Period{Years: 100}},
		{"P-25Y", Period{Years: -25}},
		{"P2147483647Y", Period{Years: math.MaxInt32}},
		{"P-2147483648Y", Period{Years: math.MinInt32}},

		{"P1M", Period{Months: 1}},
		{"P0M", Period{}},
		{"P-1M", Period{Months: -1}},
		{"P2147483647M", Period{Months: math.MaxInt32}},
		{"P-2147483648M", Period{Months: math.MinInt32}},

		{"P1D", Period{Days: 1}},
		{"P0D", Period{}},
		{"P-1D", Period{Days: -1}},
		{"P2147483647D", Period{Days: math.MaxInt32}},
		{"P-2147483648D", Period{Days: math.MinInt32}},

		{"P2Y3M25D", Period{Years: 2, Months: 3, Days: 25}},

		{"PT1H", Period{Hours: 1}},
		{"PT-1H", Period{Hours: -1}},
		{"PT24H", Period{Hours: 24}},
		{"PT-24H", Period{Hours: -24}},
		{"PT2147483647H", Period{Hours: math.MaxInt32}},
		{"PT-2147483648H", Period{Hours: math.MinInt32}},

		{"PT1M", Period{Minutes: 1}},
		{"PT-1M", Period{Minutes: -1}},
		{"PT60M", Period{Minutes: 60}},
		{"PT-60M", Period{Minutes: -60}},
		{"PT2147483647M", Period{Minutes: math.MaxInt32}},
		{"PT-2147483648M", Period{Minutes: math.MinInt32}},

		{"PT1S", Period{Seconds: 1}},
		{"PT-1S", Period{Seconds: -1}},
		{"PT60S", Period{Seconds: 60}},
		{"PT-60S", Period{Seconds: -60}},
		{"PT2147483647S", Period{Seconds: math.MaxInt32}},
		{"PT-2147483648S", Period{Seconds: math.MinInt32}},

		{"PT0.1S", Period{Nanos: 100_000_000}},
		{"PT-0.1S", Period{Nanos: -100_000_000}},
		{"PT1.1S", Period{Seconds: 1, Nanos: 100_000_000}},
		{"PT-1.1S", Period{Seconds: -1, Nanos: -100_000_000}},
		{"PT1.0001S", Period{Seconds: 1, Nanos: 100_000}},
		{"PT1.0000001S", Period{Seconds: 1, Nanos: 100}},
		{"PT1.123456789S", Period{Seconds: 1, Nanos: 123_456_789}},
		{"PT1.999999999S", Period{Seconds: 1, Nanos: 999_999_999}},

		{"P1Y2M3DT4H5M6.7S", Period{1, 2, 3, 4, 5, 6, 700_000_000}},
		{"-P1Y-2MT3S", Period{Years: -1, Months: 2, Seconds: -3}},
		{"-PT1.5S", Period{Seconds: -1, Nanos: -500_000_000}},
		{"+P1Y", Period{Years: 1}},
		{"+PT-1S", Period{Seconds: -1}},
	} {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			p, err := Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, p)

			if strings.Contains(tc.text, ".") {
				p, err = Parse(strings.ReplaceAll(tc.text, ".", ","))
				require.NoError(t, err)
				assert.Equal(t, tc.exp, p)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		text  string
		index int
	}{
		{"", 0},
		{"P", 1},
		{"-", 1},
		{"+", 1},
		{"+-P1Y", 1},
		{"PT", 1},
		{"P1YT", 3},
		{"PTS", 2},
		{"AT0S", 0},
		{"PA0S", 1},
		{"PT0A", 3},

		{"PT+S", 2},
		{"PT-S", 2},
		{"PT.S", 2},
		{"PTAS", 2},

		{"PT+0S", 2},
		{"PT-0S", 2},
		{"PT+1S", 2},
		{"PT-.S", 2},

		{"PT1ABC2S", 3},
		{"PT1.1ABC2S", 5},

		{"PT123456789123456789123456789S", 2},
		{"PT0.1234567891S", 4},
		{"PT1.S", 2},
		{"PT.1S", 2},

		{"PT2.-3S", 2},
		{"PT-2.-3S", 2},

		{"P1Y1MT1DT1M1S", 7},
		{"P1Y1MT1HT1M1S", 8},
		{"P1YMD", 3},
		{"PT1ST1D", 4},
		{"P1Y2Y", 4},
		{"PT1M+3S", 4},

		{"PT1S1", 4},
		{"PT1S.", 4},
		{"PT1SA", 4},
		{"PT1M1", 4},
		{"PT1M.", 4},
		{"PT1MA", 4},

		{"P2147483648Y", 1},
		{"P-2147483649Y", 2},
		{"-P-2147483648Y", 3},
		{"PT" + strconv.FormatInt(math.MaxInt64, 10) + "1S", 2},
		{"PT" + strconv.FormatInt(math.MaxInt64, 10) + "1.1S", 2},
		{"PT" + strconv.FormatInt(math.MinInt64, 10) + "1S", 3},
		{"PT" + strconv.FormatInt(math.MinInt64, 10) + ".1S", 3},
	} {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			for _, text := range []string{tc.text, strings.ReplaceAll(tc.text, ".", ",")} {
				p, err := Parse(text)
				require.ErrorIs(t, err, ErrPeriod)
				assert.Equal(t, Period{}, p)

				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, text, pe.Text)
				assert.Equal(t, tc.index, pe.Index, pe.Reason)
			}
		})
	}
}

func TestParseBadSequence(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		text   string
		index  int
		reason string
	}{
		{"P0M0Y0DT0H0M0.0S", 4, `unit 'Y' out of order`},
		{"P0M0D0YT0H0M0.0S", 6, `unit 'Y' out of order`},
		{"P0S0D0YT0S0M0.0H", 2, `unknown unit 'S'`},
		{"PT0M0H0.0S", 5, `unit 'H' out of order`},
		{"PT0M0H", 5, `unit 'H' out of order`},
		{"PT0S0M", 4, `unexpected text after seconds`},
		{"PT0.0M2S", 5, `only seconds may have a fraction`},
	} {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.text)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.index, pe.Index)
			assert.Equal(t, tc.reason, pe.Reason)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	_, err := Parse("P1Y2Y")
	a.EqualError(err, `period: text "P1Y2Y" could not be parsed at index 4: unit 'Y' out of order`)

	a.PanicsWithError(
		`period: text "PT" could not be parsed at index 1: 'T' must be followed by a time unit`,
		func() { MustParse("PT") },
	)
	a.Equal(Period{Days: 3}, MustParse("P3D"))
}
