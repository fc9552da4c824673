package period

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		period Period
		exp    string
	}{
		{"zero", Period{}, "PT0S"},
		{"years", Period{Years: 2}, "P2Y"},
		{"date", Period{Years: 2, Months: 3, Days: 25}, "P2Y3M25D"},
		{"negative_months", Period{Months: -1}, "P-1M"},
		{"hours", Period{Hours: 24}, "PT24H"},
		{"minutes", Period{Minutes: -60}, "PT-60M"},
		{"seconds", Period{Seconds: 60}, "PT60S"},
		{"fraction", Period{Seconds: 1, Nanos: 100_000_000}, "PT1.1S"},
		{"nanos", Period{Seconds: 1, Nanos: 123_456_789}, "PT1.123456789S"},
		{"micros", Period{Seconds: 1, Nanos: 100}, "PT1.0000001S"},
		{"negative_fraction", Period{Nanos: -100_000_000}, "PT-0.1S"},
		{"negative_seconds", Period{Seconds: -1, Nanos: -100_000_000}, "PT-1.1S"},
		{"carry", Period{Seconds: 1, Nanos: 1_500_000_000}, "PT2.5S"},
		{"borrow", Period{Seconds: 2, Nanos: -500_000_000}, "PT1.5S"},
		{"whole_nanos", Period{Nanos: 3_000_000_000}, "PT3S"},
		{"cancelled_seconds", Period{Days: 1, Seconds: 1, Nanos: -1_000_000_000}, "P1D"},
		{"cancelled_time", Period{Seconds: -2, Nanos: 2_000_000_000}, "PT0S"},
		{"all", Period{1, 2, 3, 4, 5, 6, 700_000_000}, "P1Y2M3DT4H5M6.7S"},
		{"min", Period{Years: math.MinInt32}, "P-2147483648Y"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, tc.period.String())
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"PT0S", "P2Y3M25D", "PT-0.1S", "PT-1.1S", "P1Y2M3DT4H5M6.7S",
		"P-2147483648YT2147483647S", "PT1.000000001S",
	} {
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, text, MustParse(text).String())
		})
	}
}

func TestOf(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	p, err := Of(1, 2, 3, 4, 5, -6, -7)
	require.NoError(t, err)
	a.Equal(Period{1, 2, 3, 4, 5, -6, -7}, p)
	a.False(p.IsZero())
	a.True(p.HasTime())

	p, err = Of(0, 0, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	a.True(p.IsZero())
	a.False(p.HasTime())

	_, err = Of(0, 0, 0, 0, 0, 1, -1)
	require.ErrorIs(t, err, ErrPeriod)
	a.EqualError(err, "period: seconds 1 and nanoseconds -1 must have the same sign")

	_, err = Of(0, 0, 0, 0, 0, -1, 1)
	require.ErrorIs(t, err, ErrPeriod)
}

func TestDuration(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		period Period
		exp    time.Duration
		err    string
	}{
		{
			name:   "zero",
			period: Period{},
		},
		{
			name:   "time",
			period: Period{Hours: 1, Minutes: 30, Seconds: 10, Nanos: 500_000_000},
			exp:    time.Hour + 30*time.Minute + 10*time.Second + 500*time.Millisecond,
		},
		{
			name:   "negative",
			period: Period{Minutes: -1, Seconds: -1, Nanos: -1},
			exp:    -time.Minute - time.Second - time.Nanosecond,
		},
		{
			name:   "date",
			period: Period{Days: 1, Hours: 1},
			err:    "period: P1DT1H has a date-based component",
		},
		{
			name:   "overflow",
			period: Period{Hours: math.MaxInt32},
			err:    "period: PT2147483647H overflows a duration",
		},
		{
			name:   "sum_overflow",
			period: Period{Hours: 2_562_047, Minutes: 60},
			err:    "period: PT2562047H60M overflows a duration",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := tc.period.Duration()
			if tc.err != "" {
				require.ErrorIs(t, err, ErrPeriod)
				assert.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exp, d)
		})
	}
}

func TestScan(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, tc := range []struct {
		name string
		src  any
		exp  Period
	}{
		{"nil", nil, Period{}},
		{"empty_string", "", Period{}},
		{"no_bytes", []byte{}, Period{}},
		{"string", "P2Y3M25D", Period{Years: 2, Months: 3, Days: 25}},
		{"bytes", []byte("PT1.5S"), Period{Seconds: 1, Nanos: 500_000_000}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := Period{Days: 9}
			r.NoError(p.Scan(tc.src))
			a.Equal(tc.exp, p)
		})
	}

	t.Run("unknown_type", func(t *testing.T) {
		t.Parallel()
		p := &Period{}
		err := p.Scan(42)
		r.EqualError(err, "scan: unable to scan type int into Period")
		r.ErrorIs(err, ErrScan)
	})

	t.Run("parse_error", func(t *testing.T) {
		t.Parallel()
		msg := `scan: period: text "P1Y2Y" could not be parsed at index 4: unit 'Y' out of order`
		p := &Period{}
		for _, src := range []any{"P1Y2Y", []byte("P1Y2Y")} {
			err := p.Scan(src)
			r.EqualError(err, msg)
			r.ErrorIs(err, ErrScan)
			r.ErrorIs(err, ErrPeriod)
		}
		err := p.UnmarshalText([]byte("P1Y2Y"))
		r.EqualError(err, msg)
		err = p.UnmarshalBinary([]byte("P1Y2Y"))
		r.EqualError(err, msg)
		a.Equal(Period{}, *p)
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	p := Period{Years: 1, Hours: 2, Seconds: -3, Nanos: -400_000_000}
	val, err := p.Value()
	r.NoError(err)
	a.Equal("P1YT2H-3.4S", val)

	text, err := p.MarshalText()
	r.NoError(err)
	a.Equal("P1YT2H-3.4S", string(text))

	var back Period
	r.NoError(back.UnmarshalText(text))
	a.Equal(p, back)

	bin, err := p.MarshalBinary()
	r.NoError(err)
	back = Period{}
	r.NoError(back.UnmarshalBinary(bin))
	a.Equal(p, back)

	type wrapper struct {
		Every Period `json:"every"`
	}
	js, err := json.Marshal(wrapper{Every: Period{Minutes: 15}})
	r.NoError(err)
	a.JSONEq(`{"every":"PT15M"}`, string(js))

	var w wrapper
	r.NoError(json.Unmarshal([]byte(`{"every":"P1D"}`), &w))
	a.Equal(Period{Days: 1}, w.Every)
}
