package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/cquiroz/threetenbp/calendar/field"
)

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, sym := range builtin {
		t.Run(sym.Tag().String(), func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			for _, f := range []field.Field{
				field.MonthOfYear, field.DayOfWeek, field.AmPmOfDay,
				field.Era, field.QuarterOfYear,
			} {
				a.True(sym.HasText(f))
				rng := f.Range()
				for _, style := range []field.TextStyle{field.Full, field.Short} {
					for v := rng.Min; v <= rng.Max; v++ {
						text, ok := sym.Text(f, v, style)
						a.True(ok, "%v %v %d", f, style, v)
						got, ok := sym.Value(f, text, style)
						a.True(ok, "%v %v %q", f, style, text)
						a.Equal(v, got, "%v %v %q", f, style, text)
					}
				}
				// Narrow text always exists even when ambiguous.
				for v := rng.Min; v <= rng.Max; v++ {
					_, ok := sym.Text(f, v, field.Narrow)
					a.True(ok)
				}
			}
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	text, ok := English().Text(field.MonthOfYear, 6, field.Full)
	a.True(ok)
	a.Equal("June", text)

	text, ok = Lookup(language.German).Text(field.MonthOfYear, 3, field.Short)
	a.True(ok)
	a.Equal("Mär", text)

	_, ok = English().Text(field.MonthOfYear, 13, field.Full)
	a.False(ok)
	_, ok = English().Text(field.HourOfDay, 1, field.Full)
	a.False(ok)
	a.False(English().HasText(field.HourOfDay))

	val, ok := English().Value(field.DayOfWeek, "wednesday", field.Full)
	a.True(ok)
	a.Equal(int64(3), val)
	val, ok = Lookup(language.French).Value(field.MonthOfYear, "FÉVRIER", field.Full)
	a.True(ok)
	a.Equal(int64(2), val)
	_, ok = English().Value(field.DayOfWeek, "Wed", field.Full)
	a.False(ok)
	_, ok = English().Value(field.DayOfWeek, "Wed", field.TextStyle(7))
	a.False(ok)
}

func TestEntriesLongestFirst(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	entries := English().Entries(field.MonthOfYear, field.Full)
	a.Len(entries, 12)
	a.Equal(Entry{"September", 9}, entries[0])
	for i := 1; i < len(entries); i++ {
		a.GreaterOrEqual(len(entries[i-1].Text), len(entries[i].Text))
	}
	a.Nil(English().Entries(field.HourOfDay, field.Full))
	a.Nil(English().Entries(field.MonthOfYear, field.TextStyle(4)))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		tag string
		exp language.Tag
	}{
		{"en", language.English},
		{"en-GB", language.English},
		{"de", language.German},
		{"de-CH", language.German},
		{"fr-CA", language.French},
		{"ja", language.English},
	} {
		t.Run(tc.tag, func(t *testing.T) {
			t.Parallel()
			sym := Lookup(language.MustParse(tc.tag))
			assert.Equal(t, tc.exp, sym.Tag())
		})
	}

	assert.Equal(t, []language.Tag{language.English, language.German, language.French}, Tags())
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	sym := New(Config{Tag: language.Und})
	a.Equal('0', sym.ZeroDigit())
	a.Equal('+', sym.PositiveSign())
	a.Equal('-', sym.NegativeSign())
	a.Equal('.', sym.DecimalSeparator())
	a.Equal("2024", sym.Localize("2024"))
	a.Equal(7, sym.Digit('7'))
	a.Equal(-1, sym.Digit('x'))
	a.Equal("", sym.DatePattern(FullStyle))
	a.Equal("", sym.TimePattern(FormatStyle(9)))

	arabic := New(Config{Tag: language.Arabic, ZeroDigit: '٠'})
	a.Equal("٢٠٢٤-٠٦", arabic.Localize("2024-06"))
	a.Equal(4, arabic.Digit('٤'))
	a.Equal(-1, arabic.Digit('4'))

	r.Equal("MMM d, y", English().DatePattern(MediumStyle))
	r.Equal("HH:mm", Lookup(language.German).TimePattern(ShortStyle))
	a.Equal("Medium", MediumStyle.String())
	a.Equal("FormatStyle(?)", FormatStyle(8).String())
}
