package format

import (
	"fmt"
	"strings"

	"github.com/cquiroz/threetenbp/calendar/field"
)

// patternFields maps the numeric pattern letters to their fields.
//
//nolint:gochecknoglobals
var patternFields = map[rune]field.Field{
	'G': field.Era,
	'y': field.YearOfEra,
	'u': field.Year,
	'Y': field.WeekBasedYear,
	'Q': field.QuarterOfYear,
	'M': field.MonthOfYear,
	'w': field.WeekOfWeekBasedYear,
	'D': field.DayOfYear,
	'd': field.DayOfMonth,
	'E': field.DayOfWeek,
	'a': field.AmPmOfDay,
	'h': field.ClockHourOfAmPm,
	'K': field.HourOfAmPm,
	'k': field.ClockHourOfDay,
	'H': field.HourOfDay,
	'm': field.MinuteOfHour,
	's': field.SecondOfMinute,
	'S': field.NanoOfSecond,
	'n': field.NanoOfSecond,
	'N': field.NanoOfDay,
	'A': field.MilliOfDay,
}

// Pattern returns a Formatter for pattern.
//
// The pattern letters are:
//
//	G  era                 text         AD; Anno Domini; A
//	u  year                year         2004; 04
//	y  year-of-era         year         2004; 04
//	Y  week-based-year     year         1996; 96
//	Q  quarter-of-year     number/text  3; 03; Q3; 3rd quarter
//	M  month-of-year       number/text  7; 07; Jul; July; J
//	w  week-of-week-year   number       27
//	D  day-of-year         number       189
//	d  day-of-month        number       10
//	E  day-of-week         text         Tue; Tuesday; T
//	a  am-pm-of-day        text         PM
//	h  clock-hour-of-am-pm number       12
//	K  hour-of-am-pm       number       0
//	k  clock-hour-of-day   number       24
//	H  hour-of-day         number       0
//	m  minute-of-hour      number       30
//	s  second-of-minute    number       55
//	S  fraction-of-second  fraction     978
//	n  nano-of-second      number       987654321
//	N  nano-of-day         number       1234000000
//	A  milli-of-day        number       1234
//	I  zone ID             zone-id      America/Los_Angeles
//	z  zone name           zone-name    PST; America/Los_Angeles
//	Z  offset              offset-Z     +0000; -0800; -08:00
//	X  offset, Z for zero  offset-X     Z; -08; -0830; -08:30
//	x  offset              offset-x     +0000; -08; -0830; -08:30
//	p  pad next            pad modifier 1
//	'  escape for text
//	'' single quote
//	[  optional section start
//	]  optional section end
//
// Text letters use the short style for up to three letters, the full style
// for four, and the narrow style for five. Two year letters parse a reduced
// year relative to 2000. Other unreserved punctuation is literal; '{', '}',
// and '#' are reserved.
func Pattern(pattern string, opts ...Option) (*Formatter, error) {
	return NewBuilder().AppendPattern(pattern).Formatter(opts...)
}

// MustPattern is like Pattern but panics on error.
func MustPattern(pattern string, opts ...Option) *Formatter {
	f, err := Pattern(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// AppendPattern appends the nodes for pattern, as described for Pattern.
func (b *Builder) AppendPattern(pattern string) *Builder {
	prior := b.err
	if err := b.parsePattern(pattern); err != nil && prior == nil {
		b.err = err
	}
	return b
}

func isPatternLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func (b *Builder) parsePattern(pattern string) error {
	runes := []rune(pattern)
	depth := 0
	for pos := 0; pos < len(runes); pos++ {
		cur := runes[pos]
		switch {
		case isPatternLetter(cur):
			start := pos
			for pos++; pos < len(runes) && runes[pos] == cur; pos++ {
			}
			count := pos - start
			if cur == 'p' {
				pad := 0
				if pos < len(runes) && isPatternLetter(runes[pos]) {
					pad = count
					cur = runes[pos]
					start = pos
					for pos++; pos < len(runes) && runes[pos] == cur; pos++ {
					}
					count = pos - start
				}
				if pad == 0 {
					return fmt.Errorf(
						"%w: pad letter 'p' must be followed by a valid pad pattern: %q",
						ErrPattern, pattern,
					)
				}
				b.PadNext(pad)
			}
			prior := b.err
			if err := b.parseField(cur, count); err != nil {
				return fmt.Errorf("%w: %q", err, pattern)
			}
			if b.err != prior {
				return fmt.Errorf("%w: %q", b.err, pattern)
			}
			pos--

		case cur == '\'':
			start := pos
			for pos++; pos < len(runes); pos++ {
				if runes[pos] == '\'' {
					if pos+1 < len(runes) && runes[pos+1] == '\'' {
						pos++
					} else {
						break
					}
				}
			}
			if pos >= len(runes) {
				return fmt.Errorf(
					"%w: pattern ends with an incomplete string literal: %q",
					ErrPattern, pattern,
				)
			}
			if str := string(runes[start+1 : pos]); str == "" {
				b.AppendLiteral("'")
			} else {
				b.AppendLiteral(strings.ReplaceAll(str, "''", "'"))
			}

		case cur == '[':
			depth++
			b.OptionalStart()

		case cur == ']':
			if depth == 0 {
				return fmt.Errorf(
					"%w: pattern invalid as it contains ] without previous [: %q",
					ErrPattern, pattern,
				)
			}
			depth--
			b.OptionalEnd()

		case cur == '{' || cur == '}' || cur == '#':
			return fmt.Errorf(
				"%w: pattern includes reserved character '%c' at index %d: %q",
				ErrPattern, cur, pos, pattern,
			)

		default:
			b.AppendLiteral(string(cur))
		}
	}
	if depth > 0 {
		return fmt.Errorf("%w: pattern has an unclosed [: %q", ErrPattern, pattern)
	}
	return nil
}

// textStyle returns the text style for a run of count letters.
func textStyle(count int) field.TextStyle {
	switch count {
	case 4:
		return field.Full
	case 5:
		return field.Narrow
	default:
		return field.Short
	}
}

func tooMany(cur rune) error {
	return fmt.Errorf("%w: too many pattern letters: %c", ErrPattern, cur)
}

// parseField appends the node for a run of count letters cur.
//
//nolint:gocyclo,cyclop
func (b *Builder) parseField(cur rune, count int) error {
	f, ok := patternFields[cur]
	switch {
	case cur == 'I':
		if count != 1 {
			return tooMany(cur)
		}
		b.AppendZoneID()
		return nil
	case cur == 'z':
		if count > 4 {
			return tooMany(cur)
		}
		b.AppendZoneText(textStyle(count))
		return nil
	case cur == 'Z':
		switch {
		case count < 4:
			b.AppendOffset("+HHMM", "+0000")
		case count == 5:
			b.AppendOffset("+HH:MM:ss", "Z")
		default:
			return tooMany(cur)
		}
		return nil
	case cur == 'X' || cur == 'x':
		if count > 5 {
			return tooMany(cur)
		}
		zero := "Z"
		if cur == 'x' {
			zero = [...]string{"+00", "+0000", "+00:00", "+0000", "+00:00"}[count-1]
		}
		pattern := [...]string{"+HHmm", "+HHMM", "+HH:MM", "+HHMMss", "+HH:MM:ss"}[count-1]
		b.AppendOffset(pattern, zero)
		return nil
	case !ok:
		return fmt.Errorf("%w: unknown pattern letter: %c", ErrPattern, cur)
	}

	switch cur {
	case 'G', 'E':
		if count > 5 {
			return tooMany(cur)
		}
		b.AppendText(f, textStyle(count))
	case 'a':
		if count != 1 {
			return tooMany(cur)
		}
		b.AppendText(f, field.Short)
	case 'u', 'y', 'Y':
		switch {
		case count == 2:
			b.AppendValueReduced(f, 2, 2000)
		case count < 4:
			b.AppendValueRange(f, count, maxWidth, SignNormal)
		default:
			b.AppendValueRange(f, count, maxWidth, SignExceedsPad)
		}
	case 'Q', 'M':
		switch count {
		case 1:
			b.AppendValue(f)
		case 2:
			b.AppendValueWidth(f, 2)
		case 3:
			b.AppendText(f, field.Short)
		case 4:
			b.AppendText(f, field.Full)
		case 5:
			b.AppendText(f, field.Narrow)
		default:
			return tooMany(cur)
		}
	case 'D':
		switch count {
		case 1:
			b.AppendValue(f)
		case 2, 3:
			b.AppendValueRange(f, count, 3, SignNotNegative)
		default:
			return tooMany(cur)
		}
	case 'S':
		b.AppendFraction(f, count, count, false)
	case 'n', 'N', 'A':
		if count == 1 {
			b.AppendValue(f)
		} else {
			b.AppendValueWidth(f, count)
		}
	default:
		switch count {
		case 1:
			b.AppendValue(f)
		case 2:
			b.AppendValueWidth(f, 2)
		default:
			return tooMany(cur)
		}
	}
	return nil
}
