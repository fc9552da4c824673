package period

import (
	"fmt"
	"math"
	"math/bits"
)

// ParseError describes a failure to parse period text.
type ParseError struct {
	// Text is the whole text being parsed.
	Text string

	// Index is the byte offset of the character that could not be parsed.
	Index int

	// Reason describes the failure.
	Reason string
}

// Error returns the error message, naming the index of the failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"%v: text %q could not be parsed at index %d: %s",
		ErrPeriod, e.Text, e.Index, e.Reason,
	)
}

// Unwrap returns ErrPeriod.
func (e *ParseError) Unwrap() error {
	return ErrPeriod
}

// MustParse is like Parse but panics on parse failure.
func MustParse(text string) Period {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse parses the ISO-8601 period form:
//
//	[+-]P[nY][nM][nD][T[nH][nM][n[.f]S]]
//
// The letters are case-insensitive. Each n may carry a leading minus sign
// and must fit in 32 bits. The seconds may have a fraction of up to nine
// digits after a '.' or ','; a negative seconds value makes the fraction
// negative too. A leading minus sign before the 'P' negates every
// component; a leading plus sign has no effect. At least one unit must be present, and a 'T' must be followed
// by at least one time unit.
//
// Parse fails with a *ParseError naming the offset of the first character
// that does not fit the grammar. Errors within a number, such as a sign
// with no digits or a point with no fraction, report the start of the
// number. A value too large for its component reports the first digit.
func Parse(text string) (Period, error) {
	s := &scanner{text: text}
	if err := s.scan(); err != nil {
		return Period{}, err
	}
	return s.period, nil
}

// unit identifies a period component by its position in the text.
type unit uint8

const (
	noUnit unit = iota
	years
	months
	days
	hours
	minutes
	seconds
)

// unitFor returns the unit for letter c in the date or time section.
func unitFor(c byte, inTime bool) unit {
	switch c | 0x20 {
	case 'y':
		if !inTime {
			return years
		}
	case 'm':
		if inTime {
			return minutes
		}
		return months
	case 'd':
		if !inTime {
			return days
		}
	case 'h':
		if inTime {
			return hours
		}
	case 's':
		if inTime {
			return seconds
		}
	}
	return noUnit
}

// scanner holds the state of a single parse.
type scanner struct {
	text    string
	pos     int
	negated bool
	inTime  bool
	last    unit
	period  Period
}

// number is a signed number scanned from the text. start is the offset of
// the sign or first digit and digits the offset of the first digit. value
// holds the magnitude of the whole part and fraction the magnitude of the
// fraction in nanoseconds.
type number struct {
	start    int
	digits   int
	negative bool
	value    uint64
	fraction int64
	point    bool
}

func (s *scanner) fail(index int, reason string) error {
	return &ParseError{Text: s.text, Index: index, Reason: reason}
}

func (s *scanner) scan() error {
	if s.pos < len(s.text) && (s.text[s.pos] == '-' || s.text[s.pos] == '+') {
		s.negated = s.text[s.pos] == '-'
		s.pos++
	}
	if s.pos >= len(s.text) || s.text[s.pos]|0x20 != 'p' {
		return s.fail(s.pos, "expected 'P'")
	}
	s.pos++
	if s.pos >= len(s.text) {
		return s.fail(s.pos, "expected a number or 'T'")
	}

	for s.pos < len(s.text) {
		if s.text[s.pos]|0x20 == 't' {
			if s.inTime {
				return s.fail(s.pos, "'T' may only appear once")
			}
			if s.pos+1 >= len(s.text) {
				return s.fail(s.pos, "'T' must be followed by a time unit")
			}
			s.inTime = true
			s.pos++
			continue
		}
		if s.last == seconds {
			return s.fail(s.pos, "unexpected text after seconds")
		}

		num, err := s.number()
		if err != nil {
			return err
		}
		if s.pos >= len(s.text) {
			return s.fail(num.start, "number must be followed by a unit")
		}
		u := unitFor(s.text[s.pos], s.inTime)
		switch {
		case u == noUnit:
			return s.fail(s.pos, fmt.Sprintf("unknown unit %q", s.text[s.pos]))
		case u <= s.last:
			return s.fail(s.pos, fmt.Sprintf("unit %q out of order", s.text[s.pos]))
		case num.point && u != seconds:
			return s.fail(s.pos, "only seconds may have a fraction")
		}
		if err := s.set(u, num); err != nil {
			return err
		}
		s.last = u
		s.pos++
	}
	return nil
}

// number scans an optionally negative number with an optional fraction.
func (s *scanner) number() (*number, error) {
	num := &number{start: s.pos}
	if s.text[s.pos] == '-' {
		num.negative = true
		s.pos++
	}
	num.digits = s.pos
	var overflow bool
	for ; s.pos < len(s.text) && isDigit(s.text[s.pos]); s.pos++ {
		hi, lo := bits.Mul64(num.value, 10)
		lo, carry := bits.Add64(lo, uint64(s.text[s.pos]-'0'), 0)
		overflow = overflow || hi != 0 || carry != 0
		num.value = lo
	}
	if s.pos == num.digits {
		return nil, s.fail(num.start, "expected a number")
	}
	if overflow {
		return nil, s.fail(num.digits, "number too large")
	}

	if s.pos < len(s.text) && (s.text[s.pos] == '.' || s.text[s.pos] == ',') {
		num.point = true
		s.pos++
		fracStart := s.pos
		scale := int64(1e9)
		for ; s.pos < len(s.text) && isDigit(s.text[s.pos]); s.pos++ {
			if s.pos-fracStart == 9 {
				return nil, s.fail(fracStart, "fraction has more than nine digits")
			}
			scale /= 10
			num.fraction += int64(s.text[s.pos]-'0') * scale
		}
		if s.pos == fracStart {
			return nil, s.fail(num.start, "expected fraction digits")
		}
	}

	if num.negative && num.value == 0 && !num.point {
		return nil, s.fail(num.start, "negative zero")
	}
	return num, nil
}

// set stores num as the value of u.
func (s *scanner) set(u unit, num *number) error {
	negative := num.negative != s.negated
	limit := uint64(math.MaxInt32)
	if negative {
		limit++
	}
	if num.value > limit {
		return s.fail(num.digits, "number too large")
	}
	v := int64(num.value)
	if negative {
		v = -v
	}

	p := &s.period
	switch u {
	case years:
		p.Years = int32(v)
	case months:
		p.Months = int32(v)
	case days:
		p.Days = int32(v)
	case hours:
		p.Hours = int32(v)
	case minutes:
		p.Minutes = int32(v)
	case seconds:
		p.Seconds = int32(v)
		p.Nanos = num.fraction
		if negative {
			p.Nanos = -p.Nanos
		}
	}
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
