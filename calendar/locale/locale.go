// Package locale provides read-only symbol tables used to print and parse
// localized text: month and day names, AM/PM markers, eras, quarters, the
// digits and signs used for numbers, and localized date and time patterns.
//
// Tables are plain values. Callers pass a [*Symbols] to the format package
// rather than relying on ambient state, which lets tests supply fixed tables
// of their own with [New].
package locale

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cquiroz/threetenbp/calendar/field"
)

// FormatStyle selects one of the localized date or time patterns.
type FormatStyle uint8

//revive:disable:exported
const (
	FullStyle   FormatStyle = iota // Full
	LongStyle                      // Long
	MediumStyle                    // Medium
	ShortStyle                     // Short
)

// String returns the name of the style.
func (s FormatStyle) String() string {
	switch s {
	case FullStyle:
		return "Full"
	case LongStyle:
		return "Long"
	case MediumStyle:
		return "Medium"
	case ShortStyle:
		return "Short"
	default:
		return "FormatStyle(?)"
	}
}

// Texts holds the text for each value of one field in each text style.
// Index 0 of each slice holds the text for the field's minimum value.
type Texts struct {
	Full   []string
	Short  []string
	Narrow []string
}

func (t *Texts) style(s field.TextStyle) []string {
	switch s {
	case field.Full:
		return t.Full
	case field.Short:
		return t.Short
	case field.Narrow:
		return t.Narrow
	}
	return nil
}

// Config configures a new Symbols table.
type Config struct {
	Tag              language.Tag
	ZeroDigit        rune
	PositiveSign     rune
	NegativeSign     rune
	DecimalSeparator rune
	Texts            map[field.Field]Texts
	DatePatterns     [4]string
	TimePatterns     [4]string
}

// Entry pairs a text with the field value it represents.
type Entry struct {
	Text  string
	Value int64
}

// Symbols is an immutable symbol table for a single locale.
type Symbols struct {
	cfg     Config
	entries map[field.Field][3][]Entry
}

// New creates a Symbols table from cfg. Zero-valued digit, sign, and
// separator runes default to '0', '+', '-', and '.'.
func New(cfg Config) *Symbols {
	if cfg.ZeroDigit == 0 {
		cfg.ZeroDigit = '0'
	}
	if cfg.PositiveSign == 0 {
		cfg.PositiveSign = '+'
	}
	if cfg.NegativeSign == 0 {
		cfg.NegativeSign = '-'
	}
	if cfg.DecimalSeparator == 0 {
		cfg.DecimalSeparator = '.'
	}

	sym := &Symbols{cfg: cfg, entries: make(map[field.Field][3][]Entry, len(cfg.Texts))}
	for f, texts := range cfg.Texts {
		var byStyle [3][]Entry
		base := f.Range().Min
		for _, style := range []field.TextStyle{field.Full, field.Short, field.Narrow} {
			list := texts.style(style)
			entries := make([]Entry, 0, len(list))
			for i, text := range list {
				entries = append(entries, Entry{text, base + int64(i)})
			}
			// Longest first, so that "June" is tried before "Jun".
			slices.SortStableFunc(entries, func(a, b Entry) int {
				return len(b.Text) - len(a.Text)
			})
			byStyle[style] = entries
		}
		sym.entries[f] = byStyle
	}
	return sym
}

// Tag returns the language tag of the table.
func (s *Symbols) Tag() language.Tag { return s.cfg.Tag }

// ZeroDigit returns the character representing zero.
func (s *Symbols) ZeroDigit() rune { return s.cfg.ZeroDigit }

// PositiveSign returns the character representing a positive sign.
func (s *Symbols) PositiveSign() rune { return s.cfg.PositiveSign }

// NegativeSign returns the character representing a negative sign.
func (s *Symbols) NegativeSign() rune { return s.cfg.NegativeSign }

// DecimalSeparator returns the character separating a fraction.
func (s *Symbols) DecimalSeparator() rune { return s.cfg.DecimalSeparator }

// Digit returns the numeric value of r, or -1 if r is not a digit in s.
func (s *Symbols) Digit(r rune) int {
	d := int(r - s.cfg.ZeroDigit)
	if d >= 0 && d <= 9 {
		return d
	}
	return -1
}

// Localize converts the ASCII digits in str to the digits of s.
func (s *Symbols) Localize(str string) string {
	if s.cfg.ZeroDigit == '0' {
		return str
	}
	out := []rune(str)
	for i, r := range out {
		if r >= '0' && r <= '9' {
			out[i] = s.cfg.ZeroDigit + (r - '0')
		}
	}
	return string(out)
}

// HasText reports whether s has any text for f.
func (s *Symbols) HasText(f field.Field) bool {
	_, ok := s.entries[f]
	return ok
}

// Text returns the text for value of f in style.
func (s *Symbols) Text(f field.Field, value int64, style field.TextStyle) (string, bool) {
	texts, ok := s.cfg.Texts[f]
	if !ok {
		return "", false
	}
	list := texts.style(style)
	idx := value - f.Range().Min
	if idx < 0 || idx >= int64(len(list)) {
		return "", false
	}
	return list[idx], true
}

// Value returns the value of f represented by text in style. The match is
// case-insensitive.
func (s *Symbols) Value(f field.Field, text string, style field.TextStyle) (int64, bool) {
	if style > field.Narrow {
		return 0, false
	}
	fold := cases.Fold()
	want := fold.String(text)
	for _, e := range s.entries[f][style] {
		if e.Text == text || fold.String(e.Text) == want {
			return e.Value, true
		}
	}
	return 0, false
}

// Entries returns the text entries for f in style, longest text first.
func (s *Symbols) Entries(f field.Field, style field.TextStyle) []Entry {
	if style > field.Narrow {
		return nil
	}
	return s.entries[f][style]
}

// DatePattern returns the localized date pattern for style.
func (s *Symbols) DatePattern(style FormatStyle) string {
	if int(style) >= len(s.cfg.DatePatterns) {
		return ""
	}
	return s.cfg.DatePatterns[style]
}

// TimePattern returns the localized time pattern for style.
func (s *Symbols) TimePattern(style FormatStyle) string {
	if int(style) >= len(s.cfg.TimePatterns) {
		return ""
	}
	return s.cfg.TimePatterns[style]
}
