package format

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/cquiroz/threetenbp/calendar/chrono"
	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/locale"
	"github.com/cquiroz/threetenbp/calendar/types"
)

// Formatter prints and parses date-time text. A Formatter is immutable and
// safe for concurrent use.
type Formatter struct {
	root    *compositePrinterParser
	symbols *locale.Symbols
	chrono  chrono.Chronology
	zone    string
	style   chrono.ResolverStyle
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocale selects the built-in symbols best matching tag.
func WithLocale(tag language.Tag) Option {
	return func(f *Formatter) { f.symbols = locale.Lookup(tag) }
}

// WithSymbols sets the symbols used for text and digits.
func WithSymbols(symbols *locale.Symbols) Option {
	return func(f *Formatter) { f.symbols = symbols }
}

// WithChronology sets the chronology used to print values and to resolve
// parsed fields. A nil chronology prints values as they are and resolves
// with the ISO chronology unless the text names another.
func WithChronology(c chrono.Chronology) Option {
	return func(f *Formatter) { f.chrono = c }
}

// WithZone sets the zone used to print values and to resolve parsed fields
// that carry no zone. Values with an instant are converted to the zone
// before printing. An empty id clears the override.
func WithZone(id string) Option {
	return func(f *Formatter) { f.zone = id }
}

// WithResolverStyle sets how strictly parsed fields are resolved.
func WithResolverStyle(style chrono.ResolverStyle) Option {
	return func(f *Formatter) { f.style = style }
}

func newFormatter(root *compositePrinterParser, opts ...Option) *Formatter {
	f := &Formatter{root: root, symbols: locale.English()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// With returns a copy of f with opts applied.
func (f *Formatter) With(opts ...Option) *Formatter {
	c := *f
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Locale returns the language of f's symbols.
func (f *Formatter) Locale() language.Tag { return f.symbols.Tag() }

// Symbols returns the symbols used by f.
func (f *Formatter) Symbols() *locale.Symbols { return f.symbols }

// Chronology returns the chronology override, or nil.
func (f *Formatter) Chronology() chrono.Chronology { return f.chrono }

// Zone returns the zone override, or "".
func (f *Formatter) Zone() string { return f.zone }

// ResolverStyle returns the resolver style.
func (f *Formatter) ResolverStyle() chrono.ResolverStyle { return f.style }

// zonedAccessor adds a zone ID to an accessor.
type zonedAccessor struct {
	field.Accessor
	zone string
}

func (z zonedAccessor) ZoneID() (string, bool) { return z.zone, true }

// printContext applies the zone and chronology overrides to value.
func (f *Formatter) printContext(value field.Accessor) (*printContext, error) {
	temporal, _ := value.(types.Temporal)
	if f.zone != "" {
		if _, ok := value.Get(field.OffsetSeconds); ok && temporal != nil {
			loc, err := types.ZoneLocation(f.zone)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrPrint, err)
			}
			zdt := types.NewZonedDateTime(temporal.GoTime().In(loc))
			temporal, value = zdt, zdt
		} else {
			value = zonedAccessor{Accessor: value, zone: f.zone}
		}
	}
	if f.chrono != nil {
		value = f.chrono.Localize(value)
	}
	return &printContext{value: value, temporal: temporal, symbols: f.symbols}, nil
}

// Format returns the text for value.
func (f *Formatter) Format(value field.Accessor) (string, error) {
	var buf strings.Builder
	if err := f.print(value, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatTo writes the text for value to w. Nothing is written if printing
// fails.
func (f *Formatter) FormatTo(w io.Writer, value field.Accessor) error {
	s, err := f.Format(value)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func (f *Formatter) print(value field.Accessor, buf *strings.Builder) error {
	ctx, err := f.printContext(value)
	if err != nil {
		return err
	}
	return f.root.print(ctx, buf)
}

// ParseUnresolved parses text starting at pos.Index without resolving the
// fields and without requiring the whole text to be consumed. On success it
// sets pos.Index to the end of the parsed text. On failure it returns nil and
// sets pos.ErrorIndex to the position of the failure. An index outside
// text fails at that index.
func (f *Formatter) ParseUnresolved(text string, pos *ParsePosition) *chrono.Fields {
	if pos.Index < 0 || pos.Index > len(text) {
		pos.ErrorIndex = pos.Index
		return nil
	}
	ctx, end := f.parse(text, pos.Index)
	if end < 0 {
		pos.ErrorIndex = ^end
		return nil
	}
	pos.Index = end
	return ctx.fields()
}

func (f *Formatter) parse(text string, index int) (*parseContext, int) {
	ctx := newParseContext(f.symbols)
	return ctx, f.root.parse(ctx, text, index)
}

// ParseFields parses the whole of text into unresolved fields, applying the
// zone and chronology overrides to fields the text does not set.
func (f *Formatter) ParseFields(text string) (*chrono.Fields, error) {
	ctx, end := f.parse(text, 0)
	if end < 0 {
		err := &ParseError{Text: text, Index: ^end, Err: ErrParse}
		if c := ctx.current().conflict; c != nil {
			err.Err = c
		}
		return nil, err
	}
	if end < len(text) {
		return nil, &ParseError{Text: text, Index: end, Err: ErrUnparsed}
	}
	fs := ctx.fields()
	if fs.Zone == "" {
		fs.Zone = f.zone
	}
	if fs.Chronology == nil {
		fs.Chronology = f.chrono
	}
	return fs, nil
}

// Parse parses the whole of text and resolves the fields.
func (f *Formatter) Parse(text string) (*chrono.Resolved, error) {
	fs, err := f.ParseFields(text)
	if err != nil {
		return nil, err
	}
	res, err := chrono.Resolve(fs, f.style)
	if err != nil {
		return nil, f.resolveError(text, err)
	}
	return res, nil
}

func (f *Formatter) resolveError(text string, err error) error {
	return fmt.Errorf("%w: text %q could not be resolved: %w", ErrParse, abbreviate(text), err)
}

// ParseDate parses text into a date.
func (f *Formatter) ParseDate(text string) (*types.Date, error) {
	res, err := f.Parse(text)
	if err != nil {
		return nil, err
	}
	d, err := res.LocalDate()
	if err != nil {
		return nil, f.resolveError(text, err)
	}
	return d, nil
}

// ParseTime parses text into a time of day.
func (f *Formatter) ParseTime(text string) (*types.Time, error) {
	res, err := f.Parse(text)
	if err != nil {
		return nil, err
	}
	t, err := res.LocalTime()
	if err != nil {
		return nil, f.resolveError(text, err)
	}
	return t, nil
}

// ParseDateTime parses text into a date and time.
func (f *Formatter) ParseDateTime(text string) (*types.DateTime, error) {
	res, err := f.Parse(text)
	if err != nil {
		return nil, err
	}
	dt, err := res.LocalDateTime()
	if err != nil {
		return nil, f.resolveError(text, err)
	}
	return dt, nil
}

// ParseOffsetDateTime parses text into a date and time with an offset.
func (f *Formatter) ParseOffsetDateTime(text string) (*types.OffsetDateTime, error) {
	res, err := f.Parse(text)
	if err != nil {
		return nil, err
	}
	odt, err := res.OffsetDateTime()
	if err != nil {
		return nil, f.resolveError(text, err)
	}
	return odt, nil
}

// ParseZonedDateTime parses text into a date and time in a zone.
func (f *Formatter) ParseZonedDateTime(text string) (*types.ZonedDateTime, error) {
	res, err := f.Parse(text)
	if err != nil {
		return nil, err
	}
	zdt, err := res.ZonedDateTime()
	if err != nil {
		return nil, f.resolveError(text, err)
	}
	return zdt, nil
}

// ParseYearMonth parses text into a year and month.
func (f *Formatter) ParseYearMonth(text string) (types.YearMonth, error) {
	res, err := f.Parse(text)
	if err != nil {
		return types.YearMonth{}, err
	}
	ym, err := res.YearMonth()
	if err != nil {
		return types.YearMonth{}, f.resolveError(text, err)
	}
	return ym, nil
}

// String returns a description of f's nodes.
func (f *Formatter) String() string {
	s := f.root.String()
	return s[1 : len(s)-1]
}
