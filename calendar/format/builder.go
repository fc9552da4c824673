package format

import (
	"fmt"
	"slices"

	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/locale"
)

// Builder assembles a Formatter from nodes. Each method appends to the
// innermost open optional region and returns the Builder for chaining. The
// first invalid argument is recorded and returned by Formatter.
type Builder struct {
	frames []*builderFrame
	err    error
}

// builderFrame holds the nodes of the root or of an open optional region.
type builderFrame struct {
	nodes    []printerParser
	optional bool

	// padWidth and padChar apply to the next node appended.
	padWidth int
	padChar  rune

	// valueIndex is the index of the last node if it is a number that
	// adjacent numbers may follow, or -1.
	valueIndex int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{frames: []*builderFrame{{valueIndex: -1}}}
}

func (b *Builder) active() *builderFrame {
	return b.frames[len(b.frames)-1]
}

// fail records the first error.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Err returns the first error recorded by b, if any.
func (b *Builder) Err() error {
	return b.err
}

// appendNode appends n, padded if PadNext was called, and returns its index.
func (b *Builder) appendNode(n printerParser) int {
	a := b.active()
	if a.padWidth > 0 {
		n = &padPrinterParser{node: n, width: a.padWidth, padChar: a.padChar}
		a.padWidth, a.padChar = 0, 0
	}
	a.nodes = append(a.nodes, n)
	a.valueIndex = -1
	return len(a.nodes) - 1
}

// appendValue appends a number, linking it with a preceding number when no
// separator lies between them.
func (b *Builder) appendValue(pp *numberPrinterParser) *Builder {
	a := b.active()
	if a.valueIndex >= 0 {
		if base, ok := a.nodes[a.valueIndex].(*numberPrinterParser); ok {
			idx := a.valueIndex
			if pp.minWidth == pp.maxWidth && pp.sign == SignNotNegative {
				// Fixed-width numbers reserve their width in the base.
				base = base.withSubsequentWidth(pp.maxWidth)
				b.appendNode(pp.withFixedWidth())
				a.valueIndex = idx
			} else {
				base = base.withFixedWidth()
				a.valueIndex = b.appendNode(pp)
			}
			a.nodes[idx] = base
			return b
		}
	}
	a.valueIndex = b.appendNode(pp)
	return b
}

// ParseCaseSensitive makes the rest of the parse case-sensitive, the
// default. It does not affect printing.
func (b *Builder) ParseCaseSensitive() *Builder {
	b.appendNode(caseSensitive)
	return b
}

// ParseCaseInsensitive makes the rest of the parse case-insensitive.
func (b *Builder) ParseCaseInsensitive() *Builder {
	b.appendNode(caseInsensitive)
	return b
}

// ParseStrict makes the rest of the parse strict, the default.
func (b *Builder) ParseStrict() *Builder {
	b.appendNode(strict)
	return b
}

// ParseLenient makes the rest of the parse lenient: numbers may have fewer
// digits than their minimum width and text may be in any style.
func (b *Builder) ParseLenient() *Builder {
	b.appendNode(lenient)
	return b
}

// AppendValue appends f as a number of 1 to 19 digits, signed only when
// negative.
func (b *Builder) AppendValue(f field.Field) *Builder {
	return b.appendValue(&numberPrinterParser{
		field: f, minWidth: 1, maxWidth: maxWidth, sign: SignNormal,
	})
}

// AppendValueWidth appends f as a zero-padded number of exactly width
// digits, which must be non-negative.
func (b *Builder) AppendValueWidth(f field.Field, width int) *Builder {
	if width < 1 || width > maxWidth {
		return b.fail(fmt.Errorf("%w: the width must be from 1 to 19 inclusive but was %d", ErrPattern, width))
	}
	return b.appendValue(&numberPrinterParser{
		field: f, minWidth: width, maxWidth: width, sign: SignNotNegative,
	})
}

// AppendValueRange appends f as a number of minWidth to maxWidth digits,
// zero-padded to minWidth, with the sign printed according to sign.
func (b *Builder) AppendValueRange(f field.Field, minWidth, maxWidth int, sign SignStyle) *Builder {
	if minWidth == maxWidth && sign == SignNotNegative {
		return b.AppendValueWidth(f, maxWidth)
	}
	switch {
	case minWidth < 1 || minWidth > 19:
		return b.fail(fmt.Errorf("%w: the minimum width must be from 1 to 19 inclusive but was %d", ErrPattern, minWidth))
	case maxWidth < 1 || maxWidth > 19:
		return b.fail(fmt.Errorf("%w: the maximum width must be from 1 to 19 inclusive but was %d", ErrPattern, maxWidth))
	case maxWidth < minWidth:
		return b.fail(fmt.Errorf(
			"%w: the maximum width must exceed or equal the minimum width but %d < %d",
			ErrPattern, maxWidth, minWidth,
		))
	case sign > SignExceedsPad:
		return b.fail(fmt.Errorf("%w: invalid sign style %v", ErrPattern, sign))
	}
	return b.appendValue(&numberPrinterParser{
		field: f, minWidth: minWidth, maxWidth: maxWidth, sign: sign,
	})
}

// AppendValueReduced appends f as its low width digits. Printing a value
// drops the higher digits. Parsing width digits yields the value in the
// range base to base+10^width-1; lenient parsing of other widths yields the
// number as written.
func (b *Builder) AppendValueReduced(f field.Field, width int, base int64) *Builder {
	if width < 1 || width > 10 {
		return b.fail(fmt.Errorf("%w: the width must be from 1 to 10 inclusive but was %d", ErrPattern, width))
	}
	if !f.Range().IsValid(base) {
		return b.fail(fmt.Errorf("%w: the base value %d is outside the range of %v", ErrPattern, base, f))
	}
	return b.appendValue(&numberPrinterParser{
		field: f, minWidth: width, maxWidth: width, sign: SignNotNegative,
		reduced: true, base: base,
	})
}

// AppendFraction appends f as a fraction of minWidth to maxWidth digits,
// preceded by the decimal separator if decimalPoint is set. The fraction is
// truncated, not rounded. f must have a fixed range from zero to a power of
// ten less one, such as field.NanoOfSecond.
func (b *Builder) AppendFraction(f field.Field, minWidth, maxWidth int, decimalPoint bool) *Builder {
	rng := f.Range()
	if !rng.IsFixed() || rng.Min != 0 || !isPowerOfTenLessOne(rng.Max) {
		return b.fail(fmt.Errorf("%w: field must have a fixed set of values: %v", ErrPattern, f))
	}
	switch {
	case minWidth < 0 || minWidth > 9:
		return b.fail(fmt.Errorf("%w: the minimum width must be from 0 to 9 inclusive but was %d", ErrPattern, minWidth))
	case maxWidth < 1 || maxWidth > 9:
		return b.fail(fmt.Errorf("%w: the maximum width must be from 1 to 9 inclusive but was %d", ErrPattern, maxWidth))
	case maxWidth < minWidth:
		return b.fail(fmt.Errorf(
			"%w: the maximum width must exceed or equal the minimum width but %d < %d",
			ErrPattern, maxWidth, minWidth,
		))
	}
	b.appendNode(&fractionPrinterParser{
		field: f, minWidth: minWidth, maxWidth: maxWidth, decimalPoint: decimalPoint,
	})
	return b
}

func isPowerOfTenLessOne(v int64) bool {
	for _, p := range exceedPoints[1:] {
		if v == p-1 {
			return true
		}
	}
	return false
}

// AppendText appends f as locale text in style. Values without text print
// as numbers.
func (b *Builder) AppendText(f field.Field, style field.TextStyle) *Builder {
	if style > field.Narrow {
		return b.fail(fmt.Errorf("%w: invalid text style %v", ErrPattern, style))
	}
	b.appendNode(&textPrinterParser{field: f, style: style})
	return b
}

// AppendTextLookup appends f as text from lookup, independent of the
// locale. Values missing from lookup print as numbers.
func (b *Builder) AppendTextLookup(f field.Field, lookup map[int64]string) *Builder {
	b.appendNode(newTextLookup(f, lookup))
	return b
}

// AppendLiteral appends fixed text. Parsing requires the text to match.
func (b *Builder) AppendLiteral(literal string) *Builder {
	if literal != "" {
		b.appendNode(literalPrinterParser(literal))
	}
	return b
}

// AppendOffsetID appends the offset as an offset ID, such as "+01:00" or
// "Z".
func (b *Builder) AppendOffsetID() *Builder {
	return b.AppendOffset("+HH:MM:ss", "Z")
}

// AppendOffset appends the offset in pattern, one of "+HH", "+HHmm",
// "+HH:mm", "+HHMM", "+HH:MM", "+HHMMss", "+HH:MM:ss", "+HHMMSS", or
// "+HH:MM:SS". Lowercase parts are omitted when zero. noOffsetText stands for
// a zero offset.
func (b *Builder) AppendOffset(pattern, noOffsetText string) *Builder {
	pp, err := newOffsetPrinterParser(pattern, noOffsetText)
	if err != nil {
		return b.fail(err)
	}
	b.appendNode(pp)
	return b
}

// AppendZoneID appends the zone ID, a region such as "Europe/Paris" or an
// offset ID.
func (b *Builder) AppendZoneID() *Builder {
	b.appendNode(&zoneIDPrinterParser{})
	return b
}

// AppendZoneRegionID appends the zone ID when it is a region. Printing a
// value whose zone is an offset fails with ErrUnsupportedField, omitting an
// enclosing optional region.
func (b *Builder) AppendZoneRegionID() *Builder {
	b.appendNode(&zoneIDPrinterParser{regionOnly: true})
	return b
}

// AppendZoneText appends the zone name: the abbreviation, such as "CET",
// or the region ID in the full style. Parsing accepts any zone ID.
func (b *Builder) AppendZoneText(style field.TextStyle) *Builder {
	b.appendNode(&zoneTextPrinterParser{style: style})
	return b
}

// AppendLocalized appends the locale's date pattern, time pattern, or both
// joined by a space. At least one style must be given.
func (b *Builder) AppendLocalized(date, time *locale.FormatStyle) *Builder {
	if date == nil && time == nil {
		return b.fail(fmt.Errorf("%w: either the date or time style must be non-nil", ErrPattern))
	}
	b.appendNode(&localizedPrinterParser{date: date, time: time})
	return b
}

// Append appends all the nodes of f.
func (b *Builder) Append(f *Formatter) *Builder {
	b.appendNode(f.root.withOptional(false))
	return b
}

// AppendOptional appends all the nodes of f as an optional region.
func (b *Builder) AppendOptional(f *Formatter) *Builder {
	b.appendNode(f.root.withOptional(true))
	return b
}

// PadNext pads the next node appended to width characters with spaces.
func (b *Builder) PadNext(width int) *Builder {
	return b.PadNextWith(width, ' ')
}

// PadNextWith pads the next node appended to width characters with padChar.
func (b *Builder) PadNextWith(width int, padChar rune) *Builder {
	if width < 1 {
		return b.fail(fmt.Errorf("%w: the pad width must be at least one but was %d", ErrPattern, width))
	}
	a := b.active()
	a.padWidth, a.padChar = width, padChar
	a.valueIndex = -1
	return b
}

// OptionalStart begins an optional region. Printing omits the region if the
// value lacks one of its fields. Parsing skips the region if its text does
// not match, discarding the fields it set.
func (b *Builder) OptionalStart() *Builder {
	b.active().valueIndex = -1
	b.frames = append(b.frames, &builderFrame{optional: true, valueIndex: -1})
	return b
}

// OptionalEnd ends the innermost optional region.
func (b *Builder) OptionalEnd() *Builder {
	if len(b.frames) == 1 {
		return b.fail(fmt.Errorf("%w: cannot end an optional region that was not started", ErrPattern))
	}
	a := b.active()
	b.frames = b.frames[:len(b.frames)-1]
	if len(a.nodes) > 0 {
		b.appendNode(&compositePrinterParser{nodes: a.nodes, optional: true})
	}
	return b
}

// Formatter ends any open optional regions and returns the Formatter, or
// the first error recorded by b.
func (b *Builder) Formatter(opts ...Option) (*Formatter, error) {
	for len(b.frames) > 1 {
		b.OptionalEnd()
	}
	if b.err != nil {
		return nil, b.err
	}
	root := &compositePrinterParser{nodes: slices.Clone(b.frames[0].nodes)}
	return newFormatter(root, opts...), nil
}

// MustFormatter is like Formatter but panics on error.
func (b *Builder) MustFormatter(opts ...Option) *Formatter {
	f, err := b.Formatter(opts...)
	if err != nil {
		panic(err)
	}
	return f
}
