package format

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/locale"
)

// textPrinterParser prints and parses a field as text, either from the
// locale symbols or from a fixed lookup table.
type textPrinterParser struct {
	field  field.Field
	style  field.TextStyle
	lookup map[int64]string
}

// newTextLookup returns a text node with a copy of lookup.
func newTextLookup(f field.Field, lookup map[int64]string) *textPrinterParser {
	return &textPrinterParser{field: f, style: field.Full, lookup: maps.Clone(lookup)}
}

func (pp *textPrinterParser) text(ctx *printContext, value int64) (string, bool) {
	if pp.lookup != nil {
		s, ok := pp.lookup[value]
		return s, ok
	}
	return ctx.symbols.Text(pp.field, value, pp.style)
}

func (pp *textPrinterParser) numeric() *numberPrinterParser {
	return &numberPrinterParser{field: pp.field, minWidth: 1, maxWidth: maxWidth, sign: SignNormal}
}

func (pp *textPrinterParser) print(ctx *printContext, buf *strings.Builder) error {
	value, err := ctx.get(pp.field)
	if err != nil {
		return err
	}
	if s, ok := pp.text(ctx, value); ok {
		buf.WriteString(s)
		return nil
	}
	return pp.numeric().print(ctx, buf)
}

// entries returns the candidate texts for parsing, longest first. Lenient
// parsing accepts every style.
func (pp *textPrinterParser) entries(ctx *parseContext) []locale.Entry {
	if pp.lookup != nil {
		list := make([]locale.Entry, 0, len(pp.lookup))
		for _, v := range maps.Keys(pp.lookup) {
			list = append(list, locale.Entry{Text: pp.lookup[v], Value: v})
		}
		slices.SortFunc(list, func(a, b locale.Entry) int {
			if c := cmp.Compare(len(b.Text), len(a.Text)); c != 0 {
				return c
			}
			return cmp.Compare(a.Value, b.Value)
		})
		return list
	}
	if ctx.strict {
		return ctx.symbols.Entries(pp.field, pp.style)
	}

	var list []locale.Entry
	list = append(list, ctx.symbols.Entries(pp.field, pp.style)...)
	for _, style := range []field.TextStyle{field.Full, field.Short, field.Narrow} {
		if style != pp.style {
			list = append(list, ctx.symbols.Entries(pp.field, style)...)
		}
	}
	slices.SortStableFunc(list, func(a, b locale.Entry) int {
		return cmp.Compare(len(b.Text), len(a.Text))
	})
	return list
}

func (pp *textPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	if pos > len(text) {
		return ^pos
	}
	for _, e := range pp.entries(ctx) {
		if end, ok := ctx.match(text, pos, e.Text); ok {
			return ctx.setParsed(pp.field, e.Value, pos, end)
		}
	}
	if pp.lookup == nil && !ctx.symbols.HasText(pp.field) {
		return pp.numeric().parse(ctx, text, pos)
	}
	return ^pos
}

func (pp *textPrinterParser) String() string {
	if pp.style == field.Full {
		return fmt.Sprintf("Text(%v)", pp.field)
	}
	return fmt.Sprintf("Text(%v,%v)", pp.field, pp.style)
}
