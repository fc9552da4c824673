package format

import (
	"strings"
	"sync"

	"github.com/cquiroz/threetenbp/calendar/locale"
)

// localizedPatterns caches compiled locale patterns by pattern text.
//
//nolint:gochecknoglobals
var localizedPatterns sync.Map

// localizedPrinterParser prints and parses using the date and time patterns
// of the symbols in use. Either style may be nil.
type localizedPrinterParser struct {
	date *locale.FormatStyle
	time *locale.FormatStyle
}

// pattern returns the pattern for the styles in sym.
func (pp *localizedPrinterParser) pattern(sym *locale.Symbols) string {
	var parts []string
	if pp.date != nil {
		parts = append(parts, sym.DatePattern(*pp.date))
	}
	if pp.time != nil {
		parts = append(parts, sym.TimePattern(*pp.time))
	}
	return strings.Join(parts, " ")
}

// node returns the compiled pattern for sym.
func (pp *localizedPrinterParser) node(sym *locale.Symbols) (printerParser, error) {
	pattern := pp.pattern(sym)
	if n, ok := localizedPatterns.Load(pattern); ok {
		return n.(printerParser), nil //nolint:forcetypeassert
	}
	f, err := NewBuilder().AppendPattern(pattern).Formatter()
	if err != nil {
		return nil, err
	}
	n, _ := localizedPatterns.LoadOrStore(pattern, f.root)
	return n.(printerParser), nil //nolint:forcetypeassert
}

func (pp *localizedPrinterParser) print(ctx *printContext, buf *strings.Builder) error {
	n, err := pp.node(ctx.symbols)
	if err != nil {
		return err
	}
	return n.print(ctx, buf)
}

func (pp *localizedPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	n, err := pp.node(ctx.symbols)
	if err != nil {
		return ^pos
	}
	return n.parse(ctx, text, pos)
}

func (pp *localizedPrinterParser) String() string {
	var date, time string
	if pp.date != nil {
		date = pp.date.String()
	}
	if pp.time != nil {
		time = pp.time.String()
	}
	return "Localized(" + date + "," + time + ")"
}
