package format

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/types"
)

// offsetPatterns lists the offset layouts accepted by Builder.AppendOffset.
//
//nolint:gochecknoglobals
var offsetPatterns = []string{
	"+HH", "+HHmm", "+HH:mm", "+HHMM", "+HH:MM",
	"+HHMMss", "+HH:MM:ss", "+HHMMSS", "+HH:MM:SS",
}

// offsetPrinterParser prints and parses a zone offset in one of
// offsetPatterns, with noOffsetText standing for a zero offset.
type offsetPrinterParser struct {
	kind         int
	noOffsetText string
}

func newOffsetPrinterParser(pattern, noOffsetText string) (*offsetPrinterParser, error) {
	kind := slices.Index(offsetPatterns, pattern)
	if kind < 0 {
		return nil, fmt.Errorf("%w: invalid offset pattern %q", ErrPattern, pattern)
	}
	return &offsetPrinterParser{kind: kind, noOffsetText: noOffsetText}, nil
}

// colons reports whether the layout separates its parts with colons.
func (pp *offsetPrinterParser) colons() bool {
	return pp.kind%2 == 0
}

func (pp *offsetPrinterParser) print(ctx *printContext, buf *strings.Builder) error {
	secs, err := ctx.get(field.OffsetSeconds)
	if err != nil {
		return err
	}
	if secs == 0 {
		buf.WriteString(pp.noOffsetText)
		return nil
	}

	abs := secs
	if abs < 0 {
		abs = -abs
	}
	hours := abs / 3600
	minutes := abs / 60 % 60
	seconds := abs % 60
	mark := buf.Len()
	output := hours
	if secs < 0 {
		buf.WriteByte('-')
	} else {
		buf.WriteByte('+')
	}
	fmt.Fprintf(buf, "%02d", hours)
	if pp.kind >= 3 || (pp.kind >= 1 && minutes > 0) {
		if pp.colons() {
			buf.WriteByte(':')
		}
		fmt.Fprintf(buf, "%02d", minutes)
		output += minutes
		if pp.kind >= 7 || (pp.kind >= 5 && seconds > 0) {
			if pp.colons() {
				buf.WriteByte(':')
			}
			fmt.Fprintf(buf, "%02d", seconds)
			output += seconds
		}
	}
	if output == 0 {
		// The visible parts are all zero, so print the zero text instead.
		tail := buf.String()[:mark]
		buf.Reset()
		buf.WriteString(tail)
		buf.WriteString(pp.noOffsetText)
	}
	return nil
}

func (pp *offsetPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	if pos > len(text) {
		return ^pos
	}
	if pp.noOffsetText == "" {
		if pos == len(text) {
			return ctx.setParsed(field.OffsetSeconds, 0, pos, pos)
		}
	} else {
		if pos >= len(text) {
			return ^pos
		}
		if end, ok := ctx.match(text, pos, pp.noOffsetText); ok {
			return ctx.setParsed(field.OffsetSeconds, 0, pos, end)
		}
	}

	if sign := text[pos]; sign == '+' || sign == '-' {
		// parts holds the end position followed by the hours, minutes, and
		// seconds.
		parts := [4]int{pos + 1}
		if !pp.parseNumber(&parts, 1, text, true) &&
			!pp.parseNumber(&parts, 2, text, pp.kind >= 3) &&
			!pp.parseNumber(&parts, 3, text, false) {
			secs := int64(parts[1]*3600 + parts[2]*60 + parts[3])
			if sign == '-' {
				secs = -secs
			}
			return ctx.setParsed(field.OffsetSeconds, secs, pos, parts[0])
		}
	}
	if pp.noOffsetText == "" {
		return ctx.setParsed(field.OffsetSeconds, 0, pos, pos)
	}
	return ^pos
}

// parseNumber parses the two-digit part idx of the offset at parts[0]. It
// reports whether parsing failed, which is only the case for a missing
// required part.
func (pp *offsetPrinterParser) parseNumber(parts *[4]int, idx int, text string, required bool) bool {
	if (pp.kind+3)/2 < idx {
		return false
	}
	pos := parts[0]
	if pp.colons() && idx > 1 {
		if pos+1 > len(text) || text[pos] != ':' {
			return required
		}
		pos++
	}
	if pos+2 > len(text) {
		return required
	}
	c1, c2 := text[pos], text[pos+1]
	if c1 < '0' || c1 > '9' || c2 < '0' || c2 > '9' {
		return required
	}
	v := int(c1-'0')*10 + int(c2-'0')
	if v > 59 {
		return required
	}
	parts[idx] = v
	parts[0] = pos + 2
	return false
}

func (pp *offsetPrinterParser) String() string {
	return fmt.Sprintf(
		"Offset(%s,'%s')",
		offsetPatterns[pp.kind], strings.ReplaceAll(pp.noOffsetText, "'", "''"),
	)
}

// zoneIDPrinterParser prints and parses a zone ID, either a region such as
// "Europe/Paris" or an offset. A region-only node does not print offsets.
type zoneIDPrinterParser struct {
	regionOnly bool
}

func (pp *zoneIDPrinterParser) print(ctx *printContext, buf *strings.Builder) error {
	id, err := ctx.zone()
	if err != nil {
		return err
	}
	if pp.regionOnly {
		if _, err := types.ParseOffsetID(id); err == nil {
			return fmt.Errorf("%w: zone region for offset %v", ErrUnsupportedField, id)
		}
	}
	buf.WriteString(id)
	return nil
}

func (pp *zoneIDPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	return parseZoneID(ctx, text, pos)
}

func (pp *zoneIDPrinterParser) String() string {
	if pp.regionOnly {
		return "ZoneRegionId()"
	}
	return "ZoneId()"
}

// zoneOffsetID parses the offset of an offset-based zone ID.
//
//nolint:gochecknoglobals
var zoneOffsetID = &offsetPrinterParser{kind: 6, noOffsetText: "Z"}

// parseZoneID parses the longest valid zone ID at pos and records it.
func parseZoneID(ctx *parseContext, text string, pos int) int {
	if pos >= len(text) {
		return ^pos
	}
	if c := text[pos]; c == '+' || c == '-' {
		sub := newParseContext(ctx.symbols)
		end := zoneOffsetID.parse(sub, text, pos)
		if end < 0 {
			return end
		}
		off, err := types.OffsetOfSeconds(int(sub.current().values[field.OffsetSeconds]))
		if err != nil {
			return ^pos
		}
		ctx.setZone(off.ID())
		return end
	}

	end := pos
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !xid.Continue(r) && !strings.ContainsRune("/+-~.", r) {
			break
		}
		end += size
	}
	for end > pos {
		id := text[pos:end]
		if _, err := types.ZoneLocation(id); err == nil {
			ctx.setZone(id)
			return end
		}
		_, size := utf8.DecodeLastRuneInString(id)
		end -= size
	}
	return ^pos
}

// zoneTextPrinterParser prints the zone abbreviation, or the region ID in
// the full style. It parses any zone ID.
type zoneTextPrinterParser struct {
	style field.TextStyle
}

func (pp *zoneTextPrinterParser) print(ctx *printContext, buf *strings.Builder) error {
	id, err := ctx.zone()
	if err != nil {
		return err
	}
	if ctx.temporal != nil && pp.style != field.Full {
		// Local values carry a placeholder location.
		if _, ok := ctx.temporal.Get(field.OffsetSeconds); ok {
			if name, _ := ctx.temporal.GoTime().Zone(); name != "" {
				id = name
			}
		}
	}
	buf.WriteString(id)
	return nil
}

func (pp *zoneTextPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	return parseZoneID(ctx, text, pos)
}

func (pp *zoneTextPrinterParser) String() string {
	return fmt.Sprintf("ZoneText(%v)", pp.style)
}
