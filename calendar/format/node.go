package format

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// printerParser is a node of a formatter. Nodes are immutable once the
// formatter is built.
//
// print appends the text for ctx's value to buf. parse consumes text at pos
// and returns the position after the consumed text, or the complement (^) of
// the position at which parsing failed.
type printerParser interface {
	print(ctx *printContext, buf *strings.Builder) error
	parse(ctx *parseContext, text string, pos int) int
	fmt.Stringer
}

// literalPrinterParser prints and parses fixed text.
type literalPrinterParser string

func (pp literalPrinterParser) print(_ *printContext, buf *strings.Builder) error {
	buf.WriteString(string(pp))
	return nil
}

func (pp literalPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	if pos > len(text) {
		return ^pos
	}
	end, ok := ctx.match(text, pos, string(pp))
	if !ok {
		return ^pos
	}
	return end
}

func (pp literalPrinterParser) String() string {
	if pp == "'" {
		return "''"
	}
	return "'" + strings.ReplaceAll(string(pp), "'", "''") + "'"
}

// compositePrinterParser applies a sequence of nodes. An optional composite
// prints nothing when its value lacks a field, and parses nothing when its
// text does not match.
type compositePrinterParser struct {
	nodes    []printerParser
	optional bool
}

func (pp *compositePrinterParser) withOptional(optional bool) *compositePrinterParser {
	if pp.optional == optional {
		return pp
	}
	return &compositePrinterParser{nodes: pp.nodes, optional: optional}
}

func (pp *compositePrinterParser) print(ctx *printContext, buf *strings.Builder) error {
	if !pp.optional {
		for _, n := range pp.nodes {
			if err := n.print(ctx, buf); err != nil {
				return err
			}
		}
		return nil
	}

	var tmp strings.Builder
	for _, n := range pp.nodes {
		if err := n.print(ctx, &tmp); err != nil {
			if errors.Is(err, ErrUnsupportedField) {
				return nil
			}
			return err
		}
	}
	buf.WriteString(tmp.String())
	return nil
}

func (pp *compositePrinterParser) parse(ctx *parseContext, text string, pos int) int {
	if !pp.optional {
		for _, n := range pp.nodes {
			if pos = n.parse(ctx, text, pos); pos < 0 {
				break
			}
		}
		return pos
	}

	ctx.startOptional()
	start := pos
	for _, n := range pp.nodes {
		if pos = n.parse(ctx, text, pos); pos < 0 {
			ctx.endOptional(false)
			return start
		}
	}
	ctx.endOptional(true)
	return pos
}

func (pp *compositePrinterParser) String() string {
	var buf strings.Builder
	open, closing := "(", ")"
	if pp.optional {
		open, closing = "[", "]"
	}
	buf.WriteString(open)
	for _, n := range pp.nodes {
		buf.WriteString(n.String())
	}
	buf.WriteString(closing)
	return buf.String()
}

// settingsParser changes the case sensitivity or strictness of the rest of
// a parse. It prints nothing.
type settingsParser uint8

const (
	caseSensitive settingsParser = iota
	caseInsensitive
	strict
	lenient
)

func (pp settingsParser) print(*printContext, *strings.Builder) error { return nil }

func (pp settingsParser) parse(ctx *parseContext, _ string, pos int) int {
	switch pp {
	case caseSensitive:
		ctx.caseSensitive = true
	case caseInsensitive:
		ctx.caseSensitive = false
	case strict:
		ctx.strict = true
	case lenient:
		ctx.strict = false
	}
	return pos
}

func (pp settingsParser) String() string {
	switch pp {
	case caseSensitive:
		return "ParseCaseSensitive(true)"
	case caseInsensitive:
		return "ParseCaseSensitive(false)"
	case strict:
		return "ParseStrict(true)"
	default:
		return "ParseStrict(false)"
	}
}

// padPrinterParser pads the output of another node to a fixed width with a
// leading pad character.
type padPrinterParser struct {
	node    printerParser
	width   int
	padChar rune
}

func (pp *padPrinterParser) print(ctx *printContext, buf *strings.Builder) error {
	var tmp strings.Builder
	if err := pp.node.print(ctx, &tmp); err != nil {
		return err
	}
	n := utf8.RuneCountInString(tmp.String())
	if n > pp.width {
		return fmt.Errorf(
			"%w: cannot print as output of %d characters exceeds pad width of %d",
			ErrPrint, n, pp.width,
		)
	}
	for range pp.width - n {
		buf.WriteRune(pp.padChar)
	}
	buf.WriteString(tmp.String())
	return nil
}

func (pp *padPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	if pos >= len(text) {
		return ^pos
	}

	// Find the end of the padded region, in runes.
	end := pos
	for i := 0; i < pp.width && end < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	if ctx.strict && end == len(text) && utf8.RuneCountInString(text[pos:]) < pp.width {
		return ^pos
	}

	start := pos
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:])
		if !ctx.runeEquals(r, pp.padChar) {
			break
		}
		start += size
	}
	result := pp.node.parse(ctx, text[:end], start)
	if result != end && ctx.strict {
		return ^start
	}
	return result
}

func (pp *padPrinterParser) String() string {
	if pp.padChar == ' ' {
		return fmt.Sprintf("Pad(%v,%d)", pp.node, pp.width)
	}
	return fmt.Sprintf("Pad(%v,%d,'%c')", pp.node, pp.width, pp.padChar)
}
