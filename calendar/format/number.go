package format

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cquiroz/threetenbp/calendar/field"
)

// SignStyle controls how the sign of a number is printed and parsed.
type SignStyle uint8

//revive:disable:exported
const (
	// SignNormal prints a sign only for negative values. Strict parsing
	// accepts only a negative sign; lenient parsing accepts either.
	SignNormal SignStyle = iota

	// SignAlways always prints a sign. Strict parsing requires one.
	SignAlways

	// SignNever never prints a sign, printing the absolute value. Strict
	// parsing rejects any sign.
	SignNever

	// SignNotNegative rejects negative values when printing. Strict parsing
	// rejects any sign.
	SignNotNegative

	// SignExceedsPad prints a positive sign only when the value has more
	// digits than the minimum width. Strict parsing requires the sign
	// exactly when the value exceeds the minimum width.
	SignExceedsPad
)

//revive:enable:exported

// String returns the name of the style.
func (s SignStyle) String() string {
	switch s {
	case SignNormal:
		return "Normal"
	case SignAlways:
		return "Always"
	case SignNever:
		return "Never"
	case SignNotNegative:
		return "NotNegative"
	case SignExceedsPad:
		return "ExceedsPad"
	default:
		return fmt.Sprintf("SignStyle(%d)", uint8(s))
	}
}

// accepts reports whether a sign may be parsed.
func (s SignStyle) accepts(positive, strict, fixedWidth bool) bool {
	switch s {
	case SignNormal:
		return !positive || !strict
	case SignAlways, SignExceedsPad:
		return true
	default:
		return !strict && !fixedWidth
	}
}

// exceedPoints holds the powers of ten up to 10^18.
//
//nolint:gochecknoglobals
var exceedPoints = func() [19]int64 {
	var p [19]int64
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

const maxWidth = 19

// numberPrinterParser prints and parses a field as a decimal number.
//
// When fixed-width numbers follow a variable-width number with no
// separator, subsequentWidth holds their total width so the variable number
// can leave enough digits for them. A subsequentWidth of -1 marks a number
// that must be parsed at its maximum width because a variable-width number
// follows it.
type numberPrinterParser struct {
	field           field.Field
	minWidth        int
	maxWidth        int
	sign            SignStyle
	subsequentWidth int

	// reduced numbers print only the low digits relative to base.
	reduced bool
	base    int64
}

func (pp *numberPrinterParser) withFixedWidth() *numberPrinterParser {
	c := *pp
	c.subsequentWidth = -1
	return &c
}

func (pp *numberPrinterParser) withSubsequentWidth(width int) *numberPrinterParser {
	c := *pp
	c.subsequentWidth += width
	return &c
}

// fixedWidth reports whether the number can only be parsed at its width.
func (pp *numberPrinterParser) fixedWidth(ctx *parseContext) bool {
	if pp.reduced && !ctx.strict {
		return false
	}
	return pp.subsequentWidth == -1 ||
		(pp.subsequentWidth > 0 && pp.minWidth == pp.maxWidth && pp.sign == SignNotNegative)
}

// printValue returns the value to print for v.
func (pp *numberPrinterParser) printValue(v int64) int64 {
	if !pp.reduced {
		return v
	}
	abs := v
	if abs < 0 {
		abs = -abs
	}
	if abs >= pp.base && abs < pp.base+exceedPoints[pp.minWidth] {
		return abs % exceedPoints[pp.minWidth]
	}
	return abs % exceedPoints[pp.maxWidth]
}

func (pp *numberPrinterParser) print(ctx *printContext, buf *strings.Builder) error {
	v, err := ctx.get(pp.field)
	if err != nil {
		return err
	}
	value := pp.printValue(v)

	var str string
	switch {
	case value == math.MinInt64:
		str = "9223372036854775808"
	case value < 0:
		str = strconv.FormatInt(-value, 10)
	default:
		str = strconv.FormatInt(value, 10)
	}
	if len(str) > pp.maxWidth {
		return fmt.Errorf(
			"%w: %v cannot be printed as the value %d exceeds the maximum print width of %d",
			ErrPrint, pp.field, v, pp.maxWidth,
		)
	}

	sym := ctx.symbols
	if value >= 0 {
		switch pp.sign {
		case SignExceedsPad:
			if pp.minWidth < maxWidth && value >= exceedPoints[pp.minWidth] {
				buf.WriteRune(sym.PositiveSign())
			}
		case SignAlways:
			buf.WriteRune(sym.PositiveSign())
		}
	} else {
		switch pp.sign {
		case SignNormal, SignExceedsPad, SignAlways:
			buf.WriteRune(sym.NegativeSign())
		case SignNotNegative:
			return fmt.Errorf(
				"%w: %v cannot be printed as the value %d cannot be negative",
				ErrPrint, pp.field, v,
			)
		}
	}
	for range pp.minWidth - len(str) {
		buf.WriteRune(sym.ZeroDigit())
	}
	buf.WriteString(sym.Localize(str))
	return nil
}

func (pp *numberPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	if pos >= len(text) {
		return ^pos
	}
	sym := ctx.symbols
	signPos := pos
	negative, positive := false, false
	switch r, size := utf8.DecodeRuneInString(text[pos:]); {
	case r == sym.PositiveSign():
		if !pp.sign.accepts(true, ctx.strict, pp.minWidth == pp.maxWidth) {
			return ^pos
		}
		positive = true
		pos += size
	case r == sym.NegativeSign():
		if !pp.sign.accepts(false, ctx.strict, pp.minWidth == pp.maxWidth) {
			return ^pos
		}
		negative = true
		pos += size
	case pp.sign == SignAlways && ctx.strict:
		return ^pos
	}

	effMin := 1
	if ctx.strict || pp.fixedWidth(ctx) {
		effMin = pp.minWidth
	}
	effMax := pp.maxWidth
	if pp.reduced && !ctx.strict {
		effMax = 10
	}
	effMax += max(pp.subsequentWidth, 0)

	var (
		start    = pos
		total    uint64
		overflow bool
		digits   int
	)
	for pass := 0; pass < 2; pass++ {
		for digits < effMax && pos < len(text) {
			r, size := utf8.DecodeRuneInString(text[pos:])
			d := sym.Digit(r)
			if d < 0 {
				break
			}
			hi, lo := bits.Mul64(total, 10)
			lo, carry := bits.Add64(lo, uint64(d), 0)
			if hi != 0 || carry != 0 {
				overflow = true
			}
			total = lo
			pos += size
			digits++
		}
		if digits < effMin {
			return ^start
		}
		if pp.subsequentWidth > 0 && pass == 0 {
			// Leave enough digits for the adjacent fixed-width numbers.
			effMax = max(effMin, digits-pp.subsequentWidth)
			pos, total, overflow, digits = start, 0, false, 0
			continue
		}
		break
	}

	if overflow || (negative && total > 1<<63) || (!negative && total > math.MaxInt64) {
		return ^start
	}
	var value int64
	if negative {
		if total == 0 && ctx.strict {
			return ^signPos
		}
		value = int64(-total)
	} else {
		if pp.sign == SignExceedsPad && ctx.strict {
			if positive && digits <= pp.minWidth {
				return ^signPos
			}
			if !positive && digits > pp.minWidth {
				return ^start
			}
		}
		value = int64(total)
	}
	return pp.setValue(ctx, value, digits, start, pos)
}

// setValue records a parsed value, expanding a reduced value parsed at its
// minimum width relative to base.
func (pp *numberPrinterParser) setValue(ctx *parseContext, value int64, digits, errorPos, successPos int) int {
	if pp.reduced && digits == pp.minWidth && value >= 0 {
		rng := exceedPoints[pp.minWidth]
		basePart := pp.base - pp.base%rng
		if pp.base > 0 {
			value = basePart + value
		} else {
			value = basePart - value
		}
		if value < pp.base {
			value += rng
		}
	}
	return ctx.setParsed(pp.field, value, errorPos, successPos)
}

func (pp *numberPrinterParser) String() string {
	switch {
	case pp.reduced:
		return fmt.Sprintf("ReducedValue(%v,%d,%d)", pp.field, pp.minWidth, pp.base)
	case pp.minWidth == 1 && pp.maxWidth == maxWidth && pp.sign == SignNormal:
		return fmt.Sprintf("Value(%v)", pp.field)
	case pp.minWidth == pp.maxWidth && pp.sign == SignNotNegative:
		return fmt.Sprintf("Value(%v,%d)", pp.field, pp.minWidth)
	default:
		return fmt.Sprintf("Value(%v,%d,%d,%v)", pp.field, pp.minWidth, pp.maxWidth, pp.sign)
	}
}

// fractionPrinterParser prints and parses a field as a decimal fraction of
// its range. The field's range must run from zero to a power of ten less
// one.
type fractionPrinterParser struct {
	field        field.Field
	minWidth     int
	maxWidth     int
	decimalPoint bool
}

// scale returns the number of digits in the field's range.
func (pp *fractionPrinterParser) scale() int {
	return len(strconv.FormatInt(pp.field.Range().Max, 10))
}

func (pp *fractionPrinterParser) print(ctx *printContext, buf *strings.Builder) error {
	value, err := ctx.get(pp.field)
	if err != nil {
		return err
	}
	if err := pp.field.Check(value); err != nil {
		return fmt.Errorf("%w: %w", ErrPrint, err)
	}
	digits := strings.TrimRight(fmt.Sprintf("%0*d", pp.scale(), value), "0")
	if len(digits) < pp.minWidth {
		digits += strings.Repeat("0", pp.minWidth-len(digits))
	}
	if len(digits) > pp.maxWidth {
		digits = digits[:pp.maxWidth]
	}
	if digits == "" {
		return nil
	}
	if pp.decimalPoint {
		buf.WriteRune(ctx.symbols.DecimalSeparator())
	}
	buf.WriteString(ctx.symbols.Localize(digits))
	return nil
}

func (pp *fractionPrinterParser) parse(ctx *parseContext, text string, pos int) int {
	scale := pp.scale()
	effMin, effMax := 0, scale
	if ctx.strict {
		effMin, effMax = pp.minWidth, pp.maxWidth
	}
	if pos >= len(text) {
		if effMin > 0 {
			return ^pos
		}
		return pos
	}
	sym := ctx.symbols
	if pp.decimalPoint {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if r != sym.DecimalSeparator() {
			if effMin > 0 {
				return ^pos
			}
			return pos
		}
		pos += size
	}

	start := pos
	var value int64
	digits := 0
	for digits < effMax && pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		d := sym.Digit(r)
		if d < 0 {
			break
		}
		value = value*10 + int64(d)
		pos += size
		digits++
	}
	if digits < effMin {
		return ^start
	}
	value *= exceedPoints[scale-digits]
	return ctx.setParsed(pp.field, value, start, pos)
}

func (pp *fractionPrinterParser) String() string {
	if pp.decimalPoint {
		return fmt.Sprintf("Fraction(%v,%d,%d,DecimalPoint)", pp.field, pp.minWidth, pp.maxWidth)
	}
	return fmt.Sprintf("Fraction(%v,%d,%d)", pp.field, pp.minWidth, pp.maxWidth)
}
