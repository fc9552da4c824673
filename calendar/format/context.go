package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/maps"
	"golang.org/x/text/cases"

	"github.com/cquiroz/threetenbp/calendar/chrono"
	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/locale"
	"github.com/cquiroz/threetenbp/calendar/types"
)

// printContext holds the state of a single print call.
type printContext struct {
	value    field.Accessor
	temporal types.Temporal
	symbols  *locale.Symbols
}

// get returns the value of f, or an error wrapping ErrUnsupportedField.
func (ctx *printContext) get(f field.Field) (int64, error) {
	if v, ok := ctx.value.Get(f); ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedField, f)
}

// zone returns the zone ID of the value, or an error wrapping
// ErrUnsupportedField.
func (ctx *printContext) zone() (string, error) {
	if z, ok := ctx.value.(field.ZoneAccessor); ok {
		if id, ok := z.ZoneID(); ok {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: ZoneID", ErrUnsupportedField)
}

// parsed holds the fields recorded in one optional region of a parse.
type parsed struct {
	values   field.Values
	zone     string
	chrono   chrono.Chronology
	conflict error
}

func (p *parsed) clone() *parsed {
	c := *p
	c.values = maps.Clone(p.values)
	return &c
}

// parseContext holds the state of a single parse call. Each optional region
// pushes a copy of the current fields, committed or discarded when the
// region ends.
type parseContext struct {
	symbols       *locale.Symbols
	caseSensitive bool
	strict        bool
	frames        []*parsed
	fold          cases.Caser
}

func newParseContext(symbols *locale.Symbols) *parseContext {
	return &parseContext{
		symbols:       symbols,
		caseSensitive: true,
		strict:        true,
		frames:        []*parsed{{values: field.Values{}}},
		fold:          cases.Fold(),
	}
}

// current returns the fields of the innermost region.
func (ctx *parseContext) current() *parsed {
	return ctx.frames[len(ctx.frames)-1]
}

// startOptional begins an optional region.
func (ctx *parseContext) startOptional() {
	ctx.frames = append(ctx.frames, ctx.current().clone())
}

// endOptional ends the innermost optional region, keeping its fields if
// successful and discarding them otherwise.
func (ctx *parseContext) endOptional(successful bool) {
	n := len(ctx.frames)
	if successful {
		ctx.frames[n-2] = ctx.frames[n-1]
	}
	ctx.frames = ctx.frames[:n-1]
}

// setParsed records value for f and returns successPos. If f already holds a
// different value it records a conflict and returns the complement of
// errorPos.
func (ctx *parseContext) setParsed(f field.Field, value int64, errorPos, successPos int) int {
	cur := ctx.current()
	if old, ok := cur.values[f]; ok && old != value {
		cur.conflict = fmt.Errorf(
			"%w: %v parsed as %d and %d", ErrConflict, f, old, value,
		)
		return ^errorPos
	}
	cur.values[f] = value
	return successPos
}

// setZone records the zone ID.
func (ctx *parseContext) setZone(id string) {
	ctx.current().zone = id
}

// fields returns the fields parsed so far.
func (ctx *parseContext) fields() *chrono.Fields {
	cur := ctx.current()
	return &chrono.Fields{
		Values:     maps.Clone(cur.values),
		Zone:       cur.zone,
		Chronology: cur.chrono,
	}
}

// String returns a representation of the fields parsed so far.
func (ctx *parseContext) String() string {
	return ctx.fields().String()
}

// match reports whether target appears in text at pos, honoring the case
// sensitivity of ctx, and returns the offset after the match.
func (ctx *parseContext) match(text string, pos int, target string) (int, bool) {
	if pos > len(text) {
		return pos, false
	}
	if ctx.caseSensitive {
		if strings.HasPrefix(text[pos:], target) {
			return pos + len(target), true
		}
		return pos, false
	}

	// Fold rune by rune, since folding can change byte lengths.
	want := ctx.fold.String(target)
	end := pos
	for want != "" && end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		got := ctx.fold.String(string(r))
		if !strings.HasPrefix(want, got) {
			return pos, false
		}
		want = want[len(got):]
		end += size
	}
	return end, want == ""
}

// runeEquals compares two runes, honoring the case sensitivity of ctx.
func (ctx *parseContext) runeEquals(a, b rune) bool {
	if ctx.caseSensitive || a == b {
		return a == b
	}
	return ctx.fold.String(string(a)) == ctx.fold.String(string(b))
}
