// Package chrono resolves the raw field values collected by a parse into
// consistent dates and times.
//
// Resolution is the second phase of parsing. It operates purely on a
// [Fields] value and never consults the parsed text, so it can be used and
// tested independently of the format package. A [Chronology] supplies the
// calendar-specific rules that combine date fields into a date; [Resolve]
// drives it, merges time-of-day fields, and cross-checks any remaining
// fields against the result.
package chrono

import (
	"errors"
	"fmt"

	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/types"
)

var (
	// ErrResolve wraps errors returned when parsed fields cannot be combined
	// into a consistent value.
	ErrResolve = errors.New("resolve")

	// ErrIncomplete wraps errors returned when a requested value cannot be
	// assembled from the resolved fields.
	ErrIncomplete = fmt.Errorf("%w: incomplete", ErrResolve)

	// ErrChronology wraps errors returned for unknown chronology IDs.
	ErrChronology = errors.New("chronology")
)

// ResolverStyle determines how strictly fields are validated during
// resolution.
type ResolverStyle uint8

const (
	// Strict rejects out-of-range values and cross-checks every parsed field
	// against the resolved date and time.
	Strict ResolverStyle = iota

	// Lenient lets values overflow into the next larger unit, so that month
	// 13 is January of the following year, and skips cross-checks.
	Lenient
)

// String returns the name of the style.
func (s ResolverStyle) String() string {
	if s == Lenient {
		return "Lenient"
	}
	return "Strict"
}

// Chronology is a calendar system.
type Chronology interface {
	// ID returns the identifier of the chronology, such as "ISO".
	ID() string

	// ResolveDate combines the date fields in values into a date. It may add
	// derived fields to values, and returns nil without an error when values
	// holds no complete combination of date fields.
	ResolveDate(values field.Values, style ResolverStyle) (*types.Date, error)

	// Localize returns an Accessor that reports the fields of the ISO value
	// acc in this chronology.
	Localize(acc field.Accessor) field.Accessor
}

// Of returns the Chronology identified by id.
func Of(id string) (Chronology, error) {
	switch id {
	case ISO.ID():
		return ISO, nil
	case ThaiBuddhist.ID():
		return ThaiBuddhist, nil
	}
	return nil, fmt.Errorf("%w: unknown chronology %q", ErrChronology, id)
}

// put records the value v for f derived by rule, failing if values already
// holds a different value for f.
func put(values field.Values, rule string, f field.Field, v int64) error {
	if old, ok := values[f]; ok && old != v {
		return fmt.Errorf(
			"%w: %s derived %v %d, which conflicts with %d",
			ErrResolve, rule, f, v, old,
		)
	}
	values[f] = v
	return nil
}

// check validates the values of fields when style is Strict.
func check(values field.Values, rule string, style ResolverStyle, fields ...field.Field) error {
	if style == Lenient {
		return nil
	}
	for _, f := range fields {
		if v, ok := values[f]; ok {
			if err := f.Check(v); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrResolve, rule, err)
			}
		}
	}
	return nil
}
