package format

import (
	"errors"
	"fmt"
)

var (
	// ErrPattern wraps errors returned for malformed patterns and invalid
	// builder arguments.
	ErrPattern = errors.New("pattern")

	// ErrPrint wraps errors returned while printing.
	ErrPrint = errors.New("print")

	// ErrUnsupportedField wraps errors returned when printing a value that
	// lacks a required field.
	ErrUnsupportedField = fmt.Errorf("%w: unsupported field", ErrPrint)

	// ErrParse wraps errors returned while parsing.
	ErrParse = errors.New("parse")

	// ErrConflict wraps errors returned when text sets the same field twice
	// with different values.
	ErrConflict = fmt.Errorf("%w: conflicting values", ErrParse)

	// ErrUnparsed wraps errors returned when text remains after a
	// successful parse.
	ErrUnparsed = fmt.Errorf("%w: unparsed text", ErrParse)
)

// ParseError reports the position at which parsing failed.
type ParseError struct {
	// Text is the text being parsed.
	Text string

	// Index is the offset in Text at which parsing failed.
	Index int

	// Err is ErrParse, or an error wrapping ErrConflict or ErrUnparsed.
	Err error
}

// Error returns the error message, abbreviating long text.
func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"%v: text %q could not be parsed at index %d",
		e.Err, abbreviate(e.Text), e.Index,
	)
}

// Unwrap returns e.Err.
func (e *ParseError) Unwrap() error { return e.Err }

// abbreviate truncates text longer than 64 bytes.
func abbreviate(text string) string {
	const maxLen = 64
	if len(text) > maxLen {
		return text[:maxLen] + "..."
	}
	return text
}

// ParsePosition tracks the progress of ParseUnresolved through a text.
type ParsePosition struct {
	// Index is the offset at which to start parsing, updated to the offset
	// after the parsed text on success.
	Index int

	// ErrorIndex is the offset at which parsing failed, or -1.
	ErrorIndex int
}

// NewParsePosition returns a ParsePosition starting at index.
func NewParsePosition(index int) *ParsePosition {
	return &ParsePosition{Index: index, ErrorIndex: -1}
}
