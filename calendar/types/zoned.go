package types

import (
	"strings"
	"time"

	"github.com/cquiroz/threetenbp/calendar/field"
)

// OffsetDateTime represents a date and time with a fixed offset from UTC,
// such as 2008-06-30T10:15:30+01:00.
type OffsetDateTime struct {
	time.Time
}

// NewOffsetDateTime coerces src into an OffsetDateTime with the offset of
// src's location at that instant.
func NewOffsetDateTime(src time.Time) *OffsetDateTime {
	return &OffsetDateTime{offsetOnlyTimeFor(src)}
}

// GoTime returns the underlying time.Time object.
func (odt *OffsetDateTime) GoTime() time.Time { return odt.Time }

// Offset returns the offset of odt.
func (odt *OffsetDateTime) Offset() ZoneOffset { return offsetOf(odt.Time) }

// Get returns the value of the date, time, or offset field f.
func (odt *OffsetDateTime) Get(f field.Field) (int64, bool) {
	return instantField(odt.Time, f)
}

// DateTime returns odt without its offset.
func (odt *OffsetDateTime) DateTime() *DateTime { return NewDateTime(odt.Time) }

// AtZone returns the ZonedDateTime at the same instant in loc.
func (odt *OffsetDateTime) AtZone(loc *time.Location) *ZonedDateTime {
	return &ZonedDateTime{odt.In(loc)}
}

// String returns the ISO representation of odt, such as
// "2008-06-30T10:15:30+01:00".
func (odt *OffsetDateTime) String() string {
	var buf strings.Builder
	appendDate(&buf, odt.Time)
	buf.WriteByte('T')
	appendTime(&buf, odt.Time)
	buf.WriteString(odt.Offset().ID())
	return buf.String()
}

// Compare compares the instant of odt with u. If odt is before u, it returns
// -1; if odt is after u, it returns +1; if they're the same, it returns 0.
func (odt *OffsetDateTime) Compare(u *OffsetDateTime) int {
	return odt.Time.Compare(u.Time)
}

// ZonedDateTime represents a date and time in a time zone region, such as
// 2008-06-30T10:15:30+02:00[Europe/Paris].
type ZonedDateTime struct {
	time.Time
}

// NewZonedDateTime coerces src into a ZonedDateTime in the location of src.
func NewZonedDateTime(src time.Time) *ZonedDateTime {
	return &ZonedDateTime{src}
}

// GoTime returns the underlying time.Time object.
func (zdt *ZonedDateTime) GoTime() time.Time { return zdt.Time }

// Offset returns the offset in effect at zdt.
func (zdt *ZonedDateTime) Offset() ZoneOffset { return offsetOf(zdt.Time) }

// Get returns the value of the date, time, or offset field f.
func (zdt *ZonedDateTime) Get(f field.Field) (int64, bool) {
	return instantField(zdt.Time, f)
}

// ZoneID returns the zone region ID of zdt, or the offset ID if the location
// is offset-only.
func (zdt *ZonedDateTime) ZoneID() (string, bool) {
	if name := zdt.Location().String(); name != "" {
		return name, true
	}
	return zdt.Offset().ID(), true
}

// OffsetDateTime returns zdt at its current offset.
func (zdt *ZonedDateTime) OffsetDateTime() *OffsetDateTime {
	return NewOffsetDateTime(zdt.Time)
}

// String returns the ISO representation of zdt, with the region ID in
// brackets when the location is not offset-only.
func (zdt *ZonedDateTime) String() string {
	var buf strings.Builder
	appendDate(&buf, zdt.Time)
	buf.WriteByte('T')
	appendTime(&buf, zdt.Time)
	buf.WriteString(zdt.Offset().ID())
	if name := zdt.Location().String(); name != "" {
		buf.WriteByte('[')
		buf.WriteString(name)
		buf.WriteByte(']')
	}
	return buf.String()
}

// Compare compares the instant of zdt with u. If zdt is before u, it returns
// -1; if zdt is after u, it returns +1; if they're the same, it returns 0.
func (zdt *ZonedDateTime) Compare(u *ZonedDateTime) int {
	return zdt.Time.Compare(u.Time)
}

func instantField(t time.Time, f field.Field) (int64, bool) {
	if f == field.OffsetSeconds {
		return int64(offsetOf(t)), true
	}
	if v, ok := dateField(t, f); ok {
		return v, true
	}
	return timeField(t, f)
}
