package types

import (
	"fmt"
	"strings"
	"sync"
	"time"

	// Embed the zone database so region IDs resolve on every platform.
	_ "time/tzdata"

	"github.com/cquiroz/threetenbp/calendar/field"
)

// ZoneOffset is a fixed offset from UTC in seconds, between -18:00 and
// +18:00.
type ZoneOffset int32

// UTC is the zero offset.
const UTC ZoneOffset = 0

// OffsetOfSeconds returns the ZoneOffset for secs. Returns an error if secs
// is beyond ±18 hours.
func OffsetOfSeconds(secs int) (ZoneOffset, error) {
	if err := field.OffsetSeconds.Check(int64(secs)); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrType, err)
	}
	return ZoneOffset(secs), nil
}

// OffsetOf returns the ZoneOffset for hours, minutes, and seconds, which
// must share the same sign.
func OffsetOf(hours, minutes, seconds int) (ZoneOffset, error) {
	if (hours > 0 && (minutes < 0 || seconds < 0)) ||
		(hours < 0 && (minutes > 0 || seconds > 0)) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		return 0, fmt.Errorf(
			"%w: offset hours, minutes, and seconds must have the same sign: %d, %d, %d",
			ErrType, hours, minutes, seconds,
		)
	}
	if minutes < -59 || minutes > 59 || seconds < -59 || seconds > 59 {
		return 0, fmt.Errorf(
			"%w: offset minutes and seconds must be between -59 and 59: %d, %d",
			ErrType, minutes, seconds,
		)
	}
	return OffsetOfSeconds(hours*secondsPerHour + minutes*secondsPerMinute + seconds)
}

// offsetOf returns the offset of t.
func offsetOf(t time.Time) ZoneOffset {
	_, off := t.Zone()
	return ZoneOffset(off)
}

// Seconds returns the total offset in seconds.
func (o ZoneOffset) Seconds() int { return int(o) }

// Get returns the OffsetSeconds field.
func (o ZoneOffset) Get(f field.Field) (int64, bool) {
	if f == field.OffsetSeconds {
		return int64(o), true
	}
	return 0, false
}

// ID returns the normalized offset ID: "Z" for UTC, otherwise "+hh:mm" or
// "+hh:mm:ss".
func (o ZoneOffset) ID() string {
	if o == 0 {
		return "Z"
	}
	total := int(o)
	abs := total
	var buf strings.Builder
	if total < 0 {
		abs = -total
		buf.WriteByte('-')
	} else {
		buf.WriteByte('+')
	}
	pad(&buf, abs/secondsPerHour, 2)
	buf.WriteByte(':')
	pad(&buf, abs/secondsPerMinute%60, 2)
	if secs := abs % 60; secs != 0 {
		buf.WriteByte(':')
		pad(&buf, secs, 2)
	}
	return buf.String()
}

// String returns the ID of o.
func (o ZoneOffset) String() string { return o.ID() }

// Location returns an offset-only time.Location for o.
func (o ZoneOffset) Location() *time.Location {
	if o == 0 {
		return offsetZero
	}
	return time.FixedZone("", int(o))
}

// offsetOnlyTimeFor returns t if its time zone is offset-only or a new
// offset-only time.Time with the offset of t's zone.
func offsetOnlyTimeFor(t time.Time) time.Time {
	if name, off := t.Zone(); name != "" {
		return t.In(time.FixedZone("", off))
	}
	return t
}

//nolint:gochecknoglobals
var (
	// offsetZero represents time zone offset zero.
	offsetZero = time.FixedZone("", 0)

	// zones caches loaded zone regions by ID.
	zones sync.Map
)

// LoadZone returns the time.Location for the zone region id, such as
// "Europe/Paris". Returns an error if id is empty or unknown.
func LoadZone(id string) (*time.Location, error) {
	if loc, ok := zones.Load(id); ok {
		return loc.(*time.Location), nil //nolint:forcetypeassert
	}
	// time.LoadLocation treats "" as UTC and "Local" as the host zone.
	if id == "" || id == "Local" {
		return nil, fmt.Errorf("%w: unknown time zone %q", ErrType, id)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown time zone %q", ErrType, id)
	}
	zones.Store(id, loc)
	return loc, nil
}

// ParseOffsetID parses an offset ID in the form returned by ZoneOffset.ID:
// "Z", "+hh:mm", or "+hh:mm:ss".
func ParseOffsetID(id string) (ZoneOffset, error) {
	if id == "Z" {
		return UTC, nil
	}
	if (len(id) != 6 && len(id) != 9) || (id[0] != '+' && id[0] != '-') ||
		id[3] != ':' || (len(id) == 9 && id[6] != ':') {
		return 0, fmt.Errorf("%w: invalid offset ID %q", ErrType, id)
	}
	var parts [3]int
	for i := range len(id) / 3 {
		hi, lo := id[i*3+1], id[i*3+2]
		if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
			return 0, fmt.Errorf("%w: invalid offset ID %q", ErrType, id)
		}
		parts[i] = int(hi-'0')*10 + int(lo-'0')
	}
	if id[0] == '-' {
		return OffsetOf(-parts[0], -parts[1], -parts[2])
	}
	return OffsetOf(parts[0], parts[1], parts[2])
}

// ZoneLocation returns the time.Location for a zone region ID or an offset
// ID.
func ZoneLocation(id string) (*time.Location, error) {
	if off, err := ParseOffsetID(id); err == nil {
		return off.Location(), nil
	}
	return LoadZone(id)
}
