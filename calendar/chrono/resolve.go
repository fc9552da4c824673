package chrono

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/maps"

	"github.com/cquiroz/threetenbp/calendar/field"
	"github.com/cquiroz/threetenbp/calendar/types"
)

// Fields is the raw result of parsing text: the field values, plus any zone
// and chronology captured from the text or supplied as overrides.
type Fields struct {
	// Values holds the raw field values. An offset is recorded as
	// field.OffsetSeconds.
	Values field.Values

	// Zone holds the zone region or offset ID, or "" when none was parsed.
	Zone string

	// Chronology holds the chronology to resolve with, or nil for ISO.
	Chronology Chronology
}

// Get returns the raw value of f.
func (fs *Fields) Get(f field.Field) (int64, bool) {
	return fs.Values.Get(f)
}

// ZoneID returns the zone ID, if any.
func (fs *Fields) ZoneID() (string, bool) {
	return fs.Zone, fs.Zone != ""
}

// String returns a deterministic representation of fs, listing the fields
// ordered by ID followed by the zone and offset, such as
// "{ISO.MonthOfYear=6, ISO.Year=2008, ISO.TimeZone=Europe/Paris, ISO.ZoneOffset=+01:00}".
func (fs *Fields) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	sep := func() {
		if buf.Len() > 1 {
			buf.WriteString(", ")
		}
	}
	for _, f := range fs.Values.Fields() {
		if f == field.OffsetSeconds {
			continue
		}
		sep()
		fmt.Fprintf(&buf, "%v=%d", f.ID(), fs.Values[f])
	}
	if fs.Zone != "" {
		sep()
		buf.WriteString("ISO.TimeZone=")
		buf.WriteString(fs.Zone)
	}
	if off, ok := fs.Values[field.OffsetSeconds]; ok {
		sep()
		buf.WriteString(field.OffsetSeconds.ID())
		buf.WriteByte('=')
		buf.WriteString(types.ZoneOffset(off).ID())
	}
	buf.WriteByte('}')
	return buf.String()
}

// Resolved is the result of resolving Fields.
type Resolved struct {
	// Fields holds the parsed values merged with any values derived from
	// them.
	Fields field.Values

	// Chronology is the chronology the fields were resolved with.
	Chronology Chronology

	// Date is the resolved date, or nil if the fields held no complete
	// date.
	Date *types.Date

	// Time is the resolved time of day, or nil if no hour was parsed.
	Time *types.Time

	// Offset is the parsed offset, or nil if none was parsed.
	Offset *types.ZoneOffset

	// Zone is the parsed zone ID, or "".
	Zone string
}

// Resolve combines fs into a Resolved value. It fails if the fields
// contradict each other. fs is not modified.
func Resolve(fs *Fields, style ResolverStyle) (*Resolved, error) {
	chrono := fs.Chronology
	if chrono == nil {
		chrono = ISO
	}
	res := &Resolved{
		Fields:     maps.Clone(fs.Values),
		Chronology: chrono,
		Zone:       fs.Zone,
	}
	if res.Fields == nil {
		res.Fields = field.Values{}
	}

	if err := resolveTime(res.Fields, style); err != nil {
		return nil, err
	}
	date, err := chrono.ResolveDate(res.Fields, style)
	if err != nil {
		return nil, err
	}
	res.Date = date
	if res.Time, err = buildTime(res.Fields, style); err != nil {
		return nil, err
	}
	if off, ok := res.Fields[field.OffsetSeconds]; ok {
		o, err := types.OffsetOfSeconds(int(off))
		if err != nil {
			return nil, fmt.Errorf("%w: offset: %w", ErrResolve, err)
		}
		res.Offset = &o
	}
	if style != Lenient {
		if err := res.crossCheck(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// resolveTime merges the alternate hour fields and the day-based fields
// into HourOfDay, MinuteOfHour, SecondOfMinute, and NanoOfSecond.
func resolveTime(values field.Values, style ResolverStyle) error {
	if v, ok := values[field.ClockHourOfDay]; ok {
		if err := check(values, "clock-hour-of-day", style, field.ClockHourOfDay); err != nil {
			return err
		}
		if err := put(values, "clock-hour-of-day", field.HourOfDay, v%24); err != nil {
			return err
		}
	}
	if v, ok := values[field.ClockHourOfAmPm]; ok {
		if err := check(values, "clock-hour-of-am-pm", style, field.ClockHourOfAmPm); err != nil {
			return err
		}
		if err := put(values, "clock-hour-of-am-pm", field.HourOfAmPm, v%12); err != nil {
			return err
		}
	}
	if ap, ok := values[field.AmPmOfDay]; ok {
		if h, ok := values[field.HourOfAmPm]; ok {
			if err := check(values, "am-pm", style, field.AmPmOfDay, field.HourOfAmPm); err != nil {
				return err
			}
			if err := put(values, "am-pm", field.HourOfDay, ap*12+h); err != nil {
				return err
			}
		}
	}

	for _, split := range []struct {
		rule string
		f    field.Field
		unit int64
	}{
		{"nano-of-day", field.NanoOfDay, 1},
		{"milli-of-day", field.MilliOfDay, int64(time.Millisecond)},
	} {
		v, ok := values[split.f]
		if !ok {
			continue
		}
		if err := check(values, split.rule, style, split.f); err != nil {
			return err
		}
		nanos := v * split.unit
		for _, part := range []struct {
			f   field.Field
			val int64
		}{
			{field.HourOfDay, nanos / int64(time.Hour)},
			{field.MinuteOfHour, nanos / int64(time.Minute) % 60},
			{field.SecondOfMinute, nanos / int64(time.Second) % 60},
			{field.NanoOfSecond, nanos % int64(time.Second)},
		} {
			if err := put(values, split.rule, part.f, part.val); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildTime returns the time of day from values, or nil if values holds no
// HourOfDay. Missing smaller units default to zero.
func buildTime(values field.Values, style ResolverStyle) (*types.Time, error) {
	hour, ok := values[field.HourOfDay]
	if !ok {
		return nil, nil //nolint:nilnil
	}
	minute := values[field.MinuteOfHour]
	second := values[field.SecondOfMinute]
	nano := values[field.NanoOfSecond]
	if style == Lenient {
		return types.NewTime(time.Date(
			0, 1, 1, int(hour), int(minute), int(second), int(nano), time.UTC,
		)), nil
	}
	t, err := types.TimeOf(int(hour), int(minute), int(second), int(nano))
	if err != nil {
		return nil, fmt.Errorf("%w: hour-minute-second: %w", ErrResolve, err)
	}
	return t, nil
}

// crossCheck verifies that every parsed date and time field agrees with the
// resolved date and time.
func (res *Resolved) crossCheck() error {
	for _, f := range res.Fields.Fields() {
		var src field.Accessor
		switch {
		case f.IsDate() && res.Date != nil:
			src = res.Chronology.Localize(res.Date)
		case f.IsTime() && res.Time != nil:
			src = res.Time
		default:
			continue
		}
		if v, ok := src.Get(f); ok && v != res.Fields[f] {
			return fmt.Errorf(
				"%w: parsed %v %d conflicts with resolved value %d",
				ErrResolve, f, res.Fields[f], v,
			)
		}
	}
	return nil
}

// Get returns the value of f from the resolved date, time, or offset, or
// from the merged fields.
func (res *Resolved) Get(f field.Field) (int64, bool) {
	if res.Date != nil && f.IsDate() {
		if v, ok := res.Chronology.Localize(res.Date).Get(f); ok {
			return v, true
		}
	}
	if res.Time != nil && f.IsTime() {
		if v, ok := res.Time.Get(f); ok {
			return v, true
		}
	}
	if res.Offset != nil && f == field.OffsetSeconds {
		return int64(*res.Offset), true
	}
	return res.Fields.Get(f)
}

// ZoneID returns the parsed zone ID, if any.
func (res *Resolved) ZoneID() (string, bool) {
	return res.Zone, res.Zone != ""
}

// LocalDate returns the resolved date.
func (res *Resolved) LocalDate() (*types.Date, error) {
	if res.Date == nil {
		return nil, fmt.Errorf("%w: unable to obtain a date from %v", ErrIncomplete, res.Fields)
	}
	return res.Date, nil
}

// LocalTime returns the resolved time of day.
func (res *Resolved) LocalTime() (*types.Time, error) {
	if res.Time == nil {
		return nil, fmt.Errorf("%w: unable to obtain a time from %v", ErrIncomplete, res.Fields)
	}
	return res.Time, nil
}

// LocalDateTime returns the resolved date and time.
func (res *Resolved) LocalDateTime() (*types.DateTime, error) {
	d, err := res.LocalDate()
	if err != nil {
		return nil, err
	}
	t, err := res.LocalTime()
	if err != nil {
		return nil, err
	}
	return d.AtTime(t), nil
}

// OffsetDateTime returns the resolved date and time at the resolved offset.
func (res *Resolved) OffsetDateTime() (*types.OffsetDateTime, error) {
	dt, err := res.LocalDateTime()
	if err != nil {
		return nil, err
	}
	if res.Offset == nil {
		return nil, fmt.Errorf("%w: unable to obtain an offset from %v", ErrIncomplete, res.Fields)
	}
	return dt.AtOffset(*res.Offset), nil
}

// ZonedDateTime returns the resolved date and time in the resolved zone. A
// parsed offset selects the instant when present; otherwise the local date
// and time are interpreted in the zone. Without a zone, the offset serves as
// the zone.
func (res *Resolved) ZonedDateTime() (*types.ZonedDateTime, error) {
	dt, err := res.LocalDateTime()
	if err != nil {
		return nil, err
	}
	if res.Zone == "" {
		if res.Offset == nil {
			return nil, fmt.Errorf("%w: unable to obtain a zone from %v", ErrIncomplete, res.Fields)
		}
		return types.NewZonedDateTime(dt.AtOffset(*res.Offset).Time), nil
	}
	loc, err := types.ZoneLocation(res.Zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolve, err)
	}
	if res.Offset != nil {
		return dt.AtOffset(*res.Offset).AtZone(loc), nil
	}
	t := dt.Time
	return types.NewZonedDateTime(time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc,
	)), nil
}

// YearMonth returns the resolved year and month, which need not include a
// day.
func (res *Resolved) YearMonth() (types.YearMonth, error) {
	if res.Date != nil {
		return types.YearMonth{Year: res.Date.Year(), Month: res.Date.Month()}, nil
	}
	year, ok := res.Fields[field.Year]
	if !ok {
		return types.YearMonth{}, fmt.Errorf("%w: unable to obtain a year from %v", ErrIncomplete, res.Fields)
	}
	month, ok := res.Fields[field.MonthOfYear]
	if !ok {
		return types.YearMonth{}, fmt.Errorf("%w: unable to obtain a month from %v", ErrIncomplete, res.Fields)
	}
	if res.Chronology == ThaiBuddhist {
		year -= thaiYearOffset
	}
	if err := field.MonthOfYear.Check(month); err != nil {
		return types.YearMonth{}, fmt.Errorf("%w: %w", ErrResolve, err)
	}
	return types.YearMonth{Year: int(year), Month: time.Month(month)}, nil
}
