package field

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Accessor is the source of field values for printing. Get returns the value
// of f and true, or false if the source cannot supply f.
type Accessor interface {
	Get(f Field) (int64, bool)
}

// ZoneAccessor is implemented by values that carry a time-zone region ID.
type ZoneAccessor interface {
	Accessor

	// ZoneID returns the zone region ID, such as "Europe/Paris", and true,
	// or false if the value carries no zone.
	ZoneID() (string, bool)
}

// Values maps fields to raw values. It is the raw field map collected while
// parsing and implements Accessor.
type Values map[Field]int64

// Get returns the value of f.
func (v Values) Get(f Field) (int64, bool) {
	val, ok := v[f]
	return val, ok
}

// Fields returns the fields in v ordered by ID.
func (v Values) Fields() []Field {
	keys := maps.Keys(v)
	slices.SortFunc(keys, func(a, b Field) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return keys
}

// String returns a deterministic representation of v, ordered by field ID,
// such as "{ISO.MonthOfYear=6, ISO.Year=2008}".
func (v Values) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, f := range v.Fields() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(f.ID())
		buf.WriteByte('=')
		buf.WriteString(strconv.FormatInt(v[f], 10))
	}
	buf.WriteByte('}')
	return buf.String()
}
