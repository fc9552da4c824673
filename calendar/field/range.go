package field

import (
	"fmt"
	"strconv"
)

// ValueRange describes the legal values of a field. Most ranges are fixed;
// some, like DayOfMonth, have a maximum that varies between a smallest and a
// largest value depending on context.
type ValueRange struct {
	Min         int64
	LargestMin  int64
	SmallestMax int64
	Max         int64
}

// Fixed returns a ValueRange where both the minimum and maximum are fixed.
func Fixed(minimum, maximum int64) ValueRange {
	return ValueRange{minimum, minimum, maximum, maximum}
}

// Variable returns a ValueRange where the minimum or the maximum varies.
func Variable(minimum, largestMin, smallestMax, maximum int64) ValueRange {
	return ValueRange{minimum, largestMin, smallestMax, maximum}
}

// IsFixed reports whether the range has a fixed minimum and maximum.
func (r ValueRange) IsFixed() bool {
	return r.Min == r.LargestMin && r.SmallestMax == r.Max
}

// IsValid reports whether value is within the outer bounds of r.
func (r ValueRange) IsValid(value int64) bool {
	return value >= r.Min && value <= r.Max
}

// Check returns an error wrapping ErrRange if value is not valid for f in r.
func (r ValueRange) Check(f Field, value int64) error {
	if r.IsValid(value) {
		return nil
	}
	return fmt.Errorf(
		"%w: invalid value for %v (valid values %v): %d",
		ErrRange, f, r, value,
	)
}

// String returns a representation such as "1 - 28/31".
func (r ValueRange) String() string {
	s := strconv.FormatInt(r.Min, 10)
	if r.Min != r.LargestMin {
		s += "/" + strconv.FormatInt(r.LargestMin, 10)
	}
	s += " - " + strconv.FormatInt(r.SmallestMax, 10)
	if r.SmallestMax != r.Max {
		s += "/" + strconv.FormatInt(r.Max, 10)
	}
	return s
}
