package field

// Unit is a unit of time used to describe what a field counts.
type Unit uint8

//revive:disable:exported
const (
	Nanos          Unit = iota + 1 // Nanos
	Millis                         // Millis
	Seconds                        // Seconds
	Minutes                        // Minutes
	Hours                          // Hours
	HalfDays                       // HalfDays
	Days                           // Days
	Weeks                          // Weeks
	Months                         // Months
	Quarters                       // Quarters
	Years                          // Years
	WeekBasedYears                 // WeekBasedYears
	Eras                           // Eras
	Forever                        // Forever
)

//nolint:gochecknoglobals
var unitNames = [...]string{
	"Unit(0)",
	"Nanos",
	"Millis",
	"Seconds",
	"Minutes",
	"Hours",
	"HalfDays",
	"Days",
	"Weeks",
	"Months",
	"Quarters",
	"Years",
	"WeekBasedYears",
	"Eras",
	"Forever",
}

// String returns the name of the unit.
func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return unitNames[0]
}

// TextStyle selects the length of localized text for a field value.
type TextStyle uint8

//revive:disable:exported
const (
	Full   TextStyle = iota // Full
	Short                   // Short
	Narrow                  // Narrow
)

// String returns the name of the style.
func (s TextStyle) String() string {
	switch s {
	case Full:
		return "Full"
	case Short:
		return "Short"
	case Narrow:
		return "Narrow"
	default:
		return "TextStyle(?)"
	}
}
