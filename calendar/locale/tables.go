package locale

import (
	"golang.org/x/text/language"

	"github.com/cquiroz/threetenbp/calendar/field"
)

//nolint:gochecknoglobals
var (
	english = New(Config{
		Tag: language.English,
		Texts: map[field.Field]Texts{
			field.MonthOfYear: {
				Full: []string{
					"January", "February", "March", "April", "May", "June", "July",
					"August", "September", "October", "November", "December",
				},
				Short: []string{
					"Jan", "Feb", "Mar", "Apr", "May", "Jun",
					"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
				},
				Narrow: []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
			},
			field.DayOfWeek: {
				Full: []string{
					"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
				},
				Short:  []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
				Narrow: []string{"M", "T", "W", "T", "F", "S", "S"},
			},
			field.AmPmOfDay: {
				Full:   []string{"AM", "PM"},
				Short:  []string{"AM", "PM"},
				Narrow: []string{"a", "p"},
			},
			field.Era: {
				Full:   []string{"Before Christ", "Anno Domini"},
				Short:  []string{"BC", "AD"},
				Narrow: []string{"B", "A"},
			},
			field.QuarterOfYear: {
				Full:   []string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"},
				Short:  []string{"Q1", "Q2", "Q3", "Q4"},
				Narrow: []string{"1", "2", "3", "4"},
			},
		},
		DatePatterns: [4]string{"EEEE, MMMM d, y", "MMMM d, y", "MMM d, y", "M/d/yy"},
		TimePatterns: [4]string{"h:mm:ss a z", "h:mm:ss a z", "h:mm:ss a", "h:mm a"},
	})

	german = New(Config{
		Tag:              language.German,
		DecimalSeparator: ',',
		Texts: map[field.Field]Texts{
			field.MonthOfYear: {
				Full: []string{
					"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli",
					"August", "September", "Oktober", "November", "Dezember",
				},
				Short: []string{
					"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
					"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
				},
				Narrow: []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
			},
			field.DayOfWeek: {
				Full: []string{
					"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag",
				},
				Short:  []string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
				Narrow: []string{"M", "D", "M", "D", "F", "S", "S"},
			},
			field.AmPmOfDay: {
				Full:   []string{"vorm.", "nachm."},
				Short:  []string{"vorm.", "nachm."},
				Narrow: []string{"vm.", "nm."},
			},
			field.Era: {
				Full:   []string{"v. Chr.", "n. Chr."},
				Short:  []string{"v. Chr.", "n. Chr."},
				Narrow: []string{"v. Chr.", "n. Chr."},
			},
			field.QuarterOfYear: {
				Full:   []string{"1. Quartal", "2. Quartal", "3. Quartal", "4. Quartal"},
				Short:  []string{"Q1", "Q2", "Q3", "Q4"},
				Narrow: []string{"1", "2", "3", "4"},
			},
		},
		DatePatterns: [4]string{"EEEE, d. MMMM y", "d. MMMM y", "dd.MM.y", "dd.MM.yy"},
		TimePatterns: [4]string{"HH:mm:ss z", "HH:mm:ss z", "HH:mm:ss", "HH:mm"},
	})

	french = New(Config{
		Tag:              language.French,
		DecimalSeparator: ',',
		Texts: map[field.Field]Texts{
			field.MonthOfYear: {
				Full: []string{
					"janvier", "février", "mars", "avril", "mai", "juin", "juillet",
					"août", "septembre", "octobre", "novembre", "décembre",
				},
				Short: []string{
					"janv.", "févr.", "mars", "avr.", "mai", "juin",
					"juil.", "août", "sept.", "oct.", "nov.", "déc.",
				},
				Narrow: []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
			},
			field.DayOfWeek: {
				Full: []string{
					"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche",
				},
				Short:  []string{"lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."},
				Narrow: []string{"L", "M", "M", "J", "V", "S", "D"},
			},
			field.AmPmOfDay: {
				Full:   []string{"AM", "PM"},
				Short:  []string{"AM", "PM"},
				Narrow: []string{"AM", "PM"},
			},
			field.Era: {
				Full:   []string{"avant Jésus-Christ", "après Jésus-Christ"},
				Short:  []string{"av. J.-C.", "ap. J.-C."},
				Narrow: []string{"av. J.-C.", "ap. J.-C."},
			},
			field.QuarterOfYear: {
				Full:   []string{"1er trimestre", "2e trimestre", "3e trimestre", "4e trimestre"},
				Short:  []string{"T1", "T2", "T3", "T4"},
				Narrow: []string{"1", "2", "3", "4"},
			},
		},
		DatePatterns: [4]string{"EEEE d MMMM y", "d MMMM y", "d MMM y", "dd/MM/y"},
		TimePatterns: [4]string{"HH:mm:ss z", "HH:mm:ss z", "HH:mm:ss", "HH:mm"},
	})

	builtin = []*Symbols{english, german, french}

	matcher = language.NewMatcher(Tags())
)

// English returns the symbol table for English. It is also the fallback for
// unsupported tags.
func English() *Symbols { return english }

// Tags returns the tags of the built-in tables. The first is the default.
func Tags() []language.Tag {
	tags := make([]language.Tag, len(builtin))
	for i, s := range builtin {
		tags[i] = s.Tag()
	}
	return tags
}

// Lookup returns the built-in table best matching tag. Returns the English
// table when no table matches.
func Lookup(tag language.Tag) *Symbols {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return english
	}
	return builtin[idx]
}
