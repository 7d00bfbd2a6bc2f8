// Package format converts raw collection field values into display strings.
// Everything here is pure; renderers call these and omit the element when an
// empty string comes back.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/evan/sports-club-website/internal/domain"
)

const dateLayout = "2006-01-02"

// Duration reports the span between two calendar dates as whole days, or as
// weeks once the span reaches seven days (rounded to the nearest whole week).
// Dates are parsed as local representations; callers supply same-convention
// strings. Unparseable input yields "".
func Duration(start, end string) string {
	s, err := time.ParseInLocation(dateLayout, start, time.Local)
	if err != nil {
		return ""
	}
	e, err := time.ParseInLocation(dateLayout, end, time.Local)
	if err != nil {
		return ""
	}

	days := int(math.Round(e.Sub(s).Hours() / 24))
	if days < 0 {
		days = 0
	}
	if days >= 7 {
		weeks := int(math.Round(float64(days) / 7))
		return fmt.Sprintf("%d %s", weeks, plural(weeks, "week"))
	}
	return fmt.Sprintf("%d %s", days, plural(days, "day"))
}

// AgeRange formats min/max age strings. Equal values collapse to "Age N";
// otherwise "Ages N–M". Blank input yields "".
func AgeRange(min, max string) string {
	switch {
	case min == "" && max == "":
		return ""
	case max == "" || min == max:
		if min == "" {
			min = max
		}
		return "Age " + min
	case min == "":
		return "Age " + max
	default:
		return fmt.Sprintf("Ages %s–%s", min, max)
	}
}

// DateRange formats a start/end date span for program cards, e.g.
// "Jun 9 – Jul 18, 2025". Degrades to whichever side parses.
func DateRange(start, end string) string {
	s, sErr := time.ParseInLocation(dateLayout, start, time.Local)
	e, eErr := time.ParseInLocation(dateLayout, end, time.Local)

	switch {
	case sErr != nil && eErr != nil:
		return ""
	case sErr != nil:
		return e.Format("Jan 2, 2006")
	case eErr != nil:
		return s.Format("Jan 2, 2006")
	case s.Equal(e):
		return s.Format("Jan 2, 2006")
	case s.Year() == e.Year():
		return s.Format("Jan 2") + " – " + e.Format("Jan 2, 2006")
	default:
		return s.Format("Jan 2, 2006") + " – " + e.Format("Jan 2, 2006")
	}
}

var genderLabels = map[domain.Gender]string{
	domain.GenderBoys:  "Boys",
	domain.GenderGirls: "Girls",
	domain.GenderCoed:  "Co-ed",
}

var locationLabels = map[domain.Location]string{
	domain.LocationChicago: "Chicago, IL",
	domain.LocationDallas:  "Dallas, TX",
}

var programTypeLabels = map[domain.ProgramType]string{
	domain.ProgramTypeCamp:       "Camp",
	domain.ProgramTypeClinic:     "Clinic",
	domain.ProgramTypeTournament: "Tournament",
	domain.ProgramTypeLeague:     "League",
}

// GenderLabel maps a gender code to its display label. Unknown values pass
// through unchanged.
func GenderLabel(g domain.Gender) string {
	if label, ok := genderLabels[g]; ok {
		return label
	}
	return string(g)
}

// LocationLabel maps a location code to its display label. Unknown values
// pass through unchanged.
func LocationLabel(l domain.Location) string {
	if label, ok := locationLabels[l]; ok {
		return label
	}
	return string(l)
}

// ProgramTypeLabel maps a program type to its display label. Unknown values
// pass through unchanged.
func ProgramTypeLabel(t domain.ProgramType) string {
	if label, ok := programTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
