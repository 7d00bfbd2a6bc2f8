package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProgramType string

const (
	ProgramTypeCamp       ProgramType = "camp"
	ProgramTypeClinic     ProgramType = "clinic"
	ProgramTypeTournament ProgramType = "tournament"
	ProgramTypeLeague     ProgramType = "league"
)

var AllProgramTypes = []ProgramType{
	ProgramTypeCamp,
	ProgramTypeClinic,
	ProgramTypeTournament,
	ProgramTypeLeague,
}

type Gender string

const (
	GenderBoys  Gender = "boys"
	GenderGirls Gender = "girls"
	GenderCoed  Gender = "coed"
)

var AllGenders = []Gender{GenderBoys, GenderGirls, GenderCoed}

type Location string

const (
	LocationChicago Location = "chicago"
	LocationDallas  Location = "dallas"
)

var AllLocations = []Location{LocationChicago, LocationDallas}

// Program is a staff-authored offering (camp, clinic, tournament or league).
// Slug is the only externally dereferenceable identifier; detail routing is
// /programs/{slug}.
type Program struct {
	ID                uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Slug              string      `json:"slug" gorm:"uniqueIndex;not null"`
	Title             string      `json:"title" gorm:"not null"`
	Subtitle          string      `json:"subtitle"`
	Description       string      `json:"description"` // markdown
	Price             string      `json:"price"`       // free text, e.g. "$250" or "Free"
	Location          Location    `json:"location" gorm:"not null;default:'chicago'"`
	StartDate         string      `json:"startDate"` // calendar date, YYYY-MM-DD
	EndDate           string      `json:"endDate"`
	RegistrationOpens string      `json:"registrationOpens"`
	RegistrationEnds  string      `json:"registrationEnds"`
	WeeklySchedule    string      `json:"weeklySchedule"` // e.g. "Mon/Wed 6-8pm"
	MinAge            string      `json:"minAge"`
	MaxAge            string      `json:"maxAge"`
	Gender            Gender      `json:"gender" gorm:"not null;default:'coed'"`
	ProgramType       ProgramType `json:"programType" gorm:"not null;default:'camp'"`
	Featured          bool        `json:"featured" gorm:"not null;default:false"`
	CoachID           *uuid.UUID  `json:"coachId" gorm:"type:uuid"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`

	// Relations
	Coach *Coach `json:"coach,omitempty" gorm:"foreignKey:CoachID"`
}

// ProgramFacets are the UI-selectable filter dimensions for program listings.
// An empty or "all" value means the facet imposes no constraint.
type ProgramFacets struct {
	ProgramType string
	Location    string
}

// FacetAll is the sentinel facet value meaning "don't care".
const FacetAll = "all"

func (f ProgramFacets) typeMatches(p *Program) bool {
	if f.ProgramType == "" || f.ProgramType == FacetAll {
		return true
	}
	return string(p.ProgramType) == f.ProgramType
}

func (f ProgramFacets) locationMatches(p *Program) bool {
	if f.Location == "" || f.Location == FacetAll {
		return true
	}
	return string(p.Location) == f.Location
}

// Matches reports whether the program satisfies every facet. Unknown facet
// values match nothing: the equality test against a value outside the enum
// set fails for every program.
func (f ProgramFacets) Matches(p *Program) bool {
	return f.typeMatches(p) && f.locationMatches(p)
}

// FilterPrograms returns the subsequence of programs matching all facets,
// preserving the original order.
func FilterPrograms(programs []*Program, facets ProgramFacets) []*Program {
	filtered := make([]*Program, 0, len(programs))
	for _, p := range programs {
		if facets.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
