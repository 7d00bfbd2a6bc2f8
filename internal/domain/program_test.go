package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePrograms() []*Program {
	return []*Program{
		{Slug: "summer-camp", ProgramType: ProgramTypeCamp, Location: LocationChicago},
		{Slug: "fall-clinic", ProgramType: ProgramTypeClinic, Location: LocationChicago},
		{Slug: "dallas-camp", ProgramType: ProgramTypeCamp, Location: LocationDallas},
		{Slug: "winter-league", ProgramType: ProgramTypeLeague, Location: LocationDallas},
	}
}

func slugsOf(programs []*Program) []string {
	slugs := make([]string, len(programs))
	for i, p := range programs {
		slugs[i] = p.Slug
	}
	return slugs
}

func TestFilterPrograms(t *testing.T) {
	tests := []struct {
		name     string
		facets   ProgramFacets
		expected []string
	}{
		{
			name:     "no facets returns everything",
			facets:   ProgramFacets{},
			expected: []string{"summer-camp", "fall-clinic", "dallas-camp", "winter-league"},
		},
		{
			name:     "all sentinel returns everything",
			facets:   ProgramFacets{ProgramType: FacetAll, Location: FacetAll},
			expected: []string{"summer-camp", "fall-clinic", "dallas-camp", "winter-league"},
		},
		{
			name:     "filter by type",
			facets:   ProgramFacets{ProgramType: "camp"},
			expected: []string{"summer-camp", "dallas-camp"},
		},
		{
			name:     "filter by location",
			facets:   ProgramFacets{Location: "chicago"},
			expected: []string{"summer-camp", "fall-clinic"},
		},
		{
			name:     "facets combine with AND",
			facets:   ProgramFacets{ProgramType: "camp", Location: "dallas"},
			expected: []string{"dallas-camp"},
		},
		{
			name:     "no program satisfies both facets",
			facets:   ProgramFacets{ProgramType: "league", Location: "chicago"},
			expected: []string{},
		},
		{
			name:     "unknown facet value matches nothing",
			facets:   ProgramFacets{ProgramType: "swim-meet"},
			expected: []string{},
		},
		{
			name:     "unknown location matches nothing even with type wildcard",
			facets:   ProgramFacets{ProgramType: FacetAll, Location: "portland"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterPrograms(samplePrograms(), tt.facets)
			assert.Equal(t, tt.expected, slugsOf(filtered))
		})
	}
}

func TestFilterPrograms_PreservesOrder(t *testing.T) {
	programs := samplePrograms()
	filtered := FilterPrograms(programs, ProgramFacets{Location: "dallas"})

	assert.Equal(t, []string{"dallas-camp", "winter-league"}, slugsOf(filtered))
}

func TestFilterPrograms_EmptyInput(t *testing.T) {
	filtered := FilterPrograms(nil, ProgramFacets{ProgramType: "camp"})

	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestProgramFacets_Matches(t *testing.T) {
	program := &Program{ProgramType: ProgramTypeCamp, Location: LocationChicago}

	assert.True(t, ProgramFacets{}.Matches(program))
	assert.True(t, ProgramFacets{ProgramType: "camp", Location: "chicago"}.Matches(program))
	assert.False(t, ProgramFacets{ProgramType: "clinic"}.Matches(program))
	assert.False(t, ProgramFacets{Location: "dallas"}.Matches(program))
}
