package format_test

import (
	"fmt"
	"testing"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/format"
	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected string
	}{
		{"same day", "2025-01-01", "2025-01-01", "0 days"},
		{"one day", "2025-01-01", "2025-01-02", "1 day"},
		{"three days", "2025-01-01", "2025-01-04", "3 days"},
		{"six days stays in days", "2025-01-01", "2025-01-07", "6 days"},
		{"seven days crosses to weeks", "2025-01-01", "2025-01-08", "1 week"},
		{"two weeks", "2025-01-01", "2025-01-15", "2 weeks"},
		{"nine days rounds to one week", "2025-01-01", "2025-01-10", "1 week"},
		{"eleven days rounds to two weeks", "2025-01-01", "2025-01-12", "2 weeks"},
		{"across months", "2025-06-09", "2025-07-18", "6 weeks"},
		{"bad start", "not-a-date", "2025-01-08", ""},
		{"bad end", "2025-01-01", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, format.Duration(tt.start, tt.end))
		})
	}
}

// Widening the gap must never shrink the reported span, and the days-to-weeks
// crossover happens exactly at seven days.
func TestDuration_Monotonic(t *testing.T) {
	start := "2025-03-01"
	prevDays := -1
	sawWeeks := false

	for gap := 0; gap <= 60; gap++ {
		end := fmt.Sprintf("2025-03-%02d", 1+gap)
		if gap > 30 {
			end = fmt.Sprintf("2025-04-%02d", gap-30)
		}
		got := format.Duration(start, end)
		assert.NotEmpty(t, got, "gap %d", gap)

		var n int
		var unit string
		_, err := fmt.Sscanf(got, "%d %s", &n, &unit)
		assert.NoError(t, err)

		switch unit {
		case "day", "days":
			assert.False(t, sawWeeks, "fell back to days after weeks at gap %d", gap)
			assert.Less(t, gap, 7, "gap %d should report weeks", gap)
			assert.Greater(t, n, prevDays, "days not increasing at gap %d", gap)
			prevDays = n
		case "week", "weeks":
			sawWeeks = true
			assert.GreaterOrEqual(t, gap, 7, "gap %d reported weeks too early", gap)
		default:
			t.Fatalf("unexpected unit %q at gap %d", unit, gap)
		}
	}
	assert.True(t, sawWeeks)
}

func TestAgeRange(t *testing.T) {
	assert.Equal(t, "Age 10", format.AgeRange("10", "10"))
	assert.Equal(t, "Ages 5–12", format.AgeRange("5", "12"))
	assert.Equal(t, "Age 8", format.AgeRange("8", ""))
	assert.Equal(t, "Age 14", format.AgeRange("", "14"))
	assert.Equal(t, "", format.AgeRange("", ""))
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "Jun 9 – Jul 18, 2025", format.DateRange("2025-06-09", "2025-07-18"))
	assert.Equal(t, "Dec 29, 2025 – Jan 2, 2026", format.DateRange("2025-12-29", "2026-01-02"))
	assert.Equal(t, "Jun 9, 2025", format.DateRange("2025-06-09", "2025-06-09"))
	assert.Equal(t, "Jul 18, 2025", format.DateRange("", "2025-07-18"))
	assert.Equal(t, "", format.DateRange("", ""))
}

func TestEnumLabels_Totality(t *testing.T) {
	for _, g := range domain.AllGenders {
		assert.NotEmpty(t, format.GenderLabel(g))
		assert.NotEqual(t, string(g), format.GenderLabel(g), "label for %q should be humanized", g)
	}
	for _, l := range domain.AllLocations {
		assert.NotEmpty(t, format.LocationLabel(l))
	}
	for _, pt := range domain.AllProgramTypes {
		assert.NotEmpty(t, format.ProgramTypeLabel(pt))
	}
}

func TestEnumLabels_UnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "mixed", format.GenderLabel(domain.Gender("mixed")))
	assert.Equal(t, "austin", format.LocationLabel(domain.Location("austin")))
	assert.Equal(t, "retreat", format.ProgramTypeLabel(domain.ProgramType("retreat")))
}
