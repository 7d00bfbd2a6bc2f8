package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/repository"
	"github.com/evan/sports-club-website/internal/repository/postgres"
	"github.com/evan/sports-club-website/internal/testutil"
)

func TestProgramRepository_CreateAndGetBySlug(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProgramRepository(testDB.DB)
	ctx := context.Background()

	program := testutil.NewProgramBuilder().
		WithSlug("summer-soccer-camp").
		WithTitle("Summer Soccer Camp").
		Build(t, testDB.DB)

	got, err := repo.GetBySlug(ctx, "summer-soccer-camp", 0)
	require.NoError(t, err)
	assert.Equal(t, program.ID, got.ID)
	assert.Equal(t, "Summer Soccer Camp", got.Title)
	assert.Nil(t, got.Coach)
}

func TestProgramRepository_GetBySlug_NotFound(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProgramRepository(testDB.DB)

	_, err := repo.GetBySlug(context.Background(), "no-such-program", 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProgramRepository_GetBySlug_PreloadsCoach(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProgramRepository(testDB.DB)
	ctx := context.Background()

	coach := testutil.NewCoachBuilder().WithName("Dana Whitfield").Build(t, testDB.DB)
	testutil.NewProgramBuilder().
		WithSlug("coached-camp").
		WithCoach(coach.ID).
		Build(t, testDB.DB)

	shallow, err := repo.GetBySlug(ctx, "coached-camp", 0)
	require.NoError(t, err)
	assert.Nil(t, shallow.Coach)

	deep, err := repo.GetBySlug(ctx, "coached-camp", 1)
	require.NoError(t, err)
	require.NotNil(t, deep.Coach)
	assert.Equal(t, "Dana Whitfield", deep.Coach.Name)
}

func TestProgramRepository_SlugUnique(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProgramRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewProgramBuilder().WithSlug("duplicate-slug").Build(t, testDB.DB)

	dup := &domain.Program{
		ID:          uuid.New(),
		Slug:        "duplicate-slug",
		Title:       "Second Program",
		Location:    domain.LocationChicago,
		Gender:      domain.GenderCoed,
		ProgramType: domain.ProgramTypeCamp,
	}
	err := repo.Create(ctx, dup)
	assert.Error(t, err)
}

func TestProgramRepository_List_Facets(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProgramRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewProgramBuilder().
		WithSlug("chicago-camp").
		WithType(domain.ProgramTypeCamp).
		WithLocation(domain.LocationChicago).
		WithDates("2025-06-01", "2025-06-14").
		Build(t, testDB.DB)
	testutil.NewProgramBuilder().
		WithSlug("chicago-clinic").
		WithType(domain.ProgramTypeClinic).
		WithLocation(domain.LocationChicago).
		WithDates("2025-07-01", "2025-07-02").
		Build(t, testDB.DB)
	testutil.NewProgramBuilder().
		WithSlug("dallas-camp").
		WithType(domain.ProgramTypeCamp).
		WithLocation(domain.LocationDallas).
		WithDates("2025-08-01", "2025-08-14").
		Build(t, testDB.DB)

	tests := []struct {
		name     string
		opts     repository.ProgramListOptions
		expected []string
	}{
		{
			name:     "no filters returns all ordered by start date",
			opts:     repository.ProgramListOptions{},
			expected: []string{"chicago-camp", "chicago-clinic", "dallas-camp"},
		},
		{
			name:     "all sentinel is no constraint",
			opts:     repository.ProgramListOptions{ProgramType: "all", Location: "all"},
			expected: []string{"chicago-camp", "chicago-clinic", "dallas-camp"},
		},
		{
			name:     "filter by type",
			opts:     repository.ProgramListOptions{ProgramType: "camp"},
			expected: []string{"chicago-camp", "dallas-camp"},
		},
		{
			name:     "filter by type and location",
			opts:     repository.ProgramListOptions{ProgramType: "camp", Location: "dallas"},
			expected: []string{"dallas-camp"},
		},
		{
			name:     "unknown facet value matches nothing",
			opts:     repository.ProgramListOptions{ProgramType: "swim-meet"},
			expected: []string{},
		},
		{
			name:     "limit caps the result",
			opts:     repository.ProgramListOptions{Limit: 2},
			expected: []string{"chicago-camp", "chicago-clinic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			programs, err := repo.List(ctx, tt.opts)
			require.NoError(t, err)

			slugs := make([]string, 0, len(programs))
			for _, p := range programs {
				slugs = append(slugs, p.Slug)
			}
			assert.Equal(t, tt.expected, slugs)
		})
	}
}

func TestProgramRepository_List_Featured(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProgramRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewProgramBuilder().WithSlug("plain").Build(t, testDB.DB)
	testutil.NewProgramBuilder().WithSlug("spotlight").WithFeatured(true).Build(t, testDB.DB)

	featured := true
	programs, err := repo.List(ctx, repository.ProgramListOptions{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, "spotlight", programs[0].Slug)
}

func TestProgramRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProgramRepository(testDB.DB)
	ctx := context.Background()

	program := testutil.NewProgramBuilder().WithSlug("renamed-camp").Build(t, testDB.DB)

	program.Title = "Renamed Camp"
	program.Featured = true
	require.NoError(t, repo.Update(ctx, program))

	got, err := repo.GetByID(ctx, program.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Camp", got.Title)
	assert.True(t, got.Featured)
}

func TestProgramRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewProgramRepository(testDB.DB)
	ctx := context.Background()

	program := testutil.NewProgramBuilder().Build(t, testDB.DB)

	require.NoError(t, repo.Delete(ctx, program.ID))

	_, err := repo.GetByID(ctx, program.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
