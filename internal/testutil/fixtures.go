package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgramBuilder creates test programs with a builder pattern
type ProgramBuilder struct {
	program domain.Program
}

func NewProgramBuilder() *ProgramBuilder {
	suffix := uuid.New().String()[:8]
	return &ProgramBuilder{
		program: domain.Program{
			ID:          uuid.New(),
			Slug:        fmt.Sprintf("test-program-%s", suffix),
			Title:       fmt.Sprintf("Test Program %s", suffix),
			Location:    domain.LocationChicago,
			Gender:      domain.GenderCoed,
			ProgramType: domain.ProgramTypeCamp,
			StartDate:   "2025-06-09",
			EndDate:     "2025-07-18",
			MinAge:      "8",
			MaxAge:      "12",
			Price:       "$250",
		},
	}
}

func (b *ProgramBuilder) WithSlug(slug string) *ProgramBuilder {
	b.program.Slug = slug
	return b
}

func (b *ProgramBuilder) WithTitle(title string) *ProgramBuilder {
	b.program.Title = title
	return b
}

func (b *ProgramBuilder) WithType(t domain.ProgramType) *ProgramBuilder {
	b.program.ProgramType = t
	return b
}

func (b *ProgramBuilder) WithLocation(l domain.Location) *ProgramBuilder {
	b.program.Location = l
	return b
}

func (b *ProgramBuilder) WithFeatured(featured bool) *ProgramBuilder {
	b.program.Featured = featured
	return b
}

func (b *ProgramBuilder) WithDates(start, end string) *ProgramBuilder {
	b.program.StartDate = start
	b.program.EndDate = end
	return b
}

func (b *ProgramBuilder) WithCoach(coachID uuid.UUID) *ProgramBuilder {
	b.program.CoachID = &coachID
	return b
}

func (b *ProgramBuilder) Build(t *testing.T, db *gorm.DB) *domain.Program {
	t.Helper()

	program := b.program
	if err := db.Create(&program).Error; err != nil {
		t.Fatalf("failed to create program: %v", err)
	}
	return &program
}

// CoachBuilder creates test coaches
type CoachBuilder struct {
	coach domain.Coach
}

func NewCoachBuilder() *CoachBuilder {
	return &CoachBuilder{
		coach: domain.Coach{
			ID:   uuid.New(),
			Name: fmt.Sprintf("Coach %s", uuid.New().String()[:8]),
			Role: "Head Coach",
		},
	}
}

func (b *CoachBuilder) WithName(name string) *CoachBuilder {
	b.coach.Name = name
	return b
}

func (b *CoachBuilder) WithOrder(order int) *CoachBuilder {
	b.coach.DisplayOrder = order
	return b
}

func (b *CoachBuilder) Build(t *testing.T, db *gorm.DB) *domain.Coach {
	t.Helper()

	coach := b.coach
	if err := db.Create(&coach).Error; err != nil {
		t.Fatalf("failed to create coach: %v", err)
	}
	return &coach
}

// BuildTestimonial inserts a testimonial fixture.
func BuildTestimonial(t *testing.T, db *gorm.DB, name, quote string) *domain.Testimonial {
	t.Helper()

	testimonial := &domain.Testimonial{
		ID:    uuid.New(),
		Name:  name,
		Quote: quote,
	}
	if err := db.Create(testimonial).Error; err != nil {
		t.Fatalf("failed to create testimonial: %v", err)
	}
	return testimonial
}

// PageBuilder creates test pages
type PageBuilder struct {
	page domain.Page
}

func NewPageBuilder() *PageBuilder {
	suffix := uuid.New().String()[:8]
	return &PageBuilder{
		page: domain.Page{
			ID:        uuid.New(),
			Slug:      fmt.Sprintf("test-page-%s", suffix),
			Title:     fmt.Sprintf("Test Page %s", suffix),
			HeroType:  domain.HeroNone,
			Published: true,
		},
	}
}

func (b *PageBuilder) WithSlug(slug string) *PageBuilder {
	b.page.Slug = slug
	return b
}

func (b *PageBuilder) WithPublished(published bool) *PageBuilder {
	b.page.Published = published
	return b
}

func (b *PageBuilder) WithHero(heroType domain.HeroType, headline string) *PageBuilder {
	b.page.HeroType = heroType
	b.page.HeroHeadline = headline
	return b
}

// WithBlocks sets the block list from any JSON-marshalable value.
func (b *PageBuilder) WithBlocks(t *testing.T, blocks any) *PageBuilder {
	t.Helper()

	data, err := json.Marshal(blocks)
	if err != nil {
		t.Fatalf("failed to marshal blocks: %v", err)
	}
	b.page.Blocks = datatypes.JSON(data)
	return b
}

func (b *PageBuilder) Build(t *testing.T, db *gorm.DB) *domain.Page {
	t.Helper()

	page := b.page
	if err := db.Create(&page).Error; err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	return &page
}

// StaffBuilder creates staff users and authenticates them against the API
type StaffBuilder struct {
	email    string
	password string
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		email:    fmt.Sprintf("staff_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

func (b *StaffBuilder) WithEmail(email string) *StaffBuilder {
	b.email = email
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *StaffBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		Name:         "Test Staff",
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a staff user and logs in via the API,
// returning the user and a bearer token.
func (b *StaffBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": password,
	})
	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned status %d", resp.StatusCode)
	}

	var auth AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		t.Fatalf("failed to decode auth response: %v", err)
	}

	return user, auth.AccessToken
}
