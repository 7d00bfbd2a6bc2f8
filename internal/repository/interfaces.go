package repository

import (
	"context"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/google/uuid"
)

// ProgramListOptions narrow a program listing. Zero values impose no
// constraint; Depth > 0 expands the coach relation.
type ProgramListOptions struct {
	ProgramType string
	Location    string
	Featured    *bool
	Limit       int
	Depth       int
}

type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Program, error)
	GetBySlug(ctx context.Context, slug string, depth int) (*domain.Program, error)
	List(ctx context.Context, opts ProgramListOptions) ([]*domain.Program, error)
	Update(ctx context.Context, program *domain.Program) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CoachRepository interface {
	Create(ctx context.Context, coach *domain.Coach) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error)
	List(ctx context.Context, limit int) ([]*domain.Coach, error)
	Update(ctx context.Context, coach *domain.Coach) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error)
	List(ctx context.Context, limit int) ([]*domain.Testimonial, error)
	Update(ctx context.Context, testimonial *domain.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TournamentRepository interface {
	Create(ctx context.Context, tournament *domain.Tournament) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tournament, error)
	List(ctx context.Context, limit int) ([]*domain.Tournament, error)
	Update(ctx context.Context, tournament *domain.Tournament) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PageRepository interface {
	Create(ctx context.Context, page *domain.Page) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Page, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Page, error)
	List(ctx context.Context) ([]*domain.Page, error)
	Update(ctx context.Context, page *domain.Page) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GlobalRepository interface {
	Get(ctx context.Context, key string) (*domain.SiteGlobal, error)
	Upsert(ctx context.Context, global *domain.SiteGlobal) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type Repositories struct {
	Program     ProgramRepository
	Coach       CoachRepository
	Testimonial TestimonialRepository
	Tournament  TournamentRepository
	Page        PageRepository
	Global      GlobalRepository
	User        UserRepository
	Session     SessionRepository
}
