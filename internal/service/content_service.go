package service

import (
	"context"

	"github.com/evan/sports-club-website/internal/config"
	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/repository"
	"github.com/google/uuid"
)

// Coach, testimonial and tournament services are thin CRUD wrappers; the
// interesting behavior for these collections lives in rendering.

// clampLimit applies the configured page-size bounds to a requested limit.
func clampLimit(cfg *config.Config, limit int) int {
	if limit <= 0 {
		return cfg.DefaultListLimit
	}
	if limit > cfg.MaxListLimit {
		return cfg.MaxListLimit
	}
	return limit
}

type CoachService struct {
	coachRepo repository.CoachRepository
	cfg       *config.Config
}

func NewCoachService(coachRepo repository.CoachRepository, cfg *config.Config) *CoachService {
	return &CoachService{coachRepo: coachRepo, cfg: cfg}
}

func (s *CoachService) List(ctx context.Context, limit int) ([]*domain.Coach, error) {
	return s.coachRepo.List(ctx, clampLimit(s.cfg, limit))
}

func (s *CoachService) Get(ctx context.Context, id uuid.UUID) (*domain.Coach, error) {
	return s.coachRepo.GetByID(ctx, id)
}

func (s *CoachService) Create(ctx context.Context, coach *domain.Coach) error {
	if coach.Name == "" {
		return domain.ErrMissingName
	}
	if coach.ID == uuid.Nil {
		coach.ID = uuid.New()
	}
	return s.coachRepo.Create(ctx, coach)
}

func (s *CoachService) Update(ctx context.Context, coach *domain.Coach) error {
	if coach.Name == "" {
		return domain.ErrMissingName
	}
	return s.coachRepo.Update(ctx, coach)
}

func (s *CoachService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.coachRepo.Delete(ctx, id)
}

type TestimonialService struct {
	testimonialRepo repository.TestimonialRepository
	cfg             *config.Config
}

func NewTestimonialService(testimonialRepo repository.TestimonialRepository, cfg *config.Config) *TestimonialService {
	return &TestimonialService{testimonialRepo: testimonialRepo, cfg: cfg}
}

func (s *TestimonialService) List(ctx context.Context, limit int) ([]*domain.Testimonial, error) {
	return s.testimonialRepo.List(ctx, clampLimit(s.cfg, limit))
}

func (s *TestimonialService) Get(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	return s.testimonialRepo.GetByID(ctx, id)
}

func (s *TestimonialService) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	if testimonial.ID == uuid.Nil {
		testimonial.ID = uuid.New()
	}
	return s.testimonialRepo.Create(ctx, testimonial)
}

func (s *TestimonialService) Update(ctx context.Context, testimonial *domain.Testimonial) error {
	return s.testimonialRepo.Update(ctx, testimonial)
}

func (s *TestimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.testimonialRepo.Delete(ctx, id)
}

type TournamentService struct {
	tournamentRepo repository.TournamentRepository
	cfg            *config.Config
}

func NewTournamentService(tournamentRepo repository.TournamentRepository, cfg *config.Config) *TournamentService {
	return &TournamentService{tournamentRepo: tournamentRepo, cfg: cfg}
}

func (s *TournamentService) List(ctx context.Context, limit int) ([]*domain.Tournament, error) {
	return s.tournamentRepo.List(ctx, clampLimit(s.cfg, limit))
}

func (s *TournamentService) Get(ctx context.Context, id uuid.UUID) (*domain.Tournament, error) {
	return s.tournamentRepo.GetByID(ctx, id)
}

func (s *TournamentService) Create(ctx context.Context, tournament *domain.Tournament) error {
	if tournament.ID == uuid.Nil {
		tournament.ID = uuid.New()
	}
	return s.tournamentRepo.Create(ctx, tournament)
}

func (s *TournamentService) Update(ctx context.Context, tournament *domain.Tournament) error {
	return s.tournamentRepo.Update(ctx, tournament)
}

func (s *TournamentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tournamentRepo.Delete(ctx, id)
}
