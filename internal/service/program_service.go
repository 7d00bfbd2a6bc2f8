package service

import (
	"context"
	"errors"

	"github.com/evan/sports-club-website/internal/config"
	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/repository"
	"github.com/google/uuid"
)

type ProgramService struct {
	programRepo repository.ProgramRepository
	cfg         *config.Config
}

func NewProgramService(programRepo repository.ProgramRepository, cfg *config.Config) *ProgramService {
	return &ProgramService{programRepo: programRepo, cfg: cfg}
}

// ListInput mirrors the read API's query surface: equality facets plus
// pagination limit and relation-expansion depth.
type ListInput struct {
	ProgramType string
	Location    string
	Featured    *bool
	Limit       int
	Depth       int
}

func (s *ProgramService) List(ctx context.Context, input ListInput) ([]*domain.Program, error) {
	return s.programRepo.List(ctx, repository.ProgramListOptions{
		ProgramType: input.ProgramType,
		Location:    input.Location,
		Featured:    input.Featured,
		Limit:       clampLimit(s.cfg, input.Limit),
		Depth:       input.Depth,
	})
}

func (s *ProgramService) GetBySlug(ctx context.Context, slug string) (*domain.Program, error) {
	if slug == "" {
		return nil, domain.ErrNotFound
	}
	return s.programRepo.GetBySlug(ctx, slug, 1)
}

func (s *ProgramService) Create(ctx context.Context, program *domain.Program) error {
	if err := program.Validate(); err != nil {
		return err
	}
	if _, err := s.programRepo.GetBySlug(ctx, program.Slug, 0); err == nil {
		return domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if program.ID == uuid.Nil {
		program.ID = uuid.New()
	}
	return s.programRepo.Create(ctx, program)
}

func (s *ProgramService) Update(ctx context.Context, program *domain.Program) error {
	if err := program.Validate(); err != nil {
		return err
	}
	existing, err := s.programRepo.GetBySlug(ctx, program.Slug, 0)
	if err == nil && existing.ID != program.ID {
		return domain.ErrSlugTaken
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.programRepo.Update(ctx, program)
}

func (s *ProgramService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.programRepo.Delete(ctx, id)
}
