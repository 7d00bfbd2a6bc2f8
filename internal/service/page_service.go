package service

import (
	"context"
	"errors"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/repository"
	"github.com/google/uuid"
)

type PageService struct {
	pageRepo repository.PageRepository
}

func NewPageService(pageRepo repository.PageRepository) *PageService {
	return &PageService{pageRepo: pageRepo}
}

// GetPublished resolves a page for public rendering. Unpublished pages are
// indistinguishable from missing ones.
func (s *PageService) GetPublished(ctx context.Context, slug string) (*domain.Page, error) {
	page, err := s.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.Published {
		return nil, domain.ErrNotFound
	}
	return page, nil
}

func (s *PageService) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	return s.pageRepo.GetBySlug(ctx, slug)
}

func (s *PageService) List(ctx context.Context) ([]*domain.Page, error) {
	return s.pageRepo.List(ctx)
}

func (s *PageService) Create(ctx context.Context, page *domain.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}
	if _, err := s.pageRepo.GetBySlug(ctx, page.Slug); err == nil {
		return domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if page.ID == uuid.Nil {
		page.ID = uuid.New()
	}
	return s.pageRepo.Create(ctx, page)
}

func (s *PageService) Update(ctx context.Context, page *domain.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}
	existing, err := s.pageRepo.GetBySlug(ctx, page.Slug)
	if err == nil && existing.ID != page.ID {
		return domain.ErrSlugTaken
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return s.pageRepo.Update(ctx, page)
}

func (s *PageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.pageRepo.Delete(ctx, id)
}
