package service

import (
	"context"
	"errors"
	"time"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/repository"
)

type GlobalService struct {
	globalRepo repository.GlobalRepository
}

func NewGlobalService(globalRepo repository.GlobalRepository) *GlobalService {
	return &GlobalService{globalRepo: globalRepo}
}

func (s *GlobalService) Get(ctx context.Context, key string) (*domain.SiteGlobal, error) {
	if !domain.IsValidGlobalKey(key) {
		return nil, domain.ErrInvalidGlobalKey
	}
	return s.globalRepo.Get(ctx, key)
}

func (s *GlobalService) Update(ctx context.Context, global *domain.SiteGlobal) error {
	if !domain.IsValidGlobalKey(global.Key) {
		return domain.ErrInvalidGlobalKey
	}
	global.UpdatedAt = time.Now()
	return s.globalRepo.Upsert(ctx, global)
}

// EnsureDefaults seeds missing singleton rows on startup so the site always
// has a header and footer document to render.
func (s *GlobalService) EnsureDefaults(ctx context.Context) error {
	for _, key := range domain.AllGlobalKeys {
		_, err := s.globalRepo.Get(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		seed, err := domain.DefaultGlobal(key)
		if err != nil {
			return err
		}
		if err := s.globalRepo.Upsert(ctx, seed); err != nil {
			return err
		}
	}
	return nil
}
