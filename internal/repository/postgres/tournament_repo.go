package postgres

import (
	"context"
	"errors"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tournamentRepository struct {
	db *gorm.DB
}

func NewTournamentRepository(db *gorm.DB) *tournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) Create(ctx context.Context, tournament *domain.Tournament) error {
	return r.db.WithContext(ctx).Create(tournament).Error
}

func (r *tournamentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tournament, error) {
	var tournament domain.Tournament
	err := r.db.WithContext(ctx).First(&tournament, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

func (r *tournamentRepository) List(ctx context.Context, limit int) ([]*domain.Tournament, error) {
	q := r.db.WithContext(ctx).Order("date ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var tournaments []*domain.Tournament
	if err := q.Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *tournamentRepository) Update(ctx context.Context, tournament *domain.Tournament) error {
	return r.db.WithContext(ctx).Save(tournament).Error
}

func (r *tournamentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Tournament{}, "id = ?", id).Error
}
