package postgres

import (
	"context"
	"errors"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type coachRepository struct {
	db *gorm.DB
}

func NewCoachRepository(db *gorm.DB) *coachRepository {
	return &coachRepository{db: db}
}

func (r *coachRepository) Create(ctx context.Context, coach *domain.Coach) error {
	return r.db.WithContext(ctx).Create(coach).Error
}

func (r *coachRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Coach, error) {
	var coach domain.Coach
	err := r.db.WithContext(ctx).First(&coach, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &coach, nil
}

func (r *coachRepository) List(ctx context.Context, limit int) ([]*domain.Coach, error) {
	q := r.db.WithContext(ctx).Order("display_order ASC, name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var coaches []*domain.Coach
	if err := q.Find(&coaches).Error; err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *coachRepository) Update(ctx context.Context, coach *domain.Coach) error {
	return r.db.WithContext(ctx).Save(coach).Error
}

func (r *coachRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Coach{}, "id = ?", id).Error
}
