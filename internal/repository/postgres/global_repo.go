package postgres

import (
	"context"
	"errors"

	"github.com/evan/sports-club-website/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type globalRepository struct {
	db *gorm.DB
}

func NewGlobalRepository(db *gorm.DB) *globalRepository {
	return &globalRepository{db: db}
}

func (r *globalRepository) Get(ctx context.Context, key string) (*domain.SiteGlobal, error) {
	var global domain.SiteGlobal
	err := r.db.WithContext(ctx).First(&global, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &global, nil
}

func (r *globalRepository) Upsert(ctx context.Context, global *domain.SiteGlobal) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(global).Error
}
