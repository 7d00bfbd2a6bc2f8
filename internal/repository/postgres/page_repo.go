package postgres

import (
	"context"
	"errors"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *pageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(ctx context.Context, page *domain.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *pageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Page, error) {
	var page domain.Page
	err := r.db.WithContext(ctx).First(&page, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	var page domain.Page
	err := r.db.WithContext(ctx).First(&page, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) List(ctx context.Context) ([]*domain.Page, error) {
	var pages []*domain.Page
	if err := r.db.WithContext(ctx).Order("slug ASC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageRepository) Update(ctx context.Context, page *domain.Page) error {
	return r.db.WithContext(ctx).Save(page).Error
}

func (r *pageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Page{}, "id = ?", id).Error
}
