package postgres

import (
	"context"
	"errors"

	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type programRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *programRepository {
	return &programRepository{db: db}
}

func (r *programRepository) Create(ctx context.Context, program *domain.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	var program domain.Program
	err := r.db.WithContext(ctx).First(&program, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

func (r *programRepository) GetBySlug(ctx context.Context, slug string, depth int) (*domain.Program, error) {
	q := r.db.WithContext(ctx)
	if depth > 0 {
		q = q.Preload("Coach")
	}
	var program domain.Program
	err := q.First(&program, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

func (r *programRepository) List(ctx context.Context, opts repository.ProgramListOptions) ([]*domain.Program, error) {
	q := r.db.WithContext(ctx).Order("start_date ASC, title ASC")

	if opts.ProgramType != "" && opts.ProgramType != domain.FacetAll {
		q = q.Where("program_type = ?", opts.ProgramType)
	}
	if opts.Location != "" && opts.Location != domain.FacetAll {
		q = q.Where("location = ?", opts.Location)
	}
	if opts.Featured != nil {
		q = q.Where("featured = ?", *opts.Featured)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Depth > 0 {
		q = q.Preload("Coach")
	}

	var programs []*domain.Program
	if err := q.Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) Update(ctx context.Context, program *domain.Program) error {
	return r.db.WithContext(ctx).Save(program).Error
}

func (r *programRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Program{}, "id = ?", id).Error
}
