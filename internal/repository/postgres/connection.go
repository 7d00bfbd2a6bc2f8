package postgres

import (
	"github.com/evan/sports-club-website/internal/domain"
	"github.com/evan/sports-club-website/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate generates the storage schema from the collection models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.UserSession{},
		&domain.Coach{},
		&domain.Program{},
		&domain.Testimonial{},
		&domain.Tournament{},
		&domain.Page{},
		&domain.SiteGlobal{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Program:     NewProgramRepository(db),
		Coach:       NewCoachRepository(db),
		Testimonial: NewTestimonialRepository(db),
		Tournament:  NewTournamentRepository(db),
		Page:        NewPageRepository(db),
		Global:      NewGlobalRepository(db),
		User:        NewUserRepository(db),
		Session:     NewSessionRepository(db),
	}
}
