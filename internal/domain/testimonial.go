package domain

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a parent or player quote displayed on the site.
type Testimonial struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string    `json:"name" gorm:"not null"`
	Occupation string    `json:"occupation"`
	Quote      string    `json:"quote" gorm:"not null"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
