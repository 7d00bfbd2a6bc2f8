package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tournament is an external or hosted event announced on the site. Unlike a
// Program it has no registration flow; ExternalLink points at the organizer
// when one exists.
type Tournament struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Date         string    `json:"date"` // calendar date, YYYY-MM-DD
	Location     string    `json:"location"`
	ExternalLink string    `json:"externalLink"`
	ImageURL     string    `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
