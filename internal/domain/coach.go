package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coach is a staff member shown on the coaches section of the site.
type Coach struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"not null"`
	Role         string    `json:"role"` // e.g. "Head Coach"
	Bio          string    `json:"bio"`  // markdown
	PhotoURL     string    `json:"photoUrl"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
