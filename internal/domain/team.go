package domain

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	Bio       string    `json:"bio" db:"bio"`
	PhotoURL  string    `json:"photo_url" db:"photo_url"`
	PhotoKey  string    `json:"photo_key" db:"photo_key"`
	Position  int       `json:"position" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
