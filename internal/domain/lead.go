package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lead — заявка с формы обратной связи.
type Lead struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Phone     string     `json:"phone" db:"phone"`
	Email     string     `json:"email" db:"email"`
	Message   string     `json:"message" db:"message"`
	EventDate *time.Time `json:"event_date,omitempty" db:"event_date"`
	Processed bool       `json:"processed" db:"processed"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
