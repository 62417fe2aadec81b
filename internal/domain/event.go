package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event — съемка в портфолио: свадьба, корпоратив, выездная регистрация.
// CoverURL всегда выводим из CoverKey, отдельно он не живет.
type Event struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Slug        string     `json:"slug" db:"slug"`
	Description string     `json:"description" db:"description"`
	EventDate   *time.Time `json:"event_date,omitempty" db:"event_date"`
	CoverURL    string     `json:"cover_url" db:"cover_url"`
	CoverKey    string     `json:"cover_key" db:"cover_key"`
	Published   bool       `json:"published" db:"published"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type Photo struct {
	ID         uuid.UUID `json:"id" db:"id"`
	EventID    uuid.UUID `json:"event_id" db:"event_id"`
	URL        string    `json:"url" db:"url"`
	Key        string    `json:"key" db:"key"`
	PreviewURL string    `json:"preview_url,omitempty" db:"preview_url"`
	Position   int       `json:"position" db:"sort_order"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type EventContent struct {
	Event  Event   `json:"event"`
	Photos []Photo `json:"photos"`
}
