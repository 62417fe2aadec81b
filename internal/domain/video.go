package domain

import (
	"time"

	"github.com/google/uuid"
)

// Video — ролик на главной или в портфолио. Постер и длительность
// заполняются при загрузке, если ffmpeg смог их вытащить.
type Video struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	URL         string    `json:"url" db:"url"`
	Key         string    `json:"key" db:"key"`
	PosterURL   string    `json:"poster_url,omitempty" db:"poster_url"`
	PosterKey   string    `json:"poster_key,omitempty" db:"poster_key"`
	DurationSec float64   `json:"duration_sec,omitempty" db:"duration_sec"`
	Position    int       `json:"position" db:"sort_order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
