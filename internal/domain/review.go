package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review — отзыв клиента. Публикуется только после модерации.
type Review struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Author    string    `json:"author" db:"author"`
	Rating    int       `json:"rating" db:"rating"`
	Text      string    `json:"text" db:"text"`
	AvatarURL string    `json:"avatar_url,omitempty" db:"avatar_url"`
	AvatarKey string    `json:"avatar_key,omitempty" db:"avatar_key"`
	Approved  bool      `json:"approved" db:"approved"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Comment — комментарий к съемке, тоже премодерация.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	EventID   uuid.UUID `json:"event_id" db:"event_id"`
	Author    string    `json:"author" db:"author"`
	Text      string    `json:"text" db:"text"`
	Approved  bool      `json:"approved" db:"approved"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
