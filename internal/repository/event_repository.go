package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fotostudio/internal/domain"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
        INSERT INTO events (id, title, slug, description, event_date, cover_url, cover_key, published)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		event.ID,
		event.Title,
		event.Slug,
		event.Description,
		event.EventDate,
		event.CoverURL,
		event.CoverKey,
		event.Published,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT * FROM events WHERE id = $1`
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT * FROM events WHERE slug = $1`
	if err := r.db.GetContext(ctx, &event, query, slug); err != nil {
		return nil, err
	}
	return &event, nil
}

// List возвращает съемки, для публичной части только опубликованные.
func (r *EventRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Event, error) {
	events := make([]domain.Event, 0)
	query := `SELECT * FROM events ORDER BY event_date DESC NULLS LAST, created_at DESC`
	if publishedOnly {
		query = `SELECT * FROM events WHERE published = TRUE ORDER BY event_date DESC NULLS LAST, created_at DESC`
	}
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
        UPDATE events
        SET title = $2,
            slug = $3,
            description = $4,
            event_date = $5,
            cover_url = $6,
            cover_key = $7,
            published = $8,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		event.ID,
		event.Title,
		event.Slug,
		event.Description,
		event.EventDate,
		event.CoverURL,
		event.CoverKey,
		event.Published,
	).Scan(&event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
