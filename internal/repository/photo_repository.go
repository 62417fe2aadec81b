package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fotostudio/internal/domain"
)

type PhotoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	query := `
        INSERT INTO photos (id, event_id, url, key, preview_url, sort_order)
        VALUES ($1, $2, $3, $4, $5,
            COALESCE((SELECT MAX(sort_order) + 1 FROM photos WHERE event_id = $2), 0))
        RETURNING sort_order, created_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		photo.ID,
		photo.EventID,
		photo.URL,
		photo.Key,
		photo.PreviewURL,
	).Scan(&photo.Position, &photo.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}

	return nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	var photo domain.Photo
	query := `SELECT * FROM photos WHERE id = $1`
	if err := r.db.GetContext(ctx, &photo, query, id); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Photo, error) {
	photos := make([]domain.Photo, 0)
	query := `SELECT * FROM photos WHERE event_id = $1 ORDER BY sort_order, created_at`
	if err := r.db.SelectContext(ctx, &photos, query, eventID); err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

func (r *PhotoRepository) UpdatePosition(ctx context.Context, id uuid.UUID, position int) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE photos SET sort_order = $2 WHERE id = $1`, id, position); err != nil {
		return fmt.Errorf("failed to update photo position: %w", err)
	}
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}
