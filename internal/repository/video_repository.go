package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fotostudio/internal/domain"
)

type VideoRepository struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, video *domain.Video) error {
	query := `
        INSERT INTO videos (id, title, url, key, poster_url, poster_key, duration_sec, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6, $7,
            COALESCE((SELECT MAX(sort_order) + 1 FROM videos), 0))
        RETURNING sort_order, created_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		video.ID,
		video.Title,
		video.URL,
		video.Key,
		video.PosterURL,
		video.PosterKey,
		video.DurationSec,
	).Scan(&video.Position, &video.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	var video domain.Video
	query := `SELECT * FROM videos WHERE id = $1`
	if err := r.db.GetContext(ctx, &video, query, id); err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) List(ctx context.Context) ([]domain.Video, error) {
	videos := make([]domain.Video, 0)
	query := `SELECT * FROM videos ORDER BY sort_order, created_at`
	if err := r.db.SelectContext(ctx, &videos, query); err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}
