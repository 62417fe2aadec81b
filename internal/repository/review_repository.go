package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fotostudio/internal/domain"
)

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
        INSERT INTO reviews (id, author, rating, text, avatar_url, avatar_key, approved)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		review.ID,
		review.Author,
		review.Rating,
		review.Text,
		review.AvatarURL,
		review.AvatarKey,
		review.Approved,
	).Scan(&review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var review domain.Review
	query := `SELECT * FROM reviews WHERE id = $1`
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) List(ctx context.Context, approvedOnly bool) ([]domain.Review, error) {
	reviews := make([]domain.Review, 0)
	query := `SELECT * FROM reviews ORDER BY created_at DESC`
	if approvedOnly {
		query = `SELECT * FROM reviews WHERE approved = TRUE ORDER BY created_at DESC`
	}
	if err := r.db.SelectContext(ctx, &reviews, query); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE reviews SET approved = $2 WHERE id = $1`, id, approved); err != nil {
		return fmt.Errorf("failed to update review approval: %w", err)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
