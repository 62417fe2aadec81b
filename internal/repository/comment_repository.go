package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fotostudio/internal/domain"
)

type CommentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
        INSERT INTO comments (id, event_id, author, text, approved)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		comment.ID,
		comment.EventID,
		comment.Author,
		comment.Text,
		comment.Approved,
	).Scan(&comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *CommentRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, approvedOnly bool) ([]domain.Comment, error) {
	comments := make([]domain.Comment, 0)
	query := `SELECT * FROM comments WHERE event_id = $1 ORDER BY created_at`
	if approvedOnly {
		query = `SELECT * FROM comments WHERE event_id = $1 AND approved = TRUE ORDER BY created_at`
	}
	if err := r.db.SelectContext(ctx, &comments, query, eventID); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE comments SET approved = $2 WHERE id = $1`, id, approved); err != nil {
		return fmt.Errorf("failed to update comment approval: %w", err)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
