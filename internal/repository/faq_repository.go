package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fotostudio/internal/domain"
)

type FAQRepository struct {
	db *sqlx.DB
}

func NewFAQRepository(db *sqlx.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) Create(ctx context.Context, faq *domain.FAQ) error {
	query := `
        INSERT INTO faqs (id, question, answer, sort_order)
        VALUES ($1, $2, $3,
            COALESCE((SELECT MAX(sort_order) + 1 FROM faqs), 0))
        RETURNING sort_order, created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		faq.ID,
		faq.Question,
		faq.Answer,
	).Scan(&faq.Position, &faq.CreatedAt, &faq.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}

	return nil
}

func (r *FAQRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FAQ, error) {
	var faq domain.FAQ
	query := `SELECT * FROM faqs WHERE id = $1`
	if err := r.db.GetContext(ctx, &faq, query, id); err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *FAQRepository) List(ctx context.Context) ([]domain.FAQ, error) {
	faqs := make([]domain.FAQ, 0)
	query := `SELECT * FROM faqs ORDER BY sort_order, created_at`
	if err := r.db.SelectContext(ctx, &faqs, query); err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return faqs, nil
}

func (r *FAQRepository) Update(ctx context.Context, faq *domain.FAQ) error {
	query := `
        UPDATE faqs
        SET question = $2,
            answer = $3,
            sort_order = $4,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, faq.ID, faq.Question, faq.Answer, faq.Position).
		Scan(&faq.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update faq: %w", err)
	}

	return nil
}

func (r *FAQRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}
	return nil
}
