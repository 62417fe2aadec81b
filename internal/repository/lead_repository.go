package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fotostudio/internal/domain"
)

type LeadRepository struct {
	db *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	query := `
        INSERT INTO leads (id, name, phone, email, message, event_date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		lead.ID,
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.Message,
		lead.EventDate,
	).Scan(&lead.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	leads := make([]domain.Lead, 0)
	query := `SELECT * FROM leads ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) SetProcessed(ctx context.Context, id uuid.UUID, processed bool) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE leads SET processed = $2 WHERE id = $1`, id, processed); err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}
