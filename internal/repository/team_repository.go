package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fotostudio/internal/domain"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	query := `
        INSERT INTO team_members (id, name, role, bio, photo_url, photo_key, sort_order)
        VALUES ($1, $2, $3, $4, $5, $6,
            COALESCE((SELECT MAX(sort_order) + 1 FROM team_members), 0))
        RETURNING sort_order, created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		member.ID,
		member.Name,
		member.Role,
		member.Bio,
		member.PhotoURL,
		member.PhotoKey,
	).Scan(&member.Position, &member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamMember, error) {
	var member domain.TeamMember
	query := `SELECT * FROM team_members WHERE id = $1`
	if err := r.db.GetContext(ctx, &member, query, id); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	members := make([]domain.TeamMember, 0)
	query := `SELECT * FROM team_members ORDER BY sort_order, created_at`
	if err := r.db.SelectContext(ctx, &members, query); err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

func (r *TeamRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	query := `
        UPDATE team_members
        SET name = $2,
            role = $3,
            bio = $4,
            photo_url = $5,
            photo_key = $6,
            sort_order = $7,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		member.ID,
		member.Name,
		member.Role,
		member.Bio,
		member.PhotoURL,
		member.PhotoKey,
		member.Position,
	).Scan(&member.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}
