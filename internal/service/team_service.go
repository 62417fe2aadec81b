package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"fotostudio/internal/domain"
	"fotostudio/internal/media"
	"fotostudio/internal/repository"
)

type TeamService struct {
	teamRepo *repository.TeamRepository
	cleanup  *media.Coordinator
}

func NewTeamService(teamRepo *repository.TeamRepository, cleanup *media.Coordinator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		cleanup:  cleanup,
	}
}

func (s *TeamService) Create(ctx context.Context, member *domain.TeamMember) error {
	if member.Name == "" {
		return fmt.Errorf("%w: name is required", media.ErrValidation)
	}
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	return s.teamRepo.Create(ctx, member)
}

// Update обновляет сотрудника. Замененная фотография удаляется из
// хранилища только после успешной записи новой ссылки.
func (s *TeamService) Update(ctx context.Context, member *domain.TeamMember) error {
	if member.Name == "" {
		return fmt.Errorf("%w: name is required", media.ErrValidation)
	}

	current, err := s.teamRepo.GetByID(ctx, member.ID)
	if err != nil {
		return fmt.Errorf("failed to get team member: %w", err)
	}

	if err := s.teamRepo.Update(ctx, member); err != nil {
		return err
	}

	oldRef := current.PhotoKey
	if oldRef == "" {
		oldRef = current.PhotoURL
	}
	newRef := member.PhotoKey
	if newRef == "" {
		newRef = member.PhotoURL
	}
	if outcome := s.cleanup.Supersede(ctx, oldRef, newRef); outcome.Deleted {
		log.Printf("[Team] Removed superseded photo for member %s", member.ID)
	}

	return nil
}

func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	member, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return err
	}

	ref := member.PhotoKey
	if ref == "" {
		ref = member.PhotoURL
	}
	s.cleanup.Remove(ctx, ref)

	return nil
}

func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TeamMember, error) {
	return s.teamRepo.GetByID(ctx, id)
}

func (s *TeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	return s.teamRepo.List(ctx)
}
