package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"fotostudio/internal/domain"
	"fotostudio/internal/mail"
	"fotostudio/internal/media"
	"fotostudio/internal/repository"
)

type LeadService struct {
	leadRepo *repository.LeadRepository
	mailer   *mail.Mailer
}

func NewLeadService(leadRepo *repository.LeadRepository, mailer *mail.Mailer) *LeadService {
	return &LeadService{
		leadRepo: leadRepo,
		mailer:   mailer,
	}
}

// Submit сохраняет заявку и уведомляет администратора. Письмо — best
// effort: заявка уже в БД, ошибка SMTP клиента не касается.
func (s *LeadService) Submit(ctx context.Context, lead *domain.Lead) error {
	if lead.Name == "" || (lead.Phone == "" && lead.Email == "") {
		return fmt.Errorf("%w: name and phone or email are required", media.ErrValidation)
	}

	lead.ID = uuid.New()
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return err
	}

	if err := s.mailer.SendLeadNotification(lead); err != nil {
		log.Printf("[Leads] Failed to send notification for lead %s: %v", lead.ID, err)
	}

	return nil
}

func (s *LeadService) List(ctx context.Context) ([]domain.Lead, error) {
	return s.leadRepo.List(ctx)
}

func (s *LeadService) MarkProcessed(ctx context.Context, id uuid.UUID, processed bool) error {
	return s.leadRepo.SetProcessed(ctx, id, processed)
}

func (s *LeadService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.leadRepo.Delete(ctx, id)
}
