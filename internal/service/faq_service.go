package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fotostudio/internal/domain"
	"fotostudio/internal/media"
	"fotostudio/internal/repository"
)

type FAQService struct {
	faqRepo *repository.FAQRepository
}

func NewFAQService(faqRepo *repository.FAQRepository) *FAQService {
	return &FAQService{faqRepo: faqRepo}
}

func (s *FAQService) Create(ctx context.Context, faq *domain.FAQ) error {
	if faq.Question == "" || faq.Answer == "" {
		return fmt.Errorf("%w: question and answer are required", media.ErrValidation)
	}
	if faq.ID == uuid.Nil {
		faq.ID = uuid.New()
	}
	return s.faqRepo.Create(ctx, faq)
}

func (s *FAQService) Update(ctx context.Context, faq *domain.FAQ) error {
	if faq.Question == "" || faq.Answer == "" {
		return fmt.Errorf("%w: question and answer are required", media.ErrValidation)
	}
	return s.faqRepo.Update(ctx, faq)
}

func (s *FAQService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.faqRepo.Delete(ctx, id)
}

func (s *FAQService) List(ctx context.Context) ([]domain.FAQ, error) {
	return s.faqRepo.List(ctx)
}
