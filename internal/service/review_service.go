package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fotostudio/internal/domain"
	"fotostudio/internal/media"
	"fotostudio/internal/repository"
)

const (
	minRating = 1
	maxRating = 5
)

// ReviewService принимает отзывы и комментарии посетителей. Все публичные
// отправки попадают на премодерацию: наружу уходит только одобренное.
type ReviewService struct {
	reviewRepo  *repository.ReviewRepository
	commentRepo *repository.CommentRepository
	cleanup     *media.Coordinator
}

func NewReviewService(
	reviewRepo *repository.ReviewRepository,
	commentRepo *repository.CommentRepository,
	cleanup *media.Coordinator,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		cleanup:     cleanup,
	}
}

func (s *ReviewService) SubmitReview(ctx context.Context, review *domain.Review) error {
	if review.Author == "" || review.Text == "" {
		return fmt.Errorf("%w: author and text are required", media.ErrValidation)
	}
	if review.Rating < minRating || review.Rating > maxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", media.ErrValidation, minRating, maxRating)
	}

	review.ID = uuid.New()
	review.Approved = false
	return s.reviewRepo.Create(ctx, review)
}

func (s *ReviewService) ApproveReview(ctx context.Context, id uuid.UUID) error {
	return s.reviewRepo.SetApproved(ctx, id, true)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	if review.AvatarKey != "" || review.AvatarURL != "" {
		ref := review.AvatarKey
		if ref == "" {
			ref = review.AvatarURL
		}
		s.cleanup.Remove(ctx, ref)
	}

	return nil
}

func (s *ReviewService) ListReviews(ctx context.Context, approvedOnly bool) ([]domain.Review, error) {
	return s.reviewRepo.List(ctx, approvedOnly)
}

func (s *ReviewService) AddComment(ctx context.Context, comment *domain.Comment) error {
	if comment.Author == "" || comment.Text == "" {
		return fmt.Errorf("%w: author and text are required", media.ErrValidation)
	}

	comment.ID = uuid.New()
	comment.Approved = false
	return s.commentRepo.Create(ctx, comment)
}

func (s *ReviewService) ApproveComment(ctx context.Context, id uuid.UUID) error {
	return s.commentRepo.SetApproved(ctx, id, true)
}

func (s *ReviewService) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return s.commentRepo.Delete(ctx, id)
}

func (s *ReviewService) ListComments(ctx context.Context, eventID uuid.UUID, approvedOnly bool) ([]domain.Comment, error) {
	return s.commentRepo.ListByEvent(ctx, eventID, approvedOnly)
}
