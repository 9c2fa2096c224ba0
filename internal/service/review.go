package service

import (
	"context"
	"fmt"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) Submit(ctx context.Context, userID *int32, author string, rating int32, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	if author == "" {
		return nil, fmt.Errorf("review author is required")
	}

	// Reviews go live only after moderation.
	review := &domain.Review{
		UserID:   userID,
		Author:   author,
		Rating:   rating,
		Comment:  comment,
		Approved: false,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListPublic(ctx context.Context, limit int32) ([]domain.Review, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.reviewRepo.ListApproved(ctx, limit)
}

func (s *reviewService) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Review, int32, error) {
	return s.reviewRepo.ListAll(ctx, page, pageSize)
}

func (s *reviewService) Moderate(ctx context.Context, id int32, approved bool) error {
	return s.reviewRepo.SetApproved(ctx, id, approved)
}

func (s *reviewService) Delete(ctx context.Context, id int32) error {
	return s.reviewRepo.Delete(ctx, id)
}
