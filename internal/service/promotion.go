package service

import (
	"context"
	"sort"

	"atlasrent-backend/internal/booking"
	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

type promotionService struct {
	promoRepo repository.PromotionRepository
}

func NewPromotionService(promoRepo repository.PromotionRepository) PromotionService {
	return &promotionService{promoRepo: promoRepo}
}

func (s *promotionService) ListFreeDaysTiers(ctx context.Context) ([]domain.FreeDaysTier, error) {
	return s.promoRepo.ListFreeDaysTiers(ctx)
}

// SaveFreeDaysTiers replaces the tier table after validating it. Malformed
// tier sets are rejected here, at the data-entry boundary, so the evaluator
// can assume well-formed input.
func (s *promotionService) SaveFreeDaysTiers(ctx context.Context, tiers []domain.FreeDaysTier) ([]domain.FreeDaysTier, error) {
	if err := booking.ValidateTiers(tiers); err != nil {
		return nil, err
	}
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].MinRentalDays < tiers[j].MinRentalDays
	})
	if err := s.promoRepo.ReplaceFreeDaysTiers(ctx, tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

func (s *promotionService) ListInsuranceOptions(ctx context.Context) ([]domain.InsuranceOption, error) {
	return s.promoRepo.ListInsuranceOptions(ctx)
}

func (s *promotionService) SaveInsuranceOption(ctx context.Context, opt *domain.InsuranceOption) error {
	if opt.PricePerDay < 0 {
		return &booking.ConfigurationError{Reason: "insurance price per day cannot be negative"}
	}
	if opt.Name == "" {
		return &booking.ConfigurationError{Reason: "insurance option needs a name"}
	}
	if opt.ID == 0 {
		return s.promoRepo.CreateInsuranceOption(ctx, opt)
	}
	return s.promoRepo.UpdateInsuranceOption(ctx, opt)
}

func (s *promotionService) DeleteInsuranceOption(ctx context.Context, id int32) error {
	return s.promoRepo.DeleteInsuranceOption(ctx, id)
}
