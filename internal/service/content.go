package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

// knownSections are the section keys the admin editors manage. One generic
// store handles all of them; editors differ only in payload shape.
var knownSections = map[string]bool{
	domain.SectionHero:       true,
	domain.SectionWhyUs:      true,
	domain.SectionServices:   true,
	domain.SectionHowItWorks: true,
	domain.SectionFAQ:        true,
	domain.SectionFooter:     true,
}

type contentService struct {
	contentRepo  repository.ContentRepository
	locationRepo repository.LocationRepository
}

func NewContentService(contentRepo repository.ContentRepository, locationRepo repository.LocationRepository) ContentService {
	return &contentService{contentRepo: contentRepo, locationRepo: locationRepo}
}

func (s *contentService) GetSection(ctx context.Context, sectionKey string) (*domain.SiteContent, error) {
	if !knownSections[sectionKey] {
		return nil, fmt.Errorf("unknown content section %q: %w", sectionKey, ErrNotFound)
	}
	content, err := s.contentRepo.GetSection(ctx, sectionKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.SiteContent{SectionKey: sectionKey, Content: json.RawMessage("{}")}, nil
		}
		return nil, err
	}
	return content, nil
}

func (s *contentService) SaveSection(ctx context.Context, sectionKey string, content []byte) (*domain.SiteContent, error) {
	if !knownSections[sectionKey] {
		return nil, fmt.Errorf("unknown content section %q: %w", sectionKey, ErrNotFound)
	}
	if !json.Valid(content) {
		return nil, fmt.Errorf("section %s payload is not valid JSON", sectionKey)
	}
	section := &domain.SiteContent{SectionKey: sectionKey, Content: content}
	if err := s.contentRepo.UpsertSection(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *contentService) ListSections(ctx context.Context) ([]domain.SiteContent, error) {
	return s.contentRepo.ListSections(ctx)
}

func (s *contentService) ListLocations(ctx context.Context) ([]domain.PickupLocation, error) {
	return s.locationRepo.List(ctx)
}
