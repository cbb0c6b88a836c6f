package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// ContentService serves the landing-page content. The testimonial, FAQ, and
// team member listings read through the cache; stats and featured servers are
// single small reads and go straight to the store.
type ContentService struct {
	repo  ports.ContentRepository
	cache ListingCache
	log   zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, cache ListingCache, log zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, cache: cache, log: log}
}

func (s *ContentService) Stats(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}

func (s *ContentService) FeaturedServers(ctx context.Context) ([]domain.FeaturedServer, error) {
	servers, err := s.repo.FeaturedServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured servers: %w", err)
	}
	return servers, nil
}

func (s *ContentService) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var cached []domain.Testimonial
	if ok, err := s.cache.Get(ctx, CacheKeyTestimonials, &cached); err != nil {
		s.log.Warn().Err(err).Msg("testimonials cache read failed, falling back to store")
	} else if ok {
		return cached, nil
	}

	testimonials, err := s.repo.Testimonials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	if err := s.cache.Set(ctx, CacheKeyTestimonials, testimonials); err != nil {
		s.log.Warn().Err(err).Msg("testimonials cache write failed")
	}
	return testimonials, nil
}

func (s *ContentService) FAQs(ctx context.Context) ([]domain.FAQ, error) {
	var cached []domain.FAQ
	if ok, err := s.cache.Get(ctx, CacheKeyFAQs, &cached); err != nil {
		s.log.Warn().Err(err).Msg("faqs cache read failed, falling back to store")
	} else if ok {
		return cached, nil
	}

	faqs, err := s.repo.FAQs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}

	if err := s.cache.Set(ctx, CacheKeyFAQs, faqs); err != nil {
		s.log.Warn().Err(err).Msg("faqs cache write failed")
	}
	return faqs, nil
}

func (s *ContentService) TeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	var cached []domain.TeamMember
	if ok, err := s.cache.Get(ctx, CacheKeyTeamMembers, &cached); err != nil {
		s.log.Warn().Err(err).Msg("team members cache read failed, falling back to store")
	} else if ok {
		return cached, nil
	}

	members, err := s.repo.TeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	if err := s.cache.Set(ctx, CacheKeyTeamMembers, members); err != nil {
		s.log.Warn().Err(err).Msg("team members cache write failed")
	}
	return members, nil
}
