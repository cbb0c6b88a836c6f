package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// BlogService serves the blog read endpoints.
type BlogService struct {
	repo  ports.BlogRepository
	cache ListingCache
	log   zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, cache ListingCache, log zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, cache: cache, log: log}
}

// ListPosts returns all posts, served from cache when warm. The full content
// body is stripped by the handler; the cache stores complete documents.
func (s *BlogService) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var cached []domain.BlogPost
	if ok, err := s.cache.Get(ctx, CacheKeyPosts, &cached); err != nil {
		s.log.Warn().Err(err).Msg("posts cache read failed, falling back to store")
	} else if ok {
		return cached, nil
	}

	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if err := s.cache.Set(ctx, CacheKeyPosts, posts); err != nil {
		s.log.Warn().Err(err).Msg("posts cache write failed")
	}
	return posts, nil
}

func (s *BlogService) GetPost(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.repo.FindBySlug(ctx, slug)
}
