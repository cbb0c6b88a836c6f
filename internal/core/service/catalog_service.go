package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// CatalogService serves script listings, detail views, and global search.
type CatalogService struct {
	scripts ports.ScriptRepository
	reviews ports.ReviewRepository
	posts   ports.BlogRepository
	content ports.ContentRepository
	cache   ListingCache
	log     zerolog.Logger
}

func NewCatalogService(
	scripts ports.ScriptRepository,
	reviews ports.ReviewRepository,
	posts ports.BlogRepository,
	content ports.ContentRepository,
	cache ListingCache,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		scripts: scripts,
		reviews: reviews,
		posts:   posts,
		content: content,
		cache:   cache,
		log:     log,
	}
}

// ListScripts returns the full catalog, served from cache when warm.
func (s *CatalogService) ListScripts(ctx context.Context) ([]domain.Script, error) {
	var cached []domain.Script
	if ok, err := s.cache.Get(ctx, CacheKeyScripts, &cached); err != nil {
		s.log.Warn().Err(err).Msg("scripts cache read failed, falling back to store")
	} else if ok {
		return cached, nil
	}

	scripts, err := s.scripts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}

	if err := s.cache.Set(ctx, CacheKeyScripts, scripts); err != nil {
		s.log.Warn().Err(err).Msg("scripts cache write failed")
	}
	return scripts, nil
}

// GetScript returns a single script with its reviews. Detail views are not
// cached: they embed reviews, which change more often than the catalog.
func (s *CatalogService) GetScript(ctx context.Context, slug string) (*ports.ScriptDetail, error) {
	script, err := s.scripts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByScript(ctx, script.ID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for %s: %w", slug, err)
	}

	return &ports.ScriptDetail{Script: *script, Reviews: reviews}, nil
}

// Search queries blog posts, scripts, and team members. An empty query
// returns empty result lists without touching the store.
func (s *CatalogService) Search(ctx context.Context, q string) (*ports.SearchResult, error) {
	result := &ports.SearchResult{
		BlogPosts:   []domain.BlogPost{},
		Scripts:     []domain.Script{},
		TeamMembers: []domain.TeamMember{},
	}
	if q == "" {
		return result, nil
	}

	posts, err := s.posts.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	scripts, err := s.scripts.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search scripts: %w", err)
	}
	members, err := s.content.SearchTeamMembers(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search team members: %w", err)
	}

	if posts != nil {
		result.BlogPosts = posts
	}
	if scripts != nil {
		result.Scripts = scripts
	}
	if members != nil {
		result.TeamMembers = members
	}
	return result, nil
}
