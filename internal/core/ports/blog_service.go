package ports

import (
	"context"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

// BlogService serves the blog read endpoints.
type BlogService interface {
	ListPosts(ctx context.Context) ([]domain.BlogPost, error)
	GetPost(ctx context.Context, slug string) (*domain.BlogPost, error)
}
