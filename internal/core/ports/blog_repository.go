package ports

import (
	"context"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

// BlogRepository defines persistence for blog posts.
type BlogRepository interface {
	List(ctx context.Context) ([]domain.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	// Insert persists a new post. A unique index on slug makes collisions
	// fail with domain.ErrDuplicateSlug.
	Insert(ctx context.Context, p *domain.BlogPost) error
	// Search matches q case-insensitively against title, description, and
	// content.
	Search(ctx context.Context, q string) ([]domain.BlogPost, error)
}
