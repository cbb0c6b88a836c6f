package ports

import (
	"context"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

// ReviewRepository defines persistence for script reviews.
type ReviewRepository interface {
	Insert(ctx context.Context, r *domain.Review) error
	ListByScript(ctx context.Context, scriptID string) ([]domain.Review, error)
	// AggregateByScript returns the average rating (1 decimal place) and the
	// review count for a script. Zero values when no reviews exist.
	AggregateByScript(ctx context.Context, scriptID string) (float64, int, error)
}
