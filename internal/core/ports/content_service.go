package ports

import (
	"context"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

// ContentService serves the landing-page content endpoints.
type ContentService interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	FeaturedServers(ctx context.Context) ([]domain.FeaturedServer, error)
	Testimonials(ctx context.Context) ([]domain.Testimonial, error)
	FAQs(ctx context.Context) ([]domain.FAQ, error)
	TeamMembers(ctx context.Context) ([]domain.TeamMember, error)
}
