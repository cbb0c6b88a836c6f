package ports

import (
	"context"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

// ContentRepository defines persistence for the landing-page content
// collections (stats, featured servers, testimonials, FAQs, team members).
type ContentRepository interface {
	// Stats returns the singleton stats document, or zero values when none
	// has been created yet.
	Stats(ctx context.Context) (*domain.Stats, error)
	FeaturedServers(ctx context.Context) ([]domain.FeaturedServer, error)
	Testimonials(ctx context.Context) ([]domain.Testimonial, error)
	FAQs(ctx context.Context) ([]domain.FAQ, error)
	TeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	// SearchTeamMembers matches q case-insensitively against name, role, and
	// short description.
	SearchTeamMembers(ctx context.Context, q string) ([]domain.TeamMember, error)
}
