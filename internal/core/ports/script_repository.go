package ports

import (
	"context"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

// ScriptRepository defines persistence operations for catalog scripts.
type ScriptRepository interface {
	List(ctx context.Context) ([]domain.Script, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Script, error)
	FindByID(ctx context.Context, id string) (*domain.Script, error)
	// Insert persists a new script. A unique index on slug makes collisions
	// fail with domain.ErrDuplicateSlug.
	Insert(ctx context.Context, s *domain.Script) error
	// Search matches q case-insensitively against title, description, and
	// key benefits.
	Search(ctx context.Context, q string) ([]domain.Script, error)
	// UpdateRating sets the denormalized rating fields on a script.
	UpdateRating(ctx context.Context, id string, rating float64, count int) error
}
