package ports

import (
	"context"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

// ScriptDetail is the full catalog view of a single script, including its
// reviews.
type ScriptDetail struct {
	Script  domain.Script
	Reviews []domain.Review
}

// SearchResult groups matches across the searchable collections.
type SearchResult struct {
	BlogPosts   []domain.BlogPost
	Scripts     []domain.Script
	TeamMembers []domain.TeamMember
}

// CatalogService defines read operations over the script catalog.
type CatalogService interface {
	ListScripts(ctx context.Context) ([]domain.Script, error)
	GetScript(ctx context.Context, slug string) (*ScriptDetail, error)
	Search(ctx context.Context, q string) (*SearchResult, error)
}
