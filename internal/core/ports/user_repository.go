package ports

import (
	"context"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

// UserRepository defines persistence for storefront accounts.
type UserRepository interface {
	// FindByFiveMID looks up the account linked to a FiveM subject.
	// Returns domain.ErrUserNotFound when no account is linked.
	FindByFiveMID(ctx context.Context, fivemID string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create inserts a new account. A unique index on fivem_id makes
	// concurrent creates for the same subject fail with domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
