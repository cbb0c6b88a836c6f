package ports

import (
	"context"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

// CallbackResult is returned after a successful FiveM callback exchange.
type CallbackResult struct {
	Username string
	Email    string
	FiveMID  string
	// Token is a signed session JWT for subsequent authenticated calls.
	Token string
}

// AuthService implements the FiveM OAuth login flow.
type AuthService interface {
	// LoginURL returns the provider authorization URL the browser should
	// navigate to. No side effects.
	LoginURL() string
	// Callback exchanges the authorization code for an access token, fetches
	// the user profile, and resolves the local account (find-or-create).
	Callback(ctx context.Context, code string) (*CallbackResult, error)
	// User returns the account identified by a session token's subject claim.
	User(ctx context.Context, id string) (*domain.User, error)
}
