package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/zrg-scripts/storefront-api/internal/api/metrics"
	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// exchangeTimeout bounds each outbound call to the identity provider. The
// provider contract specifies no timeout; this is a local hardening choice.
const exchangeTimeout = 10 * time.Second

// OAuthConfig carries the FiveM provider settings, injected at startup.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	UserinfoURL  string
}

// AuthService implements the FiveM login flow: authorization URL building,
// code-for-token exchange, userinfo fetch, and find-or-create user resolution.
type AuthService struct {
	users       ports.UserRepository
	oauth       *oauth2.Config
	userinfoURL string
	client      *http.Client
	jwtSecret   string
	tokenTTL    time.Duration
	log         zerolog.Logger
}

func NewAuthService(users ports.UserRepository, cfg OAuthConfig, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users: users,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		userinfoURL: cfg.UserinfoURL,
		client:      &http.Client{Timeout: exchangeTimeout},
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		log:         log,
	}
}

// LoginURL returns the provider authorization URL. The caller performs the
// navigation; nothing is stored.
func (s *AuthService) LoginURL() string {
	return s.oauth.AuthCodeURL("")
}

// userProfile is the userinfo payload returned by the provider. Only sub is
// required; it correlates the external identity to a local account.
type userProfile struct {
	Subject           string `json:"sub"`
	Email             string `json:"email"`
	PreferredUsername string `json:"preferred_username"`
}

// Callback runs the two-step exchange and resolves the local user. Each stage
// short-circuits with its own sentinel error; no user is created unless both
// remote calls succeed.
func (s *AuthService) Callback(ctx context.Context, code string) (*ports.CallbackResult, error) {
	if code == "" {
		metrics.LoginErrorsTotal.WithLabelValues("code_missing").Inc()
		return nil, domain.ErrCodeMissing
	}

	ctx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	token, err := s.oauth.Exchange(context.WithValue(ctx, oauth2.HTTPClient, s.client), code)
	if err != nil {
		s.log.Warn().Err(err).Msg("fivem token exchange failed")
		metrics.LoginErrorsTotal.WithLabelValues("token_exchange").Inc()
		return nil, domain.ErrTokenExchange
	}

	profile, err := s.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("fivem userinfo fetch failed")
		metrics.LoginErrorsTotal.WithLabelValues("userinfo").Inc()
		return nil, domain.ErrUserInfoFetch
	}

	user, created, err := s.resolveUser(ctx, profile)
	if err != nil {
		metrics.LoginErrorsTotal.WithLabelValues("store").Inc()
		return nil, err
	}

	sessionToken, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues(strconv.FormatBool(created)).Inc()
	s.log.Info().Str("fivem_id", user.FiveMID).Str("username", user.Username).Bool("new_user", created).Msg("fivem login")

	return &ports.CallbackResult{
		Username: user.Username,
		Email:    user.Email,
		FiveMID:  user.FiveMID,
		Token:    sessionToken,
	}, nil
}

func (s *AuthService) fetchUserInfo(ctx context.Context, accessToken string) (*userProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userinfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}

	var profile userProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if profile.Subject == "" {
		return nil, errors.New("userinfo missing sub claim")
	}
	return &profile, nil
}

// resolveUser finds the account linked to the FiveM subject or creates one,
// reporting whether a new account was created. Existing accounts are used
// as-is: profile fields are not refreshed on repeat login (first login wins).
func (s *AuthService) resolveUser(ctx context.Context, profile *userProfile) (*domain.User, bool, error) {
	user, err := s.users.FindByFiveMID(ctx, profile.Subject)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, err
	}

	username := profile.PreferredUsername
	if username == "" {
		username = "fivem_" + profile.Subject
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:  username,
		Email:     profile.Email,
		FiveMID:   profile.Subject,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			// A concurrent callback for the same subject won the insert race;
			// use its row.
			existing, findErr := s.users.FindByFiveMID(ctx, profile.Subject)
			return existing, false, findErr
		}
		return nil, false, err
	}
	return created, true, nil
}

// User returns the account identified by a session token's subject claim.
func (s *AuthService) User(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"fivem_id": user.FiveMID,
		"jti":      uuid.NewString(),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
