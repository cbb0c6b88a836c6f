package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	byFiveM map[string]*domain.User
	created []*domain.User
	nextID  int

	// raceOnCreate simulates a concurrent callback winning the insert: the
	// first Create fails with ErrUserExists after planting the winner's row.
	raceOnCreate *domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byFiveM: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByFiveMID(_ context.Context, fivemID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byFiveM[fivemID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byFiveM {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.raceOnCreate != nil {
		winner := r.raceOnCreate
		r.raceOnCreate = nil
		r.byFiveM[winner.FiveMID] = winner
		return nil, domain.ErrUserExists
	}

	if _, exists := r.byFiveM[user.FiveMID]; exists {
		return nil, domain.ErrUserExists
	}

	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byFiveM[user.FiveMID] = &clone
	r.created = append(r.created, &clone)
	return &clone, nil
}

// ---------------------------------------------------------------------------
// Fake identity provider
// ---------------------------------------------------------------------------

type fakeProvider struct {
	tokenSrv    *httptest.Server
	userinfoSrv *httptest.Server

	tokenStatus    int
	userinfoStatus int
	userinfo       map[string]any

	tokenCalls    int
	userinfoCalls int
	lastTokenForm map[string]string
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{
		tokenStatus:    http.StatusOK,
		userinfoStatus: http.StatusOK,
		userinfo: map[string]any{
			"sub":                "abc123",
			"email":              "a@b.com",
			"preferred_username": "alice",
		},
	}

	p.tokenSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.tokenCalls++
		_ = r.ParseForm()
		p.lastTokenForm = map[string]string{}
		for k := range r.Form {
			p.lastTokenForm[k] = r.Form.Get(k)
		}
		if p.tokenStatus != http.StatusOK {
			w.WriteHeader(p.tokenStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok1",
			"token_type":   "Bearer",
		})
	}))
	t.Cleanup(p.tokenSrv.Close)

	p.userinfoSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.userinfoCalls++
		if got := r.Header.Get("Authorization"); got != "Bearer tok1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if p.userinfoStatus != http.StatusOK {
			w.WriteHeader(p.userinfoStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(p.userinfo)
	}))
	t.Cleanup(p.userinfoSrv.Close)

	return p
}

func newAuthSvc(repo *stubUserRepo, p *fakeProvider) *AuthService {
	return NewAuthService(repo, OAuthConfig{
		ClientID:     "client_1",
		ClientSecret: "secret_1",
		RedirectURL:  "https://shop.example.com/v1/auth/fivem/callback",
		AuthURL:      "https://idp.example.com/oauth2/authorize",
		TokenURL:     p.tokenSrv.URL,
		UserinfoURL:  p.userinfoSrv.URL,
	}, "test-jwt-secret", time.Hour, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_LoginURL(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newFakeProvider(t))

	url := svc.LoginURL()

	if !strings.HasPrefix(url, "https://idp.example.com/oauth2/authorize?") {
		t.Fatalf("unexpected base url: %s", url)
	}
	for _, want := range []string{"response_type=code", "client_id=client_1", "redirect_uri="} {
		if !strings.Contains(url, want) {
			t.Errorf("login url missing %q: %s", want, url)
		}
	}
}

func TestAuthService_Callback_MissingCode(t *testing.T) {
	repo := newStubUserRepo()
	provider := newFakeProvider(t)
	svc := newAuthSvc(repo, provider)

	_, err := svc.Callback(context.Background(), "")

	if !errors.Is(err, domain.ErrCodeMissing) {
		t.Fatalf("expected ErrCodeMissing, got: %v", err)
	}
	if provider.tokenCalls != 0 || provider.userinfoCalls != 0 {
		t.Errorf("expected no outbound calls, got token=%d userinfo=%d", provider.tokenCalls, provider.userinfoCalls)
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no user created")
	}
}

func TestAuthService_Callback_TokenExchangeFails(t *testing.T) {
	repo := newStubUserRepo()
	provider := newFakeProvider(t)
	provider.tokenStatus = http.StatusBadRequest
	svc := newAuthSvc(repo, provider)

	_, err := svc.Callback(context.Background(), "code-1")

	if !errors.Is(err, domain.ErrTokenExchange) {
		t.Fatalf("expected ErrTokenExchange, got: %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no user created on failed exchange")
	}
}

func TestAuthService_Callback_UserinfoFails(t *testing.T) {
	repo := newStubUserRepo()
	provider := newFakeProvider(t)
	provider.userinfoStatus = http.StatusInternalServerError
	svc := newAuthSvc(repo, provider)

	_, err := svc.Callback(context.Background(), "code-1")

	if !errors.Is(err, domain.ErrUserInfoFetch) {
		t.Fatalf("expected ErrUserInfoFetch, got: %v", err)
	}
	if provider.tokenCalls != 1 {
		t.Errorf("expected exactly one token call, got %d", provider.tokenCalls)
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no user created on failed userinfo fetch")
	}
}

func TestAuthService_Callback_CreatesUserOnFirstLogin(t *testing.T) {
	repo := newStubUserRepo()
	provider := newFakeProvider(t)
	svc := newAuthSvc(repo, provider)

	result, err := svc.Callback(context.Background(), "code-1")
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}

	if result.Username != "alice" || result.Email != "a@b.com" || result.FiveMID != "abc123" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Token == "" {
		t.Errorf("expected a session token")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one user created, got %d", len(repo.created))
	}
	if u := repo.created[0]; u.Username != "alice" || u.Email != "a@b.com" || u.FiveMID != "abc123" {
		t.Errorf("unexpected stored user: %+v", u)
	}

	// The token exchange must carry the code and configured credentials.
	form := provider.lastTokenForm
	if form["grant_type"] != "authorization_code" || form["code"] != "code-1" {
		t.Errorf("unexpected token request form: %v", form)
	}
	if form["client_id"] != "client_1" || form["client_secret"] != "secret_1" {
		t.Errorf("token request missing client credentials: %v", form)
	}
	if form["redirect_uri"] != "https://shop.example.com/v1/auth/fivem/callback" {
		t.Errorf("token request redirect_uri mismatch: %v", form)
	}
}

func TestAuthService_Callback_RepeatLoginKeepsStoredProfile(t *testing.T) {
	repo := newStubUserRepo()
	provider := newFakeProvider(t)
	svc := newAuthSvc(repo, provider)

	if _, err := svc.Callback(context.Background(), "code-1"); err != nil {
		t.Fatalf("first callback failed: %v", err)
	}

	// Provider returns fresher profile data on the second login; the stored
	// account must win.
	provider.userinfo = map[string]any{
		"sub":                "abc123",
		"email":              "new@b.com",
		"preferred_username": "alice_renamed",
	}

	result, err := svc.Callback(context.Background(), "code-2")
	if err != nil {
		t.Fatalf("second callback failed: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected no second user, got %d", len(repo.created))
	}
	if result.Username != "alice" || result.Email != "a@b.com" {
		t.Errorf("expected stored profile, got: %+v", result)
	}
}

func TestAuthService_Callback_UsernameFallback(t *testing.T) {
	repo := newStubUserRepo()
	provider := newFakeProvider(t)
	provider.userinfo = map[string]any{"sub": "xyz9"}
	svc := newAuthSvc(repo, provider)

	result, err := svc.Callback(context.Background(), "code-1")
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}

	if result.Username != "fivem_xyz9" {
		t.Errorf("expected fallback username fivem_xyz9, got %q", result.Username)
	}
	if result.Email != "" {
		t.Errorf("expected empty email, got %q", result.Email)
	}
}

func TestAuthService_Callback_MissingSubRejected(t *testing.T) {
	repo := newStubUserRepo()
	provider := newFakeProvider(t)
	provider.userinfo = map[string]any{"preferred_username": "ghost"}
	svc := newAuthSvc(repo, provider)

	_, err := svc.Callback(context.Background(), "code-1")

	if !errors.Is(err, domain.ErrUserInfoFetch) {
		t.Fatalf("expected ErrUserInfoFetch for missing sub, got: %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no user created without a subject")
	}
}

func TestAuthService_Callback_ConcurrentCreateRecovered(t *testing.T) {
	repo := newStubUserRepo()
	repo.raceOnCreate = &domain.User{
		ID:       "user_race",
		Username: "alice",
		Email:    "a@b.com",
		FiveMID:  "abc123",
	}
	provider := newFakeProvider(t)
	svc := newAuthSvc(repo, provider)

	result, err := svc.Callback(context.Background(), "code-1")
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}

	if result.Username != "alice" || result.FiveMID != "abc123" {
		t.Errorf("expected the winning row, got: %+v", result)
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no row created by the losing request")
	}
	if len(repo.byFiveM) != 1 {
		t.Errorf("expected exactly one persisted user, got %d", len(repo.byFiveM))
	}
}
