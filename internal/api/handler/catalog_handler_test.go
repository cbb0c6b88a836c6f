package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

type stubCatalogService struct {
	listScriptsFn func(ctx context.Context) ([]domain.Script, error)
	getScriptFn   func(ctx context.Context, slug string) (*ports.ScriptDetail, error)
	searchFn      func(ctx context.Context, q string) (*ports.SearchResult, error)
}

func (s *stubCatalogService) ListScripts(ctx context.Context) ([]domain.Script, error) {
	return s.listScriptsFn(ctx)
}

func (s *stubCatalogService) GetScript(ctx context.Context, slug string) (*ports.ScriptDetail, error) {
	return s.getScriptFn(ctx, slug)
}

func (s *stubCatalogService) Search(ctx context.Context, q string) (*ports.SearchResult, error) {
	return s.searchFn(ctx, q)
}

func demoScript() domain.Script {
	return domain.Script{
		ID:          "s1",
		Title:       "Garage System",
		Slug:        "garage-system",
		Description: "Persistent vehicle garages",
		Price:       79.9,
		Video:       "https://cdn.example.com/garage.mp4",
		Categories:  []string{"vehicles"},
		Frameworks:  []string{"esx", "qbcore"},
		IsFeatured:  true,
		CreatedAt:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Images: []domain.Image{
			{URL: "https://cdn.example.com/garage-1.png"},
			{URL: "https://cdn.example.com/garage-2.png"},
		},
		KeyBenefits:  "Fast claims",
		Rating:       4.5,
		ReviewsCount: 12,
	}
}

func TestCatalogHandler_List(t *testing.T) {
	svc := &stubCatalogService{
		listScriptsFn: func(context.Context) ([]domain.Script, error) {
			return []domain.Script{demoScript()}, nil
		},
	}
	h := NewCatalogHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/scripts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}

	item := items[0]
	if item["price"] != "79.90" {
		t.Errorf("expected price rendered as string with two decimals, got %v", item["price"])
	}
	if item["demoVideo"] != "https://cdn.example.com/garage.mp4" {
		t.Errorf("expected demoVideo to mirror video, got %v", item["demoVideo"])
	}
	if item["rating"] != 4.5 {
		t.Errorf("unexpected rating: %v", item["rating"])
	}
	if _, ok := item["reviews"]; ok {
		t.Errorf("list items must not embed reviews")
	}
}

func TestCatalogHandler_Get(t *testing.T) {
	svc := &stubCatalogService{
		getScriptFn: func(_ context.Context, slug string) (*ports.ScriptDetail, error) {
			if slug != "garage-system" {
				return nil, domain.ErrScriptNotFound
			}
			return &ports.ScriptDetail{
				Script: demoScript(),
				Reviews: []domain.Review{
					{Name: "bob", Rating: 5, Description: "great"},
				},
			}, nil
		},
	}
	h := NewCatalogHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/scripts/garage-system", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("garage-system")

	if err := h.Get(c); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	images, ok := body["images"].([]any)
	if !ok || len(images) != 2 {
		t.Errorf("expected two image urls, got: %v", body["images"])
	}
	reviews, ok := body["reviews"].([]any)
	if !ok || len(reviews) != 1 {
		t.Fatalf("expected one embedded review, got: %v", body["reviews"])
	}
	review := reviews[0].(map[string]any)
	if review["name"] != "bob" || review["rating"] != float64(5) {
		t.Errorf("unexpected review: %v", review)
	}
}

func TestCatalogHandler_Get_NotFound(t *testing.T) {
	svc := &stubCatalogService{
		getScriptFn: func(context.Context, string) (*ports.ScriptDetail, error) {
			return nil, domain.ErrScriptNotFound
		},
	}
	h := NewCatalogHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/scripts/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("nope")

	if err := h.Get(c); !errors.Is(err, domain.ErrScriptNotFound) {
		t.Fatalf("expected ErrScriptNotFound, got: %v", err)
	}
}

func TestCatalogHandler_Search(t *testing.T) {
	svc := &stubCatalogService{
		searchFn: func(_ context.Context, q string) (*ports.SearchResult, error) {
			return &ports.SearchResult{
				BlogPosts:   []domain.BlogPost{{Title: "Garage deep dive", Slug: "garage-deep-dive", Content: "<p>body</p>"}},
				Scripts:     []domain.Script{demoScript()},
				TeamMembers: []domain.TeamMember{},
			}, nil
		},
	}
	h := NewCatalogHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/search?q=garage", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	var posts []map[string]any
	if err := json.Unmarshal(body["blog_posts"], &posts); err != nil {
		t.Fatalf("invalid blog_posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected one post match, got %d", len(posts))
	}
	if _, ok := posts[0]["content"]; ok {
		t.Errorf("post matches must not carry the full content body")
	}

	var scripts []map[string]any
	if err := json.Unmarshal(body["scripts"], &scripts); err != nil {
		t.Fatalf("invalid scripts: %v", err)
	}
	if len(scripts) != 1 || scripts[0]["price"] != "79.90" {
		t.Errorf("unexpected script matches: %v", scripts)
	}

	var members []map[string]any
	if err := json.Unmarshal(body["team_members"], &members); err != nil {
		t.Fatalf("invalid team_members: %v", err)
	}
	if members == nil || len(members) != 0 {
		t.Errorf("expected empty non-nil team member list, got: %v", members)
	}
}
