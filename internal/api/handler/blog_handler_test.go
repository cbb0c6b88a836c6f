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
)

type stubBlogService struct {
	listPostsFn func(ctx context.Context) ([]domain.BlogPost, error)
	getPostFn   func(ctx context.Context, slug string) (*domain.BlogPost, error)
}

func (s *stubBlogService) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	return s.listPostsFn(ctx)
}

func (s *stubBlogService) GetPost(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.getPostFn(ctx, slug)
}

func demoPost() domain.BlogPost {
	return domain.BlogPost{
		ID:            "p1",
		Title:         "Garage deep dive",
		Slug:          "garage-deep-dive",
		Description:   "How the garage system works",
		Content:       "<p>full body</p>",
		Author:        "alice",
		PublishedDate: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Category:      "devlog",
	}
}

func TestBlogHandler_List_OmitsContent(t *testing.T) {
	svc := &stubBlogService{
		listPostsFn: func(context.Context) ([]domain.BlogPost, error) {
			return []domain.BlogPost{demoPost()}, nil
		},
	}
	h := NewBlogHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
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
		t.Fatalf("expected one post, got %d", len(items))
	}
	if _, ok := items[0]["content"]; ok {
		t.Errorf("list view must omit the content body")
	}
	if items[0]["slug"] != "garage-deep-dive" || items[0]["author"] != "alice" {
		t.Errorf("unexpected item: %v", items[0])
	}
}

func TestBlogHandler_Get(t *testing.T) {
	svc := &stubBlogService{
		getPostFn: func(_ context.Context, slug string) (*domain.BlogPost, error) {
			if slug != "garage-deep-dive" {
				return nil, domain.ErrPostNotFound
			}
			p := demoPost()
			return &p, nil
		},
	}
	h := NewBlogHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/posts/garage-deep-dive", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("garage-deep-dive")

	if err := h.Get(c); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["content"] != "<p>full body</p>" {
		t.Errorf("detail view must include the content body, got: %v", body["content"])
	}
}

func TestBlogHandler_Get_NotFound(t *testing.T) {
	svc := &stubBlogService{
		getPostFn: func(context.Context, string) (*domain.BlogPost, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	h := NewBlogHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/posts/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got: %v", err)
	}
}
