package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

type stubEnqueuer struct {
	jobs []ports.RatingRecomputeInput
}

func (e *stubEnqueuer) Enqueue(job ports.RatingRecomputeInput) {
	e.jobs = append(e.jobs, job)
}

func validReviewInput() ports.SubmitReviewInput {
	return ports.SubmitReviewInput{
		ScriptID:    "s1",
		Name:        "bob",
		Rating:      4,
		Description: "solid script, easy install",
	}
}

func TestReviewService_Submit_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.SubmitReviewInput)
	}{
		{"missing name", func(in *ports.SubmitReviewInput) { in.Name = "" }},
		{"missing description", func(in *ports.SubmitReviewInput) { in.Description = "" }},
		{"missing script id", func(in *ports.SubmitReviewInput) { in.ScriptID = "" }},
		{"rating zero", func(in *ports.SubmitReviewInput) { in.Rating = 0 }},
		{"rating too high", func(in *ports.SubmitReviewInput) { in.Rating = 6 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inserted := false
			reviews := &stubReviewRepo{
				insertFn: func(context.Context, *domain.Review) error {
					inserted = true
					return nil
				},
			}
			svc := NewReviewService(&stubScriptRepo{}, reviews, newMemCache(), &stubEnqueuer{}, zerolog.Nop())

			in := validReviewInput()
			tc.mutate(&in)

			err := svc.Submit(context.Background(), in)
			if !errors.Is(err, domain.ErrInvalidReview) {
				t.Fatalf("expected ErrInvalidReview, got: %v", err)
			}
			if inserted {
				t.Errorf("expected no insert for invalid input")
			}
		})
	}
}

func TestReviewService_Submit_UnknownScript(t *testing.T) {
	scripts := &stubScriptRepo{
		findByIDFn: func(context.Context, string) (*domain.Script, error) {
			return nil, domain.ErrScriptNotFound
		},
	}
	reviews := &stubReviewRepo{
		insertFn: func(context.Context, *domain.Review) error {
			t.Fatal("insert must not be called for an unknown script")
			return nil
		},
	}
	svc := NewReviewService(scripts, reviews, newMemCache(), &stubEnqueuer{}, zerolog.Nop())

	err := svc.Submit(context.Background(), validReviewInput())
	if !errors.Is(err, domain.ErrScriptNotFound) {
		t.Fatalf("expected ErrScriptNotFound, got: %v", err)
	}
}

func TestReviewService_Submit_PersistsAndEnqueues(t *testing.T) {
	scripts := &stubScriptRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.Script, error) {
			return &domain.Script{ID: id, Title: "Garage System"}, nil
		},
	}
	var stored *domain.Review
	reviews := &stubReviewRepo{
		insertFn: func(_ context.Context, rv *domain.Review) error {
			stored = rv
			return nil
		},
	}
	cache := newMemCache()
	enqueuer := &stubEnqueuer{}
	svc := NewReviewService(scripts, reviews, cache, enqueuer, zerolog.Nop())

	if err := svc.Submit(context.Background(), validReviewInput()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if stored == nil {
		t.Fatal("expected review to be persisted")
	}
	if stored.ScriptID != "s1" || stored.Name != "bob" || stored.Rating != 4 {
		t.Errorf("unexpected stored review: %+v", stored)
	}
	if stored.CreatedAt.IsZero() {
		t.Errorf("expected created_at to be stamped")
	}

	if len(enqueuer.jobs) != 1 || enqueuer.jobs[0].ScriptID != "s1" {
		t.Errorf("expected one recompute job for s1, got: %+v", enqueuer.jobs)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != CacheKeyScripts {
		t.Errorf("expected scripts listing invalidation, got: %v", cache.invalidated)
	}
}

func TestReviewService_Submit_InsertErrorPropagates(t *testing.T) {
	scripts := &stubScriptRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.Script, error) {
			return &domain.Script{ID: id}, nil
		},
	}
	reviews := &stubReviewRepo{
		insertFn: func(context.Context, *domain.Review) error {
			return errors.New("write concern timeout")
		},
	}
	enqueuer := &stubEnqueuer{}
	svc := NewReviewService(scripts, reviews, newMemCache(), enqueuer, zerolog.Nop())

	if err := svc.Submit(context.Background(), validReviewInput()); err == nil {
		t.Fatal("expected insert error to propagate")
	}
	if len(enqueuer.jobs) != 0 {
		t.Errorf("expected no recompute job after failed insert")
	}
}
