package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/zrg-scripts/storefront-api/internal/api/metrics"
	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// RecomputeEnqueuer is the interface the service uses to hand rating
// recompute jobs to the dispatcher.
type RecomputeEnqueuer interface {
	Enqueue(job ports.RatingRecomputeInput)
}

// ReviewService accepts review submissions and triggers rating recomputes.
type ReviewService struct {
	scripts    ports.ScriptRepository
	reviews    ports.ReviewRepository
	cache      ListingCache
	dispatcher RecomputeEnqueuer
	log        zerolog.Logger
}

func NewReviewService(
	scripts ports.ScriptRepository,
	reviews ports.ReviewRepository,
	cache ListingCache,
	dispatcher RecomputeEnqueuer,
	log zerolog.Logger,
) *ReviewService {
	return &ReviewService{
		scripts:    scripts,
		reviews:    reviews,
		cache:      cache,
		dispatcher: dispatcher,
		log:        log,
	}
}

// Submit validates and persists a review. The denormalized script rating is
// recomputed asynchronously; the cached catalog listing is invalidated so the
// next read reflects the new count.
func (s *ReviewService) Submit(ctx context.Context, input ports.SubmitReviewInput) error {
	if input.ScriptID == "" || input.Name == "" || input.Description == "" || input.Rating == 0 {
		return fmt.Errorf("%w: all fields are required", domain.ErrInvalidReview)
	}
	if input.Rating < domain.MinRating || input.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", domain.ErrInvalidReview, domain.MinRating, domain.MaxRating)
	}

	script, err := s.scripts.FindByID(ctx, input.ScriptID)
	if err != nil {
		return err
	}

	review := &domain.Review{
		ScriptID:    script.ID,
		Name:        input.Name,
		Rating:      input.Rating,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	if err := s.cache.Invalidate(ctx, CacheKeyScripts); err != nil {
		s.log.Warn().Err(err).Msg("scripts cache invalidation failed")
	}

	s.dispatcher.Enqueue(ports.RatingRecomputeInput{ScriptID: script.ID})

	metrics.ReviewsSubmittedTotal.WithLabelValues(strconv.Itoa(input.Rating)).Inc()
	s.log.Info().Str("script_id", script.ID).Int("rating", input.Rating).Msg("review submitted")
	return nil
}
