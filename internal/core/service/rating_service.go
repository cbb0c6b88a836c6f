package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/zrg-scripts/storefront-api/internal/api/metrics"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

type ratingService struct {
	scripts ports.ScriptRepository
	reviews ports.ReviewRepository
	log     zerolog.Logger
}

// NewRatingService returns a RatingService implementation.
func NewRatingService(scripts ports.ScriptRepository, reviews ports.ReviewRepository, log zerolog.Logger) ports.RatingService {
	return &ratingService{scripts: scripts, reviews: reviews, log: log}
}

// Recompute reads the current review aggregate for a script and writes it
// back to the script document. Safe to run repeatedly; later runs overwrite
// earlier ones with fresher data.
func (s *ratingService) Recompute(ctx context.Context, job ports.RatingRecomputeInput) error {
	start := time.Now()

	rating, count, err := s.reviews.AggregateByScript(ctx, job.ScriptID)
	if err != nil {
		metrics.RatingRecomputeErrorsTotal.WithLabelValues("aggregate_failed").Inc()
		return fmt.Errorf("recompute rating: %w", err)
	}

	if err := s.scripts.UpdateRating(ctx, job.ScriptID, rating, count); err != nil {
		metrics.RatingRecomputeErrorsTotal.WithLabelValues("update_failed").Inc()
		return fmt.Errorf("recompute rating: update script: %w", err)
	}

	metrics.RatingRecomputeDuration.Observe(time.Since(start).Seconds())

	s.log.Debug().
		Str("script_id", job.ScriptID).
		Float64("rating", rating).
		Int("count", count).
		Msg("rating recomputed")

	return nil
}
