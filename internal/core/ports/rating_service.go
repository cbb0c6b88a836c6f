package ports

import "context"

// RatingRecomputeInput is the job DTO passed from the review pipeline to
// RatingService via the dispatcher.
type RatingRecomputeInput struct {
	ScriptID string
}

// RatingService recomputes the denormalized rating fields of a script from
// its stored reviews.
type RatingService interface {
	Recompute(ctx context.Context, job RatingRecomputeInput) error
}
