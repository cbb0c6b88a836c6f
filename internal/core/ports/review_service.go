package ports

import "context"

// SubmitReviewInput carries a review submission from the transport layer.
type SubmitReviewInput struct {
	ScriptID    string
	Name        string
	Rating      int
	Description string
}

// ReviewService handles review submissions.
type ReviewService interface {
	Submit(ctx context.Context, input SubmitReviewInput) error
}
