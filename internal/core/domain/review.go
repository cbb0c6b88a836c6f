package domain

import (
	"errors"
	"time"
)

var ErrInvalidReview = errors.New("invalid review")

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer review attached to a script.
type Review struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ScriptID    string    `json:"script_id" bson:"script_id"`
	PfpURL      string    `json:"pfp,omitempty" bson:"pfp,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Rating      int       `json:"rating" bson:"rating"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
