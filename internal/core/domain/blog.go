package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("blog post not found")

// BlogPost is a published article. Content carries the full HTML body and is
// omitted from list views.
type BlogPost struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	Slug          string    `json:"slug" bson:"slug"`
	Description   string    `json:"description" bson:"description"`
	Content       string    `json:"content" bson:"content"`
	Author        string    `json:"author" bson:"author"`
	PublishedDate time.Time `json:"published_date" bson:"published_date"`
	ModifiedDate  time.Time `json:"modified_date" bson:"modified_date"`
	Category      string    `json:"category" bson:"category"`
}
