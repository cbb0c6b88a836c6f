package domain

import (
	"errors"
	"time"
)

var ErrScriptNotFound = errors.New("script not found")
var ErrDuplicateSlug = errors.New("slug already exists")

// Image is a gallery entry attached to a script.
type Image struct {
	URL string `json:"url" bson:"url"`
	Alt string `json:"alt,omitempty" bson:"alt,omitempty"`
}

// Script is the core catalog aggregate.
type Script struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	Title              string    `json:"title" bson:"title"`
	Slug               string    `json:"slug" bson:"slug"`
	Description        string    `json:"description" bson:"description"`
	Price              float64   `json:"price" bson:"price"`
	Image              string    `json:"image,omitempty" bson:"image,omitempty"`
	Video              string    `json:"video,omitempty" bson:"video,omitempty"`
	Categories         []string  `json:"categories" bson:"categories"`
	Frameworks         []string  `json:"frameworks" bson:"frameworks"`
	IsFeatured         bool      `json:"is_featured" bson:"is_featured"`
	IsBestseller       bool      `json:"is_bestseller" bson:"is_bestseller"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	TebexID            string    `json:"tebex_id,omitempty" bson:"tebex_id,omitempty"`
	ShowcaseServers    []string  `json:"showcase_servers" bson:"showcase_servers"`
	Images             []Image   `json:"images" bson:"images"`
	KeyBenefits        string    `json:"key_benefits,omitempty" bson:"key_benefits,omitempty"`
	CoreFeatures       string    `json:"core_features,omitempty" bson:"core_features,omitempty"`
	SystemRequirements string    `json:"system_requirements,omitempty" bson:"system_requirements,omitempty"`

	// Rating and ReviewsCount are denormalized from the reviews collection
	// by the recompute pipeline after each accepted review.
	Rating       float64 `json:"rating" bson:"rating"`
	ReviewsCount int     `json:"reviews_count" bson:"reviews_count"`
}
