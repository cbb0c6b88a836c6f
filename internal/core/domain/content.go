package domain

import "time"

// Testimonial is a customer quote shown on the landing page.
type Testimonial struct {
	ID      string    `json:"id" bson:"_id,omitempty"`
	PfpURL  string    `json:"pfp,omitempty" bson:"pfp,omitempty"`
	Name    string    `json:"name" bson:"name"`
	Comment string    `json:"comment" bson:"comment"`
	Date    time.Time `json:"date" bson:"date"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// TeamMember is a staff entry on the team page.
type TeamMember struct {
	ID               string `json:"id" bson:"_id,omitempty"`
	Name             string `json:"name" bson:"name"`
	Role             string `json:"role" bson:"role"`
	ShortDescription string `json:"short_description" bson:"short_description"`
}

// Stats holds the landing-page counters. A single document is expected;
// zero values are served when none exists.
type Stats struct {
	ActiveUsers    int `json:"active_users" bson:"active_users"`
	PremiumScripts int `json:"premium_scripts" bson:"premium_scripts"`
}

// FeaturedServer is a community server promoted on the landing page.
type FeaturedServer struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
	URL   string `json:"url" bson:"url"`
}
