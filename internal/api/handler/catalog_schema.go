package handler

import "time"

// scriptListItem is the catalog listing view of a script. Field names follow
// the public API contract consumed by the storefront frontend.
type scriptListItem struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Slug               string    `json:"slug"`
	Description        string    `json:"description"`
	Price              string    `json:"price"`
	Image              string    `json:"image,omitempty"`
	Video              string    `json:"video,omitempty"`
	DemoVideo          string    `json:"demoVideo,omitempty"`
	Categories         []string  `json:"categories"`
	Frameworks         []string  `json:"frameworks"`
	IsFeatured         bool      `json:"is_featured"`
	IsBestseller       bool      `json:"is_bestseller"`
	CreatedAt          time.Time `json:"created_at"`
	TebexID            string    `json:"tebex_id,omitempty"`
	ShowcaseServers    []string  `json:"showcase_servers"`
	Rating             float64   `json:"rating"`
	ReviewsCount       int       `json:"reviews_count"`
	SystemRequirements string    `json:"system_requirements,omitempty"`
}

type reviewItem struct {
	Name        string    `json:"name"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// scriptDetail extends the listing view with the gallery, long-form copy, and
// embedded reviews.
type scriptDetail struct {
	scriptListItem
	Images       []string     `json:"images"`
	KeyBenefits  string       `json:"key_benefits,omitempty"`
	CoreFeatures string       `json:"core_features,omitempty"`
	Reviews      []reviewItem `json:"reviews"`
}

// searchResponse groups matches across the searchable collections.
type searchResponse struct {
	BlogPosts   []blogPostListItem `json:"blog_posts"`
	Scripts     []searchScriptItem `json:"scripts"`
	TeamMembers []teamMemberItem   `json:"team_members"`
}

// searchScriptItem is the reduced script view returned by search.
type searchScriptItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Slug        string   `json:"slug"`
	Images      []string `json:"images"`
}
