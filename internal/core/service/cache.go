package service

import "context"

// Cache keys for the listing endpoints. Kept here so services and tests agree
// on what gets invalidated.
const (
	CacheKeyScripts      = "listing:scripts"
	CacheKeyTestimonials = "listing:testimonials"
	CacheKeyFAQs         = "listing:faqs"
	CacheKeyPosts        = "listing:posts"
	CacheKeyTeamMembers  = "listing:team_members"
)

// ListingCache abstracts the read-side cache (Redis). Get reports whether the
// key was present; cache failures are treated as misses by callers, never as
// request failures.
type ListingCache interface {
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, keys ...string) error
}
