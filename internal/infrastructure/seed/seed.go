// Package seed populates the database with demo content for local
// development and staging environments. Each collection is seeded only when
// empty, so the command is safe to run repeatedly.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	mongodb "github.com/zrg-scripts/storefront-api/internal/infrastructure/db/mongo"
)

// Seeder inserts demo documents through the repositories so slug uniqueness
// and index behavior match production writes.
type Seeder struct {
	db      *mongodriver.Database
	scripts *mongodb.ScriptRepository
	reviews *mongodb.ReviewRepository
	posts   *mongodb.BlogRepository
	log     zerolog.Logger
}

func New(db *mongodriver.Database, log zerolog.Logger) *Seeder {
	return &Seeder{
		db:      db,
		scripts: mongodb.NewScriptRepository(db),
		reviews: mongodb.NewReviewRepository(db),
		posts:   mongodb.NewBlogRepository(db),
		log:     log,
	}
}

// Run seeds every collection that is still empty.
func (s *Seeder) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"scripts", s.seedScripts},
		{"blog_posts", s.seedBlogPosts},
		{"testimonials", s.seedTestimonials},
		{"faqs", s.seedFAQs},
		{"team_members", s.seedTeamMembers},
		{"stats", s.seedStats},
		{"featured_servers", s.seedFeaturedServers},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	return nil
}

func (s *Seeder) empty(ctx context.Context, collection string) (bool, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// insertScript assigns a slug from the title, retrying with a numeric suffix
// on collision.
func (s *Seeder) insertScript(ctx context.Context, script *domain.Script) error {
	base := slug.Make(script.Title)
	if base == "" {
		base = "untitled-script"
	}

	script.Slug = base
	for counter := 1; ; counter++ {
		err := s.scripts.Insert(ctx, script)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDuplicateSlug) {
			return err
		}
		script.Slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *Seeder) insertPost(ctx context.Context, post *domain.BlogPost) error {
	base := slug.Make(post.Title)

	post.Slug = base
	for counter := 1; ; counter++ {
		err := s.posts.Insert(ctx, post)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDuplicateSlug) {
			return err
		}
		post.Slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *Seeder) seedScripts(ctx context.Context) error {
	ok, err := s.empty(ctx, "scripts")
	if err != nil || !ok {
		return err
	}

	now := time.Now().UTC()
	scripts := []domain.Script{
		{
			Title:        "Advanced Roleplay Framework",
			Description:  "A comprehensive roleplay system with jobs, inventory, and character customization.",
			Price:        79.99,
			Image:        "scripts/images/roleplay_framework.png",
			Video:        "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Categories:   []string{"Roleplay"},
			Frameworks:   []string{"ESX", "QBCore"},
			IsFeatured:   true,
			IsBestseller: true,
			TebexID:      "123",
			ShowcaseServers: []string{"Eclipse RP"},
			KeyBenefits:  "Drop-in job system; persistent inventories; fully configurable character creation.",
			CoreFeatures: "Jobs, inventory, character customization, admin tooling.",
			SystemRequirements: "FiveM server build 6683 or newer. OneSync required.",
			CreatedAt:    now,
		},
		{
			Title:        "Economy Plus",
			Description:  "Complete economy system with banking, ATMs, and player-to-player transactions.",
			Price:        49.99,
			Image:        "scripts/images/economy_plus.png",
			Categories:   []string{"Economy"},
			Frameworks:   []string{"ESX"},
			IsFeatured:   true,
			IsBestseller: true,
			TebexID:      "124",
			ShowcaseServers: []string{"Liberty RP"},
			SystemRequirements: "FiveM server build 6683 or newer.",
			CreatedAt:    now.Add(-24 * time.Hour),
		},
		{
			Title:        "Vehicle Showroom",
			Description:  "Create an immersive vehicle dealership with test drives and financing options.",
			Price:        34.99,
			Image:        "scripts/images/vehicle_showroom.png",
			Categories:   []string{"Vehicles"},
			Frameworks:   []string{"QBCore"},
			IsFeatured:   true,
			TebexID:      "125",
			ShowcaseServers: []string{"Eclipse RP", "Liberty RP"},
			SystemRequirements: "FiveM server build 6683 or newer.",
			CreatedAt:    now.Add(-48 * time.Hour),
		},
	}

	reviewNames := []string{"Marcus", "Elena", "Dev_Jonas"}
	reviewBodies := []string{
		"Rock solid, zero console errors after a month in production.",
		"Support answered within the hour and helped with our custom fork.",
		"Best purchase we made for our server this year.",
	}

	for i := range scripts {
		if err := s.insertScript(ctx, &scripts[i]); err != nil {
			return err
		}

		// Seed a review per script and set the denormalized rating the way
		// the recompute pipeline would.
		review := &domain.Review{
			ScriptID:    scripts[i].ID,
			Name:        reviewNames[i%len(reviewNames)],
			Rating:      4 + i%2,
			Description: reviewBodies[i%len(reviewBodies)],
			CreatedAt:   now,
		}
		if err := s.reviews.Insert(ctx, review); err != nil {
			return err
		}
		if err := s.scripts.UpdateRating(ctx, scripts[i].ID, float64(review.Rating), 1); err != nil {
			return err
		}
	}

	s.log.Info().Int("count", len(scripts)).Msg("seeded scripts")
	return nil
}

func (s *Seeder) seedBlogPosts(ctx context.Context) error {
	ok, err := s.empty(ctx, "blog_posts")
	if err != nil || !ok {
		return err
	}

	now := time.Now().UTC()
	posts := []domain.BlogPost{
		{
			Title:         "Optimizing Your FiveM Server for High Player Counts",
			Description:   "Practical steps to keep tick times low past 128 slots.",
			Content:       "<p>Server performance degrades in predictable places: entity streaming, database round-trips, and unbatched events...</p>",
			Author:        "ZRG Team",
			PublishedDate: now.Add(-72 * time.Hour),
			ModifiedDate:  now.Add(-72 * time.Hour),
			Category:      "Performance",
		},
		{
			Title:         "ESX or QBCore: Picking a Framework in 2025",
			Description:   "What actually matters when choosing the foundation of your server.",
			Content:       "<p>Both frameworks have converged on comparable feature sets; the real differences are in community tooling...</p>",
			Author:        "ZRG Team",
			PublishedDate: now.Add(-168 * time.Hour),
			ModifiedDate:  now.Add(-120 * time.Hour),
			Category:      "Guides",
		},
	}

	for i := range posts {
		if err := s.insertPost(ctx, &posts[i]); err != nil {
			return err
		}
	}

	s.log.Info().Int("count", len(posts)).Msg("seeded blog posts")
	return nil
}

func (s *Seeder) seedTestimonials(ctx context.Context) error {
	ok, err := s.empty(ctx, "testimonials")
	if err != nil || !ok {
		return err
	}

	now := time.Now().UTC()
	docs := []any{
		domain.Testimonial{Name: "NightCity RP", Comment: "Migrated our whole economy to ZRG scripts. Players noticed the difference day one.", Date: now},
		domain.Testimonial{Name: "Harbor RP", Comment: "Clean code, sane configs, and actual documentation. Rare combination.", Date: now.Add(-24 * time.Hour)},
		domain.Testimonial{Name: "Westside Gaming", Comment: "Their support team debugged an issue that turned out to be in our own resources.", Date: now.Add(-48 * time.Hour)},
	}

	_, err = s.db.Collection("testimonials").InsertMany(ctx, docs)
	if err == nil {
		s.log.Info().Int("count", len(docs)).Msg("seeded testimonials")
	}
	return err
}

func (s *Seeder) seedFAQs(ctx context.Context) error {
	ok, err := s.empty(ctx, "faqs")
	if err != nil || !ok {
		return err
	}

	docs := []any{
		domain.FAQ{Question: "How do you update your scripts?", Answer: "We regularly update our scripts to ensure compatibility with the latest FiveM version and to add new features. Updates are typically released monthly, with critical fixes deployed as needed."},
		domain.FAQ{Question: "Do you offer refunds?", Answer: "Yes, we offer a 30-day money-back guarantee if you are not satisfied with your purchase. Refunds are only available if the script has not been used in a production environment."},
		domain.FAQ{Question: "Can I use your scripts on multiple servers?", Answer: "License terms vary by script. Some scripts allow multiple server usage, while others require separate licenses. Check the individual script description for specific licensing terms."},
		domain.FAQ{Question: "What support options do you offer?", Answer: "We offer 24/7 support through our ticketing system and Discord community. Our team is dedicated to resolving issues promptly."},
	}

	_, err = s.db.Collection("faqs").InsertMany(ctx, docs)
	if err == nil {
		s.log.Info().Int("count", len(docs)).Msg("seeded faqs")
	}
	return err
}

func (s *Seeder) seedTeamMembers(ctx context.Context) error {
	ok, err := s.empty(ctx, "team_members")
	if err != nil || !ok {
		return err
	}

	docs := []any{
		domain.TeamMember{Name: "Alex", Role: "Lead Developer", ShortDescription: "Writes the core frameworks and reviews every release."},
		domain.TeamMember{Name: "Sofia", Role: "UI Designer", ShortDescription: "Designs the in-game interfaces shipped with every script."},
		domain.TeamMember{Name: "Marko", Role: "Support Lead", ShortDescription: "Runs the Discord support channels and the ticket queue."},
	}

	_, err = s.db.Collection("team_members").InsertMany(ctx, docs)
	if err == nil {
		s.log.Info().Int("count", len(docs)).Msg("seeded team members")
	}
	return err
}

func (s *Seeder) seedStats(ctx context.Context) error {
	ok, err := s.empty(ctx, "stats")
	if err != nil || !ok {
		return err
	}

	_, err = s.db.Collection("stats").InsertOne(ctx, domain.Stats{
		ActiveUsers:    5200,
		PremiumScripts: 34,
	})
	if err == nil {
		s.log.Info().Msg("seeded stats")
	}
	return err
}

func (s *Seeder) seedFeaturedServers(ctx context.Context) error {
	ok, err := s.empty(ctx, "featured_servers")
	if err != nil || !ok {
		return err
	}

	docs := []any{
		domain.FeaturedServer{Name: "Eclipse RP", Image: "featured_servers/eclipserp_logo.png", URL: "https://eclipserp.com"},
		domain.FeaturedServer{Name: "Liberty RP", Image: "featured_servers/libertyrp_logo.png", URL: "https://libertyrp.com"},
	}

	_, err = s.db.Collection("featured_servers").InsertMany(ctx, docs)
	if err == nil {
		s.log.Info().Int("count", len(docs)).Msg("seeded featured servers")
	}
	return err
}
