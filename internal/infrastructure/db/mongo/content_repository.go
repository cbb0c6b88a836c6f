package mongo

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

const (
	statsCollection           = "stats"
	featuredServersCollection = "featured_servers"
	testimonialsCollection    = "testimonials"
	faqsCollection            = "faqs"
	teamMembersCollection     = "team_members"
)

// ContentRepository serves the landing-page content collections.
type ContentRepository struct {
	db *mongo.Database
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{db: db}
}

// Stats returns the singleton stats document. Zero values are returned when
// none has been seeded, matching the public endpoint contract.
func (r *ContentRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var stats domain.Stats
	err := r.db.Collection(statsCollection).FindOne(ctx, bson.M{}).Decode(&stats)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &domain.Stats{}, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (r *ContentRepository) FeaturedServers(ctx context.Context) ([]domain.FeaturedServer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(featuredServersCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	servers := []domain.FeaturedServer{}
	if err := cur.All(ctx, &servers); err != nil {
		return nil, err
	}
	return servers, nil
}

func (r *ContentRepository) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(testimonialsCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	testimonials := []domain.Testimonial{}
	if err := cur.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *ContentRepository) FAQs(ctx context.Context) ([]domain.FAQ, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(faqsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	faqs := []domain.FAQ{}
	if err := cur.All(ctx, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *ContentRepository) TeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(teamMembersCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	members := []domain.TeamMember{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// SearchTeamMembers matches q case-insensitively against name, role, and
// short description.
func (r *ContentRepository) SearchTeamMembers(ctx context.Context, q string) ([]domain.TeamMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"role": pattern},
		bson.M{"short_description": pattern},
	}}

	cur, err := r.db.Collection(teamMembersCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	members := []domain.TeamMember{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}
