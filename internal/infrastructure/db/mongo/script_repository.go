package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
)

const scriptsCollection = "scripts"

type ScriptRepository struct {
	coll *mongo.Collection
}

func NewScriptRepository(db *mongo.Database) *ScriptRepository {
	return &ScriptRepository{coll: db.Collection(scriptsCollection)}
}

func (r *ScriptRepository) List(ctx context.Context) ([]domain.Script, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	scripts := []domain.Script{}
	if err := cur.All(ctx, &scripts); err != nil {
		return nil, err
	}
	return scripts, nil
}

func (r *ScriptRepository) FindBySlug(ctx context.Context, slug string) (*domain.Script, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Script
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrScriptNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ScriptRepository) FindByID(ctx context.Context, id string) (*domain.Script, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrScriptNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Script
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrScriptNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ScriptRepository) Insert(ctx context.Context, s *domain.Script) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"title":               s.Title,
		"slug":                s.Slug,
		"description":         s.Description,
		"price":               s.Price,
		"image":               s.Image,
		"video":               s.Video,
		"categories":          s.Categories,
		"frameworks":          s.Frameworks,
		"is_featured":         s.IsFeatured,
		"is_bestseller":       s.IsBestseller,
		"created_at":          s.CreatedAt,
		"tebex_id":            s.TebexID,
		"showcase_servers":    s.ShowcaseServers,
		"images":              s.Images,
		"key_benefits":        s.KeyBenefits,
		"core_features":       s.CoreFeatures,
		"system_requirements": s.SystemRequirements,
		"rating":              s.Rating,
		"reviews_count":       s.ReviewsCount,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	return nil
}

// Search matches q case-insensitively against title, description, and key
// benefits, mirroring the storefront search endpoint contract.
func (r *ScriptRepository) Search(ctx context.Context, q string) ([]domain.Script, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"description": pattern},
		bson.M{"key_benefits": pattern},
	}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	scripts := []domain.Script{}
	if err := cur.All(ctx, &scripts); err != nil {
		return nil, err
	}
	return scripts, nil
}

func (r *ScriptRepository) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrScriptNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"rating":        rating,
		"reviews_count": count,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrScriptNotFound
	}
	return nil
}

// EnsureIndexes creates the unique slug index and the created_at sort index.
func (r *ScriptRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
