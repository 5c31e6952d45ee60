package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

const (
	collectionGigs         = "gigs"
	collectionApplications = "gig_applications"
)

type GigRepository struct {
	col *mongo.Collection
}

func NewGigRepository(db *mongo.Database) *GigRepository {
	return &GigRepository{col: db.Collection(collectionGigs)}
}

// Create inserts g and sets its generated id.
func (r *GigRepository) Create(ctx context.Context, g *domain.Gig) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	g.ID = ""
	res, err := r.col.InsertOne(ctx, g)
	if err != nil {
		return fmt.Errorf("insert gig: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		g.ID = oid.Hex()
	}
	return nil
}

func (r *GigRepository) FindByID(ctx context.Context, id string) (*domain.Gig, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGigNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var g domain.Gig
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGigNotFound
		}
		return nil, fmt.Errorf("find gig: %w", err)
	}
	return &g, nil
}

// List returns gigs matching filter, newest first.
func (r *GigRepository) List(ctx context.Context, filter ports.GigFilter) ([]*domain.Gig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"gig_title": re},
			bson.M{"short_description": re},
			bson.M{"location": re},
			bson.M{"skills": re},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list gigs: %w", err)
	}
	defer cur.Close(ctx)

	gigs := make([]*domain.Gig, 0)
	if err := cur.All(ctx, &gigs); err != nil {
		return nil, fmt.Errorf("decode gigs: %w", err)
	}
	return gigs, nil
}

func (r *GigRepository) Update(ctx context.Context, g *domain.Gig) error {
	oid, err := primitive.ObjectIDFromHex(g.ID)
	if err != nil {
		return domain.ErrGigNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"gig_title":         g.Title,
		"category":          g.Category,
		"short_description": g.ShortDescription,
		"full_description":  g.FullDescription,
		"location":          g.Location,
		"work_type":         g.WorkType,
		"payment_type":      g.PaymentType,
		"payout":            g.Payout,
		"openings":          g.Openings,
		"status":            g.Status,
		"skills":            g.Skills,
		"scope_of_work":     g.ScopeOfWork,
		"payout_terms":      g.PayoutTerms,
		"updated_at":        g.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update gig: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGigNotFound
	}
	return nil
}

func (r *GigRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGigNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete gig: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGigNotFound
	}
	return nil
}

func (r *GigRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	return err
}

type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *domain.GigApplication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a.ID = ""
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid.Hex()
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.GigApplication, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.GigApplication
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) list(ctx context.Context, filter bson.M) ([]*domain.GigApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	apps := make([]*domain.GigApplication, 0)
	if err := cur.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) ListByGig(ctx context.Context, gigID string) ([]*domain.GigApplication, error) {
	return r.list(ctx, bson.M{"gig_id": gigID})
}

func (r *ApplicationRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.GigApplication, error) {
	return r.list(ctx, bson.M{"account_id": accountID})
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"application_status": status,
		"updated_at":         time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) DeleteByGig(ctx context.Context, gigID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"gig_id": gigID}); err != nil {
		return fmt.Errorf("delete applications: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) DeleteByAccount(ctx context.Context, accountID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"account_id": accountID}); err != nil {
		return fmt.Errorf("delete applications: %w", err)
	}
	return nil
}

// EnsureIndexes enforces one application per account and gig.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "gig_id", Value: 1}, {Key: "account_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "account_id", Value: 1}}},
	})
	return err
}
