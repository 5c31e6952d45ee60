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

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

const exportTimeout = 2 * time.Minute

// CombinedRepository runs the account + onboarding join as an aggregation
// over the accounts collection.
type CombinedRepository struct {
	accounts *mongo.Collection
}

func NewCombinedRepository(db *mongo.Database) *CombinedRepository {
	return &CombinedRepository{accounts: db.Collection(collectionAccounts)}
}

type combinedDoc struct {
	Account    mongoAccount       `bson:",inline"`
	Profile    *domain.Profile    `bson:"profile,omitempty"`
	Experience *domain.Experience `bson:"experience,omitempty"`
	KYC        *domain.KYC        `bson:"kyc,omitempty"`
}

func (d *combinedDoc) toDomain() *domain.CombinedRecord {
	return &domain.CombinedRecord{
		Account:    d.Account.toDomain().Summary(),
		Profile:    d.Profile,
		Experience: d.Experience,
		KYC:        d.KYC,
	}
}

// searchFields are matched case-insensitively by the free-text filter.
var searchFields = []string{
	"name",
	"email",
	"external_id",
	"profile.mobile",
	"profile.job_role",
	"experience.occupation",
}

// joinStages builds the pipeline shared by every read: match, join each
// onboarding collection on the stringified account id, unwrap, then search.
func joinStages(match bson.M, search string) mongo.Pipeline {
	p := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$addFields", Value: bson.M{"account_key": bson.M{"$toString": "$_id"}}}},
	}
	for _, j := range []struct{ from, as string }{
		{collectionProfiles, "profile"},
		{collectionExperiences, "experience"},
		{collectionKYCs, "kyc"},
	} {
		p = append(p, bson.D{{Key: "$lookup", Value: bson.M{
			"from":         j.from,
			"localField":   "account_key",
			"foreignField": "account_id",
			"as":           j.as,
		}}})
	}
	p = append(p, bson.D{{Key: "$addFields", Value: bson.M{
		"profile":    bson.M{"$arrayElemAt": bson.A{"$profile", 0}},
		"experience": bson.M{"$arrayElemAt": bson.A{"$experience", 0}},
		"kyc":        bson.M{"$arrayElemAt": bson.A{"$kyc", 0}},
	}}})

	if search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		or := make(bson.A, 0, len(searchFields))
		for _, f := range searchFields {
			or = append(or, bson.M{f: re})
		}
		p = append(p, bson.D{{Key: "$match", Value: bson.M{"$or": or}}})
	}

	return append(p, bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}})
}

func (r *CombinedRepository) ListCombined(ctx context.Context, filter ports.CombinedFilter) ([]*domain.CombinedRecord, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	page := bson.A{bson.M{"$skip": filter.Skip}}
	if filter.Limit > 0 {
		page = append(page, bson.M{"$limit": filter.Limit})
	}

	pipeline := append(joinStages(bson.M{"role": domain.RoleUser}, filter.Search), bson.D{{Key: "$facet", Value: bson.M{
		"items": page,
		"total": bson.A{bson.M{"$count": "count"}},
	}}})

	cur, err := r.accounts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("aggregate combined view: %w", err)
	}
	defer cur.Close(ctx)

	var facets []struct {
		Items []combinedDoc `bson:"items"`
		Total []struct {
			Count int64 `bson:"count"`
		} `bson:"total"`
	}
	if err := cur.All(ctx, &facets); err != nil {
		return nil, 0, fmt.Errorf("decode combined view: %w", err)
	}
	if len(facets) == 0 {
		return nil, 0, nil
	}

	var total int64
	if len(facets[0].Total) > 0 {
		total = facets[0].Total[0].Count
	}
	out := make([]*domain.CombinedRecord, 0, len(facets[0].Items))
	for i := range facets[0].Items {
		out = append(out, facets[0].Items[i].toDomain())
	}
	return out, total, nil
}

func (r *CombinedRepository) EachCombined(ctx context.Context, filter ports.CombinedFilter, fn func(*domain.CombinedRecord) error) error {
	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	cur, err := r.accounts.Aggregate(ctx, joinStages(bson.M{"role": domain.RoleUser}, filter.Search))
	if err != nil {
		return fmt.Errorf("aggregate combined export: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var d combinedDoc
		if err := cur.Decode(&d); err != nil {
			return fmt.Errorf("decode combined record: %w", err)
		}
		if err := fn(d.toDomain()); err != nil {
			return err
		}
	}
	return cur.Err()
}

func (r *CombinedRepository) FindCombined(ctx context.Context, accountID string) (*domain.CombinedRecord, error) {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.accounts.Aggregate(ctx, joinStages(bson.M{"_id": oid}, ""))
	if err != nil {
		return nil, fmt.Errorf("aggregate combined record: %w", err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("read combined record: %w", err)
		}
		return nil, domain.ErrAccountNotFound
	}
	var d combinedDoc
	if err := cur.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode combined record: %w", err)
	}
	return d.toDomain(), nil
}
