package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

const collectionAccounts = "accounts"

type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionAccounts)}
}

type mongoAccount struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ExternalID      string             `bson:"external_id"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	PasswordHash    string             `bson:"password_hash"`
	EmailVerified   bool               `bson:"email_verified"`
	OTPHash         string             `bson:"otp_hash,omitempty"`
	OTPExpiresAt    time.Time          `bson:"otp_expires_at,omitempty"`
	ResetTokenHash  string             `bson:"reset_token_hash,omitempty"`
	ResetExpiresAt  time.Time          `bson:"reset_expires_at,omitempty"`
	Role            string             `bson:"role"`
	Status          string             `bson:"status"`
	FeedbackMessage string             `bson:"feedback_message,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (m *mongoAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:              m.ID.Hex(),
		ExternalID:      m.ExternalID,
		Name:            m.Name,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		EmailVerified:   m.EmailVerified,
		OTPHash:         m.OTPHash,
		OTPExpiresAt:    m.OTPExpiresAt,
		ResetTokenHash:  m.ResetTokenHash,
		ResetExpiresAt:  m.ResetExpiresAt,
		Role:            m.Role,
		Status:          domain.AccountStatus(m.Status),
		FeedbackMessage: m.FeedbackMessage,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAccount{
		ExternalID:     a.ExternalID,
		Name:           a.Name,
		Email:          a.Email,
		PasswordHash:   a.PasswordHash,
		EmailVerified:  a.EmailVerified,
		OTPHash:        a.OTPHash,
		OTPExpiresAt:   a.OTPExpiresAt,
		ResetTokenHash: a.ResetTokenHash,
		ResetExpiresAt: a.ResetExpiresAt,
		Role:           a.Role,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	doc.ID, _ = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoAccount
	if err := r.col.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return m.toDomain(), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) FindByExternalID(ctx context.Context, externalID string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"external_id": externalID})
}

func (r *AccountRepository) FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{
		"reset_token_hash": tokenHash,
		"reset_expires_at": bson.M{"$gt": now},
	})
}

// UpdateCredentials writes the secret-bearing fields. Cleared secrets are
// removed from the document rather than stored empty.
func (r *AccountRepository) UpdateCredentials(ctx context.Context, a *domain.Account) error {
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"password_hash":  a.PasswordHash,
		"email_verified": a.EmailVerified,
		"updated_at":     a.UpdatedAt,
	}
	unset := bson.M{}
	if a.OTPHash != "" {
		set["otp_hash"] = a.OTPHash
		set["otp_expires_at"] = a.OTPExpiresAt
	} else {
		unset["otp_hash"] = ""
		unset["otp_expires_at"] = ""
	}
	if a.ResetTokenHash != "" {
		set["reset_token_hash"] = a.ResetTokenHash
		set["reset_expires_at"] = a.ResetExpiresAt
	} else {
		unset["reset_token_hash"] = ""
		unset["reset_expires_at"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update account credentials: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) SetModeration(ctx context.Context, externalID string, status domain.AccountStatus, feedback string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}}
	if feedback != "" {
		update["$set"].(bson.M)["feedback_message"] = feedback
	} else {
		update["$unset"] = bson.M{"feedback_message": ""}
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"external_id": externalID}, update)
	if err != nil {
		return fmt.Errorf("update account status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, externalID string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoAccount
	if err := r.col.FindOneAndDelete(ctx, bson.M{"external_id": externalID}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("delete account: %w", err)
	}
	return m.toDomain(), nil
}

// EnsureIndexes creates the unique and lookup indexes of the accounts collection.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "external_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "reset_token_hash", Value: 1}}, Options: options.Index().SetSparse(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
