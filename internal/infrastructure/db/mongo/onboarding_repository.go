package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

const (
	collectionProfiles    = "profiles"
	collectionExperiences = "experiences"
	collectionKYCs        = "kycs"
)

// fileSlot maps an upload slot to its document field.
type fileSlot struct {
	key   domain.FileKey
	field string
}

var (
	profileSlots = []fileSlot{
		{domain.FileProfileImage, "profile_image"},
		{domain.FileAadhaarFile, "aadhaar_file"},
		{domain.FilePanFile, "pan_file"},
		{domain.FileResumeFile, "resume_file"},
	}
	experienceSlots = []fileSlot{
		{domain.FileResumeStep2, "resume_step2"},
	}
	kycSlots = []fileSlot{
		{domain.FileAadhaarFront, "aadhaar_front"},
		{domain.FileAadhaarBack, "aadhaar_back"},
		{domain.FilePanCardUpload, "pan_card_upload"},
		{domain.FilePassbookUpload, "passbook_upload"},
	}
)

// OnboardingRepository stores the Profile, Experience and KYC records, one
// document per account in each collection.
type OnboardingRepository struct {
	profiles    *mongo.Collection
	experiences *mongo.Collection
	kycs        *mongo.Collection
}

func NewOnboardingRepository(db *mongo.Database) *OnboardingRepository {
	return &OnboardingRepository{
		profiles:    db.Collection(collectionProfiles),
		experiences: db.Collection(collectionExperiences),
		kycs:        db.Collection(collectionKYCs),
	}
}

func (r *OnboardingRepository) FindSnapshot(ctx context.Context, accountID string) (domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		snap domain.Snapshot
		err  error
	)
	if snap.Profile, err = findSection[domain.Profile](ctx, r.profiles, accountID); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Experience, err = findSection[domain.Experience](ctx, r.experiences, accountID); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.KYC, err = findSection[domain.KYC](ctx, r.kycs, accountID); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

// findSection returns nil without error when the record does not exist yet.
func findSection[T any](ctx context.Context, col *mongo.Collection, accountID string) (*T, error) {
	var v T
	err := col.FindOne(ctx, bson.M{"account_id": accountID}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	return &v, nil
}

func (r *OnboardingRepository) UpsertProfile(ctx context.Context, accountID string, in ports.PersonalInput, files map[domain.FileKey]string) (*domain.Profile, error) {
	return upsertSection[domain.Profile](ctx, r.profiles, accountID, profileUpdate(in, files, time.Now().UTC()))
}

func (r *OnboardingRepository) UpsertExperience(ctx context.Context, accountID string, in ports.ExperienceInput, files map[domain.FileKey]string) (*domain.Experience, error) {
	return upsertSection[domain.Experience](ctx, r.experiences, accountID, experienceUpdate(in, files, time.Now().UTC()))
}

func (r *OnboardingRepository) UpsertKYC(ctx context.Context, accountID string, in ports.KYCInput, files map[domain.FileKey]string) (*domain.KYC, error) {
	return upsertSection[domain.KYC](ctx, r.kycs, accountID, kycUpdate(in, files, time.Now().UTC()))
}

func profileUpdate(in ports.PersonalInput, files map[domain.FileKey]string, now time.Time) bson.M {
	set := bson.M{
		"name":     in.Name,
		"email":    in.Email,
		"mobile":   in.Mobile,
		"job_role": in.JobRole,
		"gender":   in.Gender,
		"dob":      in.DOB,
		"aadhaar":  in.Aadhaar,
		"pan":      in.PAN,
		"country":  in.Country,
		"state":    in.State,
		"city":     in.City,
		"address1": in.Address1,
		"pincode":  in.Pincode,
	}
	onInsert := bson.M{}
	optional(set, onInsert, "address2", in.Address2)
	optional(set, onInsert, "about", in.About)
	return sectionUpdate(set, onInsert, profileSlots, files, now)
}

func experienceUpdate(in ports.ExperienceInput, files map[domain.FileKey]string, now time.Time) bson.M {
	set := bson.M{
		"experience_years":  in.ExperienceYears,
		"experience_months": in.ExperienceMonths,
		"employment_type":   in.EmploymentType,
		"occupation":        in.Occupation,
		"job_requirement":   in.JobRequirement,
		"heard_about":       in.HeardAbout,
		"interest_type":     in.InterestType,
	}
	return sectionUpdate(set, bson.M{}, experienceSlots, files, now)
}

func kycUpdate(in ports.KYCInput, files map[domain.FileKey]string, now time.Time) bson.M {
	set := bson.M{
		"bank_name":      in.BankName,
		"account_number": in.AccountNumber,
		"ifsc_code":      in.IFSCCode,
	}
	return sectionUpdate(set, bson.M{}, kycSlots, files, now)
}

// optional writes v when supplied and otherwise only seeds an empty value on insert.
func optional(set, onInsert bson.M, field string, v *string) {
	if v != nil {
		set[field] = *v
		return
	}
	onInsert[field] = ""
}

// sectionUpdate builds the update document for a section write. File slots
// without a new upload are only initialised on insert, so a stored reference
// survives every later submission that omits the file.
func sectionUpdate(set, onInsert bson.M, slots []fileSlot, files map[domain.FileKey]string, now time.Time) bson.M {
	set["updated_at"] = now
	onInsert["created_at"] = now
	for _, s := range slots {
		if url, ok := files[s.key]; ok {
			set[s.field] = url
			continue
		}
		onInsert[s.field] = ""
	}
	return bson.M{"$set": set, "$setOnInsert": onInsert}
}

// upsertSection performs the whole section write as one FindOneAndUpdate.
// The account_id of a new document comes from the filter.
func upsertSection[T any](ctx context.Context, col *mongo.Collection, accountID string, update bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"account_id": accountID}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out T
	err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
	if mongo.IsDuplicateKeyError(err) {
		// A concurrent first submission won the insert; ours becomes an update.
		err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert %s: %w", col.Name(), err)
	}
	return &out, nil
}

func (r *OnboardingRepository) DeleteByAccount(ctx context.Context, accountID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	for _, col := range []*mongo.Collection{r.profiles, r.experiences, r.kycs} {
		if _, err := col.DeleteOne(ctx, bson.M{"account_id": accountID}); err != nil {
			return fmt.Errorf("delete %s: %w", col.Name(), err)
		}
	}
	return nil
}

// EnsureIndexes makes account_id unique in every onboarding collection,
// which is what keeps a single record per account.
func (r *OnboardingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := mongo.IndexModel{
		Keys:    bson.D{{Key: "account_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, col := range []*mongo.Collection{r.profiles, r.experiences, r.kycs} {
		if _, err := col.Indexes().CreateOne(ctx, unique); err != nil {
			return fmt.Errorf("index %s: %w", col.Name(), err)
		}
	}

	if _, err := r.profiles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "mobile", Value: 1}}},
		{Keys: bson.D{{Key: "job_role", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("index %s: %w", collectionProfiles, err)
	}
	return nil
}
