package ports

import (
	"context"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

// OnboardingRepository persists the three per-account onboarding records.
//
// Every Upsert is a single atomic write keyed by account id: supplied text and
// newly stored files overwrite, file slots without an upload are created empty
// and otherwise left alone. Optional pointer fields that are nil keep their
// stored value.
type OnboardingRepository interface {
	FindSnapshot(ctx context.Context, accountID string) (domain.Snapshot, error)
	UpsertProfile(ctx context.Context, accountID string, in PersonalInput, files map[domain.FileKey]string) (*domain.Profile, error)
	UpsertExperience(ctx context.Context, accountID string, in ExperienceInput, files map[domain.FileKey]string) (*domain.Experience, error)
	UpsertKYC(ctx context.Context, accountID string, in KYCInput, files map[domain.FileKey]string) (*domain.KYC, error)
	DeleteByAccount(ctx context.Context, accountID string) error
}
