package ports

import (
	"context"
	"time"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

// AccountRepository defines persistence for identity records.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByExternalID(ctx context.Context, externalID string) (*domain.Account, error)
	// FindByResetToken returns the account holding tokenHash whose reset window
	// has not elapsed at now.
	FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (*domain.Account, error)
	// UpdateCredentials persists the password, verification, OTP and reset-token fields.
	UpdateCredentials(ctx context.Context, account *domain.Account) error
	// SetModeration writes status and feedback. An empty feedback removes the field.
	SetModeration(ctx context.Context, externalID string, status domain.AccountStatus, feedback string) error
	// Delete removes the account and returns the removed record.
	Delete(ctx context.Context, externalID string) (*domain.Account, error)
}
