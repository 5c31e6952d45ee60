package ports

import (
	"context"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// LoginResult carries the issued token. OTPSent is true when the account is
// unverified and a fresh code was mailed.
type LoginResult struct {
	Token   string
	Account *domain.Account
	OTPSent bool
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
	VerifyOTP(ctx context.Context, email, code string) (*domain.Account, error)
	ResendOTP(ctx context.Context, accountID string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ForgotPassword(ctx context.Context, email, resetBaseURL string) error
	ResetPassword(ctx context.Context, token, password string) error
	ChangePassword(ctx context.Context, accountID, current, next, confirm string) error
}
