package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AccountStatus is the moderation state an admin assigns to an account.
type AccountStatus string

const (
	StatusPending     AccountStatus = "pending"
	StatusApproved    AccountStatus = "approved"
	StatusDisapproved AccountStatus = "disapproved"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotVerified = errors.New("account not verified")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrOTPInvalid         = errors.New("invalid or expired otp")
	ErrOTPThrottled       = errors.New("otp requested too often")
	ErrResetTokenInvalid  = errors.New("reset token is invalid or has expired")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrForbidden          = errors.New("access forbidden")
	ErrUnauthorized       = errors.New("authentication required")
)

// ParseModerationStatus accepts only the two values an admin may set.
func ParseModerationStatus(s string) (AccountStatus, error) {
	switch AccountStatus(s) {
	case StatusApproved, StatusDisapproved:
		return AccountStatus(s), nil
	}
	return "", &InvalidStatusError{Value: s}
}

// InvalidStatusError reports a moderation status outside {approved, disapproved}.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q: must be one of approved, disapproved", e.Value)
}

func (e *InvalidStatusError) Unwrap() error { return ErrInvalidStatus }

// Account models a registered identity.
type Account struct {
	ID              string        `json:"id"`
	ExternalID      string        `json:"external_id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	PasswordHash    string        `json:"-"`
	EmailVerified   bool          `json:"email_verified"`
	OTPHash         string        `json:"-"`
	OTPExpiresAt    time.Time     `json:"-"`
	ResetTokenHash  string        `json:"-"`
	ResetExpiresAt  time.Time     `json:"-"`
	Role            string        `json:"role"`
	Status          AccountStatus `json:"status"`
	FeedbackMessage string        `json:"feedback_message,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (a *Account) IsAdmin() bool { return a.Role == RoleAdmin }
