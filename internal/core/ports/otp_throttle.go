package ports

import "context"

// OTPThrottle limits how often a one-time code may be issued for a subject.
type OTPThrottle interface {
	// Allow records an attempt for subject and returns domain.ErrOTPThrottled
	// (wrapped with the wait time) when it must be refused.
	Allow(ctx context.Context, subject string) error
}
