package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

// ThrottleConfig bounds how often a code may be issued for one subject.
type ThrottleConfig struct {
	Cooldown time.Duration // minimum gap between two codes
	Window   time.Duration // period the MaxSends limit applies to
	MaxSends int64
	Block    time.Duration // lockout once MaxSends is exceeded
}

func (c ThrottleConfig) withDefaults() ThrottleConfig {
	if c.Cooldown <= 0 {
		c.Cooldown = time.Minute
	}
	if c.Window <= 0 {
		c.Window = time.Hour
	}
	if c.MaxSends <= 0 {
		c.MaxSends = 5
	}
	if c.Block <= 0 {
		c.Block = c.Window
	}
	return c
}

// OTPThrottle limits code issuance per subject.
// Keys: otp:block:<subject>, otp:last:<subject>, otp:count:<subject>
type OTPThrottle struct {
	client *redis.Client
	cfg    ThrottleConfig
}

func NewOTPThrottle(client *redis.Client, cfg ThrottleConfig) *OTPThrottle {
	return &OTPThrottle{client: client, cfg: cfg.withDefaults()}
}

// Allow records an issuance for subject or refuses it with domain.ErrOTPThrottled.
func (t *OTPThrottle) Allow(ctx context.Context, subject string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	blockKey, lastKey, countKey := t.keys(subject)

	if ttl, err := t.client.TTL(ctx, blockKey).Result(); err != nil {
		return fmt.Errorf("otp throttle: %w", err)
	} else if ttl > 0 {
		return throttled(ttl)
	}

	// SetNX on the cooldown key is the atomic "one code per cooldown" check.
	ok, err := t.client.SetNX(ctx, lastKey, "1", t.cfg.Cooldown).Result()
	if err != nil {
		return fmt.Errorf("otp throttle: %w", err)
	}
	if !ok {
		ttl, err := t.client.TTL(ctx, lastKey).Result()
		if err != nil {
			return fmt.Errorf("otp throttle: %w", err)
		}
		return throttled(ttl)
	}

	sent, err := t.client.Incr(ctx, countKey).Result()
	if err != nil {
		return fmt.Errorf("otp throttle: %w", err)
	}
	if sent == 1 {
		if err := t.client.Expire(ctx, countKey, t.cfg.Window).Err(); err != nil {
			return fmt.Errorf("otp throttle: %w", err)
		}
	}

	if sent > t.cfg.MaxSends {
		if err := t.client.Set(ctx, blockKey, "1", t.cfg.Block).Err(); err != nil {
			return fmt.Errorf("otp throttle: %w", err)
		}
		t.client.Del(ctx, countKey)
		return throttled(t.cfg.Block)
	}
	return nil
}

// Reset clears all throttle state for subject.
func (t *OTPThrottle) Reset(ctx context.Context, subject string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	blockKey, lastKey, countKey := t.keys(subject)
	return t.client.Del(ctx, blockKey, lastKey, countKey).Err()
}

func (t *OTPThrottle) keys(subject string) (block, last, count string) {
	return "otp:block:" + subject, "otp:last:" + subject, "otp:count:" + subject
}

func throttled(wait time.Duration) error {
	secs := int(wait.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return fmt.Errorf("%w: retry in %ds", domain.ErrOTPThrottled, secs)
}
