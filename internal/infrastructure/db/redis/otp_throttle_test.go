package redis

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

func TestThrottleConfig_Defaults(t *testing.T) {
	cfg := ThrottleConfig{}.withDefaults()
	if cfg.Cooldown != time.Minute || cfg.Window != time.Hour || cfg.MaxSends != 5 || cfg.Block != time.Hour {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	cfg = ThrottleConfig{Cooldown: 30 * time.Second, Window: 10 * time.Minute, MaxSends: 3}.withDefaults()
	if cfg.Block != 10*time.Minute {
		t.Fatalf("expected block to default to the window, got %s", cfg.Block)
	}
}

func TestThrottled(t *testing.T) {
	tests := []struct {
		wait time.Duration
		want string
	}{
		{45 * time.Second, "retry in 45s"},
		{1500 * time.Millisecond, "retry in 2s"},
		{0, "retry in 1s"},
	}
	for _, tt := range tests {
		err := throttled(tt.wait)
		if !errors.Is(err, domain.ErrOTPThrottled) {
			t.Fatalf("expected ErrOTPThrottled, got %v", err)
		}
		if !strings.HasSuffix(err.Error(), tt.want) {
			t.Errorf("throttled(%s) = %q, want suffix %q", tt.wait, err.Error(), tt.want)
		}
	}
}
