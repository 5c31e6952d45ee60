package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gigstm/gigs-platform/internal/core/ports"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []ports.Mail
	fail map[string]bool
}

func (r *recordingMailer) Send(_ context.Context, m ports.Mail) error {
	if r.fail[m.To] {
		return errors.New("smtp down")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, m)
	return nil
}

func TestDispatcher_DeliversInOrderPerRecipient(t *testing.T) {
	mailer := &recordingMailer{fail: map[string]bool{"broken@example.com": true}}
	d := NewDispatcher(3, mailer, zerolog.Nop())
	d.Start(context.Background())

	subjects := []string{"first", "second", "third"}
	for _, s := range subjects {
		if err := d.Enqueue(ports.Mail{To: "asha@example.com", Subject: s}); err != nil {
			t.Fatal(err)
		}
	}
	_ = d.Enqueue(ports.Mail{To: "broken@example.com", Subject: "lost"})
	d.Stop()

	if len(mailer.sent) != len(subjects) {
		t.Fatalf("expected %d delivered, got %d", len(subjects), len(mailer.sent))
	}
	for i, m := range mailer.sent {
		if m.Subject != subjects[i] {
			t.Fatalf("delivery %d: expected %s, got %s", i, subjects[i], m.Subject)
		}
	}
}

func TestDispatcher_EnqueueAfterStop(t *testing.T) {
	d := NewDispatcher(1, &recordingMailer{}, zerolog.Nop())
	d.Start(context.Background())
	d.Stop()
	d.Stop()

	if err := d.Enqueue(ports.Mail{To: "a@example.com"}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("expected ErrQueueClosed, got %v", err)
	}
}

func TestDispatcher_FullQueueDrops(t *testing.T) {
	d := NewDispatcher(1, &recordingMailer{}, zerolog.Nop())
	// workers not started, so the channel fills up
	for i := 0; i < channelBuffer; i++ {
		if err := d.Enqueue(ports.Mail{To: "a@example.com"}); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}
	if err := d.Enqueue(ports.Mail{To: "a@example.com"}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestShardIndex_CaseInsensitiveAndStable(t *testing.T) {
	d := NewDispatcher(8, &recordingMailer{}, zerolog.Nop())
	a := d.shardIndex("Asha@Example.com")
	if a != d.shardIndex("asha@example.com") {
		t.Fatal("recipient casing must not change the shard")
	}
	if a < 0 || a >= 8 {
		t.Fatalf("shard out of range: %d", a)
	}
}
