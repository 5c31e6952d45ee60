package mail

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gigstm/gigs-platform/internal/core/ports"
)

func TestSMTPSender_Message(t *testing.T) {
	s := NewSMTPSender(Config{Host: "localhost", Port: 2525, From: "no-reply@gigs.local"})

	msg := s.message(ports.Mail{To: "asha@example.com", Subject: "Your code", HTML: "<strong>123456</strong>"})

	if got := msg.GetHeader("From"); len(got) != 1 || got[0] != "no-reply@gigs.local" {
		t.Fatalf("unexpected From header %v", got)
	}
	if got := msg.GetHeader("To"); len(got) != 1 || got[0] != "asha@example.com" {
		t.Fatalf("unexpected To header %v", got)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Content-Type: text/html") || !strings.Contains(buf.String(), "123456") {
		t.Fatalf("expected an html body, got %s", buf.String())
	}
}

func TestSMTPSender_Send_CancelledContext(t *testing.T) {
	s := NewSMTPSender(Config{Host: "localhost", Port: 2525})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Send(ctx, ports.Mail{To: "a@b.c"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
