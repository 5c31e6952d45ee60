package ports

import "context"

// Mail is an outbound HTML email.
type Mail struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a message synchronously.
type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

// MailQueue accepts messages for asynchronous delivery.
type MailQueue interface {
	Enqueue(m Mail) error
}
