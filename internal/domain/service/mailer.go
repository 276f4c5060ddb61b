package service

import (
	"context"

	"servicehub/internal/domain/entity"
)

// EmailMessage is a fully rendered email ready for transport.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer delivers rendered emails. Implementations must honour ctx cancellation.
type Mailer interface {
	Send(ctx context.Context, message EmailMessage) error
}

// EmailRenderer turns a queued job into a message.
type EmailRenderer interface {
	Render(job entity.EmailJob) (EmailMessage, error)
}
