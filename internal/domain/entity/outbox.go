package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxTopic routes an outbox event to its handler in the relay.
type OutboxTopic string

const (
	// OutboxTopicEmail carries an EmailJob.
	OutboxTopicEmail OutboxTopic = "email.send"
	// OutboxTopicLifecycle carries a LifecycleEvent for external subscribers.
	OutboxTopicLifecycle OutboxTopic = "lifecycle.event"
)

// OutboxStatus is the delivery state of an outbox event.
type OutboxStatus string

const (
	OutboxStatusPending    OutboxStatus = "pending"
	OutboxStatusDispatched OutboxStatus = "dispatched"
	OutboxStatusDead       OutboxStatus = "dead"
)

// OutboxEvent is a side effect recorded in the same transaction as the state change that
// produced it, then delivered asynchronously by the relay.
type OutboxEvent struct {
	ID           uuid.UUID
	Topic        OutboxTopic
	Payload      json.RawMessage
	Status       OutboxStatus
	Attempts     int
	LastError    string
	AvailableAt  time.Time // Not dispatched before this time.
	CreatedAt    time.Time
	DispatchedAt *time.Time
}

// EmailTemplate names an HTML template rendered by the mail package.
type EmailTemplate string

const (
	EmailTemplateOrder         EmailTemplate = "order"
	EmailTemplateDispute       EmailTemplate = "dispute"
	EmailTemplateRefund        EmailTemplate = "refund"
	EmailTemplateAccount       EmailTemplate = "account"
	EmailTemplatePasswordReset EmailTemplate = "password_reset"
)

// EmailField is one labelled row in an email body. A slice keeps the rows in order.
type EmailField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// EmailJob is the payload of an OutboxTopicEmail event.
type EmailJob struct {
	To          string        `json:"to"`
	Subject     string        `json:"subject"`
	Template    EmailTemplate `json:"template"`
	Intro       string        `json:"intro"`
	ActionLabel string        `json:"actionLabel"`
	ActionBy    string        `json:"actionBy"`
	Fields      []EmailField  `json:"fields"`
	Link        string        `json:"link,omitempty"`
}

// LifecycleEvent is the payload of an OutboxTopicLifecycle event.
type LifecycleEvent struct {
	EventID    uuid.UUID `json:"eventId"`
	Type       string    `json:"type"` // e.g. "order.accepted", "dispute.resolved"
	Entity     EntityRef `json:"entity"`
	Actor      PartyRef  `json:"actor"`
	Recipient  PartyRef  `json:"recipient"`
	OccurredAt time.Time `json:"occurredAt"`
}
