package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message created as a side effect of a lifecycle transition.
type Notification struct {
	ID         uuid.UUID `json:"id"`                    // The Global Unique Identifier (GUID) for the notification.
	Message    string    `json:"notificationMessage"`   // Human readable text, e.g. "Order #… has been accepted by Jane".
	SentBy     PartyRef  `json:"sendBy"`                // Actor who caused the notification.
	ReceivedBy PartyRef  `json:"receivedBy"`            // Only this party may read or flip it.
	Related    EntityRef `json:"relatedEntity"`         // Record the notification refers to.
	Read       bool      `json:"read"`                  // Flipped once by mark-as-read.
	CreatedAt  time.Time `json:"createdAt"`             // Listing order is newest first.
}

// Conversation is a message thread between one consumer and one provider.
type Conversation struct {
	ID            uuid.UUID  `json:"id"`
	ConsumerID    uuid.UUID  `json:"consumer"`
	ProviderID    uuid.UUID  `json:"serviceProvider"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// HasParticipant reports whether the party belongs to the conversation.
func (c *Conversation) HasParticipant(p PartyRef) bool {
	switch p.Kind {
	case RoleConsumer:
		return c.ConsumerID == p.ID
	case RoleServiceProvider:
		return c.ProviderID == p.ID
	default:
		return false
	}
}

// Message is one entry in a conversation.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation"`
	Sender         PartyRef  `json:"sender"`
	Body           string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MaxMessageLength bounds a single chat message.
const MaxMessageLength = 2000
