package repository

import (
	"context"
	"errors"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when a conversation does not exist.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository defines the interface for consumer-provider messaging.
type ConversationRepository interface {
	// FindOrCreate returns the pair's conversation, creating it on first contact.
	FindOrCreate(ctx context.Context, consumerID, providerID uuid.UUID) (*entity.Conversation, error)

	// FindByID retrieves a single conversation.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// ListForParty returns the party's conversations, most recently active first.
	ListForParty(ctx context.Context, party entity.PartyRef) ([]*entity.Conversation, error)

	// AddMessage appends a message and bumps the conversation's last activity.
	AddMessage(ctx context.Context, message *entity.Message) error

	// ListMessages returns a conversation's messages, oldest first.
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)
}
