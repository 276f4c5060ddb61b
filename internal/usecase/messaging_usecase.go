package usecase

import (
	"context"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// MessagingUsecase defines consumer to provider messaging.
type MessagingUsecase interface {
	// StartConversation returns the existing conversation of the pair or creates one.
	StartConversation(ctx context.Context, consumer entity.Principal, providerID uuid.UUID) (*entity.Conversation, error)
	SendMessage(ctx context.Context, sender entity.Principal, conversationID uuid.UUID, body string) (*entity.Message, error)
	ListConversations(ctx context.Context, party entity.Principal) ([]*entity.Conversation, error)
	ListMessages(ctx context.Context, party entity.Principal, conversationID uuid.UUID) ([]*entity.Message, error)
}
