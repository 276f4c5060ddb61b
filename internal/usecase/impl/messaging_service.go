package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type messagingService struct {
	accountRepo      repository.AccountRepository
	conversationRepo repository.ConversationRepository
	logger           *slog.Logger
}

// MessagingServiceParams holds dependencies for MessagingService, injected by Fx.
type MessagingServiceParams struct {
	fx.In

	AccountRepo      repository.AccountRepository
	ConversationRepo repository.ConversationRepository
	Logger           *slog.Logger
}

// NewMessagingService is the constructor for messagingService.
func NewMessagingService(params MessagingServiceParams) usecase.MessagingUsecase {
	return &messagingService{
		accountRepo:      params.AccountRepo,
		conversationRepo: params.ConversationRepo,
		logger:           params.Logger,
	}
}

func (srv *messagingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartConversation returns the pair's conversation, creating it on first contact.
func (srv *messagingService) StartConversation(ctx context.Context, consumer entity.Principal, providerID uuid.UUID) (*entity.Conversation, error) {
	if consumer.Role != entity.RoleConsumer {
		return nil, domainerrors.ErrForbidden.WithDetails("only consumers can start conversations")
	}

	if _, err := srv.accountRepo.FindByID(ctx, entity.RoleServiceProvider, providerID); err != nil {
		return nil, mapProviderError(err)
	}

	conversation, err := srv.conversationRepo.FindOrCreate(ctx, consumer.ID, providerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open conversation")
	}

	return conversation, nil
}

// SendMessage appends a message to a conversation the sender takes part in.
func (srv *messagingService) SendMessage(ctx context.Context, sender entity.Principal, conversationID uuid.UUID, body string) (*entity.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}
	if utf8.RuneCountInString(body) > entity.MaxMessageLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is too long")
	}

	if _, err := srv.participantConversation(ctx, sender, conversationID); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ConversationID: conversationID,
		Sender:         sender.Ref(),
		Body:           body,
		CreatedAt:      nowUTC(),
	}
	if err := srv.conversationRepo.AddMessage(ctx, message); err != nil {
		return nil, mapConversationError(err)
	}

	srv.log(ctx).Debug("Message sent", slog.Any("conversationID", conversationID), slog.String("senderRole", sender.Role.String()))

	return message, nil
}

func (srv *messagingService) ListConversations(ctx context.Context, party entity.Principal) ([]*entity.Conversation, error) {
	conversations, err := srv.conversationRepo.ListForParty(ctx, party.Ref())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	return conversations, nil
}

func (srv *messagingService) ListMessages(ctx context.Context, party entity.Principal, conversationID uuid.UUID) ([]*entity.Message, error) {
	if _, err := srv.participantConversation(ctx, party, conversationID); err != nil {
		return nil, err
	}

	messages, err := srv.conversationRepo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// participantConversation hides conversations of other parties behind NotFound.
func (srv *messagingService) participantConversation(ctx context.Context, party entity.Principal, conversationID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := srv.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, mapConversationError(err)
	}
	if !conversation.HasParticipant(party.Ref()) {
		return nil, domainerrors.ErrConversationNotFound
	}

	return conversation, nil
}

func mapConversationError(err error) error {
	if errors.Is(err, repository.ErrConversationNotFound) {
		return domainerrors.ErrConversationNotFound
	}

	return errors.Wrap(err, "conversation operation failed")
}
