package postgres

import (
	"context"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	"servicehub/internal/errors"
	"servicehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

// FindOrCreate returns the pair's conversation. A concurrent first contact loses the
// insert race on ux_conversations_pair and reads the winner's row.
func (repo *conversationRepository) FindOrCreate(ctx context.Context, consumerID, providerID uuid.UUID) (*entity.Conversation, error) {
	conversation, err := repo.findPair(ctx, consumerID, providerID)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, repository.ErrConversationNotFound) {
		return nil, err
	}

	conversationM := &model.ConversationModel{ConsumerID: consumerID, ProviderID: providerID}
	if err := repo.db.WithContext(ctx).Create(conversationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.findPair(ctx, consumerID, providerID)
		}

		return nil, errors.Wrap(err, "failed to create conversation")
	}

	return toConversationDomain(conversationM), nil
}

func (repo *conversationRepository) findPair(ctx context.Context, consumerID, providerID uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("consumer_id = ? AND provider_id = ?", consumerID, providerID).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	return toConversationDomain(&conversationM), nil
}

// FindByID retrieves a single conversation.
func (repo *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by ID")
	}

	return toConversationDomain(&conversationM), nil
}

// ListForParty returns the party's conversations, most recently active first.
func (repo *conversationRepository) ListForParty(ctx context.Context, party entity.PartyRef) ([]*entity.Conversation, error) {
	column := partyColumn(party)
	if column == "" {
		return []*entity.Conversation{}, nil
	}

	var conversationModels []*model.ConversationModel
	if err := repo.db.WithContext(ctx).
		Where(column+" = ?", party.ID).
		Order("COALESCE(last_message_at, created_at) DESC").
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// AddMessage appends a message and bumps the conversation's last activity.
func (repo *conversationRepository) AddMessage(ctx context.Context, message *entity.Message) error {
	messageM := &model.MessageModel{
		ConversationID: message.ConversationID,
		SenderKind:     string(message.Sender.Kind),
		SenderID:       message.Sender.ID,
		Body:           message.Body,
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(messageM).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrConversationNotFound
			}

			return errors.Wrap(err, "failed to create message")
		}

		result := tx.Model(&model.ConversationModel{}).
			Where("id = ?", message.ConversationID).
			Update("last_message_at", messageM.CreatedAt)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to touch conversation")
		}
		if result.RowsAffected == 0 {
			return repository.ErrConversationNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListMessages returns a conversation's messages, oldest first.
func (repo *conversationRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, m := range messageModels {
		messages = append(messages, &entity.Message{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			Sender:         entity.NewPartyRef(entity.Role(m.SenderKind), m.SenderID),
			Body:           m.Body,
			CreatedAt:      m.CreatedAt,
		})
	}

	return messages, nil
}

func toConversationDomain(m *model.ConversationModel) *entity.Conversation {
	return &entity.Conversation{
		ID:            m.ID,
		ConsumerID:    m.ConsumerID,
		ProviderID:    m.ProviderID,
		LastMessageAt: m.LastMessageAt,
		CreatedAt:     m.CreatedAt,
	}
}
