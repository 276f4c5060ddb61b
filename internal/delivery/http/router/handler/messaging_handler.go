package handler

import (
	"net/http"

	"servicehub/internal/delivery/http/response"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MessagingHandler serves conversations between consumers and providers.
type MessagingHandler struct {
	messagingUC usecase.MessagingUsecase
}

// NewMessagingHandler is the constructor for MessagingHandler.
func NewMessagingHandler(messagingUC usecase.MessagingUsecase) *MessagingHandler {
	return &MessagingHandler{messagingUC: messagingUC}
}

type startConversationRequest struct {
	ProviderID uuid.UUID `json:"serviceProvider" validate:"required"`
}

type sendMessageRequest struct {
	ConversationID uuid.UUID `json:"conversationId" validate:"required"`
	Message        string    `json:"message" validate:"required,max=2000"`
}

func (h *MessagingHandler) StartConversation(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req startConversationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	conversation, err := h.messagingUC.StartConversation(c.Request().Context(), p, req.ProviderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, conversation, "")
}

func (h *MessagingHandler) SendMessage(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	message, err := h.messagingUC.SendMessage(c.Request().Context(), p, req.ConversationID, req.Message)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, message, "Message sent")
}

func (h *MessagingHandler) ListConversations(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	conversations, err := h.messagingUC.ListConversations(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, conversations, "")
}

func (h *MessagingHandler) ListMessages(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	conversationID, err := idParam(c, "conversationId")
	if err != nil {
		return err
	}

	messages, err := h.messagingUC.ListMessages(c.Request().Context(), p, conversationID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, messages, "")
}
