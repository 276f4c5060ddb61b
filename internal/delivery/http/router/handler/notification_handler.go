package handler

import (
	"net/http"

	"servicehub/internal/delivery/http/response"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the in-app notification routes of every role.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(notificationUC usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

func (h *NotificationHandler) ListUnread(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationUC.ListUnread(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// MarkRead may be repeated; only the recipient can read its notification.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), p, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}
