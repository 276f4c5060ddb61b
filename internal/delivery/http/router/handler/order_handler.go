package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"servicehub/internal/delivery/http/response"
	"servicehub/internal/domain/entity"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandler handles placing orders and moving them through their lifecycle.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// scheduleLayouts are tried in order. Date-only values mean midnight UTC.
var scheduleLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// deliverySchedule decodes a JSON string in any of scheduleLayouts.
type deliverySchedule struct {
	time.Time
}

func (s *deliverySchedule) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			s.Time = t.UTC()

			return nil
		}
	}

	return &time.ParseError{Layout: time.RFC3339, Value: raw, Message: ": unsupported delivery schedule"}
}

func (s *deliverySchedule) value() *time.Time {
	if s == nil {
		return nil
	}
	t := s.Time

	return &t
}

type placeOrderRequest struct {
	ProviderID       uuid.UUID         `json:"serviceProvider" validate:"required"`
	ServicePostID    uuid.UUID         `json:"servicePost" validate:"required"`
	DeliverySchedule *deliverySchedule `json:"orderDeliverySchedule"`
}

type acceptOrderRequest struct {
	DeliverySchedule *deliverySchedule `json:"orderDeliverySchedule"`
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), p, usecase.PlaceOrderInput{
		ProviderID:       req.ProviderID,
		ServicePostID:    req.ServicePostID,
		DeliverySchedule: req.DeliverySchedule.value(),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order placed successfully")
}

// Accept requires orderDeliverySchedule in the body.
func (h *OrderHandler) Accept(c echo.Context) error {
	var req acceptOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.transition(c, "accepted", func(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.ServiceOrder, error) {
		return h.orderUC.Accept(ctx, p, id, req.DeliverySchedule.value())
	})
}

func (h *OrderHandler) Reject(c echo.Context) error {
	return h.transition(c, "rejected", h.orderUC.Reject)
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	return h.transition(c, "cancelled", h.orderUC.Cancel)
}

func (h *OrderHandler) Complete(c echo.Context) error {
	return h.transition(c, "completed", h.orderUC.Complete)
}

func (h *OrderHandler) transition(
	c echo.Context,
	verb string,
	apply func(ctx context.Context, p entity.Principal, id uuid.UUID) (*entity.ServiceOrder, error),
) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	order, err := apply(c.Request().Context(), p, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order "+verb+" successfully")
}

// ListOrders returns a handler listing the caller's orders in the given statuses, or all of them.
func (h *OrderHandler) ListOrders(statuses ...entity.OrderStatus) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := principal(c)
		if err != nil {
			return err
		}

		orders, err := h.orderUC.ListOrders(c.Request().Context(), p, statuses...)
		if err != nil {
			return err
		}

		return response.Success(c, http.StatusOK, orders, "")
	}
}
