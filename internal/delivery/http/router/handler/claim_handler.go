package handler

import (
	"net/http"

	"servicehub/internal/delivery/http/response"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ClaimHandler handles disputes and refund requests for consumers and admins.
type ClaimHandler struct {
	disputeUC usecase.DisputeUsecase
	refundUC  usecase.RefundUsecase
}

// NewClaimHandler is the constructor for ClaimHandler.
func NewClaimHandler(disputeUC usecase.DisputeUsecase, refundUC usecase.RefundUsecase) *ClaimHandler {
	return &ClaimHandler{disputeUC: disputeUC, refundUC: refundUC}
}

type fileDisputeRequest struct {
	Title   string     `json:"disputeTitle" validate:"required,min=3,max=50"`
	Details string     `json:"disputeDetails" validate:"required,min=5,max=500"`
	OrderID *uuid.UUID `json:"order"`
}

type resolveDisputeRequest struct {
	Resolution string `json:"disputeResolution" validate:"required,max=500"`
}

type refundRequest struct {
	Amount     decimal.Decimal         `json:"refundAmount"`
	AmountType entity.RefundAmountType `json:"refundAmountType" validate:"omitempty,oneof=fixed percentage"`
	Details    string                  `json:"refundDetails" validate:"required,min=5,max=500"`
	OrderID    *uuid.UUID              `json:"order"`
}

// FileDispute files a dispute against the provider named by the id path parameter.
func (h *ClaimHandler) FileDispute(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	providerID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req fileDisputeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	dispute, err := h.disputeUC.File(c.Request().Context(), p, usecase.FileDisputeInput{
		ProviderID: providerID,
		Title:      req.Title,
		Details:    req.Details,
		OrderID:    req.OrderID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, dispute, "Dispute filed successfully")
}

func (h *ClaimHandler) DeleteDispute(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.disputeUC.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Dispute deleted successfully")
}

func (h *ClaimHandler) ListConsumerDisputes(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	disputes, err := h.disputeUC.ListForConsumer(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, disputes, "")
}

// ListAllDisputes accepts an optional ?status filter.
func (h *ClaimHandler) ListAllDisputes(c echo.Context) error {
	var status *entity.DisputeStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.DisputeStatus(raw)
		if !s.IsValid() {
			return domainerrors.ErrInvalidInput.WithDetails("unknown dispute status")
		}
		status = &s
	}

	disputes, err := h.disputeUC.ListAll(c.Request().Context(), status)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, disputes, "")
}

func (h *ClaimHandler) ResolveDispute(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req resolveDisputeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	dispute, err := h.disputeUC.Resolve(c.Request().Context(), admin, id, req.Resolution)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, dispute, "Dispute resolved successfully")
}

func (h *ClaimHandler) RejectDispute(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	dispute, err := h.disputeUC.Reject(c.Request().Context(), admin, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, dispute, "Dispute rejected successfully")
}

// SubmitRefund submits a refund request against the provider named by the id path parameter.
func (h *ClaimHandler) SubmitRefund(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	providerID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req refundRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	refund, err := h.refundUC.Submit(c.Request().Context(), p, usecase.SubmitRefundInput{
		ProviderID: providerID,
		Amount:     req.Amount,
		AmountType: req.AmountType,
		Details:    req.Details,
		OrderID:    req.OrderID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, refund, "Refund request submitted successfully")
}

func (h *ClaimHandler) ListConsumerRefunds(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	refunds, err := h.refundUC.ListForConsumer(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, refunds, "")
}

// ListAllRefunds accepts an optional ?status filter.
func (h *ClaimHandler) ListAllRefunds(c echo.Context) error {
	var status *entity.RefundStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.RefundStatus(raw)
		if !s.IsValid() {
			return domainerrors.ErrInvalidInput.WithDetails("unknown refund status")
		}
		status = &s
	}

	refunds, err := h.refundUC.ListAll(c.Request().Context(), status)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, refunds, "")
}

func (h *ClaimHandler) ApproveRefund(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	refund, err := h.refundUC.Approve(c.Request().Context(), admin, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, refund, "Refund request approved successfully")
}

func (h *ClaimHandler) RejectRefund(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	refund, err := h.refundUC.Reject(c.Request().Context(), admin, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, refund, "Refund request rejected successfully")
}
