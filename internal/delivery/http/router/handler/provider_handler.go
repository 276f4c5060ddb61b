package handler

import (
	"net/http"

	"servicehub/internal/delivery/http/response"
	"servicehub/internal/domain/entity"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProviderHandler handles the service provider profile routes and admin verification.
type ProviderHandler struct {
	providerUC usecase.ProviderUsecase
}

// NewProviderHandler is the constructor for ProviderHandler.
func NewProviderHandler(providerUC usecase.ProviderUsecase) *ProviderHandler {
	return &ProviderHandler{providerUC: providerUC}
}

type workingHoursRequest struct {
	WorkingHours []entity.WorkingHour `json:"workingHours" validate:"required,min=1,max=7"`
}

type listedServicesRequest struct {
	ServiceIDs []uuid.UUID `json:"listedServices" validate:"required,min=1"`
}

func (h *ProviderHandler) SetWorkingHours(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req workingHoursRequest
	if err := bindRoleAndValidate(c, p.Role, &req); err != nil {
		return err
	}

	account, err := h.providerUC.SetWorkingHours(c.Request().Context(), p, req.WorkingHours)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account, "Working hours updated successfully")
}

// AddCNICDetails reads a multipart form with cnicNumber and two cnicImages files.
func (h *ProviderHandler) AddCNICDetails(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	images, err := formFiles(c, "cnicImages")
	if err != nil {
		return err
	}

	account, err := h.providerUC.AddCNICDetails(c.Request().Context(), p, usecase.CNICInput{
		Number: c.FormValue("cnicNumber"),
		Images: images,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account, "CNIC details added successfully")
}

func (h *ProviderHandler) AddListedServices(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req listedServicesRequest
	if err := bindRoleAndValidate(c, p.Role, &req); err != nil {
		return err
	}

	account, err := h.providerUC.AddListedServices(c.Request().Context(), p, req.ServiceIDs)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account, "Listed services added successfully")
}

// VerifyProvider is served under the admin group.
func (h *ProviderHandler) VerifyProvider(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return err
	}

	providerID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	account, err := h.providerUC.VerifyProvider(c.Request().Context(), admin, providerID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account, "Service provider verified successfully")
}
