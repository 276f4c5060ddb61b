package handler

import (
	"net/http"

	"servicehub/internal/delivery/http/response"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles catalog services, service posts and ratings.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	ratingUC  usecase.RatingUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(catalogUC usecase.CatalogUsecase, ratingUC usecase.RatingUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, ratingUC: ratingUC}
}

type serviceRequest struct {
	Name        string `json:"serviceName" validate:"required,max=100"`
	Description string `json:"serviceDescription" validate:"max=1000"`
}

type ratingRequest struct {
	Stars int `json:"ratingStars" validate:"required,min=1,max=5"`
}

func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	svc, err := h.catalogUC.CreateService(c.Request().Context(), usecase.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, svc, "Service created successfully")
}

func (h *CatalogHandler) UpdateService(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	svc, err := h.catalogUC.UpdateService(c.Request().Context(), id, usecase.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, svc, "Service updated successfully")
}

func (h *CatalogHandler) DeleteService(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteService(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Service deleted successfully")
}

func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.catalogUC.ListServices(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, services, "")
}

// CreatePost reads a multipart form with serviceId, message, price and an image file.
func (h *CatalogHandler) CreatePost(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	serviceID, err := uuid.Parse(formValue(c, "serviceId", "service"))
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("serviceId must be a valid id")
	}

	price, err := decimal.NewFromString(formValue(c, "price", "servicePostPrice"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("price must be a number")
	}

	image, err := formFile(c, "image", true)
	if err != nil {
		return err
	}

	post, err := h.catalogUC.CreatePost(c.Request().Context(), p, usecase.CreatePostInput{
		ServiceID: serviceID,
		Message:   formValue(c, "message", "servicePostMessage"),
		Price:     price,
		Image:     image,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, post, "Service post created successfully")
}

// DeletePost removes the post together with its orders.
func (h *CatalogHandler) DeletePost(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeletePost(c.Request().Context(), p, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Service post deleted successfully")
}

func (h *CatalogHandler) ListProviderPosts(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	posts, err := h.catalogUC.ListProviderPosts(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, posts, "")
}

func (h *CatalogHandler) ListRecentPosts(c echo.Context) error {
	posts, err := h.catalogUC.ListRecentPosts(c.Request().Context(), limitQuery(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, posts, "")
}

func (h *CatalogHandler) ListPopularPosts(c echo.Context) error {
	posts, err := h.catalogUC.ListPopularPosts(c.Request().Context(), limitQuery(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, posts, "")
}

func (h *CatalogHandler) GetPost(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.catalogUC.GetPost(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, post, "")
}

// AddRating rates the post named by the id path parameter.
func (h *CatalogHandler) AddRating(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	postID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req ratingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.ratingUC.Submit(c.Request().Context(), p, postID, req.Stars)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, post, "Rating added successfully")
}
