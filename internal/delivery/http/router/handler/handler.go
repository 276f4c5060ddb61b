// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"servicehub/internal/delivery/http/middleware"
	"servicehub/internal/delivery/http/response"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindAndValidate binds the request into dst and runs the struct validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}

	return c.Validate(dst)
}

func idParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails(name + " must be a valid id")
	}

	return id, nil
}

func limitQuery(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return 0
	}

	return limit
}

func principal(c echo.Context) (entity.Principal, error) {
	return middleware.PrincipalFrom(c)
}

// formFile reads one uploaded file. A missing optional file returns nil.
func formFile(c echo.Context, field string, required bool) (*service.MediaUpload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) && !required {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " file is required")
	}

	return readFileHeader(header)
}

// formFiles reads every file uploaded under field.
func formFiles(c echo.Context, field string) ([]service.MediaUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("multipart form expected")
	}

	headers := form.File[field]
	uploads := make([]service.MediaUpload, 0, len(headers))
	for _, header := range headers {
		upload, err := readFileHeader(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}

	return uploads, nil
}

func readFileHeader(header *multipart.FileHeader) (*service.MediaUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return &service.MediaUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
