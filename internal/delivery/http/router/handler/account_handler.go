package handler

import (
	"net/http"

	"servicehub/internal/delivery/http/middleware"
	"servicehub/internal/delivery/http/response"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles the account routes shared by the three roles.
// Each method takes the role its route group serves. Bodies may use either the plain keys
// (email, password) or the role-prefixed ones (consumerEmail, adminPassword).
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	auth      *middleware.AuthMiddleware
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(accountUC usecase.AccountUsecase, auth *middleware.AuthMiddleware) *AccountHandler {
	return &AccountHandler{accountUC: accountUC, auth: auth}
}

type signUpRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type passwordResetEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type addressRequest struct {
	Address string `json:"address" validate:"required,max=300"`
}

// SignUp creates an account of the role.
func (h *AccountHandler) SignUp(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req signUpRequest
		if err := bindRoleAndValidate(c, role, &req); err != nil {
			return err
		}

		account, err := h.accountUC.SignUp(c.Request().Context(), usecase.SignUpInput{
			Role:     role,
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return err
		}

		return response.Success(c, http.StatusCreated, account, role.DisplayName()+" account created successfully")
	}
}

// SignIn verifies the credentials and sets the role's session cookie.
func (h *AccountHandler) SignIn(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req signInRequest
		if err := bindRoleAndValidate(c, role, &req); err != nil {
			return err
		}

		session, err := h.accountUC.SignIn(c.Request().Context(), usecase.SignInInput{
			Role:     role,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			return err
		}

		h.auth.SetSessionCookie(c, role, session.Token, session.ExpiresAt)

		return response.Success(c, http.StatusOK, session.Account, "Signed in successfully")
	}
}

// SignOut expires the role's session cookie.
func (h *AccountHandler) SignOut(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		h.auth.ClearSessionCookie(c, role)

		return response.Success(c, http.StatusOK, nil, "Signed out successfully")
	}
}

// LoadCurrent returns the signed in account.
func (h *AccountHandler) LoadCurrent(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	account, err := h.accountUC.LoadCurrent(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account, "")
}

// SendPasswordReset queues a reset email. Unknown addresses are reported as not found.
func (h *AccountHandler) SendPasswordReset(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req passwordResetEmailRequest
		if err := bindRoleAndValidate(c, role, &req); err != nil {
			return err
		}

		if err := h.accountUC.SendPasswordReset(c.Request().Context(), role, req.Email); err != nil {
			return err
		}

		return response.Success(c, http.StatusOK, nil, "Password reset email sent")
	}
}

// ResetPassword stores the new password for the token in the path.
func (h *AccountHandler) ResetPassword(role entity.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Param("token")
		if token == "" {
			return domainerrors.ErrInvalidToken
		}

		var req resetPasswordRequest
		if err := bindRoleAndValidate(c, role, &req); err != nil {
			return err
		}

		err := h.accountUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
			Role:     role,
			Token:    token,
			Password: req.Password,
		})
		if err != nil {
			return err
		}

		// Every session of the account was revoked, including this one.
		h.auth.ClearSessionCookie(c, role)

		return response.Success(c, http.StatusOK, nil, "Password reset successfully")
	}
}

// UpdateAvatarAndPhone reads a multipart form with a phone field and an avatar file.
func (h *AccountHandler) UpdateAvatarAndPhone(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	req := struct {
		Phone string `json:"phone" validate:"required,phone"`
	}{Phone: roleFormValue(c, p.Role, "phone", "PhoneNumber")}
	if err := c.Validate(&req); err != nil {
		return err
	}

	avatar, err := formFile(c, "avatar", true)
	if err != nil {
		return err
	}

	account, err := h.accountUC.UpdateAvatarAndPhone(c.Request().Context(), p, usecase.UpdateContactInput{
		Phone:  req.Phone,
		Avatar: avatar,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account, "Profile updated successfully")
}

// UpdateAddress serves both the add and change address routes.
func (h *AccountHandler) UpdateAddress(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req addressRequest
	if err := bindRoleAndValidate(c, p.Role, &req); err != nil {
		return err
	}

	account, err := h.accountUC.UpdateAddress(c.Request().Context(), p, req.Address)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, account, "Address updated successfully")
}
