package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/service"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountHandler_SignIn(t *testing.T) {
	t.Run("sets the role cookie", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewAccountHandler(env.accountUC, env.auth)
		env.e.POST("/consumer/sign-in", h.SignIn(entity.RoleConsumer))

		account := &entity.Account{ID: uuid.New(), Role: entity.RoleConsumer, Email: "carl@example.com"}
		env.accountUC.EXPECT().
			SignIn(mock.Anything, usecase.SignInInput{Role: entity.RoleConsumer, Email: "carl@example.com", Password: "longenough"}).
			Return(&usecase.SessionOutput{Token: "tok", ExpiresAt: time.Now().Add(time.Hour), Account: account}, nil)

		rec, body := env.do(jsonRequest(http.MethodPost, "/consumer/sign-in", `{"email":"carl@example.com","password":"longenough"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, body.Success)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "consumerToken", cookies[0].Name)
		assert.Equal(t, "tok", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("rejects a malformed email before the usecase", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewAccountHandler(env.accountUC, env.auth)
		env.e.POST("/consumer/sign-in", h.SignIn(entity.RoleConsumer))

		rec, body := env.do(jsonRequest(http.MethodPost, "/consumer/sign-in", `{"email":"nope","password":"x"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	})

	t.Run("wrong password maps to 401", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewAccountHandler(env.accountUC, env.auth)
		env.e.POST("/admin/sign-in", h.SignIn(entity.RoleAdmin))

		env.accountUC.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec, body := env.do(jsonRequest(http.MethodPost, "/admin/sign-in", `{"email":"ada@example.com","password":"whatever1"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, body.Success)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAccountHandler_SignOut(t *testing.T) {
	env := newTestEnv(t)
	h := NewAccountHandler(env.accountUC, env.auth)
	env.e.GET("/service-provider/sign-out", h.SignOut(entity.RoleServiceProvider))

	rec, _ := env.do(jsonRequest(http.MethodGet, "/service-provider/sign-out", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "serviceProviderToken", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAccountHandler_LoadCurrent(t *testing.T) {
	t.Run("requires the session cookie", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewAccountHandler(env.accountUC, env.auth)
		env.e.GET("/consumer/load-current-consumer", h.LoadCurrent, env.auth.RequireRole(entity.RoleConsumer))

		rec, body := env.do(jsonRequest(http.MethodGet, "/consumer/load-current-consumer", ""))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	})

	t.Run("a revoked session is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewAccountHandler(env.accountUC, env.auth)
		env.e.GET("/consumer/load-current-consumer", h.LoadCurrent, env.auth.RequireRole(entity.RoleConsumer))

		env.accountUC.EXPECT().
			Authenticate(mock.Anything, entity.RoleConsumer, testToken).
			Return(nil, domainerrors.ErrSessionRevoked)

		rec, body := env.do(withSession(jsonRequest(http.MethodGet, "/consumer/load-current-consumer", ""), entity.RoleConsumer))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, domainerrors.ErrSessionRevoked.ErrorCode(), body.Error.Code)
	})

	t.Run("returns the account", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewAccountHandler(env.accountUC, env.auth)
		p := consumerPrincipal()
		env.e.GET("/consumer/load-current-consumer", h.LoadCurrent, env.as(p))

		env.accountUC.EXPECT().
			LoadCurrent(mock.Anything, p).
			Return(&entity.Account{ID: p.ID, Role: p.Role, Email: p.Email, Name: p.Name}, nil)

		rec, body := env.do(withSession(jsonRequest(http.MethodGet, "/consumer/load-current-consumer", ""), entity.RoleConsumer))

		require.Equal(t, http.StatusOK, rec.Code)
		var account entity.Account
		require.NoError(t, json.Unmarshal(body.Data, &account))
		assert.Equal(t, p.ID, account.ID)
	})
}

func TestAccountHandler_ResetPassword(t *testing.T) {
	env := newTestEnv(t)
	h := NewAccountHandler(env.accountUC, env.auth)
	env.e.PUT("/consumer/reset-password/:token", h.ResetPassword(entity.RoleConsumer))

	env.accountUC.EXPECT().
		ResetPassword(mock.Anything, usecase.ResetPasswordInput{Role: entity.RoleConsumer, Token: "reset-tok", Password: "brandnewpass"}).
		Return(nil)

	rec, _ := env.do(jsonRequest(http.MethodPut, "/consumer/reset-password/reset-tok", `{"password":"brandnewpass"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAccountHandler_UpdateAvatarAndPhone(t *testing.T) {
	t.Run("uploads the avatar", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewAccountHandler(env.accountUC, env.auth)
		p := consumerPrincipal()
		env.e.POST("/consumer/avatar-phone-upload", h.UpdateAvatarAndPhone, env.as(p))

		env.accountUC.EXPECT().
			UpdateAvatarAndPhone(mock.Anything, p, mock.MatchedBy(func(in usecase.UpdateContactInput) bool {
				return in.Phone == "+923001234567" && in.Avatar != nil &&
					in.Avatar.FileName == "me.png" && string(in.Avatar.Data) == "png-bytes"
			})).
			Return(&entity.Account{ID: p.ID, Phone: "+923001234567"}, nil)

		req := multipartRequest(t, http.MethodPost, "/consumer/avatar-phone-upload",
			map[string]string{"phone": "+923001234567"},
			formPart{field: "avatar", fileName: "me.png", data: []byte("png-bytes")})

		rec, _ := env.do(withSession(req, entity.RoleConsumer))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("avatar is required", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewAccountHandler(env.accountUC, env.auth)
		env.e.POST("/consumer/avatar-phone-upload", h.UpdateAvatarAndPhone, env.as(consumerPrincipal()))

		req := multipartRequest(t, http.MethodPost, "/consumer/avatar-phone-upload", map[string]string{"phone": "+923001234567"})

		rec, body := env.do(withSession(req, entity.RoleConsumer))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	})
}

func TestReadFileHeader_KeepsContentType(t *testing.T) {
	env := newTestEnv(t)
	var got *service.MediaUpload
	env.e.POST("/upload", func(c echo.Context) error {
		upload, err := formFile(c, "file", true)
		got = upload

		return err
	})

	req := multipartRequest(t, http.MethodPost, "/upload", nil, formPart{field: "file", fileName: "a.jpg", data: []byte{0xff, 0xd8}})
	rec, _ := env.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "a.jpg", got.FileName)
	assert.Equal(t, "application/octet-stream", got.ContentType)
	assert.Equal(t, []byte{0xff, 0xd8}, got.Data)
}
