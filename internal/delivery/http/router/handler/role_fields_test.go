package handler

import (
	"net/http"
	"testing"
	"time"

	"servicehub/internal/domain/entity"
	mockUsecase "servicehub/internal/mocks/usecase"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoleField(t *testing.T) {
	tests := []struct {
		role entity.Role
		key  string
		want string
	}{
		{role: entity.RoleConsumer, key: "consumerEmail", want: "email"},
		{role: entity.RoleConsumer, key: "consumerFullName", want: "name"},
		{role: entity.RoleConsumer, key: "consumerPhoneNumber", want: "phone"},
		{role: entity.RoleServiceProvider, key: "serviceProviderWorkingHours", want: "workingHours"},
		{role: entity.RoleAdmin, key: "newPassword", want: "password"},
		{role: entity.RoleAdmin, key: "email", want: "email"},
		// Another role's prefix is left alone.
		{role: entity.RoleAdmin, key: "consumerEmail", want: "consumerEmail"},
		{role: entity.RoleConsumer, key: "consumers", want: "consumers"},
	}
	for _, tt := range tests {
		t.Run(tt.role.String()+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, roleField(tt.role, tt.key))
		})
	}
}

func TestAccountHandler_SignUp_PrefixedKeys(t *testing.T) {
	env := newTestEnv(t)
	h := NewAccountHandler(env.accountUC, env.auth)
	env.e.POST("/consumer/sign-up", h.SignUp(entity.RoleConsumer))

	env.accountUC.EXPECT().
		SignUp(mock.Anything, usecase.SignUpInput{Role: entity.RoleConsumer, Name: "Carl", Email: "carl@example.com", Password: "longenough"}).
		Return(&entity.Account{ID: uuid.New(), Role: entity.RoleConsumer}, nil)

	rec, _ := env.do(jsonRequest(http.MethodPost, "/consumer/sign-up",
		`{"consumerFullName":"Carl","consumerEmail":"carl@example.com","consumerPassword":"longenough"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAccountHandler_SignIn_PlainKeyWins(t *testing.T) {
	env := newTestEnv(t)
	h := NewAccountHandler(env.accountUC, env.auth)
	env.e.POST("/service-provider/sign-in", h.SignIn(entity.RoleServiceProvider))

	env.accountUC.EXPECT().
		SignIn(mock.Anything, usecase.SignInInput{Role: entity.RoleServiceProvider, Email: "plain@example.com", Password: "longenough"}).
		Return(&usecase.SessionOutput{Token: "tok", ExpiresAt: time.Now().Add(time.Hour), Account: &entity.Account{}}, nil)

	rec, _ := env.do(jsonRequest(http.MethodPost, "/service-provider/sign-in",
		`{"serviceProviderEmail":"prefixed@example.com","email":"plain@example.com","serviceProviderPassword":"longenough"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_ResetPassword_AdminNewPassword(t *testing.T) {
	env := newTestEnv(t)
	h := NewAccountHandler(env.accountUC, env.auth)
	env.e.POST("/admin/reset-password/:token", h.ResetPassword(entity.RoleAdmin))

	env.accountUC.EXPECT().
		ResetPassword(mock.Anything, usecase.ResetPasswordInput{Role: entity.RoleAdmin, Token: "reset-tok", Password: "brandnewpass"}).
		Return(nil)

	rec, _ := env.do(jsonRequest(http.MethodPost, "/admin/reset-password/reset-tok", `{"newPassword":"brandnewpass"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_ResetPassword_MalformedBody(t *testing.T) {
	env := newTestEnv(t)
	h := NewAccountHandler(env.accountUC, env.auth)
	env.e.POST("/admin/reset-password/:token", h.ResetPassword(entity.RoleAdmin))

	rec, body := env.do(jsonRequest(http.MethodPost, "/admin/reset-password/reset-tok", `{"newPassword":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)
}

func TestAccountHandler_UpdateAvatarAndPhone_PrefixedPhone(t *testing.T) {
	env := newTestEnv(t)
	h := NewAccountHandler(env.accountUC, env.auth)
	p := consumerPrincipal()
	env.e.POST("/consumer/avatar-phone-upload", h.UpdateAvatarAndPhone, env.as(p))

	env.accountUC.EXPECT().
		UpdateAvatarAndPhone(mock.Anything, p, mock.MatchedBy(func(in usecase.UpdateContactInput) bool {
			return in.Phone == "+923001234567" && in.Avatar != nil
		})).
		Return(&entity.Account{ID: p.ID}, nil)

	req := multipartRequest(t, http.MethodPost, "/consumer/avatar-phone-upload",
		map[string]string{"consumerPhoneNumber": "+923001234567"},
		formPart{field: "avatar", fileName: "me.png", data: []byte("png-bytes")})
	rec, _ := env.do(withSession(req, entity.RoleConsumer))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProviderHandler_SetWorkingHours_PrefixedKey(t *testing.T) {
	env := newTestEnv(t)
	providerUC := mockUsecase.NewMockProviderUsecase(t)
	h := NewProviderHandler(providerUC)
	p := providerPrincipal()
	env.e.POST("/service-provider/set-working-hours", h.SetWorkingHours, env.as(p))

	providerUC.EXPECT().
		SetWorkingHours(mock.Anything, p, []entity.WorkingHour{{Day: entity.Tuesday, Opens: "10:00", Closes: "18:00"}}).
		Return(&entity.Account{ID: p.ID}, nil)

	req := jsonRequest(http.MethodPost, "/service-provider/set-working-hours",
		`{"serviceProviderWorkingHours":[{"dayOfWeek":"tuesday","opens":"10:00","closes":"18:00"}]}`)
	rec, _ := env.do(withSession(req, entity.RoleServiceProvider))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_CreatePost_LegacyFormKeys(t *testing.T) {
	env := newTestEnv(t)
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(catalogUC, mockUsecase.NewMockRatingUsecase(t))
	p := providerPrincipal()
	env.e.POST("/service-provider/add-service-post", h.CreatePost, env.as(p))

	serviceID := uuid.New()
	catalogUC.EXPECT().
		CreatePost(mock.Anything, p, mock.MatchedBy(func(in usecase.CreatePostInput) bool {
			return in.ServiceID == serviceID && in.Message == "Deep clean" && in.Price.String() == "80"
		})).
		Return(&entity.ServicePost{ID: uuid.New(), ServiceID: serviceID}, nil)

	req := multipartRequest(t, http.MethodPost, "/service-provider/add-service-post",
		map[string]string{"service": serviceID.String(), "servicePostMessage": "Deep clean", "servicePostPrice": "80"},
		formPart{field: "image", fileName: "post.jpg", data: []byte("jpg")})
	rec, _ := env.do(withSession(req, entity.RoleServiceProvider))

	assert.Equal(t, http.StatusCreated, rec.Code)
}
