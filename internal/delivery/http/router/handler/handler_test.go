package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"servicehub/config"
	"servicehub/internal/delivery/http/middleware"
	"servicehub/internal/delivery/http/response"
	"servicehub/internal/delivery/http/validator"
	"servicehub/internal/domain/entity"
	mockUsecase "servicehub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "session-token"

type testEnv struct {
	e         *echo.Echo
	accountUC *mockUsecase.MockAccountUsecase
	auth      *middleware.AuthMiddleware
}

type envelope struct {
	Success    bool                `json:"success"`
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	Error      *response.ErrorInfo `json:"error"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	accountUC := mockUsecase.NewMockAccountUsecase(t)
	cfg := &config.Config{Session: &config.SessionConfig{TTL: time.Hour, SameSite: "lax"}}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return &testEnv{e: e, accountUC: accountUC, auth: middleware.NewAuthMiddleware(accountUC, cfg)}
}

// as authenticates testToken as the given principal.
func (env *testEnv) as(p entity.Principal) echo.MiddlewareFunc {
	env.accountUC.EXPECT().
		Authenticate(mock.Anything, p.Role, testToken).
		Return(&p, nil).
		Maybe()

	return env.auth.RequireRole(p.Role)
}

func (env *testEnv) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	var body envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func withSession(req *http.Request, role entity.Role) *http.Request {
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName(role), Value: testToken})

	return req
}

type formPart struct {
	field    string
	fileName string
	data     []byte
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...formPart) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.fileName)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func consumerPrincipal() entity.Principal {
	return entity.Principal{ID: uuid.New(), Role: entity.RoleConsumer, Email: "carl@example.com", Name: "Carl"}
}

func providerPrincipal() entity.Principal {
	return entity.Principal{ID: uuid.New(), Role: entity.RoleServiceProvider, Email: "pam@example.com", Name: "Pam"}
}

func adminPrincipal() entity.Principal {
	return entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin, Email: "ada@example.com", Name: "Ada"}
}
