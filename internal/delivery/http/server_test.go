package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicehub/config"
	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/delivery/http/middleware"
	"servicehub/internal/delivery/http/response"
	"servicehub/internal/delivery/http/router"
	"servicehub/internal/delivery/http/router/handler"
	"servicehub/internal/domain/entity"
	"servicehub/internal/infra/metrics"
	mockUsecase "servicehub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e         *echo.Echo
	accountUC *mockUsecase.MockAccountUsecase
	orderUC   *mockUsecase.MockOrderUsecase
	recorder  *metrics.Recorder
}

func createTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Session: &config.SessionConfig{SameSite: "lax"},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.HTTP.CORSAllowOrigins = []string{"https://app.example.com"}

	accountUC := mockUsecase.NewMockAccountUsecase(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	auth := middleware.NewAuthMiddleware(accountUC, cfg)
	recorder := metrics.NewRecorder()

	e := NewEcho(ServerParams{
		Cfg:      cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Recorder: recorder,
		RouterParams: router.RouterParams{
			AuthMiddleware:      auth,
			AccountHandler:      handler.NewAccountHandler(accountUC, auth),
			ProviderHandler:     handler.NewProviderHandler(mockUsecase.NewMockProviderUsecase(t)),
			CatalogHandler:      handler.NewCatalogHandler(mockUsecase.NewMockCatalogUsecase(t), mockUsecase.NewMockRatingUsecase(t)),
			OrderHandler:        handler.NewOrderHandler(orderUC),
			ClaimHandler:        handler.NewClaimHandler(mockUsecase.NewMockDisputeUsecase(t), mockUsecase.NewMockRefundUsecase(t)),
			NotificationHandler: handler.NewNotificationHandler(mockUsecase.NewMockNotificationUsecase(t)),
			MessagingHandler:    handler.NewMessagingHandler(mockUsecase.NewMockMessagingUsecase(t)),
		},
	})

	return &testServer{e: e, accountUC: accountUC, orderUC: orderUC, recorder: recorder}
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestServer_Health(t *testing.T) {
	s := createTestServer(t)

	rec := s.serve(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.True(t, decode(t, rec).Success)
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	s := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := s.serve(req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", decode(t, rec).RequestID)
}

func TestServer_UnknownRoute(t *testing.T) {
	s := createTestServer(t)

	rec := s.serve(httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestServer_Metrics(t *testing.T) {
	s := createTestServer(t)
	s.recorder.OrderTransition("accept")

	rec := s.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `servicehub_order_transitions_total{action="accept"} 1`)
}

func TestServer_CORSAllowsCredentials(t *testing.T) {
	s := createTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/consumer/sign-in", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := s.serve(req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestServer_RoleScopedCookies(t *testing.T) {
	t.Run("a consumer cookie does not open provider routes", func(t *testing.T) {
		s := createTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/service-provider/load-orders", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName(entity.RoleConsumer), Value: "tok"})
		rec := s.serve(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("provider lists accepted orders", func(t *testing.T) {
		s := createTestServer(t)
		p := entity.Principal{ID: uuid.New(), Role: entity.RoleServiceProvider}

		s.accountUC.EXPECT().Authenticate(mock.Anything, entity.RoleServiceProvider, "tok").Return(&p, nil)
		s.orderUC.EXPECT().
			ListOrders(mock.Anything, p, entity.OrderStatusAccepted).
			Return([]*entity.ServiceOrder{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/service-provider/load-accepted-orders", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName(entity.RoleServiceProvider), Value: "tok"})
		rec := s.serve(req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
