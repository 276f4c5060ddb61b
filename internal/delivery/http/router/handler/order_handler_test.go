package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	mockUsecase "servicehub/internal/mocks/usecase"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_PlaceOrder(t *testing.T) {
	env := newTestEnv(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(orderUC)
	p := consumerPrincipal()
	env.e.POST("/consumer/order-service", h.PlaceOrder, env.as(p))

	providerID, postID := uuid.New(), uuid.New()
	orderUC.EXPECT().
		PlaceOrder(mock.Anything, p, usecase.PlaceOrderInput{ProviderID: providerID, ServicePostID: postID}).
		Return(&entity.ServiceOrder{ID: uuid.New(), Status: entity.OrderStatusPending}, nil)

	body := `{"serviceProvider":"` + providerID.String() + `","servicePost":"` + postID.String() + `"}`
	rec, resp := env.do(withSession(jsonRequest(http.MethodPost, "/consumer/order-service", body), entity.RoleConsumer))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestOrderHandler_Accept(t *testing.T) {
	t.Run("passes the delivery schedule", func(t *testing.T) {
		env := newTestEnv(t)
		orderUC := mockUsecase.NewMockOrderUsecase(t)
		h := NewOrderHandler(orderUC)
		p := providerPrincipal()
		env.e.POST("/service-provider/accept-order/:id", h.Accept, env.as(p))

		orderID := uuid.New()
		schedule := time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC)
		orderUC.EXPECT().
			Accept(mock.Anything, p, orderID, mock.MatchedBy(func(s *time.Time) bool { return s != nil && s.Equal(schedule) })).
			Return(&entity.ServiceOrder{ID: orderID, Status: entity.OrderStatusAccepted}, nil)

		req := jsonRequest(http.MethodPost, "/service-provider/accept-order/"+orderID.String(), `{"orderDeliverySchedule":"2026-11-02T09:00:00Z"}`)
		rec, resp := env.do(withSession(req, entity.RoleServiceProvider))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Order accepted successfully", resp.Message)
	})

	t.Run("date-only schedule is midnight UTC", func(t *testing.T) {
		env := newTestEnv(t)
		orderUC := mockUsecase.NewMockOrderUsecase(t)
		h := NewOrderHandler(orderUC)
		p := providerPrincipal()
		env.e.POST("/service-provider/accept-order/:id", h.Accept, env.as(p))

		orderID := uuid.New()
		schedule := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		orderUC.EXPECT().
			Accept(mock.Anything, p, orderID, mock.MatchedBy(func(s *time.Time) bool { return s != nil && s.Equal(schedule) })).
			Return(&entity.ServiceOrder{ID: orderID, Status: entity.OrderStatusAccepted}, nil)

		req := jsonRequest(http.MethodPost, "/service-provider/accept-order/"+orderID.String(), `{"orderDeliverySchedule":"2024-06-01"}`)
		rec, _ := env.do(withSession(req, entity.RoleServiceProvider))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unparseable schedule", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewOrderHandler(mockUsecase.NewMockOrderUsecase(t))
		env.e.POST("/service-provider/accept-order/:id", h.Accept, env.as(providerPrincipal()))

		req := jsonRequest(http.MethodPost, "/service-provider/accept-order/"+uuid.NewString(), `{"orderDeliverySchedule":"next tuesday"}`)
		rec, resp := env.do(withSession(req, entity.RoleServiceProvider))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
	})

	t.Run("state conflict is 409", func(t *testing.T) {
		env := newTestEnv(t)
		orderUC := mockUsecase.NewMockOrderUsecase(t)
		h := NewOrderHandler(orderUC)
		env.e.POST("/service-provider/accept-order/:id", h.Accept, env.as(providerPrincipal()))

		orderUC.EXPECT().Accept(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOrderStateConflict)

		req := jsonRequest(http.MethodPost, "/service-provider/accept-order/"+uuid.NewString(), `{"orderDeliverySchedule":"2026-11-02T09:00:00Z"}`)
		rec, resp := env.do(withSession(req, entity.RoleServiceProvider))

		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "ORDER_STATE_CONFLICT", resp.Error.Code)
	})
}

func TestDeliverySchedule_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "rfc3339", input: `"2024-06-01T10:30:00+02:00"`, want: time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)},
		{name: "date only", input: `"2024-06-01"`, want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "minutes without zone", input: `"2024-06-01T15:04"`, want: time.Date(2024, 6, 1, 15, 4, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s deliverySchedule
			require.NoError(t, s.UnmarshalJSON([]byte(tt.input)))
			assert.True(t, tt.want.Equal(s.Time), "got %s", s.Time)
		})
	}

	t.Run("null leaves the schedule unset", func(t *testing.T) {
		var req acceptOrderRequest
		require.NoError(t, json.Unmarshal([]byte(`{"orderDeliverySchedule":null}`), &req))
		assert.Nil(t, req.DeliverySchedule.value())
	})
}

func TestOrderHandler_Reject_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	h := NewOrderHandler(mockUsecase.NewMockOrderUsecase(t))
	env.e.DELETE("/consumer/reject-order/:id", h.Reject, env.as(consumerPrincipal()))

	rec, resp := env.do(withSession(jsonRequest(http.MethodDelete, "/consumer/reject-order/not-a-uuid", ""), entity.RoleConsumer))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestOrderHandler_ListOrders_FiltersByStatus(t *testing.T) {
	env := newTestEnv(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(orderUC)
	p := providerPrincipal()
	env.e.GET("/service-provider/load-pending-orders", h.ListOrders(entity.OrderStatusPending), env.as(p))

	orderUC.EXPECT().
		ListOrders(mock.Anything, p, entity.OrderStatusPending).
		Return([]*entity.ServiceOrder{{ID: uuid.New(), Status: entity.OrderStatusPending}}, nil)

	rec, _ := env.do(withSession(jsonRequest(http.MethodGet, "/service-provider/load-pending-orders", ""), entity.RoleServiceProvider))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClaimHandler_FileDispute(t *testing.T) {
	t.Run("files against the provider in the path", func(t *testing.T) {
		env := newTestEnv(t)
		disputeUC := mockUsecase.NewMockDisputeUsecase(t)
		h := NewClaimHandler(disputeUC, mockUsecase.NewMockRefundUsecase(t))
		p := consumerPrincipal()
		env.e.POST("/consumer/file-dispute/:id", h.FileDispute, env.as(p))

		providerID := uuid.New()
		disputeUC.EXPECT().
			File(mock.Anything, p, usecase.FileDisputeInput{ProviderID: providerID, Title: "Late", Details: "Never showed up"}).
			Return(&entity.Dispute{ID: uuid.New(), Status: entity.DisputeStatusPending}, nil)

		req := jsonRequest(http.MethodPost, "/consumer/file-dispute/"+providerID.String(), `{"disputeTitle":"Late","disputeDetails":"Never showed up"}`)
		rec, _ := env.do(withSession(req, entity.RoleConsumer))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("title too short", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewClaimHandler(mockUsecase.NewMockDisputeUsecase(t), mockUsecase.NewMockRefundUsecase(t))
		env.e.POST("/consumer/file-dispute/:id", h.FileDispute, env.as(consumerPrincipal()))

		req := jsonRequest(http.MethodPost, "/consumer/file-dispute/"+uuid.NewString(), `{"disputeTitle":"no","disputeDetails":"Never showed up"}`)
		rec, resp := env.do(withSession(req, entity.RoleConsumer))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Details, "disputeTitle")
	})
}

func TestClaimHandler_ListAllDisputes(t *testing.T) {
	t.Run("status filter", func(t *testing.T) {
		env := newTestEnv(t)
		disputeUC := mockUsecase.NewMockDisputeUsecase(t)
		h := NewClaimHandler(disputeUC, mockUsecase.NewMockRefundUsecase(t))
		env.e.GET("/admin/load-disputes", h.ListAllDisputes, env.as(adminPrincipal()))

		disputeUC.EXPECT().
			ListAll(mock.Anything, mock.MatchedBy(func(s *entity.DisputeStatus) bool { return s != nil && *s == entity.DisputeStatusPending })).
			Return([]*entity.Dispute{}, nil)

		rec, _ := env.do(withSession(jsonRequest(http.MethodGet, "/admin/load-disputes?status=pending", ""), entity.RoleAdmin))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewClaimHandler(mockUsecase.NewMockDisputeUsecase(t), mockUsecase.NewMockRefundUsecase(t))
		env.e.GET("/admin/load-disputes", h.ListAllDisputes, env.as(adminPrincipal()))

		rec, _ := env.do(withSession(jsonRequest(http.MethodGet, "/admin/load-disputes?status=archived", ""), entity.RoleAdmin))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestClaimHandler_SubmitRefund(t *testing.T) {
	env := newTestEnv(t)
	refundUC := mockUsecase.NewMockRefundUsecase(t)
	h := NewClaimHandler(mockUsecase.NewMockDisputeUsecase(t), refundUC)
	p := consumerPrincipal()
	env.e.POST("/consumer/submit-refund-request/:id", h.SubmitRefund, env.as(p))

	refundUC.EXPECT().
		Submit(mock.Anything, p, mock.MatchedBy(func(in usecase.SubmitRefundInput) bool {
			return in.AmountType == entity.RefundAmountPercentage && in.Amount.String() == "50"
		})).
		Return(&entity.RefundRequest{ID: uuid.New(), Status: entity.RefundStatusPending}, nil)

	req := jsonRequest(http.MethodPost, "/consumer/submit-refund-request/"+uuid.NewString(),
		`{"refundAmount":"50","refundAmountType":"percentage","refundDetails":"Half the job was done"}`)
	rec, _ := env.do(withSession(req, entity.RoleConsumer))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestClaimHandler_SubmitRefund_AmountTypeOptional(t *testing.T) {
	env := newTestEnv(t)
	refundUC := mockUsecase.NewMockRefundUsecase(t)
	h := NewClaimHandler(mockUsecase.NewMockDisputeUsecase(t), refundUC)
	p := consumerPrincipal()
	env.e.POST("/consumer/submit-refund-request/:id", h.SubmitRefund, env.as(p))

	providerID := uuid.New()
	refundUC.EXPECT().
		Submit(mock.Anything, p, mock.MatchedBy(func(in usecase.SubmitRefundInput) bool {
			return in.ProviderID == providerID && in.AmountType == "" && in.Amount.String() == "50"
		})).
		Return(&entity.RefundRequest{ID: uuid.New(), AmountType: entity.RefundAmountFixed, Status: entity.RefundStatusPending}, nil)

	req := jsonRequest(http.MethodPost, "/consumer/submit-refund-request/"+providerID.String(),
		`{"refundAmount":50,"refundDetails":"never delivered"}`)
	rec, _ := env.do(withSession(req, entity.RoleConsumer))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestClaimHandler_FileDispute_LinksOrder(t *testing.T) {
	env := newTestEnv(t)
	disputeUC := mockUsecase.NewMockDisputeUsecase(t)
	h := NewClaimHandler(disputeUC, mockUsecase.NewMockRefundUsecase(t))
	p := consumerPrincipal()
	env.e.POST("/consumer/file-dispute/:id", h.FileDispute, env.as(p))

	providerID, orderID := uuid.New(), uuid.New()
	disputeUC.EXPECT().
		File(mock.Anything, p, usecase.FileDisputeInput{ProviderID: providerID, Title: "Late", Details: "Never showed up", OrderID: &orderID}).
		Return(&entity.Dispute{ID: uuid.New(), Status: entity.DisputeStatusPending}, nil)

	req := jsonRequest(http.MethodPost, "/consumer/file-dispute/"+providerID.String(),
		`{"disputeTitle":"Late","disputeDetails":"Never showed up","order":"`+orderID.String()+`"}`)
	rec, _ := env.do(withSession(req, entity.RoleConsumer))

	assert.Equal(t, http.StatusCreated, rec.Code)
}
