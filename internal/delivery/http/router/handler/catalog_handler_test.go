package handler

import (
	"net/http"
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	mockUsecase "servicehub/internal/mocks/usecase"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_CreatePost(t *testing.T) {
	t.Run("multipart post with image", func(t *testing.T) {
		env := newTestEnv(t)
		catalogUC := mockUsecase.NewMockCatalogUsecase(t)
		h := NewCatalogHandler(catalogUC, mockUsecase.NewMockRatingUsecase(t))
		p := providerPrincipal()
		env.e.POST("/service-provider/add-service-post", h.CreatePost, env.as(p))

		serviceID := uuid.New()
		catalogUC.EXPECT().
			CreatePost(mock.Anything, p, mock.MatchedBy(func(in usecase.CreatePostInput) bool {
				return in.ServiceID == serviceID && in.Message == "Deep clean" &&
					in.Price.String() == "120.5" && in.Image != nil && in.Image.FileName == "post.jpg"
			})).
			Return(&entity.ServicePost{ID: uuid.New(), ServiceID: serviceID}, nil)

		req := multipartRequest(t, http.MethodPost, "/service-provider/add-service-post",
			map[string]string{"serviceId": serviceID.String(), "message": "Deep clean", "price": "120.5"},
			formPart{field: "image", fileName: "post.jpg", data: []byte("jpg")})
		rec, _ := env.do(withSession(req, entity.RoleServiceProvider))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("price must be numeric", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewCatalogHandler(mockUsecase.NewMockCatalogUsecase(t), mockUsecase.NewMockRatingUsecase(t))
		env.e.POST("/service-provider/add-service-post", h.CreatePost, env.as(providerPrincipal()))

		req := multipartRequest(t, http.MethodPost, "/service-provider/add-service-post",
			map[string]string{"serviceId": uuid.NewString(), "message": "Deep clean", "price": "cheap"},
			formPart{field: "image", fileName: "post.jpg", data: []byte("jpg")})
		rec, resp := env.do(withSession(req, entity.RoleServiceProvider))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	})
}

func TestCatalogHandler_ListRecentPosts_PassesLimit(t *testing.T) {
	env := newTestEnv(t)
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(catalogUC, mockUsecase.NewMockRatingUsecase(t))
	env.e.GET("/consumer/load-recent-service-posts", h.ListRecentPosts)

	catalogUC.EXPECT().ListRecentPosts(mock.Anything, 5).Return([]*entity.ServicePost{}, nil)

	rec, _ := env.do(jsonRequest(http.MethodGet, "/consumer/load-recent-service-posts?limit=5", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_UpdateService_Conflict(t *testing.T) {
	env := newTestEnv(t)
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(catalogUC, mockUsecase.NewMockRatingUsecase(t))
	env.e.PUT("/admin/update-service/:id", h.UpdateService, env.as(adminPrincipal()))

	id := uuid.New()
	catalogUC.EXPECT().
		UpdateService(mock.Anything, id, usecase.ServiceInput{Name: "Plumbing"}).
		Return(nil, domainerrors.ErrServiceAlreadyExists)

	rec, _ := env.do(withSession(jsonRequest(http.MethodPut, "/admin/update-service/"+id.String(), `{"serviceName":"Plumbing"}`), entity.RoleAdmin))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCatalogHandler_AddRating(t *testing.T) {
	t.Run("submits the stars", func(t *testing.T) {
		env := newTestEnv(t)
		ratingUC := mockUsecase.NewMockRatingUsecase(t)
		h := NewCatalogHandler(mockUsecase.NewMockCatalogUsecase(t), ratingUC)
		p := consumerPrincipal()
		env.e.POST("/consumer/add-rating/:id", h.AddRating, env.as(p))

		postID := uuid.New()
		ratingUC.EXPECT().Submit(mock.Anything, p, postID, 4).Return(&entity.ServicePost{ID: postID}, nil)

		rec, _ := env.do(withSession(jsonRequest(http.MethodPost, "/consumer/add-rating/"+postID.String(), `{"ratingStars":4}`), entity.RoleConsumer))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("out of range", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewCatalogHandler(mockUsecase.NewMockCatalogUsecase(t), mockUsecase.NewMockRatingUsecase(t))
		env.e.POST("/consumer/add-rating/:id", h.AddRating, env.as(consumerPrincipal()))

		rec, _ := env.do(withSession(jsonRequest(http.MethodPost, "/consumer/add-rating/"+uuid.NewString(), `{"ratingStars":6}`), entity.RoleConsumer))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProviderHandler_AddCNICDetails(t *testing.T) {
	env := newTestEnv(t)
	providerUC := mockUsecase.NewMockProviderUsecase(t)
	h := NewProviderHandler(providerUC)
	p := providerPrincipal()
	env.e.POST("/service-provider/add-cnic-details", h.AddCNICDetails, env.as(p))

	providerUC.EXPECT().
		AddCNICDetails(mock.Anything, p, mock.MatchedBy(func(in usecase.CNICInput) bool {
			return in.Number == "12345-1234567-1" && len(in.Images) == 2
		})).
		Return(&entity.Account{ID: p.ID}, nil)

	req := multipartRequest(t, http.MethodPost, "/service-provider/add-cnic-details",
		map[string]string{"cnicNumber": "12345-1234567-1"},
		formPart{field: "cnicImages", fileName: "front.jpg", data: []byte("front")},
		formPart{field: "cnicImages", fileName: "back.jpg", data: []byte("back")})
	rec, _ := env.do(withSession(req, entity.RoleServiceProvider))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProviderHandler_SetWorkingHours(t *testing.T) {
	env := newTestEnv(t)
	providerUC := mockUsecase.NewMockProviderUsecase(t)
	h := NewProviderHandler(providerUC)
	p := providerPrincipal()
	env.e.POST("/service-provider/set-working-hours", h.SetWorkingHours, env.as(p))

	providerUC.EXPECT().
		SetWorkingHours(mock.Anything, p, []entity.WorkingHour{{Day: entity.Monday, Opens: "09:00", Closes: "17:00"}}).
		Return(&entity.Account{ID: p.ID}, nil)

	req := jsonRequest(http.MethodPost, "/service-provider/set-working-hours",
		`{"workingHours":[{"dayOfWeek":"monday","opens":"09:00","closes":"17:00"}]}`)
	rec, _ := env.do(withSession(req, entity.RoleServiceProvider))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMessagingHandler_SendMessage(t *testing.T) {
	env := newTestEnv(t)
	messagingUC := mockUsecase.NewMockMessagingUsecase(t)
	h := NewMessagingHandler(messagingUC)
	p := providerPrincipal()
	env.e.POST("/service-provider/send-message", h.SendMessage, env.as(p))

	conversationID := uuid.New()
	messagingUC.EXPECT().
		SendMessage(mock.Anything, p, conversationID, "on my way").
		Return(&entity.Message{ID: uuid.New(), ConversationID: conversationID, Body: "on my way"}, nil)

	req := jsonRequest(http.MethodPost, "/service-provider/send-message", `{"conversationId":"`+conversationID.String()+`","message":"on my way"}`)
	rec, _ := env.do(withSession(req, entity.RoleServiceProvider))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	env := newTestEnv(t)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(notificationUC)
	p := consumerPrincipal()
	env.e.GET("/consumer/read-notification/:id", h.MarkRead, env.as(p))

	id := uuid.New()
	notificationUC.EXPECT().MarkRead(mock.Anything, p, id).Return(domainerrors.ErrNotificationNotFound)

	rec, resp := env.do(withSession(jsonRequest(http.MethodGet, "/consumer/read-notification/"+id.String(), ""), entity.RoleConsumer))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, domainerrors.ErrNotificationNotFound.ErrorCode(), resp.Error.Code)
}
