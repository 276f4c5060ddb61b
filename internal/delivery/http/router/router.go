// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"servicehub/internal/delivery/http/middleware"
	"servicehub/internal/delivery/http/router/handler"
	"servicehub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthMiddleware      *middleware.AuthMiddleware
	AccountHandler      *handler.AccountHandler
	ProviderHandler     *handler.ProviderHandler
	CatalogHandler      *handler.CatalogHandler
	OrderHandler        *handler.OrderHandler
	ClaimHandler        *handler.ClaimHandler
	NotificationHandler *handler.NotificationHandler
	MessagingHandler    *handler.MessagingHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	auth          *middleware.AuthMiddleware
	accounts      *handler.AccountHandler
	providers     *handler.ProviderHandler
	catalog       *handler.CatalogHandler
	orders        *handler.OrderHandler
	claims        *handler.ClaimHandler
	notifications *handler.NotificationHandler
	messaging     *handler.MessagingHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:          params.AuthMiddleware,
		accounts:      params.AccountHandler,
		providers:     params.ProviderHandler,
		catalog:       params.CatalogHandler,
		orders:        params.OrderHandler,
		claims:        params.ClaimHandler,
		notifications: params.NotificationHandler,
		messaging:     params.MessagingHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	r.registerConsumerRoutes(e.Group("/consumer"))
	r.registerProviderRoutes(e.Group("/service-provider"))
	r.registerAdminRoutes(e.Group("/admin"))
}

// registerAccountRoutes adds the public sign up, sign in and password reset routes of a role.
func (r *router) registerAccountRoutes(g *echo.Group, role entity.Role, resetMethod string) {
	g.POST("/sign-up", r.accounts.SignUp(role))
	g.POST("/sign-in", r.accounts.SignIn(role))
	g.GET("/sign-out", r.accounts.SignOut(role))
	g.POST("/send-reset-password-email", r.accounts.SendPasswordReset(role))
	g.Add(resetMethod, "/reset-password/:token", r.accounts.ResetPassword(role))
}

func (r *router) registerConsumerRoutes(g *echo.Group) {
	r.registerAccountRoutes(g, entity.RoleConsumer, echo.PUT)

	g.GET("/load-recent-service-posts", r.catalog.ListRecentPosts)
	g.GET("/load-popular-service-posts", r.catalog.ListPopularPosts)
	g.GET("/load-service-post/:id", r.catalog.GetPost)

	auth := g.Group("", r.auth.RequireRole(entity.RoleConsumer))
	auth.GET("/load-current-consumer", r.accounts.LoadCurrent)
	auth.POST("/avatar-phone-upload", r.accounts.UpdateAvatarAndPhone)
	auth.POST("/add-address", r.accounts.UpdateAddress)
	auth.POST("/change-consumer-address", r.accounts.UpdateAddress)

	auth.POST("/order-service", r.orders.PlaceOrder)
	auth.DELETE("/reject-order/:id", r.orders.Reject)
	auth.GET("/load-orders", r.orders.ListOrders())

	auth.GET("/load-new-notifications", r.notifications.ListUnread)
	auth.GET("/read-notification/:id", r.notifications.MarkRead)

	auth.POST("/file-dispute/:id", r.claims.FileDispute)
	auth.GET("/load-disputes", r.claims.ListConsumerDisputes)
	auth.DELETE("/delete-dispute/:id", r.claims.DeleteDispute)
	auth.POST("/submit-refund-request/:id", r.claims.SubmitRefund)
	auth.GET("/load-refunds", r.claims.ListConsumerRefunds)

	auth.POST("/add-rating/:id", r.catalog.AddRating)

	auth.POST("/create-conversation", r.messaging.StartConversation)
	auth.GET("/load-consumer-conversations", r.messaging.ListConversations)
	auth.POST("/send-message", r.messaging.SendMessage)
	auth.GET("/load-messages/:conversationId", r.messaging.ListMessages)
}

func (r *router) registerProviderRoutes(g *echo.Group) {
	r.registerAccountRoutes(g, entity.RoleServiceProvider, echo.POST)

	auth := g.Group("", r.auth.RequireRole(entity.RoleServiceProvider))
	auth.GET("/load-current-service-provider", r.accounts.LoadCurrent)
	auth.POST("/avatar-phone-upload", r.accounts.UpdateAvatarAndPhone)
	auth.POST("/add-address", r.accounts.UpdateAddress)

	auth.POST("/set-working-hours", r.providers.SetWorkingHours)
	auth.POST("/add-cnic-details", r.providers.AddCNICDetails)
	auth.POST("/add-listed-services", r.providers.AddListedServices)

	auth.POST("/add-service-post", r.catalog.CreatePost)
	auth.DELETE("/delete-service-post/:id", r.catalog.DeletePost)
	auth.GET("/load-all-service-provider-posts", r.catalog.ListProviderPosts)

	auth.POST("/accept-order/:id", r.orders.Accept)
	auth.DELETE("/reject-order/:id", r.orders.Reject)
	auth.DELETE("/cancel-order/:id", r.orders.Cancel)
	auth.POST("/complete-order/:id", r.orders.Complete)
	auth.GET("/load-orders", r.orders.ListOrders())
	auth.GET("/load-pending-orders", r.orders.ListOrders(entity.OrderStatusPending))
	auth.GET("/load-accepted-orders", r.orders.ListOrders(entity.OrderStatusAccepted))
	auth.GET("/load-rejected-orders", r.orders.ListOrders(entity.OrderStatusRejected))
	auth.GET("/load-cancelled-orders", r.orders.ListOrders(entity.OrderStatusCancelled))
	auth.GET("/load-completed-orders", r.orders.ListOrders(entity.OrderStatusCompleted))

	auth.GET("/load-new-notifications", r.notifications.ListUnread)
	auth.GET("/read-notification/:id", r.notifications.MarkRead)

	auth.GET("/load-conversations", r.messaging.ListConversations)
	auth.POST("/send-message", r.messaging.SendMessage)
	auth.GET("/load-messages/:conversationId", r.messaging.ListMessages)
}

func (r *router) registerAdminRoutes(g *echo.Group) {
	r.registerAccountRoutes(g, entity.RoleAdmin, echo.POST)

	auth := g.Group("", r.auth.RequireRole(entity.RoleAdmin))
	auth.GET("/load-current-admin", r.accounts.LoadCurrent)

	auth.POST("/add-service", r.catalog.CreateService)
	auth.PUT("/update-service/:id", r.catalog.UpdateService)
	auth.DELETE("/delete-service/:id", r.catalog.DeleteService)
	auth.GET("/load-all-services", r.catalog.ListServices)

	auth.POST("/resolve-dispute/:id", r.claims.ResolveDispute)
	auth.GET("/reject-dispute/:id", r.claims.RejectDispute)
	auth.GET("/load-disputes", r.claims.ListAllDisputes)
	auth.GET("/approve-refund-request/:id", r.claims.ApproveRefund)
	auth.GET("/reject-refund-request/:id", r.claims.RejectRefund)
	auth.GET("/load-refunds", r.claims.ListAllRefunds)

	auth.POST("/verify-service-provider/:id", r.providers.VerifyProvider)

	auth.GET("/load-new-notifications", r.notifications.ListUnread)
	auth.GET("/read-notification/:id", r.notifications.MarkRead)
}
