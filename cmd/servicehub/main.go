package main

import (
	"context"
	"log/slog"
	"os"

	"servicehub/config"
	"servicehub/internal/delivery"
	"servicehub/internal/delivery/http"
	"servicehub/internal/delivery/http/middleware"
	"servicehub/internal/delivery/http/router/handler"
	"servicehub/internal/delivery/worker"
	"servicehub/internal/infra/auth"
	"servicehub/internal/infra/cache"
	logs "servicehub/internal/infra/log"
	"servicehub/internal/infra/mail"
	"servicehub/internal/infra/media"
	"servicehub/internal/infra/metrics"
	"servicehub/internal/infra/persistence/postgres"
	"servicehub/internal/infra/pubsub"
	"servicehub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		cache.Module,
		metrics.Module,
		mail.Module,
		media.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewProviderProfileRepository,
			postgres.NewServiceRepository,
			postgres.NewServicePostRepository,
			postgres.NewOrderRepository,
			postgres.NewDisputeRepository,
			postgres.NewRefundRepository,
			postgres.NewNotificationRepository,
			postgres.NewOutboxRepository,
			postgres.NewConversationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProviderService,
			impl.NewCatalogService,
			impl.NewRatingService,
			impl.NewOrderService,
			impl.NewDisputeService,
			impl.NewRefundService,
			impl.NewNotificationService,
			impl.NewMessagingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewProviderHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewClaimHandler,
			handler.NewNotificationHandler,
			handler.NewMessagingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			worker.NewRelay,
		),
		// The outbox relay runs in-process unless a standalone relay is deployed.
		fx.Provide(
			fx.Annotate(
				newEmbeddedRelay,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

func newEmbeddedRelay(cfg *config.Config, relay *worker.Relay) []delivery.Delivery {
	if cfg.Outbox == nil || !cfg.Outbox.Enabled {
		return nil
	}

	return []delivery.Delivery{worker.NewRelayDelivery(relay)}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
