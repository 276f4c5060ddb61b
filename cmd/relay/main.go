package main

import (
	"context"
	"log/slog"
	"os"

	"servicehub/config"
	"servicehub/internal/delivery"
	"servicehub/internal/delivery/worker"
	logs "servicehub/internal/infra/log"
	"servicehub/internal/infra/mail"
	"servicehub/internal/infra/metrics"
	"servicehub/internal/infra/persistence/postgres"
	"servicehub/internal/infra/pubsub"

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
		injectDelivery(),
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
		metrics.Module,
		mail.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOutboxRepository,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			worker.NewRelay,
			fx.Annotate(
				worker.NewRelayDelivery,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start relay", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
