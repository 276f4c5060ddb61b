// Package pubsub publishes lifecycle events to Google Pub/Sub or, in development, to a
// local HTTP endpoint that mimics Pub/Sub push delivery.
package pubsub

import (
	"context"
	"log/slog"

	"servicehub/config"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"

	"go.uber.org/fx"
)

// Provider names accepted in pubsub.provider.
const (
	ProviderNoop   = "noop"
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// noopPublisher drops events when Pub/Sub is disabled.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLifecycleEvent(ctx context.Context, event *entity.LifecycleEvent) error {
	p.logger.DebugContext(ctx, "Lifecycle event publishing disabled, skipping",
		slog.String("eventType", event.Type),
		slog.String("eventId", event.EventID.String()),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// eventAttributes are attached to every published message for subscription filters.
func eventAttributes(event *entity.LifecycleEvent) map[string]string {
	return map[string]string{
		"event_type":     event.Type,
		"entity_kind":    string(event.Entity.Kind),
		"entity_id":      event.Entity.ID.String(),
		"recipient_kind": string(event.Recipient.Kind),
	}
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderNoop {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		// The client outlives the constructor, so it gets a background context.
		google, err := NewGooglePubSubPublisher(context.Background(), cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
		publisher = google

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
