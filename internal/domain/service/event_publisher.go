package service

import (
	"context"

	"servicehub/internal/domain/entity"
)

// EventPublisher defines the interface for publishing lifecycle events to a message queue
type EventPublisher interface {
	// PublishLifecycleEvent publishes one event for downstream subscribers
	PublishLifecycleEvent(ctx context.Context, event *entity.LifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
