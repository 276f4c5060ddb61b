package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"servicehub/config"
	"servicehub/internal/delivery"
	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// claimLease keeps a claimed event away from other relays while it is being delivered.
const claimLease = time.Minute

// Dispatch results reported to metrics.
const (
	resultOK    = "ok"
	resultRetry = "retry"
	resultDead  = "dead"
)

// Relay drains the outbox: it claims due events, hands each to its topic handler and
// records the outcome. Delivery is at-least-once.
type Relay struct {
	outbox    repository.OutboxRepository
	mailer    service.Mailer
	renderer  service.EmailRenderer
	publisher service.EventPublisher
	metrics   service.Metrics
	cfg       *config.OutboxConfig
	logger    *slog.Logger

	now    func() time.Time
	jitter func(limit time.Duration) time.Duration

	stopped context.Context
	halt    context.CancelFunc
	running atomic.Bool
	done    chan struct{}
}

// RelayParams holds dependencies for the Relay, injected by Fx.
type RelayParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Outbox    repository.OutboxRepository
	Mailer    service.Mailer
	Renderer  service.EmailRenderer
	Publisher service.EventPublisher
	Metrics   service.Metrics `optional:"true"`
}

// NewRelay creates the outbox relay. The poll loop stops with the fx lifecycle.
func NewRelay(params RelayParams) *Relay {
	r := &Relay{
		outbox:    params.Outbox,
		mailer:    params.Mailer,
		renderer:  params.Renderer,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		cfg:       params.Config.Outbox,
		logger:    params.Logger,
		now:       func() time.Time { return time.Now().UTC() },
		jitter:    randomJitter,
		done:      make(chan struct{}),
	}
	r.stopped, r.halt = context.WithCancel(context.Background())

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{OnStop: r.stop})
	}

	return r
}

// NewRelayDelivery exposes the relay as a delivery for the entrypoint.
func NewRelayDelivery(r *Relay) delivery.Delivery {
	return r
}

// Serve polls every PollInterval until the lifecycle stops the relay.
func (r *Relay) Serve(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return errors.New("outbox relay already running")
	}
	defer close(r.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer context.AfterFunc(r.stopped, cancel)()

	r.logger.Info("Starting outbox relay",
		slog.Int("batchSize", r.cfg.BatchSize),
		slog.Duration("pollInterval", r.cfg.PollInterval),
	)

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("Outbox poll failed", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			r.logger.Info("Outbox relay stopped")

			return nil
		case <-ticker.C:
		}
	}
}

func (r *Relay) stop(ctx context.Context) error {
	r.halt()
	if !r.running.Load() {
		return nil
	}

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// RunOnce claims one batch and dispatches it. It returns the number of claimed events.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	events, err := r.outbox.ClaimDue(ctx, r.now(), r.cfg.BatchSize, claimLease)
	if err != nil {
		return 0, errors.Wrap(err, "failed to claim outbox events")
	}
	if r.metrics != nil {
		r.metrics.BatchSize(len(events))
	}

	for _, event := range events {
		r.process(ctx, event)
	}

	return len(events), nil
}

func (r *Relay) process(ctx context.Context, event *entity.OutboxEvent) {
	logger := r.logger.With(
		slog.String("eventId", event.ID.String()),
		slog.String("topic", string(event.Topic)),
		slog.Int("attempts", event.Attempts),
	)
	ctx = deliverycontext.WithLogger(ctx, logger)

	dispatchErr := r.dispatch(ctx, event)
	if dispatchErr == nil {
		if err := r.outbox.MarkDispatched(ctx, event.ID, r.now()); err != nil {
			logger.Error("Failed to mark outbox event dispatched", slog.Any("error", err))
		}
		r.record(event.Topic, resultOK)

		return
	}

	dead := event.Attempts+1 >= r.cfg.MaxAttempts || errors.Is(dispatchErr, errPermanent)
	nextAttempt := r.now().Add(r.backoff(event.Attempts))

	if err := r.outbox.MarkFailed(ctx, event.ID, dispatchErr.Error(), nextAttempt, dead); err != nil {
		logger.Error("Failed to mark outbox event failed", slog.Any("error", err))
	}

	if dead {
		logger.Error("Outbox event dead-lettered", slog.Any("error", dispatchErr))
		r.record(event.Topic, resultDead)

		return
	}

	logger.Warn("Outbox dispatch failed, will retry",
		slog.Any("error", dispatchErr),
		slog.Time("nextAttempt", nextAttempt),
	)
	r.record(event.Topic, resultRetry)
}

// errPermanent marks payloads that can never succeed, so retrying them is pointless.
var errPermanent = errors.New("permanent outbox failure")

func (r *Relay) dispatch(ctx context.Context, event *entity.OutboxEvent) error {
	switch event.Topic {
	case entity.OutboxTopicEmail:
		var job entity.EmailJob
		if err := json.Unmarshal(event.Payload, &job); err != nil {
			return errors.Join(errPermanent, errors.Wrap(err, "malformed email job"))
		}

		message, err := r.renderer.Render(job)
		if err != nil {
			return errors.Join(errPermanent, errors.Wrap(err, "failed to render email"))
		}

		return errors.Wrap(r.mailer.Send(ctx, message), "failed to send email")

	case entity.OutboxTopicLifecycle:
		var lifecycleEvent entity.LifecycleEvent
		if err := json.Unmarshal(event.Payload, &lifecycleEvent); err != nil {
			return errors.Join(errPermanent, errors.Wrap(err, "malformed lifecycle event"))
		}
		if lifecycleEvent.EventID == uuid.Nil {
			lifecycleEvent.EventID = event.ID
		}

		return errors.Wrap(r.publisher.PublishLifecycleEvent(ctx, &lifecycleEvent), "failed to publish lifecycle event")

	default:
		return errors.Wrapf(errPermanent, "unknown topic %s", event.Topic)
	}
}

// backoff doubles BaseBackoff per previous attempt, adds jitter and caps at MaxBackoff.
func (r *Relay) backoff(attempts int) time.Duration {
	delay := r.cfg.BaseBackoff
	for i := 0; i < attempts && delay < r.cfg.MaxBackoff; i++ {
		delay *= 2
	}
	delay = min(delay, r.cfg.MaxBackoff)

	return min(delay+r.jitter(delay/2), r.cfg.MaxBackoff)
}

func (r *Relay) record(topic entity.OutboxTopic, result string) {
	if r.metrics != nil {
		r.metrics.Dispatch(string(topic), result)
	}
}

func randomJitter(limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}

	return rand.N(limit)
}
