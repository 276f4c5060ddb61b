package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"
)

const localSubscription = "projects/local/subscriptions/lifecycle-events"

// localHTTPPublisher implements EventPublisher by POSTing Pub/Sub push envelopes to a local endpoint.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage mirrors the body Google Pub/Sub sends to push subscribers.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// PublishLifecycleEvent wraps the event in a push envelope and POSTs it.
func (p *localHTTPPublisher) PublishLifecycleEvent(ctx context.Context, event *entity.LifecycleEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	push.Message.MessageID = event.EventID.String()
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	push.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to push lifecycle event")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned status %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Lifecycle event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("eventType", event.Type),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
