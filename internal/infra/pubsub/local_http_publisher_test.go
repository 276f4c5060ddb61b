package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := &entity.LifecycleEvent{
		EventID:    uuid.New(),
		Type:       "order.accepted",
		Entity:     entity.EntityRef{Kind: entity.EntityKindOrder, ID: uuid.New()},
		Actor:      entity.NewPartyRef(entity.RoleServiceProvider, uuid.New()),
		Recipient:  entity.NewPartyRef(entity.RoleConsumer, uuid.New()),
		OccurredAt: time.Now().UTC(),
	}

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishLifecycleEvent(context.Background(), event))

	assert.Equal(t, event.EventID.String(), received.Message.MessageID)
	assert.Equal(t, "order.accepted", received.Message.Attributes["event_type"])
	assert.Equal(t, "consumer", received.Message.Attributes["recipient_kind"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.LifecycleEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Entity, decoded.Entity)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishLifecycleEvent(context.Background(), &entity.LifecycleEvent{EventID: uuid.New(), Type: "dispute.filed"})
	assert.Error(t, err)
}
