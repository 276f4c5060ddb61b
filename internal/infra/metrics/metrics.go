// Package metrics exposes Prometheus counters for order transitions, fanout and the outbox relay.
package metrics

import (
	"net/http"

	"servicehub/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "servicehub"

// Recorder records domain metrics. A nil *Recorder records nothing.
type Recorder struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	fanout      *prometheus.CounterVec
	dispatch    *prometheus.CounterVec
	batchSize   prometheus.Gauge
}

// NewRecorder registers the collectors, plus Go and process collectors, on a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	r := &Recorder{
		registry: registry,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Order lifecycle transitions that committed.",
		}, []string{"action"}),
		fanout: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fanout_total",
			Help:      "Notification fanouts recorded, by related entity kind.",
		}, []string{"kind"}),
		dispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_dispatch_total",
			Help:      "Outbox dispatch attempts, by topic and result.",
		}, []string{"topic", "result"}),
		batchSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "outbox_batch_size",
			Help:      "Events claimed by the last relay poll.",
		}),
	}

	registry.MustRegister(
		r.transitions,
		r.fanout,
		r.dispatch,
		r.batchSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// OrderTransition counts a committed order action.
func (r *Recorder) OrderTransition(action string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(normalizeLabel(action)).Inc()
}

// Fanout counts a notification fanout.
func (r *Recorder) Fanout(kind string) {
	if r == nil {
		return
	}
	r.fanout.WithLabelValues(normalizeLabel(kind)).Inc()
}

// Dispatch counts one relay attempt. result is "ok", "retry" or "dead".
func (r *Recorder) Dispatch(topic, result string) {
	if r == nil {
		return
	}
	r.dispatch.WithLabelValues(normalizeLabel(topic), normalizeLabel(result)).Inc()
}

// BatchSize records how many events the relay claimed.
func (r *Recorder) BatchSize(n int) {
	if r == nil {
		return
	}
	r.batchSize.Set(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}

	return v
}

// Module provides the metrics recorder.
var Module = fx.Module("metrics",
	fx.Provide(
		NewRecorder,
		func(r *Recorder) service.Metrics { return r },
	),
)
