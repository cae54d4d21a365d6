package metrics

import (
	"errors"
	"time"

	"ai-council-be/pkg/council"
	"ai-council-be/pkg/upstream"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ai_council"

// Metrics holds the custom Prometheus collectors of the API.
type Metrics struct {
	GatewayConnections prometheus.Gauge
	GatewayEvents      *prometheus.CounterVec

	Turns             *prometheus.CounterVec
	AgentReplyLatency *prometheus.HistogramVec
	UpstreamErrors    *prometheus.CounterVec

	DomainEvents *prometheus.CounterVec
}

// New registers every collector on reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GatewayConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gateway_connections_active",
			Help:      "Number of open council WebSocket connections",
		}),
		GatewayEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_events_total",
			Help:      "Council gateway events by name and direction",
		}, []string{"event", "direction"}),
		Turns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "council_turns_total",
			Help:      "Council turns by final state",
		}, []string{"state"}),
		AgentReplyLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "agent_reply_duration_seconds",
			Help:      "Latency of one agent completion inside a council turn",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
		}, []string{"agent"}),
		UpstreamErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "Model provider failures by kind",
		}, []string{"kind"}),
		DomainEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_events_total",
			Help:      "Domain events consumed from the in-process bus",
		}, []string{"type"}),
	}
}

func (m *Metrics) GatewayConnect() {
	m.GatewayConnections.Inc()
}

func (m *Metrics) GatewayDisconnect() {
	m.GatewayConnections.Dec()
}

func (m *Metrics) GatewayEvent(event, direction string) {
	m.GatewayEvents.WithLabelValues(event, direction).Inc()
}

func (m *Metrics) DomainEvent(eventType string) {
	m.DomainEvents.WithLabelValues(eventType).Inc()
}

// ObserveAgentReply satisfies council.Instrumentation.
func (m *Metrics) ObserveAgentReply(agentID string, elapsed time.Duration, err error) {
	m.AgentReplyLatency.WithLabelValues(agentID).Observe(elapsed.Seconds())
	if err != nil {
		m.UpstreamError(err)
	}
}

func (m *Metrics) TurnFinished(state council.TurnState) {
	m.Turns.WithLabelValues(state.String()).Inc()
}

// UpstreamError counts err under its provider failure kind, or "other".
func (m *Metrics) UpstreamError(err error) {
	m.UpstreamErrors.WithLabelValues(upstreamKind(err)).Inc()
}

func upstreamKind(err error) string {
	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, upstream.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, upstream.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, upstream.ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, upstream.ErrBadResponse):
		return "bad_response"
	}
	return "other"
}

var _ council.Instrumentation = (*Metrics)(nil)
