package metrics

import (
	"errors"
	"testing"
	"time"

	"ai-council-be/pkg/council"
	"ai-council-be/pkg/upstream"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTurnAndReplyMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.TurnFinished(council.TurnComplete)
	m.TurnFinished(council.TurnComplete)
	m.TurnFinished(council.Failed)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Turns.WithLabelValues(council.TurnComplete.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Turns.WithLabelValues(council.Failed.String())))

	m.ObserveAgentReply("agent-coder", 200*time.Millisecond, nil)
	m.ObserveAgentReply("agent-coder", time.Second, upstream.FromStatus("openai", 429, nil))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AgentReplyLatency))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamErrors.WithLabelValues("rate_limited")))
}

func TestUpstreamKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{upstream.FromStatus("openai", 401, nil), "unauthorized"},
		{upstream.FromStatus("openai", 503, nil), "unavailable"},
		{upstream.FromStatus("openai", 400, nil), "bad_response"},
		{upstream.CheckCredential("openai", ""), "missing_credential"},
		{errors.New("plain"), "other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, upstreamKind(tt.err))
	}
}

func TestGatewayGauge(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.GatewayConnect()
	m.GatewayConnect()
	m.GatewayDisconnect()
	m.GatewayEvent("send_message", "inbound")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GatewayConnections))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GatewayEvents.WithLabelValues("send_message", "inbound")))
}
