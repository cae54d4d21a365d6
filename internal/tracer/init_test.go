package tracer

import (
	"context"
	"testing"

	"ai-council-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestInitTracerDisabledIsNoop(t *testing.T) {
	shutdown := InitTracer(config.OtelConfig{Enabled: false, Endpoint: "localhost:4318"})
	assert.NoError(t, shutdown(context.Background()))
}
