package service

import (
	"context"

	"ai-council-be/internal/pkg/logger"
	"ai-council-be/pkg/events"
)

// publishEvent is best-effort: a failed publish is logged and never fails the caller.
func publishEvent(ctx context.Context, pub events.Publisher, log logger.ILogger, event events.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, event); err != nil {
		log.Warn("Events", "Failed to publish domain event", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err,
		})
	}
}
