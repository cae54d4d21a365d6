// FILE: internal/service/consumer_service.go
package service

import (
	"context"

	"ai-council-be/internal/pkg/logger"
	"ai-council-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// EventSource is satisfied by *events.LocalBus.
type EventSource interface {
	Subscribe(ctx context.Context) (<-chan *message.Message, error)
}

// EventCounter is satisfied by *metrics.Metrics.
type EventCounter interface {
	DomainEvent(eventType string)
}

// consumerService records every domain event in the activity log.
type consumerService struct {
	source  EventSource
	counter EventCounter
	logger  logger.ILogger
}

func NewConsumerService(source EventSource, counter EventCounter, log logger.ILogger) IConsumerService {
	return &consumerService{
		source:  source,
		counter: counter,
		logger:  log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.source.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	// Undecodable messages are acked too so they are not redelivered forever.
	defer msg.Ack()

	event, err := events.Decode(msg.Payload)
	if err != nil {
		cs.logger.Error("ActivityConsumer", "Failed to decode domain event", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err,
		})
		return
	}

	if cs.counter != nil {
		cs.counter.DomainEvent(event.Type)
	}
	details := map[string]interface{}{
		"event_type":  event.Type,
		"occurred_at": event.OccurredAt,
	}
	for k, v := range event.Data {
		details[k] = v
	}
	cs.logger.Info("ActivityConsumer", "Domain event", details)
}
