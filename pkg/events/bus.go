package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const DefaultTopic = "council.domain-events"

// LocalBus is an in-process pub/sub for domain events. Events published with no subscriber are dropped.
type LocalBus struct {
	pubSub *gochannel.GoChannel
	topic  string
}

func NewLocalBus(topic string, log watermill.LoggerAdapter) *LocalBus {
	if topic == "" {
		topic = DefaultTopic
	}
	if log == nil {
		log = watermill.NopLogger{}
	}
	return &LocalBus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, log),
		topic:  topic,
	}
}

func (b *LocalBus) Publish(_ context.Context, event Event) error {
	payload, err := Encode(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.EventType(), err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", event.EventType())
	return b.pubSub.Publish(b.topic, msg)
}

func (b *LocalBus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, b.topic)
}

func (b *LocalBus) Close() error {
	return b.pubSub.Close()
}
