package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	got []Event
	err error
}

func (r *recordingPublisher) Publish(_ context.Context, e Event) error {
	r.got = append(r.got, e)
	return r.err
}

func TestEncodeDecode(t *testing.T) {
	e := New(TypeCouncilCreated, map[string]interface{}{"council_id": "c-1"})

	data, err := Encode(e)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, TypeCouncilCreated, back.EventType())
	assert.Equal(t, "c-1", back.Payload()["council_id"])
	assert.True(t, e.Timestamp().Equal(back.Timestamp()))

	_, err = Decode([]byte(`{"data":{}}`))
	assert.Error(t, err)
}

func TestFanoutPublishesToAllAndJoinsErrors(t *testing.T) {
	ok := &recordingPublisher{}
	bad := &recordingPublisher{err: errors.New("nats down")}

	err := Fanout{ok, nil, bad}.Publish(context.Background(), New(TypeMemoryStored, nil))

	assert.EqualError(t, err, "nats down")
	assert.Len(t, ok.got, 1)
	assert.Len(t, bad.got, 1)
	assert.NoError(t, Fanout{NopPublisher{}}.Publish(context.Background(), New(TypeUserSignup, nil)))
}

func TestLocalBusDelivers(t *testing.T) {
	bus := NewLocalBus("", nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	msgs, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, New(TypeCouncilTurnCompleted, map[string]interface{}{"replies": 4})))

	select {
	case msg := <-msgs:
		msg.Ack()
		assert.Equal(t, TypeCouncilTurnCompleted, msg.Metadata.Get("event_type"))
		e, err := Decode(msg.Payload)
		require.NoError(t, err)
		assert.Equal(t, float64(4), e.Payload()["replies"])
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}
