package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	userId := uuid.New()
	in := New(ContentGenerated, userId, map[string]interface{}{"count": float64(2)})

	raw, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, ContentGenerated, out.EventType())
	assert.Equal(t, userId, out.Recipient())
	assert.Equal(t, float64(2), out.Payload()["count"])
	assert.Equal(t, "events.CONTENT_GENERATED", Subject(out))
}

func TestDecodeRejectsUntypedEvents(t *testing.T) {
	_, err := Decode([]byte(`{"data":{}}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestChannelBusDelivers(t *testing.T) {
	bus := NewChannelBus(nil)
	defer bus.Close()

	received := make(chan Event, 1)
	require.NoError(t, bus.Subscribe("events.>", "test", func(ctx context.Context, e Event) error {
		received <- e
		return nil
	}))

	userId := uuid.New()
	require.NoError(t, bus.Publish(context.Background(), New(ChatCreated, userId, nil)))

	select {
	case e := <-received:
		assert.Equal(t, ChatCreated, e.EventType())
		assert.Equal(t, userId, e.Recipient())
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}
