package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"flowa-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSendDeliversToEveryDevice(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	userID := uuid.New()
	phone := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	laptop := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	other := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}
	hub.clients[userID] = []*Client{phone, laptop}
	hub.clients[other.UserID] = []*Client{other}

	hub.Send(userID, "CHAT_CREATED", map[string]interface{}{"chatId": "c-1"})

	for _, c := range []*Client{phone, laptop} {
		var frame Envelope
		require.NoError(t, json.Unmarshal(<-c.Send, &frame))
		assert.Equal(t, "CHAT_CREATED", frame.Type)
		assert.Equal(t, "c-1", frame.Data["chatId"])
	}
	assert.Empty(t, other.Send)
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	userID := uuid.New()
	slow := &Client{Hub: hub, UserID: userID, Send: make(chan []byte)}
	hub.clients[userID] = []*Client{slow}

	hub.Send(userID, "CONTENT_GENERATED", nil)

	assert.Equal(t, 0, hub.Connected(userID))
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHubRunRegistersAndUnregisters(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}
	require.True(t, hub.Register(client))
	require.Eventually(t, func() bool { return hub.Connected(client.UserID) == 1 }, time.Second, 10*time.Millisecond)

	hub.Unregister(client)
	require.Eventually(t, func() bool { return hub.Connected(client.UserID) == 0 }, time.Second, 10*time.Millisecond)

	// A second removal is a no-op.
	assert.NotPanics(t, func() { hub.remove(client) })
}

func TestHubDeliverAndRemoveRunConcurrently(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	userID := uuid.New()
	clients := make([]*Client, 8)
	for i := range clients {
		clients[i] = &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	}
	hub.clients[userID] = append([]*Client(nil), clients...)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.deliver(userID, []byte(`{"type":"PING"}`))
			}
		}()
	}
	for _, c := range clients {
		wg.Add(1)
		go func(c *Client) {
			defer wg.Done()
			hub.remove(c)
		}(c)
	}

	assert.NotPanics(t, wg.Wait)
	assert.Equal(t, 0, hub.Connected(userID))
}

func TestHubUnregisterAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	client := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}
	require.True(t, hub.Register(client))
	require.Eventually(t, func() bool { return hub.Connected(client.UserID) == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	<-stopped

	done := make(chan struct{})
	go func() {
		hub.Unregister(client)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked after the hub stopped")
	}
	assert.Equal(t, 0, hub.Connected(client.UserID))
	assert.False(t, hub.Register(&Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}))
}
