package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"flowa-be/internal/dto"
	"flowa-be/internal/entity"
	"flowa-be/internal/pkg/logger"
	"flowa-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type delivered struct {
	userID    uuid.UUID
	eventType string
	data      map[string]interface{}
}

type recordingDelivery struct {
	mu   sync.Mutex
	sent chan delivered
}

func (d *recordingDelivery) Send(userID uuid.UUID, eventType string, data map[string]interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent <- delivered{userID: userID, eventType: eventType, data: data}
}

func TestActivityServiceForwardsEvents(t *testing.T) {
	bus := events.NewChannelBus(nil)
	defer bus.Close()

	delivery := &recordingDelivery{sent: make(chan delivered, 4)}
	require.NoError(t, NewActivityService(bus, delivery, logger.NewNopLogger()).Start())

	f := newFixture(t)
	f.activity = NewActivityEmitter(bus, f.log)
	owner := f.user(t, entity.UserRoleBrandManager)
	brand := f.brand(t, owner)

	chat, err := f.chatService().Create(context.Background(), owner, &dto.CreateChatRequest{BrandId: brand.Id.String()})
	require.NoError(t, err)

	select {
	case got := <-delivery.sent:
		assert.Equal(t, owner.ID, got.userID)
		assert.Equal(t, events.ChatCreated, got.eventType)
		assert.Equal(t, chat.Id.String(), got.data["chatId"])
	case <-time.After(2 * time.Second):
		t.Fatal("activity not delivered")
	}
}

func TestActivityServiceSkipsEventsWithoutRecipient(t *testing.T) {
	delivery := &recordingDelivery{sent: make(chan delivered, 1)}
	svc := NewActivityService(nil, delivery, logger.NewNopLogger())

	require.NoError(t, svc.handleEvent(context.Background(), events.New(events.ChatCreated, uuid.Nil, nil)))
	assert.Empty(t, delivery.sent)
}

func TestActivityEmitterToleratesMissingPublisher(t *testing.T) {
	var emitter *ActivityEmitter
	assert.NotPanics(t, func() {
		emitter.Emit(context.Background(), events.New(events.ChatCreated, uuid.New(), nil))
	})
}
