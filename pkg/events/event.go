package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	ChatCreated       = "CHAT_CREATED"
	ChatMessageSent   = "CHAT_MESSAGE_SENT"
	ContentGenerated  = "CONTENT_GENERATED"
	ContentOptimized  = "CONTENT_OPTIMIZED"
	SocialPostCreated = "SOCIAL_POST_CREATED"
	UserRegistered    = "USER_REGISTERED"
)

// SubjectPrefix namespaces every event subject on the bus.
const SubjectPrefix = "events."

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_CREATED").
	EventType() string

	// Recipient is the user the event concerns.
	Recipient() uuid.UUID

	Payload() map[string]interface{}

	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string                 `json:"type"`
	UserId     uuid.UUID              `json:"user_id"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func New(eventType string, userId uuid.UUID, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, UserId: userId, Data: data, OccurredAt: time.Now()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Recipient() uuid.UUID {
	return e.UserId
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Subject is the bus subject an event is published on.
func Subject(e Event) string {
	return SubjectPrefix + e.EventType()
}

// Encode serializes an event into its wire envelope.
func Encode(e Event) ([]byte, error) {
	data, err := json.Marshal(BaseEvent{
		Type:       e.EventType(),
		UserId:     e.Recipient(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event %s: %w", e.EventType(), err)
	}
	return data, nil
}

func Decode(raw []byte) (BaseEvent, error) {
	var e BaseEvent
	if err := json.Unmarshal(raw, &e); err != nil {
		return BaseEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if e.Type == "" {
		return BaseEvent{}, fmt.Errorf("event without type")
	}
	return e, nil
}

// Handler processes one delivered event. A returned error requests redelivery.
type Handler func(ctx context.Context, event Event) error

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type Subscriber interface {
	Subscribe(subject, durableName string, handler Handler) error
}
