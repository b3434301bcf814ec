package service

import (
	"context"
	"fmt"

	"flowa-be/internal/pkg/logger"
	"flowa-be/pkg/events"

	"github.com/google/uuid"
)

const (
	activitySubject = events.SubjectPrefix + ">"
	activityDurable = "activity-worker"
)

// ActivityDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type ActivityDelivery interface {
	Send(userID uuid.UUID, eventType string, data map[string]interface{})
}

// ActivityService forwards domain events to the websocket connections of the
// user each event concerns.
type ActivityService struct {
	subscriber events.Subscriber
	delivery   ActivityDelivery
	logger     logger.ILogger
}

func NewActivityService(sub events.Subscriber, delivery ActivityDelivery, log logger.ILogger) *ActivityService {
	return &ActivityService{
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *ActivityService) Start() error {
	if err := s.subscriber.Subscribe(activitySubject, activityDurable, s.handleEvent); err != nil {
		s.logger.Error("ActivityService", "Failed to start activity subscriber", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.logger.Info("ActivityService", "Activity service started, listening to "+activitySubject, nil)
	return nil
}

func (s *ActivityService) handleEvent(ctx context.Context, event events.Event) error {
	recipient := event.Recipient()
	if recipient == uuid.Nil {
		s.logger.Warn("ActivityService", fmt.Sprintf("Event %s has no recipient", event.EventType()), nil)
		return nil
	}

	s.logger.Debug("ActivityService", fmt.Sprintf("Delivering event: %s", event.EventType()), map[string]interface{}{
		"user_id": recipient.String(),
	})
	if s.delivery != nil {
		s.delivery.Send(recipient, event.EventType(), event.Payload())
	}
	return nil
}
