package service

import (
	"context"
	"time"

	"flowa-be/internal/pkg/logger"
	"flowa-be/pkg/events"
)

const publishTimeout = 3 * time.Second

// ActivityEmitter publishes domain events once the write that produced them
// has committed. A failed publish is logged and never fails the request.
type ActivityEmitter struct {
	publisher events.Publisher
	logger    logger.ILogger
}

func NewActivityEmitter(publisher events.Publisher, log logger.ILogger) *ActivityEmitter {
	return &ActivityEmitter{publisher: publisher, logger: log}
}

func (e *ActivityEmitter) Emit(ctx context.Context, event events.Event) {
	if e == nil || e.publisher == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := e.publisher.Publish(pubCtx, event); err != nil {
		e.logger.Warn("ActivityEmitter", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"user":  event.Recipient().String(),
			"error": err.Error(),
		})
	}
}
