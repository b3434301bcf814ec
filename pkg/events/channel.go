package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const channelTopic = "events"

// ChannelBus is the in-process event bus used when NATS is disabled or unreachable.
type ChannelBus struct {
	pubSub *gochannel.GoChannel
	ctx    context.Context
	cancel context.CancelFunc
}

func NewChannelBus(logger watermill.LoggerAdapter) *ChannelBus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ChannelBus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, logger),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (b *ChannelBus) Publish(ctx context.Context, event Event) error {
	data, err := Encode(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	return b.pubSub.Publish(channelTopic, msg)
}

// Subscribe delivers every event to handler. The subject filter is ignored
// because the channel bus carries only domain events.
func (b *ChannelBus) Subscribe(subject, durableName string, handler Handler) error {
	messages, err := b.pubSub.Subscribe(b.ctx, channelTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			event, err := Decode(msg.Payload)
			if err != nil {
				// Undecodable messages would loop forever
				msg.Ack()
				continue
			}
			if err := handler(b.ctx, event); err != nil {
				msg.Nack()
				continue
			}
			msg.Ack()
		}
	}()

	return nil
}

func (b *ChannelBus) Close() error {
	b.cancel()
	return b.pubSub.Close()
}
