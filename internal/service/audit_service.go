package service

import (
	"context"
	"time"

	"mist-provisioning-be/internal/pkg/logger"
	"mist-provisioning-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IAuditPublisher records operator-visible context changes. Publishing is
// best effort and never fails the operation that triggered it.
type IAuditPublisher interface {
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

// IAuditConsumer drains the in-process audit topic.
type IAuditConsumer interface {
	Consume(ctx context.Context) error
}

// EventForwarder ships audit events off-box. *nats.Publisher implements it.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type auditPublisher struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewAuditPublisher(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IAuditPublisher {
	return &auditPublisher{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (p *auditPublisher) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	evt := events.BaseEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := events.Marshal(evt)
	if err != nil {
		p.logger.Error("AUDIT", "Failed to encode audit event", map[string]interface{}{"type": eventType, "error": err.Error()})
		return
	}

	msg := message.NewMessage(evt.ID, payload)
	msg.SetContext(ctx)
	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		p.logger.Error("AUDIT", "Failed to publish audit event", map[string]interface{}{"type": eventType, "error": err.Error()})
	}
}

type auditConsumer struct {
	pubSub    *gochannel.GoChannel
	topicName string
	forwarder EventForwarder
	logger    logger.ILogger
}

// NewAuditConsumer logs every audit event and forwards it when forwarder is
// not nil.
func NewAuditConsumer(pubSub *gochannel.GoChannel, topicName string, forwarder EventForwarder, log logger.ILogger) IAuditConsumer {
	return &auditConsumer{
		pubSub:    pubSub,
		topicName: topicName,
		forwarder: forwarder,
		logger:    log,
	}
}

func (c *auditConsumer) Consume(ctx context.Context) error {
	messages, err := c.pubSub.Subscribe(ctx, c.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (c *auditConsumer) processMessage(ctx context.Context, msg *message.Message) {
	evt, err := events.Unmarshal(msg.Payload)
	if err != nil {
		c.logger.Error("AUDIT", "Dropping malformed audit event", map[string]interface{}{"uuid": msg.UUID, "error": err.Error()})
		msg.Ack()
		return
	}

	c.logger.Info("AUDIT", evt.Type, map[string]interface{}{
		"event_id":    evt.ID,
		"occurred_at": evt.OccurredAt,
		"data":        evt.Data,
	})

	if c.forwarder != nil {
		if err := c.forwarder.Publish(ctx, evt); err != nil {
			c.logger.Warn("AUDIT", "Failed to forward audit event", map[string]interface{}{"event_id": evt.ID, "error": err.Error()})
		}
	}
	msg.Ack()
}
