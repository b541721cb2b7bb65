package service

import (
	"context"
	"testing"
	"time"

	"mist-provisioning-be/internal/pkg/logger"
	"mist-provisioning-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanForwarder struct {
	received chan events.Event
}

func (f *chanForwarder) Publish(_ context.Context, event events.Event) error {
	f.received <- event
	return nil
}

func TestAuditEventsReachForwarder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	forwarder := &chanForwarder{received: make(chan events.Event, 1)}
	consumer := NewAuditConsumer(pubSub, "audit-test", forwarder, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewAuditPublisher(pubSub, "audit-test", logger.NewNopLogger())
	publisher.Publish(ctx, events.TypeContextResolved, map[string]interface{}{"api_host": "api.mist.com", "org_id": "o"})

	select {
	case evt := <-forwarder.received:
		assert.Equal(t, events.TypeContextResolved, evt.EventType())
		assert.Equal(t, "api.mist.com", evt.Payload()["api_host"])
		assert.False(t, evt.Timestamp().IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("audit event was not forwarded")
	}
}
