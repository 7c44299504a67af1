package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboundQueue_Send(t *testing.T) {
	var published []byte
	q := &OutboundQueue{
		publish: func(body []byte) error {
			published = body
			return nil
		},
	}

	err := q.Send(context.Background(), "chat-1", "hello")
	require.NoError(t, err)

	var msg OutboundMessage
	require.NoError(t, json.Unmarshal(published, &msg))
	assert.Equal(t, "chat-1", msg.EndpointID)
	assert.Equal(t, "hello", msg.Text)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestOutboundQueue_SendPublishError(t *testing.T) {
	q := &OutboundQueue{
		publish: func([]byte) error { return errors.New("broker down") },
	}

	err := q.Send(context.Background(), "chat-1", "hello")
	assert.ErrorContains(t, err, "broker down")
}

func TestOutboundQueue_SendCancelled(t *testing.T) {
	called := false
	q := &OutboundQueue{
		publish: func([]byte) error {
			called = true
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := q.Send(ctx, "chat-1", "hello")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestOutboundQueue_Consume(t *testing.T) {
	valid, err := json.Marshal(OutboundMessage{EndpointID: "chat-2", Text: "hi"})
	require.NoError(t, err)

	q := &OutboundQueue{
		consume: func(raw chan []byte) error {
			raw <- []byte("{not json")
			raw <- valid
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan OutboundMessage, 1)
	require.NoError(t, q.Consume(ctx, out))

	select {
	case msg := <-out:
		assert.Equal(t, "chat-2", msg.EndpointID)
		assert.Equal(t, "hi", msg.Text)
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}
}
