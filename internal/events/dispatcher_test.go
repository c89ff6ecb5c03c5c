package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var received []Event
	d.Subscribe(EventUserRegistered, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventUserRegistered,
		UserID:    "user-1",
		Timestamp: time.Now(),
		Payload:   UserRegisteredPayload{Name: "Jane Dev", Email: "jane@example.com"},
	}
	require.NoError(t, d.Publish(context.Background(), event))
	require.Len(t, received, 1)
	assert.Equal(t, "evt-1", received[0].ID)
}

func TestDispatcherHandlerFailureDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	secondCalled := false
	d.Subscribe(EventProfileUpdated, func(ctx context.Context, event Event) error {
		return errors.New("handler blew up")
	})
	d.Subscribe(EventProfileUpdated, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventProfileUpdated}))
	assert.True(t, secondCalled)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventAccountDeleted}))
}
