package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func rawSet(values ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(values))
	for i, v := range values {
		out[i] = json.RawMessage(v)
	}
	return out
}

func TestHub_SubscribeDeliversInitialSnapshot(t *testing.T) {
	hub := NewHub(nopLogger{})
	hub.Register("bookings", func(ctx context.Context) ([]json.RawMessage, error) {
		return rawSet(`{"id":1}`), nil
	})

	sub, err := hub.Subscribe(context.Background(), "bookings")
	require.NoError(t, err)
	defer sub.Unsubscribe()

	snapshot := <-sub.C
	require.Len(t, snapshot, 1)
	assert.JSONEq(t, `{"id":1}`, string(snapshot[0]))
}

func TestHub_SubscribeUnknownCollection(t *testing.T) {
	hub := NewHub(nopLogger{})

	_, err := hub.Subscribe(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestHub_PublishFansOutFullSet(t *testing.T) {
	current := rawSet(`{"id":1}`)
	hub := NewHub(nopLogger{})
	hub.Register("orders", func(ctx context.Context) ([]json.RawMessage, error) {
		return current, nil
	})

	first, err := hub.Subscribe(context.Background(), "orders")
	require.NoError(t, err)
	defer first.Unsubscribe()
	second, err := hub.Subscribe(context.Background(), "orders")
	require.NoError(t, err)
	defer second.Unsubscribe()

	<-first.C
	<-second.C

	// A single mutation re-delivers the whole set to every subscriber
	current = rawSet(`{"id":1}`, `{"id":2}`)
	hub.Publish(context.Background(), "orders")

	for _, sub := range []*Subscription{first, second} {
		snapshot := <-sub.C
		assert.Len(t, snapshot, 2)
	}
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub(nopLogger{})
	hub.Register("staff", func(ctx context.Context) ([]json.RawMessage, error) {
		return rawSet(`{"id":7}`), nil
	})

	sub, err := hub.Subscribe(context.Background(), "staff")
	require.NoError(t, err)
	<-sub.C

	require.Equal(t, 1, hub.SubscriberCount("staff"))

	sub.Unsubscribe()
	assert.Equal(t, 0, hub.SubscriberCount("staff"))

	// Channel is closed, publish after unsubscribe must not panic
	hub.Publish(context.Background(), "staff")
	_, open := <-sub.C
	assert.False(t, open)

	// Double unsubscribe is a no-op
	sub.Unsubscribe()
}

func TestHub_PublishSkipsSlowSubscriber(t *testing.T) {
	hub := NewHub(nopLogger{})
	hub.Register("gallery", func(ctx context.Context) ([]json.RawMessage, error) {
		return rawSet(`{}`), nil
	})

	sub, err := hub.Subscribe(context.Background(), "gallery")
	require.NoError(t, err)
	defer sub.Unsubscribe()

	// Never drain: the buffered channel fills and further publishes must
	// drop snapshots instead of blocking
	for i := 0; i < 20; i++ {
		hub.Publish(context.Background(), "gallery")
	}
}

func TestHub_LoaderErrorSurfacesOnSubscribe(t *testing.T) {
	boom := errors.New("db down")
	hub := NewHub(nopLogger{})
	hub.Register("promotions", func(ctx context.Context) ([]json.RawMessage, error) {
		return nil, boom
	})

	_, err := hub.Subscribe(context.Background(), "promotions")
	assert.ErrorIs(t, err, boom)
}
