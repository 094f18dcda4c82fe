package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulelash/MB-BeautyService/internal/domain"
	"github.com/mulelash/MB-BeautyService/internal/integrations/linemessaging"
)

type fakeOutbox struct {
	events   []*domain.OutboxEvent
	sent     []int64
	failures map[int64]struct {
		reason string
		final  bool
	}
	listErr error
}

func newFakeOutbox(events ...*domain.OutboxEvent) *fakeOutbox {
	return &fakeOutbox{
		events: events,
		failures: make(map[int64]struct {
			reason string
			final  bool
		}),
	}
}

func (f *fakeOutbox) ListPending(_ context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.events) > limit {
		return f.events[:limit], nil
	}
	return f.events, nil
}

func (f *fakeOutbox) MarkSent(_ context.Context, id int64) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutbox) RecordFailure(_ context.Context, id int64, reason string, final bool) error {
	f.failures[id] = struct {
		reason string
		final  bool
	}{reason, final}
	return nil
}

type fakeSender struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeSender) SendText(_ context.Context, recipientID, text string) error {
	if err, ok := f.failFor[recipientID]; ok {
		return err
	}
	f.sent = append(f.sent, fmt.Sprintf("%s:%s", recipientID, text))
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestFlush_DeliversPendingEvents(t *testing.T) {
	outbox := newFakeOutbox(
		&domain.OutboxEvent{ID: 1, Recipient: "U-alice", Message: "hello"},
		&domain.OutboxEvent{ID: 2, Recipient: "U-bob", Message: "world"},
	)
	sender := &fakeSender{}

	d := NewDispatcher(outbox, sender, time.Second, 5, noopLogger{})
	d.Flush(context.Background())

	require.Equal(t, []string{"U-alice:hello", "U-bob:world"}, sender.sent)
	assert.Equal(t, []int64{1, 2}, outbox.sent)
	assert.Empty(t, outbox.failures)
}

func TestFlush_TransientFailureStaysRetryable(t *testing.T) {
	outbox := newFakeOutbox(
		&domain.OutboxEvent{ID: 7, Recipient: "U-alice", Message: "hi", Attempts: 0},
	)
	sender := &fakeSender{failFor: map[string]error{
		"U-alice": fmt.Errorf("%w: status 500", linemessaging.ErrPushFailed),
	}}

	d := NewDispatcher(outbox, sender, time.Second, 5, noopLogger{})
	d.Flush(context.Background())

	require.Contains(t, outbox.failures, int64(7))
	assert.False(t, outbox.failures[7].final)
	assert.Empty(t, outbox.sent)
}

func TestFlush_ExhaustedAttemptsMarkedFinal(t *testing.T) {
	outbox := newFakeOutbox(
		&domain.OutboxEvent{ID: 8, Recipient: "U-alice", Message: "hi", Attempts: 4},
	)
	sender := &fakeSender{failFor: map[string]error{
		"U-alice": fmt.Errorf("%w: status 500", linemessaging.ErrPushFailed),
	}}

	d := NewDispatcher(outbox, sender, time.Second, 5, noopLogger{})
	d.Flush(context.Background())

	require.Contains(t, outbox.failures, int64(8))
	assert.True(t, outbox.failures[8].final)
}

func TestFlush_MissingCredentialFailsImmediately(t *testing.T) {
	outbox := newFakeOutbox(
		&domain.OutboxEvent{ID: 9, Recipient: "U-alice", Message: "hi", Attempts: 0},
	)
	sender := &fakeSender{failFor: map[string]error{
		"U-alice": fmt.Errorf("%w: channel access token not configured", linemessaging.ErrMissingCredential),
	}}

	d := NewDispatcher(outbox, sender, time.Second, 5, noopLogger{})
	d.Flush(context.Background())

	require.Contains(t, outbox.failures, int64(9))
	assert.True(t, outbox.failures[9].final, "retrying without a credential cannot succeed")
}

func TestFlush_OneFailureDoesNotBlockOthers(t *testing.T) {
	outbox := newFakeOutbox(
		&domain.OutboxEvent{ID: 1, Recipient: "U-broken", Message: "a"},
		&domain.OutboxEvent{ID: 2, Recipient: "U-fine", Message: "b"},
	)
	sender := &fakeSender{failFor: map[string]error{
		"U-broken": fmt.Errorf("%w: status 429", linemessaging.ErrPushFailed),
	}}

	d := NewDispatcher(outbox, sender, time.Second, 5, noopLogger{})
	d.Flush(context.Background())

	assert.Contains(t, outbox.failures, int64(1))
	assert.Equal(t, []int64{2}, outbox.sent)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	outbox := newFakeOutbox()
	sender := &fakeSender{}

	d := NewDispatcher(outbox, sender, 5*time.Millisecond, 5, noopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop after cancel")
	}
}
