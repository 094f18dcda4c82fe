package notify

import (
	"context"
	"errors"
	"time"

	"github.com/mulelash/MB-BeautyService/internal/integrations/linemessaging"
)

const defaultBatchSize = 20

// Dispatcher drains the notification outbox in the background. It polls on
// a fixed interval, pushes each pending event through the sender and records
// the outcome. Delivery failures never propagate back to the transition that
// queued the event.
type Dispatcher struct {
	outbox      OutboxRepo
	sender      Sender
	interval    time.Duration
	maxAttempts int
	batchSize   int
	log         Logger
}

func NewDispatcher(outbox OutboxRepo, sender Sender, interval time.Duration, maxAttempts int, log Logger) *Dispatcher {
	return &Dispatcher{
		outbox:      outbox,
		sender:      sender,
		interval:    interval,
		maxAttempts: maxAttempts,
		batchSize:   defaultBatchSize,
		log:         log,
	}
}

// Run polls the outbox until the context is cancelled. Intended to be
// started as a goroutine from main.
func (d *Dispatcher) Run(ctx context.Context) {
	d.log.Info("notify.Dispatcher: started (interval=%s, max_attempts=%d)", d.interval, d.maxAttempts)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.log.Info("notify.Dispatcher: stopped")
			return
		case <-ticker.C:
			d.Flush(ctx)
		}
	}
}

// Flush processes one batch of pending events. Exposed separately so the
// poll loop and tests share one code path.
func (d *Dispatcher) Flush(ctx context.Context) {
	events, err := d.outbox.ListPending(ctx, d.batchSize)
	if err != nil {
		d.log.Error("notify.Dispatcher: Flush - list pending events: %v", err)
		return
	}
	if len(events) == 0 {
		return
	}

	d.log.Debug("notify.Dispatcher: Flush - delivering %d event(s)", len(events))

	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return
		}

		if err := d.sender.SendText(ctx, ev.Recipient, ev.Message); err != nil {
			final := ev.Attempts+1 >= d.maxAttempts || isPermanent(err)
			d.log.Warn("notify.Dispatcher: Flush - event %d delivery failed (attempt=%d, final=%t): %v",
				ev.ID, ev.Attempts+1, final, err)

			if rerr := d.outbox.RecordFailure(ctx, ev.ID, err.Error(), final); rerr != nil {
				d.log.Error("notify.Dispatcher: Flush - record failure for event %d: %v", ev.ID, rerr)
			}
			continue
		}

		if err := d.outbox.MarkSent(ctx, ev.ID); err != nil {
			d.log.Error("notify.Dispatcher: Flush - mark event %d sent: %v", ev.ID, err)
			continue
		}
		d.log.Info("notify.Dispatcher: Flush - event %d delivered to %s", ev.ID, ev.Recipient)
	}
}

// isPermanent reports whether retrying the send could ever help. A missing
// channel token or an empty recipient will not fix itself, so those events
// are failed immediately instead of burning every attempt.
func isPermanent(err error) bool {
	return errors.Is(err, linemessaging.ErrMissingCredential) ||
		errors.Is(err, linemessaging.ErrMissingRecipient)
}
