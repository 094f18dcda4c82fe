package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// ErrUnknownCollection is returned when subscribing to a collection no
// loader was registered for
var ErrUnknownCollection = errors.New("store: unknown collection")

// Loader produces the full, ordered record set of one collection.
// The hub re-runs it on every publish: subscribers always receive complete
// snapshots, never diffs.
type Loader func(ctx context.Context) ([]json.RawMessage, error)

// Logger is the logging subset the hub needs
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Hub fans out collection snapshots to live subscribers. It replaces the
// implicit provider/listener wiring of the reference system with an explicit
// observer object: callers hold a *Subscription and must call Unsubscribe
// on teardown, otherwise the channel stays registered and leaks.
type Hub struct {
	mu      sync.RWMutex
	loaders map[string]Loader
	subs    map[string]map[int64]chan []json.RawMessage
	nextID  int64
	logger  Logger
}

// Subscription is one live feed of a collection. C receives the current
// snapshot on subscribe and one snapshot per subsequent change.
type Subscription struct {
	C          <-chan []json.RawMessage
	collection string
	id         int64
	hub        *Hub
	once       sync.Once
}

// Unsubscribe detaches the subscription and closes C. Safe to call twice.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.remove(s.collection, s.id)
	})
}

func NewHub(logger Logger) *Hub {
	return &Hub{
		loaders: make(map[string]Loader),
		subs:    make(map[string]map[int64]chan []json.RawMessage),
		logger:  logger,
	}
}

// Register installs the loader for a collection. Must be called during
// wiring, before any Subscribe or Publish for that collection.
func (h *Hub) Register(collection string, loader Loader) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loaders[collection] = loader
}

// Collections returns the registered collection names
func (h *Hub) Collections() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.loaders))
	for name := range h.loaders {
		names = append(names, name)
	}
	return names
}

// Subscribe attaches a new subscriber and immediately delivers the current
// snapshot on the returned channel.
func (h *Hub) Subscribe(ctx context.Context, collection string) (*Subscription, error) {
	h.mu.RLock()
	loader, ok := h.loaders[collection]
	h.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownCollection
	}

	snapshot, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	// Buffer of 8: a subscriber that falls further behind starts losing
	// intermediate snapshots, which is fine - only the latest matters
	ch := make(chan []json.RawMessage, 8)
	ch <- snapshot

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[int64]chan []json.RawMessage)
	}
	h.subs[collection][id] = ch
	h.mu.Unlock()

	return &Subscription{C: ch, collection: collection, id: id, hub: h}, nil
}

// Publish reloads the collection and delivers the fresh snapshot to every
// subscriber. Services call this after each successful mutation. Delivery
// is non-blocking: a subscriber with a full buffer is skipped, not waited on.
func (h *Hub) Publish(ctx context.Context, collection string) {
	h.mu.RLock()
	loader, ok := h.loaders[collection]
	h.mu.RUnlock()
	if !ok {
		h.logger.Warn("store: publish to unknown collection %q ignored", collection)
		return
	}

	snapshot, err := loader(ctx)
	if err != nil {
		h.logger.Error("store: reload of %q failed, subscribers not notified: %v", collection, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subs[collection] {
		select {
		case ch <- snapshot:
		default:
			h.logger.Warn("store: subscriber %d on %q is slow, snapshot dropped", id, collection)
		}
	}
}

func (h *Hub) remove(collection string, id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.subs[collection]; ok {
		if ch, ok := subs[id]; ok {
			delete(subs, id)
			close(ch)
		}
	}
}

// SubscriberCount reports live subscribers of a collection
func (h *Hub) SubscriberCount(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[collection])
}
