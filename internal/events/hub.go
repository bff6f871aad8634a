package events

import (
	"sync"

	"github.com/google/uuid"

	"github.com/volkh4n/scandeck/internal/logging"
	"github.com/volkh4n/scandeck/internal/model"
)

// DefaultBuffer is the per-subscriber event buffer size.
const DefaultBuffer = 64

// Hub fans scan lifecycle events out to live subscribers. Publish never
// blocks: a subscriber that falls behind has events dropped rather than
// stalling scan submission or completion.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]chan model.ScanEvent
	buffer int
	closed bool
	logger logging.Logger
}

func NewHub(buffer int, logger logging.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		subs:   make(map[string]chan model.ScanEvent),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a listener and returns its id plus the event channel.
// The channel is closed by Unsubscribe or when the hub shuts down. After
// Close, Subscribe hands back an already-closed channel.
func (h *Hub) Subscribe() (string, <-chan model.ScanEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan model.ScanEvent, h.buffer)
	if h.closed {
		close(ch)
		return id, ch
	}
	h.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a listener and closes its channel. Unknown ids are a
// no-op so disconnect paths can call it unconditionally.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Publish delivers ev to every subscriber with buffer room.
func (h *Hub) Publish(ev model.ScanEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.logger.Debug("dropping event for slow subscriber",
				logging.Field{Key: "subscriber", Value: id},
				logging.Field{Key: "scan_id", Value: ev.ScanID},
			)
		}
	}
}

// Close shuts the hub down, closing every subscriber channel. Publishes
// after Close are discarded.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
