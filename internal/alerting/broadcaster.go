package alerting

import (
	"sync"

	"footsense-monitor/internal/models"
)

// DefaultSubscriberBuffer is the per-subscriber channel buffer.
const DefaultSubscriberBuffer = 16

// Broadcaster fans alerts out to any number of independent observers.
// Publish never blocks the producer: a subscriber whose buffer is full
// misses the alert. Back-pressure is the observer's problem; the store
// remains the complete record.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[int]chan models.Alert
	nextID int
	buffer int
	closed bool
}

// NewBroadcaster creates a broadcaster with the given per-subscriber
// buffer. Non-positive buffers fall back to DefaultSubscriberBuffer.
func NewBroadcaster(buffer int) *Broadcaster {
	if buffer < 1 {
		buffer = DefaultSubscriberBuffer
	}
	return &Broadcaster{
		subs:   make(map[int]chan models.Alert),
		buffer: buffer,
	}
}

// Subscribe registers an observer and returns its channel plus a cancel
// function. The channel is closed on cancel and on Close.
func (b *Broadcaster) Subscribe() (<-chan models.Alert, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan models.Alert)
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	ch := make(chan models.Alert, b.buffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the alert to every subscriber without blocking.
func (b *Broadcaster) Publish(alert models.Alert) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- alert:
		default:
			// Subscriber is not keeping up; drop rather than stall the engine.
		}
	}
}

// Close closes every subscriber channel and rejects future subscriptions.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
