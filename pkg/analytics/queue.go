package analytics

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrQueueClosed is returned when pushing to a closed queue.
	ErrQueueClosed = errors.New("analytics: queue closed")
)

// Pusher accepts events.
type Pusher interface {
	Push(Event) error
}

// Queue is an append-only, concurrency-safe event buffer.
type Queue struct {
	mu     sync.Mutex
	events []Event
	closed bool
	now    func() time.Time
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

var (
	dataLayerOnce sync.Once
	dataLayer     *Queue
)

// DataLayer returns the process-wide queue, creating it on first call.
func DataLayer() *Queue {
	dataLayerOnce.Do(func() {
		dataLayer = NewQueue()
	})
	return dataLayer
}

// Push appends ev, stamping PushedAt when unset.
func (q *Queue) Push(ev Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	if ev.PushedAt.IsZero() {
		ev.PushedAt = q.now()
	}
	q.events = append(q.events, ev)
	return nil
}

// Len reports the number of buffered events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Snapshot returns a copy of the buffered events in push order.
func (q *Queue) Snapshot() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Event(nil), q.events...)
}

// Drain returns and removes every buffered event.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}

// Close rejects further pushes. Buffered events remain drainable.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}
