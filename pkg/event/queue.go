package event

import (
	"sync/atomic"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// DefaultQueueSize is the buffer size used by NewQueue when the caller
// passes a non-positive size.
const DefaultQueueSize = 64

// Poster is the posting side of an event sink. Post must not block; it
// is called from signal-dispatch goroutines and native handler threads.
type Poster interface {
	Post(evt cloudevents.Event) bool
}

// Queue is a bounded in-process event sink. Posting never blocks: when
// the buffer is full the event is dropped and counted.
type Queue struct {
	ch      chan cloudevents.Event
	dropped atomic.Uint64
}

// NewQueue creates a queue with the given buffer size.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan cloudevents.Event, size)}
}

// Post enqueues the event without blocking. It reports whether the event
// was accepted; a false return means the buffer was full and the event
// was dropped.
func (q *Queue) Post(evt cloudevents.Event) bool {
	select {
	case q.ch <- evt:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Events returns the receive side of the queue. Consumers range over it
// or select against it alongside their own work.
func (q *Queue) Events() <-chan cloudevents.Event {
	return q.ch
}

// Dropped returns the number of events discarded because the buffer was full.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
