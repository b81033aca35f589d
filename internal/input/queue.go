package input

import (
	"io"
	"sync"
	"time"
)

// Queue is a Source fed by another goroutine, such as a network reader.
// It is the single point where concurrent input is serialised for the game loop.
type Queue struct {
	ch        chan Event
	closeOnce sync.Once
	done      chan struct{}
}

// NewQueue creates a queue buffering up to size events.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 64
	}
	return &Queue{
		ch:   make(chan Event, size),
		done: make(chan struct{}),
	}
}

// Push enqueues an event. Returns false if the queue is full or closed;
// the event is dropped in that case.
func (q *Queue) Push(ev Event) bool {
	select {
	case <-q.done:
		return false
	default:
	}
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Close marks the queue as finished. Events already queued are still delivered.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}

// Poll drains queued events without blocking.
func (q *Queue) Poll(time.Time) ([]Event, error) {
	var events []Event
	for {
		select {
		case ev := <-q.ch:
			events = append(events, ev)
		default:
			if len(events) == 0 {
				select {
				case <-q.done:
					return nil, io.EOF
				default:
				}
			}
			return events, nil
		}
	}
}
