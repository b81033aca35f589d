// Package input turns device input into game events.
//
// Terminals only report key presses, so the Decoder synthesises the matching
// stop events for move keys once their auto-repeat dies down.
package input

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// Event is a discrete input action delivered to the game between ticks.
type Event int

const (
	MoveLeftStart Event = iota
	MoveLeftStop
	MoveRightStart
	MoveRightStop
	Fire
	ActivateShield
	Restart
	Quit
)

var eventNames = [...]string{
	MoveLeftStart:  "move_left_start",
	MoveLeftStop:   "move_left_stop",
	MoveRightStart: "move_right_start",
	MoveRightStop:  "move_right_stop",
	Fire:           "fire",
	ActivateShield: "shield",
	Restart:        "restart",
	Quit:           "quit",
}

func (e Event) String() string {
	if e >= 0 && int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// MarshalText encodes the event by name.
func (e Event) MarshalText() ([]byte, error) {
	if e < 0 || int(e) >= len(eventNames) {
		return nil, fmt.Errorf("input: unknown event %d", int(e))
	}
	return []byte(eventNames[e]), nil
}

// UnmarshalText decodes an event name.
func (e *Event) UnmarshalText(text []byte) error {
	ev, err := ParseEvent(string(text))
	if err != nil {
		return err
	}
	*e = ev
	return nil
}

// ParseEvent returns the event with the given name.
func ParseEvent(name string) (Event, error) {
	for i, n := range eventNames {
		if n == name {
			return Event(i), nil
		}
	}
	return 0, fmt.Errorf("input: unknown event %q", name)
}

// Source delivers the events received since the previous poll.
// It returns io.EOF once the underlying device is gone.
type Source interface {
	Poll(now time.Time) ([]Event, error)
}

// keyHoldDuration is how long a move key is considered held after its last press.
// Covers the gap between terminal auto-repeat events.
const keyHoldDuration = 150 * time.Millisecond

// holdState tracks a move key that only reports presses.
type holdState struct {
	held     bool
	lastSeen time.Time
}

// press records a press and reports whether this starts a new hold.
func (h *holdState) press(now time.Time) bool {
	h.lastSeen = now
	if h.held {
		return false
	}
	h.held = true
	return true
}

// expire reports whether the hold just ended.
func (h *holdState) expire(now time.Time) bool {
	if h.held && now.Sub(h.lastSeen) >= keyHoldDuration {
		h.held = false
		return true
	}
	return false
}

// Decoder converts raw terminal bytes to events.
type Decoder struct {
	left    holdState
	right   holdState
	pending []byte // Incomplete escape sequence carried to the next Feed
}

// Feed decodes buf, received at now, and returns the resulting events.
// Arrow keys arrive as CSI sequences: ESC [ C (right) and ESC [ D (left).
func (d *Decoder) Feed(buf []byte, now time.Time) []Event {
	if len(d.pending) > 0 {
		buf = append(d.pending, buf...)
		d.pending = nil
	}

	var events []Event
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if i+2 >= len(buf) {
				if i+1 == len(buf) || buf[i+1] == '[' {
					d.pending = append([]byte(nil), buf[i:]...)
					break
				}
			} else if buf[i+1] == '[' {
				switch buf[i+2] {
				case 'C':
					events = d.pressRight(events, now)
				case 'D':
					events = d.pressLeft(events, now)
				}
				i += 2
				continue
			}
		}

		switch b {
		case 'a', 'A', 'h', 'H':
			events = d.pressLeft(events, now)
		case 'd', 'D', 'l', 'L':
			events = d.pressRight(events, now)
		case ' ':
			events = append(events, Fire)
		case 's', 'S':
			events = append(events, ActivateShield)
		case 'r', 'R', '\r', '\n':
			events = append(events, Restart)
		case 'q', 'Q', '\x03':
			events = append(events, Quit)
		}
	}
	return events
}

func (d *Decoder) pressLeft(events []Event, now time.Time) []Event {
	if d.left.press(now) {
		events = append(events, MoveLeftStart)
	}
	return events
}

func (d *Decoder) pressRight(events []Event, now time.Time) []Event {
	if d.right.press(now) {
		events = append(events, MoveRightStart)
	}
	return events
}

// Expire returns stop events for move keys not repeated within the hold window.
func (d *Decoder) Expire(now time.Time) []Event {
	var events []Event
	if d.left.expire(now) {
		events = append(events, MoveLeftStop)
	}
	if d.right.expire(now) {
		events = append(events, MoveRightStop)
	}
	return events
}

// Stream delivers terminal input bytes via a channel and decodes them on Poll.
type Stream struct {
	ch      chan byte
	decoder Decoder
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes (non-blocking) and returns decoded events,
// followed by stop events for released move keys.
func (s *Stream) Poll(now time.Time) ([]Event, error) {
	if s.closed {
		return nil, io.EOF
	}

	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	events := s.decoder.Feed(buf, now)
	events = append(events, s.decoder.Expire(now)...)
	if s.closed && len(events) == 0 {
		return nil, io.EOF
	}
	return events, nil
}
