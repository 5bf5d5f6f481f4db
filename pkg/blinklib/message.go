package blinklib

import "sync"

// ControlMessage is a request from the control surface to the engine
// goroutine. The concrete types below form a closed set; the engine
// type-switches over them and logs anything it does not recognize instead
// of failing.
type ControlMessage interface {
	controlMessage()
}

// StatusRequest asks the engine to publish a status report on its response
// queue.
type StatusRequest struct{}

// RefreshGeometryRequest asks the engine to re-query the geometry source
// and cache the result for subsequent overlays.
type RefreshGeometryRequest struct{}

// ResetRequest asks the engine to restart every timer one full period from
// now.
type ResetRequest struct{}

// ShutdownRequest asks the engine to terminate immediately, abandoning any
// messages queued behind it.
type ShutdownRequest struct{}

func (StatusRequest) controlMessage()          {}
func (RefreshGeometryRequest) controlMessage() {}
func (ResetRequest) controlMessage()           {}
func (ShutdownRequest) controlMessage()        {}

// mailbox is the engine's inbound queue: unbounded and ordered, paired
// with a single collapsing wake signal. Push never blocks, no matter how
// long the engine is stuck inside an overlay session.
type mailbox struct {
	mu   sync.Mutex
	msgs []ControlMessage
	wake chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{wake: make(chan struct{}, 1)}
}

// Push appends a message and sets the wake signal. Multiple pushes before
// the engine observes the signal collapse into a single wake-up; message
// order is preserved regardless.
func (m *mailbox) Push(msg ControlMessage) {
	m.mu.Lock()
	m.msgs = append(m.msgs, msg)
	m.mu.Unlock()
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Pop removes and returns the oldest queued message, if any.
func (m *mailbox) Pop() (ControlMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.msgs) == 0 {
		return nil, false
	}
	msg := m.msgs[0]
	m.msgs = m.msgs[1:]
	return msg, true
}
