package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/creachadair/jrpc2"

	"github.com/blinktimer/blinktimer/pkg/blinklib"
)

// Push notification methods sent to websocket subscribers.
const (
	NotifyActivationStarted = "timer.activationStarted"
	NotifyActivationEnded   = "timer.activationEnded"
)

// ActivationStartedEvent is the payload of timer.activationStarted.
type ActivationStartedEvent struct {
	Title     string    `json:"title"`
	StartedAt time.Time `json:"started_at"`
}

// ActivationEndedEvent is the payload of timer.activationEnded.
type ActivationEndedEvent struct {
	Title     string    `json:"title"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Dismissed bool      `json:"dismissed"`
	Skipped   bool      `json:"skipped"`
}

// Notifier tracks connected websocket sessions and broadcasts push
// notifications to all of them. It implements blinklib.Notifier, so the
// engine can hand it activation events directly.
type Notifier struct {
	mu      sync.RWMutex
	servers map[*jrpc2.Server]struct{}
	log     *log.Logger
}

// NewNotifier creates an empty Notifier.
func NewNotifier(l *log.Logger) *Notifier {
	return &Notifier{
		servers: make(map[*jrpc2.Server]struct{}),
		log:     l,
	}
}

// Register adds a session to the broadcast set.
func (n *Notifier) Register(srv *jrpc2.Server) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.servers[srv] = struct{}{}
}

// Unregister removes a session from the broadcast set.
func (n *Notifier) Unregister(srv *jrpc2.Server) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.servers, srv)
}

// Count returns the number of registered sessions.
func (n *Notifier) Count() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.servers)
}

// Broadcast sends a push notification to every registered session,
// dropping sessions that fail to receive.
func (n *Notifier) Broadcast(method string, params any) {
	n.mu.RLock()
	servers := make([]*jrpc2.Server, 0, len(n.servers))
	for srv := range n.servers {
		servers = append(servers, srv)
	}
	n.mu.RUnlock()

	var failed []*jrpc2.Server
	for _, srv := range servers {
		if err := srv.Notify(context.Background(), method, params); err != nil {
			if n.log != nil {
				n.log.Printf("push notification failed: %v", err)
			}
			failed = append(failed, srv)
		}
	}

	if len(failed) > 0 {
		n.mu.Lock()
		for _, srv := range failed {
			delete(n.servers, srv)
		}
		n.mu.Unlock()
	}
}

// ActivationStarted broadcasts the start of an overlay.
func (n *Notifier) ActivationStarted(title string) {
	n.Broadcast(NotifyActivationStarted, &ActivationStartedEvent{
		Title:     title,
		StartedAt: time.Now(),
	})
}

// ActivationEnded broadcasts the end of an overlay.
func (n *Notifier) ActivationEnded(a blinklib.Activation) {
	n.Broadcast(NotifyActivationEnded, &ActivationEndedEvent{
		Title:     a.Title,
		StartedAt: a.StartedAt,
		EndedAt:   a.EndedAt,
		Dismissed: a.Dismissed,
		Skipped:   a.Skipped,
	})
}

var _ blinklib.Notifier = (*Notifier)(nil)
