package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"
)

// WebServer exposes the daemon's control operations on localhost over
// HTTP: JSON-RPC 2.0 at /rpc and a websocket event feed at /events. Both
// require the shared secret; an empty secret leaves every request
// rejected, so the surface is opt-in.
type WebServer struct {
	port     int
	secret   string
	l        *log.Logger
	methods  handler.Map
	notifier *Notifier
	server   *http.Server
	mu       sync.Mutex
}

// NewWebServer builds the HTTP control surface. methods is the JSON-RPC
// method map shared between /rpc and websocket sessions; notifier receives
// each websocket session for push delivery.
func NewWebServer(l *log.Logger, methods handler.Map, notifier *Notifier, secret string, port int) *WebServer {
	return &WebServer{
		port:     port,
		secret:   secret,
		l:        l,
		methods:  methods,
		notifier: notifier,
	}
}

// Start runs the HTTP server. It blocks until Shutdown is called or the
// listener fails.
func (s *WebServer) Start() error {
	bridge := jhttp.NewBridge(s.methods, nil)

	mux := http.NewServeMux()
	mux.Handle("/rpc", requireToken(s.secret, bridge))
	mux.Handle("/events", requireToken(s.secret, http.HandlerFunc(s.handleEvents)))

	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()

	s.l.Printf("web control surface listening on %s", srv.Addr)
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the HTTP server gracefully.
func (s *WebServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
