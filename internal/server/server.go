// Package server implements the daemon's control transports: a unix
// socket carrying length-prefixed JSON requests from the CLI, and an
// optional localhost HTTP endpoint exposing the same operations over
// JSON-RPC 2.0 plus a websocket event feed.
package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"github.com/blinktimer/blinktimer/common"
)

// Server accepts control connections from CLI clients over a unix socket
// and dispatches requests to registered handlers. The handlers bridge into
// the scheduler engine's message queues; the server itself knows nothing
// about timers.
type Server struct {
	log      *log.Logger
	handler  map[common.UpdateType]HandlerFunc
	web      *WebServer
	listener net.Listener
	mu       sync.Mutex
}

// NewServer creates a Server. web may be nil to disable the HTTP surface.
func NewServer(l *log.Logger, web *WebServer) *Server {
	return &Server{
		log:     l,
		handler: make(map[common.UpdateType]HandlerFunc),
		web:     web,
	}
}

// RegisterHandler associates a handler with a control method. Requests for
// unregistered methods get an error response, never a dropped connection.
func (s *Server) RegisterHandler(method common.UpdateType, handler HandlerFunc) {
	s.handler[method] = handler
}

func (s *Server) createListener() (net.Listener, error) {
	path := SocketPath()
	_ = os.Remove(path)
	l, err := net.ListenUnix("unix", &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", path, err)
	}
	_ = os.Chmod(path, 0o600)
	return l, nil
}

// Start begins accepting connections and blocks until the context is
// canceled or the listener fails. Each connection is served on its own
// goroutine.
func (s *Server) Start(ctx context.Context) error {
	if s.web != nil {
		go func() {
			if err := s.web.Start(); err != nil {
				s.log.Printf("web server: %v", err)
			}
		}()
	}

	l, err := s.createListener()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = s.Shutdown()
	}()

	for {
		conn, err := l.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			s.log.Println("error accepting:", err.Error())
			continue
		}
		go s.handleConnection(conn)
	}
}

// Shutdown stops the server: it closes the listener, shuts the web surface
// down, and removes the socket file. Safe to call more than once.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			s.log.Printf("error closing listener: %v", err)
		}
		s.listener = nil
	}

	if s.web != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.web.Shutdown(ctx); err != nil {
			s.log.Printf("error shutting down web server: %v", err)
		}
	}

	if err := os.Remove(SocketPath()); err != nil && !os.IsNotExist(err) {
		s.log.Printf("error removing socket file: %v", err)
	}
	return nil
}

func (s *Server) handleConnection(conn net.Conn) {
	sconn := NewSyncConn(conn)
	defer conn.Close()
	for {
		buf, err := sconn.Read()
		if err != nil {
			if err != io.EOF {
				s.log.Println("error reading:", err.Error())
			}
			return
		}
		if err := s.handlerWrapper(sconn, buf); err != nil {
			s.log.Println("error handling:", err.Error())
			return
		}
	}
}

// handlerWrapper parses one request, dispatches it, and writes the
// response. Handler errors travel back to the client as error responses;
// only transport failures tear the connection down.
func (s *Server) handlerWrapper(sconn *SyncConn, b []byte) error {
	req, err := ParseRequest(b)
	if err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}
	rHandler, ok := s.handler[req.Method]
	if !ok {
		if err := sconn.Write(CreateError("unknown method: " + string(req.Method))); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
		return nil
	}
	utype, msg, err := rHandler(sconn, req.Message)
	if err != nil {
		if err := sconn.Write(InitError(err)); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
		return nil
	}
	if err := sconn.Write(MakeResult(utype, msg)); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
