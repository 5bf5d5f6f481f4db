// Package daemon manages the blinktimer daemon lifecycle: it runs the
// scheduler engine and the control server together and coordinates their
// shutdown.
package daemon

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Sentinel errors for the daemon runner.
var (
	// ErrAlreadyRunning is returned when Start is called on a running daemon.
	ErrAlreadyRunning = errors.New("daemon is already running")

	// ErrNotRunning is returned when Shutdown is called on a stopped daemon.
	ErrNotRunning = errors.New("daemon is not running")

	// ErrShutdownTimeout is returned when the engine does not stop within
	// the configured timeout.
	ErrShutdownTimeout = errors.New("shutdown timed out")
)

// Scheduler is the engine surface the runner needs.
type Scheduler interface {
	Run()
	Quit()
	Done() <-chan struct{}
}

// ControlServer is the control-surface surface the runner needs.
type ControlServer interface {
	Start(ctx context.Context) error
	Shutdown() error
}

// Config holds runner configuration.
type Config struct {
	// ShutdownTimeout is the maximum time to wait for the engine to stop.
	// Zero means wait forever.
	ShutdownTimeout time.Duration
}

// Runner ties one engine and one control server into a single lifecycle.
type Runner struct {
	config  Config
	engine  Scheduler
	control ControlServer

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

// New creates a runner for the given engine and control server.
func New(config Config, engine Scheduler, control ControlServer) *Runner {
	return &Runner{
		config:  config,
		engine:  engine,
		control: control,
	}
}

// Start runs the control server in the background and the engine on the
// calling goroutine, blocking until the engine stops. Context cancellation
// triggers a full shutdown. Returns ErrAlreadyRunning on reentry.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.running = true
	r.mu.Unlock()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- r.control.Start(ctx)
	}()

	go func() {
		select {
		case <-ctx.Done():
			r.engine.Quit()
		case <-r.engine.Done():
		}
	}()

	r.engine.Run()

	// Engine is down; take the control server with it.
	r.mu.Lock()
	r.running = false
	cancel := r.cancel
	r.mu.Unlock()
	cancel()
	_ = r.control.Shutdown()

	select {
	case err := <-serverErr:
		return err
	case <-time.After(5 * time.Second):
		return nil
	}
}

// Shutdown stops the engine and, through Start's teardown, the control
// server. Returns ErrNotRunning if nothing is running and
// ErrShutdownTimeout if the engine does not stop in time.
func (r *Runner) Shutdown() error {
	r.mu.Lock()
	running := r.running
	r.mu.Unlock()
	if !running {
		return ErrNotRunning
	}

	r.engine.Quit()

	if r.config.ShutdownTimeout <= 0 {
		<-r.engine.Done()
		return nil
	}
	select {
	case <-r.engine.Done():
		return nil
	case <-time.After(r.config.ShutdownTimeout):
		return ErrShutdownTimeout
	}
}

// IsRunning reports whether the daemon is currently running.
func (r *Runner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}
