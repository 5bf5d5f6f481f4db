// Package display supplies the daemon's default implementations of the
// scheduler's external collaborators: an overlay session that delegates
// rendering to a helper command, and an xrandr-backed monitor source.
package display

import (
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/blinktimer/blinktimer/pkg/blinklib"
	"github.com/blinktimer/blinktimer/pkg/logger"
)

// DefaultOverlayCommand is the helper executable spawned per monitor.
const DefaultOverlayCommand = "blink-overlay"

// OverlaySession shows a break overlay by spawning one helper process per
// monitor. The helper draws a full-screen window and exits when clicked;
// the session reaps all helpers when the timer's duration elapses, when
// the first helper exits (user dismissal), or on ForceClose.
type OverlaySession struct {
	// Command is the helper executable; empty means DefaultOverlayCommand.
	Command string
	// Args are extra arguments placed before the generated ones.
	Args []string
	Log  logger.Logger

	mu     sync.Mutex
	procs  []*exec.Cmd
	closed chan struct{}
	forced bool
}

// Show blocks until the overlay is dismissed, its duration elapses, or
// ForceClose fires. One helper failing to start fails the whole session.
func (s *OverlaySession) Show(def *blinklib.TimerDefinition, geometries []blinklib.Geometry) (blinklib.Outcome, error) {
	if len(geometries) == 0 {
		// No known monitors; let a single helper pick its own screen.
		geometries = []blinklib.Geometry{{}}
	}

	done := make(chan error, len(geometries))
	var procs []*exec.Cmd
	for _, g := range geometries {
		args := append(append([]string{}, s.Args...),
			"--title", def.Title,
			"--foreground", def.Foreground,
			"--background", def.Background,
			"--geometry", fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y),
		)
		cmd := exec.Command(s.command(), args...)
		if err := cmd.Start(); err != nil {
			for _, p := range procs {
				_ = p.Process.Kill()
				_ = p.Wait()
			}
			return blinklib.Outcome{}, fmt.Errorf("starting overlay helper: %w", err)
		}
		procs = append(procs, cmd)
		go func(c *exec.Cmd) { done <- c.Wait() }(cmd)
	}

	closed := make(chan struct{})
	s.mu.Lock()
	s.procs = procs
	s.closed = closed
	s.forced = false
	s.mu.Unlock()

	timer := time.NewTimer(def.Duration)
	defer timer.Stop()

	reaped := 0
	dismissed := false
	select {
	case <-closed:
	case <-done:
		reaped++
		dismissed = true
	case <-timer.C:
	}

	s.killAll()
	for ; reaped < len(procs); reaped++ {
		<-done
	}

	s.mu.Lock()
	forced := s.forced
	s.procs = nil
	s.closed = nil
	s.mu.Unlock()

	// A forced close is a shutdown, not a user dismissal.
	if forced {
		dismissed = false
	}
	return blinklib.Outcome{Dismissed: dismissed}, nil
}

// ForceClose kills any helpers currently on screen, making a blocked Show
// return. Safe to call from any goroutine, and a no-op when nothing is
// showing.
func (s *OverlaySession) ForceClose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed == nil || s.forced {
		return
	}
	s.forced = true
	close(s.closed)
	for _, p := range s.procs {
		if p.Process != nil {
			_ = p.Process.Kill()
		}
	}
}

func (s *OverlaySession) killAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.procs {
		if p.Process != nil {
			_ = p.Process.Kill()
		}
	}
}

func (s *OverlaySession) command() string {
	if s.Command != "" {
		return s.Command
	}
	return DefaultOverlayCommand
}

var _ blinklib.Session = (*OverlaySession)(nil)
