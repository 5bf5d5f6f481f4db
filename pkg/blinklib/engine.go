package blinklib

import (
	"time"

	"github.com/blinktimer/blinktimer/pkg/logger"
)

const (
	// DefaultPollInterval is the engine's scheduling resolution. Break
	// timers are not a precise clock; a one second poll keeps the loop
	// asleep almost always without anyone noticing the slack.
	DefaultPollInterval = time.Second

	// DefaultSleepThreshold is how far overdue the first due timer must be
	// before the engine assumes the whole process was suspended. Catching
	// up after a laptop wakes from hours of sleep would fire every timer
	// back to back, so the engine restarts the full set instead.
	DefaultSleepThreshold = 10 * time.Second

	// statusWait bounds how long a status requester waits for the engine
	// to answer before giving up. The engine may be blocked behind an
	// overlay for minutes; callers treat a timeout as "no response".
	statusWait = time.Second
)

// TimerSnapshot is one timer's standing at the moment a status request
// was serviced.
type TimerSnapshot struct {
	Title     string
	Remaining time.Duration
	Period    time.Duration
}

// StatusSnapshot is the engine's answer to a status request: the
// human-readable multi-line report plus the per-timer values it was
// rendered from.
type StatusSnapshot struct {
	Report string
	Timers []TimerSnapshot
}

func snapshot(timers []*TimerState, now time.Time) StatusSnapshot {
	snap := StatusSnapshot{
		Report: StatusReport(timers, now),
		Timers: make([]TimerSnapshot, 0, len(timers)),
	}
	for _, t := range timers {
		snap.Timers = append(snap.Timers, TimerSnapshot{
			Title:     t.Def.Title,
			Remaining: t.Remaining(now),
			Period:    t.Def.Period,
		})
	}
	return snap
}

// Activation is one record of an overlay being shown, or suppressed by the
// quiet schedule.
type Activation struct {
	Title     string
	StartedAt time.Time
	EndedAt   time.Time
	// Dismissed is true when the user clicked the overlay away before its
	// duration elapsed.
	Dismissed bool
	// Skipped is true when the activation fell inside a quiet window and
	// no overlay was shown.
	Skipped bool
}

// Recorder persists activations. Record errors are logged and dropped,
// never fatal.
type Recorder interface {
	Record(a Activation) error
}

// Notifier receives activation lifecycle events for push delivery to
// connected clients.
type Notifier interface {
	ActivationStarted(title string)
	ActivationEnded(a Activation)
}

// EngineConfig wires an Engine to its collaborators. Definitions and
// Session are required; everything else has a usable zero value.
type EngineConfig struct {
	Definitions []*TimerDefinition
	Session     Session
	Geometry    GeometrySource
	Quiet       *QuietSchedule
	Recorder    Recorder
	Notifier    Notifier
	Log         logger.Logger

	// PollInterval and SleepThreshold default to DefaultPollInterval and
	// DefaultSleepThreshold.
	PollInterval   time.Duration
	SleepThreshold time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Engine owns the timer list and runs the scheduling loop. All mutable
// scheduling state is confined to the goroutine that calls Run; the
// exported request methods only touch the message queues and the session's
// cross-goroutine dismiss handle, so they are safe from any goroutine.
type Engine struct {
	log            logger.Logger
	timers         []*TimerState
	session        Session
	geoSource      GeometrySource
	geometries     []Geometry
	quiet          *QuietSchedule
	rec            Recorder
	notify         Notifier
	now            func() time.Time
	poll           time.Duration
	sleepThreshold time.Duration

	box      *mailbox
	statusCh chan StatusSnapshot
	done     chan struct{}
}

// NewEngine builds an Engine from cfg. It does not start the loop; call
// Run on a dedicated goroutine.
func NewEngine(cfg EngineConfig) *Engine {
	e := &Engine{
		log:            cfg.Log,
		session:        cfg.Session,
		geoSource:      cfg.Geometry,
		quiet:          cfg.Quiet,
		rec:            cfg.Recorder,
		notify:         cfg.Notifier,
		now:            cfg.Now,
		poll:           cfg.PollInterval,
		sleepThreshold: cfg.SleepThreshold,
		box:            newMailbox(),
		statusCh:       make(chan StatusSnapshot, 1),
		done:           make(chan struct{}),
	}
	if e.log == nil {
		e.log = logger.NewNopLogger()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.poll <= 0 {
		e.poll = DefaultPollInterval
	}
	if e.sleepThreshold <= 0 {
		e.sleepThreshold = DefaultSleepThreshold
	}
	e.timers = NewTimerStates(cfg.Definitions, e.now())
	return e
}

// Run executes the scheduling loop until a ShutdownRequest arrives. It
// must be called exactly once; Done is closed when it returns.
func (e *Engine) Run() {
	defer close(e.done)

	e.resetAll(e.now())
	e.refreshGeometries()

	poll := time.NewTimer(e.poll)
	defer poll.Stop()
	for {
		select {
		case <-e.box.wake:
			if !poll.Stop() {
				select {
				case <-poll.C:
				default:
				}
			}
		case <-poll.C:
		}
		if e.drain() {
			e.log.Info("scheduler stopping")
			return
		}
		e.checkDue()
		poll.Reset(e.poll)
	}
}

// Done is closed when Run has returned.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// drain applies queued control messages in order until the queue is empty.
// It reports whether a ShutdownRequest was seen, in which case any messages
// behind it are abandoned.
func (e *Engine) drain() bool {
	for {
		msg, ok := e.box.Pop()
		if !ok {
			return false
		}
		switch msg.(type) {
		case StatusRequest:
			select {
			case e.statusCh <- snapshot(e.timers, e.now()):
			default:
				e.log.Warning("status response dropped: requester gone")
			}
		case RefreshGeometryRequest:
			e.refreshGeometries()
		case ResetRequest:
			e.resetAll(e.now())
		case ShutdownRequest:
			return true
		default:
			e.log.Warning("ignoring unknown control message %T", msg)
		}
	}
}

// checkDue scans the timers in priority order and services the first
// overdue one. A timer overdue by the sleep threshold or more is taken as
// evidence of a system suspend/resume gap rather than a late poll, so the
// whole set restarts without showing anything.
func (e *Engine) checkDue() {
	now := e.now()
	for _, t := range e.timers {
		diff := now.Sub(t.NextTime)
		if diff <= 0 {
			continue
		}
		if diff >= e.sleepThreshold {
			e.log.Info("timer %q is %s overdue, assuming system resume; restarting all timers",
				t.Def.Title, diff)
			e.resetAll(now)
			return
		}
		e.activate(t)
		return
	}
}

// activate shows the overlay for t, blocking the loop for up to the
// timer's duration, then reschedules t and repacks the set. During quiet
// windows the overlay is suppressed and the timer rescheduled silently.
func (e *Engine) activate(t *TimerState) {
	started := e.now()
	if e.quiet.Active(started) {
		e.log.Info("quiet window active, skipping %q", t.Def.Title)
		t.Reschedule()
		ResolveOverlaps(e.timers)
		e.record(Activation{Title: t.Def.Title, StartedAt: started, EndedAt: started, Skipped: true})
		return
	}

	if e.notify != nil {
		e.notify.ActivationStarted(t.Def.Title)
	}
	out, err := e.session.Show(t.Def, e.geometries)
	if err != nil {
		e.log.Error("overlay for %q failed: %v", t.Def.Title, err)
	}
	t.Reschedule()
	ResolveOverlaps(e.timers)

	a := Activation{
		Title:     t.Def.Title,
		StartedAt: started,
		EndedAt:   e.now(),
		Dismissed: out.Dismissed,
	}
	e.record(a)
	if e.notify != nil {
		e.notify.ActivationEnded(a)
	}
}

func (e *Engine) record(a Activation) {
	if e.rec == nil {
		return
	}
	if err := e.rec.Record(a); err != nil {
		e.log.Error("recording activation of %q: %v", a.Title, err)
	}
}

func (e *Engine) resetAll(now time.Time) {
	for _, t := range e.timers {
		t.Reset(now)
	}
	ResolveOverlaps(e.timers)
}

func (e *Engine) refreshGeometries() {
	if e.geoSource == nil {
		return
	}
	geos, err := e.geoSource.Current()
	if err != nil {
		e.log.Warning("querying monitor geometry: %v", err)
		return
	}
	e.geometries = geos
}

// RequestStatus asks the engine for a status report and waits up to one
// second for the answer. It returns false when the engine did not respond
// in time, typically because an overlay is blocking the loop; callers
// treat that as "no response", not as an error.
func (e *Engine) RequestStatus() (StatusSnapshot, bool) {
	// Drop a stale response left behind by an earlier request that timed
	// out after the engine eventually answered it.
	select {
	case <-e.statusCh:
	default:
	}
	e.box.Push(StatusRequest{})
	select {
	case snap := <-e.statusCh:
		return snap, true
	case <-time.After(statusWait):
		return StatusSnapshot{}, false
	case <-e.done:
		return StatusSnapshot{}, false
	}
}

// Reset restarts every timer one full period from now. Fire-and-forget.
func (e *Engine) Reset() {
	e.box.Push(ResetRequest{})
}

// RefreshGeometry makes the engine re-query its geometry source before the
// next overlay. Fire-and-forget.
func (e *Engine) RefreshGeometry() {
	e.box.Push(RefreshGeometryRequest{})
}

// Quit stops the engine. If an overlay is on screen the session is told to
// close immediately so the loop can observe the shutdown message instead
// of waiting out the overlay's duration.
func (e *Engine) Quit() {
	e.box.Push(ShutdownRequest{})
	if e.session != nil {
		e.session.ForceClose()
	}
}
