package blinklib

import (
	"fmt"
	"strings"
	"time"
)

// TimerDefinition is the immutable configuration of one recurring break
// timer. The order of the definition list encodes priority: index 0 is the
// highest. The engine assumes that a higher-priority timer never has a
// shorter overlay duration than a lower-priority timer it can collide with;
// the config loader warns about violations but the engine does not re-check
// it, and overlap resolution quality is unspecified when it does not hold.
type TimerDefinition struct {
	// Title is shown on the overlay and in status reports.
	Title string
	// Period is the interval between activations.
	Period time.Duration
	// Duration is how long the overlay stays up when not dismissed.
	Duration time.Duration
	// Foreground and Background are overlay colors, e.g. "#FFF".
	Foreground string
	Background string
}

// TimerState is the mutable scheduling record for one definition. It is
// owned exclusively by the engine goroutine; nothing else reads or writes
// NextTime while the engine runs.
type TimerState struct {
	Def *TimerDefinition
	// NextTime is the next instant this timer should activate.
	NextTime time.Time
}

// NewTimerStates builds the runtime state list for a definition list,
// scheduling every timer one full period after now. List order is
// preserved, so state priority matches definition priority.
func NewTimerStates(defs []*TimerDefinition, now time.Time) []*TimerState {
	states := make([]*TimerState, 0, len(defs))
	for _, def := range defs {
		states = append(states, &TimerState{Def: def, NextTime: now.Add(def.Period)})
	}
	return states
}

// Reset moves the next activation to one full period after now.
func (t *TimerState) Reset(now time.Time) {
	t.NextTime = now.Add(t.Def.Period)
}

// Reschedule pushes the next activation exactly one period later. It never
// moves NextTime backward.
func (t *TimerState) Reschedule() {
	t.NextTime = t.NextTime.Add(t.Def.Period)
}

// Remaining returns the time left until the next activation. It can be
// momentarily negative between the instant a timer comes due and the
// instant the engine services it; that is expected, not an error.
func (t *TimerState) Remaining(now time.Time) time.Duration {
	return t.NextTime.Sub(now)
}

// FinishTime returns the instant the overlay for the next activation would
// close if left undismissed.
func (t *TimerState) FinishTime() time.Time {
	return t.NextTime.Add(t.Def.Duration)
}

// Summary renders the status line for this timer:
//
//	<remaining HH:MM:SS>\t<title> (every <period HH:MM:SS>)
func (t *TimerState) Summary(now time.Time) string {
	return fmt.Sprintf("%s\t%s (every %s)",
		FormatHMS(t.Remaining(now)), t.Def.Title, FormatHMS(t.Def.Period))
}

// StatusReport renders one Summary line per timer, in priority order,
// joined by newlines.
func StatusReport(timers []*TimerState, now time.Time) string {
	lines := make([]string, 0, len(timers))
	for _, t := range timers {
		lines = append(lines, t.Summary(now))
	}
	return strings.Join(lines, "\n")
}

// FormatHMS formats a duration as HH:MM:SS. Hours grow past two digits for
// long periods; negative durations keep a leading minus sign.
func FormatHMS(d time.Duration) string {
	var sign string
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}
