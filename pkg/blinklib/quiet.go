package blinklib

import (
	"fmt"
	"time"

	"github.com/adhocore/gronx"
)

// QuietSchedule suppresses overlay activations during configured windows.
// Each window is a standard cron expression; a timer coming due at an
// instant where any expression is due gets rescheduled silently instead of
// interrupting the user. Expressions have minute granularity, so a window
// like "* 22-23 * * *" covers 22:00 through 23:59.
type QuietSchedule struct {
	exprs []string
	gron  *gronx.Gronx
}

// NewQuietSchedule validates the given cron expressions and builds a
// schedule from them. An empty list yields a schedule that is never active.
func NewQuietSchedule(exprs []string) (*QuietSchedule, error) {
	g := gronx.New()
	for _, expr := range exprs {
		if !g.IsValid(expr) {
			return nil, fmt.Errorf("invalid quiet window expression %q", expr)
		}
	}
	return &QuietSchedule{exprs: exprs, gron: g}, nil
}

// Active reports whether now falls inside any quiet window. A nil schedule
// is never active.
func (q *QuietSchedule) Active(now time.Time) bool {
	if q == nil {
		return false
	}
	for _, expr := range q.exprs {
		due, err := q.gron.IsDue(expr, now)
		if err == nil && due {
			return true
		}
	}
	return false
}
