package blinklib

import (
	"testing"
	"time"
)

func makeTimers(now time.Time, specs []struct {
	period, duration, next time.Duration
}) []*TimerState {
	timers := make([]*TimerState, 0, len(specs))
	for i, s := range specs {
		timers = append(timers, &TimerState{
			Def: &TimerDefinition{
				Title:    string(rune('A' + i)),
				Period:   s.period,
				Duration: s.duration,
			},
			NextTime: now.Add(s.next),
		})
	}
	return timers
}

func TestResolveOverlapsPushesLowerPriority(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	// Both due at the same instant; the first definition wins and the
	// second moves exactly one of its periods forward.
	timers := makeTimers(now, []struct {
		period, duration, next time.Duration
	}{
		{60 * time.Second, 5 * time.Second, 60 * time.Second},
		{30 * time.Second, 2 * time.Second, 60 * time.Second},
	})

	ResolveOverlaps(timers)

	if got, want := timers[0].NextTime, now.Add(60*time.Second); !got.Equal(want) {
		t.Errorf("higher priority moved: %v, want %v", got, want)
	}
	if got, want := timers[1].NextTime, now.Add(90*time.Second); !got.Equal(want) {
		t.Errorf("lower priority = %v, want %v", got, want)
	}
}

func TestResolveOverlapsTouchingCountsAsConflict(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	// B's window would end exactly where A's begins. Back to back overlays
	// still conflict, so B moves.
	timers := makeTimers(now, []struct {
		period, duration, next time.Duration
	}{
		{60 * time.Second, 5 * time.Second, 60 * time.Second},
		{30 * time.Second, 2 * time.Second, 58 * time.Second},
	})

	ResolveOverlaps(timers)

	if got, want := timers[1].NextTime, now.Add(88*time.Second); !got.Equal(want) {
		t.Errorf("touching window not pushed: %v, want %v", got, want)
	}
}

func TestResolveOverlapsDisjointSetUntouched(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	timers := makeTimers(now, []struct {
		period, duration, next time.Duration
	}{
		{60 * time.Second, 5 * time.Second, 60 * time.Second},
		{30 * time.Second, 2 * time.Second, 30 * time.Second},
	})
	before := []time.Time{timers[0].NextTime, timers[1].NextTime}

	ResolveOverlaps(timers)

	for i, want := range before {
		if !timers[i].NextTime.Equal(want) {
			t.Errorf("timer %d moved from %v to %v", i, want, timers[i].NextTime)
		}
	}
}

func TestResolveOverlapsResultIsDisjoint(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	// Aggressive periods force cascading pushes across three priorities.
	timers := makeTimers(now, []struct {
		period, duration, next time.Duration
	}{
		{45 * time.Second, 10 * time.Second, 45 * time.Second},
		{30 * time.Second, 5 * time.Second, 45 * time.Second},
		{20 * time.Second, 3 * time.Second, 40 * time.Second},
	})

	ResolveOverlaps(timers)

	for i := 1; i < len(timers); i++ {
		for j := 0; j < i; j++ {
			if overlaps(timers[i], timers[j]) {
				t.Errorf("timers %d and %d still overlap: [%v,%v] vs [%v,%v]",
					i, j,
					timers[i].NextTime, timers[i].FinishTime(),
					timers[j].NextTime, timers[j].FinishTime())
			}
		}
	}
}

func TestResolveOverlapsIdempotent(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	timers := makeTimers(now, []struct {
		period, duration, next time.Duration
	}{
		{45 * time.Second, 10 * time.Second, 45 * time.Second},
		{30 * time.Second, 5 * time.Second, 45 * time.Second},
		{20 * time.Second, 3 * time.Second, 40 * time.Second},
	})

	ResolveOverlaps(timers)
	first := make([]time.Time, len(timers))
	for i, ts := range timers {
		first[i] = ts.NextTime
	}

	ResolveOverlaps(timers)
	for i, ts := range timers {
		if !ts.NextTime.Equal(first[i]) {
			t.Errorf("second pass moved timer %d from %v to %v", i, first[i], ts.NextTime)
		}
	}
}
