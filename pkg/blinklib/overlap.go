package blinklib

// ResolveOverlaps mutates NextTime values in place so that no timer's
// activation interval [NextTime, FinishTime) overlaps or touches the
// interval of any higher-priority (lower index) timer. The pass is greedy:
// each timer is pushed forward in whole-period steps until it clears every
// timer above it. Because higher-priority timers are fixed before the
// timers below them, and a higher-priority timer never has a shorter
// duration, a single forward pass converges and running it again on the
// result is a no-op.
//
// Pathological period/duration ratios can push a low-priority timer
// arbitrarily far into the future. That is accepted behavior: priority
// preservation wins over packing optimality.
func ResolveOverlaps(timers []*TimerState) {
	for i := 1; i < len(timers); i++ {
		lower := timers[i]
		for j := 0; j < i; j++ {
			higher := timers[j]
			for overlaps(lower, higher) {
				lower.Reschedule()
			}
		}
	}
}

// overlaps reports whether the two activation intervals intersect or touch
// end to end.
func overlaps(t, h *TimerState) bool {
	return !t.FinishTime().Before(h.NextTime) && !t.NextTime.After(h.FinishTime())
}
