package blinklib

// Outcome reports how a display session ended.
type Outcome struct {
	// Dismissed is true when the user closed the overlay before its full
	// duration elapsed.
	Dismissed bool
}

// Session shows the full-screen break overlay. Show blocks the calling
// goroutine until the user dismisses the overlay or the definition's
// duration elapses; the engine deliberately services nothing else while it
// blocks. ForceClose may be called from any goroutine to make a blocked
// Show return immediately; calling it with no overlay on screen is a no-op.
type Session interface {
	Show(def *TimerDefinition, geometries []Geometry) (Outcome, error)
	ForceClose()
}
