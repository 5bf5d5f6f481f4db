// Package blinklib implements the break-timer scheduling core for
// blinktimer. It tracks a fixed, priority-ordered set of recurring timers,
// decides which one fires next, pushes lower-priority timers out of the way
// of higher-priority ones, detects system suspend/resume gaps, and talks to
// the control surface through message queues while the blocking overlay
// session runs inside the engine goroutine's own call stack.
//
// The engine renders nothing itself. Overlay display, monitor enumeration
// and activation persistence are supplied through the Session,
// GeometrySource and Recorder interfaces.
package blinklib
