package cmd

const DESCRIPTION = `
Blinktimer keeps your eyes and posture honest. It runs one or more
recurring timers and takes over the whole screen when a break is due,
until you click the overlay away or its duration runs out. Higher
priority breaks are never delayed by lower priority ones.
`

const (
	DaemonDescription = `The daemon command runs the break scheduler in the
foreground. It loads timers from config.json, shows the
overlay when a break is due, and answers the other
subcommands over a unix socket.

Example:
        blinktimer daemon

`
	StatusDescription = `The status command prints one line per timer with the
time remaining until its next break. While an overlay is
on screen the scheduler cannot answer and nothing is
printed.

Example:
        blinktimer status

`
	WatchDescription = `The watch command renders a live progress bar per timer,
filling up as its next break approaches. Interrupt with
Ctrl-C to leave.

Example:
        blinktimer watch

`
	ResetDescription = `The reset command restarts every timer one full period
from now, as if the daemon had just started.

Example:
        blinktimer reset

`
	RefreshDescription = `The refresh command makes the daemon re-enumerate the
connected monitors so the next overlay covers the current
screen layout. Run it after plugging or unplugging a
display.

Example:
        blinktimer refresh

`
	HistoryDescription = `The history command lists recent break activations,
newest first, including whether each one was dismissed
early or skipped by a quiet window.

Example:
        blinktimer history --limit 50

`
	StopDescription = `The stop command shuts the daemon down. An overlay that
is currently on screen is closed immediately instead of
waiting out its duration.

Example:
        blinktimer stop

`
)
