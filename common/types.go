package common

import "time"

// TimerStatus is one timer row of a status response. Line carries the
// human-readable form; the numeric fields let clients render their own
// views (e.g. progress bars).
type TimerStatus struct {
	Title      string `json:"title"`
	RemainingS int64  `json:"remaining_s"`
	PeriodS    int64  `json:"period_s"`
	Line       string `json:"line"`
}

// StatusResponse is the scheduler's status report: the multi-line report
// the tray menu shows, plus per-timer detail.
type StatusResponse struct {
	Report string        `json:"report"`
	Timers []TimerStatus `json:"timers,omitempty"`
}

// HistoryParams limits how many past activations a history request
// returns. Zero means the server default.
type HistoryParams struct {
	Limit int `json:"limit,omitempty"`
}

// HistoryEntry is one recorded overlay activation.
type HistoryEntry struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Dismissed bool      `json:"dismissed"`
	Skipped   bool      `json:"skipped"`
}

// HistoryResponse lists recent activations, newest first.
type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
}

// GeometryInfo describes one monitor in the virtual screen.
type GeometryInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// GeometryResponse reports the monitor list cached after a refresh.
type GeometryResponse struct {
	Monitors []GeometryInfo `json:"monitors"`
}

// VersionResponse reports the daemon's build information.
type VersionResponse struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildType string `json:"build_type,omitempty"`
}
