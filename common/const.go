// Package common holds the wire-level constants and payload types shared
// by the blinktimer daemon and its clients.
package common

// UpdateType identifies a control method on the daemon socket.
type UpdateType string

const (
	UPDATE_STATUS      UpdateType = "status"
	UPDATE_RESET       UpdateType = "reset"
	UPDATE_GEOMETRY    UpdateType = "refresh_geometry"
	UPDATE_HISTORY     UpdateType = "history"
	UPDATE_STOP_DAEMON UpdateType = "stop_daemon"
	UPDATE_VERSION     UpdateType = "version"
)
