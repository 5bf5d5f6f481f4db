package server

import (
	"encoding/json"

	"github.com/blinktimer/blinktimer/common"
)

// HandlerFunc is the signature of socket request handlers. It receives the
// synchronized connection and the raw JSON request body, and returns the
// response's update type, its payload, and any error to surface to the
// client.
type HandlerFunc func(
	conn *SyncConn,
	body json.RawMessage,
) (
	common.UpdateType,
	any,
	error,
)
