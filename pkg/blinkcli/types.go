package blinkcli

import (
	"encoding/json"

	"github.com/blinktimer/blinktimer/common"
)

// Request is the client side of the control socket's wire format.
type Request struct {
	Method  common.UpdateType `json:"method"`
	Message any               `json:"message,omitempty"`
}

// Response mirrors the daemon's reply envelope.
type Response struct {
	Ok     bool    `json:"ok"`
	Error  string  `json:"error,omitempty"`
	Update *Update `json:"update,omitempty"`
}

// Update carries the typed payload of a successful response.
type Update struct {
	Type    common.UpdateType `json:"type"`
	Message json.RawMessage   `json:"message,omitempty"`
}
