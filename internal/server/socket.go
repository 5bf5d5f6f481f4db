package server

import (
	"os"
	"path/filepath"
)

// SocketPathEnv overrides where the daemon listens. Clients honor the same
// variable so a test daemon and the default one can coexist.
const SocketPathEnv = "BLINKD_SOCKET_PATH"

// SocketPath returns the daemon's unix socket path.
func SocketPath() string {
	if path := os.Getenv(SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "blinkd.sock")
}
