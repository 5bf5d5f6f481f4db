package blinkcli

import (
	"io"
	"net"
	"os"
	"path/filepath"
)

// SocketPathEnv matches the daemon's override variable so a client always
// reaches the daemon it was started against.
const SocketPathEnv = "BLINKD_SOCKET_PATH"

// SocketPath returns the daemon's unix socket path.
func SocketPath() string {
	if path := os.Getenv(SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "blinkd.sock")
}

// Frames are a 4-byte little-endian length followed by a JSON body,
// matching the daemon's framing.

func intToBytes(v uint32) []byte {
	b := make([]byte, 4)
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	return b
}

func bytesToInt(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func read(conn net.Conn) ([]byte, error) {
	head := make([]byte, 4)
	if _, err := io.ReadFull(conn, head); err != nil {
		return nil, err
	}
	buf := make([]byte, bytesToInt(head))
	if _, err := io.ReadFull(conn, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func write(conn net.Conn, b []byte) error {
	if _, err := conn.Write(intToBytes(uint32(len(b)))); err != nil {
		return err
	}
	_, err := conn.Write(b)
	return err
}
