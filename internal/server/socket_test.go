package server

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSocketPathDefault(t *testing.T) {
	t.Setenv(SocketPathEnv, "")
	p := SocketPath()
	if filepath.Base(p) != "blinkd.sock" {
		t.Errorf("default socket path = %q", p)
	}
}

func TestSocketPathOverride(t *testing.T) {
	t.Setenv(SocketPathEnv, "/run/user/1000/blinkd-test.sock")
	if p := SocketPath(); !strings.HasSuffix(p, "blinkd-test.sock") {
		t.Errorf("override ignored: %q", p)
	}
}
