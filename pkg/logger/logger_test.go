package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStandardLoggerPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := NewStandardLogger(log.New(&buf, "", 0))

	l.Info("started %s", "scheduler")
	l.Warning("skipped entry %d", 3)
	l.Error("boom: %v", "nope")

	out := buf.String()
	for _, want := range []string{
		"[INFO] started scheduler",
		"[WARNING] skipped entry 3",
		"[ERROR] boom: nope",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	l := NewNopLogger()
	l.Info("ignored")
	l.Warning("ignored")
	l.Error("ignored")
	if err := l.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestMockLoggerRecords(t *testing.T) {
	m := NewMockLogger()
	m.Info("a=%d", 1)
	m.Warning("b")
	m.Error("c")
	_ = m.Close()

	if len(m.InfoCalls) != 1 || m.InfoCalls[0] != "a=1" {
		t.Errorf("InfoCalls = %v", m.InfoCalls)
	}
	if len(m.WarningCalls) != 1 || m.WarningCalls[0] != "b" {
		t.Errorf("WarningCalls = %v", m.WarningCalls)
	}
	if len(m.ErrorCalls) != 1 || m.ErrorCalls[0] != "c" {
		t.Errorf("ErrorCalls = %v", m.ErrorCalls)
	}
	if !m.CloseCalled {
		t.Error("CloseCalled = false")
	}
}

func TestMultiLoggerBroadcasts(t *testing.T) {
	a, b := NewMockLogger(), NewMockLogger()
	m := NewMultiLogger(a, b)

	m.Info("x")
	m.Warning("y")
	m.Error("z")
	_ = m.Close()

	for _, mock := range []*MockLogger{a, b} {
		if len(mock.InfoCalls) != 1 || len(mock.WarningCalls) != 1 || len(mock.ErrorCalls) != 1 {
			t.Errorf("backend missed messages: %+v", mock)
		}
		if !mock.CloseCalled {
			t.Error("backend not closed")
		}
	}
}
