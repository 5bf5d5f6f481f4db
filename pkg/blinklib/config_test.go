package blinklib

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/blinktimer/blinktimer/pkg/logger"
)

func writeConfig(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := logger.NewMockLogger()

	cfg := LoadConfig(fs, "/etc/blinktimer/config.json", log)

	if len(cfg.Timers) != 1 || cfg.Timers[0].Title != "Blink" {
		t.Fatalf("missing file did not yield defaults: %+v", cfg.Timers)
	}
	if cfg.Timers[0].Period != 60*time.Second || cfg.Timers[0].Duration != 2*time.Second {
		t.Errorf("default timer = %+v", cfg.Timers[0])
	}
	if len(log.InfoCalls) == 0 {
		t.Error("missing config file not logged")
	}
}

func TestLoadConfigCorruptFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := logger.NewMockLogger()
	writeConfig(t, fs, "/c/config.json", "{not json")

	cfg := LoadConfig(fs, "/c/config.json", log)

	if len(cfg.Timers) != 1 || cfg.Timers[0].Title != "Blink" {
		t.Fatalf("corrupt file did not yield defaults: %+v", cfg.Timers)
	}
	if len(log.WarningCalls) == 0 {
		t.Error("corrupt config not logged")
	}
}

func TestLoadConfigBareArray(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/c/config.json", `[
		{"title": "Blink", "period": 60, "duration": 2, "foreground": "#FFF", "background": "#000"},
		{"title": "Stretch", "period": 1800, "duration": 60}
	]`)

	cfg := LoadConfig(fs, "/c/config.json", logger.NewNopLogger())

	if len(cfg.Timers) != 2 {
		t.Fatalf("got %d timers, want 2", len(cfg.Timers))
	}
	if cfg.Timers[0].Title != "Blink" || cfg.Timers[1].Title != "Stretch" {
		t.Errorf("timer order: %q, %q", cfg.Timers[0].Title, cfg.Timers[1].Title)
	}
	if cfg.Timers[1].Period != 30*time.Minute {
		t.Errorf("Stretch period = %v, want 30m", cfg.Timers[1].Period)
	}
	if cfg.Timers[0].Foreground != "#FFF" || cfg.Timers[0].Background != "#000" {
		t.Errorf("colors not carried: %+v", cfg.Timers[0])
	}
	if len(cfg.Quiet) != 0 {
		t.Errorf("bare array produced quiet windows: %v", cfg.Quiet)
	}
}

func TestLoadConfigObjectFormWithQuiet(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/c/config.json", `{
		"timers": [{"title": "Blink", "period": 60, "duration": 2}],
		"quiet": ["* 22-23 * * *"]
	}`)

	cfg := LoadConfig(fs, "/c/config.json", logger.NewNopLogger())

	if len(cfg.Timers) != 1 || cfg.Timers[0].Title != "Blink" {
		t.Fatalf("timers = %+v", cfg.Timers)
	}
	if len(cfg.Quiet) != 1 || cfg.Quiet[0] != "* 22-23 * * *" {
		t.Errorf("quiet = %v", cfg.Quiet)
	}
}

func TestLoadConfigSkipsInvalidEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := logger.NewMockLogger()
	writeConfig(t, fs, "/c/config.json", `[
		{"title": "NoPeriod", "period": 0, "duration": 2},
		{"title": "TooLong", "period": 10, "duration": 10},
		{"title": "Good", "period": 60, "duration": 2}
	]`)

	cfg := LoadConfig(fs, "/c/config.json", log)

	if len(cfg.Timers) != 1 || cfg.Timers[0].Title != "Good" {
		t.Fatalf("invalid entries not skipped: %+v", cfg.Timers)
	}
	if len(log.WarningCalls) != 2 {
		t.Errorf("got %d warnings, want 2: %v", len(log.WarningCalls), log.WarningCalls)
	}
}

func TestLoadConfigAllInvalidUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/c/config.json", `[{"title": "Bad", "period": 5, "duration": 9}]`)

	cfg := LoadConfig(fs, "/c/config.json", logger.NewNopLogger())

	if len(cfg.Timers) != 1 || cfg.Timers[0].Title != "Blink" {
		t.Fatalf("all-invalid file did not yield defaults: %+v", cfg.Timers)
	}
}

func TestLoadConfigWarnsOnDurationOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := logger.NewMockLogger()
	// The second timer's overlay outlasts the first's: legal, but overlap
	// avoidance gets weaker, so the loader flags it.
	writeConfig(t, fs, "/c/config.json", `[
		{"title": "Blink", "period": 60, "duration": 2},
		{"title": "Stretch", "period": 1800, "duration": 60}
	]`)

	cfg := LoadConfig(fs, "/c/config.json", log)

	if len(cfg.Timers) != 2 {
		t.Fatalf("timers dropped: %+v", cfg.Timers)
	}
	found := false
	for _, w := range log.WarningCalls {
		if strings.Contains(w, "Stretch") && strings.Contains(w, "Blink") {
			found = true
		}
	}
	if !found {
		t.Errorf("duration order not flagged: %v", log.WarningCalls)
	}
}
