package blinklib

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/blinktimer/blinktimer/pkg/logger"
)

const (
	// ConfigDirEnv overrides the directory the config file is read from.
	ConfigDirEnv = "BLINKTIMER_CONFIG_DIR"

	appDirName     = "blinktimer"
	configFileName = "config.json"
)

// timerJSON mirrors one timer entry of config.json. Period and duration
// are whole seconds.
type timerJSON struct {
	Title      string `json:"title"`
	Period     int64  `json:"period"`
	Duration   int64  `json:"duration"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// configJSON is the object form of config.json. A bare JSON array of timer
// entries is also accepted; that was the file's original shape.
type configJSON struct {
	Timers []timerJSON `json:"timers"`
	Quiet  []string    `json:"quiet,omitempty"`
}

// Config is the validated daemon configuration. Timer order in the file is
// timer priority: first entry wins conflicts.
type Config struct {
	Timers []*TimerDefinition
	Quiet  []string
}

// DefaultConfig returns the built-in single "Blink" timer used whenever no
// valid configuration can be loaded.
func DefaultConfig() *Config {
	return &Config{
		Timers: []*TimerDefinition{{
			Title:      "Blink",
			Period:     60 * time.Second,
			Duration:   2 * time.Second,
			Foreground: "#FFF",
			Background: "#000",
		}},
	}
}

// ConfigPath returns the location of config.json: $BLINKTIMER_CONFIG_DIR
// when set, otherwise the blinktimer subdirectory of the user config dir.
func ConfigPath() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return filepath.Join(dir, configFileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// LoadConfig reads and validates config.json from fs. Unusable input
// degrades instead of failing: a missing file, unparseable JSON or zero
// valid timers all yield DefaultConfig, and individually invalid timer
// entries are skipped with a log line.
func LoadConfig(fs afero.Fs, path string, log logger.Logger) *Config {
	if log == nil {
		log = logger.NewNopLogger()
	}
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("config %s does not exist, using default config", path)
		} else {
			log.Warning("reading config %s: %v; using default config", path, err)
		}
		return DefaultConfig()
	}

	entries, quiet, err := parseConfig(raw)
	if err != nil {
		log.Warning("invalid config file %s: %v; using default config", path, err)
		return DefaultConfig()
	}

	var timers []*TimerDefinition
	for i, entry := range entries {
		def, err := entry.definition()
		if err != nil {
			log.Warning("invalid timer at index %d: %v", i, err)
			continue
		}
		timers = append(timers, def)
	}
	if len(timers) == 0 {
		log.Warning("no valid timers defined, using default config")
		return DefaultConfig()
	}
	warnDurationOrder(timers, log)
	return &Config{Timers: timers, Quiet: quiet}
}

// parseConfig accepts either a bare timer array or the object form with
// timers and optional quiet windows.
func parseConfig(raw []byte) ([]timerJSON, []string, error) {
	var list []timerJSON
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil, nil
	}
	var obj configJSON
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, nil, err
	}
	if obj.Timers == nil {
		return nil, nil, errors.New("config must be a timer array or an object with a timers field")
	}
	return obj.Timers, obj.Quiet, nil
}

func (e timerJSON) definition() (*TimerDefinition, error) {
	if e.Period <= 0 || e.Duration <= 0 {
		return nil, errors.New("timer period and duration must be greater than 0")
	}
	if e.Period <= e.Duration {
		return nil, fmt.Errorf("timer duration (%ds) must be less than its period (%ds)",
			e.Duration, e.Period)
	}
	return &TimerDefinition{
		Title:      e.Title,
		Period:     time.Duration(e.Period) * time.Second,
		Duration:   time.Duration(e.Duration) * time.Second,
		Foreground: e.Foreground,
		Background: e.Background,
	}, nil
}

// warnDurationOrder flags timers whose duration exceeds that of an earlier
// (higher priority) timer. Overlap resolution cannot guarantee
// collision-free packing for such sets; the timers still run.
func warnDurationOrder(timers []*TimerDefinition, log logger.Logger) {
	for i := 1; i < len(timers); i++ {
		for j := 0; j < i; j++ {
			if timers[i].Duration > timers[j].Duration {
				log.Warning("timer %q has a longer duration than higher-priority timer %q; overlap avoidance is best-effort for this pair",
					timers[i].Title, timers[j].Title)
			}
		}
	}
}
