package internal

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable timer durations. It lives in a YAML file
// beside the session history.
type Config struct {
	PomodoroMinutes   int  `yaml:"pomodoro_minutes"`
	ShortBreakMinutes int  `yaml:"short_break_minutes"`
	LongBreakMinutes  int  `yaml:"long_break_minutes"`
	LongBreakInterval int  `yaml:"long_break_interval"`
	AutoStartBreaks   bool `yaml:"auto_start_breaks"`
	AutoStartWork     bool `yaml:"auto_start_work"`
}

// DefaultConfig returns the stock pomodoro settings.
func DefaultConfig() Config {
	return Config{
		PomodoroMinutes:   25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakInterval: 4,
		AutoStartBreaks:   false,
		AutoStartWork:     false,
	}
}

// PomodoroTarget returns the configured pomodoro length.
func (c Config) PomodoroTarget() time.Duration {
	return time.Duration(c.PomodoroMinutes) * time.Minute
}

// ShortBreakTarget returns the configured short break length.
func (c Config) ShortBreakTarget() time.Duration {
	return time.Duration(c.ShortBreakMinutes) * time.Minute
}

// LongBreakTarget returns the configured long break length.
func (c Config) LongBreakTarget() time.Duration {
	return time.Duration(c.LongBreakMinutes) * time.Minute
}

func (c Config) validate() error {
	if c.PomodoroMinutes <= 0 {
		return fmt.Errorf("pomodoro_minutes must be positive, got %d", c.PomodoroMinutes)
	}
	if c.ShortBreakMinutes <= 0 {
		return fmt.Errorf("short_break_minutes must be positive, got %d", c.ShortBreakMinutes)
	}
	if c.LongBreakMinutes <= 0 {
		return fmt.Errorf("long_break_minutes must be positive, got %d", c.LongBreakMinutes)
	}
	if c.LongBreakInterval <= 0 {
		return fmt.Errorf("long_break_interval must be positive, got %d", c.LongBreakInterval)
	}
	return nil
}

// LoadConfig reads the config from path. A missing file gets the defaults
// written and returned; malformed YAML or out-of-range values are a
// CorruptDataError.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := SaveConfig(path, cfg); err != nil {
				return Config{}, err
			}
			return cfg, nil
		}
		return Config{}, &PersistenceError{Path: path, Op: "read", Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &CorruptDataError{Path: path, Err: err}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, &CorruptDataError{Path: path, Err: err}
	}

	return cfg, nil
}

// SaveConfig writes cfg to path.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return &PersistenceError{Path: path, Op: "marshal", Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &PersistenceError{Path: path, Op: "write", Err: err}
	}
	return nil
}
