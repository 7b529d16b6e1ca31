package logs

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config defines log destinations
type Config struct {
	Level   string `yaml:"level,omitempty" json:"level,omitempty"`
	File    string `yaml:"file,omitempty" json:"file,omitempty"`       // JSON log file, appended
	Journal bool   `yaml:"journal,omitempty" json:"journal,omitempty"` // also send records to the systemd journal
}

// DefaultConfig logs warnings and errors to the terminal only
func DefaultConfig() *Config {
	return &Config{Level: "warn"}
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unsupported log level: %q", level)
}

// Validate checks the level
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	_, err := ParseLevel(c.Level)
	return err
}
