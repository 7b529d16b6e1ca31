package booklab

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/viant/booklab/logs"
	"github.com/viant/booklab/policy"
	"github.com/viant/booklab/service/action/python"
	"github.com/viant/booklab/service/meta"
)

// ConfigEnv names the environment variable holding the configuration URL
const ConfigEnv = "BOOKLAB_CONFIG"

// Config is a serialisable representation of the notebook configuration.
// The zero-value of every nested section inherits its package defaults.
type Config struct {
	Pace         time.Duration  `json:"pace" yaml:"pace"`
	PreviewLines int            `json:"previewLines" yaml:"previewLines"`
	NotesFile    string         `json:"notesFile" yaml:"notesFile"`
	HistoryFile  string         `json:"historyFile" yaml:"historyFile"`
	Python       *python.Config `json:"python,omitempty" yaml:"python,omitempty"`
	Policy       *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
	Log          *logs.Config   `json:"log,omitempty" yaml:"log,omitempty"`
	Tracing      TracingConfig  `json:"tracing" yaml:"tracing"`
}

// TracingConfig enables the OpenTelemetry stdout exporter
type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"` // stdout when empty
}

// DefaultConfig returns a Config populated with the default values
func DefaultConfig() *Config {
	return &Config{
		Pace:         time.Second,
		PreviewLines: 10,
		NotesFile:    "notes.pybook",
		HistoryFile:  "~/.booklab_history",
		Python:       python.DefaultConfig(),
		Policy:       &policy.Config{Mode: policy.ModeAuto},
		Log:          logs.DefaultConfig(),
	}
}

// Init fills unset fields with defaults
func (c *Config) Init() {
	defaults := DefaultConfig()
	if c.PreviewLines == 0 {
		c.PreviewLines = defaults.PreviewLines
	}
	if c.NotesFile == "" {
		c.NotesFile = defaults.NotesFile
	}
	if c.Python == nil {
		c.Python = defaults.Python
	}
	c.Python.Init()
	if c.Policy == nil {
		c.Policy = defaults.Policy
	}
	if c.Log == nil {
		c.Log = defaults.Log
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Pace < 0 {
		errs = append(errs, fmt.Errorf("pace must be >= 0"))
	}
	if c.PreviewLines < 0 {
		errs = append(errs, fmt.Errorf("previewLines must be >= 0"))
	}
	if c.Python != nil {
		if err := c.Python.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("python: %w", err))
		}
	}
	if err := c.Policy.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("policy: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	return errors.Join(errs...)
}

// LoadConfig loads YAML configuration from any afs URL over the defaults
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	ret := DefaultConfig()
	if err := meta.New(nil).Load(ctx, ExpandHome(URL), ret); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	ret.Init()
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}

// ConfigURL returns $BOOKLAB_CONFIG or ~/.booklab.yaml
func ConfigURL() string {
	if URL := os.Getenv(ConfigEnv); URL != "" {
		return URL
	}
	return "~/.booklab.yaml"
}

// LoadDefaultConfig loads ConfigURL when it exists, otherwise returns defaults.
// An explicitly configured URL must exist.
func LoadDefaultConfig(ctx context.Context) (*Config, error) {
	URL := ConfigURL()
	if os.Getenv(ConfigEnv) == "" && !meta.New(nil).Exists(ctx, ExpandHome(URL)) {
		return DefaultConfig(), nil
	}
	return LoadConfig(ctx, URL)
}

// ExpandHome replaces a leading ~ with the user home directory
func ExpandHome(location string) string {
	if !strings.HasPrefix(location, "~") {
		return location
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return location
	}
	return filepath.Join(home, strings.TrimPrefix(location, "~"))
}
