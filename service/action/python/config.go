package python

import (
	"errors"
	"strings"
)

// Config defines the interpreter and tools used for PyBook cells
type Config struct {
	Interpreter string `yaml:"interpreter,omitempty" json:"interpreter,omitempty"`
	Pip         string `yaml:"pip,omitempty" json:"pip,omitempty"`
	Formatter   string `yaml:"formatter,omitempty" json:"formatter,omitempty"` // command reading a file argument and printing formatted code
	TimeoutMs   int    `yaml:"timeoutMs,omitempty" json:"timeoutMs,omitempty"` // zero runs child processes without a time limit
}

// DefaultConfig returns the python3 / pip / autopep8 setup
func DefaultConfig() *Config {
	return &Config{
		Interpreter: "python3",
		Pip:         "pip",
		Formatter:   "python3 -m autopep8",
	}
}

// Init fills unset fields with defaults
func (c *Config) Init() {
	defaults := DefaultConfig()
	if c.Interpreter == "" {
		c.Interpreter = defaults.Interpreter
	}
	if c.Pip == "" {
		c.Pip = defaults.Pip
	}
	if c.Formatter == "" {
		c.Formatter = defaults.Formatter
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Interpreter) == "" {
		errs = append(errs, errors.New("python.interpreter is required"))
	}
	if c.TimeoutMs < 0 {
		errs = append(errs, errors.New("python.timeoutMs must not be negative"))
	}
	return errors.Join(errs...)
}
