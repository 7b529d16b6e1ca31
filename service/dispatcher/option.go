package dispatcher

import (
	"log/slog"
)

// Listener is invoked once an action completes (regardless of whether it
// returned an error or not).
type Listener func(service, method string, input, output interface{})

// Option is used to customise the dispatcher instance.
type Option func(*Service)

// WithListener sets the listener invoked after every action call.
func WithListener(l Listener) Option {
	return func(s *Service) {
		s.listener = l
	}
}

// WithLogger sets the logger used for per-cell debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPreviewLines sets the number of lines shown by preview.
func WithPreviewLines(lines int) Option {
	return func(s *Service) {
		if lines > 0 {
			s.previewLines = lines
		}
	}
}

// WithNotesFile sets the file written by save:file.
func WithNotesFile(location string) Option {
	return func(s *Service) {
		if location != "" {
			s.notesFile = location
		}
	}
}

// WithShellTimeout sets the timeout for shell commands.
func WithShellTimeout(timeoutMs int) Option {
	return func(s *Service) {
		s.shellTimeoutMs = timeoutMs
	}
}
