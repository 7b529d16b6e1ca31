package booklab

import (
	"io"
	"log/slog"

	"github.com/viant/booklab/model/types"
	"github.com/viant/booklab/service/action/input"
	"github.com/viant/booklab/service/dispatcher"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the notebook service
type Option func(s *Service)

// WithConfig sets the configuration; nil keeps the defaults
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithIO sets the streams used for prompts and output
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Service) {
		s.in = in
		s.out = out
	}
}

// WithReader sets the line reader, for example a readline terminal
func WithReader(reader input.LineReader) Option {
	return func(s *Service) {
		s.reader = reader
	}
}

// WithLogger sets the logger, replacing the one built from Config.Log
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithWorkdir sets the initial working directory; the process directory is used by default
func WithWorkdir(dir string) Option {
	return func(s *Service) {
		s.workdir = dir
	}
}

// WithExtensionServices registers additional action services
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = append(s.extensionServices, services...)
	}
}

// WithDispatcherOptions lets the caller supply additional options passed to
// dispatcher.New (e.g. an action listener).
func WithDispatcherOptions(opts ...dispatcher.Option) Option {
	return func(s *Service) {
		s.dispatcherOptions = append(s.dispatcherOptions, opts...)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
// The first successful initialisation wins.
func WithTracingExporter(exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingExporter = exporter
	}
}
