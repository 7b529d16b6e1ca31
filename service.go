package booklab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/viant/booklab/extension"
	"github.com/viant/booklab/internal/clock"
	"github.com/viant/booklab/internal/idgen"
	"github.com/viant/booklab/logs"
	"github.com/viant/booklab/model/command"
	"github.com/viant/booklab/model/session"
	"github.com/viant/booklab/model/types"
	"github.com/viant/booklab/policy"
	"github.com/viant/booklab/progress"
	"github.com/viant/booklab/service/action/input"
	"github.com/viant/booklab/service/action/printer"
	"github.com/viant/booklab/service/action/python"
	"github.com/viant/booklab/service/action/system/diff"
	"github.com/viant/booklab/service/action/system/exec"
	"github.com/viant/booklab/service/action/system/host"
	"github.com/viant/booklab/service/action/system/storage"
	"github.com/viant/booklab/service/dispatcher"
	"github.com/viant/booklab/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	Name    = "booklab"
	Version = "0.1.0"
)

// DefaultScript is offered when PyBook asks for the script name
const DefaultScript = "script.py"

// Service represents a notebook REPL of one variant
type Service struct {
	variant           command.Variant
	config            *Config
	in                io.Reader
	out               io.Writer
	reader            input.LineReader
	logger            *slog.Logger
	logCloser         *logs.Logger
	workdir           string
	extensionServices []types.Service
	dispatcherOptions []dispatcher.Option
	tracingExporter   sdktrace.SpanExporter

	parser     *command.Parser
	session    *session.Session
	actions    *extension.Actions
	printer    *printer.Service
	input      *input.Service
	exec       *exec.Service
	policy     *policy.Policy
	dispatcher *dispatcher.Service
}

// New creates a notebook service for variant
func New(variant command.Variant, options ...Option) (*Service, error) {
	ret := &Service{variant: variant, config: DefaultConfig()}
	for _, option := range options {
		option(ret)
	}
	if err := ret.init(); err != nil {
		_ = ret.Close(context.Background())
		return nil, err
	}
	return ret, nil
}

func (s *Service) init() error {
	s.config.Init()
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.logger == nil {
		logger, err := logs.New(s.config.Log, os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		s.logCloser = logger
		s.logger = logger.Logger
	}
	if s.tracingExporter != nil {
		if err := tracing.InitWithExporter(Name, Version, s.tracingExporter); err != nil {
			s.logger.Warn("tracing init", "error", err)
		}
	} else if s.config.Tracing.Enabled {
		if err := tracing.Init(Name, Version, ExpandHome(s.config.Tracing.File)); err != nil {
			s.logger.Warn("tracing init", "error", err)
		}
	}
	if err := s.ensureReader(); err != nil {
		return err
	}

	if s.workdir == "" {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		s.workdir = dir
	}
	s.session = session.New(idgen.New(), s.workdir)
	s.parser = command.NewParser(s.variant)

	s.printer = printer.New(s.out)
	s.input = input.NewWithReader(s.reader)
	s.exec = exec.New()
	s.actions = extension.NewActions(
		s.printer,
		s.input,
		s.exec,
		storage.New(),
		diff.New(),
		host.New(),
		python.New(s.exec, s.config.Python),
	)
	for _, service := range s.extensionServices {
		s.actions.Register(service)
	}

	s.policy = policy.FromConfig(s.config.Policy)
	s.policy.Ask = s.confirm

	opts := []dispatcher.Option{
		dispatcher.WithLogger(s.logger),
		dispatcher.WithPreviewLines(s.config.PreviewLines),
		dispatcher.WithNotesFile(s.config.NotesFile),
		dispatcher.WithShellTimeout(s.config.Python.TimeoutMs),
	}
	s.dispatcher = dispatcher.New(s.variant, s.actions, s.printer, append(opts, s.dispatcherOptions...)...)
	return nil
}

// ensureReader picks readline on a terminal and a buffered stream otherwise
func (s *Service) ensureReader() error {
	if s.reader != nil {
		return nil
	}
	if s.in == nil && input.IsTerminal() {
		reader, err := input.NewTerminalReader(ExpandHome(s.config.HistoryFile))
		if err == nil {
			s.reader = reader
			return nil
		}
		s.logger.Warn("readline unavailable", "error", err)
	}
	in := s.in
	if in == nil {
		in = os.Stdin
	}
	s.reader = input.NewStreamReader(in, s.out)
	return nil
}

// confirm asks the user to approve a guarded command
func (s *Service) confirm(ctx context.Context, command, arg string, _ *policy.Policy) bool {
	output := &input.ConfirmOutput{}
	message := fmt.Sprintf("Run %s: %s?", command, arg)
	if err := s.input.Confirm(ctx, &input.ConfirmInput{Message: message}, output); err != nil {
		return false
	}
	return output.Confirmed
}

// Session returns the notebook session
func (s *Service) Session() *session.Session {
	return s.session
}

// Actions returns the action registry
func (s *Service) Actions() *extension.Actions {
	return s.actions
}

// Run reads and executes cells until exit, end of input or an interrupt
func (s *Service) Run(ctx context.Context) error {
	ctx, tracker := progress.WithNewTracker(ctx, s.session.ID, string(s.variant), nil)
	ctx = policy.WithPolicy(ctx, s.policy)

	if s.variant == command.PyBook {
		s.printer.Title("Welcome to PyBook - The Advanced Terminal Python Notebook")
		script, err := s.askScript(ctx)
		if err != nil {
			return err
		}
		if !strings.HasSuffix(script, ".py") {
			s.printer.Error(errors.New("The file must have a .py extension."))
			return nil
		}
		s.session.Script = script
	} else {
		s.printer.Panel("", "Welcome to BookLAB! Type 'help' for commands.")
	}

	for {
		line, err := s.reader.ReadLine(s.prompt())
		if err != nil {
			if errors.Is(err, input.ErrInterrupt) || errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if err = s.Execute(ctx, line); err != nil {
			break
		}
	}
	if s.variant == command.PyBook {
		s.printer.Warn("Exiting PyBook.")
	}
	summary := tracker.Summary(clock.Now())
	s.logger.InfoContext(ctx, "session finished", "session", s.session.ID, "summary", summary)
	s.printer.Plain(summary)
	return nil
}

func (s *Service) askScript(ctx context.Context) (string, error) {
	output := &input.AskOutput{}
	err := s.input.Ask(ctx, &input.AskInput{
		Message: "Enter the filename including extension (e.g., script.py)",
		Default: DefaultScript,
	}, output)
	if errors.Is(err, input.ErrInterrupt) {
		return "", nil
	}
	return output.Text, err
}

func (s *Service) prompt() string {
	if s.variant == command.PyBook {
		return fmt.Sprintf("In Cell %d: ", s.session.Cell)
	}
	return fmt.Sprintf("Cell %d: ", s.session.Cell)
}

// Execute runs one cell. Errors are printed and swallowed; only types.ErrExit is returned.
// Blank lines neither print nor advance the cell counter.
func (s *Service) Execute(ctx context.Context, line string) error {
	if policy.FromContext(ctx) == nil {
		ctx = policy.WithPolicy(ctx, s.policy)
	}
	cmd, err := s.parser.Parse(line)
	if errors.Is(err, command.ErrEmpty) {
		return nil
	}
	if err != nil {
		progress.UpdateCtx(ctx, progress.Delta{Total: 1, Failed: 1})
		if errors.Is(err, types.ErrUnknownCommand) && s.variant == command.PyBook {
			err = fmt.Errorf("%w. Type 'help' for a list of commands", err)
		}
	} else {
		err = s.dispatcher.Dispatch(ctx, s.session, cmd)
	}
	if errors.Is(err, types.ErrExit) {
		return err
	}
	if err != nil {
		s.printer.Error(err)
	}
	s.session.Tick()
	clock.Sleep(ctx, s.config.Pace)
	return nil
}

// Close releases shell sessions, the line reader, tracing and log files
func (s *Service) Close(ctx context.Context) error {
	var errs []error
	if s.exec != nil {
		errs = append(errs, s.exec.Close(ctx))
	}
	if s.reader != nil {
		errs = append(errs, s.reader.Close())
	}
	errs = append(errs, tracing.Shutdown(ctx))
	if s.logCloser != nil {
		errs = append(errs, s.logCloser.Close())
	}
	return errors.Join(errs...)
}
