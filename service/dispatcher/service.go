package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"time"

	"github.com/viant/booklab/extension"
	"github.com/viant/booklab/model/command"
	"github.com/viant/booklab/model/session"
	"github.com/viant/booklab/model/types"
	"github.com/viant/booklab/policy"
	"github.com/viant/booklab/progress"
	"github.com/viant/booklab/service/action/printer"
	"github.com/viant/booklab/tracing"
	"github.com/viant/structology/conv"
)

// Handler runs one command kind against the session
type Handler func(ctx context.Context, sess *session.Session, cmd *command.Command) error

// Service dispatches commands of one notebook variant
type Service struct {
	variant        command.Variant
	actions        *extension.Actions
	converter      *conv.Converter
	printer        *printer.Service
	logger         *slog.Logger
	listener       Listener
	handlers       map[command.Kind]Handler
	previewLines   int
	notesFile      string
	shellTimeoutMs int
}

// New creates a dispatcher for variant; actions must hold the services its handlers call
func New(variant command.Variant, actions *extension.Actions, out *printer.Service, opts ...Option) *Service {
	options := conv.DefaultOptions()
	options.ClonePointerData = true
	options.IgnoreUnmapped = true
	options.AccessUnexported = true

	s := &Service{
		variant:      variant,
		actions:      actions,
		converter:    conv.NewConverter(options),
		printer:      out,
		logger:       slog.New(slog.DiscardHandler),
		previewLines: 10,
		notesFile:    "notes.pybook",
	}
	for _, o := range opts {
		o(s)
	}
	s.handlers = map[command.Kind]Handler{}
	s.registerHandlers()
	return s
}

func (s *Service) registerHandlers() {
	s.handlers[command.Help] = s.help
	s.handlers[command.Exit] = s.exit
	switch s.variant {
	case command.PyBook:
		s.registerPyBook()
	default:
		s.registerBookLab()
	}
}

// Dispatch runs cmd. Guarded commands are checked against the context policy first.
func (s *Service) Dispatch(ctx context.Context, sess *session.Session, cmd *command.Command) (err error) {
	name := cmd.Kind.String()
	started := time.Now()
	ctx = types.EnsureExecutionContext(ctx, "session", sess.ID, "cell", strconv.Itoa(sess.Cell), "command", name)

	if cmd.Unsafe() {
		if err = policy.FromContext(ctx).Evaluate(ctx, name, cmd.Arg); err != nil {
			progress.UpdateCtx(ctx, progress.Delta{Total: 1, Skipped: 1})
			s.logger.DebugContext(ctx, "cell denied", "kind", name, "error", err)
			return err
		}
	}

	ctx, span := tracing.StartCommand(ctx, name, sess.ID, sess.Cell)
	span.WithAttributes(map[string]string{"variant": string(s.variant)})
	defer func() {
		delta, failure := progress.Delta{Total: 1, Completed: 1}, error(nil)
		if err != nil && !errors.Is(err, types.ErrExit) {
			delta, failure = progress.Delta{Total: 1, Failed: 1}, err
		}
		tracing.EndSpan(span, failure)
		progress.UpdateCtx(ctx, delta)
		s.logger.DebugContext(ctx, "cell", "kind", name, "elapsed", time.Since(started), "error", err)
	}()

	handler, ok := s.handlers[cmd.Kind]
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrUnknownCommand, name)
	}
	return handler(ctx, sess, cmd)
}

// invoke calls service.method with input converted to the method input type
func (s *Service) invoke(ctx context.Context, serviceName, methodName string, input map[string]interface{}) (interface{}, error) {
	service := s.actions.Lookup(serviceName)
	if service == nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceNotFound, serviceName)
	}
	method, err := service.Method(methodName)
	if err != nil {
		return nil, fmt.Errorf("failed to find method %v for service %v: %w", methodName, serviceName, err)
	}
	signature := service.Methods().Lookup(methodName)
	if signature == nil {
		return nil, fmt.Errorf("%w: %v.%v", ErrMethodNotFound, serviceName, methodName)
	}
	in := newInstancePtr(signature.Input)
	if err = s.converter.Convert(input, in); err != nil {
		return nil, fmt.Errorf("failed to convert %v.%v input: %w", serviceName, methodName, err)
	}
	out := newInstancePtr(signature.Output)
	tracing.AddEvent(ctx, "action", map[string]string{"service": serviceName, "method": methodName})
	err = method(ctx, in, out)
	if s.listener != nil {
		s.listener(serviceName, methodName, in, out)
	}
	return out, err
}

// call invokes an action and asserts its output type
func call[O any](ctx context.Context, s *Service, serviceName, methodName string, input map[string]interface{}) (*O, error) {
	out, err := s.invoke(ctx, serviceName, methodName, input)
	if err != nil {
		return nil, err
	}
	typed, ok := out.(*O)
	if !ok {
		return nil, types.NewInvalidOutputError(out)
	}
	return typed, nil
}

func newInstancePtr(t reflect.Type) interface{} {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return reflect.New(t).Interface()
}

func (s *Service) exit(context.Context, *session.Session, *command.Command) error {
	return types.ErrExit
}
