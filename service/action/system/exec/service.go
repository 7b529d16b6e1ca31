package exec

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
)

// NoTimeout is used when Input.TimeoutMs is not positive
const NoTimeout = time.Duration(math.MaxInt32) * time.Millisecond

// Service struct for executing terminal commands
type Service struct {
	sessions map[string]*sessionInfo
	mux      sync.Mutex
}

type sessionInfo struct {
	service *gosh.Service
}

// New creates a new Service instance
func New() *Service {
	return &Service{
		sessions: make(map[string]*sessionInfo),
	}
}

// Execute executes terminal commands in a persistent local shell session
func (s *Service) Execute(ctx context.Context, input *Input, output *Output) error {
	input.Init()

	session, err := s.getSession(ctx, input.Session, input.Env)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	if input.Workdir != "" {
		_, status, err := session.service.Run(ctx, "cd "+Quote(input.Workdir))
		if err != nil {
			s.dropSession(input.Session, session)
			return fmt.Errorf("failed to change directory: %w", err)
		}
		if status != 0 {
			return fmt.Errorf("failed to change directory to %s: status %d", input.Workdir, status)
		}
	}

	abortOnError := true
	if input.AbortOnError != nil {
		abortOnError = *input.AbortOnError
	}

	commands := make([]*Command, 0, len(input.Commands))
	var combinedStdout, combinedStderr strings.Builder
	var lastExitCode int

	timeoutDuration := time.Duration(input.TimeoutMs) * time.Millisecond
	if timeoutDuration <= 0 {
		timeoutDuration = NoTimeout
	}
	for _, cmd := range input.Commands {
		command := &Command{
			Input: cmd,
		}

		stdout, stderr, exitCode, broken := s.executeCommand(ctx, session, cmd, timeoutDuration)
		command.Output = stdout
		command.Stderr = stderr
		command.Status = exitCode
		commands = append(commands, command)

		if stdout != "" {
			combinedStdout.WriteString(stdout)
			combinedStdout.WriteString("\n")
		}
		if stderr != "" {
			combinedStderr.WriteString(stderr)
			combinedStderr.WriteString("\n")
		}
		lastExitCode = exitCode
		if broken {
			s.dropSession(input.Session, session)
			break
		}
		if abortOnError && exitCode != 0 {
			break
		}
	}

	output.Commands = commands
	output.Stdout = strings.TrimSpace(combinedStdout.String())
	output.Stderr = strings.TrimSpace(combinedStderr.String())
	output.Status = lastExitCode
	return nil
}

// executeCommand runs a single command and returns its output; broken reports
// a timed out or failed read after which the shell may still emit output
func (s *Service) executeCommand(ctx context.Context, session *sessionInfo, command string, duration time.Duration) (string, string, int, bool) {
	started := time.Now()
	stdout, status, err := session.service.Run(ctx, command, runner.WithTimeout(int(duration.Milliseconds())))
	elapsed := time.Now().Sub(started)
	broken := err != nil
	if elapsed >= duration && err == nil {
		err = fmt.Errorf("command %v timed out after: %s", command, elapsed)
		broken = true
	}
	if status == 0 && err == nil {
		return stdout, "", status, false
	}
	if status == 0 {
		status = -1
	}
	if stdout == "" && err != nil {
		stdout = err.Error()
	}
	return "", stdout, status, broken
}

// dropSession closes session and forgets it, so the next call starts a fresh shell
func (s *Service) dropSession(sessionID string, session *sessionInfo) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if current, ok := s.sessions[sessionID]; ok && current == session {
		delete(s.sessions, sessionID)
	}
	_ = session.service.Close()
}

// getSession retrieves an existing session or creates a new one
func (s *Service) getSession(ctx context.Context, sessionID string, env map[string]string) (*sessionInfo, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if session, ok := s.sessions[sessionID]; ok {
		return session, nil
	}
	envOptions := []runner.Option{}
	if len(env) > 0 {
		envOptions = append(envOptions, runner.WithEnvironment(env))
	}
	service, err := gosh.New(ctx, local.New(envOptions...))
	if err != nil {
		return nil, err
	}
	session := &sessionInfo{
		service: service,
	}
	s.sessions[sessionID] = session
	return session, nil
}

// Close releases all sessions held by this service
func (s *Service) Close(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	var errs []string
	for id, session := range s.sessions {
		if err := session.service.Close(); err != nil {
			errs = append(errs, fmt.Sprintf("failed to close session %s: %v", id, err))
		}
	}
	s.sessions = make(map[string]*sessionInfo)
	if len(errs) > 0 {
		return fmt.Errorf("errors closing sessions: %s", strings.Join(errs, "; "))
	}
	return nil
}
