// Package python runs PyBook cells: every piece of user code is executed by
// an external interpreter in the shared shell session, never in-process.
package python

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/booklab/internal/idgen"
	"github.com/viant/booklab/model/types"
	"github.com/viant/booklab/service/action/system/diff"
	"github.com/viant/booklab/service/action/system/exec"
)

const Name = "python"

// Runner executes shell commands
type Runner interface {
	Execute(ctx context.Context, input *exec.Input, output *exec.Output) error
}

// Service runs, formats and profiles python code through a Runner
type Service struct {
	config *Config
	runner Runner
	fs     afs.Service
	tmpDir string
}

// New creates a python service; a nil config uses defaults
func New(runner Runner, config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	config.Init()
	return &Service{config: config, runner: runner, fs: afs.New(), tmpDir: os.TempDir()}
}

func (s *Service) Name() string {
	return Name
}

func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{Name: "run", Description: "append code to a script and run it", Input: reflect.TypeOf(&RunInput{}), Output: reflect.TypeOf(&RunOutput{})},
		{Name: "format", Input: reflect.TypeOf(&FormatInput{}), Output: reflect.TypeOf(&FormatOutput{})},
		{Name: "lint", Input: reflect.TypeOf(&FormatInput{}), Output: reflect.TypeOf(&LintOutput{})},
		{Name: "profile", Input: reflect.TypeOf(&ProfileInput{}), Output: reflect.TypeOf(&ProfileOutput{})},
		{Name: "install", Input: reflect.TypeOf(&InstallInput{}), Output: reflect.TypeOf(&CommandOutput{})},
		{Name: "venv.create", Input: reflect.TypeOf(&VenvInput{}), Output: reflect.TypeOf(&CommandOutput{})},
		{Name: "venv.activate", Input: reflect.TypeOf(&VenvInput{}), Output: reflect.TypeOf(&CommandOutput{})},
	}
}

func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "run":
		return types.NewExecutable(s.Run), nil
	case "format":
		return types.NewExecutable(s.Format), nil
	case "lint":
		return types.NewExecutable(s.Lint), nil
	case "profile":
		return types.NewExecutable(s.Profile), nil
	case "install":
		return types.NewExecutable(s.Install), nil
	case "venv.create":
		return types.NewExecutable(s.CreateVenv), nil
	case "venv.activate":
		return types.NewExecutable(s.ActivateVenv), nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

// Run appends "\n"+code+"\n" to the script and runs the whole script.
// A failing script is not an error: its traceback is the cell output.
func (s *Service) Run(ctx context.Context, input *RunInput, output *RunOutput) error {
	if input.Script == "" {
		return fmt.Errorf("script is required")
	}
	var data []byte
	if ok, _ := s.fs.Exists(ctx, input.Script); ok {
		var err error
		if data, err = s.fs.DownloadWithURL(ctx, input.Script); err != nil {
			return fmt.Errorf("failed to read %s: %w", input.Script, err)
		}
	}
	data = append(data, "\n"+input.Code+"\n"...)
	if err := s.fs.Upload(ctx, input.Script, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to append to %s: %w", input.Script, err)
	}
	result, err := s.execute(ctx, input.Workdir, s.config.Interpreter+" "+exec.Quote(input.Script))
	if err != nil {
		return err
	}
	output.Output = result.Combined()
	output.Status = result.Status
	return nil
}

// Format runs the configured formatter; on failure the input code is returned unchanged
func (s *Service) Format(ctx context.Context, input *FormatInput, output *FormatOutput) error {
	output.Code = input.Code
	location, err := s.tempFile(ctx, input.Code)
	if err != nil {
		return err
	}
	defer s.fs.Delete(ctx, location)
	result, err := s.execute(ctx, "", s.config.Formatter+" "+exec.Quote(location))
	if err != nil {
		output.Message = err.Error()
		return nil
	}
	if result.Status != 0 {
		output.Message = result.Combined()
		return nil
	}
	output.Code = result.Stdout
	output.Formatted = true
	return nil
}

// Lint formats code and reports the difference to the input
func (s *Service) Lint(ctx context.Context, input *FormatInput, output *LintOutput) error {
	if err := s.Format(ctx, input, &output.FormatOutput); err != nil {
		return err
	}
	patch, stats, err := diff.Generate([]byte(input.Code+"\n"), []byte(output.Code+"\n"), "original", "formatted", 0)
	if err != nil {
		return err
	}
	output.Diff = patch
	output.Insertions = stats.Insertions
	output.Deletions = stats.Deletions
	return nil
}

// Profile runs code from a temporary file under cProfile sorted by internal time
func (s *Service) Profile(ctx context.Context, input *ProfileInput, output *ProfileOutput) error {
	location, err := s.tempFile(ctx, input.Code+"\n")
	if err != nil {
		return err
	}
	defer s.fs.Delete(ctx, location)
	result, err := s.execute(ctx, input.Workdir, s.config.Interpreter+" -m cProfile -s time "+exec.Quote(location))
	if err != nil {
		return err
	}
	output.Report = result.Combined()
	output.Status = result.Status
	return nil
}

// Install installs a package specification with pip
func (s *Service) Install(ctx context.Context, input *InstallInput, output *CommandOutput) error {
	fields := strings.Fields(input.Package)
	if len(fields) == 0 {
		return types.NewInvalidSyntaxError("install:<package name>")
	}
	for i, field := range fields {
		fields[i] = exec.Quote(field)
	}
	return s.tool(ctx, input.Workdir, s.config.Pip+" install "+strings.Join(fields, " "), output)
}

// CreateVenv creates a virtual environment unless the directory already exists
func (s *Service) CreateVenv(ctx context.Context, input *VenvInput, output *CommandOutput) error {
	location := resolve(input.Workdir, input.Name)
	if exists, _ := s.fs.Exists(ctx, location); exists {
		output.Skipped = true
		output.Output = fmt.Sprintf("Virtual environment '%s' already exists!", input.Name)
		return nil
	}
	return s.tool(ctx, input.Workdir, s.config.Interpreter+" -m venv "+exec.Quote(input.Name), output)
}

// ActivateVenv sources the environment activation script in the shared shell session
func (s *Service) ActivateVenv(ctx context.Context, input *VenvInput, output *CommandOutput) error {
	script := activateScript(input.Name)
	if exists, _ := s.fs.Exists(ctx, resolve(input.Workdir, script)); !exists {
		return types.NewNotFoundError(script)
	}
	return s.tool(ctx, input.Workdir, "source "+exec.Quote(script), output)
}

func (s *Service) tool(ctx context.Context, workdir, command string, output *CommandOutput) error {
	result, err := s.execute(ctx, workdir, command)
	if err != nil {
		return err
	}
	output.Command = command
	output.Output = result.Combined()
	output.Status = result.Status
	if result.Status != 0 {
		return types.NewExecutionError(command, errors.New(output.Output))
	}
	return nil
}

func (s *Service) execute(ctx context.Context, workdir, command string) (*exec.Output, error) {
	output := &exec.Output{}
	input := &exec.Input{Workdir: workdir, Commands: []string{command}, TimeoutMs: s.config.TimeoutMs}
	if err := s.runner.Execute(ctx, input, output); err != nil {
		return nil, types.NewExecutionError(command, err)
	}
	return output, nil
}

func (s *Service) tempFile(ctx context.Context, code string) (string, error) {
	location := filepath.Join(s.tmpDir, "booklab-"+idgen.Compact()+".py")
	if err := s.fs.Upload(ctx, location, file.DefaultFileOsMode, strings.NewReader(code)); err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	return location, nil
}

func activateScript(name string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(name, "Scripts", "activate")
	}
	return filepath.Join(name, "bin", "activate")
}

func resolve(workdir, location string) string {
	if workdir == "" || filepath.IsAbs(location) {
		return location
	}
	return filepath.Join(workdir, location)
}
