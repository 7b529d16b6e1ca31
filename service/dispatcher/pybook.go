package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/booklab/model/command"
	"github.com/viant/booklab/model/session"
	"github.com/viant/booklab/service/action/python"
	"github.com/viant/booklab/service/action/system/exec"
	"github.com/viant/booklab/service/action/system/storage"
)

func (s *Service) registerPyBook() {
	s.handlers[command.Code] = s.code
	s.handlers[command.Install] = s.install
	s.handlers[command.EnvCreate] = s.envCreate
	s.handlers[command.EnvActivate] = s.envActivate
	s.handlers[command.Format] = s.format
	s.handlers[command.Lint] = s.lint
	s.handlers[command.Create] = s.create
	s.handlers[command.ListFiles] = s.listFiles
	s.handlers[command.Delete] = s.delete
	s.handlers[command.Shell] = s.shell
	s.handlers[command.Profile] = s.profile
	s.handlers[command.Save] = s.save
}

// code formats the cell, appends it to the session script and runs the script
func (s *Service) code(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	formatted, err := s.formatCode(ctx, cmd.Arg)
	if err != nil {
		return err
	}
	script := sess.ScriptPath()
	s.printer.Success(fmt.Sprintf("Executing code in %s...", sess.Script))
	out, err := call[python.RunOutput](ctx, s, python.Name, "run", map[string]interface{}{
		"Script":  script,
		"Code":    formatted.Code,
		"Workdir": sess.Dir,
	})
	if err != nil {
		return err
	}
	sess.Record(formatted.Code, out.Output)
	if err = s.printer.Python(formatted.Code); err != nil {
		return err
	}
	s.printer.Plain("Output:\n" + out.Output)
	return nil
}

func (s *Service) formatCode(ctx context.Context, code string) (*python.FormatOutput, error) {
	out, err := call[python.FormatOutput](ctx, s, python.Name, "format", map[string]interface{}{"Code": code})
	if err != nil {
		return nil, err
	}
	out.Code = strings.TrimRight(out.Code, "\n")
	if !out.Formatted {
		s.logger.DebugContext(ctx, "formatter unavailable", "message", out.Message)
	}
	return out, nil
}

func (s *Service) install(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	s.printer.Info(fmt.Sprintf("Installing package %s...", cmd.Arg))
	out, err := call[python.CommandOutput](ctx, s, python.Name, "install", map[string]interface{}{
		"Package": cmd.Arg,
		"Workdir": sess.Dir,
	})
	if err != nil {
		return err
	}
	s.printer.Plain(strings.TrimRight(out.Output, "\n"))
	return nil
}

func (s *Service) envCreate(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	out, err := call[python.CommandOutput](ctx, s, python.Name, "venv.create", map[string]interface{}{
		"Name":    envName(cmd.Arg),
		"Workdir": sess.Dir,
	})
	if err != nil {
		return err
	}
	if out.Skipped {
		s.printer.Warn(out.Output)
		return nil
	}
	s.printer.Warn("Creating virtual environment: " + envName(cmd.Arg))
	return nil
}

func (s *Service) envActivate(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	name := envName(cmd.Arg)
	s.printer.Success("Activating virtual environment: " + name)
	_, err := call[python.CommandOutput](ctx, s, python.Name, "venv.activate", map[string]interface{}{
		"Name":    name,
		"Workdir": sess.Dir,
	})
	return err
}

// envName returns the first word of arg, trailing words are ignored
func envName(arg string) string {
	if fields := strings.Fields(arg); len(fields) > 0 {
		return fields[0]
	}
	return arg
}

func (s *Service) format(ctx context.Context, _ *session.Session, cmd *command.Command) error {
	out, err := s.formatCode(ctx, cmd.Arg)
	if err != nil {
		return err
	}
	if !out.Formatted {
		s.printer.Warn("Formatter unavailable, showing code unchanged.")
	}
	s.printer.Title("Formatted Code:")
	return s.printer.Python(out.Code)
}

func (s *Service) lint(ctx context.Context, _ *session.Session, cmd *command.Command) error {
	s.printer.Info("Linting code...")
	out, err := call[python.LintOutput](ctx, s, python.Name, "lint", map[string]interface{}{"Code": cmd.Arg})
	if err != nil {
		return err
	}
	if !out.Formatted {
		s.printer.Warn("Formatter unavailable, showing code unchanged.")
	}
	s.printer.Title("Linted Code (formatted to PEP8):")
	if err = s.printer.Python(strings.TrimRight(out.Code, "\n")); err != nil {
		return err
	}
	if out.Diff != "" {
		s.printer.Plain(strings.TrimSuffix(out.Diff, "\n"))
	}
	return nil
}

func (s *Service) listFiles(ctx context.Context, sess *session.Session, _ *command.Command) error {
	out, err := call[storage.ListOutput](ctx, s, storage.Name, "list", map[string]interface{}{
		"URL":       sess.Dir,
		"FilesOnly": true,
	})
	if err != nil {
		return err
	}
	s.printer.Info("Listing files in the current directory:")
	names := make([]string, 0, len(out.Assets))
	for _, asset := range out.Assets {
		names = append(names, asset.Name)
	}
	s.printer.Bullets(names)
	return nil
}

func (s *Service) shell(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	s.printer.Info("Running shell command: " + cmd.Arg)
	out, err := call[exec.Output](ctx, s, exec.Name, "execute", map[string]interface{}{
		"Workdir":   sess.Dir,
		"Commands":  []string{cmd.Arg},
		"TimeoutMs": s.shellTimeoutMs,
	})
	if err != nil {
		return err
	}
	if combined := strings.TrimRight(out.Combined(), "\n"); combined != "" {
		s.printer.Plain(combined)
	}
	return nil
}

func (s *Service) profile(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	out, err := call[python.ProfileOutput](ctx, s, python.Name, "profile", map[string]interface{}{
		"Code":    cmd.Arg,
		"Workdir": sess.Dir,
	})
	if err != nil {
		return err
	}
	s.printer.Panel("Code Profiling Output", strings.TrimRight(out.Report, "\n"))
	return nil
}

func (s *Service) save(ctx context.Context, sess *session.Session, _ *command.Command) error {
	if _, err := call[storage.WriteOutput](ctx, s, storage.Name, "write", map[string]interface{}{
		"URL":       sess.Resolve(s.notesFile),
		"Content":   session.Notes(sess.Entries()),
		"Overwrite": true,
	}); err != nil {
		return err
	}
	s.printer.Success("All cells and outputs have been saved to " + s.notesFile)
	return nil
}
