package dispatcher

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/viant/booklab/model/command"
	"github.com/viant/booklab/model/session"
	"github.com/viant/booklab/model/types"
	"github.com/viant/booklab/service/action/system/diff"
	"github.com/viant/booklab/service/action/system/host"
	"github.com/viant/booklab/service/action/system/storage"
)

const statTimeLayout = "Mon Jan _2 15:04:05 2006"

func (s *Service) registerBookLab() {
	s.handlers[command.List] = s.list
	s.handlers[command.Path] = s.path
	s.handlers[command.Contents] = s.contents
	s.handlers[command.Stat] = s.stat
	s.handlers[command.Size] = s.size
	s.handlers[command.Create] = s.create
	s.handlers[command.Delete] = s.delete
	s.handlers[command.Rename] = s.rename
	s.handlers[command.Copy] = s.copy
	s.handlers[command.Move] = s.move
	s.handlers[command.Search] = s.search
	s.handlers[command.Preview] = s.preview
	s.handlers[command.Compare] = s.compare
	s.handlers[command.Cd] = s.cd
	s.handlers[command.Dirs] = s.dirs
	s.handlers[command.SysInfo] = s.sysInfo
}

func (s *Service) list(ctx context.Context, sess *session.Session, _ *command.Command) error {
	out, err := call[storage.ListOutput](ctx, s, storage.Name, "list", map[string]interface{}{"URL": sess.Dir})
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(out.Assets))
	for i, asset := range out.Assets {
		rows = append(rows, []string{strconv.Itoa(i + 1), asset.Name})
	}
	s.printer.Table("Files in Directory", []string{"Index", "Filename"}, rows)
	return nil
}

func (s *Service) path(_ context.Context, sess *session.Session, _ *command.Command) error {
	s.printer.Field("Current Path:", sess.Dir)
	return nil
}

func (s *Service) contents(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	out, err := call[storage.ReadOutput](ctx, s, storage.Name, "read", map[string]interface{}{"URL": sess.Resolve(cmd.Arg)})
	if err != nil {
		return err
	}
	if out.Binary {
		return fmt.Errorf("%v is a binary file", cmd.Arg)
	}
	return s.printer.Syntax(cmd.Arg, string(out.Data))
}

func (s *Service) stat(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	out, err := call[storage.StatOutput](ctx, s, storage.Name, "stat", map[string]interface{}{"URL": sess.Resolve(cmd.Arg)})
	if err != nil {
		return err
	}
	asset := out.Asset
	rows := [][]string{
		{"Size", strconv.FormatInt(asset.Size, 10)},
		{"Created", asset.Created.Format(statTimeLayout)},
		{"Modified", asset.ModTime.Format(statTimeLayout)},
		{"Accessed", asset.Accessed.Format(statTimeLayout)},
		{"Mode", asset.Mode},
	}
	if asset.ContentType != "" {
		rows = append(rows, []string{"Content Type", asset.ContentType})
	}
	s.printer.Table("Stats for "+cmd.Arg, []string{"Property", "Value"}, rows)
	return nil
}

func (s *Service) size(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	out, err := call[storage.StatOutput](ctx, s, storage.Name, "stat", map[string]interface{}{"URL": sess.Resolve(cmd.Arg)})
	if err != nil {
		return err
	}
	s.printer.Field("File Size:", fmt.Sprintf("%d bytes", out.Asset.Size))
	return nil
}

func (s *Service) create(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	content := ""
	if s.variant == command.PyBook {
		content = "# New file created\n"
	}
	if _, err := call[storage.WriteOutput](ctx, s, storage.Name, "write", map[string]interface{}{
		"URL":     sess.Resolve(cmd.Arg),
		"Content": content,
	}); err != nil {
		return err
	}
	if s.variant == command.PyBook {
		s.printer.Success("Created new file: " + cmd.Arg)
		return nil
	}
	s.printer.Success(fmt.Sprintf("File '%s' created successfully.", cmd.Arg))
	return nil
}

func (s *Service) delete(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	if _, err := call[storage.DeleteOutput](ctx, s, storage.Name, "delete", map[string]interface{}{"URL": sess.Resolve(cmd.Arg)}); err != nil {
		return err
	}
	if s.variant == command.PyBook {
		s.printer.Success("Deleted file: " + cmd.Arg)
		return nil
	}
	s.printer.Success(fmt.Sprintf("File '%s' deleted successfully.", cmd.Arg))
	return nil
}

func (s *Service) rename(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	if err := s.transfer(ctx, sess, cmd, "rename"); err != nil {
		return err
	}
	s.printer.Success(fmt.Sprintf("File renamed from '%s' to '%s'", cmd.Source(), cmd.Target()))
	return nil
}

func (s *Service) copy(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	if err := s.transfer(ctx, sess, cmd, "copy"); err != nil {
		return err
	}
	s.printer.Success(fmt.Sprintf("File '%s' copied to '%s'", cmd.Source(), cmd.Target()))
	return nil
}

func (s *Service) move(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	if err := s.transfer(ctx, sess, cmd, "move"); err != nil {
		return err
	}
	s.printer.Success(fmt.Sprintf("File '%s' moved to '%s'", cmd.Source(), cmd.Target()))
	return nil
}

func (s *Service) transfer(ctx context.Context, sess *session.Session, cmd *command.Command, method string) error {
	_, err := call[storage.TransferOutput](ctx, s, storage.Name, method, map[string]interface{}{
		"Source": sess.Resolve(cmd.Source()),
		"Dest":   sess.Resolve(cmd.Target()),
	})
	return err
}

func (s *Service) search(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	out, err := call[storage.SearchOutput](ctx, s, storage.Name, "search", map[string]interface{}{
		"URL":     sess.Dir,
		"Keyword": cmd.Arg,
	})
	if err != nil {
		return err
	}
	if len(out.Assets) == 0 {
		s.printer.Warn(fmt.Sprintf("No files found with '%s'", cmd.Arg))
		return nil
	}
	s.printer.Info("Found Files:")
	for _, asset := range out.Assets {
		s.printer.Plain(asset.Name)
	}
	return nil
}

func (s *Service) preview(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	out, err := call[storage.PreviewOutput](ctx, s, storage.Name, "preview", map[string]interface{}{
		"URL":   sess.Resolve(cmd.Arg),
		"Lines": s.previewLines,
	})
	if err != nil {
		return err
	}
	s.printer.Title(fmt.Sprintf("Preview of %s:", cmd.Arg))
	s.printer.Plain(strings.Join(out.Lines, "\n"))
	return nil
}

func (s *Service) compare(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	out, err := call[diff.Output](ctx, s, diff.Name, "files", map[string]interface{}{
		"FromURL":   sess.Resolve(cmd.Source()),
		"ToURL":     sess.Resolve(cmd.Target()),
		"FromLabel": cmd.Source(),
		"ToLabel":   cmd.Target(),
	})
	if err != nil {
		return err
	}
	s.printer.Info("File Comparison:")
	s.printer.Plain(strings.TrimSuffix(out.Patch, "\n"))
	return nil
}

func (s *Service) cd(ctx context.Context, sess *session.Session, cmd *command.Command) error {
	location := sess.Resolve(cmd.Arg)
	out, err := call[storage.StatOutput](ctx, s, storage.Name, "stat", map[string]interface{}{"URL": location})
	if err != nil || !out.Asset.IsDir {
		return types.NewInvalidDirectoryError(cmd.Arg)
	}
	sess.Chdir(location)
	s.printer.Success("Directory changed to " + sess.Dir)
	return nil
}

func (s *Service) dirs(ctx context.Context, sess *session.Session, _ *command.Command) error {
	out, err := call[storage.ListOutput](ctx, s, storage.Name, "list", map[string]interface{}{
		"URL":      sess.Dir,
		"DirsOnly": true,
	})
	if err != nil {
		return err
	}
	if len(out.Assets) == 0 {
		s.printer.Warn("No directories found.")
		return nil
	}
	s.printer.Info("Directories in Current Path:")
	for _, asset := range out.Assets {
		s.printer.Plain(asset.Name)
	}
	return nil
}

func (s *Service) sysInfo(ctx context.Context, _ *session.Session, _ *command.Command) error {
	info, err := call[host.Info](ctx, s, host.Name, "info", map[string]interface{}{})
	if err != nil {
		return err
	}
	s.printer.Title("System Information:")
	s.printer.Plain(strings.TrimSpace(fmt.Sprintf("OS: %s %s", info.OS, info.Release)))
	s.printer.Plain("Machine: " + info.Machine)
	s.printer.Plain("Processor: " + info.Processor)
	s.printer.Plain("Go Version: " + runtime.Version())
	return nil
}
