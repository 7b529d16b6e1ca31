package dispatcher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/booklab/extension"
	"github.com/viant/booklab/model/command"
	"github.com/viant/booklab/model/session"
	"github.com/viant/booklab/model/types"
	"github.com/viant/booklab/policy"
	"github.com/viant/booklab/progress"
	"github.com/viant/booklab/service/action/printer"
	"github.com/viant/booklab/service/action/python"
	"github.com/viant/booklab/service/action/system/diff"
	"github.com/viant/booklab/service/action/system/exec"
	"github.com/viant/booklab/service/action/system/host"
	"github.com/viant/booklab/service/action/system/storage"
)

// scriptedRunner fails the formatter and answers every other command with stdout
type scriptedRunner struct {
	stdout   string
	commands []string
}

func (r *scriptedRunner) Execute(_ context.Context, input *exec.Input, output *exec.Output) error {
	r.commands = append(r.commands, input.Commands...)
	for _, cmd := range input.Commands {
		if strings.Contains(cmd, "autopep8") {
			output.Stderr = "No module named autopep8"
			output.Status = 1
			return nil
		}
	}
	output.Stdout = r.stdout
	return nil
}

type fixture struct {
	dispatcher *Service
	session    *session.Session
	out        *bytes.Buffer
	runner     *scriptedRunner
	calls      []string
}

func newFixture(t *testing.T, variant command.Variant) *fixture {
	t.Helper()
	ret := &fixture{out: &bytes.Buffer{}, runner: &scriptedRunner{stdout: "hello"}}
	out := printer.New(ret.out)
	actions := extension.NewActions(
		storage.New(),
		diff.New(),
		host.New(),
		python.New(ret.runner, nil),
		out,
	)
	actions.Register(&runnerService{Service: exec.New(), runner: ret.runner})
	ret.dispatcher = New(variant, actions, out, WithPreviewLines(2), WithListener(func(service, method string, _, _ interface{}) {
		ret.calls = append(ret.calls, service+"."+method)
	}))
	ret.session = session.New("test", t.TempDir())
	ret.session.Script = "script.py"
	return ret
}

// runnerService exposes the scripted runner as system/exec
type runnerService struct {
	*exec.Service
	runner *scriptedRunner
}

func (r *runnerService) Method(name string) (types.Executable, error) {
	if name == "execute" {
		return types.NewExecutable(r.runner.Execute), nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

func (f *fixture) run(t *testing.T, line string) error {
	t.Helper()
	cmd, err := command.NewParser(f.dispatcher.variant).Parse(line)
	require.NoError(t, err, line)
	return f.dispatcher.Dispatch(context.Background(), f.session, cmd)
}

func (f *fixture) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.session.Dir, name), []byte(content), 0644))
}

func TestService_BookLab(t *testing.T) {
	testCases := []struct {
		name    string
		setup   func(t *testing.T, f *fixture)
		line    string
		expect  []string
		wantErr error
		check   func(t *testing.T, f *fixture)
	}{
		{
			name:   "list",
			setup:  func(t *testing.T, f *fixture) { f.write(t, "a.txt", "x") },
			line:   "list:",
			expect: []string{"Files in Directory", "Index", "Filename", "a.txt"},
		},
		{
			name: "path",
			line: "path:",
			check: func(t *testing.T, f *fixture) {
				assert.Equal(t, "Current Path: "+f.session.Dir+"\n", f.out.String())
			},
		},
		{
			name:   "size",
			setup:  func(t *testing.T, f *fixture) { f.write(t, "a.txt", "hello") },
			line:   "size:a.txt",
			expect: []string{"File Size: 5 bytes"},
		},
		{
			name:    "size missing",
			line:    "size:missing.txt",
			wantErr: types.ErrNotFound,
		},
		{
			name:   "stat",
			setup:  func(t *testing.T, f *fixture) { f.write(t, "a.txt", "hello") },
			line:   "stat:a.txt",
			expect: []string{"Stats for a.txt", "Size", "Created", "Modified", "Accessed"},
		},
		{
			name:   "contents",
			setup:  func(t *testing.T, f *fixture) { f.write(t, "a.py", "print(1)\n") },
			line:   "contents:a.py",
			expect: []string{"1 │ print(1)"},
		},
		{
			name:   "create",
			line:   "create:new.txt",
			expect: []string{"File 'new.txt' created successfully."},
			check: func(t *testing.T, f *fixture) {
				data, err := os.ReadFile(filepath.Join(f.session.Dir, "new.txt"))
				require.NoError(t, err)
				assert.Empty(t, data)
			},
		},
		{
			name:    "create existing",
			setup:   func(t *testing.T, f *fixture) { f.write(t, "a.txt", "keep") },
			line:    "create:a.txt",
			wantErr: types.ErrAlreadyExists,
		},
		{
			name:   "delete",
			setup:  func(t *testing.T, f *fixture) { f.write(t, "a.txt", "x") },
			line:   "delete:a.txt",
			expect: []string{"File 'a.txt' deleted successfully."},
			check: func(t *testing.T, f *fixture) {
				assert.NoFileExists(t, filepath.Join(f.session.Dir, "a.txt"))
			},
		},
		{
			name:   "rename",
			setup:  func(t *testing.T, f *fixture) { f.write(t, "a.txt", "x") },
			line:   "rename:a.txt to b.txt",
			expect: []string{"File renamed from 'a.txt' to 'b.txt'"},
			check: func(t *testing.T, f *fixture) {
				assert.FileExists(t, filepath.Join(f.session.Dir, "b.txt"))
				assert.NoFileExists(t, filepath.Join(f.session.Dir, "a.txt"))
			},
		},
		{
			name:   "copy",
			setup:  func(t *testing.T, f *fixture) { f.write(t, "a.txt", "x") },
			line:   "copy:a.txt to b.txt",
			expect: []string{"File 'a.txt' copied to 'b.txt'"},
			check: func(t *testing.T, f *fixture) {
				assert.FileExists(t, filepath.Join(f.session.Dir, "a.txt"))
				assert.FileExists(t, filepath.Join(f.session.Dir, "b.txt"))
			},
		},
		{
			name: "move into directory",
			setup: func(t *testing.T, f *fixture) {
				f.write(t, "a.txt", "x")
				require.NoError(t, os.Mkdir(filepath.Join(f.session.Dir, "sub"), 0755))
			},
			line:   "move:a.txt to sub",
			expect: []string{"File 'a.txt' moved to 'sub'"},
			check: func(t *testing.T, f *fixture) {
				assert.FileExists(t, filepath.Join(f.session.Dir, "sub", "a.txt"))
			},
		},
		{
			name: "search",
			setup: func(t *testing.T, f *fixture) {
				f.write(t, "Report.md", "x")
				f.write(t, "notes.txt", "x")
			},
			line:   "search:report",
			expect: []string{"Found Files:", "Report.md"},
		},
		{
			name:   "search without match",
			line:   "search:zzz",
			expect: []string{"No files found with 'zzz'"},
		},
		{
			name:  "preview",
			setup: func(t *testing.T, f *fixture) { f.write(t, "a.txt", "one\ntwo\nthree\n") },
			line:  "preview:a.txt",
			check: func(t *testing.T, f *fixture) {
				assert.Equal(t, "Preview of a.txt:\none\ntwo\n", f.out.String())
			},
		},
		{
			name: "compare",
			setup: func(t *testing.T, f *fixture) {
				f.write(t, "a.txt", "one\ntwo\n")
				f.write(t, "b.txt", "one\nthree\n")
			},
			line:   "compare:a.txt and b.txt",
			expect: []string{"File Comparison:", "--- a.txt", "+++ b.txt", "-two", "+three"},
		},
		{
			name:    "compare missing",
			setup:   func(t *testing.T, f *fixture) { f.write(t, "a.txt", "one\n") },
			line:    "compare:a.txt and b.txt",
			wantErr: types.ErrNotFound,
		},
		{
			name:  "cd",
			setup: func(t *testing.T, f *fixture) { require.NoError(t, os.Mkdir(filepath.Join(f.session.Dir, "sub"), 0755)) },
			line:  "cd:sub",
			check: func(t *testing.T, f *fixture) {
				assert.Equal(t, "sub", filepath.Base(f.session.Dir))
				assert.Contains(t, f.out.String(), "Directory changed to "+f.session.Dir)
			},
		},
		{
			name:    "cd to file",
			setup:   func(t *testing.T, f *fixture) { f.write(t, "a.txt", "x") },
			line:    "cd:a.txt",
			wantErr: types.ErrInvalidDirectory,
		},
		{
			name:    "cd missing",
			line:    "cd:nowhere",
			wantErr: types.ErrInvalidDirectory,
		},
		{
			name: "dirs",
			setup: func(t *testing.T, f *fixture) {
				f.write(t, "a.txt", "x")
				require.NoError(t, os.Mkdir(filepath.Join(f.session.Dir, "sub"), 0755))
			},
			line: "dirs",
			check: func(t *testing.T, f *fixture) {
				assert.Equal(t, "Directories in Current Path:\nsub\n", f.out.String())
			},
		},
		{
			name:   "dirs empty",
			line:   "dirs",
			expect: []string{"No directories found."},
		},
		{
			name:   "sysinfo",
			line:   "sysinfo",
			expect: []string{"System Information:", "OS: ", "Machine: ", "Processor: ", "Go Version: go"},
		},
		{
			name:   "help",
			line:   "help",
			expect: []string{"Commands:", "- compare:<file1> and <file2>", "Compare two files"},
		},
		{
			name:    "exit",
			line:    "exit",
			wantErr: types.ErrExit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, command.BookLab)
			if tc.setup != nil {
				tc.setup(t, f)
			}
			startDir := f.session.Dir
			err := f.run(t, tc.line)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, startDir, f.session.Dir)
				return
			}
			require.NoError(t, err)
			for _, fragment := range tc.expect {
				assert.Contains(t, f.out.String(), fragment)
			}
			if tc.check != nil {
				tc.check(t, f)
			}
		})
	}
}

func TestService_PyBook(t *testing.T) {
	t.Run("code appends, runs and records", func(t *testing.T) {
		f := newFixture(t, command.PyBook)
		require.NoError(t, f.run(t, "code: print('hello')"))
		data, err := os.ReadFile(filepath.Join(f.session.Dir, "script.py"))
		require.NoError(t, err)
		assert.Equal(t, "\nprint('hello')\n", string(data))
		assert.Contains(t, f.out.String(), "Executing code in script.py...")
		assert.Contains(t, f.out.String(), "Output:\nhello")
		require.Len(t, f.session.Entries(), 1)
		assert.Equal(t, "print('hello')", f.session.Entries()[0].Code)
		assert.Equal(t, "hello", f.session.Entries()[0].Output)
		assert.Equal(t, []string{"python.format", "python.run"}, f.calls)
	})

	t.Run("save writes notes", func(t *testing.T) {
		f := newFixture(t, command.PyBook)
		require.NoError(t, f.run(t, "code: x = 1"))
		require.NoError(t, f.run(t, "save:file"))
		data, err := os.ReadFile(filepath.Join(f.session.Dir, "notes.pybook"))
		require.NoError(t, err)
		assert.Equal(t, "Code:\nx = 1\n\nOutput:\nhello\n"+session.NotesRule+"\n", string(data))
		assert.Contains(t, f.out.String(), "All cells and outputs have been saved to notes.pybook")
	})

	t.Run("file create list delete", func(t *testing.T) {
		f := newFixture(t, command.PyBook)
		require.NoError(t, f.run(t, "file:create a.py"))
		data, err := os.ReadFile(filepath.Join(f.session.Dir, "a.py"))
		require.NoError(t, err)
		assert.Equal(t, "# New file created\n", string(data))
		require.NoError(t, os.Mkdir(filepath.Join(f.session.Dir, "sub"), 0755))
		require.NoError(t, f.run(t, "FILE:LIST"))
		assert.Contains(t, f.out.String(), " - a.py")
		assert.NotContains(t, f.out.String(), " - sub")
		require.NoError(t, f.run(t, "file:delete a.py"))
		assert.Contains(t, f.out.String(), "Deleted file: a.py")
		assert.ErrorIs(t, f.run(t, "file:delete a.py"), types.ErrNotFound)
	})

	t.Run("format falls back to input", func(t *testing.T) {
		f := newFixture(t, command.PyBook)
		require.NoError(t, f.run(t, "format: x=1"))
		assert.Contains(t, f.out.String(), "Formatted Code:")
		assert.Contains(t, f.out.String(), "x=1")
	})

	t.Run("shell runs in session directory", func(t *testing.T) {
		f := newFixture(t, command.PyBook)
		require.NoError(t, f.run(t, "shell: echo hi"))
		assert.Equal(t, []string{"echo hi"}, f.runner.commands)
		assert.Contains(t, f.out.String(), "Running shell command: echo hi\nhello")
	})

	t.Run("env create skips existing", func(t *testing.T) {
		f := newFixture(t, command.PyBook)
		require.NoError(t, os.Mkdir(filepath.Join(f.session.Dir, "venv"), 0755))
		require.NoError(t, f.run(t, "env:create venv"))
		assert.Contains(t, f.out.String(), "Virtual environment 'venv' already exists!")
		assert.Empty(t, f.runner.commands)
	})

	t.Run("help", func(t *testing.T) {
		f := newFixture(t, command.PyBook)
		require.NoError(t, f.run(t, "HELP"))
		assert.Contains(t, f.out.String(), "Welcome to PyBook")
		assert.Contains(t, f.out.String(), "save:file")
	})

	t.Run("quit", func(t *testing.T) {
		f := newFixture(t, command.PyBook)
		assert.ErrorIs(t, f.run(t, "quit"), types.ErrExit)
	})
}

func TestService_Dispatch(t *testing.T) {
	t.Run("denied command is skipped", func(t *testing.T) {
		f := newFixture(t, command.PyBook)
		ctx := policy.WithPolicy(context.Background(), &policy.Policy{Mode: policy.ModeDeny})
		ctx, tracker := progress.WithNewTracker(ctx, "test", "pybook", nil)
		cmd, err := command.NewParser(command.PyBook).Parse("shell: rm -rf x")
		require.NoError(t, err)
		err = f.dispatcher.Dispatch(ctx, f.session, cmd)
		assert.ErrorIs(t, err, types.ErrDenied)
		assert.Empty(t, f.runner.commands)
		snapshot := tracker.Snapshot()
		assert.Equal(t, 1, snapshot.SkippedCells)
		assert.Equal(t, 0, snapshot.CompletedCells)
	})

	t.Run("progress counts outcomes", func(t *testing.T) {
		f := newFixture(t, command.BookLab)
		ctx, tracker := progress.WithNewTracker(context.Background(), "test", "booklab", nil)
		parser := command.NewParser(command.BookLab)
		for _, line := range []string{"path:", "size:missing", "exit"} {
			cmd, err := parser.Parse(line)
			require.NoError(t, err)
			_ = f.dispatcher.Dispatch(ctx, f.session, cmd)
		}
		snapshot := tracker.Snapshot()
		assert.Equal(t, 3, snapshot.TotalCells)
		assert.Equal(t, 2, snapshot.CompletedCells)
		assert.Equal(t, 1, snapshot.FailedCells)
	})

	t.Run("kind without handler", func(t *testing.T) {
		f := newFixture(t, command.BookLab)
		err := f.dispatcher.Dispatch(context.Background(), f.session, &command.Command{Kind: command.Code})
		assert.ErrorIs(t, err, types.ErrUnknownCommand)
	})

	t.Run("missing service", func(t *testing.T) {
		out := printer.New(&bytes.Buffer{})
		srv := New(command.BookLab, extension.NewActions(), out)
		sess := session.New("test", t.TempDir())
		err := srv.Dispatch(context.Background(), sess, &command.Command{Kind: command.List})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestReference(t *testing.T) {
	lines := Reference(command.BookLab)
	require.Len(t, lines, len(command.BookLab.Table()))
	assert.True(t, strings.HasPrefix(lines[0], "list:"))
	assert.True(t, strings.HasSuffix(lines[0], "List available files"))
}
