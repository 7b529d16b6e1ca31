// Package session holds the mutable state of one notebook run: the working
// directory, the cell counter and, for PyBook, the executed cell log.
package session

import (
	"path/filepath"
	"strings"
	"time"
)

// NotesRule separates entries in the saved notes file
var NotesRule = strings.Repeat("-", 40)

// Entry is one executed code cell with its captured output
type Entry struct {
	Code   string
	Output string
}

// Session represents a notebook session
type Session struct {
	ID      string
	Dir     string // absolute working directory
	Cell    int
	Script  string // PyBook target script, relative to Dir unless absolute
	Started time.Time
	entries []*Entry
}

// New creates a session rooted at dir, starting at cell 1
func New(id, dir string) *Session {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Session{ID: id, Dir: realPath(dir), Cell: 1, Started: time.Now()}
}

// Tick advances the cell counter and returns the new cell number
func (s *Session) Tick() int {
	s.Cell++
	return s.Cell
}

// Chdir sets the working directory to the target with symlinks resolved; callers validate the target first
func (s *Session) Chdir(dir string) {
	s.Dir = realPath(filepath.Clean(s.Resolve(dir)))
}

func realPath(dir string) string {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return resolved
	}
	return dir
}

// Resolve returns location as an absolute path relative to the working directory
func (s *Session) Resolve(location string) string {
	if location == "" {
		return s.Dir
	}
	if strings.HasPrefix(location, "~") {
		if home, err := userHomeDir(); err == nil {
			location = filepath.Join(home, strings.TrimPrefix(location, "~"))
		}
	}
	if filepath.IsAbs(location) {
		return filepath.Clean(location)
	}
	return filepath.Join(s.Dir, location)
}

// ScriptPath returns the absolute script location
func (s *Session) ScriptPath() string {
	return s.Resolve(s.Script)
}

// Record appends an executed cell to the log
func (s *Session) Record(code, output string) {
	s.entries = append(s.entries, &Entry{Code: code, Output: output})
}

// Entries returns the executed cells in execution order
func (s *Session) Entries() []*Entry {
	return s.entries
}

// Notes renders entries in the notes file layout
func Notes(entries []*Entry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString("Code:\n")
		b.WriteString(entry.Code)
		b.WriteString("\n\nOutput:\n")
		b.WriteString(entry.Output)
		b.WriteString("\n")
		b.WriteString(NotesRule)
		b.WriteString("\n")
	}
	return b.String()
}
