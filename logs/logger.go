// Package logs builds the structured logger shared by the notebook services.
package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Logger owns the log destinations opened for it
type Logger struct {
	*slog.Logger
	closers []io.Closer
}

// Close releases opened log files
func (l *Logger) Close() error {
	var err error
	for _, closer := range l.closers {
		if cErr := closer.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}
	l.closers = nil
	return err
}

// New creates a logger fanning out to a text handler on terminal, an optional
// JSON file and an optional systemd journal. A nil terminal writer discards
// terminal output.
func New(cfg *Config, terminal io.Writer) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	options := &slog.HandlerOptions{Level: level}
	ret := &Logger{}

	var handlers []slog.Handler
	var terminalHandler slog.Handler
	if terminal != nil {
		terminalHandler = slog.NewTextHandler(terminal, options)
		handlers = append(handlers, terminalHandler)
	}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		ret.closers = append(ret.closers, f)
		handlers = append(handlers, slog.NewJSONHandler(f, options))
	}

	if cfg.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if terminalHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = terminalHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	ret.Logger = slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
	return ret, nil
}

// Discard returns a logger that drops every record
func Discard() *Logger {
	return &Logger{Logger: slog.New(&Handler{Handler: slogmulti.Fanout()})}
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}
