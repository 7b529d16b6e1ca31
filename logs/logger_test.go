package logs

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/booklab/model/types"
)

func TestNew(t *testing.T) {
	terminal := new(bytes.Buffer)
	file := filepath.Join(t.TempDir(), "booklab.log")
	logger, err := New(&Config{Level: "debug", File: file}, terminal)
	require.NoError(t, err)

	ctx := types.EnsureExecutionContext(context.Background(), "session", "s1", "cell", "3")
	logger.DebugContext(ctx, "dispatched", "kind", "list")
	require.NoError(t, logger.Close())

	assert.Contains(t, terminal.String(), "msg=dispatched")
	assert.Contains(t, terminal.String(), "kind=list")
	assert.Contains(t, terminal.String(), "session=s1")
	assert.Contains(t, terminal.String(), "cell=3")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"dispatched"`)
}

func TestNew_Level(t *testing.T) {
	terminal := new(bytes.Buffer)
	logger, err := New(DefaultConfig(), terminal)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, terminal.String(), "hidden")
	assert.Contains(t, terminal.String(), "shown")

	_, err = New(&Config{Level: "loud"}, terminal)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in     string
		expect slog.Level
	}{
		{in: "DEBUG", expect: slog.LevelDebug},
		{in: "info", expect: slog.LevelInfo},
		{in: "", expect: slog.LevelWarn},
		{in: "error", expect: slog.LevelError},
	}
	for _, tc := range testCases {
		level, err := ParseLevel(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.expect, level)
	}
}

func TestToJournalKey(t *testing.T) {
	assert.Equal(t, "SESSION_ID", toJournalKey("session.id"))
	Discard().Error("dropped")
}
