package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")
	require.NoError(t, Init("booklab", "0.0.1", fname))

	ctx, span := StartCommand(context.Background(), "list", "session-1", 3)
	span.WithAttributes(map[string]string{"variant": "booklab"})
	AddEvent(ctx, "action", map[string]string{"service": "system/storage", "method": "list"})
	current, ok := SpanFromContext(ctx)
	assert.True(t, ok)
	assert.NotNil(t, current)
	EndSpan(span, nil)

	_, failing := StartSpan(context.Background(), "booklab.stat")
	EndSpan(failing, errors.New("file not found: a.txt"))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booklab.list")
	assert.Contains(t, string(data), "session-1")
	assert.Contains(t, string(data), "system/storage")
	assert.Contains(t, string(data), "file not found: a.txt")

	_, ok = SpanFromContext(context.Background())
	assert.False(t, ok)
	AddEvent(context.Background(), "ignored", nil)
	EndSpan(nil, nil)

	require.NoError(t, Init("booklab", "0.0.2", filepath.Join(t.TempDir(), "second.txt")))
	file, ok := output.(*os.File)
	require.True(t, ok)
	assert.Equal(t, fname, file.Name())
	require.NoError(t, Shutdown(context.Background()))
	assert.Nil(t, output)
}
