package exec

import (
	"context"
	osexec "os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	testCases := []struct {
		in     string
		expect string
	}{
		{in: "plain", expect: "'plain'"},
		{in: "with space", expect: "'with space'"},
		{in: "it's", expect: `'it'\''s'`},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, Quote(tc.in))
	}
}

func TestOutput_Combined(t *testing.T) {
	assert.Equal(t, "out", (&Output{Stdout: "out"}).Combined())
	assert.Equal(t, "err", (&Output{Stderr: "err"}).Combined())
	assert.Equal(t, "out\nerr", (&Output{Stdout: "out", Stderr: "err"}).Combined())
}

func TestService_Execute(t *testing.T) {
	if _, err := osexec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
	srv := New()
	ctx := context.Background()
	defer srv.Close(ctx)

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	output := &Output{}
	require.NoError(t, srv.Execute(ctx, &Input{Workdir: dir, Commands: []string{"pwd"}}, output))
	assert.Equal(t, dir, output.Stdout)
	assert.Equal(t, 0, output.Status)

	output = &Output{}
	require.NoError(t, srv.Execute(ctx, &Input{Commands: []string{"export BOOKLAB_X=42"}}, output))
	output = &Output{}
	require.NoError(t, srv.Execute(ctx, &Input{Commands: []string{"echo $BOOKLAB_X"}}, output))
	assert.Equal(t, "42", output.Stdout)

	output = &Output{}
	require.NoError(t, srv.Execute(ctx, &Input{Session: "other", Commands: []string{"(exit 3)", "echo never"}}, output))
	assert.Equal(t, 3, output.Status)
	assert.Len(t, output.Commands, 1)
}

func TestService_ExecuteAfterTimeout(t *testing.T) {
	if _, err := osexec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
	srv := New()
	ctx := context.Background()
	defer srv.Close(ctx)

	output := &Output{}
	require.NoError(t, srv.Execute(ctx, &Input{Commands: []string{"sleep 3; echo late"}, TimeoutMs: 500}, output))
	assert.NotEqual(t, 0, output.Status)
	assert.Empty(t, output.Stdout)
	assert.Contains(t, output.Stderr, "timed out")

	output = &Output{}
	require.NoError(t, srv.Execute(ctx, &Input{Commands: []string{"echo next"}}, output))
	assert.Equal(t, "next", output.Stdout)
	assert.Equal(t, 0, output.Status)
}
