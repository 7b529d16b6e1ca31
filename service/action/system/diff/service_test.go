package diff

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/booklab/model/types"
)

func TestGenerate(t *testing.T) {
	testCases := []struct {
		name   string
		old    string
		new    string
		expect string
		stats  Stats
	}{
		{name: "identical", old: "a\nb\n", new: "a\nb\n", expect: ""},
		{
			name:   "changed line",
			old:    "line1\nline2\nline3\n",
			new:    "line1\nline2 changed\nline3\n+added\n",
			expect: "--- a.txt\n+++ b.txt\n@@ -1,3 +1,4 @@\n line1\n-line2\n+line2 changed\n line3\n++added\n",
			stats:  Stats{Insertions: 2, Deletions: 1, Hunks: 1},
		},
		{
			name:   "removed line with trailing newline",
			old:    "a\n-- x\nb\n",
			new:    "a\nb\n",
			expect: "--- a.txt\n+++ b.txt\n@@ -1,3 +1,2 @@\n a\n--- x\n b\n",
			stats:  Stats{Deletions: 1, Hunks: 1},
		},
		{
			name:   "unterminated last line",
			old:    "a\nb",
			new:    "a\nc",
			expect: "--- a.txt\n+++ b.txt\n@@ -1,2 +1,2 @@\n a\n-b\n+c\n",
			stats:  Stats{Insertions: 1, Deletions: 1, Hunks: 1},
		},
		{
			name:   "from empty",
			old:    "",
			new:    "a\n",
			expect: "--- a.txt\n+++ b.txt\n@@ -0,0 +1 @@\n+a\n",
			stats:  Stats{Insertions: 1, Hunks: 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			patch, stats, err := Generate([]byte(tc.old), []byte(tc.new), "a.txt", "b.txt", 0)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, patch)
			assert.Equal(t, tc.stats, stats)
		})
	}
}

func TestService_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("x\ny\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("x\ny\n"), 0644))

	srv := New()
	ctx := context.Background()
	output := &Output{}
	require.NoError(t, srv.Files(ctx, &FilesInput{FromURL: a, ToURL: b}, output))
	assert.Equal(t, "", output.Patch)

	require.NoError(t, os.WriteFile(b, []byte("x\nz\n"), 0644))
	output = &Output{}
	require.NoError(t, srv.Files(ctx, &FilesInput{FromURL: a, ToURL: b, FromLabel: "a.txt", ToLabel: "b.txt"}, output))
	assert.Contains(t, output.Patch, "--- a.txt\n+++ b.txt\n")
	assert.Equal(t, 1, output.Stats.Insertions)

	err := srv.Files(ctx, &FilesInput{FromURL: a, ToURL: filepath.Join(dir, "missing")}, &Output{})
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestService_Text(t *testing.T) {
	output := &Output{}
	require.NoError(t, New().Text(context.Background(), &TextInput{From: "x=1\n", To: "x = 1\n"}, output))
	assert.Contains(t, output.Patch, "--- original\n+++ formatted\n")
	assert.Equal(t, Stats{Insertions: 1, Deletions: 1, Hunks: 1}, output.Stats)
}
