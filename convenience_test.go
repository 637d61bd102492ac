// FILE: lixenwraith/benchconf/convenience_test.go
package benchconf

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuick tests the one-call resolution with an explicit file
func TestQuick(t *testing.T) {
	t.Run("ExplicitFileAndOverrides", func(t *testing.T) {
		path := writeFile(t, filepath.Join(t.TempDir(), "quick.conf"), "[global]\nnthreads = 7\nbsize = 4K\n")

		tree, err := Quick(path, map[string]any{"bsize": "8K"})
		require.NoError(t, err)

		n, _ := tree.Global("nthreads")
		assert.Equal(t, 7, n)
		bsize, _ := tree.Global("bsize")
		assert.Equal(t, []int64{8 * KB}, bsize)
		assert.Contains(t, tree.Loaded(), path)
	})

	t.Run("MustQuickPanicsOnBadFile", func(t *testing.T) {
		path := writeFile(t, filepath.Join(t.TempDir(), "broken.conf"), "[global\n")
		assert.Panics(t, func() {
			MustQuick(path, nil)
		})
	})
}

// TestDebug tests the human-readable listing
func TestDebug(t *testing.T) {
	tree := resolveInput(t, nil, map[string]any{"fsize": "1K,2M"})
	out := tree.Debug()

	assert.True(t, strings.HasPrefix(out, "Configuration Debug Info:\n"))
	assert.Contains(t, out, "Sources: <default>\n")
	assert.Contains(t, out, "[global]\n")
	assert.Contains(t, out, "  fsize = [1024 2097152] (1.0 KiB, 2.0 MiB)\n")
	assert.Contains(t, out, "  logdir = (unset)\n")
	assert.Contains(t, out, "  mode = 0600\n")
	assert.Contains(t, out, "  mode = \"r\"\n")
	assert.Contains(t, out, "  bufsize = [-1] (system default)\n")
	assert.Contains(t, out, "  nthreads = 1\n")

	// global first, then canonical section order
	assert.Less(t, strings.Index(out, "[global]"), strings.Index(out, "[mkdir]"))
	assert.Less(t, strings.Index(out, "[unlink]"), strings.Index(out, "[read]"))
}
