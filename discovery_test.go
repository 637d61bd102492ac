// FILE: lixenwraith/benchconf/discovery_test.go
package benchconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultSearchPaths tests candidate ordering from lowest to highest precedence
func TestDefaultSearchPaths(t *testing.T) {
	home := filepath.Join(string(filepath.Separator), "home", "user")
	work := filepath.Join(string(filepath.Separator), "work")

	t.Run("AllCandidates", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("run.conf")
		opts.HomeDir = home
		opts.WorkDir = work

		assert.Equal(t, []string{
			filepath.Join(home, "paramark_conf"),
			filepath.Join(work, ".paramark_conf"),
			filepath.Join(work, "run.conf"),
		}, DefaultSearchPaths(opts))
	})

	t.Run("AbsoluteExplicit", func(t *testing.T) {
		explicit := filepath.Join(string(filepath.Separator), "etc", "bench", "..", "run.conf")
		paths := DefaultSearchPaths(DiscoveryOptions{WorkDir: work, Explicit: explicit})
		assert.Equal(t, []string{filepath.Join(string(filepath.Separator), "etc", "run.conf")}, paths)
	})

	t.Run("NoExplicit", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("")
		opts.HomeDir = home
		opts.WorkDir = work
		assert.Len(t, DefaultSearchPaths(opts), 2)
	})

	t.Run("CustomName", func(t *testing.T) {
		paths := DefaultSearchPaths(DiscoveryOptions{Name: "bench", HomeDir: home, WorkDir: work, UseHome: true, UseCurrentDir: true})
		assert.Equal(t, []string{filepath.Join(home, "bench"), filepath.Join(work, ".bench")}, paths)
	})

	t.Run("ProcessDefaults", func(t *testing.T) {
		cwd, err := os.Getwd()
		require.NoError(t, err)

		paths := DefaultSearchPaths(DiscoveryOptions{UseCurrentDir: true, Explicit: "x.conf"})
		assert.Equal(t, []string{filepath.Join(cwd, ".paramark_conf"), filepath.Join(cwd, "x.conf")}, paths)
	})
}
