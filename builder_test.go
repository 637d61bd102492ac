// FILE: lixenwraith/benchconf/builder_test.go
package benchconf

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolverBuilder tests the fluent resolver
func TestResolverBuilder(t *testing.T) {
	t.Run("EmbeddedDefaults", func(t *testing.T) {
		tree, err := NewResolver().WithBaseDir("/bench").Resolve()
		require.NoError(t, err)
		assert.True(t, tree.Equal(resolveInput(t, nil, nil)))
	})

	t.Run("CustomDefaults", func(t *testing.T) {
		tree, err := NewResolver().
			WithDefaults([]byte("[global]\nnthreads = 2\n\n[mkdir]\nopcnt = 1\n")).
			Resolve()
		require.NoError(t, err)
		assert.Equal(t, []string{"mkdir"}, tree.SectionNames())
		n, _ := tree.Global("nthreads")
		assert.Equal(t, 2, n)
	})

	t.Run("FilesAndOverrides", func(t *testing.T) {
		path := writeFile(t, filepath.Join(t.TempDir(), "run.conf"), "[global]\nnthreads = 3\nverbosity = 4\n")

		tree, err := NewResolver().
			WithFiles(path).
			WithOverrides(map[string]any{"verbosity": "1"}).
			WithOverride("dryrun", true).
			Resolve()
		require.NoError(t, err)

		n, _ := tree.Global("nthreads")
		assert.Equal(t, 3, n)
		v, _ := tree.Global("verbosity")
		assert.Equal(t, 1, v)
		d, _ := tree.Global("dryrun")
		assert.Equal(t, true, d)
		assert.Equal(t, []string{path}, tree.Loaded())
	})

	t.Run("WithOverrideOnEmptyMap", func(t *testing.T) {
		r := NewResolver().WithOverride("nthreads", "6")
		assert.Equal(t, map[string]any{"nthreads": "6"}, r.Input().Overrides)
	})

	t.Run("Discovery", func(t *testing.T) {
		tmpDir := t.TempDir()
		home := filepath.Join(tmpDir, "home")
		work := filepath.Join(tmpDir, "work")
		writeFile(t, filepath.Join(home, "paramark_conf"), "[global]\nnthreads = 2\n")
		writeFile(t, filepath.Join(work, ".paramark_conf"), "[global]\nnthreads = 5\n")

		tree, err := NewResolver().
			WithDiscovery(DiscoveryOptions{HomeDir: home, WorkDir: work, UseHome: true, UseCurrentDir: true}).
			Resolve()
		require.NoError(t, err)
		n, _ := tree.Global("nthreads")
		assert.Equal(t, 5, n)
		assert.Len(t, tree.Loaded(), 2)
	})

	t.Run("LoggerReceivesDroppedOps", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, VerboseWarning)

		_, err := NewResolver().
			WithLogger(logger).
			WithOverride("meta", "mkdir,bogus").
			Resolve()
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "bogus")
		assert.Contains(t, buf.String(), "level=warning")
	})
}

// TestResolverValidators tests validators run in order after resolution
func TestResolverValidators(t *testing.T) {
	t.Run("RequireThreads", func(t *testing.T) {
		_, err := NewResolver().
			WithOverride("nthreads", "0").
			WithValidator(RequireThreads).
			Resolve()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "nthreads")
	})

	t.Run("RequireSectionsPasses", func(t *testing.T) {
		_, err := NewResolver().
			WithOverrides(map[string]any{"meta": "stat_exist", "io": "read"}).
			WithValidator(RequireSections).
			Resolve()
		assert.NoError(t, err)
	})

	t.Run("RequireSectionsFails", func(t *testing.T) {
		_, err := NewResolver().
			WithDefaults([]byte("[global]\nmeta = mkdir\n\n[mkdir]\nopcnt = 1\n")).
			WithValidator(RequireSections).
			Resolve()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "rmdir")
	})

	t.Run("RequireSectionsRejectsWrongClass", func(t *testing.T) {
		// typed selections bypass name filtering during coercion
		_, err := NewResolver().
			WithOverride("meta", []string{"mkdir", "read"}).
			WithValidator(RequireSections).
			Resolve()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), `"read"`)

		_, err = NewResolver().
			WithOverride("io", []string{"unlink"}).
			WithValidator(RequireSections).
			Resolve()
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("CustomOrder", func(t *testing.T) {
		var calls []string
		first := errors.New("first failed")

		_, err := NewResolver().
			WithValidator(func(*Tree) error { calls = append(calls, "a"); return nil }).
			WithValidator(nil).
			WithValidator(func(*Tree) error { calls = append(calls, "b"); return first }).
			WithValidator(func(*Tree) error { calls = append(calls, "c"); return nil }).
			Resolve()

		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, []string{"a", "b"}, calls)
	})

	t.Run("MustResolvePanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewResolver().WithOverride("nthreads", "x").MustResolve()
		})
		assert.NotPanics(t, func() {
			NewResolver().MustResolve()
		})
	})
}

// TestLevelForVerbosity tests the verbosity to log level mapping
func TestLevelForVerbosity(t *testing.T) {
	cases := map[int]logrus.Level{
		0: logrus.ErrorLevel,
		2: logrus.ErrorLevel,
		3: logrus.WarnLevel,
		4: logrus.InfoLevel,
		5: logrus.DebugLevel,
		9: logrus.DebugLevel,
	}
	for verbosity, level := range cases {
		assert.Equal(t, level, LevelForVerbosity(verbosity), "verbosity %d", verbosity)
	}
}
