// FILE: lixenwraith/benchconf/decode_test.go
package benchconf

import (
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeGlobalOptions tests decoding the global section into a typed record
func TestDecodeGlobalOptions(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		tree := resolveInput(t, nil, nil)
		opts, err := tree.Options()
		require.NoError(t, err)

		assert.Equal(t, "/bench", opts.WorkDir)
		assert.Equal(t, 1, opts.Threads)
		assert.True(t, opts.Confirm)
		assert.Equal(t, 0, opts.Verbosity)
		assert.False(t, opts.DryRun)
		assert.Equal(t, "", opts.LogDir, "unset logdir decodes as empty")
		assert.Empty(t, opts.Meta)
		assert.Empty(t, opts.IO)
		assert.True(t, opts.Override)
		assert.Equal(t, []int{10}, opts.OpCount)
		assert.Equal(t, []int{16}, opts.Factor)
		assert.Equal(t, []int64{MB}, opts.FileSize)
		assert.Equal(t, []int64{KB}, opts.BlockSize)
		assert.Empty(t, opts.Extra)
	})

	t.Run("ExtraKeysRetained", func(t *testing.T) {
		tree := resolveInput(t, nil, map[string]any{"textreport": "True", "dryrun": "1"})
		opts, err := tree.Options()
		require.NoError(t, err)
		assert.True(t, opts.DryRun)
		assert.Equal(t, "True", opts.Extra["textreport"])
	})

	t.Run("Operations", func(t *testing.T) {
		tree := resolveInput(t, nil, map[string]any{"meta": "mkdir", "io": "write,read"})
		opts, err := tree.Options()
		require.NoError(t, err)
		assert.Equal(t, []string{"mkdir", "rmdir", "read", "write"}, opts.Operations())
	})
}

// TestLogDirectory tests the explicit and generated log directory
func TestLogDirectory(t *testing.T) {
	explicit := GlobalOptions{WorkDir: "/bench", LogDir: "/logs"}
	assert.Equal(t, "/logs", explicit.LogDirectory())

	generated := GlobalOptions{WorkDir: "/bench"}
	first := generated.LogDirectory()
	second := generated.LogDirectory()
	assert.Equal(t, "/bench", filepath.Dir(first))
	assert.True(t, strings.HasPrefix(filepath.Base(first), "paramark-"))
	assert.Len(t, filepath.Base(first), len("paramark-")+8)
	assert.NotEqual(t, first, second)
}

// TestDecodeOperation tests decoding individual operation sections
func TestDecodeOperation(t *testing.T) {
	tree := resolveInput(t, nil, nil)

	t.Run("SymbolicFlagsAndMode", func(t *testing.T) {
		op, err := tree.Operation("creat")
		require.NoError(t, err)
		assert.Equal(t, "creat", op.Name)
		assert.Equal(t, []int{10}, op.OpCount)

		flags, ok := op.FlagBits()
		require.True(t, ok)
		assert.True(t, flags.Has(Bitmask(syscall.O_CREAT)))
		assert.True(t, flags.Has(Bitmask(syscall.O_TRUNC)))

		mode, ok := op.ModeBits()
		require.True(t, ok)
		assert.Equal(t, Bitmask(0o600), mode)
		assert.Equal(t, "0600", mode.String())

		_, ok = op.ModeString()
		assert.False(t, ok)
	})

	t.Run("OpaqueMode", func(t *testing.T) {
		op, err := tree.Operation("fread")
		require.NoError(t, err)

		mode, ok := op.ModeString()
		require.True(t, ok)
		assert.Equal(t, "r", mode)

		_, ok = op.ModeBits()
		assert.False(t, ok)
		_, ok = op.FlagBits()
		assert.False(t, ok, "fread has no flags key")

		assert.Equal(t, []int64{DefaultBufferSize}, op.BufSize)
	})

	t.Run("UnsetTimes", func(t *testing.T) {
		op, err := tree.Operation("utime")
		require.NoError(t, err)
		assert.Equal(t, "", op.Times)
	})

	t.Run("Fsync", func(t *testing.T) {
		op, err := tree.Operation("fwrite")
		require.NoError(t, err)
		assert.False(t, op.Fsync)
		assert.Equal(t, []int64{MB}, op.FileSize)
	})

	t.Run("MissingSection", func(t *testing.T) {
		_, err := tree.Operation("nope")
		assert.Error(t, err)
	})
}

// TestDecodeValuesTarget tests target validation
func TestDecodeValuesTarget(t *testing.T) {
	var opts OpOptions
	assert.Error(t, decodeValues(map[string]any{}, opts))
	assert.Error(t, decodeValues(map[string]any{}, (*OpOptions)(nil)))

	err := decodeValues(map[string]any{"opcnt": "1"}, &opts)
	assert.Error(t, err, "weak conversion is disabled")
}
