// File: lixenwraith/benchconf/convenience.go
package benchconf

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// Quick resolves the standard configuration in a single call: embedded defaults,
// ~/paramark_conf, ./.paramark_conf, the explicit path, then the overrides.
func Quick(explicitPath string, overrides map[string]any) (*Tree, error) {
	return NewResolver().
		WithDiscovery(DefaultDiscoveryOptions(explicitPath)).
		WithOverrides(overrides).
		Resolve()
}

// MustQuick is like Quick but panics on error
func MustQuick(explicitPath string, overrides map[string]any) *Tree {
	tree, err := Quick(explicitPath, overrides)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return tree
}

// Dump writes the resolved tree to stdout in TOML format
func (t *Tree) Dump() error {
	return t.Encode(os.Stdout, FormatTOML)
}

// Debug returns a formatted listing of every resolved section and the files it came from.
// Byte sizes are annotated in human-readable binary units.
func (t *Tree) Debug() string {
	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	b.WriteString("Sources: " + strings.Join(append([]string{DefaultOrigin}, t.loaded...), ", ") + "\n")

	writeSection(&b, GlobalSection, t.GlobalMap())
	for _, name := range t.order {
		writeSection(&b, name, t.sections[name].Map())
	}
	return b.String()
}

func writeSection(b *strings.Builder, name string, values map[string]any) {
	fmt.Fprintf(b, "[%s]\n", name)
	for _, key := range slices.Sorted(maps.Keys(values)) {
		fmt.Fprintf(b, "  %s = %s\n", key, describeValue(key, values[key]))
	}
}

// describeValue renders one coerced value for Debug
func describeValue(key string, val any) string {
	switch t := val.(type) {
	case UnsetValue:
		return "(unset)"
	case Bitmask:
		return t.String()
	case []int64:
		if KindOf(key) == KindSizeList || KindOf(key) == KindBufSize {
			parts := make([]string, len(t))
			for i, n := range t {
				parts[i] = describeSize(n)
			}
			return fmt.Sprintf("%v (%s)", t, strings.Join(parts, ", "))
		}
	case string:
		return fmt.Sprintf("%q", t)
	}
	return fmt.Sprintf("%v", val)
}

func describeSize(n int64) string {
	if n < 0 {
		return "system default"
	}
	return humanize.IBytes(uint64(n))
}
