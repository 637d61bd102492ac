// File: lixenwraith/benchconf/ops.go
package benchconf

import (
	"slices"
	"strings"
)

// MetaOps is the canonical ordering of metadata operations
var MetaOps = []string{
	"mkdir", "rmdir", "creat", "access", "open", "open_close",
	"stat_exist", "stat_non", "utime", "chmod", "rename", "unlink",
}

// IOOps is the canonical ordering of I/O operations
var IOOps = []string{
	"read", "reread", "write", "rewrite", "fread", "freread", "fwrite", "frewrite",
}

// IsMetaOp reports whether name is a metadata operation
func IsMetaOp(name string) bool {
	return slices.Contains(MetaOps, name)
}

// IsIOOp reports whether name is an I/O operation
func IsIOOp(name string) bool {
	return slices.Contains(IOOps, name)
}

// opIndex returns the canonical position of an operation section name.
// Metadata operations sort before I/O operations; unknown names sort last.
func opIndex(name string) int {
	if i := slices.Index(MetaOps, name); i >= 0 {
		return i
	}
	if i := slices.Index(IOOps, name); i >= 0 {
		return len(MetaOps) + i
	}
	return len(MetaOps) + len(IOOps)
}

// splitOps lower-cases and trims the comma-separated names, keeping those in canonical.
// Dropped names are returned separately for diagnostics.
func splitOps(raw string, canonical []string) (kept, dropped []string) {
	for _, name := range strings.Split(raw, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if slices.Contains(canonical, name) {
			kept = append(kept, name)
		} else {
			dropped = append(dropped, name)
		}
	}
	return kept, dropped
}

// canonicalSet deduplicates names and orders them by canonical position
func canonicalSet(names []string, canonical []string) []string {
	out := make([]string, 0, len(names))
	for _, op := range canonical {
		if slices.Contains(names, op) {
			out = append(out, op)
		}
	}
	return out
}

// normalizeMetaOps applies the metadata selection rule: a non-empty selection always
// carries mkdir and rmdir, and once more than two operations are selected creat and
// unlink are carried as well.
func normalizeMetaOps(names []string) []string {
	set := canonicalSet(names, MetaOps)
	if len(set) == 0 {
		return []string{}
	}
	set = canonicalSet(append(set, "mkdir", "rmdir"), MetaOps)
	if len(set) > 2 {
		set = canonicalSet(append(set, "creat", "unlink"), MetaOps)
	}
	return set
}

// normalizeIOOps deduplicates and orders I/O operation names
func normalizeIOOps(names []string) []string {
	return canonicalSet(names, IOOps)
}
