// File: lixenwraith/benchconf/tree.go
package benchconf

import (
	"reflect"
	"slices"
	"strings"
)

// Tree is the resolved configuration: a global sub-tree and one sub-tree per section.
// A Tree is immutable once returned by Resolve; accessors hand out deep copies and it is
// safe to share between goroutines.
type Tree struct {
	global   *Values
	sections map[string]*Values
	order    []string
	loaded   []string
}

func newTree(root *Values, loaded []string) *Tree {
	t := &Tree{
		global:   root.Sub(GlobalSection).Clone(),
		sections: make(map[string]*Values),
		loaded:   append([]string(nil), loaded...),
	}
	for _, name := range root.SubNames() {
		if name == GlobalSection {
			continue
		}
		t.sections[name] = root.Sub(name).Clone()
		t.order = append(t.order, name)
	}
	slices.SortStableFunc(t.order, func(a, b string) int {
		if ia, ib := opIndex(a), opIndex(b); ia != ib {
			return ia - ib
		}
		return strings.Compare(a, b)
	})
	return t
}

// Global returns the resolved global value for key
func (t *Tree) Global(key string) (any, bool) {
	val, ok := t.global.Get(key)
	if !ok {
		return nil, false
	}
	return cloneValue(val), true
}

// GlobalMap returns a copy of every resolved global key
func (t *Tree) GlobalMap() map[string]any {
	return t.global.Map()
}

// Section returns a copy of the named section's resolved keys
func (t *Tree) Section(name string) (map[string]any, bool) {
	sec, ok := t.sections[name]
	if !ok {
		return nil, false
	}
	return sec.Map(), true
}

// HasSection reports whether the named section exists
func (t *Tree) HasSection(name string) bool {
	_, ok := t.sections[name]
	return ok
}

// SectionNames returns section names in canonical operation order: metadata operations,
// then I/O operations, then any other sections sorted by name.
func (t *Tree) SectionNames() []string {
	return slices.Clone(t.order)
}

// Loaded returns the configuration files that contributed to the tree
func (t *Tree) Loaded() []string {
	return slices.Clone(t.loaded)
}

// Equal reports whether two trees hold structurally equal values
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !reflect.DeepEqual(t.global.Map(), other.global.Map()) || !slices.Equal(t.order, other.order) {
		return false
	}
	for _, name := range t.order {
		if !reflect.DeepEqual(t.sections[name].Map(), other.sections[name].Map()) {
			return false
		}
	}
	return true
}

// Export returns the tree as nested maps keyed by section, with Unset keys omitted
// and bitmasks as plain integers.
func (t *Tree) Export() map[string]any {
	out := map[string]any{GlobalSection: exportMap(t.global.Map())}
	for _, name := range t.order {
		out[name] = exportMap(t.sections[name].Map())
	}
	return out
}
