// File: lixenwraith/benchconf/store.go
package benchconf

import (
	"maps"
	"slices"
)

// UnsetValue is the type of the Unset sentinel.
type UnsetValue struct{}

// String renders Unset as the empty string it was parsed from
func (UnsetValue) String() string { return "" }

// Unset is stored for path and timestamp keys whose raw value was empty.
// It is distinct from an absent key: Get reports (Unset, true).
var Unset = UnsetValue{}

// IsUnset reports whether v is the Unset sentinel
func IsUnset(v any) bool {
	_, ok := v.(UnsetValue)
	return ok
}

// Values is a keyed store of coerced configuration values with named sub-stores.
// Keys are case-sensitive. A Values is not safe for concurrent mutation; it is only
// written during resolution and read-only afterwards.
type Values struct {
	entries map[string]any
	subs    map[string]*Values
}

// NewValues creates an empty store, optionally seeded from a mapping
func NewValues(seed map[string]any) *Values {
	v := &Values{
		entries: make(map[string]any, len(seed)),
		subs:    make(map[string]*Values),
	}
	v.Update(seed)
	return v
}

// Set stores value under key, replacing any previous value.
func (v *Values) Set(key string, value any) {
	v.entries[key] = value
}

// Get returns the value for key. The second result is false when the key is absent.
func (v *Values) Get(key string) (any, bool) {
	val, ok := v.entries[key]
	return val, ok
}

// Has reports whether key is present
func (v *Values) Has(key string) bool {
	_, ok := v.entries[key]
	return ok
}

// Update overwrites every key of m in place, last write wins.
func (v *Values) Update(m map[string]any) {
	for key, val := range m {
		v.entries[key] = val
	}
}

// Sub returns the named sub-store, creating it if absent.
func (v *Values) Sub(name string) *Values {
	if sub, ok := v.subs[name]; ok {
		return sub
	}
	sub := NewValues(nil)
	v.subs[name] = sub
	return sub
}

// HasSub reports whether the named sub-store exists
func (v *Values) HasSub(name string) bool {
	_, ok := v.subs[name]
	return ok
}

// SubNames returns the names of all sub-stores in sorted order
func (v *Values) SubNames() []string {
	return slices.Sorted(maps.Keys(v.subs))
}

// Keys returns all keys in sorted order
func (v *Values) Keys() []string {
	return slices.Sorted(maps.Keys(v.entries))
}

// Len returns the number of keys, excluding sub-stores
func (v *Values) Len() int {
	return len(v.entries)
}

// Map returns a deep copy of the keys, excluding sub-stores.
func (v *Values) Map() map[string]any {
	out := make(map[string]any, len(v.entries))
	for key, val := range v.entries {
		out[key] = cloneValue(val)
	}
	return out
}

// Clone returns a deep copy of the store and all sub-stores
func (v *Values) Clone() *Values {
	clone := NewValues(v.Map())
	for name, sub := range v.subs {
		clone.subs[name] = sub.Clone()
	}
	return clone
}

// cloneValue copies the slice types produced by coercion so callers cannot alias stored state
func cloneValue(val any) any {
	switch t := val.(type) {
	case []int:
		return slices.Clone(t)
	case []int64:
		return slices.Clone(t)
	case []string:
		return slices.Clone(t)
	default:
		return val
	}
}
