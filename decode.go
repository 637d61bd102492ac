// FILE: lixenwraith/benchconf/decode.go
package benchconf

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// tagName is the struct tag used to map typed records onto configuration keys
const tagName = "conf"

// GlobalOptions is the typed view of the global section.
// Keys outside the enumerated set are kept in Extra.
type GlobalOptions struct {
	WorkDir   string   `conf:"wdir"`
	Threads   int      `conf:"nthreads"`
	Confirm   bool     `conf:"confirm"`
	Verbosity int      `conf:"verbosity"`
	DryRun    bool     `conf:"dryrun"`
	LogDir    string   `conf:"logdir"` // empty when unset
	Meta      []string `conf:"meta"`
	IO        []string `conf:"io"`
	Override  bool     `conf:"override"`
	OpCount   []int    `conf:"opcnt"`
	Factor    []int    `conf:"factor"`
	FileSize  []int64  `conf:"fsize"`
	BlockSize []int64  `conf:"bsize"`

	Extra map[string]any `conf:",remain"`
}

// LogDirectory returns logdir, or a freshly generated directory under wdir when unset.
// Each call with an unset logdir yields a new name.
func (g GlobalOptions) LogDirectory() string {
	if g.LogDir != "" {
		return g.LogDir
	}
	id, _, _ := strings.Cut(uuid.NewString(), "-")
	return filepath.Join(g.WorkDir, "paramark-"+id)
}

// Operations returns the selected metadata operations followed by the I/O operations
func (g GlobalOptions) Operations() []string {
	out := make([]string, 0, len(g.Meta)+len(g.IO))
	out = append(out, g.Meta...)
	return append(out, g.IO...)
}

// OpOptions is the typed view of one operation section.
// Flags and Mode hold a Bitmask when symbolic, otherwise the opaque string.
type OpOptions struct {
	Name      string  `conf:"-"`
	OpCount   []int   `conf:"opcnt"`
	Factor    []int   `conf:"factor"`
	FileSize  []int64 `conf:"fsize"`
	BlockSize []int64 `conf:"bsize"`
	BufSize   []int64 `conf:"bufsize"`
	Flags     any     `conf:"flags"`
	Mode      any     `conf:"mode"`
	Fsync     bool    `conf:"fsync"`
	Times     string  `conf:"times"` // empty when unset

	Extra map[string]any `conf:",remain"`
}

// FlagBits returns the evaluated open flags; false when flags is absent or opaque
func (o OpOptions) FlagBits() (Bitmask, bool) {
	b, ok := o.Flags.(Bitmask)
	return b, ok
}

// ModeBits returns the evaluated mode; false when mode is absent or opaque
func (o OpOptions) ModeBits() (Bitmask, bool) {
	b, ok := o.Mode.(Bitmask)
	return b, ok
}

// ModeString returns an opaque mode such as "r" or "w+"; false when mode was evaluated
func (o OpOptions) ModeString() (string, bool) {
	s, ok := o.Mode.(string)
	return s, ok
}

// Options decodes the global section into a GlobalOptions record
func (t *Tree) Options() (GlobalOptions, error) {
	var opts GlobalOptions
	if err := decodeValues(t.global.Map(), &opts); err != nil {
		return GlobalOptions{}, fmt.Errorf("decode failed for section %q: %w", GlobalSection, err)
	}
	return opts, nil
}

// Operation decodes the named section into an OpOptions record
func (t *Tree) Operation(name string) (OpOptions, error) {
	section, ok := t.Section(name)
	if !ok {
		return OpOptions{}, fmt.Errorf("section not present: %s", name)
	}
	var opts OpOptions
	if err := decodeValues(section, &opts); err != nil {
		return OpOptions{}, fmt.Errorf("decode failed for section %q: %w", name, err)
	}
	opts.Name = name
	return opts, nil
}

// decodeValues is the single authoritative function for decoding coerced values
// into typed records. Values are already typed, so weak conversion stays off.
func decodeValues(values map[string]any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: false,
		DecodeHook:       getDecodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	return decoder.Decode(values)
}

// getDecodeHook returns the composite decode hook for all type conversions
func getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		unsetHookFunc(),
	)
}

// unsetHookFunc decodes the Unset sentinel as the target's zero value
func unsetHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f != reflect.TypeOf(UnsetValue{}) {
			return data, nil
		}
		if t.Kind() == reflect.Interface {
			return data, nil
		}
		return reflect.Zero(t).Interface(), nil
	}
}
