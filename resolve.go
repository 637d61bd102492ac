// File: lixenwraith/benchconf/resolve.go
package benchconf

import (
	"fmt"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

// Input is everything resolution depends on. Resolve is a pure function of Defaults,
// the content of Files and Overrides.
type Input struct {
	// Defaults is the baseline INI text, normally DefaultConfig()
	Defaults []byte

	// Files are candidate configuration files, lowest precedence first
	Files []string

	// Overrides are command-line values keyed by global key name. Only options the user
	// explicitly set belong here. Values are raw strings or already-typed values.
	Overrides map[string]any

	// BaseDir resolves relative wdir/logdir values; empty uses the process working directory
	BaseDir string

	// Logger receives diagnostics; nil discards them
	Logger logrus.FieldLogger
}

// Resolve loads, coerces and merges the configuration described by in.
// Fatal errors are *SourceError or *CoercionError; no partial tree is returned.
func Resolve(in Input) (*Tree, error) {
	logger := in.Logger
	if logger == nil {
		logger = discardLogger()
	}

	raw, err := LoadSources(in.Defaults, in.Files, logger)
	if err != nil {
		return nil, err
	}

	coercer := Coercer{Logger: logger, BaseDir: in.BaseDir}
	return resolveRaw(raw, in.Overrides, coercer, logger)
}

// resolveRaw applies the precedence policy to already layered sources.
func resolveRaw(raw *RawConfig, overrides map[string]any, c Coercer, logger logrus.FieldLogger) (*Tree, error) {
	root := NewValues(nil)
	global := root.Sub(GlobalSection)

	// File-resolved global values
	for _, entry := range raw.Entries(GlobalSection) {
		value, err := c.Coerce(GlobalSection, entry.Key, entry.Value)
		if err != nil {
			return nil, withOrigin(err, entry.Origin)
		}
		global.Set(entry.Key, value)
	}

	// Command-line values win over every file layer
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		if !isValidKeySegment(key) {
			return nil, &CoercionError{Section: GlobalSection, Key: key, Raw: fmt.Sprintf("%v", overrides[key]),
				Err: ErrInvalidKey}
		}
		value, err := c.CoerceValue(GlobalSection, key, overrides[key])
		if err != nil {
			return nil, err
		}
		if previous, ok := global.Get(key); ok {
			logger.WithFields(logrus.Fields{"key": key, "file": previous, "cli": value}).Debug("command line overrides file value")
		}
		global.Set(key, value)
	}

	override := false
	if global.Has("override") {
		b, err := global.Bool("override")
		if err != nil {
			return nil, &CoercionError{Section: GlobalSection, Key: "override", Err: err}
		}
		override = b
	}

	for _, name := range raw.Sections() {
		if name == GlobalSection {
			continue
		}
		section := root.Sub(name)
		for _, entry := range raw.Entries(name) {
			// Local values are coerced even when overridden so a bad value is still fatal
			value, err := c.Coerce(name, entry.Key, entry.Value)
			if err != nil {
				return nil, withOrigin(err, entry.Origin)
			}
			if override {
				if globalValue, ok := global.Get(entry.Key); ok {
					value = cloneValue(globalValue)
				}
			}
			section.Set(entry.Key, value)
		}
	}

	return newTree(root, raw.Loaded()), nil
}

// withOrigin attaches the source path to a coercion failure
func withOrigin(err error, origin string) error {
	return &SourceError{Path: origin, Err: err}
}
