// FILE: lixenwraith/benchconf/loader.go
package benchconf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// DefaultOrigin names the embedded template in diagnostics
const DefaultOrigin = "<default>"

// RawEntry is one key/value pair as parsed from a source, before coercion
type RawEntry struct {
	Section string
	Key     string
	Value   string
	Origin  string // path of the source that last set the key
}

// rawSection keeps entries in first-appearance order for stable diagnostics
type rawSection struct {
	entries map[string]RawEntry
	order   []string
}

// RawConfig is the layered, uncoerced content of every loaded source.
type RawConfig struct {
	sections map[string]*rawSection
	order    []string
	loaded   []string
}

func newRawConfig() *RawConfig {
	return &RawConfig{sections: make(map[string]*rawSection)}
}

// Sections returns section names in order of first appearance across sources
func (r *RawConfig) Sections() []string {
	return append([]string(nil), r.order...)
}

// HasSection reports whether any source declared the section
func (r *RawConfig) HasSection(name string) bool {
	_, ok := r.sections[name]
	return ok
}

// Entries returns the entries of a section in order of first appearance
func (r *RawConfig) Entries(section string) []RawEntry {
	sec, ok := r.sections[section]
	if !ok {
		return nil
	}
	out := make([]RawEntry, 0, len(sec.order))
	for _, key := range sec.order {
		out = append(out, sec.entries[key])
	}
	return out
}

// Lookup returns the layered entry for section and key
func (r *RawConfig) Lookup(section, key string) (RawEntry, bool) {
	sec, ok := r.sections[section]
	if !ok {
		return RawEntry{}, false
	}
	entry, ok := sec.entries[key]
	return entry, ok
}

// Loaded returns the file paths that contributed, in load order, excluding the template
func (r *RawConfig) Loaded() []string {
	return append([]string(nil), r.loaded...)
}

// set layers one entry on top of what earlier sources declared
func (r *RawConfig) set(entry RawEntry) {
	sec := r.section(entry.Section)
	if _, exists := sec.entries[entry.Key]; !exists {
		sec.order = append(sec.order, entry.Key)
	}
	sec.entries[entry.Key] = entry
}

func (r *RawConfig) section(name string) *rawSection {
	sec, ok := r.sections[name]
	if !ok {
		sec = &rawSection{entries: make(map[string]RawEntry)}
		r.sections[name] = sec
		r.order = append(r.order, name)
	}
	return sec
}

// Loader reads the embedded template and candidate files into a RawConfig.
type Loader struct {
	Logger logrus.FieldLogger
}

// LoadSources layers defaults and then each path in priority order (lowest first).
// Missing files are skipped; unreadable or malformed files are fatal.
func LoadSources(defaults []byte, paths []string, logger logrus.FieldLogger) (*RawConfig, error) {
	return (&Loader{Logger: logger}).Load(defaults, paths)
}

// Load layers defaults and then each path in order
func (l *Loader) Load(defaults []byte, paths []string) (*RawConfig, error) {
	logger := l.logger()
	raw := newRawConfig()

	if err := raw.layer(DefaultOrigin, defaults); err != nil {
		return nil, err
	}

	for _, path := range paths {
		data, found, err := readOptional(path)
		if err != nil {
			return nil, err
		}
		if !found {
			logger.WithField("path", path).Debug("config source not found, skipping")
			continue
		}
		if err := raw.layer(path, data); err != nil {
			return nil, err
		}
		raw.loaded = append(raw.loaded, path)
		logger.WithField("path", path).Debug("loaded config source")
	}

	return raw, nil
}

func (l *Loader) logger() logrus.FieldLogger {
	if l.Logger == nil {
		return discardLogger()
	}
	return l.Logger
}

// readOptional reads path, reporting found=false for missing files and directories
func readOptional(path string) ([]byte, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &SourceError{Path: path, Err: fmt.Errorf("failed to stat config file: %w", err)}
	}
	if info.IsDir() {
		return nil, false, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, false, &SourceError{Path: path, Err: fmt.Errorf("failed to open config file: %w", err)}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, false, &SourceError{Path: path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}
	return data, true, nil
}

// layer parses one INI source and overlays its sections on the accumulated state
func (r *RawConfig) layer(origin string, data []byte) error {
	file, err := parseINI(data)
	if err != nil {
		return &SourceError{Path: origin, Err: err}
	}

	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			if keys := section.KeyStrings(); len(keys) > 0 {
				return &SourceError{
					Path: origin,
					Err:  fmt.Errorf("%w: key %q appears before any [section] header", ErrMalformedSource, keys[0]),
				}
			}
			continue
		}

		r.section(name)
		for _, key := range section.Keys() {
			r.set(RawEntry{Section: name, Key: key.Name(), Value: stripInlineComment(key.Value()), Origin: origin})
		}
	}
	return nil
}

// stripInlineComment drops a trailing "; comment". Only the first ';' is considered and
// only when whitespace precedes it, so "a;b" stays intact.
func stripInlineComment(value string) string {
	pos := strings.IndexByte(value, ';')
	if pos <= 0 || (value[pos-1] != ' ' && value[pos-1] != '\t') {
		return value
	}
	return strings.TrimSpace(value[:pos])
}

// parseINI reads the INI grammar: [section] headers, key = value or key: value lines,
// # and ; comment lines. Inline comments are left to stripInlineComment.
func parseINI(data []byte) (*ini.File, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
		SkipUnrecognizableLines: false,
		AllowBooleanKeys:        false,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	return file, nil
}
