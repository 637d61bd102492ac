// File: lixenwraith/benchconf/coerce.go
package benchconf

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Kind is the declared semantic type of a configuration key
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindPath
	KindIntList
	KindSizeList
	KindBufSize
	KindFlags
	KindMode
	KindMetaOps
	KindIOOps
	KindTimes
)

var kindNames = map[Kind]string{
	KindString:   "string",
	KindInt:      "int",
	KindBool:     "bool",
	KindPath:     "path",
	KindIntList:  "int list",
	KindSizeList: "size list",
	KindBufSize:  "buffer size",
	KindFlags:    "open flags",
	KindMode:     "mode",
	KindMetaOps:  "metadata operations",
	KindIOOps:    "I/O operations",
	KindTimes:    "times",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// keyKinds is the per-key dispatch table. Keys not listed are KindString.
var keyKinds = map[string]Kind{
	"verbosity": KindInt,
	"nthreads":  KindInt,
	"dryrun":    KindBool,
	"confirm":   KindBool,
	"fsync":     KindBool,
	"override":  KindBool,
	"wdir":      KindPath,
	"logdir":    KindPath,
	"opcnt":     KindIntList,
	"factor":    KindIntList,
	"fsize":     KindSizeList,
	"bsize":     KindSizeList,
	"bufsize":   KindBufSize,
	"flags":     KindFlags,
	"mode":      KindMode,
	"meta":      KindMetaOps,
	"io":        KindIOOps,
	"times":     KindTimes,
}

// KindOf returns the declared kind of key
func KindOf(key string) Kind {
	if kind, ok := keyKinds[key]; ok {
		return kind
	}
	return KindString
}

// Coercer converts raw strings into typed values according to the key dispatch table.
// The zero value is usable; Logger receives dropped operation names.
type Coercer struct {
	Logger logrus.FieldLogger
	// BaseDir resolves relative paths; empty means the process working directory
	BaseDir string
}

// Coerce converts a raw string using the package default coercer
func Coerce(section, key, raw string) (any, error) {
	return Coercer{}.Coerce(section, key, raw)
}

// Coerce converts raw into the semantic type declared for key.
// Failures are returned as *CoercionError naming section, key and offending token.
func (c Coercer) Coerce(section, key, raw string) (any, error) {
	value, token, err := c.coerce(section, key, raw)
	if err != nil {
		if token == "" {
			token = raw
		}
		return nil, &CoercionError{Section: section, Key: key, Raw: raw, Token: token, Err: err}
	}
	return value, nil
}

// CoerceValue accepts either a raw string, which is coerced, or a value already holding
// the Go type declared for key, which is returned unchanged. A typed value of any other
// type is rejected rather than re-interpreted.
func (c Coercer) CoerceValue(section, key string, value any) (any, error) {
	if raw, ok := value.(string); ok {
		return c.Coerce(section, key, raw)
	}
	if acceptsTyped(KindOf(key), value) {
		return cloneValue(value), nil
	}
	return nil, &CoercionError{
		Section: section,
		Key:     key,
		Raw:     fmt.Sprintf("%v", value),
		Err:     fmt.Errorf("%w: %s expects %s, got %T", ErrAlreadyCoerced, key, KindOf(key), value),
	}
}

// acceptsTyped reports whether value already has the Go type kind coerces to
func acceptsTyped(kind Kind, value any) bool {
	switch value.(type) {
	case int:
		return kind == KindInt
	case bool:
		return kind == KindBool
	case UnsetValue:
		return kind == KindPath || kind == KindTimes
	case []int:
		return kind == KindIntList
	case []int64:
		return kind == KindSizeList || kind == KindBufSize
	case Bitmask:
		return kind == KindFlags || kind == KindMode
	case []string:
		return kind == KindMetaOps || kind == KindIOOps
	}
	return false
}

func (c Coercer) coerce(section, key, raw string) (any, string, error) {
	switch KindOf(key) {
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrNotInteger, err)
		}
		return n, "", nil

	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, "", fmt.Errorf("%w: accepts True/False/1/0", ErrNotBoolean)
		}
		return b, "", nil

	case KindPath:
		return c.coercePath(raw)

	case KindIntList:
		return coerceIntList(raw)

	case KindSizeList:
		return coerceSizeList(raw)

	case KindBufSize:
		if strings.TrimSpace(raw) == "" {
			return []int64{DefaultBufferSize}, "", nil
		}
		return coerceSizeList(raw)

	case KindFlags:
		return coerceSymbolic(raw, openFlagNamespace)

	case KindMode:
		if mask, decimal, ok := parseNumericMode(strings.TrimSpace(raw)); ok {
			if decimal && mask > 0o777 {
				c.warnDecimalMode(section, key, raw, mask)
			}
			return mask, "", nil
		}
		return coerceSymbolic(raw, modeNamespace)

	case KindMetaOps:
		kept, dropped := splitOps(raw, MetaOps)
		c.warnDropped(section, key, dropped)
		return normalizeMetaOps(kept), "", nil

	case KindIOOps:
		kept, dropped := splitOps(raw, IOOps)
		c.warnDropped(section, key, dropped)
		return normalizeIOOps(kept), "", nil

	case KindTimes:
		if raw == "" {
			return Unset, "", nil
		}
		return raw, "", nil
	}

	return raw, "", nil
}

func (c Coercer) coercePath(raw string) (any, string, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return Unset, "", nil
	}
	if !filepath.IsAbs(path) && c.BaseDir != "" {
		return filepath.Join(c.BaseDir, path), "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	return abs, "", nil
}

func coerceIntList(raw string) (any, string, error) {
	tokens := strings.Split(raw, ",")
	out := make([]int, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, token, fmt.Errorf("%w: %q", ErrNotInteger, token)
		}
		out = append(out, n)
	}
	return out, "", nil
}

func coerceSizeList(raw string) (any, string, error) {
	tokens := strings.Split(raw, ",")
	out := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		n, err := ParseSize(token)
		if err != nil {
			return nil, token, err
		}
		out = append(out, n)
	}
	return out, "", nil
}

// coerceSymbolic evaluates expressions in ns. Values outside the namespace's prefixes pass
// through unchanged as opaque strings (e.g. "r+" buffered I/O modes).
func coerceSymbolic(raw string, ns namespace) (any, string, error) {
	expr := strings.TrimSpace(raw)
	if !ns.matches(expr) {
		return raw, "", nil
	}
	mask, token, err := ns.eval(expr)
	if err != nil {
		return nil, token, err
	}
	return mask, "", nil
}

func (c Coercer) warnDropped(section, key string, dropped []string) {
	if len(dropped) == 0 || c.Logger == nil {
		return
	}
	c.Logger.WithFields(logrus.Fields{
		"section": section,
		"key":     key,
		"ignored": strings.Join(dropped, ","),
	}).Warn("ignoring unknown operation names")
}

// warnDecimalMode flags decimal mode literals that reach past the permission bits,
// usually an octal mode written without its leading 0
func (c Coercer) warnDecimalMode(section, key, raw string, mask Bitmask) {
	if c.Logger == nil {
		return
	}
	c.Logger.WithFields(logrus.Fields{
		"section": section,
		"key":     key,
		"value":   strings.TrimSpace(raw),
		"mode":    mask.String(),
	}).Warn("decimal mode literal sets bits above 0777, write octal modes with a leading 0")
}

// IsCoercionError reports whether err is a coercion failure
func IsCoercionError(err error) bool {
	var ce *CoercionError
	return errors.As(err, &ce)
}
