// File: lixenwraith/benchconf/errors.go
package benchconf

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSource marks a configuration source that exists but cannot be parsed
	ErrMalformedSource = errors.New("malformed configuration source")
	// ErrUnknownSuffix marks a size token with an unrecognized unit suffix
	ErrUnknownSuffix = errors.New("unknown size suffix")
	// ErrSizeOverflow marks a size that does not fit in a signed 64-bit byte count
	ErrSizeOverflow = errors.New("size overflows int64")
	// ErrNotInteger marks a list token that is not a decimal integer
	ErrNotInteger = errors.New("not an integer")
	// ErrNotBoolean marks a value that is not a recognized boolean literal
	ErrNotBoolean = errors.New("not a boolean")
	// ErrUnknownConstant marks a symbolic constant missing from the key's namespace
	ErrUnknownConstant = errors.New("unknown symbolic constant")
	// ErrAlreadyCoerced marks a typed value handed to coercion with a type the key does not declare
	ErrAlreadyCoerced = errors.New("value already coerced to a different type")
	// ErrInvalidKey marks an override key that is not a bare identifier
	ErrInvalidKey = errors.New("invalid key name")
	// ErrValidation marks a resolved configuration rejected by a validator
	ErrValidation = errors.New("configuration validation failed")
	// ErrAborted is returned when the confirmation policy declines to proceed
	ErrAborted = errors.New("aborted by user")
)

// SourceError reports a configuration source that could not be read or parsed.
type SourceError struct {
	Path string // "<default>" for the embedded template
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("config source '%s': %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// CoercionError identifies the key, section and offending token of a failed coercion.
type CoercionError struct {
	Section string
	Key     string
	Raw     string
	Token   string
	Err     error
}

func (e *CoercionError) Error() string {
	if e.Token != "" && e.Token != e.Raw {
		return fmt.Sprintf("section [%s] key %q: invalid token %q in %q: %v", e.Section, e.Key, e.Token, e.Raw, e.Err)
	}
	return fmt.Sprintf("section [%s] key %q: invalid value %q: %v", e.Section, e.Key, e.Raw, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
