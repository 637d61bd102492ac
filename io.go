// File: lixenwraith/benchconf/io.go
package benchconf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a resolved tree dump
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts a format name or a file extension such as ".yml"
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "toml", "tml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported dump format %q (want toml, yaml or json)", s)
}

// WriteDefaultConfig writes the embedded template to w byte-for-byte
func WriteDefaultConfig(w io.Writer) error {
	_, err := io.WriteString(w, DefaultConfig())
	return err
}

// SaveDefaultConfig writes the embedded template to path atomically
func SaveDefaultConfig(path string) error {
	return atomicWriteFile(path, []byte(DefaultConfig()))
}

// Encode writes the resolved tree to w in the given format.
// Unset keys are omitted and bitmasks are written as integers.
func (t *Tree) Encode(w io.Writer, format Format) error {
	data := t.Export()

	switch format {
	case FormatTOML:
		encoder := toml.NewEncoder(w)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal config data to TOML: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal config data to JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported dump format %q", format)
	}
	return nil
}

// Save writes the resolved tree to path atomically.
// An empty format is inferred from the file extension.
func (t *Tree) Save(path string, format Format) error {
	if format == "" {
		f, err := ParseFormat(filepath.Ext(path))
		if err != nil {
			return err
		}
		format = f
	}

	var buf bytes.Buffer
	if err := t.Encode(&buf, format); err != nil {
		return err
	}
	return atomicWriteFile(path, buf.Bytes())
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
