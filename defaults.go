// File: lixenwraith/benchconf/defaults.go
package benchconf

import _ "embed"

//go:embed default.conf
var defaultConfig string

const (
	// GlobalSection is the reserved section whose keys are visible to every other section
	GlobalSection = "global"

	// DefaultConfigName is the base name of the user and working-directory configuration files
	DefaultConfigName = "paramark_conf"

	// DefaultBufferSize requests the platform default buffering for buffered I/O operations
	DefaultBufferSize int64 = -1
)

// DefaultConfig returns the built-in configuration template.
// The text is byte-for-byte stable across releases since users copy it as a starting point.
func DefaultConfig() string {
	return defaultConfig
}
