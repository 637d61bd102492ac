// FILE: lixenwraith/benchconf/discovery.go
package benchconf

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions configures where configuration files are looked for
type DiscoveryOptions struct {
	// Base name of the config file; the working-directory copy is the dotted form
	Name string

	// Home directory; empty uses os.UserHomeDir
	HomeDir string

	// Working directory; empty uses os.Getwd
	WorkDir string

	// Explicit path from the command line (-c PATH), lowest search priority but
	// highest precedence
	Explicit string

	// Whether to look for <home>/<name>
	UseHome bool

	// Whether to look for <cwd>/.<name>
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns the standard search: home file, working-directory file,
// then the explicit path if one was given
func DefaultDiscoveryOptions(explicit string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:          DefaultConfigName,
		Explicit:      explicit,
		UseHome:       true,
		UseCurrentDir: true,
	}
}

// DefaultSearchPaths returns candidate files ordered from lowest to highest precedence.
// Paths are returned whether or not they exist; the loader skips missing ones.
func DefaultSearchPaths(opts DiscoveryOptions) []string {
	name := opts.Name
	if name == "" {
		name = DefaultConfigName
	}

	var paths []string

	if opts.UseHome {
		home := opts.HomeDir
		if home == "" {
			home, _ = os.UserHomeDir()
		}
		if home != "" {
			paths = append(paths, filepath.Join(home, name))
		}
	}

	cwd := opts.WorkDir
	if cwd == "" {
		cwd, _ = os.Getwd()
	}

	if opts.UseCurrentDir && cwd != "" {
		paths = append(paths, filepath.Join(cwd, "."+name))
	}

	if opts.Explicit != "" {
		explicit := opts.Explicit
		if !filepath.IsAbs(explicit) && cwd != "" {
			explicit = filepath.Join(cwd, explicit)
		}
		paths = append(paths, filepath.Clean(explicit))
	}

	return paths
}
