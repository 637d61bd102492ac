// File: lixenwraith/benchconf/builder.go
package benchconf

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ValidatorFunc defines the signature for a function that can validate a resolved Tree.
// It receives the fully merged tree and should return an error if validation fails.
type ValidatorFunc func(t *Tree) error

// Resolver provides a fluent interface for building a resolution
type Resolver struct {
	input      Input
	validators []ValidatorFunc
}

// NewResolver creates a resolver seeded with the embedded default configuration
func NewResolver() *Resolver {
	return &Resolver{
		input: Input{
			Defaults: []byte(DefaultConfig()),
		},
		validators: make([]ValidatorFunc, 0),
	}
}

// WithDefaults replaces the baseline configuration text
func (r *Resolver) WithDefaults(defaults []byte) *Resolver {
	r.input.Defaults = defaults
	return r
}

// WithFiles sets the candidate configuration files, lowest precedence first
func (r *Resolver) WithFiles(paths ...string) *Resolver {
	r.input.Files = paths
	return r
}

// WithDiscovery sets the candidate files from discovery options
func (r *Resolver) WithDiscovery(opts DiscoveryOptions) *Resolver {
	r.input.Files = DefaultSearchPaths(opts)
	return r
}

// WithOverrides sets the command-line values; only explicitly set options belong here
func (r *Resolver) WithOverrides(overrides map[string]any) *Resolver {
	r.input.Overrides = overrides
	return r
}

// WithOverride adds a single command-line value
func (r *Resolver) WithOverride(key string, value any) *Resolver {
	if r.input.Overrides == nil {
		r.input.Overrides = make(map[string]any)
	}
	r.input.Overrides[key] = value
	return r
}

// WithBaseDir sets the directory relative wdir/logdir values are resolved against
func (r *Resolver) WithBaseDir(dir string) *Resolver {
	r.input.BaseDir = dir
	return r
}

// WithLogger sets the diagnostics logger
func (r *Resolver) WithLogger(logger logrus.FieldLogger) *Resolver {
	r.input.Logger = logger
	return r
}

// WithValidator adds a validation function that runs at the end of resolution
// Multiple validators can be added and are executed in the order they are added
func (r *Resolver) WithValidator(fn ValidatorFunc) *Resolver {
	if fn != nil {
		r.validators = append(r.validators, fn)
	}
	return r
}

// Input returns a copy of the accumulated resolution input
func (r *Resolver) Input() Input {
	return r.input
}

// Resolve produces the Tree with all specified options
func (r *Resolver) Resolve() (*Tree, error) {
	tree, err := Resolve(r.input)
	if err != nil {
		return nil, err
	}

	for _, validator := range r.validators {
		if err := validator(tree); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return tree, nil
}

// MustResolve is like Resolve but panics on error
func (r *Resolver) MustResolve() *Tree {
	tree, err := r.Resolve()
	if err != nil {
		panic(fmt.Sprintf("config resolution failed: %v", err))
	}
	return tree
}

// RequireThreads rejects a thread count below one
func RequireThreads(t *Tree) error {
	val, ok := t.Global("nthreads")
	if !ok {
		return nil
	}
	if n, _ := val.(int); n < 1 {
		return fmt.Errorf("nthreads must be at least 1, got %v", val)
	}
	return nil
}

// RequireSections rejects meta/io selections naming an operation of the wrong class
// or an operation without a section
func RequireSections(t *Tree) error {
	selections := []struct {
		key  string
		isOp func(string) bool
	}{
		{"meta", IsMetaOp},
		{"io", IsIOOp},
	}
	for _, sel := range selections {
		key, isOp := sel.key, sel.isOp
		val, ok := t.Global(key)
		if !ok {
			continue
		}
		ops, _ := val.([]string)
		for _, op := range ops {
			if !isOp(op) {
				return fmt.Errorf("%s selects %q, which is not one of its operations", key, op)
			}
			if !t.HasSection(op) {
				return fmt.Errorf("%s selects %q but no [%s] section is configured", key, op, op)
			}
		}
	}
	return nil
}
