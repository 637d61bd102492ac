// File: lixenwraith/benchconf/doc.go

// Package benchconf resolves the runtime configuration of the ParaMark file system
// benchmark from three layered sources: the embedded default configuration, optional
// INI files, and command-line overrides.
//
// Features:
//   - INI sources layered per key: embedded defaults, ~/paramark_conf, ./.paramark_conf, -c PATH
//   - Per-key coercion: sizes ("1K,2M"), integer lists, booleans, absolute paths,
//     symbolic open flags ("O_CREAT | O_WRONLY"), permission modes ("S_IRUSR | S_IWUSR"),
//     and canonical operation sets for the meta and io keys
//   - Command-line values win over any file value
//   - The global "override" flag propagates global values into same-named section keys
//   - Immutable resolved tree with typed records decoded through mapstructure
//   - TOML/YAML/JSON dumps and a byte-stable default template
//
// Quick Start:
//
//	tree, err := benchconf.NewResolver().
//	    WithDefaults([]byte(benchconf.DefaultConfig())).
//	    WithFiles(benchconf.DefaultSearchPaths(benchconf.DefaultDiscoveryOptions(""))...).
//	    WithOverrides(map[string]any{"nthreads": "4"}).
//	    Resolve()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opts, _ := tree.Options()
//	for _, name := range tree.SectionNames() {
//	    op, _ := tree.Operation(name)
//	    fmt.Println(name, op.OpCount, op.FileSize)
//	}
//
// Precedence (highest to lowest):
//  1. Command-line overrides
//  2. -c PATH
//  3. ./.paramark_conf
//  4. ~/paramark_conf
//  5. Embedded defaults
//
// Resolution is synchronous and single-threaded. The returned Tree is never mutated;
// every accessor returns a deep copy.
package benchconf
