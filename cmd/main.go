// FILE: lixenwraith/benchconf/cmd/main.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/benchconf"
)

// cliOptions holds the command-line surface; only flags the user changed become overrides
type cliOptions struct {
	conf      string
	printConf bool
	output    string
	dump      string
	verbosity int
	dryrun    bool
	wdir      string
	logdir    string
	threads   int
	force     bool
	set       []string
}

func main() {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "benchconf",
		Short:         "Resolve the ParaMark benchmark configuration",
		Long:          "benchconf loads the embedded defaults, ~/paramark_conf, ./.paramark_conf and -c PATH, applies command-line overrides and prints the resolved configuration.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.printConf {
				return printDefaultConf(opts.output)
			}
			tree, logger, err := resolve(cmd, opts)
			if err != nil {
				return err
			}
			if opts.dump == "" {
				fmt.Print(tree.Debug())
				return nil
			}
			format, err := benchconf.ParseFormat(opts.dump)
			if err != nil {
				return err
			}
			if opts.output != "" {
				logger.WithField("path", opts.output).Info("saving resolved configuration")
				return tree.Save(opts.output, format)
			}
			return tree.Encode(os.Stdout, format)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.conf, "conf", "c", "", "configuration file")
	flags.BoolVarP(&opts.printConf, "print-default-conf", "p", false, "print default configuration file and exit")
	flags.StringVarP(&opts.output, "output", "o", "", "write -p or --dump output to PATH instead of stdout")
	flags.StringVar(&opts.dump, "dump", "", "dump the resolved configuration as toml, yaml or json")
	flags.IntVarP(&opts.verbosity, "verbosity", "v", 0, "verbosity level: 0/1/2/3/4/5 (default: 0)")
	flags.BoolVarP(&opts.dryrun, "dryrun", "d", false, "dry run, do not execute (default: disabled)")
	flags.StringVarP(&opts.wdir, "wdir", "w", "", "working directory (default: cwd)")
	flags.StringVarP(&opts.logdir, "logdir", "l", "", "log directory (default: auto)")
	flags.IntVarP(&opts.threads, "threads", "t", 1, "number of concurrent threads (default: 1)")
	flags.BoolVar(&opts.force, "force", false, "force to go, do not confirm (default: disabled)")
	flags.StringArrayVar(&opts.set, "set", nil, "override a global key, e.g. --set fsize=1M,4M (repeatable)")

	prepareCmd := &cobra.Command{
		Use:   "prepare",
		Short: "Create the working and log directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, logger, err := resolve(cmd, opts)
			if err != nil {
				return err
			}
			return prepare(tree, logger)
		},
	}
	rootCmd.AddCommand(prepareCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printDefaultConf(output string) error {
	if output != "" {
		if err := benchconf.SaveDefaultConfig(output); err != nil {
			return fmt.Errorf("failed to open file %s: %w", output, err)
		}
		return nil
	}
	return benchconf.WriteDefaultConfig(os.Stdout)
}

// overrides collects the values of flags the user explicitly set
func overrides(cmd *cobra.Command, opts *cliOptions) (map[string]any, error) {
	out := make(map[string]any)
	for _, kv := range opts.set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want key=value", kv)
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	changed := cmd.Flags().Changed
	if changed("verbosity") {
		out["verbosity"] = opts.verbosity
	}
	if changed("dryrun") {
		out["dryrun"] = opts.dryrun
	}
	if changed("wdir") {
		out["wdir"] = opts.wdir
	}
	if changed("logdir") {
		out["logdir"] = opts.logdir
	}
	if changed("threads") {
		out["nthreads"] = strconv.Itoa(opts.threads)
	}
	if changed("force") {
		out["confirm"] = !opts.force
	}
	return out, nil
}

func resolve(cmd *cobra.Command, opts *cliOptions) (*benchconf.Tree, *logrus.Logger, error) {
	logger := benchconf.NewLogger(os.Stderr, opts.verbosity)

	ov, err := overrides(cmd, opts)
	if err != nil {
		return nil, logger, err
	}

	tree, err := benchconf.NewResolver().
		WithDiscovery(benchconf.DefaultDiscoveryOptions(opts.conf)).
		WithOverrides(ov).
		WithLogger(logger).
		WithValidator(benchconf.RequireThreads).
		WithValidator(benchconf.RequireSections).
		Resolve()
	if err != nil {
		return nil, logger, err
	}

	if v, ok := tree.Global("verbosity"); ok {
		if n, ok := v.(int); ok {
			logger.SetLevel(benchconf.LevelForVerbosity(n))
		}
	}
	if loaded := tree.Loaded(); len(loaded) > 0 {
		logger.WithField("files", strings.Join(loaded, ", ")).Debug("configuration loaded")
	}
	return tree, logger, nil
}

func prepare(tree *benchconf.Tree, logger *logrus.Logger) error {
	global, err := tree.Options()
	if err != nil {
		return err
	}
	if global.DryRun {
		logger.Info("dry run, not creating directories")
		return nil
	}

	confirmer := benchconf.ConfirmerFor(global, os.Stdin, os.Stderr, logger)
	for _, dir := range []string{global.WorkDir, global.LogDirectory()} {
		if dir == "" {
			continue
		}
		path, err := benchconf.PrepareDir(dir, confirmer)
		if err != nil {
			return err
		}
		fmt.Println(path)
	}
	return nil
}
