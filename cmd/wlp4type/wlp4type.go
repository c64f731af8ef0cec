package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wlp4/wlp4type/pkg/util/logging"
	"github.com/wlp4/wlp4type/pkg/wlp4/config"
)

// errDiagnostics is returned in strict mode when any input produced diagnostics. The diagnostics themselves have
// already been written, so main only sets the exit status.
var errDiagnostics = errors.New("diagnostics were reported")

type rootFlags struct {
	configPath      string
	strict          bool
	checkReturnType bool
	printProcedures bool
	dumpTree        bool
	parallel        int
	verbose         int
	logToStderr     bool
}

func newWLP4TypeCmd() *cobra.Command {
	var flags rootFlags
	settings := config.Default()

	cmd := &cobra.Command{
		Use:   "wlp4type [files...]",
		Short: "Type-check WLP4 derivation trees",
		Long: "Type-check WLP4 derivation trees.\n" +
			"\n" +
			"Each input is a serialized derivation, one node per line, beginning with the start production.\n" +
			"wlp4type rebuilds the tree, infers a type for every expression, and writes the annotated\n" +
			"derivation to standard output. Problems are written to standard error as ERROR lines; the\n" +
			"annotated tree is printed regardless. With no files, the derivation is read from standard input.",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}
			settings = loaded
			logging.InitLogging(flags.logToStderr, settings.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(context.Background(), cmd, args, settings)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"Read settings from the given YAML file (default "+config.DefaultFile+" if present)")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false,
		"Exit with a non-zero status if any diagnostics are reported")
	cmd.PersistentFlags().BoolVar(&flags.checkReturnType, "check-return-type", false,
		"Require every procedure to return an int")
	cmd.PersistentFlags().IntVar(&flags.parallel, "parallel", 0,
		"Analyze at most this many inputs at once (default GOMAXPROCS)")
	cmd.PersistentFlags().IntVarP(&flags.verbose, "verbose", "v", 0,
		"Enable verbose logging (e.g., v=3); anything >3 is very verbose")
	cmd.PersistentFlags().BoolVar(&flags.logToStderr, "logtostderr", false,
		"Log to stderr instead of to files")
	cmd.Flags().BoolVar(&flags.printProcedures, "print-procedures", false,
		"Print the procedure table after each annotated tree")
	cmd.Flags().BoolVar(&flags.dumpTree, "dump-tree", false,
		"Write an indented rendering of each tree to standard error")

	cmd.AddCommand(newRoundtripCmd(&settings))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadSettings layers command line flags over the settings file and environment.
func loadSettings(cmd *cobra.Command, flags rootFlags) (config.Settings, error) {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return config.Settings{}, err
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("strict") {
		settings.Strict = flags.strict
	}
	if changed("check-return-type") {
		settings.CheckReturnType = flags.checkReturnType
	}
	if changed("print-procedures") {
		settings.PrintProcedures = flags.printProcedures
	}
	if changed("dump-tree") {
		settings.DumpTree = flags.dumpTree
	}
	if changed("parallel") {
		settings.Parallelism = flags.parallel
	}
	if changed("verbose") {
		settings.Verbose = flags.verbose
	}
	return settings, settings.Validate()
}
