// Package cmd provides the root command and CLI setup for pycodemap.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pycodemap.dev/pkg/pycodemap/internal/adapter"
	"pycodemap.dev/pkg/pycodemap/internal/controller"
	"pycodemap.dev/pkg/pycodemap/internal/domain"
	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var pythonAdapter adapter.PythonFileAdapter
var extractor domain.Extractor
var summarizer domain.Summarizer
var workflow domain.Workflow
var ui controller.UI

// Flag targets. Values are read back through viper so config and env feed them.
var (
	outputFlag        string
	excludePatterns   []string
	functionsOnlyFlag bool
	classesOnlyFlag   bool
	noAttributesFlag  bool
	minimalisticFlag  bool
	asyncFlag         bool
	parallelFlag      int
	strictFlag        bool
	logFileFlag       string
	verboseFlag       bool
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	pythonAdapter = adapter.NewLocalPythonFileAdapter()
	extractor = domain.NewExtractor(pythonAdapter)
	summarizer = domain.NewSummarizer(fsAdapter, extractor)
	workflow = newWorkflow(ui)
}

func newWorkflow(display controller.UI) domain.Workflow {
	return domain.NewWorkflow(fsAdapter, display, summarizer)
}

const directoryHelp = `The directory defaults to the current one. Directories and files whose
names match an exclusion pattern are skipped; the defaults are
.git .venv* .venv_test __pycache__ *.egg-info build dist.`

const rootLongDescription = `pycodemap prints a structural summary of a Python project: every class
with its decorators, attributes and method signatures, and every top-level
function with its decorators and signature.

` + directoryHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pycodemap [directory]",
		Short:        "Summarize the structure of a Python project",
		Long:         rootLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			summarizeArgs, err := buildSummarizeArgs(args)
			if err != nil {
				return err
			}

			sink, err := openSink(cmd)
			if err != nil {
				return err
			}

			err = workflow.Summarize(cmd.Context(), summarizeArgs, sink)
			if closeErr := sink.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output: %w", closeErr)
			}

			return err
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputFlag, outputFlagName, "o", defaultOutput, "write the report to this file instead of stdout")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputConfigKey)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "I", nil, "exclude directories or files matching these patterns, '|'-separated (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.BoolVarP(&functionsOnlyFlag, functionsOnlyFlagName, "f", false, "include only top-level functions")
	bindFlagToConfig(flags.Lookup(functionsOnlyFlagName), functionsOnlyConfigKey)

	flags.BoolVarP(&classesOnlyFlag, classesOnlyFlagName, "c", false, "include only classes")
	bindFlagToConfig(flags.Lookup(classesOnlyFlagName), classesOnlyConfigKey)

	flags.BoolVarP(&noAttributesFlag, noAttributesFlagName, "a", false, "leave class attributes out")
	bindFlagToConfig(flags.Lookup(noAttributesFlagName), noAttributesConfigKey)

	flags.BoolVar(&minimalisticFlag, minimalisticFlagName, false, "drop the Class/Method/Function labels")
	bindFlagToConfig(flags.Lookup(minimalisticFlagName), minimalisticConfigKey)

	flags.BoolVar(&asyncFlag, asyncFlagName, false, "include async def declarations")
	bindFlagToConfig(flags.Lookup(asyncFlagName), includeAsyncConfigKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "number of files processed in parallel")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.BoolVar(&strictFlag, strictFlagName, false, "fail when a file cannot be read or parsed")
	bindFlagToConfig(flags.Lookup(strictFlagName), strictConfigKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// buildSummarizeArgs resolves the run configuration. A conflicting scope is
// refused here, before any file is read.
func buildSummarizeArgs(args []string) (domain.SummarizeArgs, error) {
	opts, err := m.ScopeOptions(viper.GetBool(functionsOnlyConfigKey), viper.GetBool(classesOnlyConfigKey))
	if err != nil {
		return domain.SummarizeArgs{}, err
	}

	opts.NoAttributes = viper.GetBool(noAttributesConfigKey)
	opts.Minimalistic = viper.GetBool(minimalisticConfigKey)
	opts.IncludeAsync = viper.GetBool(includeAsyncConfigKey)

	return domain.SummarizeArgs{
		Root:    parseRoot(args),
		Exclude: m.NewExcludeSet(viper.GetStringSlice(excludeConfigKey)...),
		Options: opts,
		Threads: viper.GetInt(parallelConfigKey),
		Strict:  viper.GetBool(strictConfigKey),
	}, nil
}

func parseRoot(args []string) m.Path {
	if len(args) == 0 || args[0] == "" {
		return m.Path(".")
	}

	return m.Path(args[0])
}

// openSink opens the --output file, or stdout when none is set.
func openSink(cmd *cobra.Command) (adapter.ReportSink, error) {
	output := viper.GetString(outputConfigKey)
	if output == "" {
		return adapter.NewStdoutSink(cmd.OutOrStdout()), nil
	}

	return adapter.NewFileSink(m.Path(output))
}
