package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pycodemap.dev/pkg/pycodemap/internal/adapter"
	"pycodemap.dev/pkg/pycodemap/internal/domain"
)

var debounceFlag time.Duration

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Regenerate the summary whenever a Python file changes",
		Long: `Write the summary, then write it again after every burst of changes to
the Python files under the directory until interrupted. With --output the
file is rewritten on each run.

` + directoryHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summarizeArgs, err := buildSummarizeArgs(args)
			if err != nil {
				return err
			}

			return workflow.Watch(cmd.Context(), domain.WatchArgs{
				SummarizeArgs: summarizeArgs,
				Debounce:      viper.GetDuration(debounceConfigKey),
			}, func() (adapter.ReportSink, error) {
				return openSink(cmd)
			})
		},
	}

	configureWatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func configureWatchFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&debounceFlag, debounceFlagName, defaultDebounce, "quiet period before regenerating")
	bindFlagToConfig(cmd.Flags().Lookup(debounceFlagName), debounceConfigKey)
}
