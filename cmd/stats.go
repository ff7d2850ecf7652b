package cmd

import (
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = newStatsCmd()

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [directory]",
		Short: "Count classes, methods, functions and attributes per file",
		Long: `Count the declarations of every summarized file and print them as a table
with a totals row. Rendering flags apply as they do to the summary.

` + directoryHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summarizeArgs, err := buildSummarizeArgs(args)
			if err != nil {
				return err
			}

			return workflow.Stats(cmd.Context(), summarizeArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
