package cmd

import (
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [directory]",
		Short: "Browse the summary in a pager",
		Long: `Open the summary in a scrollable pager. When stdout is not a terminal the
summary is printed as is.

` + directoryHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summarizeArgs, err := buildSummarizeArgs(args)
			if err != nil {
				return err
			}

			return workflow.View(cmd.Context(), summarizeArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
