package cmd

import (
	"github.com/spf13/cobra"

	"pycodemap.dev/pkg/pycodemap/internal/domain"
	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <report> [directory]",
		Short: "Verify that a saved report matches the sources",
		Long: `Regenerate the report in memory and compare it with a report previously
written with --output. A stale report is shown as a unified diff and the
command exits with status 1.

` + directoryHelp,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			summarizeArgs, err := buildSummarizeArgs(args[1:])
			if err != nil {
				return err
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				SummarizeArgs: summarizeArgs,
				Report:        m.Path(args[0]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
