package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// dumpCmd represents the dump command.
var dumpCmd = newDumpCmd()

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [directory]",
		Short: "Print the extracted declarations as YAML",
		Long: `Print the declarations extracted from every file as a stream of YAML
documents, one per file that declares anything.

` + directoryHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summarizeArgs, err := buildSummarizeArgs(args)
			if err != nil {
				return err
			}

			output := viper.GetString(outputConfigKey)
			if output == "" {
				return workflow.Dump(cmd.Context(), summarizeArgs, cmd.OutOrStdout())
			}

			// #nosec G304 - the output path is chosen by the user on purpose
			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("open output %s: %w", output, err)
			}

			err = workflow.Dump(cmd.Context(), summarizeArgs, file)
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output: %w", closeErr)
			}

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
