package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// SimpleUI implements UI using the cobra command's writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayFileError reports a skipped file on stderr.
func (s *SimpleUI) DisplayFileError(ctx context.Context, path m.Path, err error) {
	if ctx.Err() != nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "skipping %s: %v\n", path, err)
}

// DisplayStats prints the per-file counts as a table.
func (s *SimpleUI) DisplayStats(ctx context.Context, stats []m.FileStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderStatsTable(stats))

	return nil
}

func renderStatsTable(stats []m.FileStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Classes", "Methods", "Functions", "Attributes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	var total m.FileStats

	for _, stat := range stats {
		table.Append([]string{
			string(stat.Path),
			strconv.Itoa(stat.Classes),
			strconv.Itoa(stat.Methods),
			strconv.Itoa(stat.Functions),
			strconv.Itoa(stat.Attributes),
		})

		total.Classes += stat.Classes
		total.Methods += stat.Methods
		total.Functions += stat.Functions
		total.Attributes += stat.Attributes
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(stats)),
		strconv.Itoa(total.Classes),
		strconv.Itoa(total.Methods),
		strconv.Itoa(total.Functions),
		strconv.Itoa(total.Attributes),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayDiff prints a unified diff between a stored report and a fresh one.
func (s *SimpleUI) DisplayDiff(ctx context.Context, report m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s is out of date:\n%s", report, diff)

	return nil
}

// DisplayUpToDate confirms a stored report matches the sources.
func (s *SimpleUI) DisplayUpToDate(ctx context.Context, report m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s is up to date\n", report)
}

// DisplayRerun announces a watch rerun on stderr so the report stream on
// stdout stays clean.
func (s *SimpleUI) DisplayRerun(ctx context.Context, changed []m.Path) {
	if ctx.Err() != nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%d file(s) changed, regenerating\n", len(changed))
}

// DisplayReport prints the report as is.
func (s *SimpleUI) DisplayReport(ctx context.Context, report string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", report)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
