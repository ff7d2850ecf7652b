// Package controller provides the user-facing output of pycodemap: a plain
// printer and an interactive pager.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// UI defines everything the workflows show to the user besides the report
// blocks themselves, which go to a sink.
type UI interface {
	DisplayFileError(ctx context.Context, path m.Path, err error)
	DisplayStats(ctx context.Context, stats []m.FileStats) error
	DisplayDiff(ctx context.Context, report m.Path, diff string) error
	DisplayUpToDate(ctx context.Context, report m.Path)
	DisplayRerun(ctx context.Context, changed []m.Path)
	DisplayReport(ctx context.Context, report string) error
}

// NewUI picks the pager on a terminal and the plain printer otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
