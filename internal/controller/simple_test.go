package controller

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestSimpleUI_DisplayFileError(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayFileError(context.Background(), "pkg/bad.py", &m.ParseFailure{Path: "pkg/bad.py", Line: 3, Column: 1})

	assert.Empty(t, out.String())
	assert.Equal(t, "skipping pkg/bad.py: pkg/bad.py:3:1: invalid syntax\n", errOut.String())
}

func TestSimpleUI_DisplayStats(t *testing.T) {
	tests := []struct {
		name         string
		stats        []m.FileStats
		wantContains []string
	}{
		{
			name:         "no files",
			stats:        nil,
			wantContains: []string{"path", "classes", "total files 0"},
		},
		{
			name: "totals are summed",
			stats: []m.FileStats{
				{Path: "a.py", Classes: 1, Methods: 2, Functions: 0, Attributes: 3},
				{Path: "b.py", Classes: 2, Methods: 5, Functions: 4, Attributes: 1},
			},
			wantContains: []string{"a.py", "b.py", "total files 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out, _ := newTestCommand()
			ui := NewSimpleUI(cmd)

			require.NoError(t, ui.DisplayStats(context.Background(), tt.stats))

			output := strings.ToLower(out.String())
			for _, want := range tt.wantContains {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestSimpleUI_DisplayStatsCancelled(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayStats(ctx, []m.FileStats{{Path: "a.py", Classes: 1}})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayDiff(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayDiff(context.Background(), "codemap.txt", "--- a\n+++ b\n"))
	assert.Equal(t, "codemap.txt is out of date:\n--- a\n+++ b\n", out.String())
}

func TestSimpleUI_DisplayUpToDate(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayUpToDate(context.Background(), "codemap.txt")
	assert.Equal(t, "codemap.txt is up to date\n", out.String())
}

func TestSimpleUI_DisplayRerun(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayRerun(context.Background(), []m.Path{"a.py", "b.py"})
	assert.Empty(t, out.String())
	assert.Equal(t, "2 file(s) changed, regenerating\n", errOut.String())
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	report := "=== a.py: ===\n\n  Function: f()\n\n\n"
	require.NoError(t, ui.DisplayReport(context.Background(), report))
	assert.Equal(t, report, out.String())
}

func TestNewUI(t *testing.T) {
	cmd, _, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)

	defer f.Close()

	assert.False(t, IsTTY(f))
}
