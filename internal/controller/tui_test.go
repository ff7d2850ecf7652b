package controller

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightHeaders(t *testing.T) {
	report := "=== a.py: ===\n\n  Function: f()\n"

	got := highlightHeaders(report)

	assert.Contains(t, got, "=== a.py: ===")
	assert.Contains(t, got, "\n\n  Function: f()\n")
	assert.Equal(t, strings.Count(report, "\n"), strings.Count(got, "\n"))
}

func TestReportModel_Update(t *testing.T) {
	t.Run("window size resizes the viewport", func(t *testing.T) {
		model := newReportModel("=== a.py: ===\n")

		updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		rm, ok := updated.(reportModel)
		require.True(t, ok)

		assert.Equal(t, 100, rm.port.Width)
		assert.Equal(t, 40-chromeHeight, rm.port.Height)
	})

	t.Run("tiny window keeps one line", func(t *testing.T) {
		model := newReportModel("x\n")

		updated, _ := model.Update(tea.WindowSizeMsg{Width: 10, Height: 1})
		rm, ok := updated.(reportModel)
		require.True(t, ok)

		assert.Equal(t, 1, rm.port.Height)
	})

	quitKeys := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range quitKeys {
		t.Run("quits on "+tt.name, func(t *testing.T) {
			model := newReportModel("x\n")

			_, cmd := model.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}

	t.Run("other keys keep running", func(t *testing.T) {
		model := newReportModel("x\n")

		_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
		assert.Nil(t, cmd)
	})
}

func TestReportModel_View(t *testing.T) {
	model := newReportModel("=== a.py: ===\n\n  Function: f()\n")

	view := model.View()

	assert.Contains(t, view, "pycodemap")
	assert.Contains(t, view, "Function: f()")
	assert.Contains(t, view, "q: quit")
}

func TestTUI_DisplayReportCancelled(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewTUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplayReport(ctx, "x\n"), context.Canceled)
	assert.Empty(t, out.String())
}
