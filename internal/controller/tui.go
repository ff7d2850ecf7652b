package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// reserved lines: title and footer.
const chromeHeight = 2

// TUI shows reports in a scrollable pager. Everything else is printed the
// way SimpleUI prints it.
type TUI struct {
	*SimpleUI
	options []tea.ProgramOption
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		options:  []tea.ProgramOption{tea.WithOutput(cmd.OutOrStdout()), tea.WithAltScreen()},
	}
}

// DisplayReport runs the pager until the user quits or ctx is cancelled.
func (t *TUI) DisplayReport(ctx context.Context, report string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)

	program := tea.NewProgram(newReportModel(report), options...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}

	return nil
}

type reportModel struct {
	port  viewport.Model
	lines int
}

func newReportModel(report string) reportModel {
	port := viewport.New(80, 20)
	port.SetContent(highlightHeaders(report))

	return reportModel{port: port, lines: strings.Count(report, "\n") + 1}
}

// highlightHeaders styles the "=== path: ===" line of every file block.
func highlightHeaders(report string) string {
	lines := strings.Split(report, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "=== ") && strings.HasSuffix(line, ": ===") {
			lines[i] = headerStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

func (r reportModel) Init() tea.Cmd {
	return nil
}

func (r reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return r, tea.Quit
		case "g", "home":
			r.port.GotoTop()
			return r, nil
		case "G", "end":
			r.port.GotoBottom()
			return r, nil
		}
	case tea.WindowSizeMsg:
		r.port.Width = msg.Width
		r.port.Height = max(msg.Height-chromeHeight, 1)
	}

	var cmd tea.Cmd

	r.port, cmd = r.port.Update(msg)

	return r, cmd
}

func (r reportModel) View() string {
	title := headerStyle.Render("pycodemap")
	footer := footerStyle.Render(fmt.Sprintf(
		"%3.f%% of %d lines | ↑/k ↓/j pgup/pgdn g/G | q: quit",
		r.port.ScrollPercent()*100, r.lines,
	))

	return title + "\n" + r.port.View() + "\n" + footer
}
