package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// step announces a workflow step on stdout.
func (m *CLIManager) step(format string, a ...interface{}) {
	fmt.Fprintln(m.stdout, stepStyle.Render("==>"), fmt.Sprintf(format, a...))
}

// success announces a terminal outcome on stdout.
func (m *CLIManager) success(format string, a ...interface{}) {
	fmt.Fprintln(m.stdout, successStyle.Render(fmt.Sprintf(format, a...)))
}
