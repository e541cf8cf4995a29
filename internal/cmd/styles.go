package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"vectap/internal/domain"
)

var (
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	stoppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	absentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderState picks the human-readable, colored state label.
func renderState(status domain.ContainerStatus) string {
	switch {
	case status.Running:
		label := "running"
		if status.Status != "" {
			label = status.Status
		}
		return runningStyle.Render(label)
	case status.Exists:
		label := "stopped"
		if status.Status != "" {
			label = status.Status
		}
		return stoppedStyle.Render(label)
	default:
		return absentStyle.Render("not created")
	}
}
