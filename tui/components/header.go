package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/netcheck/internal/monitor"
	"github.com/tonhe/netcheck/tui/styles"
)

// RenderHeader renders the top header bar with app name, target address,
// running/stopped state, the latest status, and version.
func RenderHeader(theme styles.Theme, target string, isLive bool, last *monitor.ProbeResult, ver string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Base0D).
		Background(theme.Base01).
		Bold(true).
		Render("netcheck")

	displayName := target
	if displayName == "" {
		displayName = "(no target)"
	}
	center := lipgloss.NewStyle().
		Foreground(theme.Base05).
		Background(theme.Base01).
		Render(displayName)

	state := "STOPPED"
	stateColor := theme.Base08
	if isLive {
		state = "RUNNING"
		stateColor = theme.Base0B
	}
	right := lipgloss.NewStyle().
		Foreground(stateColor).
		Background(theme.Base01).
		Render(state)

	statusText := "-"
	if last != nil {
		statusText = last.Status()
	}
	status := lipgloss.NewStyle().
		Foreground(theme.OutcomeColor(last)).
		Background(theme.Base01).
		Bold(true).
		Render(statusText)

	versionSeg := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(theme.Base01).
		Render("v" + ver)

	content := fmt.Sprintf(" %s  |  %s  |  %s  |  %s  |  %s ", left, center, right, status, versionSeg)

	return lipgloss.NewStyle().
		Background(theme.Base01).
		Width(width).
		Render(content)
}
