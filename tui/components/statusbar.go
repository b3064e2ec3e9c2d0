package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/netcheck/internal/monitor"
	"github.com/tonhe/netcheck/tui/styles"
)

// StatusInfo is the data shown on the top line of the status bar.
type StatusInfo struct {
	Interval  int
	Timeout   int
	Heartbeat int
	Running   bool
	Summary   monitor.Summary
	Flash     string
}

// RenderStatusBar renders the two-line footer: probe settings, session
// statistics and the heartbeat on top, key bindings below.
func RenderStatusBar(theme styles.Theme, info StatusInfo, width int) string {
	bg := theme.Base01
	bgStyle := lipgloss.NewStyle().Background(bg)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(bg).Render(" | ")
	text := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg)

	pollSeg := text.Render(fmt.Sprintf("every %ds, timeout %ds", info.Interval, info.Timeout))

	lastStr := "never"
	if !info.Summary.LastProbe.IsZero() {
		lastStr = info.Summary.LastProbe.Format("15:04:05")
	}
	lastSeg := text.Render("last: " + lastStr)

	availColor := theme.Base0B
	if info.Summary.Probes == 0 {
		availColor = theme.Base03
	} else if info.Summary.Availability < 100 {
		availColor = theme.Base0A
	}
	availSeg := lipgloss.NewStyle().Foreground(availColor).Background(bg).
		Render(fmt.Sprintf("%.2f%% of %d", info.Summary.Availability, info.Summary.Probes))

	rttSeg := text.Render("rtt " + FormatRTT(float64(info.Summary.MeanRTT.Microseconds())/1000))

	beat := "[   ]"
	beatColor := theme.Base03
	if info.Running {
		beat = monitor.HeartbeatBar(info.Heartbeat)
		beatColor = theme.Base0C
	}
	beatSeg := lipgloss.NewStyle().Foreground(beatColor).Background(bg).Render(beat)

	topContent := bgStyle.Render(" ") + beatSeg + sep + pollSeg + sep + lastSeg + sep + availSeg + sep + rttSeg
	if info.Flash != "" {
		topContent += sep + lipgloss.NewStyle().Foreground(theme.Base0E).Background(bg).Render(info.Flash)
	}
	topWidth := lipgloss.Width(topContent)
	if topWidth < width {
		topContent += bgStyle.Render(strings.Repeat(" ", width-topWidth))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Base0D).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Base04).Background(bg)
	spacer := bgStyle.Render("  ")

	toggle := ":start"
	if info.Running {
		toggle = ":stop"
	}

	keys := bgStyle.Render(" ") +
		keyStyle.Render("enter") + descStyle.Render(toggle) + spacer +
		keyStyle.Render("c") + descStyle.Render(":clear") + spacer +
		keyStyle.Render("w") + descStyle.Render(":save") + spacer +
		keyStyle.Render("s") + descStyle.Render(":settings") + spacer +
		keyStyle.Render("?") + descStyle.Render(":help") + spacer +
		keyStyle.Render("q") + descStyle.Render(":quit")

	keysWidth := lipgloss.Width(keys)
	if keysWidth < width {
		keys += bgStyle.Render(strings.Repeat(" ", width-keysWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, topContent, keys)
}
