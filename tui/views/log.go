package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/netcheck/internal/monitor"
	"github.com/tonhe/netcheck/tui/components"
	"github.com/tonhe/netcheck/tui/keys"
	"github.com/tonhe/netcheck/tui/styles"
)

const (
	statusPanelHeight = 4
	chartMinHeight    = 5
	logMinHeight      = 3
)

// LogView is the main screen: a status panel, a latency chart, and the
// scrollable status log.
type LogView struct {
	theme    styles.Theme
	sty      *styles.Styles
	viewport viewport.Model
	state    monitor.State
	events   []monitor.LogEvent
	latency  []float64
	follow   bool
	width    int
	height   int
}

// NewLogView creates a new LogView with the given theme.
func NewLogView(theme styles.Theme) LogView {
	return LogView{
		theme:    theme,
		sty:      styles.NewStyles(theme),
		viewport: viewport.New(0, 0),
		follow:   true,
	}
}

// SetSize updates the available dimensions for the view.
func (v *LogView) SetSize(width, height int) {
	v.width = width
	v.height = height
	_, logH := v.layout()
	v.viewport.Width = width
	v.viewport.Height = logH
	v.refresh()
}

// SetData replaces the rendered monitor state, log, and latency series.
// The log stays pinned to the newest line unless the user scrolled away.
func (v *LogView) SetData(state monitor.State, events []monitor.LogEvent, latency []float64) {
	v.state = state
	v.events = events
	v.latency = latency
	v.refresh()
}

func (v *LogView) refresh() {
	v.viewport.SetContent(v.renderLog())
	if v.follow {
		v.viewport.GotoBottom()
	}
}

// Update handles scrolling keys for the log.
func (v LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(km, keys.DefaultKeyMap.Up):
		v.viewport.SetYOffset(v.viewport.YOffset - 1)
	case key.Matches(km, keys.DefaultKeyMap.Down):
		v.viewport.SetYOffset(v.viewport.YOffset + 1)
	case key.Matches(km, keys.DefaultKeyMap.PageUp):
		v.viewport.SetYOffset(v.viewport.YOffset - v.viewport.Height)
	case key.Matches(km, keys.DefaultKeyMap.PageDown):
		v.viewport.SetYOffset(v.viewport.YOffset + v.viewport.Height)
	case key.Matches(km, keys.DefaultKeyMap.Top):
		v.viewport.GotoTop()
	case key.Matches(km, keys.DefaultKeyMap.Bottom):
		v.viewport.GotoBottom()
	default:
		return v, nil
	}
	v.follow = v.viewport.AtBottom()
	return v, nil
}

// layout splits the body height between the chart and the log.
func (v LogView) layout() (chartH, logH int) {
	rest := v.height - statusPanelHeight - 1
	if rest < logMinHeight {
		return 0, max(rest, 1)
	}
	chartH = rest / 3
	if chartH < chartMinHeight {
		chartH = 0
	}
	return chartH, rest - chartH
}

// View renders the log view.
func (v LogView) View() string {
	parts := []string{v.renderStatus()}

	chartH, _ := v.layout()
	if chartH > 0 {
		chart := components.RenderLatencyChart(v.latency, v.width, chartH, "Round-trip time")
		parts = append(parts, v.sty.SparklineStyle.Render(chart))
	}

	parts = append(parts, "", v.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderStatus renders the fixed panel above the chart.
func (v LogView) renderStatus() string {
	labelStyle := v.sty.FormLabel
	valStyle := lipgloss.NewStyle().Foreground(v.theme.Base06)

	target := v.state.Config.Address
	if target == "" {
		target = "-"
	}

	status := v.sty.StatusIdle.Render("Idle")
	rtt := "-"
	if v.state.Last != nil {
		st := lipgloss.NewStyle().Foreground(v.theme.OutcomeColor(v.state.Last)).Bold(true)
		status = st.Render(truncate(v.state.Last.Status(), max(v.width-24, 8)))
		if v.state.Last.Outcome == monitor.Reachable {
			rtt = components.FormatRTT(float64(v.state.Last.RTT.Microseconds()) / 1000)
		}
	} else if v.state.Run == monitor.Running {
		status = v.sty.StatusIdle.Render("Probing...")
	}

	session := "-"
	if v.state.SessionID != "" {
		session = v.state.SessionID
	}

	spark := components.Sparkline(v.latency, max(v.width-24, 0))

	lines := []string{
		fmt.Sprintf(" %s%s", labelStyle.Render(padRight("Target:", 12)), valStyle.Render(target)),
		fmt.Sprintf(" %s%s", labelStyle.Render(padRight("Status:", 12)), status),
		fmt.Sprintf(" %s%s  %s", labelStyle.Render(padRight("RTT:", 12)), valStyle.Render(padRight(rtt, 8)), v.sty.SparklineStyle.Render(spark)),
		fmt.Sprintf(" %s%s", labelStyle.Render(padRight("Session:", 12)), v.sty.LogTime.Render(session)),
	}
	return strings.Join(lines, "\n")
}

// renderLog renders every log line, oldest first.
func (v LogView) renderLog() string {
	if len(v.events) == 0 {
		return v.sty.LogEmpty.Render(" No status changes yet. Press enter to start monitoring.")
	}
	lines := make([]string, len(v.events))
	for i, e := range v.events {
		lines[i] = " " + v.sty.LogTime.Render(e.Time.Format(monitor.TimeLayout)) + " " +
			v.sty.LogMessage.Render(e.Message)
	}
	return strings.Join(lines, "\n")
}
