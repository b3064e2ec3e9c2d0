package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tonhe/netcheck/internal/monitor"
	"github.com/tonhe/netcheck/tui/styles"
)

func TestLogViewEmpty(t *testing.T) {
	v := NewLogView(styles.DefaultTheme)
	v.SetSize(80, 24)
	v.SetData(monitor.State{}, nil, nil)

	out := v.View()
	if !strings.Contains(out, "No status changes yet") {
		t.Errorf("expected empty log hint, got %q", out)
	}
	if !strings.Contains(out, "Idle") {
		t.Errorf("expected idle status, got %q", out)
	}
}

func TestLogViewShowsStateAndEvents(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)
	state := monitor.State{
		Run:       monitor.Running,
		Config:    monitor.Config{Address: "192.0.2.1", IntervalSeconds: 1, TimeoutSeconds: 10},
		SessionID: "session-1",
		Last:      &monitor.ProbeResult{Outcome: monitor.Unreachable, Timestamp: ts},
	}
	events := []monitor.LogEvent{
		{Time: ts, Message: "Initial status: Reachable"},
		{Time: ts.Add(time.Minute), Message: "Status changed to Unreachable at 2024-05-01 09:01:00"},
	}

	v := NewLogView(styles.DefaultTheme)
	v.SetSize(100, 30)
	v.SetData(state, events, []float64{12, 0})

	out := v.View()
	for _, want := range []string{"192.0.2.1", "Unreachable", "session-1", "2024-05-01 09:00:00", "Initial status: Reachable", "Status changed to Unreachable"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestLogViewLayoutFitsHeight(t *testing.T) {
	for _, h := range []int{6, 12, 24, 40} {
		v := NewLogView(styles.DefaultTheme)
		v.SetSize(80, h)
		chartH, logH := v.layout()
		if got := statusPanelHeight + 1 + chartH + logH; got != h {
			t.Errorf("height %d: layout uses %d lines", h, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Error (host not found)", 10); got != "Error (..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
}

func TestLogViewFollowsUnlessScrolled(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)
	events := make([]monitor.LogEvent, 20)
	for i := range events {
		events[i] = monitor.LogEvent{Time: ts.Add(time.Duration(i) * time.Minute), Message: "Status changed"}
	}

	v := NewLogView(styles.DefaultTheme)
	v.SetSize(80, 10)
	v.SetData(monitor.State{}, events, nil)
	if !v.viewport.AtBottom() {
		t.Fatal("expected log to start pinned to the newest line")
	}

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if v.follow || v.viewport.YOffset != 0 {
		t.Fatalf("expected scroll to top, offset %d follow %v", v.viewport.YOffset, v.follow)
	}

	v.SetData(monitor.State{}, append(events, monitor.LogEvent{Time: ts, Message: "new"}), nil)
	if v.viewport.YOffset != 0 {
		t.Errorf("new events moved a scrolled log to offset %d", v.viewport.YOffset)
	}

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if !v.follow || !v.viewport.AtBottom() {
		t.Error("expected G to pin the log to the newest line")
	}
}
