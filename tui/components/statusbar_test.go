package components

import (
	"strings"
	"testing"
	"time"

	"github.com/tonhe/netcheck/internal/monitor"
	"github.com/tonhe/netcheck/tui/styles"
)

func TestRenderHeaderShowsStatus(t *testing.T) {
	last := &monitor.ProbeResult{Outcome: monitor.Unreachable}
	out := RenderHeader(styles.DefaultTheme, "192.0.2.1", true, last, "1.2.3", 100)
	for _, want := range []string{"netcheck", "192.0.2.1", "RUNNING", "Unreachable", "v1.2.3"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q: %q", want, out)
		}
	}
}

func TestRenderHeaderIdle(t *testing.T) {
	out := RenderHeader(styles.DefaultTheme, "", false, nil, "1.0.0", 80)
	if !strings.Contains(out, "(no target)") || !strings.Contains(out, "STOPPED") {
		t.Errorf("unexpected idle header: %q", out)
	}
}

func TestRenderStatusBar(t *testing.T) {
	info := StatusInfo{
		Interval:  2,
		Timeout:   5,
		Heartbeat: 2,
		Running:   true,
		Summary: monitor.Summary{
			Probes:       4,
			Reachable:    3,
			Availability: 75,
			MeanRTT:      1500 * time.Microsecond,
			LastProbe:    time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local),
		},
		Flash: "Saved",
	}
	out := RenderStatusBar(styles.DefaultTheme, info, 140)
	for _, want := range []string{"[.. ]", "every 2s, timeout 5s", "last: 09:30:00", "75.00% of 4", "1.50ms", "Saved", ":stop"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar missing %q: %q", want, out)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
}

func TestRenderStatusBarStopped(t *testing.T) {
	out := RenderStatusBar(styles.DefaultTheme, StatusInfo{Interval: 1, Timeout: 10, Heartbeat: 3}, 120)
	if !strings.Contains(out, "[   ]") {
		t.Errorf("stopped monitor should show an idle heartbeat: %q", out)
	}
	if !strings.Contains(out, "last: never") || !strings.Contains(out, ":start") {
		t.Errorf("unexpected stopped status bar: %q", out)
	}
}

func TestRenderLatencyChart(t *testing.T) {
	out := RenderLatencyChart([]float64{10, 0, 20}, 20, 5, "rtt")
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "rtt") {
		t.Errorf("title row = %q", lines[0])
	}
	// The top row is labelled with the maximum RTT.
	if !strings.Contains(lines[1], "20ms") {
		t.Errorf("top label = %q", lines[1])
	}
	// A lost probe leaves its column empty above a baseline dot.
	for i, line := range lines[1:] {
		want := ' '
		if i == len(lines)-2 {
			want = lossMark
		}
		if col := []rune(line)[8+9+1]; col != want {
			t.Errorf("row %d: expected %q in lost column, got %q", i, want, col)
		}
	}
}
