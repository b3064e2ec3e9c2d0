package styles

import (
	"testing"

	"github.com/tonhe/netcheck/internal/monitor"
)

func TestGetThemeByName(t *testing.T) {
	theme := GetThemeByName("solarized-dark")
	if theme == nil {
		t.Fatal("GetThemeByName('solarized-dark') returned nil")
	}
	if theme.Name != "Solarized Dark" {
		t.Errorf("expected name 'Solarized Dark', got %q", theme.Name)
	}
}

func TestGetThemeByNameMissing(t *testing.T) {
	theme := GetThemeByName("nonexistent")
	if theme != nil {
		t.Error("expected nil for nonexistent theme")
	}
}

func TestListThemesSorted(t *testing.T) {
	themes := ListThemes()
	if len(themes) != GetThemeCount() {
		t.Fatalf("expected %d slugs, got %d", GetThemeCount(), len(themes))
	}
	for i := 1; i < len(themes); i++ {
		if themes[i-1] > themes[i] {
			t.Errorf("themes not sorted: %q before %q", themes[i-1], themes[i])
		}
	}
}

func TestGetThemeIndexRoundTrip(t *testing.T) {
	idx := GetThemeIndex("nord")
	if idx < 0 {
		t.Fatal("nord not found")
	}
	theme := GetThemeByIndex(idx)
	if theme == nil || theme.Name != "Nord" {
		t.Errorf("expected Nord at index %d, got %v", idx, theme)
	}
	if GetThemeByIndex(-1) != nil || GetThemeByIndex(GetThemeCount()) != nil {
		t.Error("out of range index should return nil")
	}
}

func TestOutcomeColor(t *testing.T) {
	theme := DefaultTheme
	if got := theme.OutcomeColor(nil); got != theme.Base03 {
		t.Errorf("idle color = %v, want %v", got, theme.Base03)
	}
	up := &monitor.ProbeResult{Outcome: monitor.Reachable}
	if got := theme.OutcomeColor(up); got != theme.Base0B {
		t.Errorf("reachable color = %v, want %v", got, theme.Base0B)
	}
	down := &monitor.ProbeResult{Outcome: monitor.Unreachable}
	if got := theme.OutcomeColor(down); got != theme.Base08 {
		t.Errorf("unreachable color = %v, want %v", got, theme.Base08)
	}
	failed := &monitor.ProbeResult{Outcome: monitor.Failed}
	if got := theme.OutcomeColor(failed); got != theme.Base0A {
		t.Errorf("error color = %v, want %v", got, theme.Base0A)
	}
}
