package views

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tonhe/netcheck/internal/config"
	"github.com/tonhe/netcheck/tui/styles"
)

func newTestSettings(t *testing.T) (SettingsView, *config.Config, string) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Target = "example.net"
	s := NewSettingsView(styles.DefaultTheme, cfg)
	s.configPath = filepath.Join(t.TempDir(), "config.toml")
	return s, cfg, s.configPath
}

func TestSettingsRejectsZeroInterval(t *testing.T) {
	s, cfg, _ := newTestSettings(t)
	s.intervalInput.SetValue("0")

	s, _, action := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if action != SettingsNone {
		t.Fatalf("expected to stay in settings, got action %d", action)
	}
	if !strings.Contains(s.Err(), "Interval") {
		t.Errorf("expected interval error, got %q", s.Err())
	}
	if cfg.IntervalSeconds != 1 {
		t.Errorf("config changed despite validation error: %d", cfg.IntervalSeconds)
	}
}

func TestSettingsRejectsNonNumericTimeout(t *testing.T) {
	s, _, _ := newTestSettings(t)
	s.timeoutInput.SetValue("ten")

	s, _, action := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if action != SettingsNone || !strings.Contains(s.Err(), "Timeout") {
		t.Errorf("expected timeout error, got action %d err %q", action, s.Err())
	}
}

func TestSettingsSave(t *testing.T) {
	s, cfg, path := newTestSettings(t)
	s.targetInput.SetValue("  192.0.2.10 ")
	s.intervalInput.SetValue("5")
	s.timeoutInput.SetValue("3")

	// Cycle the method from icmp to tcp.
	s.cursor = settingsFieldMethod
	s, _, _ = s.Update(tea.KeyMsg{Type: tea.KeyRight})

	s, _, action := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if action != SettingsSaved {
		t.Fatalf("expected SettingsSaved, got %d (err %q)", action, s.Err())
	}
	if cfg.Target != "192.0.2.10" || cfg.IntervalSeconds != 5 || cfg.TimeoutSeconds != 3 || cfg.Method != "tcp" {
		t.Errorf("unexpected config after save: %+v", cfg)
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Target != "192.0.2.10" || loaded.Method != "tcp" {
		t.Errorf("saved file mismatch: %+v", loaded)
	}
	if s.SavedTheme != cfg.Theme {
		t.Errorf("SavedTheme = %q, want %q", s.SavedTheme, cfg.Theme)
	}
}

func TestSettingsThemeCycleWraps(t *testing.T) {
	s, _, _ := newTestSettings(t)
	s.themeIndex = 0
	s, _, _ = s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if s.themeIndex != styles.GetThemeCount()-1 {
		t.Errorf("expected wrap to last theme, got %d", s.themeIndex)
	}
}

func TestSettingsEscapeCloses(t *testing.T) {
	s, _, _ := newTestSettings(t)
	_, _, action := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if action != SettingsClose {
		t.Errorf("expected SettingsClose, got %d", action)
	}
}

func TestSettingsViewRendersFieldsAndPreview(t *testing.T) {
	s, _, _ := newTestSettings(t)
	s.SetSize(100, 40)
	out := s.View()
	for _, want := range []string{"Settings", "Target:", "Interval (s):", "< icmp >", "Theme Preview", "Unreachable", "Error (no such host)"} {
		if !strings.Contains(out, want) {
			t.Errorf("settings view missing %q", want)
		}
	}
}
