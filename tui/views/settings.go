package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/netcheck/internal/config"
	"github.com/tonhe/netcheck/internal/monitor"
	"github.com/tonhe/netcheck/tui/components"
	"github.com/tonhe/netcheck/tui/keys"
	"github.com/tonhe/netcheck/tui/styles"
)

// SettingsAction describes what the app should do after a settings update.
type SettingsAction int

const (
	// SettingsNone means continue in the settings view.
	SettingsNone SettingsAction = iota
	// SettingsClose means the user cancelled without saving.
	SettingsClose
	// SettingsSaved means the config was saved; the app should apply changes.
	SettingsSaved
)

// Settings field indices.
const (
	settingsFieldTheme    = 0
	settingsFieldTarget   = 1
	settingsFieldInterval = 2
	settingsFieldTimeout  = 3
	settingsFieldMethod   = 4
	settingsFieldCount    = 5
)

var probeMethods = []string{"icmp", "tcp"}

// SettingsView is a full-screen settings editor with a live theme preview.
type SettingsView struct {
	theme  styles.Theme
	sty    *styles.Styles
	config *config.Config

	themeIndex  int // index into styles.ListThemes()
	methodIndex int // index into probeMethods
	cursor      int // which setting row is focused

	width  int
	height int

	targetInput   textinput.Model
	intervalInput textinput.Model
	timeoutInput  textinput.Model

	err        string
	SavedTheme string // theme slug after save, so the app can apply it

	// configPath overrides the default config location; used by tests.
	configPath string
}

func newSecondsInput(placeholder string, value int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 6
	in.Width = 10
	in.SetValue(strconv.Itoa(value))
	return in
}

// NewSettingsView creates a fresh SettingsView populated from the current config.
func NewSettingsView(theme styles.Theme, cfg *config.Config) SettingsView {
	themeIdx := styles.GetThemeIndex(cfg.Theme)
	if themeIdx < 0 {
		themeIdx = 0
	}
	methodIdx := 0
	for i, m := range probeMethods {
		if strings.EqualFold(cfg.Method, m) {
			methodIdx = i
		}
	}

	targetInput := textinput.New()
	targetInput.Placeholder = "host name or IP address"
	targetInput.CharLimit = 253
	targetInput.Width = 40
	targetInput.SetValue(cfg.Target)

	return SettingsView{
		theme:         theme,
		sty:           styles.NewStyles(theme),
		config:        cfg,
		themeIndex:    themeIdx,
		methodIndex:   methodIdx,
		targetInput:   targetInput,
		intervalInput: newSecondsInput("1", cfg.IntervalSeconds),
		timeoutInput:  newSecondsInput("10", cfg.TimeoutSeconds),
	}
}

// SetSize updates the available dimensions for the settings view.
func (s *SettingsView) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Err returns the last validation or save error, if any.
func (s SettingsView) Err() string {
	return s.err
}

// selectedThemeSlug returns the slug of the currently selected theme.
func (s SettingsView) selectedThemeSlug() string {
	themes := styles.ListThemes()
	if s.themeIndex >= 0 && s.themeIndex < len(themes) {
		return themes[s.themeIndex]
	}
	return ""
}

// selectedTheme returns the Theme struct for the currently selected theme.
func (s SettingsView) selectedTheme() styles.Theme {
	t := styles.GetThemeByIndex(s.themeIndex)
	if t != nil {
		return *t
	}
	return styles.DefaultTheme
}

// focusInput blurs all inputs and focuses the one at the cursor position.
func (s *SettingsView) focusInput() {
	s.targetInput.Blur()
	s.intervalInput.Blur()
	s.timeoutInput.Blur()

	switch s.cursor {
	case settingsFieldTarget:
		s.targetInput.Focus()
	case settingsFieldInterval:
		s.intervalInput.Focus()
	case settingsFieldTimeout:
		s.timeoutInput.Focus()
	}
}

// cycle moves the theme or method selection by delta, wrapping around.
func (s *SettingsView) cycle(delta int) bool {
	switch s.cursor {
	case settingsFieldTheme:
		n := styles.GetThemeCount()
		s.themeIndex = (s.themeIndex + delta + n) % n
		s.theme = s.selectedTheme()
		s.sty = styles.NewStyles(s.theme)
		return true
	case settingsFieldMethod:
		n := len(probeMethods)
		s.methodIndex = (s.methodIndex + delta + n) % n
		return true
	}
	return false
}

// Update handles messages for the settings view.
func (s SettingsView) Update(msg tea.Msg) (SettingsView, tea.Cmd, SettingsAction) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Escape):
			return s, nil, SettingsClose

		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			return s.save()

		case msg.String() == "up":
			if s.cursor > 0 {
				s.cursor--
				s.focusInput()
			}
			return s, nil, SettingsNone

		case msg.String() == "down":
			if s.cursor < settingsFieldCount-1 {
				s.cursor++
				s.focusInput()
			}
			return s, nil, SettingsNone

		case key.Matches(msg, keys.DefaultKeyMap.Tab):
			s.cursor++
			if s.cursor >= settingsFieldCount {
				s.cursor = 0
			}
			s.focusInput()
			return s, nil, SettingsNone

		case msg.String() == "shift+tab":
			s.cursor--
			if s.cursor < 0 {
				s.cursor = settingsFieldCount - 1
			}
			s.focusInput()
			return s, nil, SettingsNone

		case key.Matches(msg, keys.DefaultKeyMap.Left):
			if s.cycle(-1) {
				return s, nil, SettingsNone
			}
			return s.updateTextInput(msg)

		case key.Matches(msg, keys.DefaultKeyMap.Right):
			if s.cycle(1) {
				return s, nil, SettingsNone
			}
			return s.updateTextInput(msg)

		default:
			return s.updateTextInput(msg)
		}
	}
	return s, nil, SettingsNone
}

// updateTextInput dispatches a key message to the currently focused text input.
func (s SettingsView) updateTextInput(msg tea.Msg) (SettingsView, tea.Cmd, SettingsAction) {
	var cmd tea.Cmd
	switch s.cursor {
	case settingsFieldTarget:
		s.targetInput, cmd = s.targetInput.Update(msg)
	case settingsFieldInterval:
		s.intervalInput, cmd = s.intervalInput.Update(msg)
	case settingsFieldTimeout:
		s.timeoutInput, cmd = s.timeoutInput.Update(msg)
	}
	return s, cmd, SettingsNone
}

// parseSeconds reads a whole number of seconds, at least 1.
func parseSeconds(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a whole number of seconds, at least 1", name)
	}
	return n, nil
}

// save validates and persists the config to disk.
func (s SettingsView) save() (SettingsView, tea.Cmd, SettingsAction) {
	interval, err := parseSeconds("Interval", s.intervalInput.Value())
	if err != nil {
		s.err = err.Error()
		return s, nil, SettingsNone
	}
	timeout, err := parseSeconds("Timeout", s.timeoutInput.Value())
	if err != nil {
		s.err = err.Error()
		return s, nil, SettingsNone
	}

	s.config.Theme = s.selectedThemeSlug()
	s.config.Target = strings.TrimSpace(s.targetInput.Value())
	s.config.IntervalSeconds = interval
	s.config.TimeoutSeconds = timeout
	s.config.Method = probeMethods[s.methodIndex]

	cfgPath := s.configPath
	if cfgPath == "" {
		if err := config.EnsureDirs(); err != nil {
			s.err = fmt.Sprintf("Failed to create directories: %v", err)
			return s, nil, SettingsNone
		}
		cfgPath, err = config.GetConfigPath()
		if err != nil {
			s.err = fmt.Sprintf("Failed to get config path: %v", err)
			return s, nil, SettingsNone
		}
	}
	if err := config.SaveConfig(s.config, cfgPath); err != nil {
		s.err = fmt.Sprintf("Failed to save config: %v", err)
		return s, nil, SettingsNone
	}

	s.SavedTheme = s.config.Theme
	s.err = ""
	return s, nil, SettingsSaved
}

// View renders the settings screen.
func (s SettingsView) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(s.theme.Base0D).
		Bold(true)
	labelStyle := s.sty.FormLabel
	activeLabelStyle := lipgloss.NewStyle().
		Foreground(s.theme.Base0D).
		Bold(true)
	valStyle := lipgloss.NewStyle().
		Foreground(s.theme.Base06)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Settings") + "\n")
	b.WriteString("\n")

	if s.err != "" {
		b.WriteString("  " + s.sty.FormError.Render(s.err) + "\n\n")
	}

	themeSlug := s.selectedThemeSlug()
	themeName := themeSlug
	if t := styles.GetThemeByName(themeSlug); t != nil {
		themeName = t.Name
	}
	themeDisplay := fmt.Sprintf("< %s >  (%d/%d)", themeName, s.themeIndex+1, styles.GetThemeCount())
	methodDisplay := fmt.Sprintf("< %s >", probeMethods[s.methodIndex])

	type settingsRow struct {
		label   string
		display string
		isInput bool
		input   string
	}

	rows := []settingsRow{
		{"Theme", themeDisplay, false, ""},
		{"Target", "", true, s.targetInput.View()},
		{"Interval (s)", "", true, s.intervalInput.View()},
		{"Timeout (s)", "", true, s.timeoutInput.View()},
		{"Method", methodDisplay, false, ""},
	}

	for i, row := range rows {
		isFocused := i == s.cursor
		indicator := "  "
		lbl := labelStyle
		if isFocused {
			indicatorStyle := lipgloss.NewStyle().Foreground(s.theme.Base0D).Bold(true)
			indicator = indicatorStyle.Render("> ")
			lbl = activeLabelStyle
		}

		label := lbl.Render(padRight(row.label+":", 20))
		if row.isInput {
			b.WriteString(fmt.Sprintf("  %s%s%s\n", indicator, label, row.input))
		} else {
			b.WriteString(fmt.Sprintf("  %s%s%s\n", indicator, label, valStyle.Render(row.display)))
		}
	}

	b.WriteString("\n")
	b.WriteString(s.renderThemePreview())

	b.WriteString("\n")
	b.WriteString("  " + s.renderHelp() + "\n")

	return b.String()
}

// renderThemePreview shows the selected theme applied to the real header
// and a few sample log lines.
func (s SettingsView) renderThemePreview() string {
	pt := s.selectedTheme()
	sty := styles.NewStyles(pt)

	width := 56
	if s.width > 0 {
		width = min(width, s.width-6)
	}
	width = max(width, 30)

	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)
	samples := []monitor.ProbeResult{
		{Outcome: monitor.Reachable, RTT: 12 * time.Millisecond, Timestamp: ts},
		{Outcome: monitor.Unreachable, Timestamp: ts.Add(14 * time.Minute)},
		{Outcome: monitor.Failed, Message: "no such host", Timestamp: ts.Add(15 * time.Minute)},
	}

	rule := lipgloss.NewStyle().Foreground(pt.Base03)
	lines := []string{
		rule.Render(padRight("-- Theme Preview "+strings.Repeat("-", width), width)),
		components.RenderHeader(pt, "example.net", true, &samples[0], "0.0.0", width),
	}
	for _, r := range samples {
		status := lipgloss.NewStyle().Foreground(pt.OutcomeColor(&r)).Render(r.Status())
		lines = append(lines, sty.LogTime.Render(r.Timestamp.Format(monitor.TimeLayout))+" "+status)
	}
	lines = append(lines,
		sty.SparklineStyle.Render(components.Sparkline([]float64{12, 14, 11, 0, 0, 19, 13, 12}, 8)),
		rule.Render(strings.Repeat("-", width)),
	)

	var b strings.Builder
	for _, l := range lines {
		b.WriteString("  " + l + "\n")
	}
	return b.String()
}

// renderHelp renders the help line for the settings view.
func (s SettingsView) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(s.theme.Base04)
	keyStyle := lipgloss.NewStyle().Foreground(s.theme.Base0D).Bold(true)

	hint := ""
	if s.cursor == settingsFieldTheme || s.cursor == settingsFieldMethod {
		hint = fmt.Sprintf(
			"%s/%s cycle  %s/%s navigate  %s save  %s cancel",
			keyStyle.Render("[left]"),
			keyStyle.Render("[right]"),
			keyStyle.Render("[up]"),
			keyStyle.Render("[down]"),
			keyStyle.Render("[enter]"),
			keyStyle.Render("[esc]"),
		)
	} else {
		hint = fmt.Sprintf(
			"%s/%s navigate  %s save  %s cancel",
			keyStyle.Render("[up]"),
			keyStyle.Render("[down]"),
			keyStyle.Render("[enter]"),
			keyStyle.Render("[esc]"),
		)
	}

	return helpStyle.Render(hint)
}

