package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/tonhe/netcheck/internal/config"
	"github.com/tonhe/netcheck/internal/export"
	"github.com/tonhe/netcheck/internal/monitor"
	"github.com/tonhe/netcheck/tui/components"
	"github.com/tonhe/netcheck/tui/keys"
	"github.com/tonhe/netcheck/tui/styles"
	"github.com/tonhe/netcheck/tui/views"
)

// AppState represents the current screen/view of the application.
type AppState int

const (
	StateLog AppState = iota
	StateSettings
)

const flashDuration = 3 * time.Second

// monitorMsg carries an event from the monitor subscription.
type monitorMsg monitor.Event

// stoppedMsg is sent once a Stop issued from the UI has returned.
type stoppedMsg struct{}

// startMsg asks the model to start monitoring, used for --start.
type startMsg struct{}

// savedMsg reports the outcome of a log export.
type savedMsg struct {
	path string
	err  error
}

// flashExpiredMsg clears the status bar message if it is still current.
type flashExpiredMsg struct{ id int }

// transportSwitch lets settings change the probe method between sessions
// without rebuilding the monitor.
type transportSwitch struct {
	mu sync.RWMutex
	t  monitor.Transport
}

func (s *transportSwitch) Set(t monitor.Transport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t = t
}

func (s *transportSwitch) Send(ctx context.Context, address string, timeout time.Duration) (monitor.Reply, error) {
	s.mu.RLock()
	t := s.t
	s.mu.RUnlock()
	return t.Send(ctx, address, timeout)
}

// AppModel is the root Bubble Tea model that manages all views and state.
type AppModel struct {
	state     AppState
	theme     styles.Theme
	config    *config.Config
	logger    logrus.FieldLogger
	monitor   *monitor.Monitor
	transport *transportSwitch
	events    <-chan monitor.Event

	logView  views.LogView
	settings views.SettingsView
	help     views.HelpView

	width     int
	height    int
	version   string
	autoStart bool
	flash     string
	flashID   int
}

// NewAppModel creates a new AppModel with the given config. The probe
// transport is built from cfg, so an unknown method is reported here.
func NewAppModel(cfg *config.Config, logger logrus.FieldLogger, version string, autoStart bool) (AppModel, error) {
	t, err := cfg.Transport()
	if err != nil {
		return AppModel{}, err
	}
	ts := &transportSwitch{t: t}

	theme := styles.DefaultTheme
	if th := styles.GetThemeByName(cfg.Theme); th != nil {
		theme = *th
	}

	mon := monitor.New(ts, monitor.WithLogger(logger), monitor.WithHistory(cfg.MaxHistory))

	return AppModel{
		state:     StateLog,
		theme:     theme,
		config:    cfg,
		logger:    logger,
		monitor:   mon,
		transport: ts,
		events:    mon.Subscribe(),
		logView:   views.NewLogView(theme),
		help:      views.NewHelpView(theme),
		version:   version,
		autoStart: autoStart,
	}, nil
}

// Init starts listening for monitor events.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForEvent(m.events)}
	if m.autoStart {
		cmds = append(cmds, func() tea.Msg { return startMsg{} })
	}
	return tea.Batch(cmds...)
}

func waitForEvent(ch <-chan monitor.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return monitorMsg(ev)
	}
}

func stopCmd(mon *monitor.Monitor) tea.Cmd {
	return func() tea.Msg {
		mon.Stop(nil)
		return stoppedMsg{}
	}
}

func saveCmd(cfg *config.Config, mon *monitor.Monitor) tea.Cmd {
	return func() tea.Msg {
		dir, err := cfg.ResolveExportDir()
		if err != nil {
			return savedMsg{err: err}
		}
		path := filepath.Join(dir, monitor.ExportFileName(time.Now()))
		return savedMsg{path: path, err: export.WriteFile(path, mon)}
	}
}

// setFlash shows msg in the status bar until flashDuration passes.
func (m *AppModel) setFlash(msg string) tea.Cmd {
	m.flashID++
	m.flash = msg
	id := m.flashID
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

func (m *AppModel) refresh() {
	m.logView.SetData(m.monitor.Snapshot(), m.monitor.Events(), monitor.LatencySeries(m.monitor.History()))
}

func (m *AppModel) applyTheme(theme styles.Theme) {
	m.theme = theme
	m.logView = views.NewLogView(theme)
	m.help = views.NewHelpView(theme)
	m.resize()
	m.refresh()
}

func (m *AppModel) resize() {
	// Body height = total - 1 (header) - 2 (status bar lines)
	body := m.height - 3
	m.logView.SetSize(m.width, body)
	m.settings.SetSize(m.width, body)
	m.help.SetSize(m.width, body)
}

func (m *AppModel) start() tea.Cmd {
	s, err := m.monitor.Start(m.config.MonitorConfig())
	if err != nil {
		return m.setFlash(fmt.Sprintf("Cannot start: %v", err))
	}
	m.logger.WithFields(logrus.Fields{
		"session": s.ID,
		"address": s.Config.Address,
	}).Info("Monitoring started from the UI.")
	m.refresh()
	return nil
}

// Update handles messages and dispatches to the active view.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case monitorMsg:
		m.refresh()
		return m, waitForEvent(m.events)

	case startMsg:
		return m, m.start()

	case stoppedMsg:
		m.refresh()
		return m, m.setFlash("Monitoring stopped")

	case savedMsg:
		if msg.err != nil {
			m.logger.WithError(msg.err).Error("Saving status log failed.")
			return m, m.setFlash(fmt.Sprintf("Save failed: %v", msg.err))
		}
		return m, m.setFlash("Saved " + msg.path)

	case flashExpiredMsg:
		if msg.id == m.flashID {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Sequence(stopCmd(m.monitor), tea.Quit)
		}

		if m.help.IsVisible() {
			switch {
			case key.Matches(msg, keys.DefaultKeyMap.Help), key.Matches(msg, keys.DefaultKeyMap.Escape):
				m.help.Toggle()
			case key.Matches(msg, keys.DefaultKeyMap.Quit):
				return m, tea.Sequence(stopCmd(m.monitor), tea.Quit)
			}
			return m, nil
		}

		switch m.state {
		case StateSettings:
			return m.updateSettings(msg)
		case StateLog:
			return m.updateLog(msg)
		}
	}
	return m, nil
}

func (m AppModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var action views.SettingsAction
	m.settings, cmd, action = m.settings.Update(msg)

	switch action {
	case views.SettingsClose:
		m.state = StateLog
	case views.SettingsSaved:
		m.state = StateLog
		t, err := m.config.Transport()
		if err != nil {
			return m, m.setFlash(fmt.Sprintf("Invalid method: %v", err))
		}
		m.transport.Set(t)
		if th := styles.GetThemeByName(m.settings.SavedTheme); th != nil {
			m.applyTheme(*th)
		}
		m.logger.WithFields(logrus.Fields{
			"target": m.config.Target,
			"method": m.config.Method,
		}).Info("Settings saved.")
		return m, tea.Batch(cmd, m.setFlash("Settings saved"))
	}
	return m, cmd
}

func (m AppModel) updateLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.DefaultKeyMap.Quit):
		return m, tea.Sequence(stopCmd(m.monitor), tea.Quit)

	case key.Matches(msg, keys.DefaultKeyMap.Help):
		m.help.Toggle()
		return m, nil

	case key.Matches(msg, keys.DefaultKeyMap.Toggle):
		if m.monitor.Running() {
			return m, tea.Batch(stopCmd(m.monitor), m.setFlash("Stopping..."))
		}
		return m, m.start()

	case key.Matches(msg, keys.DefaultKeyMap.Clear):
		m.monitor.Clear()
		m.refresh()
		return m, nil

	case key.Matches(msg, keys.DefaultKeyMap.Save):
		return m, saveCmd(m.config, m.monitor)

	case key.Matches(msg, keys.DefaultKeyMap.Settings):
		if m.monitor.Running() {
			return m, m.setFlash("Stop monitoring to change settings")
		}
		m.settings = views.NewSettingsView(m.theme, m.config)
		m.settings.SetSize(m.width, m.height-3)
		m.state = StateSettings
		return m, nil
	}

	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

// View renders the full application UI by composing header, body, and status.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	snap := m.monitor.Snapshot()
	target := snap.Config.Address
	if target == "" {
		target = m.config.Target
	}
	header := components.RenderHeader(m.theme, target, snap.Run == monitor.Running, snap.Last, m.version, m.width)

	var body string
	switch {
	case m.help.IsVisible():
		body = m.help.View()
	case m.state == StateSettings:
		body = m.settings.View()
	default:
		body = m.logView.View()
	}

	interval, timeout := m.config.IntervalSeconds, m.config.TimeoutSeconds
	if snap.Run == monitor.Running {
		interval, timeout = snap.Config.IntervalSeconds, snap.Config.TimeoutSeconds
	}
	statusBar := components.RenderStatusBar(m.theme, components.StatusInfo{
		Interval:  interval,
		Timeout:   timeout,
		Heartbeat: snap.Heartbeat,
		Running:   snap.Run == monitor.Running,
		Summary:   m.monitor.Summary(),
		Flash:     m.flash,
	}, m.width)

	// Fill body to the available height between header and status bar
	bodyHeight := m.height - 1 - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), statusBar)
}
