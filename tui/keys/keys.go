package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Enter    key.Binding
	Escape   key.Binding
	Quit     key.Binding
	Toggle   key.Binding
	Clear    key.Binding
	Save     key.Binding
	Settings key.Binding
	Help     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
}

// DefaultKeyMap provides the default set of key bindings.
var DefaultKeyMap = KeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "oldest")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "newest")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start/stop")),
	Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear log")),
	Save:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save log")),
	Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "left")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "right")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
}
