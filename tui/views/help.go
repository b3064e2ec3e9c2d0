package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/netcheck/tui/keys"
	"github.com/tonhe/netcheck/tui/styles"
)

// helpSection groups key bindings under a heading in the help overlay.
type helpSection struct {
	title    string
	bindings []key.Binding
}

func helpSections() []helpSection {
	km := keys.DefaultKeyMap
	return []helpSection{
		{"Monitor", []key.Binding{km.Toggle, km.Clear, km.Save, km.Settings, km.Help, km.Quit}},
		{"Status Log", []key.Binding{km.Up, km.Down, km.PageUp, km.PageDown, km.Top, km.Bottom}},
		{"Settings", []key.Binding{
			key.NewBinding(key.WithHelp("left/right", "cycle theme or method")),
			key.NewBinding(key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithHelp("enter", "save")),
			km.Escape,
		}},
	}
}

// HelpView renders a modal overlay listing the key bindings.
type HelpView struct {
	theme   styles.Theme
	sty     *styles.Styles
	width   int
	height  int
	visible bool
}

// NewHelpView creates a new HelpView with the given theme.
func NewHelpView(theme styles.Theme) HelpView {
	return HelpView{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// Toggle flips the help overlay visibility.
func (v *HelpView) Toggle() {
	v.visible = !v.visible
}

// IsVisible returns whether the help overlay is currently shown.
func (v HelpView) IsVisible() bool {
	return v.visible
}

// SetSize updates the available dimensions for the overlay.
func (v *HelpView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the overlay centered in the body area.
func (v HelpView) View() string {
	modalWidth := min(max(v.width/2, 40), 56)

	sectionStyle := lipgloss.NewStyle().Foreground(v.theme.Base0E).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(v.theme.Base0D).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(v.theme.Base05)

	var lines []string
	for i, sec := range helpSections() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, sectionStyle.Render(sec.title))
		for _, b := range sec.bindings {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %s  %s",
				keyStyle.Render(padRight(h.Key, 14)),
				descStyle.Render(h.Desc),
			))
		}
	}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(v.theme.Base04).Render("[?] close"))

	modal := v.sty.ModalBorder.
		Width(modalWidth - 6). // border + padding
		Render(strings.Join(lines, "\n"))
	modal = titleBorder(modal, v.sty.ModalTitle.Render(" Keyboard Shortcuts "))

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}

// titleBorder overwrites the start of a box's top border with title.
func titleBorder(box, title string) string {
	top, rest, ok := strings.Cut(box, "\n")
	if !ok {
		return box
	}
	border := []rune(top)
	t := []rune(title)
	const inset = 2
	if inset+len(t) >= len(border) {
		return box
	}
	copy(border[inset:], t)
	return string(border) + "\n" + rest
}
