package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all themed lipgloss styles for the application.
type Styles struct {
	// Layout
	AppContainer lipgloss.Style
	Panel        lipgloss.Style
	PanelTitle   lipgloss.Style

	// Status colors
	StatusUp   lipgloss.Style
	StatusDown lipgloss.Style
	StatusWarn lipgloss.Style
	StatusIdle lipgloss.Style

	// Status log
	LogTime    lipgloss.Style
	LogMessage lipgloss.Style
	LogEmpty   lipgloss.Style

	SparklineStyle lipgloss.Style

	// Modal / overlay
	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style

	// Form
	FormLabel       lipgloss.Style
	FormInput       lipgloss.Style
	FormInputActive lipgloss.Style
	FormError       lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme Theme) *Styles {
	return &Styles{
		AppContainer: lipgloss.NewStyle().
			Foreground(theme.Base05).
			Background(theme.Base00),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base02).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Foreground(theme.Base0E).
			Bold(true),

		StatusUp: lipgloss.NewStyle().
			Foreground(theme.Base0B).
			Bold(true),
		StatusDown: lipgloss.NewStyle().
			Foreground(theme.Base08).
			Bold(true),
		StatusWarn: lipgloss.NewStyle().
			Foreground(theme.Base0A).
			Bold(true),
		StatusIdle: lipgloss.NewStyle().
			Foreground(theme.Base03),

		LogTime: lipgloss.NewStyle().
			Foreground(theme.Base04),
		LogMessage: lipgloss.NewStyle().
			Foreground(theme.Base05),
		LogEmpty: lipgloss.NewStyle().
			Foreground(theme.Base03).
			Italic(true),

		SparklineStyle: lipgloss.NewStyle().
			Foreground(theme.Base0C),

		ModalBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base0D).
			BorderBackground(theme.Base00).
			Background(theme.Base00).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),

		FormLabel: lipgloss.NewStyle().
			Foreground(theme.Base04),
		FormInput: lipgloss.NewStyle().
			Foreground(theme.Base05),
		FormInputActive: lipgloss.NewStyle().
			Foreground(theme.Base06).
			Background(theme.Base02),
		FormError: lipgloss.NewStyle().
			Foreground(theme.Base08),
	}
}
