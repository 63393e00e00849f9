// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Accent is the secondary accent colour.
	Accent lipgloss.Color

	// Text is the default text colour.
	Text lipgloss.Color

	// Dim is for less important text.
	Dim lipgloss.Color

	// Good indicates positive outcomes.
	Good lipgloss.Color

	// Warn indicates caution.
	Warn lipgloss.Color

	// Bad indicates problems.
	Bad lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#EA580C"), // Orange
		Accent:  lipgloss.Color("#0EA5E9"), // Sky blue
		Text:    lipgloss.Color("#E7E5E4"), // Warm light gray
		Dim:     lipgloss.Color("#78716C"), // Warm medium gray
		Good:    lipgloss.Color("#86EFAC"), // Green
		Warn:    lipgloss.Color("#FDE047"), // Yellow
		Bad:     lipgloss.Color("#FDA4AF"), // Red
		Border:  lipgloss.Color("#44403C"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// FieldLabel style for form field labels.
	FieldLabel lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StepBar style for the wizard step indicator.
	StepBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Text),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Dim),

		Error: lipgloss.NewStyle().
			Foreground(theme.Bad),

		Success: lipgloss.NewStyle().
			Foreground(theme.Good),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warn),

		FieldLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StepBar: lipgloss.NewStyle().
			Foreground(theme.Dim).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Dim),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
