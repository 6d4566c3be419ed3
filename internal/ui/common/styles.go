package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	// Prompts
	Question lipgloss.Style // the question text
	Answer   lipgloss.Style // echoed answer after a prompt closes
	Option   lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Button   lipgloss.Style
	Active   lipgloss.Style // focused confirm button

	// Summary
	Label      lipgloss.Style
	BranchName lipgloss.Style
	Box        lipgloss.Style

	// Help bar
	Help lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the styles built from the default palette.
func DefaultStyles() Styles {
	return NewStyles(DefaultPalette())
}

// NewStyles builds a Styles set from p.
func NewStyles(p Palette) Styles {
	return Styles{
		Question: lipgloss.NewStyle().Bold(true).Foreground(p.Foreground),
		Answer:   lipgloss.NewStyle().Foreground(p.Secondary),
		Option:   lipgloss.NewStyle().Foreground(p.Foreground),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Cursor:   lipgloss.NewStyle().Foreground(p.Primary),
		Button: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		Active: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Background(p.Primary).
			Padding(0, 1),

		Label:      lipgloss.NewStyle().Foreground(p.Muted).Width(10),
		BranchName: lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 2),

		Help: lipgloss.NewStyle().Foreground(p.Muted),

		Error:   lipgloss.NewStyle().Foreground(p.Error),
		Success: lipgloss.NewStyle().Foreground(p.Success),
		Warning: lipgloss.NewStyle().Foreground(p.Warning),
	}
}
