package theme

import "charm.land/lipgloss/v2"

// Styles describes reusable Lip Gloss styles shared across the overlay.
// Border styles colour a pane's frame; Fill styles colour its interior.
type Styles struct {
	Border        *lipgloss.Style
	BorderActive  *lipgloss.Style
	BorderHover   *lipgloss.Style
	BorderDragged *lipgloss.Style
	BorderSelf    *lipgloss.Style
	EdgeLit       *lipgloss.Style

	Fill        *lipgloss.Style
	FillActive  *lipgloss.Style
	FillHover   *lipgloss.Style
	FillDragged *lipgloss.Style
	FillSelf    *lipgloss.Style

	Strip    *lipgloss.Style
	StripLit *lipgloss.Style
	Label    *lipgloss.Style

	Footer *lipgloss.Style
	Status *lipgloss.Style
	Error  *lipgloss.Style
}

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#4a9eff")),
	),
	BorderActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")).Bold(true),
	),
	BorderHover: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")).Bold(true),
	),
	BorderDragged: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#ff66ff")).Bold(true),
	),
	BorderSelf: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#3a5a7a")),
	),
	EdgeLit: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffcc")).Bold(true),
	),
	Fill: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#8ab4d4")).Background(lipgloss.Color("#0d1b2a")),
	),
	FillActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#aaffcc")).Background(lipgloss.Color("#0d2b1a")),
	),
	FillHover: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe066")).Background(lipgloss.Color("#2b2500")),
	),
	FillDragged: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaaff")).Background(lipgloss.Color("#2a0d2a")),
	),
	FillSelf: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#5a7a9a")).Background(lipgloss.Color("#0a0f1e")),
	),
	Strip: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#1a3a66")).Background(lipgloss.Color("#000d22")),
	),
	StripLit: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#66aaff")).Background(lipgloss.Color("#002266")).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff")).Background(lipgloss.Color("#440066")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#4a9eff")).Background(lipgloss.Color("#0d1b2a")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#aaffcc")).Background(lipgloss.Color("#0d1b2a")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("#0d1b2a")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
