package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the terminal
// dialog renderer.
type Styles struct {
	TitleBar       *lipgloss.Style
	Instruction    *lipgloss.Style
	Content        *lipgloss.Style
	Button         *lipgloss.Style
	FocusedButton  *lipgloss.Style
	DisabledButton *lipgloss.Style
	Radio          *lipgloss.Style
	FocusedRadio   *lipgloss.Style
	DisabledRadio  *lipgloss.Style
	ProgressFill   *lipgloss.Style
	ProgressError  *lipgloss.Style
	ProgressPause  *lipgloss.Style
	Verification   *lipgloss.Style
	Expander       *lipgloss.Style
	Footer         *lipgloss.Style
	Filter         *lipgloss.Style
	FilterPrompt   *lipgloss.Style
	Elevation      *lipgloss.Style
	Error          *lipgloss.Style
}

var defaultStyles = Styles{
	TitleBar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Instruction: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	),
	Content: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	DisabledButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Radio: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FocusedRadio: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DisabledRadio: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	ProgressFill: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	ProgressError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	ProgressPause: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Verification: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Expander: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Elevation: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used by the renderer.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
