package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
//
// Bold and italic cells render as Text (or Selection/Cursor) with the matching
// lipgloss attribute added.
type Style struct {
	Text        lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style
	ListMarker  lipgloss.Style

	Button         lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonDisabled lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: muted,
		ListMarker:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		ButtonActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true),
		ButtonDisabled: muted.Background(lipgloss.Color("235")),
	}
}
