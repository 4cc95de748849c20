package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the combobox
type Styles struct {
	Trigger        lipgloss.Style
	TriggerFocused lipgloss.Style
	Placeholder    lipgloss.Style
	Chip           lipgloss.Style
	ChipActive     lipgloss.Style
	Panel          lipgloss.Style
	Item           lipgloss.Style
	ItemHighlight  lipgloss.Style
	Arrow          lipgloss.Style
	ClearIcon      lipgloss.Style
	Status         lipgloss.Style
	TypeAhead      lipgloss.Style
	Popup          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Trigger:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TriggerFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Placeholder:    lipgloss.NewStyle().Faint(true),
		Chip:           lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("240")).Padding(0, 1),
		ChipActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99")).Padding(0, 1),
		Panel:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Item:           lipgloss.NewStyle().PaddingLeft(2),
		ItemHighlight:  lipgloss.NewStyle().PaddingLeft(1).Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")),
		Arrow:          lipgloss.NewStyle().Faint(true),
		ClearIcon:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		TypeAhead:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Popup:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(1, 2),
	}
}
