package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blubits/threefourthree/internal/games/t343"
)

// Theme contains the styles used to print a game.
type Theme struct {
	// Tile colors by exponent: Tiles[0] is the base value, Tiles[1] its square, ...
	Tiles     []lipgloss.Style
	EmptyCell lipgloss.Style
	Board     lipgloss.Style

	// HUD styles
	HUDTitle lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style

	// Status styles
	StatusPlaying lipgloss.Style
	StatusWon     lipgloss.Style
	StatusLost    lipgloss.Style
	Message       lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Tiles: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // Bright cyan
			lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Lime green
			lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Bright yellow
			lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // Orange
			lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // Hot pink
			lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // Medium purple
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		},
		EmptyCell: lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		HUDTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		StatusPlaying: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		StatusWon:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusLost:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Message:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}

// Tile returns the style for a tile value on a board with the given base.
func (t Theme) Tile(value, base int) lipgloss.Style {
	exp := 0
	for v := value; v > base; v /= base {
		exp++
	}
	if exp >= len(t.Tiles) {
		exp = len(t.Tiles) - 1
	}
	return t.Tiles[exp]
}

// Status returns the style for a game status.
func (t Theme) Status(s t343.Status) lipgloss.Style {
	switch s {
	case t343.StatusWon, t343.StatusKeepPlaying:
		return t.StatusWon
	case t343.StatusLost:
		return t.StatusLost
	default:
		return t.StatusPlaying
	}
}
