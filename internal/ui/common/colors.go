package common

import "github.com/charmbracelet/lipgloss"

// Tokyo Night-inspired color palette
// Muted, accessible, easy on eyes
var (
	// Base palette
	ColorBackground    = lipgloss.Color("#1a1b26") // Dark blue-gray
	ColorForeground    = lipgloss.Color("#a9b1d6") // Soft lavender-white
	ColorMuted         = lipgloss.Color("#565f89") // Dimmed text
	ColorBorder        = lipgloss.Color("#292e42") // Subtle borders
	ColorBorderFocused = lipgloss.Color("#7aa2f7") // Blue highlight

	// Semantic colors
	ColorPrimary   = lipgloss.Color("#7aa2f7") // Blue - primary actions, focus
	ColorSecondary = lipgloss.Color("#bb9af7") // Purple - secondary elements
	ColorSuccess   = lipgloss.Color("#9ece6a") // Green - done columns
	ColorWarning   = lipgloss.Color("#e0af68") // Yellow - warnings, WIP limits
	ColorError     = lipgloss.Color("#f7768e") // Red - errors
	ColorInfo      = lipgloss.Color("#7dcfff") // Cyan - info messages

	// Selection/highlight
	ColorSelection = lipgloss.Color("#33467c") // Selected card background
	ColorHighlight = lipgloss.Color("#3d59a1") // Drop indicator background
)

// LabelColor returns the accent color for a card label.
func LabelColor(label string) lipgloss.Color {
	switch label {
	case "bug":
		return ColorError
	case "feature":
		return ColorSuccess
	case "design":
		return ColorSecondary
	case "docs":
		return ColorInfo
	case "release":
		return ColorWarning
	default:
		return ColorPrimary
	}
}
