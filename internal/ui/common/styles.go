package common

import "github.com/charmbracelet/lipgloss"

// Styles contains all the application styles
type Styles struct {
	// Layout - Pane borders and structure
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	// Text hierarchy
	Title    lipgloss.Style // App name, column headers
	Subtitle lipgloss.Style // Secondary headers
	Body     lipgloss.Style // Normal text
	Muted    lipgloss.Style // De-emphasized text
	Bold     lipgloss.Style // Emphasized text

	// Board
	CardRow       lipgloss.Style
	SelectedRow   lipgloss.Style
	DraggedRow    lipgloss.Style
	DropIndicator lipgloss.Style
	ColumnHeader  lipgloss.Style

	// Help bar
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Toast notifications
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles returns the default application styles using the Tokyo
// Night palette
func DefaultStyles() Styles {
	return Styles{
		// Layout - Pane borders
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocused).
			Padding(0, 1),

		// Text hierarchy
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorForeground),

		Body: lipgloss.NewStyle().
			Foreground(ColorForeground),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground),

		// Board
		CardRow: lipgloss.NewStyle().
			Foreground(ColorForeground),

		SelectedRow: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorSelection),

		DraggedRow: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBackground).
			Background(ColorPrimary),

		DropIndicator: lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorHighlight),

		ColumnHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted),

		// Help bar
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorMuted),

		// Feedback
		Error: lipgloss.NewStyle().
			Foreground(ColorError),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Info: lipgloss.NewStyle().
			Foreground(ColorInfo),

		// Toast notifications
		ToastSuccess: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorSuccess).
			Foreground(ColorBackground),

		ToastError: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorError).
			Foreground(ColorBackground),

		ToastWarning: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorWarning).
			Foreground(ColorBackground),

		ToastInfo: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorInfo).
			Foreground(ColorBackground),
	}
}
