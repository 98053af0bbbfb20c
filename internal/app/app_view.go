package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/dropdeck/internal/ui/common"
)

// View renders the application.
func (a *App) View() tea.View {
	view := tea.View{
		AltScreen:       true,
		MouseMode:       tea.MouseModeCellMotion,
		BackgroundColor: common.ColorBackground,
		ForegroundColor: common.ColorForeground,
	}

	if a.quitting {
		view.SetContent("Goodbye!\n")
		return view
	}
	if !a.ready {
		view.SetContent("Loading...")
		return view
	}

	content := a.board.View() + "\n" + a.statusLine()
	view.SetContent(a.zone.Scan(content))
	return view
}

func (a *App) statusLine() string {
	if a.toast.Visible() {
		return a.toast.View()
	}
	hints := common.RenderHelpBarItems(a.styles, []common.HelpBinding{
		{Key: "q", Desc: "quit"},
		{Key: "r", Desc: "refresh"},
	})
	line := a.styles.Title.Render("dropdeck") + "  " + hints
	if lipgloss.Width(line) > a.width {
		return a.styles.Title.Render("dropdeck")
	}
	return line
}
