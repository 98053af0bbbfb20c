package board

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/dropdeck/internal/store"
	"github.com/andyrewlee/dropdeck/internal/ui/common"
)

// View renders the board.
func (m *Model) View() string {
	g := m.geometry()

	cols := make([]string, 0, len(m.Columns))
	for colIdx := range m.Columns {
		cols = append(cols, m.renderColumn(colIdx, g))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	if g.helpHeight > 0 {
		board = board + "\n" + strings.Join(m.helpLines(g.contentW), "\n")
	}

	style := m.styles.Pane
	if m.focused {
		style = m.styles.FocusedPane
	}
	return style.Width(m.width - 2).Render(board)
}

func (m *Model) renderColumn(colIdx int, g geometry) string {
	col := m.Columns[colIdx]
	header := m.renderHeader(colIdx, col, g.colWidth)

	m.ensureScrollOffsets()
	offset := m.scrollOffsets[colIdx]
	maxOffset := max(0, len(col.Cards)-g.cardRows)
	if offset > maxOffset {
		offset = maxOffset
		m.scrollOffsets[colIdx] = offset
	}

	dropRow := -1
	if d := m.drag; d != nil && d.active && d.overColumn == colIdx {
		dropRow = d.overRow
	}

	var rows []string
	for i := offset; i < len(col.Cards) && len(rows) < g.cardRows; i++ {
		rows = append(rows, m.renderCard(colIdx, i, col.Cards[i], g.colWidth, dropRow))
	}
	for len(rows) < g.cardRows {
		line := strings.Repeat(" ", g.colWidth)
		if dropRow >= len(col.Cards) && len(rows) == len(col.Cards)-offset {
			line = m.styles.DropIndicator.Render(padRight(" ", g.colWidth))
		}
		rows = append(rows, line)
	}

	content := header + "\n" + strings.Join(rows, "\n")
	return lipgloss.NewStyle().Width(g.colWidth).Render(content)
}

func (m *Model) renderHeader(colIdx int, col store.Column, width int) string {
	headerText := col.Name + " (" + itoa(len(col.Cards)) + ")"
	dot := m.columnDot(col.Name)
	avail := max(1, width-2-lipgloss.Width(dot)-1)
	headerText = truncate(headerText, avail)
	text := m.styles.ColumnHeader.Render(headerText)
	add := common.Icons.Add
	if m.zone != nil {
		text = m.zone.Mark(headerZoneID(colIdx), text)
		add = m.zone.Mark(headerAddZoneID(colIdx), add)
	}
	line := dot + " " + text + " " + add
	return padRight(line, width)
}

func (m *Model) renderCard(colIdx, rowIdx int, card store.Card, width int, dropRow int) string {
	selected := m.Selection.Column == colIdx && m.Selection.Row == rowIdx && m.drag == nil
	dragged := m.drag != nil && m.drag.active && m.drag.cardID == card.ID

	prefix := common.Icons.CursorEmpty + " "
	if selected {
		prefix = common.Icons.Cursor + " "
	}
	if dragged {
		prefix = common.Icons.Grip + " "
	}

	meta := ""
	if card.Label != "" {
		meta = " " + lipgloss.NewStyle().
			Foreground(common.LabelColor(card.Label)).
			Render(common.Icons.Dot)
	}
	if card.Assignee != "" {
		meta += " " + initials(card.Assignee)
	}

	metaWidth := lipgloss.Width(meta)
	titleWidth := max(1, width-runewidth.StringWidth(prefix)-metaWidth)
	line := prefix + truncate(card.Title, titleWidth) + meta
	line = padRight(line, width)

	style := m.styles.CardRow
	switch {
	case dragged:
		style = m.styles.DraggedRow
	case dropRow == rowIdx:
		style = m.styles.DropIndicator
	case selected:
		style = m.styles.SelectedRow
	}
	content := style.Render(line)

	if m.zone != nil {
		content = m.zone.Mark(cardZoneID(colIdx, rowIdx), content)
	}
	return content
}

func (m *Model) helpLines(contentWidth int) []string {
	items := []string{
		common.RenderHelpItem(m.styles, "j/k", "up/down"),
		common.RenderHelpItem(m.styles, "h/l", "column"),
		common.RenderHelpItem(m.styles, "J/K", "move card"),
		common.RenderHelpItem(m.styles, "H/L", "move across"),
		common.RenderHelpItem(m.styles, "a", "add"),
		common.RenderHelpItem(m.styles, "x", "delete"),
		common.RenderHelpItem(m.styles, "y", "yank"),
		common.RenderHelpItem(m.styles, "r", "refresh"),
		common.RenderHelpItem(m.styles, "drag", "move with mouse"),
	}
	return common.WrapHelpItems(items, contentWidth)
}

func cardZoneID(colIdx, rowIdx int) string {
	return "board-card-" + itoa(colIdx) + "-" + itoa(rowIdx)
}

func headerZoneID(colIdx int) string {
	return "board-header-" + itoa(colIdx)
}

func headerAddZoneID(colIdx int) string {
	return "board-header-add-" + itoa(colIdx)
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func padRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-lipgloss.Width(text))
}

func initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	var out strings.Builder
	for _, part := range parts {
		r := []rune(part)
		out.WriteRune(r[0])
	}
	return out.String()
}

func (m *Model) columnDot(name string) string {
	color := common.ColorMuted
	switch strings.ToLower(name) {
	case "todo", "backlog":
		color = common.ColorMuted
	case "in progress", "doing", "started":
		color = common.ColorPrimary
	case "in review", "review":
		color = common.ColorWarning
	case "done", "completed":
		color = common.ColorSuccess
	}
	return lipgloss.NewStyle().Foreground(color).Render(common.Icons.Dot)
}
