package board

import (
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/dropdeck/internal/layout"
	"github.com/andyrewlee/dropdeck/internal/messages"
	"github.com/andyrewlee/dropdeck/internal/store"
	"github.com/andyrewlee/dropdeck/internal/ui/autoscroll"
	"github.com/andyrewlee/dropdeck/internal/ui/common"
)

// Selection tracks the selected column/row.
type Selection struct {
	Column int
	Row    int
}

// Model is the Bubbletea model for the board pane.
type Model struct {
	Columns   []store.Column
	Selection Selection

	focused bool
	width   int
	height  int

	scrollOffsets []int

	styles common.Styles
	zone   *zone.Manager

	showKeymapHints bool

	doc      *layout.Document
	colElems []*layout.Element
	frames   *frameDriver
	wheel    *autoscroll.WheelGate
	scroller *autoscroll.Controller
	drag     *dragState
}

// New creates a new board model. wheel may be nil when wheel suppression is
// not needed (tests).
func New(wheel *autoscroll.WheelGate) *Model {
	m := &Model{
		Columns: []store.Column{},
		styles:  common.DefaultStyles(),
		doc:     layout.NewDocument(0),
		frames:  newFrameDriver(frameInterval),
		wheel:   wheel,
	}
	// Columns are the only scrollers; there is no page-level fallback.
	m.doc.SetScrollingElement(nil)
	m.scroller = autoscroll.New(m.doc, m.dragOrigin, m.frames, wheel, autoscroll.Config{
		Threshold: defaultEdgeRows,
		MaxSpeed:  defaultMaxSpeed,
	})
	return m
}

// SetZone sets the shared zone manager for click targets.
func (m *Model) SetZone(z *zone.Manager) { m.zone = z }

// SetShowKeymapHints controls whether helper text is rendered.
func (m *Model) SetShowKeymapHints(show bool) { m.showKeymapHints = show }

// SetStyles sets the styles for the board.
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// SetAutoScroll replaces the auto-scroll tuning. Any in-flight drag session
// is torn down first.
func (m *Model) SetAutoScroll(cfg autoscroll.Config) {
	m.scroller.Close()
	m.scroller = autoscroll.New(m.doc, m.dragOrigin, m.frames, m.wheel, cfg)
}

// Init initializes the board.
func (m *Model) Init() tea.Cmd { return nil }

// Focus sets focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes focus.
func (m *Model) Blur() { m.focused = false }

// Focused returns focus state.
func (m *Model) Focused() bool { return m.focused }

// SetSize sets the board size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.syncLayout()
}

// SetColumns replaces board columns.
func (m *Model) SetColumns(cols []store.Column) {
	m.Columns = cols
	m.ensureScrollOffsets()
	m.clampSelection()
	m.syncLayout()
}

// SelectedCard returns the selected card.
func (m *Model) SelectedCard() *store.Card {
	if m.Selection.Column < 0 || m.Selection.Column >= len(m.Columns) {
		return nil
	}
	col := m.Columns[m.Selection.Column]
	if m.Selection.Row < 0 || m.Selection.Row >= len(col.Cards) {
		return nil
	}
	return &col.Cards[m.Selection.Row]
}

// Dragging reports whether a card drag is in progress.
func (m *Model) Dragging() bool { return m.drag != nil && m.drag.active }

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m.handleFrame(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.drag != nil {
		if key.Matches(msg, key.NewBinding(key.WithKeys("esc"))) {
			return m, m.cancelDrag()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("j", "down"))):
		m.moveRow(1)
	case key.Matches(msg, key.NewBinding(key.WithKeys("k", "up"))):
		m.moveRow(-1)
	case key.Matches(msg, key.NewBinding(key.WithKeys("h", "left"))):
		m.moveColumn(-1)
	case key.Matches(msg, key.NewBinding(key.WithKeys("l", "right"))):
		m.moveColumn(1)
	case key.Matches(msg, key.NewBinding(key.WithKeys("J"))):
		return m, m.moveCardCmd(m.Selection.Column, m.Selection.Row+1)
	case key.Matches(msg, key.NewBinding(key.WithKeys("K"))):
		return m, m.moveCardCmd(m.Selection.Column, m.Selection.Row-1)
	case key.Matches(msg, key.NewBinding(key.WithKeys("H"))):
		return m, m.moveCardCmd(m.Selection.Column-1, m.Selection.Row)
	case key.Matches(msg, key.NewBinding(key.WithKeys("L"))):
		return m, m.moveCardCmd(m.Selection.Column+1, m.Selection.Row)
	case key.Matches(msg, key.NewBinding(key.WithKeys("a"))):
		if m.Selection.Column >= 0 && m.Selection.Column < len(m.Columns) {
			colID := m.Columns[m.Selection.Column].ID
			return m, func() tea.Msg {
				return messages.AddCardRequested{ColumnID: colID, Title: "New card"}
			}
		}
	case key.Matches(msg, key.NewBinding(key.WithKeys("x"))):
		if card := m.SelectedCard(); card != nil {
			cardID := card.ID
			return m, func() tea.Msg { return messages.DeleteCardRequested{CardID: cardID} }
		}
	case key.Matches(msg, key.NewBinding(key.WithKeys("y"))):
		if card := m.SelectedCard(); card != nil {
			title := card.Title
			return m, common.SafeCmd(func() tea.Msg {
				if err := common.CopyToClipboard(title); err != nil {
					return messages.ShowToast{Message: "Copy failed: " + err.Error(), IsError: true}
				}
				return messages.ShowToast{Message: "Copied card title"}
			})
		}
	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		return m, func() tea.Msg { return messages.RefreshBoard{} }
	}

	return m, nil
}

// moveCardCmd emits a persist request for the selected card moving to the
// given column index and row. Out-of-range columns are ignored; the store
// clamps the row.
func (m *Model) moveCardCmd(toColIdx, toRow int) tea.Cmd {
	card := m.SelectedCard()
	if card == nil {
		return nil
	}
	if toColIdx < 0 || toColIdx >= len(m.Columns) {
		return nil
	}
	if toRow < 0 {
		toRow = 0
	}
	cardID := card.ID
	colID := m.Columns[toColIdx].ID
	return func() tea.Msg {
		return messages.MoveCardRequested{CardID: cardID, ToColumn: colID, ToPos: toRow}
	}
}

func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) (*Model, tea.Cmd) {
	// Wheel input is suppressed while auto-scroll owns the scroll position.
	if m.wheel != nil && m.wheel.Blocked() {
		return m, nil
	}
	colIdx := m.Selection.Column
	if idx, _, ok := m.hitColumn(msg.X); ok {
		colIdx = idx
	}
	delta := common.ScrollDeltaForHeight(m.geometry().cardRows, 10)
	switch msg.Button {
	case tea.MouseWheelUp:
		m.scrollColumn(colIdx, -delta)
	case tea.MouseWheelDown:
		m.scrollColumn(colIdx, delta)
	}
	return m, nil
}

func (m *Model) scrollColumn(colIdx, delta int) {
	if colIdx < 0 || colIdx >= len(m.Columns) {
		return
	}
	m.ensureScrollOffsets()
	g := m.geometry()
	maxOffset := max(0, len(m.Columns[colIdx].Cards)-g.cardRows)
	offset := m.scrollOffsets[colIdx] + delta
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	m.scrollOffsets[colIdx] = offset
	m.syncLayout()
}

func (m *Model) moveRow(delta int) {
	if len(m.Columns) == 0 {
		return
	}
	col := m.Selection.Column
	if col < 0 || col >= len(m.Columns) {
		return
	}
	rows := len(m.Columns[col].Cards)
	if rows == 0 {
		m.Selection.Row = 0
		return
	}
	m.Selection.Row += delta
	if m.Selection.Row < 0 {
		m.Selection.Row = 0
	}
	if m.Selection.Row >= rows {
		m.Selection.Row = rows - 1
	}
	m.followSelection()
}

func (m *Model) moveColumn(delta int) {
	if len(m.Columns) == 0 {
		return
	}
	m.Selection.Column += delta
	if m.Selection.Column < 0 {
		m.Selection.Column = 0
	}
	if m.Selection.Column >= len(m.Columns) {
		m.Selection.Column = len(m.Columns) - 1
	}
	col := m.Columns[m.Selection.Column]
	if m.Selection.Row >= len(col.Cards) {
		m.Selection.Row = max(0, len(col.Cards)-1)
	}
	m.followSelection()
}

// followSelection nudges the selected column's scroll offset so the
// selection stays visible.
func (m *Model) followSelection() {
	m.ensureScrollOffsets()
	colIdx := m.Selection.Column
	if colIdx < 0 || colIdx >= len(m.Columns) {
		return
	}
	g := m.geometry()
	if g.cardRows < 1 {
		return
	}
	offset := m.scrollOffsets[colIdx]
	if m.Selection.Row < offset {
		offset = m.Selection.Row
	}
	if m.Selection.Row >= offset+g.cardRows {
		offset = m.Selection.Row - g.cardRows + 1
	}
	m.scrollOffsets[colIdx] = offset
	m.syncLayout()
}

func (m *Model) ensureScrollOffsets() {
	if len(m.scrollOffsets) == len(m.Columns) {
		return
	}
	m.scrollOffsets = make([]int, len(m.Columns))
}

func (m *Model) clampSelection() {
	if len(m.Columns) == 0 {
		m.Selection = Selection{}
		return
	}
	if m.Selection.Column < 0 {
		m.Selection.Column = 0
	}
	if m.Selection.Column >= len(m.Columns) {
		m.Selection.Column = len(m.Columns) - 1
	}
	rows := len(m.Columns[m.Selection.Column].Cards)
	if rows == 0 {
		m.Selection.Row = 0
		return
	}
	if m.Selection.Row < 0 {
		m.Selection.Row = 0
	}
	if m.Selection.Row >= rows {
		m.Selection.Row = rows - 1
	}
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
