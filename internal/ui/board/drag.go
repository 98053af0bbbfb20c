package board

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/dropdeck/internal/layout"
	"github.com/andyrewlee/dropdeck/internal/messages"
	"github.com/andyrewlee/dropdeck/internal/ui/autoscroll"
	"github.com/andyrewlee/dropdeck/internal/ui/common"
)

const (
	// frameInterval paces the auto-scroll loop at roughly 20 frames per
	// second, which is plenty for cell-sized scroll steps.
	frameInterval = 50 * time.Millisecond

	// Edge zone height and peak velocity in rows, used until settings
	// override them.
	defaultEdgeRows = 3
	defaultMaxSpeed = 2
)

// dragState tracks one press-drag-release interaction. A press arms the
// drag; the first motion activates it. A release before any motion is a
// plain click.
type dragState struct {
	cardID     string
	fromColumn int
	fromRow    int

	overColumn int
	overRow    int

	pointerX int
	pointerY int

	active bool
}

// frameMsg delivers one scheduled auto-scroll frame.
type frameMsg struct {
	id autoscroll.FrameRequest
}

// frameDriver adapts the Bubbletea tick pipeline to the frame scheduler
// interface. Schedule queues a tick command carrying a request id; the tick
// lands back in Update as a frameMsg, which runs the pending callback if the
// request was not canceled in the meantime.
type frameDriver struct {
	interval time.Duration
	next     autoscroll.FrameRequest
	pending  map[autoscroll.FrameRequest]func()
	cmds     []tea.Cmd
}

func newFrameDriver(interval time.Duration) *frameDriver {
	return &frameDriver{
		interval: interval,
		pending:  make(map[autoscroll.FrameRequest]func()),
	}
}

// Schedule queues step to run after one frame interval and returns its
// request id.
func (f *frameDriver) Schedule(step func()) autoscroll.FrameRequest {
	f.next++
	id := f.next
	f.pending[id] = step
	f.cmds = append(f.cmds, common.SafeTick(f.interval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	}))
	return id
}

// Cancel drops a pending request. The tick command may still fire; its
// frameMsg is ignored because the id is no longer pending.
func (f *frameDriver) Cancel(id autoscroll.FrameRequest) {
	delete(f.pending, id)
}

// run executes and clears the callback for id, if still pending.
func (f *frameDriver) run(id autoscroll.FrameRequest) bool {
	step, ok := f.pending[id]
	if !ok {
		return false
	}
	delete(f.pending, id)
	step()
	return true
}

// drain returns the tick commands queued since the last drain.
func (f *frameDriver) drain() tea.Cmd {
	if len(f.cmds) == 0 {
		return nil
	}
	cmds := f.cmds
	f.cmds = nil
	return tea.Batch(cmds...)
}

func (m *Model) handleFrame(msg frameMsg) (*Model, tea.Cmd) {
	m.frames.run(msg.id)
	return m, m.frames.drain()
}

// dragOrigin returns the element the scroll target search starts from: the
// column content under the dragged card. Consulted at session start.
func (m *Model) dragOrigin() *layout.Element {
	if m.drag == nil {
		return nil
	}
	if m.drag.overColumn < 0 || m.drag.overColumn >= len(m.colElems) {
		return nil
	}
	return m.colElems[m.drag.overColumn]
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (*Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft || !m.focused {
		return m, nil
	}
	colIdx, row, ok := m.hitCard(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.Selection = Selection{Column: colIdx, Row: row}
	m.drag = &dragState{
		cardID:     m.Columns[colIdx].Cards[row].ID,
		fromColumn: colIdx,
		fromRow:    row,
		overColumn: colIdx,
		overRow:    row,
		pointerX:   msg.X,
		pointerY:   msg.Y,
	}
	return m, nil
}

func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) (*Model, tea.Cmd) {
	d := m.drag
	if d == nil {
		return m, nil
	}
	if !d.active {
		if msg.X == d.pointerX && msg.Y == d.pointerY {
			return m, nil
		}
		d.active = true
		m.syncLayout()
		m.scroller.SetOnScroll(m.onAutoScroll)
		m.scroller.SetDragging(true)
	}
	d.pointerX = msg.X
	d.pointerY = msg.Y

	prevColumn := d.overColumn
	m.updateDropSlot()
	if d.overColumn != prevColumn {
		// The pointer crossed into another column: re-resolve the scroll
		// target against the new origin.
		m.scroller.SetDragging(false)
		m.scroller.SetDragging(true)
	}
	m.scroller.UpdatePointerY(float64(msg.Y))
	return m, m.frames.drain()
}

func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) (*Model, tea.Cmd) {
	d := m.drag
	if d == nil {
		return m, nil
	}
	m.drag = nil
	m.scroller.SetDragging(false)
	drained := m.frames.drain()

	if !d.active {
		// Plain click; selection already moved on press.
		return m, drained
	}
	if d.overColumn < 0 || d.overColumn >= len(m.Columns) {
		return m, drained
	}
	toColumn := m.Columns[d.overColumn].ID
	toPos := d.overRow
	cardID := d.cardID
	m.Selection = Selection{Column: d.overColumn, Row: d.overRow}
	m.clampSelection()
	return m, common.SafeBatch(drained, func() tea.Msg {
		return messages.MoveCardRequested{CardID: cardID, ToColumn: toColumn, ToPos: toPos}
	})
}

// cancelDrag abandons the interaction without persisting anything.
func (m *Model) cancelDrag() tea.Cmd {
	m.drag = nil
	m.scroller.SetDragging(false)
	return m.frames.drain()
}

// onAutoScroll is invoked after each applied auto-scroll step. It copies the
// element's scroll position back into the render offsets and recomputes the
// drop slot, since the rows under the stationary pointer just changed.
func (m *Model) onAutoScroll(offset float64) {
	d := m.drag
	if d == nil {
		return
	}
	m.ensureScrollOffsets()
	if d.overColumn >= 0 && d.overColumn < len(m.scrollOffsets) {
		m.scrollOffsets[d.overColumn] = int(offset)
	}
	m.updateDropSlot()
}

// updateDropSlot recomputes the insertion point under the pointer.
func (m *Model) updateDropSlot() {
	d := m.drag
	if d == nil {
		return
	}
	colIdx, _, ok := m.hitColumn(d.pointerX)
	if !ok {
		return
	}
	d.overColumn = colIdx
	g := m.geometry()
	m.ensureScrollOffsets()
	row := m.scrollOffsets[colIdx] + (d.pointerY - g.cardTop)
	if row < 0 {
		row = 0
	}
	limit := len(m.Columns[colIdx].Cards)
	if colIdx == d.fromColumn && limit > 0 {
		// Moving within the source column: the card itself vacates a slot.
		limit--
	}
	if row > limit {
		row = limit
	}
	d.overRow = row
}

// geometry describes where columns and card rows land on screen. The pane
// border and padding consume two cells horizontally on each side and one row
// at the top and bottom.
type geometry struct {
	contentX   int
	contentY   int
	contentW   int
	colWidth   int
	cardTop    int
	cardRows   int
	helpHeight int
}

func (m *Model) geometry() geometry {
	g := geometry{contentX: 2, contentY: 1}
	g.contentW = m.width - 4
	if g.contentW < 1 {
		g.contentW = 1
	}
	contentH := m.height - 2
	if contentH < 1 {
		contentH = 1
	}
	g.colWidth = g.contentW
	if len(m.Columns) > 0 {
		g.colWidth = g.contentW / len(m.Columns)
	}
	if g.colWidth < 8 {
		g.colWidth = 8
	}
	if m.showKeymapHints {
		g.helpHeight = len(m.helpLines(g.contentW))
	}
	// One row for headers, help lines at the bottom, cards in between.
	g.cardTop = g.contentY + 1
	g.cardRows = contentH - 1 - g.helpHeight
	if g.cardRows < 1 {
		g.cardRows = 1
	}
	return g
}

// columnRegion is the hit target covering one column's card area.
func (m *Model) columnRegion(colIdx int, g geometry) common.HitRegion {
	return common.HitRegion{
		ID:     "column-" + itoa(colIdx),
		X:      g.contentX + colIdx*g.colWidth,
		Y:      g.cardTop,
		Width:  g.colWidth,
		Height: g.cardRows,
	}
}

// hitColumn maps a screen x coordinate to a column index and column-local x.
func (m *Model) hitColumn(x int) (colIdx, localX int, ok bool) {
	g := m.geometry()
	for i := range m.Columns {
		region := m.columnRegion(i, g)
		if x >= region.X && x < region.X+region.Width {
			return i, x - region.X, true
		}
	}
	return 0, 0, false
}

// hitCard maps screen coordinates to an existing card.
func (m *Model) hitCard(x, y int) (colIdx, row int, ok bool) {
	g := m.geometry()
	for i := range m.Columns {
		if !m.columnRegion(i, g).Contains(x, y) {
			continue
		}
		m.ensureScrollOffsets()
		row = m.scrollOffsets[i] + (y - g.cardTop)
		if row < 0 || row >= len(m.Columns[i].Cards) {
			return 0, 0, false
		}
		return i, row, true
	}
	return 0, 0, false
}

// syncLayout mirrors the rendered board into the layout document:
// one overflow-auto element per column, sized in screen cells, with scroll
// metrics counted in card rows. Elements keep their identity across syncs
// so an in-flight drag session's target stays attached.
func (m *Model) syncLayout() {
	g := m.geometry()
	m.doc.SetViewportHeight(float64(m.height))
	m.ensureScrollOffsets()

	for len(m.colElems) < len(m.Columns) {
		el := layout.NewElement("column-" + itoa(len(m.colElems)))
		el.SetStyle(layout.Style{OverflowY: layout.OverflowAuto})
		m.doc.Body().AppendChild(el)
		m.colElems = append(m.colElems, el)
	}
	for len(m.colElems) > len(m.Columns) {
		last := m.colElems[len(m.colElems)-1]
		last.Remove()
		m.colElems = m.colElems[:len(m.colElems)-1]
	}

	for i, el := range m.colElems {
		el.SetBounds(layout.Rect{
			X:      float64(g.contentX + i*g.colWidth),
			Y:      float64(g.cardTop),
			Width:  float64(g.colWidth),
			Height: float64(g.cardRows),
		})
		el.SetScrollMetrics(float64(len(m.Columns[i].Cards)), float64(g.cardRows))
		el.SetScrollTop(float64(m.scrollOffsets[i]))
		m.scrollOffsets[i] = int(el.ScrollTop())
	}
}
