package layout

// Overflow is the computed vertical overflow of an element.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowAuto
	OverflowScroll
)

func (o Overflow) String() string {
	switch o {
	case OverflowVisible:
		return "visible"
	case OverflowHidden:
		return "hidden"
	case OverflowAuto:
		return "auto"
	case OverflowScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Scrollable reports whether the overflow value permits programmatic
// scrolling. It says nothing about whether the element actually has
// overflowing content.
func (o Overflow) Scrollable() bool {
	return o == OverflowAuto || o == OverflowScroll
}

// Style holds the computed style bits the scroll machinery reads.
type Style struct {
	OverflowY Overflow
}

// Element is a node in a Document's layout tree. Fields are written by the
// host when it lays out its view and read by the auto-scroll machinery; an
// Element carries no rendering state of its own.
type Element struct {
	id           string
	style        Style
	bounds       Rect
	scrollHeight float64
	clientHeight float64
	scrollTop    float64
	parent       *Element
	children     []*Element
}

// NewElement creates a detached element with the given id.
func NewElement(id string) *Element {
	return &Element{id: id}
}

// ID returns the element's identifier.
func (e *Element) ID() string { return e.id }

// Parent returns the parent element, or nil for a detached element or the
// tree root.
func (e *Element) Parent() *Element { return e.parent }

// SetStyle sets the computed style.
func (e *Element) SetStyle(s Style) { e.style = s }

// Style returns the computed style.
func (e *Element) Style() Style { return e.style }

// SetBounds sets the on-screen bounding rectangle.
func (e *Element) SetBounds(r Rect) { e.bounds = r }

// BoundingRect returns the on-screen bounding rectangle.
func (e *Element) BoundingRect() Rect { return e.bounds }

// SetScrollMetrics sets the total content height and the visible height.
// The current scroll offset is re-clamped against the new metrics.
func (e *Element) SetScrollMetrics(scrollHeight, clientHeight float64) {
	e.scrollHeight = scrollHeight
	e.clientHeight = clientHeight
	e.SetScrollTop(e.scrollTop)
}

// ScrollHeight returns the total content height.
func (e *Element) ScrollHeight() float64 { return e.scrollHeight }

// ClientHeight returns the visible height.
func (e *Element) ClientHeight() float64 { return e.clientHeight }

// MaxScrollTop returns the largest valid scroll offset.
func (e *Element) MaxScrollTop() float64 {
	m := e.scrollHeight - e.clientHeight
	if m < 0 {
		return 0
	}
	return m
}

// ScrollTop returns the current vertical scroll offset.
func (e *Element) ScrollTop() float64 { return e.scrollTop }

// SetScrollTop sets the vertical scroll offset, clamped to
// [0, MaxScrollTop]. Writing to an element without scrollable overflow is
// therefore a no-op, matching how real layout engines behave.
func (e *Element) SetScrollTop(v float64) {
	if v < 0 {
		v = 0
	}
	if m := e.MaxScrollTop(); v > m {
		v = m
	}
	e.scrollTop = v
}

// AppendChild attaches child as the last child of e, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
}

// Remove detaches the element from its parent. The element keeps its own
// children, so a removed subtree stays intact but is no longer reachable
// from the document root.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Children returns the element's children in document order.
func (e *Element) Children() []*Element { return e.children }
