package layout

// Document owns a layout tree: a root element, a body element under it, and
// the designated scrolling element that legitimately owns the viewport
// scroll offset. Hosts rebuild or mutate the tree whenever their on-screen
// geometry changes.
type Document struct {
	root      *Element
	body      *Element
	scrolling *Element

	viewportHeight float64
}

// NewDocument creates a document with a root and body element. The root
// doubles as the designated scrolling element until SetScrollingElement
// says otherwise.
func NewDocument(viewportHeight float64) *Document {
	root := NewElement("root")
	body := NewElement("body")
	root.AppendChild(body)
	return &Document{
		root:           root,
		body:           body,
		scrolling:      root,
		viewportHeight: viewportHeight,
	}
}

// Root returns the top-level element.
func (d *Document) Root() *Element { return d.root }

// Body returns the body element.
func (d *Document) Body() *Element { return d.body }

// ScrollingElement returns the element that owns the viewport scroll
// offset, or nil if the document has none.
func (d *Document) ScrollingElement() *Element { return d.scrolling }

// SetScrollingElement overrides the designated scrolling element. Passing
// nil models a document with no viewport scroller.
func (d *Document) SetScrollingElement(e *Element) { d.scrolling = e }

// ViewportHeight returns the height of the visible viewport.
func (d *Document) ViewportHeight() float64 { return d.viewportHeight }

// SetViewportHeight updates the viewport height.
func (d *Document) SetViewportHeight(h float64) { d.viewportHeight = h }

// GetElementByID returns the first element in document order with the
// given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	return findByID(d.root, id)
}

func findByID(e *Element, id string) *Element {
	if e == nil {
		return nil
	}
	if e.id == id {
		return e
	}
	for _, c := range e.children {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether e is attached to this document, i.e. reachable
// from the root by walking parent links.
func (d *Document) Contains(e *Element) bool {
	for ; e != nil; e = e.parent {
		if e == d.root {
			return true
		}
	}
	return false
}
