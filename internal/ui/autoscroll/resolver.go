package autoscroll

import "github.com/andyrewlee/dropdeck/internal/layout"

// ResolveScrollTarget walks from start through its ancestors and returns
// the element that actually owns vertical scrolling, or nil when nothing in
// the chain (including the document) can scroll.
//
// The body and root elements are special-cased: writing their scroll offset
// is a no-op in standards-compliant layout even when their overflow says
// scrollable, so the document's designated scrolling element is returned in
// their place. Every other candidate must both permit scrolling
// (overflow auto or scroll) and actually have overflowing content.
func ResolveScrollTarget(doc *layout.Document, start *layout.Element) *layout.Element {
	for el := start; el != nil; el = el.Parent() {
		if doc != nil && (el == doc.Body() || el == doc.Root()) {
			return doc.ScrollingElement()
		}
		if el.Style().OverflowY.Scrollable() && el.ScrollHeight() > el.ClientHeight() {
			return el
		}
	}
	if doc == nil {
		return nil
	}
	return doc.ScrollingElement()
}
