package autoscroll

import (
	"testing"

	"github.com/andyrewlee/dropdeck/internal/layout"
)

// buildChain creates doc.body -> outer (overflow visible) -> list
// (overflow auto with real overflow) -> leaf and returns the pieces.
func buildChain() (doc *layout.Document, leaf, list, outer *layout.Element) {
	doc = layout.NewDocument(40)
	outer = layout.NewElement("outer")
	list = layout.NewElement("list")
	leaf = layout.NewElement("leaf")
	doc.Body().AppendChild(outer)
	outer.AppendChild(list)
	list.AppendChild(leaf)

	list.SetStyle(layout.Style{OverflowY: layout.OverflowAuto})
	list.SetScrollMetrics(100, 20)
	return doc, leaf, list, outer
}

func TestResolveFindsScrollableAncestor(t *testing.T) {
	doc, leaf, list, _ := buildChain()
	if got := ResolveScrollTarget(doc, leaf); got != list {
		t.Errorf("resolve(leaf) = %v, want the scrollable list", got)
	}
	// Starting at the scrollable element itself returns it.
	if got := ResolveScrollTarget(doc, list); got != list {
		t.Errorf("resolve(list) = %v, want list", got)
	}
}

func TestResolveSkipsScrollableWithoutOverflow(t *testing.T) {
	doc, leaf, list, _ := buildChain()
	// overflow:auto but content fits: capability without overflow.
	list.SetScrollMetrics(20, 20)
	if got := ResolveScrollTarget(doc, leaf); got != doc.ScrollingElement() {
		t.Errorf("resolve(leaf) = %v, want the document scroller fallback", got)
	}
}

func TestResolveSkipsOverflowVisibleAndHidden(t *testing.T) {
	doc, leaf, list, outer := buildChain()
	list.SetStyle(layout.Style{OverflowY: layout.OverflowHidden})
	outer.SetStyle(layout.Style{OverflowY: layout.OverflowVisible})
	outer.SetScrollMetrics(100, 20)
	if got := ResolveScrollTarget(doc, leaf); got != doc.ScrollingElement() {
		t.Errorf("resolve(leaf) = %v, want the document scroller fallback", got)
	}
}

func TestResolveBodyAndRootYieldScrollingElement(t *testing.T) {
	doc, _, _, _ := buildChain()
	if got := ResolveScrollTarget(doc, doc.Body()); got != doc.ScrollingElement() {
		t.Errorf("resolve(body) = %v, want the scrolling element", got)
	}
	if got := ResolveScrollTarget(doc, doc.Root()); got != doc.ScrollingElement() {
		t.Errorf("resolve(root) = %v, want the scrolling element", got)
	}
}

func TestResolveOverflowScrollCounts(t *testing.T) {
	doc, leaf, list, _ := buildChain()
	list.SetStyle(layout.Style{OverflowY: layout.OverflowScroll})
	if got := ResolveScrollTarget(doc, leaf); got != list {
		t.Errorf("resolve(leaf) = %v, want list with overflow:scroll", got)
	}
}

func TestResolveNilStartFallsBack(t *testing.T) {
	doc := layout.NewDocument(40)
	if got := ResolveScrollTarget(doc, nil); got != doc.ScrollingElement() {
		t.Errorf("resolve(nil) = %v, want the scrolling element", got)
	}
}

func TestResolveNothingScrollable(t *testing.T) {
	doc, leaf, list, _ := buildChain()
	list.SetStyle(layout.Style{OverflowY: layout.OverflowVisible})
	doc.SetScrollingElement(nil)
	if got := ResolveScrollTarget(doc, leaf); got != nil {
		t.Errorf("resolve(leaf) = %v, want nil when nothing scrolls", got)
	}
	if got := ResolveScrollTarget(nil, nil); got != nil {
		t.Errorf("resolve with no document = %v, want nil", got)
	}
}

func TestResolveDetachedChainWithoutDocument(t *testing.T) {
	// A detached subtree never reaches body/root; the document scroller
	// still serves as the fallback.
	doc := layout.NewDocument(40)
	orphan := layout.NewElement("orphan")
	child := layout.NewElement("child")
	orphan.AppendChild(child)
	if got := ResolveScrollTarget(doc, child); got != doc.ScrollingElement() {
		t.Errorf("resolve(detached) = %v, want the scrolling element", got)
	}
}
