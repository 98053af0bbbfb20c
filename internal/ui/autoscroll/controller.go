// Package autoscroll implements edge-triggered auto-scrolling for drag
// interactions inside a scrollable container: while a drag is held near the
// top or bottom of the scroll target, the target scrolls with a speed that
// eases up quadratically toward the edge and stops the moment the pointer
// leaves the edge zone or the drag ends.
package autoscroll

import "github.com/andyrewlee/dropdeck/internal/layout"

const (
	// DefaultThreshold is the height of the edge-activation zone, in the
	// host's vertical units (pixels for pixel-based hosts).
	DefaultThreshold = 100
	// DefaultMaxSpeed is the peak scroll velocity, in vertical units per
	// frame.
	DefaultMaxSpeed = 15
)

// Config tunes the edge zone. Zero values fall back to the defaults, which
// are sized for pixel-based hosts; row-based hosts pass smaller values.
type Config struct {
	Threshold float64
	MaxSpeed  float64
}

func (c Config) withDefaults() Config {
	if c.Threshold <= 0 {
		c.Threshold = DefaultThreshold
	}
	if c.MaxSpeed <= 0 {
		c.MaxSpeed = DefaultMaxSpeed
	}
	return c
}

// session is the state of one active drag. It exists only between a
// successful drag start and the drag end; pointer updates mutate speed but
// never create or destroy a session.
type session struct {
	speed  float64
	target *layout.Element
	frame  FrameRequest
}

// Controller drives edge-triggered auto-scrolling for at most one drag
// session at a time. All methods must be called from the goroutine that
// runs the frame scheduler's callbacks; there is no internal locking.
type Controller struct {
	cfg    Config
	doc    *layout.Document
	root   func() *layout.Element
	frames FrameScheduler
	wheel  WheelBlocker

	onScroll func(offset float64)

	session *session
}

// New creates a controller. root returns the element the resolver searches
// upward from; it is consulted once per drag start and may return nil when
// the content root is not available. wheel may be nil when the host has no
// wheel input to suppress.
func New(doc *layout.Document, root func() *layout.Element, frames FrameScheduler, wheel WheelBlocker, cfg Config) *Controller {
	return &Controller{
		cfg:    cfg.withDefaults(),
		doc:    doc,
		root:   root,
		frames: frames,
		wheel:  wheel,
	}
}

// SetOnScroll sets the observer invoked with the target's new scroll offset
// after each applied frame step. The controller calls whatever is currently
// set, so the observer can be swapped mid-session.
func (c *Controller) SetOnScroll(fn func(offset float64)) { c.onScroll = fn }

// Dragging reports whether an auto-scroll session is active.
func (c *Controller) Dragging() bool { return c.session != nil }

// Speed returns the current signed scroll velocity in units per frame.
// Zero when idle or when no session is active.
func (c *Controller) Speed() float64 {
	if c.session == nil {
		return 0
	}
	return c.session.speed
}

// Target returns the resolved scroll target of the active session, or nil.
func (c *Controller) Target() *layout.Element {
	if c.session == nil {
		return nil
	}
	return c.session.target
}

// SetDragging starts or stops the auto-scroll session as the host's drag
// flag flips. Both directions are idempotent.
func (c *Controller) SetDragging(dragging bool) {
	if dragging {
		c.start()
		return
	}
	c.stop()
}

// Close tears the controller down. Equivalent to the drag ending.
func (c *Controller) Close() { c.stop() }

func (c *Controller) start() {
	if c.session != nil {
		return
	}
	var start *layout.Element
	if c.root != nil {
		start = c.root()
	}
	target := ResolveScrollTarget(c.doc, start)
	if target == nil {
		// Nothing scrollable anywhere in the chain: auto-scroll stays
		// disabled for this drag, silently.
		return
	}
	c.session = &session{target: target}
	if c.wheel != nil {
		c.wheel.Block()
	}
	c.session.frame = c.frames.Schedule(c.step)
}

func (c *Controller) stop() {
	s := c.session
	if s == nil {
		return
	}
	if s.frame != 0 {
		c.frames.Cancel(s.frame)
		s.frame = 0
	}
	s.speed = 0
	s.target = nil
	c.session = nil
	if c.wheel != nil {
		c.wheel.Unblock()
	}
}

// UpdatePointerY recomputes the scroll speed from the pointer's vertical
// position. Within Threshold of the target's visible top edge the speed is
// -MaxSpeed*ratio², within Threshold of the bottom edge +MaxSpeed*ratio²,
// where ratio approaches 1 at the edge; the quadratic makes the scroll
// creep near the zone boundary and accelerate sharply at the edge. The
// ratio is deliberately left unclamped so a pointer past the edge keeps
// gaining speed. No-op when no session is active.
func (c *Controller) UpdatePointerY(clientY float64) {
	s := c.session
	if s == nil || s.target == nil {
		return
	}
	top, bottom := c.targetBounds(s.target)
	distTop := clientY - top
	distBottom := bottom - clientY
	switch {
	case distTop < c.cfg.Threshold:
		ratio := 1 - distTop/c.cfg.Threshold
		s.speed = -c.cfg.MaxSpeed * ratio * ratio
	case distBottom < c.cfg.Threshold:
		ratio := 1 - distBottom/c.cfg.Threshold
		s.speed = c.cfg.MaxSpeed * ratio * ratio
	default:
		s.speed = 0
	}
}

// targetBounds returns the visible vertical bounds of the scroll target.
// The document-level scroller spans the viewport; anything else uses its
// on-screen bounding rectangle.
func (c *Controller) targetBounds(target *layout.Element) (top, bottom float64) {
	if c.doc != nil && target == c.doc.ScrollingElement() {
		return 0, c.doc.ViewportHeight()
	}
	r := target.BoundingRect()
	return r.Top(), r.Bottom()
}

// step is one frame of the loop: apply the current speed to the target,
// notify the observer, re-arm. The loop keeps running at speed zero so a
// pointer re-entering the edge zone scrolls on the very next frame instead
// of waiting for a fresh schedule.
func (c *Controller) step() {
	s := c.session
	if s == nil {
		// Stale callback after stop; Cancel normally prevents this.
		return
	}
	s.frame = 0
	if s.speed != 0 && s.target != nil {
		if c.doc != nil && !c.doc.Contains(s.target) {
			// Target left the document mid-drag. Stop scrolling but
			// keep the loop alive until the drag ends.
			s.speed = 0
		} else {
			s.target.SetScrollTop(s.target.ScrollTop() + s.speed)
			if c.onScroll != nil {
				c.onScroll(s.target.ScrollTop())
			}
		}
	}
	s.frame = c.frames.Schedule(c.step)
}
