package autoscroll

import "sync/atomic"

// WheelBlocker suppresses manual wheel scrolling while a drag session is
// active, so the wheel cannot fight the frame loop over the scroll offset.
type WheelBlocker interface {
	Block()
	Unblock()
}

// WheelGate is an atomic-flag WheelBlocker. The bubbletea event filter
// reads Blocked from outside the update loop, hence the atomic.
type WheelGate struct {
	blocked atomic.Bool
}

// Block starts suppressing wheel input.
func (g *WheelGate) Block() { g.blocked.Store(true) }

// Unblock stops suppressing wheel input.
func (g *WheelGate) Unblock() { g.blocked.Store(false) }

// Blocked reports whether wheel input is currently suppressed.
func (g *WheelGate) Blocked() bool { return g.blocked.Load() }
