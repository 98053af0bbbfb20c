package main

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/dropdeck/internal/ui/autoscroll"
)

func TestInputEventFilterThrottlesWheel(t *testing.T) {
	lastMouseWheelEvent = time.Time{}
	filter := inputEventFilter(nil)

	wheel := tea.MouseWheelMsg{X: 10, Y: 10, Button: tea.MouseWheelDown}
	if filter(nil, wheel) == nil {
		t.Fatalf("expected first wheel event to pass")
	}
	if filter(nil, wheel) != nil {
		t.Fatalf("expected second wheel event to be throttled")
	}
}

func TestInputEventFilterAllowsMotionOnPositionChange(t *testing.T) {
	lastMouseX, lastMouseY = -1, -1
	filter := inputEventFilter(nil)

	motion := tea.MouseMotionMsg{X: 10, Y: 10, Button: tea.MouseLeft}
	if filter(nil, motion) == nil {
		t.Fatalf("expected motion at new position to pass")
	}
	motion.X = 11
	if filter(nil, motion) == nil {
		t.Fatalf("expected motion at changed position to pass")
	}
}

func TestInputEventFilterDropsWheelWhileGateBlocked(t *testing.T) {
	lastMouseWheelEvent = time.Time{}
	gate := &autoscroll.WheelGate{}
	filter := inputEventFilter(gate)

	gate.Block()
	wheel := tea.MouseWheelMsg{X: 10, Y: 10, Button: tea.MouseWheelDown}
	if filter(nil, wheel) != nil {
		t.Fatalf("expected wheel suppressed while dragging")
	}

	gate.Unblock()
	if filter(nil, wheel) == nil {
		t.Fatalf("expected wheel restored after drag")
	}
}
