// Package safego runs goroutines with panic recovery so a background
// failure cannot take the whole TUI down with a corrupted terminal.
package safego

import (
	"runtime/debug"
	"sync"

	"github.com/andyrewlee/dropdeck/internal/logging"
)

// PanicHandler receives panic details from recovered goroutines.
type PanicHandler func(name string, recovered any, stack []byte)

var (
	handlerMu sync.RWMutex
	handler   PanicHandler
)

// SetPanicHandler registers a global handler for recovered panics.
func SetPanicHandler(h PanicHandler) {
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

// Run executes fn and converts panics into logged errors. Runtime-fatal
// errors (e.g. concurrent map writes) are not recoverable.
func Run(name string, fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		label := name
		if label == "" {
			label = "goroutine"
		}
		stack := debug.Stack()
		logging.Error("panic in %s: %v\n%s", label, r, stack)
		handlerMu.RLock()
		h := handler
		handlerMu.RUnlock()
		if h != nil {
			func() {
				defer func() { _ = recover() }()
				h(label, r, stack)
			}()
		}
	}()
	fn()
}

// Go runs fn in a new goroutine with panic recovery.
func Go(name string, fn func()) {
	go Run(name, fn)
}
