package safego

import (
	"sync"
	"testing"
)

func TestRunRecoversPanic(t *testing.T) {
	var got string
	var gotName string
	SetPanicHandler(func(name string, recovered any, stack []byte) {
		gotName = name
		if s, ok := recovered.(string); ok {
			got = s
		}
	})
	defer SetPanicHandler(nil)

	Run("worker", func() { panic("boom") })

	if got != "boom" {
		t.Errorf("recovered = %q, want boom", got)
	}
	if gotName != "worker" {
		t.Errorf("name = %q, want worker", gotName)
	}
}

func TestRunEmptyNameDefaults(t *testing.T) {
	var gotName string
	SetPanicHandler(func(name string, recovered any, stack []byte) {
		gotName = name
	})
	defer SetPanicHandler(nil)

	Run("", func() { panic("x") })
	if gotName != "goroutine" {
		t.Errorf("name = %q, want goroutine", gotName)
	}
}

func TestPanickingHandlerIsContained(t *testing.T) {
	SetPanicHandler(func(name string, recovered any, stack []byte) {
		panic("handler panic")
	})
	defer SetPanicHandler(nil)

	// Must not propagate.
	Run("worker", func() { panic("boom") })
}

func TestGoRecovers(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	SetPanicHandler(func(name string, recovered any, stack []byte) {
		wg.Done()
	})
	defer SetPanicHandler(nil)

	Go("bg", func() { panic("async boom") })
	wg.Wait()
}

func TestRunWithoutPanic(t *testing.T) {
	ran := false
	Run("ok", func() { ran = true })
	if !ran {
		t.Error("fn did not run")
	}
}
