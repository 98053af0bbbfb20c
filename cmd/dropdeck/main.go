package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/dropdeck/internal/app"
	"github.com/andyrewlee/dropdeck/internal/config"
	"github.com/andyrewlee/dropdeck/internal/logging"
	"github.com/andyrewlee/dropdeck/internal/store"
	"github.com/andyrewlee/dropdeck/internal/ui/autoscroll"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("dropdeck %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	if !term.IsTerminal(os.Stdin.Fd()) || !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "dropdeck requires an interactive terminal")
		os.Exit(1)
	}

	paths, err := config.DefaultPaths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving home directory: %v\n", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", paths.Home, err)
		os.Exit(1)
	}

	if err := logging.Initialize(paths.LogsRoot, logging.LevelInfo); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()

	logging.Info("Starting dropdeck")

	st, err := store.Open(paths.BoardPath)
	if err != nil {
		logging.Error("Failed to open board store: %v", err)
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", paths.BoardPath, err)
		os.Exit(1)
	}
	if err := st.SeedDefaults(context.Background()); err != nil {
		logging.Error("Failed to seed board: %v", err)
		fmt.Fprintf(os.Stderr, "Error preparing board: %v\n", err)
		_ = st.Close()
		os.Exit(1)
	}

	a, err := app.New(paths, st)
	if err != nil {
		logging.Error("Failed to initialize app: %v", err)
		fmt.Fprintf(os.Stderr, "Error initializing app: %v\n", err)
		_ = st.Close()
		os.Exit(1)
	}

	p := tea.NewProgram(
		a,
		tea.WithFilter(inputEventFilter(a.Wheel())),
	)
	a.SetMsgSender(p.Send)

	if _, err := p.Run(); err != nil {
		logging.Error("App exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		a.Shutdown()
		os.Exit(1)
	}
	a.Shutdown()

	logging.Info("dropdeck shutdown complete")
}

var (
	lastMouseMotionEvent   time.Time
	lastMouseWheelEvent    time.Time
	lastMouseX, lastMouseY int
)

// inputEventFilter throttles repeated mouse events and drops wheel input
// while the gate is blocked, before either reaches the update loop.
func inputEventFilter(wheel *autoscroll.WheelGate) func(tea.Model, tea.Msg) tea.Msg {
	return func(m tea.Model, msg tea.Msg) tea.Msg {
		switch msg := msg.(type) {
		case tea.MouseMotionMsg:
			// Always allow if position changed
			if msg.X != lastMouseX || msg.Y != lastMouseY {
				lastMouseX = msg.X
				lastMouseY = msg.Y
				lastMouseMotionEvent = time.Now()
				return msg
			}
			// Same position - apply time throttle
			now := time.Now()
			if now.Sub(lastMouseMotionEvent) < 15*time.Millisecond {
				return nil
			}
			lastMouseMotionEvent = now
		case tea.MouseWheelMsg:
			if wheel != nil && wheel.Blocked() {
				return nil
			}
			now := time.Now()
			if now.Sub(lastMouseWheelEvent) < 15*time.Millisecond {
				return nil
			}
			lastMouseWheelEvent = now
		}
		return msg
	}
}
