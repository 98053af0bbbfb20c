package app

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/dropdeck/internal/config"
	"github.com/andyrewlee/dropdeck/internal/messages"
	"github.com/andyrewlee/dropdeck/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "board.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.SeedDefaults(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	paths := &config.Paths{
		Home:       dir,
		ConfigPath: filepath.Join(dir, "config.json"),
		BoardPath:  filepath.Join(dir, "board.db"),
		LogsRoot:   filepath.Join(dir, "logs"),
	}
	a, err := New(paths, st)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(a.Shutdown)
	return a
}

func loadBoard(t *testing.T, a *App) {
	t.Helper()
	msg := a.Init()()
	loaded, ok := msg.(messages.BoardLoaded)
	if !ok {
		t.Fatalf("expected BoardLoaded, got %T", msg)
	}
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	a.Update(loaded)
}

func TestInitLoadsSeededBoard(t *testing.T) {
	a := newTestApp(t)
	loadBoard(t, a)

	if len(a.board.Columns) != 3 {
		t.Fatalf("expected 3 seeded columns, got %d", len(a.board.Columns))
	}
	if a.board.Columns[0].Name != "Todo" {
		t.Fatalf("expected Todo first, got %q", a.board.Columns[0].Name)
	}
}

func TestMoveCardRequestRoundTrip(t *testing.T) {
	a := newTestApp(t)
	loadBoard(t, a)

	cardID := a.board.Columns[0].Cards[0].ID
	dest := a.board.Columns[2].ID

	_, cmd := a.Update(messages.MoveCardRequested{CardID: cardID, ToColumn: dest, ToPos: 0})
	if cmd == nil {
		t.Fatalf("expected persist command")
	}
	moved, ok := cmd().(messages.CardMoved)
	if !ok {
		t.Fatalf("expected CardMoved, got %T", cmd())
	}

	_, reload := a.Update(moved)
	msg := reload()
	loaded, ok := msg.(messages.BoardLoaded)
	if !ok {
		t.Fatalf("expected BoardLoaded, got %T", msg)
	}
	a.Update(loaded)

	if len(a.board.Columns[2].Cards) == 0 || a.board.Columns[2].Cards[0].ID != cardID {
		t.Fatalf("expected card %s at top of destination column", cardID)
	}
}

func TestDeleteCardRequest(t *testing.T) {
	a := newTestApp(t)
	loadBoard(t, a)

	before := len(a.board.Columns[0].Cards)
	cardID := a.board.Columns[0].Cards[0].ID

	_, cmd := a.Update(messages.DeleteCardRequested{CardID: cardID})
	if _, ok := cmd().(messages.CardDeleted); !ok {
		t.Fatalf("expected CardDeleted, got %T", cmd())
	}

	msg := a.loadBoardCmd()()
	a.Update(msg)
	if len(a.board.Columns[0].Cards) != before-1 {
		t.Fatalf("expected %d cards after delete, got %d", before-1, len(a.board.Columns[0].Cards))
	}
}

func TestSettingsReloadedApplies(t *testing.T) {
	a := newTestApp(t)
	loadBoard(t, a)

	s := config.DefaultUISettings()
	s.ShowKeymapHints = false
	s.AutoScrollEdgeRows = 5
	a.Update(messages.SettingsReloaded{Settings: s})

	if a.settings.AutoScrollEdgeRows != 5 {
		t.Fatalf("expected edge rows 5, got %d", a.settings.AutoScrollEdgeRows)
	}
}

func TestQuitKey(t *testing.T) {
	a := newTestApp(t)
	loadBoard(t, a)

	_, cmd := a.Update(tea.KeyPressMsg{Code: 'q'})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !a.quitting {
		t.Fatalf("expected quitting state")
	}
}
