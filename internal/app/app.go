package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/dropdeck/internal/config"
	"github.com/andyrewlee/dropdeck/internal/logging"
	"github.com/andyrewlee/dropdeck/internal/messages"
	"github.com/andyrewlee/dropdeck/internal/safego"
	"github.com/andyrewlee/dropdeck/internal/store"
	"github.com/andyrewlee/dropdeck/internal/ui/autoscroll"
	"github.com/andyrewlee/dropdeck/internal/ui/board"
	"github.com/andyrewlee/dropdeck/internal/ui/common"
)

// App is the root Bubbletea model
type App struct {
	paths    *config.Paths
	settings config.UISettings
	store    *store.Store

	board *board.Model
	toast *common.ToastModel

	zone  *zone.Manager
	wheel *autoscroll.WheelGate

	watcher *config.Watcher

	width, height int
	styles        common.Styles

	ready    bool
	quitting bool
}

// New creates the application model around an opened store.
func New(paths *config.Paths, st *store.Store) (*App, error) {
	settings := config.LoadUISettings(paths.ConfigPath)

	wheel := &autoscroll.WheelGate{}
	b := board.New(wheel)
	b.SetShowKeymapHints(settings.ShowKeymapHints)
	b.SetAutoScroll(autoscroll.Config{
		Threshold: float64(settings.AutoScrollEdgeRows),
		MaxSpeed:  settings.AutoScrollMaxSpeed,
	})
	b.Focus()

	a := &App{
		paths:    paths,
		settings: settings,
		store:    st,
		board:    b,
		toast:    common.NewToastModel(),
		zone:     zone.New(),
		wheel:    wheel,
		styles:   common.DefaultStyles(),
	}
	a.board.SetZone(a.zone)
	return a, nil
}

// Wheel exposes the gate consulted by the program-level event filter.
func (a *App) Wheel() *autoscroll.WheelGate { return a.wheel }

// SetMsgSender wires external event sources (the settings watcher) into the
// program's message loop. Called once after tea.NewProgram.
func (a *App) SetMsgSender(send func(tea.Msg)) {
	if send == nil || a.watcher != nil {
		return
	}
	w, err := config.NewWatcher(a.paths.ConfigPath, func(s config.UISettings) {
		send(messages.SettingsReloaded{Settings: s})
	})
	if err != nil {
		logging.Warn("Settings watcher unavailable: %v", err)
		return
	}
	a.watcher = w
	safego.Go("settings-watcher", w.Run)
}

// Shutdown releases everything the app holds open.
func (a *App) Shutdown() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logging.Warn("Closing store: %v", err)
		}
	}
}

// Init loads the board.
func (a *App) Init() tea.Cmd {
	return common.SafeCmd(a.loadBoardCmd())
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// One row at the bottom for the status line.
		a.board.SetSize(msg.Width, max(1, msg.Height-1))
		a.ready = true
		return a, nil

	case tea.KeyPressMsg:
		if !a.board.Dragging() {
			switch {
			case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))):
				a.quitting = true
				return a, tea.Quit
			case key.Matches(msg, key.NewBinding(key.WithKeys("q"))):
				a.quitting = true
				return a, tea.Quit
			}
		}
		return a.updateBoard(msg)

	case messages.Quit:
		a.quitting = true
		return a, tea.Quit

	case messages.BoardLoaded:
		a.board.SetColumns(msg.Columns)
		return a, nil

	case messages.RefreshBoard:
		return a, common.SafeCmd(a.loadBoardCmd())

	case messages.MoveCardRequested:
		return a, common.SafeCmd(a.moveCardCmd(msg))

	case messages.AddCardRequested:
		return a, common.SafeCmd(a.addCardCmd(msg))

	case messages.DeleteCardRequested:
		return a, common.SafeCmd(a.deleteCardCmd(msg))

	case messages.CardMoved:
		return a, common.SafeCmd(a.loadBoardCmd())

	case messages.CardAdded:
		return a, common.SafeBatch(
			a.loadBoardCmd(),
			a.toast.ShowSuccess("Added "+msg.Card.Title),
		)

	case messages.CardDeleted:
		return a, common.SafeBatch(
			a.loadBoardCmd(),
			a.toast.ShowInfo("Card deleted"),
		)

	case messages.SettingsReloaded:
		a.applySettings(msg.Settings)
		return a, a.toast.ShowInfo("Settings reloaded")

	case messages.ShowToast:
		if msg.IsError {
			return a, a.toast.ShowError(msg.Message)
		}
		return a, a.toast.ShowInfo(msg.Message)

	case messages.Error:
		if !msg.Logged {
			logging.Error("%s: %v", msg.Context, msg.Err)
		}
		return a, a.toast.ShowError(msg.Err.Error())

	case common.ToastDismissed:
		_, cmd := a.toast.Update(msg)
		return a, cmd
	}

	return a.updateBoard(msg)
}

func (a *App) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	b, cmd := a.board.Update(msg)
	a.board = b
	return a, cmd
}

func (a *App) applySettings(s config.UISettings) {
	a.settings = s
	a.board.SetShowKeymapHints(s.ShowKeymapHints)
	a.board.SetAutoScroll(autoscroll.Config{
		Threshold: float64(s.AutoScrollEdgeRows),
		MaxSpeed:  s.AutoScrollMaxSpeed,
	})
}
