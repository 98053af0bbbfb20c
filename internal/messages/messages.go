// Package messages defines the tea.Msg types exchanged between the app and
// its panes.
package messages

import (
	"github.com/andyrewlee/dropdeck/internal/config"
	"github.com/andyrewlee/dropdeck/internal/store"
)

// Error reports a failed operation. Logged marks errors already written to
// the log so handlers do not double-log them.
type Error struct {
	Err     error
	Context string
	Logged  bool
}

// BoardLoaded is sent when the board has been loaded from the store.
type BoardLoaded struct {
	Columns []store.Column
}

// CardMoved is sent after a drop (or keyboard move) has been persisted.
type CardMoved struct {
	CardID   string
	ToColumn int64
	ToPos    int
}

// CardAdded is sent after a new card has been persisted.
type CardAdded struct {
	Card store.Card
}

// CardDeleted is sent after a card has been removed from the store.
type CardDeleted struct {
	CardID string
}

// RefreshBoard requests a reload from the store.
type RefreshBoard struct{}

// MoveCardRequested asks the app to persist a card move. ToPos is the
// desired index in the destination column; the store clamps it.
type MoveCardRequested struct {
	CardID   string
	ToColumn int64
	ToPos    int
}

// AddCardRequested asks the app to create a card in the given column.
type AddCardRequested struct {
	ColumnID int64
	Title    string
}

// DeleteCardRequested asks the app to remove a card.
type DeleteCardRequested struct {
	CardID string
}

// SettingsReloaded is sent when the settings file changed on disk.
type SettingsReloaded struct {
	Settings config.UISettings
}

// ShowToast requests a transient notification.
type ShowToast struct {
	Message string
	IsError bool
}

// Quit requests an orderly shutdown.
type Quit struct{}
