package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/dropdeck/internal/messages"
)

func (a *App) loadBoardCmd() tea.Cmd {
	st := a.store
	return func() tea.Msg {
		cols, err := st.LoadBoard(context.Background())
		if err != nil {
			return messages.Error{Err: err, Context: "load board"}
		}
		return messages.BoardLoaded{Columns: cols}
	}
}

func (a *App) moveCardCmd(req messages.MoveCardRequested) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		if err := st.MoveCard(context.Background(), req.CardID, req.ToColumn, req.ToPos); err != nil {
			return messages.Error{Err: err, Context: "move card"}
		}
		return messages.CardMoved{CardID: req.CardID, ToColumn: req.ToColumn, ToPos: req.ToPos}
	}
}

func (a *App) addCardCmd(req messages.AddCardRequested) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		card, err := st.AddCard(context.Background(), req.ColumnID, req.Title, "", "")
		if err != nil {
			return messages.Error{Err: err, Context: "add card"}
		}
		return messages.CardAdded{Card: card}
	}
}

func (a *App) deleteCardCmd(req messages.DeleteCardRequested) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		if err := st.DeleteCard(context.Background(), req.CardID); err != nil {
			return messages.Error{Err: err, Context: "delete card"}
		}
		return messages.CardDeleted{CardID: req.CardID}
	}
}
