// Package store persists the board in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations.sql
var migrations string

// ErrNotFound is returned when a referenced card or column does not exist.
var ErrNotFound = errors.New("store: not found")

// Column is a board column with its cards in display order.
type Column struct {
	ID       int64
	Name     string
	Position int
	Cards    []Card
}

// Card is one task card.
type Card struct {
	ID        string
	ColumnID  int64
	Position  int
	Title     string
	Label     string
	Assignee  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and applies
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")
	_, _ = db.Exec("PRAGMA foreign_keys = ON")

	s := &Store{db: db}
	if _, err := db.ExecContext(context.Background(), migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SeedDefaults creates the standard columns and a few starter cards when
// the database is empty.
func (s *Store) SeedDefaults(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM columns`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	names := []string{"Todo", "Doing", "Done"}
	ids := make([]int64, len(names))
	for i, name := range names {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO columns(name, position) VALUES(?, ?)`, name, i)
		if err != nil {
			return err
		}
		ids[i], err = res.LastInsertId()
		if err != nil {
			return err
		}
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	starters := []struct {
		col   int
		title string
		label string
	}{
		{0, "Sketch the onboarding flow", "design"},
		{0, "Write the release notes", "docs"},
		{0, "Cut the v0.2 branch", "release"},
		{1, "Fix the resize flicker", "bug"},
		{2, "Ship keyboard navigation", "feature"},
	}
	posInCol := make([]int, len(names))
	for _, st := range starters {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO cards(id, column_id, position, title, label, assignee, created_at, updated_at)
			 VALUES(?,?,?,?,?,?,?,?)`,
			uuid.NewString(), ids[st.col], posInCol[st.col], st.title, st.label, "", now, now)
		if err != nil {
			return err
		}
		posInCol[st.col]++
	}
	return tx.Commit()
}

// LoadBoard returns all columns with their cards in display order.
func (s *Store) LoadBoard(ctx context.Context) ([]Column, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, position FROM columns ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	index := map[int64]int{}
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.ID, &c.Name, &c.Position); err != nil {
			return nil, err
		}
		index[c.ID] = len(cols)
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cardRows, err := s.db.QueryContext(ctx,
		`SELECT id, column_id, position, title, label, assignee, created_at, updated_at
		 FROM cards ORDER BY column_id, position`)
	if err != nil {
		return nil, err
	}
	defer cardRows.Close()

	for cardRows.Next() {
		var card Card
		var created, updated string
		if err := cardRows.Scan(&card.ID, &card.ColumnID, &card.Position,
			&card.Title, &card.Label, &card.Assignee, &created, &updated); err != nil {
			return nil, err
		}
		card.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		card.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
		if i, ok := index[card.ColumnID]; ok {
			cols[i].Cards = append(cols[i].Cards, card)
		}
	}
	return cols, cardRows.Err()
}

// AddCard appends a new card to the end of the column.
func (s *Store) AddCard(ctx context.Context, columnID int64, title, label, assignee string) (Card, error) {
	now := time.Now().UTC()
	card := Card{
		ID:        uuid.NewString(),
		ColumnID:  columnID,
		Title:     title,
		Label:     label,
		Assignee:  assignee,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cards WHERE column_id = ?`, columnID).Scan(&card.Position)
	if err != nil {
		return Card{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cards(id, column_id, position, title, label, assignee, created_at, updated_at)
		 VALUES(?,?,?,?,?,?,?,?)`,
		card.ID, card.ColumnID, card.Position, card.Title, card.Label, card.Assignee,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	if err != nil {
		return Card{}, err
	}
	return card, nil
}

// MoveCard moves a card to position toPos in column toColumn, shifting
// neighbors as needed. toPos is interpreted against the destination column
// without the moving card and clamped to its length.
func (s *Store) MoveCard(ctx context.Context, cardID string, toColumn int64, toPos int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var fromColumn int64
	var fromPos int
	err = tx.QueryRowContext(ctx,
		`SELECT column_id, position FROM cards WHERE id = ?`, cardID).Scan(&fromColumn, &fromPos)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	// Close the gap in the source column.
	if _, err := tx.ExecContext(ctx,
		`UPDATE cards SET position = position - 1 WHERE column_id = ? AND position > ?`,
		fromColumn, fromPos); err != nil {
		return err
	}

	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cards WHERE column_id = ? AND id != ?`,
		toColumn, cardID).Scan(&count); err != nil {
		return err
	}
	if toPos < 0 {
		toPos = 0
	}
	if toPos > count {
		toPos = count
	}

	// Open a slot at the destination.
	if _, err := tx.ExecContext(ctx,
		`UPDATE cards SET position = position + 1 WHERE column_id = ? AND position >= ? AND id != ?`,
		toColumn, toPos, cardID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE cards SET column_id = ?, position = ?, updated_at = ? WHERE id = ?`,
		toColumn, toPos, time.Now().UTC().Format(time.RFC3339Nano), cardID); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteCard removes a card and closes the gap it leaves behind.
func (s *Store) DeleteCard(ctx context.Context, cardID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var columnID int64
	var pos int
	err = tx.QueryRowContext(ctx,
		`SELECT column_id, position FROM cards WHERE id = ?`, cardID).Scan(&columnID, &pos)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, cardID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE cards SET position = position - 1 WHERE column_id = ? AND position > ?`,
		columnID, pos); err != nil {
		return err
	}
	return tx.Commit()
}
