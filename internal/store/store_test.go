package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func titles(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Title
	}
	return out
}

func assertOrder(t *testing.T, cards []Card, want ...string) {
	t.Helper()
	got := titles(cards)
	if len(got) != len(want) {
		t.Fatalf("cards = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cards = %v, want %v", got, want)
		}
	}
	for i, c := range cards {
		if c.Position != i {
			t.Fatalf("card %q position = %d, want %d", c.Title, c.Position, i)
		}
	}
}

func TestSeedDefaults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SeedDefaults(ctx); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}
	// Idempotent.
	if err := s.SeedDefaults(ctx); err != nil {
		t.Fatalf("second SeedDefaults: %v", err)
	}

	cols, err := s.LoadBoard(ctx)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	if len(cols) != 3 {
		t.Fatalf("columns = %d, want 3", len(cols))
	}
	if cols[0].Name != "Todo" || cols[2].Name != "Done" {
		t.Errorf("column names = %q/%q/%q", cols[0].Name, cols[1].Name, cols[2].Name)
	}
	total := 0
	for _, c := range cols {
		total += len(c.Cards)
	}
	if total == 0 {
		t.Error("seed should create starter cards")
	}
}

func TestSeedDefaultsDensePositions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.SeedDefaults(ctx); err != nil {
		t.Fatal(err)
	}

	cols, err := s.LoadBoard(ctx)
	if err != nil {
		t.Fatalf("LoadBoard: %v", err)
	}
	// Positions restart at 0 in every column, with no gaps.
	for _, col := range cols {
		for i, c := range col.Cards {
			if c.Position != i {
				t.Errorf("%s card %q position = %d, want %d",
					col.Name, c.Title, c.Position, i)
			}
		}
	}

	// Appending to a seeded single-card column lands after the seed.
	card, err := s.AddCard(ctx, cols[1].ID, "New task", "", "")
	if err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	if card.Position != 1 {
		t.Errorf("appended position = %d, want 1", card.Position)
	}
	cols, _ = s.LoadBoard(ctx)
	if got := cols[1].Cards[len(cols[1].Cards)-1]; got.Title != "New task" {
		t.Errorf("last card in %s = %q, want the appended card", cols[1].Name, got.Title)
	}
}

func TestAddCardAppends(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.SeedDefaults(ctx); err != nil {
		t.Fatal(err)
	}
	cols, _ := s.LoadBoard(ctx)
	before := len(cols[1].Cards)

	card, err := s.AddCard(ctx, cols[1].ID, "New task", "chore", "sam")
	if err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	if card.Position != before {
		t.Errorf("position = %d, want %d", card.Position, before)
	}
	if card.ID == "" {
		t.Error("card should get an id")
	}

	cols, _ = s.LoadBoard(ctx)
	got := cols[1].Cards[len(cols[1].Cards)-1]
	if got.Title != "New task" || got.Assignee != "sam" {
		t.Errorf("stored card = %+v", got)
	}
}

func TestMoveCardWithinColumn(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cols := buildFixture(t, s, ctx)

	// a b c -> move a below b.
	cards := cols[0].Cards
	if err := s.MoveCard(ctx, cards[0].ID, cols[0].ID, 1); err != nil {
		t.Fatalf("MoveCard: %v", err)
	}
	cols, _ = s.LoadBoard(ctx)
	assertOrder(t, cols[0].Cards, "b", "a", "c")
}

func TestMoveCardAcrossColumns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cols := buildFixture(t, s, ctx)

	if err := s.MoveCard(ctx, cols[0].Cards[1].ID, cols[1].ID, 0); err != nil {
		t.Fatalf("MoveCard: %v", err)
	}
	cols, _ = s.LoadBoard(ctx)
	assertOrder(t, cols[0].Cards, "a", "c")
	assertOrder(t, cols[1].Cards, "b", "x")
}

func TestMoveCardClampsPosition(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cols := buildFixture(t, s, ctx)

	if err := s.MoveCard(ctx, cols[0].Cards[0].ID, cols[1].ID, 99); err != nil {
		t.Fatalf("MoveCard: %v", err)
	}
	cols, _ = s.LoadBoard(ctx)
	assertOrder(t, cols[1].Cards, "x", "a")
}

func TestMoveCardUnknownID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cols := buildFixture(t, s, ctx)

	if err := s.MoveCard(ctx, "nope", cols[0].ID, 0); err != ErrNotFound {
		t.Errorf("MoveCard unknown id = %v, want ErrNotFound", err)
	}
}

func TestDeleteCardClosesGap(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cols := buildFixture(t, s, ctx)

	if err := s.DeleteCard(ctx, cols[0].Cards[1].ID); err != nil {
		t.Fatalf("DeleteCard: %v", err)
	}
	cols, _ = s.LoadBoard(ctx)
	assertOrder(t, cols[0].Cards, "a", "c")

	if err := s.DeleteCard(ctx, "nope"); err != ErrNotFound {
		t.Errorf("DeleteCard unknown id = %v, want ErrNotFound", err)
	}
}

// buildFixture creates two empty columns with cards a,b,c and x.
func buildFixture(t *testing.T, s *Store, ctx context.Context) []Column {
	t.Helper()
	for i, name := range []string{"Left", "Right"} {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO columns(name, position) VALUES(?, ?)`, name, i); err != nil {
			t.Fatal(err)
		}
	}
	cols, err := s.LoadBoard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"a", "b", "c"} {
		if _, err := s.AddCard(ctx, cols[0].ID, title, "", ""); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.AddCard(ctx, cols[1].ID, "x", "", ""); err != nil {
		t.Fatal(err)
	}
	cols, err = s.LoadBoard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	return cols
}
