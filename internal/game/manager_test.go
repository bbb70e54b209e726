package game

import (
	"errors"
	"sync"
	"testing"

	"cczero/internal/xiangqi"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	g := m.NewGame()
	if g.ID == "" || g.StartFEN != xiangqi.StartFEN {
		t.Fatalf("new game %+v", g)
	}
	if other := m.NewGame(); other.ID == g.ID {
		t.Fatalf("duplicate game id %s", g.ID)
	}

	got, err := m.Get(g.ID)
	if err != nil || got != g {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if _, err := m.Play(g.ID, "h2e2"); err != nil {
		t.Fatalf("play: %v", err)
	}
	if _, err := m.Play(g.ID, "h2e2"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("replaying a moved piece: %v", err)
	}
	if g.SideToMove() != xiangqi.Black || len(g.Moves()) != 1 {
		t.Fatalf("game not updated: side %v moves %d", g.SideToMove(), len(g.Moves()))
	}
	if g.UpdatedAt.Before(g.CreatedAt) {
		t.Fatalf("UpdatedAt before CreatedAt")
	}

	if err := m.Delete(g.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get(g.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Get after delete: %v", err)
	}
	if err := m.Delete(g.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := m.Play("missing", "h2e2"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("play on missing game: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("%d games left", m.Len())
	}
}

func TestManagerFromFEN(t *testing.T) {
	m := NewManager()
	if _, err := m.NewGameFromFEN("not a fen"); !errors.Is(err, xiangqi.ErrInvalidFEN) {
		t.Fatalf("bad FEN: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("failed game was registered")
	}
	fen := "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C2C4/9/RNBAKABNR b - - 1 1"
	g, err := m.NewGameFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	if g.FEN() != fen || g.SideToMove() != xiangqi.Black {
		t.Fatalf("FEN = %q side %v", g.FEN(), g.SideToMove())
	}
	// 黑方也用绝对坐标
	if _, err := m.Play(g.ID, "h9g7"); err != nil {
		t.Fatalf("black move: %v", err)
	}
	if g.Counters().FullMoves != 2 {
		t.Fatalf("full moves = %d", g.Counters().FullMoves)
	}
}

func TestManagerConcurrent(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	ids := make([]string, 16)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := m.NewGame()
			ids[i] = g.ID
			for _, s := range []string{"h2e2", "h9g7", "h0g2"} {
				if _, err := m.Play(g.ID, s); err != nil {
					t.Errorf("play %s: %v", s, err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if m.Len() != len(ids) {
		t.Fatalf("%d games, want %d", m.Len(), len(ids))
	}
	for _, id := range ids {
		g, err := m.Get(id)
		if err != nil || len(g.Moves()) != 3 {
			t.Fatalf("game %s: %v", id, err)
		}
	}
}
