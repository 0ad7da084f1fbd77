package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/astrobots/internal/storage"
)

func historyStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	// A sloppy win, an optimal win, and an abandoned game
	store.SaveResult(storage.Result{Rows: 5, Cols: 5, MovesTaken: 9, OptimalMoves: 4, Won: true})
	store.SaveResult(storage.Result{Rows: 5, Cols: 5, MovesTaken: 4, OptimalMoves: 4, Won: true})
	store.SaveResult(storage.Result{Rows: 5, Cols: 5, MovesTaken: 2, OptimalMoves: 4, Won: false})
	return store
}

func TestHistoryModelRecent(t *testing.T) {
	store := historyStore(t)

	m := NewHistoryModel(store, 80, 24, false)

	if len(m.results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(m.results))
	}
	// Newest first: the abandoned game was saved last
	if m.results[0].Won {
		t.Error("Expected the abandoned game first in recent order")
	}
}

func TestHistoryModelBest(t *testing.T) {
	store := historyStore(t)

	m := NewHistoryModel(store, 80, 24, true)

	if len(m.results) != 2 {
		t.Fatalf("Expected 2 won results in best order, got %d", len(m.results))
	}
	if m.results[0].MovesTaken != 4 {
		t.Errorf("Expected the optimal win first, got %d moves", m.results[0].MovesTaken)
	}
	if m.results[1].MovesTaken != 9 {
		t.Errorf("Expected the sloppy win second, got %d moves", m.results[1].MovesTaken)
	}
}

func TestHistoryModelNilStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24, true)
	if len(m.results) != 0 {
		t.Errorf("Expected no results without a store, got %d", len(m.results))
	}
}
