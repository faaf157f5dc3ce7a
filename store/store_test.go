package store_test

import (
	"path/filepath"
	"testing"

	"ringpong/store"
)

func openStore(t *testing.T) *store.HighScores {
	t.Helper()
	dir := t.TempDir()
	h, err := store.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestBestIsZeroWhenEmpty(t *testing.T) {
	h := openStore(t)
	best, err := h.Best()
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if best != 0 {
		t.Fatalf("empty store best = %d, want 0", best)
	}
}

func TestRecordAndBestRoundTrip(t *testing.T) {
	h := openStore(t)
	if err := h.Record(12); err != nil {
		t.Fatalf("Record: %v", err)
	}
	best, err := h.Best()
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if best != 12 {
		t.Fatalf("best = %d, want 12", best)
	}
}

func TestRecordNeverDecreases(t *testing.T) {
	h := openStore(t)
	for _, score := range []int{5, 3, 9, 1} {
		if err := h.Record(score); err != nil {
			t.Fatalf("Record(%d): %v", score, err)
		}
	}
	best, err := h.Best()
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if best != 9 {
		t.Fatalf("best after [5 3 9 1] = %d, want 9", best)
	}
}

func TestOpenIsIdempotentAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.db")

	h, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := h.Record(7); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	h2, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = h2.Close() }()

	best, err := h2.Best()
	if err != nil {
		t.Fatalf("Best: %v", err)
	}
	if best != 7 {
		t.Fatalf("best after reopen = %d, want 7", best)
	}
}
