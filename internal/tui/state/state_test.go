package state

import "testing"

func TestClampCursor(t *testing.T) {
	if got := ClampCursor(-1, 3); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampCursor(3, 3); got != 2 {
		t.Fatalf("expected clamp to 2, got %d", got)
	}
	if got := ClampCursor(1, 3); got != 1 {
		t.Fatalf("expected keep 1, got %d", got)
	}
	if got := ClampCursor(5, 0); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestRowHelpers(t *testing.T) {
	if got := RowOf(7, 3); got != 2 {
		t.Fatalf("RowOf(7, 3) = %d, want 2", got)
	}
	if got := RowCount(7, 3); got != 3 {
		t.Fatalf("RowCount(7, 3) = %d, want 3", got)
	}
	if got := RowCount(6, 3); got != 2 {
		t.Fatalf("RowCount(6, 3) = %d, want 2", got)
	}
	if got := RowCount(0, 3); got != 0 {
		t.Fatalf("RowCount(0, 3) = %d, want 0", got)
	}
}

func TestMoveHorizontal(t *testing.T) {
	if got := MoveHorizontal(0, 5, 1); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := MoveHorizontal(4, 5, 1); got != 4 {
		t.Fatalf("expected clamp at end, got %d", got)
	}
	if got := MoveHorizontal(0, 5, -1); got != 0 {
		t.Fatalf("expected clamp at start, got %d", got)
	}
	if got := MoveHorizontal(3, 0, 1); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestMoveVertical(t *testing.T) {
	// 3 columns, 7 cells: rows are [0 1 2] [3 4 5] [6].
	if got := MoveVertical(1, 3, 7, 1); got != 4 {
		t.Fatalf("down from 1 = %d, want 4", got)
	}
	if got := MoveVertical(4, 3, 7, 1); got != 6 {
		t.Fatalf("down into ragged row from 4 = %d, want 6", got)
	}
	if got := MoveVertical(6, 3, 7, 1); got != 6 {
		t.Fatalf("down from last row = %d, want 6", got)
	}
	if got := MoveVertical(4, 3, 7, -1); got != 1 {
		t.Fatalf("up from 4 = %d, want 1", got)
	}
	if got := MoveVertical(1, 3, 7, -1); got != 1 {
		t.Fatalf("up from first row = %d, want 1", got)
	}
	if got := MoveVertical(2, 3, 0, 1); got != 0 {
		t.Fatalf("expected 0 for empty grid, got %d", got)
	}
}

func TestEnsureRowVisible(t *testing.T) {
	if got := EnsureRowVisible(0, 0, 2, 5); got != 0 {
		t.Fatalf("cursor already visible, offset = %d, want 0", got)
	}
	if got := EnsureRowVisible(0, 3, 2, 5); got != 2 {
		t.Fatalf("scroll down to reveal row 3, offset = %d, want 2", got)
	}
	if got := EnsureRowVisible(2, 1, 2, 5); got != 1 {
		t.Fatalf("scroll up to reveal row 1, offset = %d, want 1", got)
	}
	if got := EnsureRowVisible(9, 4, 2, 5); got != 3 {
		t.Fatalf("stale offset should clamp, got %d, want 3", got)
	}
	if got := EnsureRowVisible(1, 0, 3, 0); got != 0 {
		t.Fatalf("empty grid offset = %d, want 0", got)
	}
}

func TestClampScroll(t *testing.T) {
	if got := ClampScroll(0, 10, 4); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ClampScroll(8, 10, 4); got != 6 {
		t.Fatalf("expected clamp to 6, got %d", got)
	}
	if got := ClampScroll(-2, 10, 4); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampScroll(3, 4, 10); got != 0 {
		t.Fatalf("short content should not scroll, got %d", got)
	}
}

func TestPageStep(t *testing.T) {
	if got := PageStep(12); got != 10 {
		t.Fatalf("expected step 10, got %d", got)
	}
	if got := PageStep(4); got != 3 {
		t.Fatalf("expected minimum step 3, got %d", got)
	}
}
