package view

import (
	"strings"
	"testing"

	"github.com/PayTrain/NASA-Space-Explorer/internal/apod"
	tuitheme "github.com/PayTrain/NASA-Space-Explorer/internal/tui/theme"
)

func TestComputeLayout_ColumnsFromWidth(t *testing.T) {
	l := ComputeLayout(84, 20, 9, 0)
	if l.Cols != 3 {
		t.Fatalf("cols = %d, want 3", l.Cols)
	}
	if l.CardW < cardMinWidth || l.CardW > cardMaxWidth {
		t.Fatalf("card width %d outside [%d, %d]", l.CardW, cardMinWidth, cardMaxWidth)
	}
	if l.VisibleRows != 4 {
		t.Fatalf("visible rows = %d, want 4", l.VisibleRows)
	}
	if l.TotalRows() != 3 {
		t.Fatalf("total rows = %d, want 3", l.TotalRows())
	}
}

func TestComputeLayout_NarrowTerminalKeepsOneColumn(t *testing.T) {
	l := ComputeLayout(18, 10, 4, 0)
	if l.Cols != 1 {
		t.Fatalf("cols = %d, want 1", l.Cols)
	}
}

func TestComputeLayout_ClampsRowOffset(t *testing.T) {
	// 2 cols, 5 items -> 3 rows; 2 visible rows -> max offset 1.
	l := ComputeLayout(56, 10, 5, 9)
	if l.Cols != 2 {
		t.Fatalf("cols = %d, want 2", l.Cols)
	}
	if l.RowOffset != 1 {
		t.Fatalf("row offset = %d, want clamp to 1", l.RowOffset)
	}
}

func TestLayout_CellRectAndCellAtRoundTrip(t *testing.T) {
	l := ComputeLayout(84, 20, 7, 0)
	for pos := 0; pos < 7; pos++ {
		x, y, w, h, visible := l.CellRect(pos)
		if !visible {
			continue
		}
		got, ok := l.CellAt(x+w/2, y+h/2)
		if !ok || got != pos {
			t.Fatalf("CellAt center of cell %d = (%d, %v)", pos, got, ok)
		}
		got, ok = l.CellAt(x, y)
		if !ok || got != pos {
			t.Fatalf("CellAt corner of cell %d = (%d, %v)", pos, got, ok)
		}
	}
}

func TestLayout_CellAtMissesGaps(t *testing.T) {
	l := ComputeLayout(84, 20, 6, 0)
	if l.Cols < 2 {
		t.Fatalf("need at least 2 columns, got %d", l.Cols)
	}
	// First gap column sits right after the first card.
	if pos, ok := l.CellAt(l.CardW, 0); ok {
		t.Fatalf("gap click should miss, hit cell %d", pos)
	}
	if pos, ok := l.CellAt(0, l.VisibleRows*CardHeight+1); ok {
		t.Fatalf("click below the grid should miss, hit cell %d", pos)
	}
}

func TestLayout_CellRectRespectsScroll(t *testing.T) {
	// 2 cols, 6 items -> 3 rows; 1 visible row, scrolled to row 1.
	l := ComputeLayout(56, 5, 6, 1)
	if _, _, _, _, visible := l.CellRect(0); visible {
		t.Fatal("cell 0 should be scrolled out of view")
	}
	x, y, _, _, visible := l.CellRect(2)
	if !visible {
		t.Fatal("cell 2 should be visible in row 1")
	}
	if x != 0 || y != 0 {
		t.Fatalf("cell 2 should sit at the grid origin, got (%d, %d)", x, y)
	}

	pos, ok := l.CellAt(1, 1)
	if !ok || pos != 2 {
		t.Fatalf("CellAt with scroll = (%d, %v), want cell 2", pos, ok)
	}
}

func TestRenderGrid_ShowsEveryFetchedCard(t *testing.T) {
	items := []apod.Item{
		{Title: "One", Date: "2025-10-25", MediaType: "image", URL: "https://example.com/1.jpg"},
		{Title: "Two", Date: "2025-10-26", MediaType: "image", URL: "https://example.com/2.jpg"},
		{Title: "Three", Date: "2025-10-27", MediaType: "video", URL: "https://www.youtube.com/embed/v3"},
	}
	cards := make([]Card, len(items))
	for i, item := range items {
		cards[i] = NewCard(item, i)
	}

	l := ComputeLayout(84, 20, len(cards), 0)
	plain := stripANSI(RenderGrid(cards, l, 0, tuitheme.Default()))

	for _, want := range []string{"1.", "2.", "3.", "One", "Two", "Three"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("grid missing %q:\n%s", want, plain)
		}
	}
}

func TestRenderGrid_Empty(t *testing.T) {
	l := ComputeLayout(84, 20, 0, 0)
	if got := RenderGrid(nil, l, 0, tuitheme.Default()); got != "" {
		t.Fatalf("empty grid should render nothing, got %q", got)
	}
}
