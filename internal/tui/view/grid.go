package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	tuitheme "github.com/PayTrain/NASA-Space-Explorer/internal/tui/theme"
)

// CardHeight is the rendered height of every card, border included.
const CardHeight = 5

const (
	cardMinWidth = 26
	cardMaxWidth = 38
	cardGap      = 1
)

// Layout fixes the grid geometry for one frame: how many columns fit, how
// wide each card is, and which band of rows is scrolled into view. Cell
// positions are display positions in reading order.
type Layout struct {
	Width       int
	Height      int
	Cols        int
	CardW       int
	Count       int
	RowOffset   int
	VisibleRows int
}

func ComputeLayout(width, height, count, rowOffset int) Layout {
	if width < cardMinWidth {
		width = cardMinWidth
	}
	cols := (width + cardGap) / (cardMinWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	cardW := (width - (cols-1)*cardGap) / cols
	if cardW > cardMaxWidth {
		cardW = cardMaxWidth
	}

	visibleRows := height / CardHeight
	if visibleRows < 1 {
		visibleRows = 1
	}

	l := Layout{
		Width:       width,
		Height:      height,
		Cols:        cols,
		CardW:       cardW,
		Count:       count,
		VisibleRows: visibleRows,
	}
	maxOffset := l.TotalRows() - visibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if rowOffset > maxOffset {
		rowOffset = maxOffset
	}
	if rowOffset < 0 {
		rowOffset = 0
	}
	l.RowOffset = rowOffset
	return l
}

func (l Layout) TotalRows() int {
	if l.Cols < 1 || l.Count <= 0 {
		return 0
	}
	return (l.Count + l.Cols - 1) / l.Cols
}

// CellRect returns the screen rectangle of a display position relative to
// the grid origin, and whether that position is scrolled into view.
func (l Layout) CellRect(pos int) (x, y, w, h int, visible bool) {
	if pos < 0 || pos >= l.Count || l.Cols < 1 {
		return 0, 0, 0, 0, false
	}
	row := pos / l.Cols
	col := pos % l.Cols
	if row < l.RowOffset || row >= l.RowOffset+l.VisibleRows {
		return 0, 0, 0, 0, false
	}
	x = col * (l.CardW + cardGap)
	y = (row - l.RowOffset) * CardHeight
	return x, y, l.CardW, CardHeight, true
}

// CellAt maps a grid-relative point to the display position drawn there.
func (l Layout) CellAt(x, y int) (int, bool) {
	if x < 0 || y < 0 || l.Cols < 1 {
		return 0, false
	}
	row := y/CardHeight + l.RowOffset
	col := x / (l.CardW + cardGap)
	if col >= l.Cols {
		return 0, false
	}
	if x >= col*(l.CardW+cardGap)+l.CardW {
		return 0, false
	}
	pos := row*l.Cols + col
	if pos >= l.Count || row >= l.RowOffset+l.VisibleRows {
		return 0, false
	}
	return pos, true
}

// RenderGrid draws the visible rows of cards. The cursor is a display
// position; the card drawn there gets the active frame.
func RenderGrid(cards []Card, l Layout, cursor int, th tuitheme.Theme) string {
	if len(cards) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", cardGap)
	rows := make([]string, 0, l.VisibleRows)
	for row := l.RowOffset; row < l.RowOffset+l.VisibleRows; row++ {
		start := row * l.Cols
		if start >= len(cards) {
			break
		}
		end := start + l.Cols
		if end > len(cards) {
			end = len(cards)
		}
		cells := make([]string, 0, 2*l.Cols-1)
		for pos := start; pos < end; pos++ {
			if pos > start {
				cells = append(cells, gap)
			}
			cells = append(cells, RenderCard(cards[pos], l.CardW, pos == cursor, th))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
