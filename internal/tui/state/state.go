package state

// ClampCursor pins a cursor into the valid range for a list of the given size.
func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// RowOf returns the grid row a position falls in.
func RowOf(pos, cols int) int {
	if cols < 1 {
		return 0
	}
	return pos / cols
}

// RowCount returns how many grid rows the given number of cells occupies.
func RowCount(count, cols int) int {
	if cols < 1 || count <= 0 {
		return 0
	}
	return (count + cols - 1) / cols
}

// MoveHorizontal shifts a cursor along the reading order, clamped to the
// list bounds.
func MoveHorizontal(cursor, count, delta int) int {
	if count <= 0 {
		return 0
	}
	return ClampCursor(cursor+delta, count)
}

// MoveVertical shifts a cursor by whole grid rows. Moving down into a ragged
// last row lands on the final cell; moving past either edge keeps the cursor
// where it was.
func MoveVertical(cursor, cols, count, delta int) int {
	if count <= 0 {
		return 0
	}
	if cols < 1 {
		cols = 1
	}
	cursor = ClampCursor(cursor, count)
	next := cursor + delta*cols
	if next >= 0 && next < count {
		return next
	}
	if delta > 0 && RowOf(cursor, cols) < RowOf(count-1, cols) {
		return count - 1
	}
	return cursor
}

// EnsureRowVisible scrolls a row offset the minimal amount needed to bring
// the cursor row into the visible window.
func EnsureRowVisible(offset, cursorRow, visibleRows, totalRows int) int {
	if totalRows <= 0 || visibleRows <= 0 {
		return 0
	}
	maxOffset := totalRows - visibleRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if cursorRow < offset {
		return cursorRow
	}
	if cursorRow >= offset+visibleRows {
		return cursorRow - visibleRows + 1
	}
	return offset
}

// ClampScroll pins a scroll offset so the viewport never runs past the end
// of the content.
func ClampScroll(top, total, viewport int) int {
	if total <= viewport || viewport <= 0 {
		return 0
	}
	maxTop := total - viewport
	if top > maxTop {
		return maxTop
	}
	if top < 0 {
		return 0
	}
	return top
}

// PageStep returns how many lines a page up or down jumps within a viewport.
func PageStep(viewport int) int {
	step := viewport - 2
	if step < 3 {
		step = 3
	}
	return step
}
