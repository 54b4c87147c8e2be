package buffer

import "folio/internal/search"

// SearchForward moves the cursor to the first match strictly after it.
// There is no wrap-around: with no match between the cursor and the end
// of the buffer the cursor stays put and false is returned.
func (b *Buffer) SearchForward(e *search.Engine) bool {
	row, col, ok := e.FindForward(b.lines, b.cursor.Row, b.cursor.Col)
	if !ok {
		return false
	}
	b.cursor = b.clampPos(Pos{Row: row, Col: col})
	return true
}

// SearchBackward moves the cursor to the last match strictly before it,
// without wrapping.
func (b *Buffer) SearchBackward(e *search.Engine) bool {
	row, col, ok := e.FindBackward(b.lines, b.cursor.Row, b.cursor.Col)
	if !ok {
		return false
	}
	b.cursor = b.clampPos(Pos{Row: row, Col: col})
	return true
}
