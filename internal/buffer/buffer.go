// Package buffer owns the editable document: its lines, cursor,
// selection, and undo/redo history. Columns are rune indices. The
// cursor is clamped to a valid (line, column) on every mutation.
package buffer

import "strings"

// Pos is a position in the document: a line index and a rune column.
// Col may equal the line length (cursor past the last rune).
type Pos struct {
	Row int
	Col int
}

// Less reports whether p precedes q in document order.
func (p Pos) Less(q Pos) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Range is a half-open [Start, End) span in document order.
type Range struct {
	Start Pos
	End   Pos
}

// IsEmpty reports whether the range covers no text.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

type selectionState struct {
	active bool
	anchor Pos
}

// Buffer is the editable document.
type Buffer struct {
	lines  []string
	cursor Pos
	sel    selectionState
	undo   []editOp
	redo   []editOp
}

// New returns an empty single-line buffer.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// Lines returns a copy of the buffer's lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Text returns the whole buffer joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Pos {
	return b.cursor
}

// ReplaceAll substitutes the whole buffer content. This is a wholesale
// reset: cursor, selection, and undo/redo history are all discarded.
func (b *Buffer) ReplaceAll(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.undo = nil
	b.redo = nil
}

// StartSelection fixes the selection anchor at the cursor. The selected
// span is [anchor, cursor) in document order as the cursor moves.
func (b *Buffer) StartSelection() {
	b.sel = selectionState{active: true, anchor: b.cursor}
}

// ClearSelection cancels any active selection.
func (b *Buffer) ClearSelection() {
	b.sel = selectionState{}
}

// Selection returns the selected range in document order. ok is false
// when no selection is active.
func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := Range{Start: b.sel.anchor, End: b.cursor}
	if r.End.Less(r.Start) {
		r.Start, r.End = r.End, r.Start
	}
	return r, true
}

// SetCursor moves the cursor to p, clamped into the buffer.
func (b *Buffer) SetCursor(p Pos) {
	b.cursor = b.clampPos(p)
}

func (b *Buffer) clampPos(p Pos) Pos {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row > len(b.lines)-1 {
		p.Row = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := lineLen(b.lines[p.Row]); p.Col > n {
		p.Col = n
	}
	return p
}

func lineLen(line string) int {
	return len([]rune(line))
}
