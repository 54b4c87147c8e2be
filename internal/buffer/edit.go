package buffer

import "strings"

// editOp is one undoable edit: text inserted at or removed from pos.
// The inverse of an insertion is the removal of the same span, and vice
// versa, so a single record serves both directions of history.
type editOp struct {
	pos    Pos
	text   string
	insert bool
	before Pos // cursor before the edit
	after  Pos // cursor after the edit
}

// InsertText inserts s at the cursor, records the edit, and clears the
// redo stack. Newlines in s split lines.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	op := editOp{pos: b.cursor, text: s, insert: true, before: b.cursor}
	end := b.insertAt(b.cursor, s)
	op.after = end
	b.cursor = end
	b.sel = selectionState{}
	b.pushEdit(op)
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward removes the rune (or line break) before the cursor.
// At the very start of the buffer it is a no-op.
func (b *Buffer) DeleteBackward() {
	if b.cursor == (Pos{}) {
		return
	}
	start := b.moveChar(b.cursor, DirLeft)
	op := editOp{pos: start, insert: false, before: b.cursor}
	op.text = b.deleteRange(start, b.cursor)
	op.after = start
	b.cursor = start
	b.sel = selectionState{}
	b.pushEdit(op)
}

// CutSelection removes the selected span, records the edit, clears the
// redo stack and the selection, and returns the removed text. ok is
// false when there is no selection or it is empty.
func (b *Buffer) CutSelection() (string, bool) {
	r, active := b.Selection()
	if !active || r.IsEmpty() {
		b.sel = selectionState{}
		return "", false
	}
	op := editOp{pos: r.Start, insert: false, before: b.cursor}
	op.text = b.deleteRange(r.Start, r.End)
	op.after = r.Start
	b.cursor = r.Start
	b.sel = selectionState{}
	b.pushEdit(op)
	return op.text, true
}

// TextRange returns the text covered by r without modifying the buffer.
func (b *Buffer) TextRange(r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		line := []rune(b.lines[r.Start.Row])
		return string(line[r.Start.Col:r.End.Col])
	}
	var sb strings.Builder
	first := []rune(b.lines[r.Start.Row])
	sb.WriteString(string(first[r.Start.Col:]))
	for row := r.Start.Row + 1; row < r.End.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[row])
	}
	last := []rune(b.lines[r.End.Row])
	sb.WriteByte('\n')
	sb.WriteString(string(last[:r.End.Col]))
	return sb.String()
}

// insertAt splices text into the buffer at p and returns the position
// just past the inserted text. p must already be clamped.
func (b *Buffer) insertAt(p Pos, text string) Pos {
	line := []rune(b.lines[p.Row])
	prefix := string(line[:p.Col])
	suffix := string(line[p.Col:])

	segs := strings.Split(text, "\n")
	if len(segs) == 1 {
		b.lines[p.Row] = prefix + segs[0] + suffix
		return Pos{Row: p.Row, Col: p.Col + lineLen(segs[0])}
	}

	newLines := make([]string, 0, len(b.lines)+len(segs)-1)
	newLines = append(newLines, b.lines[:p.Row]...)
	newLines = append(newLines, prefix+segs[0])
	newLines = append(newLines, segs[1:len(segs)-1]...)
	lastSeg := segs[len(segs)-1]
	newLines = append(newLines, lastSeg+suffix)
	newLines = append(newLines, b.lines[p.Row+1:]...)
	b.lines = newLines

	return Pos{Row: p.Row + len(segs) - 1, Col: lineLen(lastSeg)}
}

// deleteRange removes [start, end) and returns the removed text. Both
// positions must be clamped and in document order.
func (b *Buffer) deleteRange(start, end Pos) string {
	removed := b.TextRange(Range{Start: start, End: end})

	if start.Row == end.Row {
		line := []rune(b.lines[start.Row])
		b.lines[start.Row] = string(line[:start.Col]) + string(line[end.Col:])
		return removed
	}

	first := []rune(b.lines[start.Row])
	last := []rune(b.lines[end.Row])
	merged := string(first[:start.Col]) + string(last[end.Col:])

	newLines := make([]string, 0, len(b.lines)-(end.Row-start.Row))
	newLines = append(newLines, b.lines[:start.Row]...)
	newLines = append(newLines, merged)
	newLines = append(newLines, b.lines[end.Row+1:]...)
	b.lines = newLines
	return removed
}
