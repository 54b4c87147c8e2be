package buffer

// pushEdit records an edit on the undo stack. Any new edit invalidates
// the redo stack (linear history).
func (b *Buffer) pushEdit(op editOp) {
	b.undo = append(b.undo, op)
	b.redo = nil
}

// CanUndo reports whether an edit can be undone.
func (b *Buffer) CanUndo() bool { return len(b.undo) > 0 }

// CanRedo reports whether an undone edit can be reapplied.
func (b *Buffer) CanRedo() bool { return len(b.redo) > 0 }

// Undo reverses the most recent edit. An empty stack is a no-op, not an
// error.
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	i := len(b.undo) - 1
	op := b.undo[i]
	b.undo = b.undo[:i]

	b.applyInverse(op)
	b.cursor = b.clampPos(op.before)
	b.sel = selectionState{}
	b.redo = append(b.redo, op)
	return true
}

// Redo reapplies the most recently undone edit.
func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	i := len(b.redo) - 1
	op := b.redo[i]
	b.redo = b.redo[:i]

	b.apply(op)
	b.cursor = b.clampPos(op.after)
	b.sel = selectionState{}
	b.undo = append(b.undo, op)
	return true
}

func (b *Buffer) apply(op editOp) {
	if op.insert {
		b.insertAt(op.pos, op.text)
		return
	}
	b.deleteRange(op.pos, endOfText(op.pos, op.text))
}

func (b *Buffer) applyInverse(op editOp) {
	if op.insert {
		b.deleteRange(op.pos, endOfText(op.pos, op.text))
		return
	}
	b.insertAt(op.pos, op.text)
}

// endOfText returns the position just past text when laid down at start.
func endOfText(start Pos, text string) Pos {
	rows := 0
	lastLineLen := 0
	for _, r := range text {
		if r == '\n' {
			rows++
			lastLineLen = 0
			continue
		}
		lastLineLen++
	}
	if rows == 0 {
		return Pos{Row: start.Row, Col: start.Col + lastLineLen}
	}
	return Pos{Row: start.Row + rows, Col: lastLineLen}
}
