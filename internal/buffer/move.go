package buffer

// MoveUnit selects what a movement steps over.
type MoveUnit int

const (
	UnitChar MoveUnit = iota
	UnitWord
	UnitParagraph
	UnitLine
)

// MoveDir selects the direction (or edge, for Head/End) of a movement.
type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHead // line start
	DirEnd  // line end
)

// Move is one cursor movement. With Extend set the selection anchor is
// kept and the span grows with the cursor; without it the cursor simply
// relocates. Hitting a buffer edge clamps, never errors.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

// Move applies m to the cursor.
func (b *Buffer) Move(m Move) {
	next := b.moveCursor(b.cursor, m)
	b.cursor = b.clampPos(next)
	if !m.Extend {
		b.sel = selectionState{}
	}
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case UnitChar:
		return b.moveChar(p, m.Dir)
	case UnitWord:
		return b.moveWord(p, m.Dir)
	case UnitParagraph:
		return b.moveParagraph(p, m.Dir)
	case UnitLine:
		return b.moveLineEdge(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveChar(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if p.Col > 0 {
			return Pos{Row: p.Row, Col: p.Col - 1}
		}
		if p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: lineLen(b.lines[p.Row-1])}
		}
		return p
	case DirRight:
		if p.Col < lineLen(b.lines[p.Row]) {
			return Pos{Row: p.Row, Col: p.Col + 1}
		}
		if p.Row < lastRow {
			return Pos{Row: p.Row + 1, Col: 0}
		}
		return p
	case DirUp:
		if p.Row == 0 {
			return p
		}
		return Pos{Row: p.Row - 1, Col: p.Col}
	case DirDown:
		if p.Row == lastRow {
			return p
		}
		return Pos{Row: p.Row + 1, Col: p.Col}
	default:
		return p
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := []rune(b.lines[p.Row])

	switch dir {
	case DirRight:
		col := nextWordBoundary(line, p.Col)
		if col == p.Col && p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1, Col: 0}
		}
		return Pos{Row: p.Row, Col: col}
	case DirLeft:
		col := prevWordBoundary(line, p.Col)
		if col == p.Col && p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: lineLen(b.lines[p.Row-1])}
		}
		return Pos{Row: p.Row, Col: col}
	default:
		return p
	}
}

// Paragraphs are separated by blank lines. Forward lands on the start of
// the line after the next blank line (or the last line); back on the
// start of the line after the previous blank line (or the first line).
func (b *Buffer) moveParagraph(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirDown, DirRight:
		for r := p.Row + 1; r < len(b.lines); r++ {
			if b.lines[r] == "" && r+1 < len(b.lines) {
				return Pos{Row: r + 1}
			}
		}
		return Pos{Row: len(b.lines) - 1}
	case DirUp, DirLeft:
		for r := p.Row - 1; r > 0; r-- {
			if b.lines[r-1] == "" {
				return Pos{Row: r}
			}
		}
		return Pos{}
	default:
		return p
	}
}

func (b *Buffer) moveLineEdge(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHead:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, Col: lineLen(b.lines[p.Row])}
	default:
		return p
	}
}

// Word boundary rules: skip whitespace, then skip non-whitespace. The
// line break is a hard boundary; crossing it is handled by the caller.
func nextWordBoundary(line []rune, col int) int {
	if col > len(line) {
		col = len(line)
	}
	i := col
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	for i < len(line) && !isSpace(line[i]) {
		i++
	}
	return i
}

func prevWordBoundary(line []rune, col int) int {
	if col > len(line) {
		col = len(line)
	}
	i := col
	for i > 0 && isSpace(line[i-1]) {
		i--
	}
	for i > 0 && !isSpace(line[i-1]) {
		i--
	}
	return i
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
