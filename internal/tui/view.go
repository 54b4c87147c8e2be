package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/buffer"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.titleView())
	b.WriteByte('\n')
	b.WriteString(m.contentView())
	b.WriteByte('\n')
	b.WriteString(m.statusView())
	return b.String()
}

func (m *Model) titleView() string {
	title := "no directory"
	if m.nav.Opened() {
		title = fmt.Sprintf("%s  page %s of %d", m.nav.Directory(), m.nav.PageToken(), m.nav.PageCount())
	}
	left := m.styles.Title.Render("folio " + m.version)
	mid := m.styles.Status.Render(" " + title)
	return left + mid
}

func (m *Model) contentHeight() int {
	// title and status lines
	return m.height - 2
}

func (m *Model) contentView() string {
	height := m.contentHeight()
	if height <= 0 {
		return ""
	}
	if m.showHelp {
		return m.help.View(m.keys)
	}

	rows := make([]string, 0, height)
	for row := m.scroll; row < m.scroll+height; row++ {
		if row >= m.buf.LineCount() {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, m.renderLine(row))
	}
	return strings.Join(rows, "\n")
}

// Style precedence per cell: cursor over selection over search match
// over plain text.
const (
	classText = iota
	classMatch
	classSelection
	classCursor
)

func (m *Model) renderLine(row int) string {
	line := []rune(m.buf.Line(row))
	cursor := m.buf.Cursor()
	sel, hasSel := m.buf.Selection()

	// One class per rune, plus one trailing cell so the cursor is
	// visible past the end of the line.
	classes := make([]int, len(line)+1)

	for _, mr := range m.engine.MatchRanges(string(line)) {
		for col := mr[0]; col < mr[1] && col < len(classes); col++ {
			classes[col] = classMatch
		}
	}
	if hasSel {
		for col := range classes {
			if posInRange(buffer.Pos{Row: row, Col: col}, sel) && classes[col] < classSelection {
				classes[col] = classSelection
			}
		}
	}
	if cursor.Row == row && cursor.Col < len(classes) {
		classes[cursor.Col] = classCursor
	}

	cells := append(line, ' ')
	var out strings.Builder
	for start := 0; start < len(cells); {
		end := start
		for end < len(cells) && classes[end] == classes[start] {
			end++
		}
		seg := string(cells[start:end])
		switch classes[start] {
		case classCursor:
			out.WriteString(m.styles.Cursor.Render(seg))
		case classSelection:
			out.WriteString(m.styles.Selection.Render(seg))
		case classMatch:
			out.WriteString(m.styles.Match.Render(seg))
		default:
			out.WriteString(m.styles.Text.Render(seg))
		}
		start = end
	}
	return out.String()
}

func posInRange(p buffer.Pos, r buffer.Range) bool {
	return !p.Less(r.Start) && p.Less(r.End)
}

func (m *Model) statusView() string {
	var left string
	switch m.mode {
	case OpenDirectory:
		left = m.styles.Prompt.Render(m.dirInput.View())
	case OpenFile:
		left = m.styles.Prompt.Render(m.pageInput.View())
	case Search:
		left = m.styles.Prompt.Render(m.searchInput.View())
	default:
		if m.statusErr {
			left = m.styles.Error.Render(m.statusMsg)
		} else {
			left = m.styles.Status.Render(m.statusMsg)
		}
	}

	tag := m.styles.ModeTag.Render(m.mode.String())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(tag)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + tag
}
