package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/buffer"
	"folio/internal/config"
	"folio/internal/log"
	"folio/internal/pages"
	"folio/internal/search"
)

// Model is the mode controller: it owns the document, the page
// navigator, the search engine, and the current mode, and routes every
// key event to the handler for that mode. The document is mutated only
// from inside Update, one event at a time.
type Model struct {
	mode   Mode
	buf    *buffer.Buffer
	nav    *pages.Navigator
	engine *search.Engine

	dirInput    textinput.Model
	pageInput   textinput.Model
	searchInput textinput.Model

	keys     KeyMap
	help     help.Model
	showHelp bool
	styles   Styles

	statusMsg string
	statusErr bool

	width, height int
	scroll        int
	version       string
}

// New builds the editor model. cfg must already be validated; the
// default search pattern is compiled eagerly here, before any input is
// read. When cfg names a default directory it is opened immediately.
func New(cfg *config.Config, version string) (*Model, error) {
	engine, err := search.New(cfg.Search.Pattern)
	if err != nil {
		return nil, err
	}

	dirInput := textinput.New()
	dirInput.Prompt = "Open directory: "
	if wd, err := os.Getwd(); err == nil {
		dirInput.SetValue(wd)
	}

	pageInput := textinput.New()
	pageInput.Prompt = "Open page: "

	searchInput := textinput.New()
	searchInput.Prompt = "Search pattern: "
	searchInput.SetValue(cfg.Search.Pattern)

	m := &Model{
		mode:        Command,
		buf:         buffer.New(),
		nav:         pages.New(),
		engine:      engine,
		dirInput:    dirInput,
		pageInput:   pageInput,
		searchInput: searchInput,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		styles:      NewStyles(cfg),
		version:     version,
	}

	if cfg.Directories.Default != "" {
		m.dirInput.SetValue(cfg.Directories.Default)
		if err := m.nav.OpenDirectory(cfg.Directories.Default, m.buf); err != nil {
			m.setError(err)
		} else {
			m.setStatus(fmt.Sprintf("opened %s (%d pages)", m.nav.Directory(), m.nav.PageCount()))
		}
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Mode returns the active mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// StatusMessage returns the message surfaced by the last operation.
func (m *Model) StatusMessage() string {
	return m.statusMsg
}

// Buffer exposes the document, for rendering and tests.
func (m *Model) Buffer() *buffer.Buffer {
	return m.buf
}

// Navigator exposes the page navigator, for rendering and tests.
func (m *Model) Navigator() *pages.Navigator {
	return m.nav
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.statusMsg = err.Error()
	m.statusErr = true
	log.Warnf("recovered: %v", err)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.dispatch(msg)
	}
	return m, nil
}

// dispatch routes one key event by the current mode. Errors from the
// handlers never escape: they become the status message and the loop
// keeps running in whatever mode the handler left behind.
func (m *Model) dispatch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.mode = Quit
		return m, tea.Quit
	}

	// The status line reflects the outcome of this dispatch only.
	m.statusMsg = ""
	m.statusErr = false

	var cmd tea.Cmd
	switch m.mode {
	case Command:
		cmd = m.handleCommand(msg)
	case OpenDirectory:
		cmd = m.handleOpenDirectory(msg)
	case OpenFile:
		cmd = m.handleOpenFile(msg)
	case Input:
		cmd = m.handleInput(msg)
	case Selection:
		cmd = m.handleSelection(msg)
	case Search:
		cmd = m.handleSearch(msg)
	case History:
		cmd = m.handleHistory(msg)
	case Quit:
		// terminal state, keys are ignored
	}

	m.ensureCursorVisible()
	return m, cmd
}

func (m *Model) handleCommand(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.mode = Quit
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.OpenDir):
		m.mode = OpenDirectory
		m.dirInput.CursorEnd()
		return m.dirInput.Focus()

	case key.Matches(msg, m.keys.OpenPage):
		m.mode = OpenFile
		m.pageInput.SetValue(m.nav.PageToken())
		m.pageInput.CursorEnd()
		return m.pageInput.Focus()

	case key.Matches(msg, m.keys.Insert):
		m.mode = Input

	case key.Matches(msg, m.keys.StartSearch):
		m.mode = Search
		m.searchInput.CursorEnd()
		return m.searchInput.Focus()

	case key.Matches(msg, m.keys.History):
		m.mode = History

	case key.Matches(msg, m.keys.Select):
		m.buf.StartSelection()
		m.mode = Selection

	case key.Matches(msg, m.keys.NextPage):
		if err := m.nav.Next(m.buf); err != nil {
			m.setError(err)
		} else {
			m.setStatus("page " + m.nav.PageToken())
		}

	case key.Matches(msg, m.keys.PrevPage):
		if err := m.nav.Prev(m.buf); err != nil {
			m.setError(err)
		} else {
			m.setStatus("page " + m.nav.PageToken())
		}

	case key.Matches(msg, m.keys.Save):
		if err := m.nav.Save(m.buf); err != nil {
			m.setError(err)
		} else {
			m.setStatus("saved " + m.nav.PageToken())
		}

	case key.Matches(msg, m.keys.Reflow):
		m.buf.Reflow()
		m.setStatus("reflowed long gaps")

	case key.Matches(msg, m.keys.Marker):
		m.buf.InsertText("###")

	case key.Matches(msg, m.keys.CopyAll):
		if err := copyAll(m.buf.Text()); err != nil {
			m.setError(err)
		} else {
			m.setStatus("copied page to clipboard")
		}

	default:
		if mv, ok := m.movementFor(msg); ok {
			mv.Extend = false
			m.buf.Move(mv)
		}
	}
	return nil
}

func (m *Model) handleOpenDirectory(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.dirInput.SetValue(m.nav.Directory())
		m.dirInput.Blur()
		m.mode = Command

	case key.Matches(msg, m.keys.Confirm):
		if err := m.nav.OpenDirectory(m.dirInput.Value(), m.buf); err != nil {
			m.setError(err)
			return nil
		}
		m.dirInput.Blur()
		m.mode = Command
		m.setStatus(fmt.Sprintf("opened %s (%d pages)", m.nav.Directory(), m.nav.PageCount()))

	default:
		var cmd tea.Cmd
		m.dirInput, cmd = m.dirInput.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleOpenFile(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.pageInput.Blur()
		m.mode = Command

	case key.Matches(msg, m.keys.Confirm):
		id, err := pages.ParseID(m.pageInput.Value())
		if err != nil {
			m.setError(err)
			return nil
		}
		if err := m.nav.Load(id, m.buf); err != nil {
			m.setError(err)
			return nil
		}
		m.pageInput.Blur()
		m.mode = Command
		m.setStatus("page " + m.nav.PageToken())

	default:
		var cmd tea.Cmd
		m.pageInput, cmd = m.pageInput.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = Command
	case tea.KeyEnter:
		m.buf.InsertNewline()
	case tea.KeyBackspace:
		m.buf.DeleteBackward()
	case tea.KeyTab:
		m.buf.InsertText("\t")
	case tea.KeySpace:
		m.buf.InsertText(" ")
	case tea.KeyRunes:
		m.buf.InsertText(string(msg.Runes))
	}
	return nil
}

func (m *Model) handleSelection(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.buf.ClearSelection()
		m.mode = Command

	case key.Matches(msg, m.keys.Cut):
		if removed, ok := m.buf.CutSelection(); ok {
			m.setStatus(fmt.Sprintf("cut %d characters", len([]rune(removed))))
		}
		m.mode = Command

	default:
		if mv, ok := m.movementFor(msg); ok {
			mv.Extend = true
			m.buf.Move(mv)
		}
	}
	return nil
}

func (m *Model) handleSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Abort):
		// The last successfully compiled pattern stays in effect.
		m.searchInput.Blur()
		m.mode = Command

	case key.Matches(msg, m.keys.ConfirmReverse):
		if err := m.engine.Compile(m.searchInput.Value()); err != nil {
			m.setError(err)
			return nil
		}
		if !m.buf.SearchBackward(m.engine) {
			m.setStatus("no match")
		}

	case key.Matches(msg, m.keys.Confirm):
		if err := m.engine.Compile(m.searchInput.Value()); err != nil {
			m.setError(err)
			return nil
		}
		if !m.buf.SearchForward(m.engine) {
			m.setStatus("no match")
		}

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleHistory(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Abort):
		m.mode = Command

	case key.Matches(msg, m.keys.Undo):
		if !m.buf.Undo() {
			m.setStatus("nothing to undo")
		}

	case key.Matches(msg, m.keys.Redo):
		if !m.buf.Redo() {
			m.setStatus("nothing to redo")
		}
	}
	return nil
}

// movementFor maps a key to the shared movement submodel used by both
// Command and Selection mode.
func (m *Model) movementFor(msg tea.KeyMsg) (buffer.Move, bool) {
	switch {
	case key.Matches(msg, m.keys.WordForward):
		return buffer.Move{Unit: buffer.UnitWord, Dir: buffer.DirRight}, true
	case key.Matches(msg, m.keys.WordBack):
		return buffer.Move{Unit: buffer.UnitWord, Dir: buffer.DirLeft}, true
	case key.Matches(msg, m.keys.ParaForward):
		return buffer.Move{Unit: buffer.UnitParagraph, Dir: buffer.DirDown}, true
	case key.Matches(msg, m.keys.ParaBack):
		return buffer.Move{Unit: buffer.UnitParagraph, Dir: buffer.DirUp}, true
	case key.Matches(msg, m.keys.LineHead):
		return buffer.Move{Unit: buffer.UnitLine, Dir: buffer.DirHead}, true
	case key.Matches(msg, m.keys.LineEnd):
		return buffer.Move{Unit: buffer.UnitLine, Dir: buffer.DirEnd}, true
	case key.Matches(msg, m.keys.Left):
		return buffer.Move{Unit: buffer.UnitChar, Dir: buffer.DirLeft}, true
	case key.Matches(msg, m.keys.Right):
		return buffer.Move{Unit: buffer.UnitChar, Dir: buffer.DirRight}, true
	case key.Matches(msg, m.keys.Up):
		return buffer.Move{Unit: buffer.UnitChar, Dir: buffer.DirUp}, true
	case key.Matches(msg, m.keys.Down):
		return buffer.Move{Unit: buffer.UnitChar, Dir: buffer.DirDown}, true
	}
	return buffer.Move{}, false
}

func (m *Model) ensureCursorVisible() {
	contentHeight := m.contentHeight()
	if contentHeight <= 0 {
		return
	}
	row := m.buf.Cursor().Row
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+contentHeight {
		m.scroll = row - contentHeight + 1
	}
	if max := m.buf.LineCount() - 1; m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
