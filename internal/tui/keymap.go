package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the editor modes.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Mode entries from Command
	OpenDir     key.Binding
	OpenPage    key.Binding
	Insert      key.Binding
	StartSearch key.Binding
	History     key.Binding
	Select      key.Binding

	// Page operations
	NextPage key.Binding
	PrevPage key.Binding
	Save     key.Binding
	Reflow   key.Binding
	Marker   key.Binding
	CopyAll  key.Binding

	// Shared movement submodel (Command relocates, Selection extends)
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	WordForward key.Binding
	WordBack    key.Binding
	ParaForward key.Binding
	ParaBack    key.Binding
	LineHead    key.Binding
	LineEnd     key.Binding

	// Selection mode
	Cut key.Binding

	// History mode
	Undo key.Binding
	Redo key.Binding

	// Prompt modes
	Confirm        key.Binding
	ConfirmReverse key.Binding
	Abort          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "quit"),
		),

		OpenDir: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open directory"),
		),
		OpenPage: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "open page by number"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insert text"),
		),
		StartSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "undo/redo"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start selection"),
		),

		NextPage: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous page"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save page"),
		),
		Reflow: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "reflow long gaps"),
		),
		Marker: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "insert ### marker"),
		),
		CopyAll: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy page to clipboard"),
		),

		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "char left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "char right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "line up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "line down"),
		),
		WordForward: key.NewBinding(
			key.WithKeys("ctrl+right", "W"),
			key.WithHelp("ctrl+→/W", "word forward"),
		),
		WordBack: key.NewBinding(
			key.WithKeys("ctrl+left", "B"),
			key.WithHelp("ctrl+←/B", "word back"),
		),
		ParaForward: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn/ctrl+d", "paragraph forward"),
		),
		ParaBack: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup/ctrl+u", "paragraph back"),
		),
		LineHead: key.NewBinding(
			key.WithKeys("home", "^"),
			key.WithHelp("home/^", "line start"),
		),
		LineEnd: key.NewBinding(
			key.WithKeys("end", "$"),
			key.WithHelp("end/$", "line end"),
		),

		Cut: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "cut selection"),
		),

		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "redo"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		// Shift+Enter is not reported by every terminal; ctrl+r is the
		// portable fallback for a reverse search.
		ConfirmReverse: key.NewBinding(
			key.WithKeys("shift+enter", "ctrl+r"),
			key.WithHelp("shift+enter/ctrl+r", "search backward"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to command mode"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.OpenDir, k.NextPage, k.PrevPage, k.Save, k.Insert, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OpenDir, k.OpenPage, k.NextPage, k.PrevPage, k.Save},
		{k.Insert, k.Select, k.Cut, k.Reflow, k.Marker, k.CopyAll},
		{k.StartSearch, k.History, k.Undo, k.Redo},
		{k.WordForward, k.WordBack, k.ParaForward, k.ParaBack, k.LineHead, k.LineEnd},
		{k.Help, k.Quit},
	}
}
