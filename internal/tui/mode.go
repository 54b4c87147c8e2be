package tui

// Mode is the single active input-interpretation state. Exactly one
// mode is active at a time; every key is routed by the current mode.
type Mode int

const (
	// Command is the default mode for navigation and page operations
	Command Mode = iota
	// OpenDirectory is the directory-path prompt
	OpenDirectory
	// OpenFile is the page-number prompt
	OpenFile
	// Input forwards keys verbatim to the buffer
	Input
	// Selection extends a span with the movement keys
	Selection
	// Search is the pattern prompt
	Search
	// History replays undo/redo
	History
	// Quit is terminal; the program is shutting down
	Quit
)

func (m Mode) String() string {
	switch m {
	case Command:
		return "COMMAND"
	case OpenDirectory:
		return "OPEN DIR"
	case OpenFile:
		return "OPEN PAGE"
	case Input:
		return "INPUT"
	case Selection:
		return "SELECT"
	case Search:
		return "SEARCH"
	case History:
		return "HISTORY"
	case Quit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}
