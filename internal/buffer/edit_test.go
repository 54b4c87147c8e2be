package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertText(t *testing.T) {
	b := New()
	b.InsertText("hello")
	assert.Equal(t, []string{"hello"}, b.Lines())
	assert.Equal(t, Pos{Row: 0, Col: 5}, b.Cursor())

	b.SetCursor(Pos{Row: 0, Col: 5})
	b.InsertText(" world")
	assert.Equal(t, []string{"hello world"}, b.Lines())
}

func TestInsertTextWithNewlines(t *testing.T) {
	b := New()
	b.ReplaceAll([]string{"headtail"})
	b.SetCursor(Pos{Row: 0, Col: 4})

	b.InsertText("a\nb\nc")
	assert.Equal(t, []string{"heada", "b", "ctail"}, b.Lines())
	assert.Equal(t, Pos{Row: 2, Col: 1}, b.Cursor())
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	b := New()
	b.ReplaceAll([]string{"foobar"})
	b.SetCursor(Pos{Row: 0, Col: 3})

	b.InsertNewline()
	assert.Equal(t, []string{"foo", "bar"}, b.Lines())
	assert.Equal(t, Pos{Row: 1, Col: 0}, b.Cursor())
}

func TestDeleteBackward(t *testing.T) {
	b := New()
	b.ReplaceAll([]string{"ab", "cd"})

	// At buffer start: no-op, no history entry
	b.DeleteBackward()
	assert.Equal(t, []string{"ab", "cd"}, b.Lines())
	assert.False(t, b.CanUndo())

	// At line start: joins with the previous line
	b.SetCursor(Pos{Row: 1, Col: 0})
	b.DeleteBackward()
	assert.Equal(t, []string{"abcd"}, b.Lines())
	assert.Equal(t, Pos{Row: 0, Col: 2}, b.Cursor())

	b.DeleteBackward()
	assert.Equal(t, []string{"acd"}, b.Lines())
}

func TestCutSelectionScenario(t *testing.T) {
	// Enter selection, extend word-forward twice, cut; then undo and redo.
	b := New()
	b.ReplaceAll([]string{"foo bar baz"})
	b.StartSelection()
	b.Move(Move{Unit: UnitWord, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: UnitWord, Dir: DirRight, Extend: true})

	removed, ok := b.CutSelection()
	require.True(t, ok)
	assert.Equal(t, "foo bar", removed)
	assert.Equal(t, []string{" baz"}, b.Lines())
	assert.Equal(t, Pos{}, b.Cursor())
	_, active := b.Selection()
	assert.False(t, active)
	assert.True(t, b.CanUndo())
	assert.False(t, b.CanRedo())

	require.True(t, b.Undo())
	assert.Equal(t, []string{"foo bar baz"}, b.Lines())
	assert.True(t, b.CanRedo())

	require.True(t, b.Redo())
	assert.Equal(t, []string{" baz"}, b.Lines())
}

func TestCutWithoutSelection(t *testing.T) {
	b := New()
	b.ReplaceAll([]string{"text"})
	_, ok := b.CutSelection()
	assert.False(t, ok)
	assert.False(t, b.CanUndo())

	// An empty selection cuts nothing either
	b.StartSelection()
	_, ok = b.CutSelection()
	assert.False(t, ok)
}

func TestCutMultiLineSelection(t *testing.T) {
	b := New()
	b.ReplaceAll([]string{"abc", "def", "ghi"})
	b.SetCursor(Pos{Row: 0, Col: 2})
	b.StartSelection()
	b.SetCursor(Pos{Row: 2, Col: 1})

	removed, ok := b.CutSelection()
	require.True(t, ok)
	assert.Equal(t, "c\ndef\ng", removed)
	assert.Equal(t, []string{"abhi"}, b.Lines())

	require.True(t, b.Undo())
	assert.Equal(t, []string{"abc", "def", "ghi"}, b.Lines())
}

func TestUndoRedoEmptyStacksAreNoOps(t *testing.T) {
	b := New()
	assert.False(t, b.Undo())
	assert.False(t, b.Redo())
}

func TestNewEditClearsRedo(t *testing.T) {
	b := New()
	b.InsertText("one")
	require.True(t, b.Undo())
	require.True(t, b.CanRedo())

	b.InsertText("two")
	assert.False(t, b.CanRedo())
	assert.Equal(t, []string{"two"}, b.Lines())
}

func TestUndoChainRestoresOriginal(t *testing.T) {
	b := New()
	b.ReplaceAll([]string{"base"})
	b.SetCursor(Pos{Row: 0, Col: 4})
	b.InsertText(" plus")
	b.InsertNewline()
	b.InsertText("more")
	assert.Equal(t, []string{"base plus", "more"}, b.Lines())

	for b.Undo() {
	}
	assert.Equal(t, []string{"base"}, b.Lines())

	for b.Redo() {
	}
	assert.Equal(t, []string{"base plus", "more"}, b.Lines())
}
