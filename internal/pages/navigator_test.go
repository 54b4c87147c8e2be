package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/buffer"
	"folio/internal/errors"
)

func writePage(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestOpenDirectoryCountsPagesAndLoadsZero(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "000.txt", "first page\n")
	writePage(t, dir, "001.txt", "second page\n")
	writePage(t, dir, "002.txt", "third page\n")
	writePage(t, dir, "notes.md", "not a page\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "044.txt"), 0o755)) // a dir, not a page

	n := New()
	doc := buffer.New()
	require.NoError(t, n.OpenDirectory(dir, doc))

	assert.True(t, n.Opened())
	assert.Equal(t, 3, n.PageCount())
	assert.Equal(t, 0, n.PageID())
	assert.Equal(t, "000", n.PageToken())
	assert.Equal(t, []string{"first page"}, doc.Lines())
}

func TestOpenDirectoryMissing(t *testing.T) {
	n := New()
	err := n.OpenDirectory(filepath.Join(t.TempDir(), "gone"), buffer.New())
	require.Error(t, err)
	assert.True(t, errors.IsPageIO(err))
	assert.False(t, n.Opened())
}

func TestNextPrevScenario(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "000.txt", "page zero\n")
	writePage(t, dir, "001.txt", "page one\n")
	writePage(t, dir, "002.txt", "page two\n")

	n := New()
	doc := buffer.New()
	require.NoError(t, n.OpenDirectory(dir, doc))

	require.NoError(t, n.Next(doc))
	assert.Equal(t, []string{"page one"}, doc.Lines())
	require.NoError(t, n.Next(doc))
	assert.Equal(t, []string{"page two"}, doc.Lines())

	// Page 3 does not exist: I/O error, position and buffer unchanged.
	err := n.Next(doc)
	require.Error(t, err)
	assert.True(t, errors.IsPageIO(err))
	assert.Equal(t, 2, n.PageID())
	assert.Equal(t, []string{"page two"}, doc.Lines())

	// next() then prev() returns to the original page's content.
	require.NoError(t, n.Prev(doc))
	assert.Equal(t, []string{"page one"}, doc.Lines())
	assert.Equal(t, 1, n.PageID())
}

func TestPrevClampsAtZero(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "000.txt", "page zero\n")

	n := New()
	doc := buffer.New()
	require.NoError(t, n.OpenDirectory(dir, doc))

	err := n.Prev(doc)
	require.Error(t, err)
	assert.Equal(t, 0, n.PageID())
	assert.Equal(t, []string{"page zero"}, doc.Lines())
}

func TestLoadSaveRoundTripIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	content := "line one\nline two\n\nline four\n"
	writePage(t, dir, "000.txt", content)

	n := New()
	doc := buffer.New()
	require.NoError(t, n.OpenDirectory(dir, doc))
	require.NoError(t, n.Save(doc))

	data, err := os.ReadFile(filepath.Join(dir, "000.txt"))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	// No temp file debris left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveWritesEdits(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "000.txt", "original\n")

	n := New()
	doc := buffer.New()
	require.NoError(t, n.OpenDirectory(dir, doc))

	doc.SetCursor(buffer.Pos{Row: 0, Col: 8})
	doc.InsertText(" text")
	require.NoError(t, n.Save(doc))

	data, err := os.ReadFile(filepath.Join(dir, "000.txt"))
	require.NoError(t, err)
	assert.Equal(t, "original text\n", string(data))
}

func TestSaveFailsIntoMissingDirectory(t *testing.T) {
	n := New()
	n.dir = filepath.Join(t.TempDir(), "gone")
	err := n.Save(buffer.New())
	require.Error(t, err)
	assert.True(t, errors.IsPageIO(err))
}

func TestLoadMissingLeavesPositionUnchanged(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "000.txt", "page zero\n")
	writePage(t, dir, "005.txt", "page five\n")

	n := New()
	doc := buffer.New()
	require.NoError(t, n.OpenDirectory(dir, doc))
	require.NoError(t, n.Load(5, doc))
	assert.Equal(t, 5, n.PageID())

	err := n.Load(9, doc)
	require.Error(t, err)
	assert.Equal(t, 5, n.PageID())
	assert.Equal(t, []string{"page five"}, doc.Lines())
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, token := range []string{"abc", "1x", "-3", ""} {
		_, err := ParseID(token)
		require.Error(t, err, "token %q", token)
		assert.True(t, errors.IsParse(err))
	}
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "000", FormatID(0))
	assert.Equal(t, "042", FormatID(42))
	assert.Equal(t, "1000", FormatID(1000))
}
