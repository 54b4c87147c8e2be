package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/config"
	"folio/internal/errors"
)

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New("[")
	require.Error(t, err)
	assert.True(t, errors.IsBadPattern(err))
}

func TestCompileKeepsOldPatternOnFailure(t *testing.T) {
	e, err := New("foo")
	require.NoError(t, err)

	require.Error(t, e.Compile("("))
	assert.Equal(t, "foo", e.Pattern())

	_, _, ok := e.FindForward([]string{"x foo y"}, 0, 0)
	assert.True(t, ok)
}

func TestDefaultPatternMatchesTranscriptionArtifacts(t *testing.T) {
	e, err := New(config.DefaultSearchPattern)
	require.NoError(t, err)

	for _, line := range []string{"page 12", "fol. 3v", "f. 17", "scan0004", "117"} {
		assert.NotEmpty(t, e.MatchRanges(line), "expected a match in %q", line)
	}
	assert.Empty(t, e.MatchRanges("plain prose without markers"))
}

func TestFindForward(t *testing.T) {
	e, err := New(`\d+`)
	require.NoError(t, err)
	lines := []string{"no digits", "page 12 and 34", "56"}

	row, col, ok := e.FindForward(lines, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 5, col)

	// Strictly after: a match at the cursor itself is skipped
	row, col, ok = e.FindForward(lines, 1, 5)
	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 12, col)

	row, col, ok = e.FindForward(lines, 1, 12)
	require.True(t, ok)
	assert.Equal(t, 2, row)
	assert.Equal(t, 0, col)

	// No wrap past end of buffer
	_, _, ok = e.FindForward(lines, 2, 0)
	assert.False(t, ok)
}

func TestFindBackward(t *testing.T) {
	e, err := New(`\d+`)
	require.NoError(t, err)
	lines := []string{"12", "no digits", "34 then 56"}

	row, col, ok := e.FindBackward(lines, 2, 8)
	require.True(t, ok)
	assert.Equal(t, 2, row)
	assert.Equal(t, 0, col)

	row, col, ok = e.FindBackward(lines, 2, 0)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	// No wrap past start of buffer
	_, _, ok = e.FindBackward(lines, 0, 0)
	assert.False(t, ok)
}

func TestMatchRangesUsesRuneColumns(t *testing.T) {
	e, err := New(`\d+`)
	require.NoError(t, err)

	ranges := e.MatchRanges("héllo 42")
	require.Len(t, ranges, 1)
	assert.Equal(t, [2]int{6, 8}, ranges[0])
}
