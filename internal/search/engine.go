// Package search compiles user-supplied patterns and scans buffer lines
// for matches. Positions are (row, rune column) pairs; searches never
// wrap past the ends of the buffer.
package search

import (
	"regexp"
	"unicode/utf8"

	"folio/internal/errors"
)

// Engine wraps the currently-compiled search pattern. The zero value is
// unusable; construct with New so the matcher is compiled eagerly.
type Engine struct {
	pattern string
	re      *regexp.Regexp
}

// New compiles pattern into a ready engine.
func New(pattern string) (*Engine, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.NewPatternError("bad search pattern", pattern, err)
	}
	return &Engine{pattern: pattern, re: re}, nil
}

// Pattern returns the source of the compiled pattern.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Compile replaces the engine's pattern. On failure the previously
// compiled pattern stays in effect.
func (e *Engine) Compile(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return errors.NewPatternError("bad search pattern", pattern, err)
	}
	e.pattern = pattern
	e.re = re
	return nil
}

// MatchRanges returns the rune-column [start, end) ranges of every match
// in line, for highlighting.
func (e *Engine) MatchRanges(line string) [][2]int {
	idx := e.re.FindAllStringIndex(line, -1)
	if len(idx) == 0 {
		return nil
	}
	out := make([][2]int, 0, len(idx))
	for _, m := range idx {
		out = append(out, [2]int{
			utf8.RuneCountInString(line[:m[0]]),
			utf8.RuneCountInString(line[:m[1]]),
		})
	}
	return out
}

// FindForward returns the first match strictly after (fromRow, fromCol)
// in document order. It does not wrap: ok is false when no match exists
// between the cursor and the end of the buffer.
func (e *Engine) FindForward(lines []string, fromRow, fromCol int) (row, col int, ok bool) {
	for r := fromRow; r < len(lines); r++ {
		for _, m := range e.MatchRanges(lines[r]) {
			if r == fromRow && m[0] <= fromCol {
				continue
			}
			return r, m[0], true
		}
	}
	return 0, 0, false
}

// FindBackward returns the last match strictly before (fromRow, fromCol)
// in document order, without wrapping.
func (e *Engine) FindBackward(lines []string, fromRow, fromCol int) (row, col int, ok bool) {
	for r := fromRow; r >= 0; r-- {
		ranges := e.MatchRanges(lines[r])
		for i := len(ranges) - 1; i >= 0; i-- {
			m := ranges[i]
			if r == fromRow && m[0] >= fromCol {
				continue
			}
			return r, m[0], true
		}
	}
	return 0, 0, false
}
