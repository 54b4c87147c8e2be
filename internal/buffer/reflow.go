package buffer

import (
	"regexp"
	"strings"
)

// longRuns matches maximal runs of three or more horizontal whitespace
// characters. OCR output often encodes line breaks as wide gaps; reflow
// turns each such gap back into a break. Compiled once at startup.
var longRuns = regexp.MustCompile(`[^\n\S]{3,}`)

// Reflow replaces every long whitespace run in the buffer with a line
// break and rebuilds the content wholesale, discarding selection and
// undo history. Applying it twice yields the same result as once.
func (b *Buffer) Reflow() {
	text := longRuns.ReplaceAllString(b.Text(), "\n")
	b.ReplaceAll(strings.Split(text, "\n"))
}
