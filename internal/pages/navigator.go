// Package pages maps numeric page ids to files in the working directory
// and moves page content in and out of the document buffer. A page id n
// names the file <dir>/<n zero-padded to 3 digits>.txt.
package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gobwas/glob"

	"folio/internal/errors"
	"folio/internal/log"
)

// pageShape matches the file names that count as pages when a directory
// is opened. Compiled once at startup.
var pageShape = glob.MustCompile("[0-9][0-9][0-9].txt")

// Document is the buffer surface the navigator needs: read all lines
// for save, replace them wholesale on load.
type Document interface {
	Lines() []string
	ReplaceAll(lines []string)
}

// Navigator tracks the working directory, the current page id, and the
// page count cached at open time. The count only feeds the progress
// indicator; it never bounds navigation.
type Navigator struct {
	dir    string
	id     int
	count  int
	opened bool
}

// New returns a navigator with no directory opened.
func New() *Navigator {
	return &Navigator{}
}

// Directory returns the opened directory, or "" before any open.
func (n *Navigator) Directory() string { return n.dir }

// PageID returns the current page id.
func (n *Navigator) PageID() int { return n.id }

// PageToken returns the current id as its zero-padded file token.
func (n *Navigator) PageToken() string { return FormatID(n.id) }

// PageCount returns the number of page files counted when the directory
// was opened.
func (n *Navigator) PageCount() int { return n.count }

// Opened reports whether a directory has been opened.
func (n *Navigator) Opened() bool { return n.opened }

// FormatID renders a page id as its fixed-width file token.
func FormatID(id int) string {
	return fmt.Sprintf("%03d", id)
}

// ParseID parses a user-entered page id token.
func ParseID(token string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || id < 0 {
		return 0, errors.NewParseError("not a page id", token, nil)
	}
	return id, nil
}

// OpenDirectory makes dir the working directory, recounts its page
// files, and loads page 0 into doc. The count is a snapshot: later
// external changes to the directory are not tracked.
func (n *Navigator) OpenDirectory(dir string, doc Document) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.NewPageError("cannot open directory", dir, err)
	}

	count := 0
	for _, entry := range entries {
		if entry.Type().IsRegular() && pageShape.Match(entry.Name()) {
			count++
		}
	}

	n.dir = dir
	n.count = count
	n.opened = true
	log.Infof("opened %s: %d pages", dir, count)
	return n.Load(0, doc)
}

// Load reads page id into doc, replacing its content wholesale. The
// current page id is updated only after the read succeeds, so a failed
// load leaves both the buffer and the navigator position untouched.
func (n *Navigator) Load(id int, doc Document) error {
	if id < 0 {
		return errors.NewParseError("not a page id", strconv.Itoa(id), nil)
	}
	path := filepath.Join(n.dir, FormatID(id)+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewPageError("cannot read page", path, err)
	}

	n.id = id
	doc.ReplaceAll(splitPage(string(data)))
	log.Debugf("loaded page %s", n.PageToken())
	return nil
}

// Save writes doc's lines to the current page file. The write goes to a
// temp file in the same directory and is renamed over the target, so a
// crash mid-save cannot lose the previous content.
func (n *Navigator) Save(doc Document) error {
	path := filepath.Join(n.dir, n.PageToken()+".txt")
	tmp, err := os.CreateTemp(n.dir, n.PageToken()+".*.tmp")
	if err != nil {
		return errors.NewPageError("cannot write page", path, err)
	}
	tmpName := tmp.Name()

	_, err = tmp.WriteString(joinPage(doc.Lines()))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		os.Remove(tmpName)
		return errors.NewPageError("cannot write page", path, err)
	}
	log.Debugf("saved page %s", n.PageToken())
	return nil
}

// Next loads the page after the current one.
func (n *Navigator) Next(doc Document) error {
	return n.Load(n.id+1, doc)
}

// Prev loads the page before the current one, clamping at page 0.
func (n *Navigator) Prev(doc Document) error {
	if n.id == 0 {
		return errors.New("already at first page")
	}
	return n.Load(n.id-1, doc)
}

// splitPage turns raw file content into buffer lines, stripping a
// single trailing newline so that save restores it byte-identically.
func splitPage(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// joinPage is the inverse of splitPage: lines joined with newlines plus
// one trailing newline.
func joinPage(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
