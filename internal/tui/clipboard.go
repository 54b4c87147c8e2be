package tui

import "github.com/atotto/clipboard"

// copyAll places text on the system clipboard. Failure (e.g. no
// clipboard utility on the host) surfaces as a status message upstream,
// never as a fatal error.
func copyAll(text string) error {
	return clipboard.WriteAll(text)
}
