// Package log is folio's logging facade. The TUI owns the terminal, so
// all output goes to a log file; without a configured file, logging is
// disabled entirely.
package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init points the logger at the given file, creating parent directories
// as needed. An empty path keeps logging disabled.
func Init(path, level string) error {
	if path == "" {
		logger = newDiscardLogger()
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger = l
	return nil
}

// SetOutput redirects log output, used by tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Infof logs a formatted message
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// WithField returns an entry with a single structured field attached.
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}
