package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "folio.log")
	require.NoError(t, Init(path, "debug"))

	Infof("opened %s", "pages")
	Debugf("cursor at %d,%d", 3, 7)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "opened pages")
	assert.Contains(t, string(data), "cursor at 3,7")
}

func TestInitEmptyPathDisablesLogging(t *testing.T) {
	require.NoError(t, Init("", "info"))

	var buf bytes.Buffer
	// Discard logger should not blow up, and a redirected one should log.
	Warnf("ignored")
	SetOutput(&buf)
	Warnf("captured")
	assert.Contains(t, buf.String(), "captured")
	assert.NotContains(t, buf.String(), "ignored")
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")
	require.NoError(t, Init(path, "chatty"))

	Debugf("below level")
	Infof("at level")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "below level")
	assert.Contains(t, string(data), "at level")
}

func TestWithField(t *testing.T) {
	require.NoError(t, Init("", "info"))
	var buf bytes.Buffer
	SetOutput(&buf)
	logger.SetLevel(logrus.InfoLevel)

	WithField("page", "004").Info("loaded")
	assert.Contains(t, buf.String(), "page=004")
}
