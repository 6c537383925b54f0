package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "DEBUG", Output: &buf})
	assert.Equal(t, log.DebugLevel, l.GetLevel())

	l.Debug("hello", "k", "v")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNewFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "loud", Output: &buf})
	assert.Equal(t, log.WarnLevel, l.GetLevel())

	l.Info("quiet")
	assert.Empty(t, buf.String())
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	assert.Equal(t, log.FatalLevel, l.GetLevel())
}

func TestNewWritesToFile(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "quotes.log")
	l := New(Config{Level: "info", Output: &buf, File: file})

	l.Info("to file", "n", 1)
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to file\"")
	assert.Contains(t, string(data), "n=1")
}
