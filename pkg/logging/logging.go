// Package logging configures the charmbracelet logger shared by every command.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the logger's level and destination.
type Config struct {
	Level  string
	Output io.Writer
	Prefix string

	// File, when set, sends logs to a size-rotated file instead of Output.
	File string
}

// Rotation limits for File.
const (
	fileMaxSizeMB  = 10
	fileMaxBackups = 3
	fileMaxAgeDays = 28
)

// New builds a logger. Terminals get the text formatter, anything else gets
// logfmt so the output stays parseable when redirected.
func New(cfg Config) *log.Logger {
	out := cfg.Output
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    fileMaxSizeMB,
			MaxBackups: fileMaxBackups,
			MaxAge:     fileMaxAgeDays,
		}
	}
	if out == nil {
		out = os.Stderr
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		level = log.WarnLevel
	}
	formatter := log.LogfmtFormatter
	if isTerminal(out) {
		formatter = log.TextFormatter
	}
	return log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          cfg.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Formatter:       formatter,
	})
}

// Configure replaces the package default logger and returns it.
func Configure(cfg Config) *log.Logger {
	l := New(cfg)
	log.SetDefault(l)
	return l
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
