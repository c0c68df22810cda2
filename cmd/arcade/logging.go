package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds the server logger on stderr.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           parseLevel(flagLogLevel),
	})
}

// newFileLogger builds a logger for full-screen commands, where stderr
// belongs to the game. It writes to ~/.arcade/arcade.log and falls back to
// discarding output. The returned closer is never nil.
func newFileLogger(prefix string) (*log.Logger, io.Closer) {
	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".arcade")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				w, closer = f, f
			}
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           parseLevel(flagLogLevel),
	}), closer
}

func parseLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
