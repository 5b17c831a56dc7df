// Package logging sets up the structured logger shared by all linguist components.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w; debug enables debug level output
func New(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "linguist",
	})
}

// Discard returns a logger that drops everything, used by tests and
// components constructed without a logger
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OpenFile opens (appending) a log file below dir, creating dir as needed.
// The terminal UI logs here so that log lines do not corrupt the screen.
func OpenFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "linguist.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
