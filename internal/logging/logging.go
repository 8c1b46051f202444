// Package logging configures logrus for the app. The terminal belongs to the
// TUI, so entries go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// New returns a logger writing to path at the given level. The returned closer
// releases the log file.
func New(path, level string) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	lg := NewWithWriter(f, level)
	return lg, f, nil
}

func NewWithWriter(w io.Writer, level string) *log.Logger {
	lg := log.New()
	lg.SetOutput(w)
	lg.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	lg.SetLevel(lvl)
	return lg
}
