// Package logging opens the application log. The terminal belongs to the
// TUI, so logs go to a file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	appName     = "toasty"
	logFileName = "toasty.log"
)

// Open creates a JSON logger appending to the state-dir log file. The
// returned closer must be called on shutdown.
func Open(level string) (zerolog.Logger, io.Closer, error) {
	path, err := xdg.StateFile(filepath.Join(appName, logFileName))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("resolve log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

// New builds a logger writing to w at the named level (info when the name
// is empty or unknown).
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
