package impl

import (
	"io"
	"log/slog"
)

// newDiscardLogger returns a logger that swallows all output during tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
