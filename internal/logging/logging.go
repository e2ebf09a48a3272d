package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// PackageName is the attribute key naming the package a record came from.
const PackageName = "package"

// New returns a logger writing text records to path. With an empty path it
// returns a logger that discards everything: stdout and stderr belong to the
// menu while it runs. The returned close function is never nil.
func New(path string, debug bool) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f.Close, nil
}

// ForPackage tags every record of logger with the package name.
func ForPackage(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(slog.String(PackageName, name))
}
