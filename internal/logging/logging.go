package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Logger is the public logger instance accessible from all packages. It
// discards everything until Initialize is called, so library code can log
// unconditionally.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize sets up the logger. Debug logging can also be forced through
// the DESIGNTRACK_DEBUG environment variable, which child processes
// inherit.
func Initialize(debug bool) error {
	if os.Getenv("DESIGNTRACK_DEBUG") == "1" {
		debug = true
	}
	if !debug {
		return nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// One file per run keeps concurrent invocations from interleaving
	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s.log", uuid.New().String()))
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	Logger.Info("debug logging initialized", "log_file", logFilePath)

	return nil
}

// getLogDir returns the log directory, honoring XDG_STATE_HOME on systems
// that set it.
func getLogDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "designtrack"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".designtrack", "logs"), nil
}
