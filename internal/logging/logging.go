package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Setup configures the process-wide slog default. With a non-empty filePath
// log lines are written both to stdout and the file. The returned closer
// releases the file and is safe to call when no file was opened.
func Setup(level, filePath string) (func() error, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	writer := io.Writer(os.Stdout)
	closer := func() error { return nil }

	if filePath != "" {
		cleanPath := filepath.Clean(filePath)
		// #nosec G304 -- path comes from the demo's own flag.
		file, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writer = io.MultiWriter(os.Stdout, file)
		closer = file.Close
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))

	return closer, nil
}

func parseLevel(raw string) (slog.Leveler, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return nil, fmt.Errorf("unsupported log level: %q", raw)
	}
}
