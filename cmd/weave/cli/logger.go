package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// NewLogger creates a structured logger for CLI command operations. When
// stderr is a terminal it uses slog.TextHandler for human-readable output;
// when piped or redirected (CI, scripts, git hooks) it switches to
// slog.JSONHandler so log lines stay machine-parseable.
//
// The level comes from WEAVE_LOG (debug, info, warn, error) and defaults to
// warn so rendered artifacts on stdout stay clean.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewLogger().With("command", "render", "template", name)
func NewLogger() *slog.Logger {
	options := &slog.HandlerOptions{Level: levelFromEnv()}

	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("WEAVE_LOG")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
