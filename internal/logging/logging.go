// Package logging sets up cmd/sqltok's structured logger. Grounded on
// multigres-multigres/go/servenv/logging.go and go/cmd/pgctld/main.go:
// both use log/slog directly rather than a third-party logging library —
// go.uber.org/zap appears in that repo's go.mod only as an indirect
// dependency of a build tool, never as the application logger, so slog is
// the grounded choice here too (see DESIGN.md).
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// New builds a *slog.Logger writing to os.Stderr at the given level
// ("debug", "info", "warn", "error"), in either "text" or "json" format.
func New(level, format string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text", "":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
	return slog.New(handler), nil
}

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (want debug, info, warn, or error)", level)
	}
}
