package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds the process-wide *slog.Logger: JSON to stderr, with an optional
// tee into logFile. The logger is installed as the slog default. The returned
// cleanup closes the log file, if any; callers must defer it.
func New(level, logFile string) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	cleanup := func() {}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(os.Stderr, f)
		cleanup = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
	slog.SetDefault(logger)
	return logger, cleanup, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
