package telemetry

import (
	"log/slog"
	"os"
)

// SetupSlog installs the default text handler used by the cmd
// entrypoints. verbose enables debug output.
func SetupSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
