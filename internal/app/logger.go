package app

import (
	"io"
	"log/slog"
)

// logLevels maps the CLI's validated level names onto slog levels. An
// unknown name falls back to the zero value, which is LevelInfo.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the App's isolated logger from its validated config. The
// global logger is left alone so Apps can run side by side in tests.
func newLogger(config *Config, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevels[config.LogLevel]}
	if config.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(outW, opts))
	}
	return slog.New(slog.NewJSONHandler(outW, opts))
}
