package app

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/autometrics-dev/render-prometheus/internal/envsource"
	"github.com/autometrics-dev/render-prometheus/internal/hclcfg"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	source *envsource.Source
	loader *hclcfg.Loader

	// rendered flips once the document has been written; the health
	// endpoint reports readiness from it.
	rendered atomic.Bool
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. A nil source means
// the process environment.
func NewApp(outW io.Writer, config *Config, source *envsource.Source) *App {
	logger := newLogger(config, outW)
	logger.Debug("Logger configured successfully.")

	if source == nil {
		source = envsource.New()
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		source: source,
		loader: hclcfg.NewLoader(),
	}
}
