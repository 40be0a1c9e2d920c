package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// OutputPath is where the rendered document is written.
	OutputPath string
	// OverlayPath optionally points at an HCL overlay file or directory.
	OverlayPath string

	// PrometheusBin is the executable launched after rendering.
	PrometheusBin string
	// DataDir is created before launch and passed as the TSDB path.
	DataDir string
	// PrometheusArgs are passed through to the child verbatim.
	PrometheusArgs []string
	// RenderOnly skips directory creation and the launch entirely.
	RenderOnly bool

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.OutputPath == "" {
		return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
	}
	if !cfg.RenderOnly && cfg.PrometheusBin == "" {
		return nil, errors.New("PrometheusBin is required unless running render-only")
	}
	return &cfg, nil
}
