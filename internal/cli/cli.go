package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/autometrics-dev/render-prometheus/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("render-prometheus", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
render-prometheus - Renders a Prometheus configuration from environment
variables (and an optional HCL overlay), then launches Prometheus against it.

Usage:
  render-prometheus [options] [-- prometheus args...]

Environment:
  PROM_SCRAPE_<NAME>    ;-separated scrape addresses for target <NAME>.
  PROM_OPTIONS_<NAME>   ;-separated key=value options for target <NAME>.
  PROM_GLOBAL_OPTIONS   ;-separated key=value global options.

Options:
`)
		flagSet.PrintDefaults()
	}

	outputFlag := flagSet.String("output", "/etc/prometheus/prometheus.yml", "Path the rendered configuration is written to.")
	hclFlag := flagSet.String("hcl", "", "Path to an HCL overlay file or directory.")
	binFlag := flagSet.String("prometheus-bin", "prometheus", "Prometheus executable to launch.")
	dataDirFlag := flagSet.String("data-dir", "/prometheus", "TSDB data directory, created if absent.")
	renderOnlyFlag := flagSet.Bool("render-only", false, "Render and print the configuration without launching Prometheus.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		OutputPath:      *outputFlag,
		OverlayPath:     *hclFlag,
		PrometheusBin:   *binFlag,
		DataDir:         *dataDirFlag,
		PrometheusArgs:  flagSet.Args(),
		RenderOnly:      *renderOnlyFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
