package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/autometrics-dev/render-prometheus/internal/app"
	"github.com/autometrics-dev/render-prometheus/internal/cli"
)

// main is the entrypoint for the render-prometheus application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// Startup panics (programmer errors in wiring) are turned into a clean
	// error message instead of a bare stack trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("a critical startup error occurred: %v", r)
		}
	}()

	renderApp := app.NewApp(outW, appConfig, nil)
	return renderApp.Run(context.Background())
}
