package app

import (
	"context"
	"fmt"
	"os"

	"github.com/autometrics-dev/render-prometheus/internal/ctxlog"
	"github.com/autometrics-dev/render-prometheus/internal/launcher"
	"github.com/autometrics-dev/render-prometheus/internal/promcfg"
)

// Run executes the full lifecycle: gather inputs, assemble the document,
// write it, and hand off to Prometheus. Any error before the write aborts
// with nothing on disk; render-only mode stops after echoing the document.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// The health endpoint comes up before any work so it can answer 503
	// while the document is still being rendered.
	if a.config.HealthcheckPort > 0 && !a.config.RenderOnly {
		go a.startHealthcheckServer(a.config.HealthcheckPort)
	}

	assembler, err := a.gather(ctx)
	if err != nil {
		return fmt.Errorf("failed to gather configuration inputs: %w", err)
	}

	tree, err := assembler.Assemble(ctx)
	if err != nil {
		return fmt.Errorf("failed to assemble configuration: %w", err)
	}
	a.logger.Info("Configuration assembled.", "targets", len(assembler.Targets), "global_options", len(assembler.GlobalOptions))

	data, err := tree.YAML()
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	if err := launcher.WriteConfig(ctx, a.config.OutputPath, data); err != nil {
		return err
	}
	a.rendered.Store(true)
	a.logger.Info("📄 Configuration rendered.", "path", a.config.OutputPath)

	if a.config.RenderOnly {
		fmt.Fprint(a.outW, string(data))
		a.logger.Debug("Render-only mode, skipping launch.")
		return nil
	}

	if err := launcher.EnsureDirs(a.config.DataDir); err != nil {
		return err
	}

	return launcher.Launch(ctx, launcher.Spec{
		Binary:     a.config.PrometheusBin,
		ConfigPath: a.config.OutputPath,
		DataDir:    a.config.DataDir,
		ExtraArgs:  a.config.PrometheusArgs,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	})
}

// gather combines environment input with the optional HCL overlay. Overlay
// options apply after environment options, so on scalar fields the overlay
// wins; overlay targets append after the (sorted) environment targets.
func (a *App) gather(ctx context.Context) (*promcfg.Assembler, error) {
	inputs, err := a.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	assembler := &promcfg.Assembler{
		GlobalOptions: inputs.GlobalOptions,
		Targets:       inputs.Targets,
	}

	if a.config.OverlayPath != "" {
		overlay, err := a.loader.Load(ctx, a.config.OverlayPath)
		if err != nil {
			return nil, err
		}
		assembler.GlobalOptions = append(assembler.GlobalOptions, overlay.GlobalOptions...)
		assembler.Targets = append(assembler.Targets, overlay.Targets...)
	}

	return assembler, nil
}
