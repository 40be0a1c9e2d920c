// Package launcher is the outward-facing half of the renderer: it persists
// the assembled document and starts the Prometheus process pointed at it.
// The assembly core never touches the filesystem or spawns processes; this
// package is the only place that does.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/autometrics-dev/render-prometheus/internal/ctxlog"
)

// WriteConfig persists the rendered document at path, creating parent
// directories as needed. The write goes through a temporary file in the same
// directory followed by a rename, so a crash mid-write never leaves a
// partial document at the destination.
func WriteConfig(ctx context.Context, path string, data []byte) error {
	logger := ctxlog.FromContext(ctx)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary config file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set config permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move config into place: %w", err)
	}

	logger.Debug("Configuration written.", "path", path, "bytes", len(data))
	return nil
}

// EnsureDirs creates each directory (and parents) if absent.
func EnsureDirs(paths ...string) error {
	for _, path := range paths {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", path, err)
		}
	}
	return nil
}

// Spec describes the process to launch.
type Spec struct {
	// Binary is the Prometheus executable, resolved through PATH.
	Binary string
	// ConfigPath is passed as --config.file.
	ConfigPath string
	// DataDir is passed as --storage.tsdb.path when non-empty.
	DataDir string
	// ExtraArgs are appended verbatim after the generated flags.
	ExtraArgs []string
	// Stdout and Stderr receive the child's output; nil means discard.
	Stdout, Stderr io.Writer
}

// Args returns the full argument list the child is started with.
func (s Spec) Args() []string {
	args := []string{"--config.file=" + s.ConfigPath}
	if s.DataDir != "" {
		args = append(args, "--storage.tsdb.path="+s.DataDir)
	}
	return append(args, s.ExtraArgs...)
}

// Launch starts the process and blocks until it exits. SIGINT and SIGTERM
// are forwarded to the child as SIGTERM, with a grace window before the
// child is killed outright. A non-zero child exit surfaces as a wrapped
// *exec.ExitError.
func Launch(ctx context.Context, spec Spec) error {
	logger := ctxlog.FromContext(ctx)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := exec.CommandContext(ctx, spec.Binary, spec.Args()...)
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = 30 * time.Second

	logger.Info("🚀 Launching Prometheus.", "binary", spec.Binary, "args", spec.Args())
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("prometheus exited: %w", err)
	}
	logger.Info("🏁 Prometheus exited cleanly.")
	return nil
}
