package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
)

// Backends maps a target name to the executable that implements it.
var Backends = map[string]string{
	"root":    "rootgenerate",
	"spectcl": "specgenerate",
}

// Generate runs the declaration parser and pipes its IR into a backend.
type Generate struct {
	Target string `help:"Code generation target: root or spectcl" enum:"root,spectcl" default:"root" env:"GENX_TARGET"`
	BinDir string `help:"Directory holding the parser and backend executables (defaults to the directory of genx)" env:"GENX_BIN_DIR" placeholder:"DIR"`
	Parser string `help:"Declaration parser executable in the bin directory" default:"parser" env:"GENX_PARSER"`

	Input    string `arg:"" type:"existingfile" help:"Declaration file"`
	Basename string `arg:"" help:"Base name of the generated files"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return g.Pipeline(ctx, logger, os.Stdout, os.Stderr)
}

// Pipeline runs `parser INPUT | backend BASENAME`. Both processes share
// stdout and stderr; the error reports every stage that failed.
func (g *Generate) Pipeline(ctx context.Context, logger *slog.Logger, stdout, stderr io.Writer) error {
	backend, ok := Backends[g.Target]
	if !ok {
		return fmt.Errorf("unsupported target '%s'", g.Target)
	}
	binDir, err := g.binDir()
	if err != nil {
		return err
	}
	logger.Info("Bin dir resolved", "dir", binDir)

	r, w, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("create pipe: %w", err)
	}

	front := exec.CommandContext(ctx, filepath.Join(binDir, g.Parser), g.Input)
	front.Stdout = w
	front.Stderr = stderr

	back := exec.CommandContext(ctx, filepath.Join(binDir, backend), g.Basename)
	back.Stdin = r
	back.Stdout = stdout
	back.Stderr = stderr

	logger.Debug("Starting pipeline", "parser", front.Path, "input", g.Input, "backend", back.Path, "basename", g.Basename)
	if err := front.Start(); err != nil {
		_ = r.Close()
		_ = w.Close()
		return fmt.Errorf("start %s: %w", g.Parser, err)
	}
	if err := back.Start(); err != nil {
		_ = r.Close()
		_ = w.Close()
		_ = front.Wait()
		return fmt.Errorf("start %s: %w", backend, err)
	}
	// The children hold their own copies; closing ours lets the backend see
	// EOF when the parser exits.
	_ = r.Close()
	_ = w.Close()

	var errs []error
	if err := front.Wait(); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", g.Parser, err))
	}
	if err := back.Wait(); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", backend, err))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	logger.Info("Generation complete", "target", g.Target, "basename", g.Basename)
	return nil
}

func (g *Generate) binDir() (string, error) {
	if g.BinDir != "" {
		return g.BinDir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate genx executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
