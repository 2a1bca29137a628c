// Package generator dispatches a decoded program to one of the C++ emitters.
package generator

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/frib-daq/genx/internal/codegen/generator/root"
	"github.com/frib-daq/genx/internal/codegen/generator/spectcl"
	"github.com/frib-daq/genx/internal/ir"
)

type Generator struct {
	logger *slog.Logger
}

// Target renders prog and writes its files next to the base name.
type Target func(logger *slog.Logger, base string, prog *ir.Program) error

var targets = map[string]Target{
	"root":    root.Generate,
	"spectcl": spectcl.Generate,
}

// Targets lists the registered target names in sorted order.
func Targets() []string {
	names := make([]string, 0, len(targets))
	for k := range targets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func New(logger *slog.Logger) *Generator {
	return &Generator{logger: logger}
}

func (g *Generator) Generate(target, base string, prog *ir.Program) error {
	gen, ok := targets[target]
	if !ok {
		return fmt.Errorf("unsupported target '%s' (supported: %v)", target, Targets())
	}

	g.logger.Debug("Generating sources", "target", target, "base", base)
	if err := gen(g.logger, base, prog); err != nil {
		return fmt.Errorf("generate %s sources: %w", target, err)
	}
	g.logger.Info("Code generation complete", "target", target, "base", base)
	return nil
}
