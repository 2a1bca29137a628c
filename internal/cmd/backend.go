package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/frib-daq/genx/internal/codegen/generator"
	"github.com/frib-daq/genx/internal/ir/wire"
)

// ErrInteractiveInput is returned when a command expecting an IR stream
// finds a terminal on stdin.
var ErrInteractiveInput = errors.New("stdin is a terminal; pipe the parser output into this command")

// Backend is the command line of rootgenerate and specgenerate. The target
// is fixed by the executable, not chosen by the user.
type Backend struct {
	Basename string `arg:"" name:"basename" help:"Base name of the generated files, optionally with a directory"`

	Target string `kong:"-"`
}

var backendDescriptions = map[string]string{
	"root":    "Generate C++ ROOT TTree event structures from an IR stream on stdin",
	"spectcl": "Generate C++ SpecTcl tree parameter structures from an IR stream on stdin",
}

// NewBackendParser builds the command line of the backend executable for
// target. Usage and errors both go to stderr, since stdout is never part of
// a backend's output. opts are applied last.
func NewBackendParser(target string, stderr io.Writer, opts ...kong.Option) (*kong.Kong, *Backend, error) {
	name, ok := Backends[target]
	if !ok {
		return nil, nil, fmt.Errorf("unsupported target %q", target)
	}
	cli := &Backend{Target: target}
	all := []kong.Option{
		kong.Name(name),
		kong.Description(backendDescriptions[target]),
		kong.UsageOnError(),
		kong.Writers(stderr, stderr),
	}
	parser, err := kong.New(cli, append(all, opts...)...)
	if err != nil {
		return nil, nil, err
	}
	return parser, cli, nil
}

// Run decodes a program from stdin and writes the target's files.
func (b *Backend) Run(logger *slog.Logger, stdin io.Reader) error {
	if err := refuseTerminal(stdin); err != nil {
		return err
	}
	prog, err := wire.NewDecoder(stdin).Decode()
	if err != nil {
		return fmt.Errorf("read IR from stdin: %w", err)
	}
	logger.Debug("Decoded program", "types", len(prog.Types), "instances", len(prog.Instances))
	return generator.New(logger).Generate(b.Target, b.Basename, prog)
}

func refuseTerminal(r io.Reader) error {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ErrInteractiveInput
	}
	return nil
}
