package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	gojson "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"

	"github.com/frib-daq/genx/internal/ir"
	"github.com/frib-daq/genx/internal/ir/wire"
	"github.com/frib-daq/genx/internal/log"
)

// The IR types implement Stringer; spew must show their structure instead.
var spewConfig = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

// Dump decodes a wire stream and prints the program it carries.
type Dump struct {
	Format string `help:"Output format: text, json, yaml or spew" short:"f" enum:"text,json,yaml,spew" default:"text"`
	Input  string `arg:"" optional:"" type:"existingfile" help:"Wire file to read instead of stdin"`
}

// Run is called by Kong when the dump command is executed.
func (d *Dump) Run(logger *slog.Logger, raw log.RawLogger) error {
	in := io.Reader(os.Stdin)
	if d.Input != "" {
		f, err := os.Open(d.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	} else if err := refuseTerminal(os.Stdin); err != nil {
		return err
	}
	return d.dump(logger, raw, in, os.Stdout)
}

func (d *Dump) dump(logger *slog.Logger, raw log.RawLogger, in io.Reader, out io.Writer) error {
	dec := wire.NewDecoder(in)
	dec.Trace(log.Writer(raw))
	prog, err := dec.Decode()
	if err != nil {
		return fmt.Errorf("decode IR: %w", err)
	}
	logger.Debug("Decoded program", "types", len(prog.Types), "instances", len(prog.Instances))

	var data []byte
	switch d.Format {
	case "text", "":
		data = []byte(prog.String())
	case "json":
		data, err = gojson.MarshalIndent(prog, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(prog)
	case "spew":
		data = []byte(spewConfig.Sdump(prog))
	default:
		return fmt.Errorf("unsupported format: %s", d.Format)
	}
	if err != nil {
		return fmt.Errorf("format %s: %w", d.Format, err)
	}
	_, err = out.Write(data)
	return err
}

// Pack turns a YAML or JSON model description into a wire stream, so the
// backends can be driven without the declaration parser.
type Pack struct {
	Input  string `arg:"" type:"existingfile" help:"Model description (.yaml, .yml or .json)"`
	Output string `short:"o" help:"Write the wire stream to this file instead of stdout" placeholder:"FILE"`
}

// Run is called by Kong when the pack command is executed.
func (p *Pack) Run(logger *slog.Logger) error {
	data, err := os.ReadFile(p.Input)
	if err != nil {
		return err
	}
	prog, err := ParseModel(data, filepath.Ext(p.Input))
	if err != nil {
		return fmt.Errorf("%s: %w", p.Input, err)
	}
	stream, err := wire.Marshal(prog)
	if err != nil {
		return err
	}
	logger.Info("Packed model", "input", p.Input, "types", len(prog.Types), "instances", len(prog.Instances), "bytes", len(stream))

	if p.Output == "" {
		if refuseTerminal(os.Stdout) != nil {
			return errors.New("stdout is a terminal; use --output or redirect")
		}
		_, err = os.Stdout.Write(stream)
		return err
	}
	return os.WriteFile(p.Output, stream, 0o644)
}

type model struct {
	Types     []modelType  `json:"types" yaml:"types"`
	Instances []modelField `json:"instances" yaml:"instances"`
}

type modelType struct {
	Name   string       `json:"name" yaml:"name"`
	Fields []modelField `json:"fields" yaml:"fields"`
}

// modelField matches ir.Field except that omitted options mean the defaults.
type modelField struct {
	Name     string           `json:"name" yaml:"name"`
	Kind     ir.Kind          `json:"kind" yaml:"kind"`
	TypeName string           `json:"typeName" yaml:"typeName"`
	Elements uint32           `json:"elements" yaml:"elements"`
	Options  *ir.ValueOptions `json:"options" yaml:"options"`
}

func (m modelField) field() ir.Field {
	opts := ir.DefaultValueOptions()
	if m.Options != nil {
		opts = *m.Options
	}
	return ir.Field{Name: m.Name, Kind: m.Kind, TypeName: m.TypeName, Elements: m.Elements, Options: opts}
}

// ParseModel decodes a model description and replays it through an
// ir.Builder, so every registry rule applies. ext selects the syntax: ".json"
// is JSON, anything else YAML.
func ParseModel(data []byte, ext string) (*ir.Program, error) {
	var m model
	var err error
	if strings.EqualFold(ext, ".json") {
		err = gojson.Unmarshal(data, &m)
	} else {
		err = yaml.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}

	b := ir.NewBuilder()
	for _, t := range m.Types {
		if err := b.DeclareType(t.Name); err != nil {
			return nil, err
		}
		for _, f := range t.Fields {
			if err := b.AddField(f.field()); err != nil {
				return nil, err
			}
		}
	}
	for _, inst := range m.Instances {
		if err := b.DeclareInstance(inst.field()); err != nil {
			return nil, err
		}
	}
	return b.Program(), nil
}
