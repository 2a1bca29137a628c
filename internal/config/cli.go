// Package config holds the kong command line definitions of the genx
// executables.
package config

import (
	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/frib-daq/genx/internal/cmd"
	"github.com/frib-daq/genx/internal/configpaths"
	"github.com/frib-daq/genx/internal/log"
)

// Genx is the orchestrator's command line. Generate is the default command,
// so `genx --target=spectcl in.def out` works without naming it.
type Genx struct {
	Config string       `help:"Configuration file (.json, .yaml, .yml or .toml)" env:"GENX_CONFIG" placeholder:"FILE"`
	Log    log.Settings `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Run the declaration parser and pipe its IR into a backend"`
	Cfg      cmd.ConfigCommand `cmd:"" name:"config" help:"Manage configuration files"`
}

// IRTool inspects and produces wire streams.
type IRTool struct {
	Log     log.Settings `embed:"" prefix:"log."`
	RawFile string       `help:"Hex-dump the consumed IR bytes to this file" env:"GENX_RAW_FILE" placeholder:"FILE"`

	Dump cmd.Dump `cmd:"" help:"Decode a wire stream and print the program it carries"`
	Pack cmd.Pack `cmd:"" help:"Encode a YAML or JSON model description as a wire stream"`
}

// Loaders returns kong options that read configuration from the candidate
// files for userPath, JSON first, then YAML, then TOML. Flags and
// environment variables override file values.
func Loaders(userPath string) []kong.Option {
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userPath)
	return []kong.Option{
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	}
}
