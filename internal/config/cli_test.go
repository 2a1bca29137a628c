package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseGenx(t *testing.T, args []string, opts ...kong.Option) (*Genx, *kong.Context) {
	t.Helper()
	var cli Genx
	parser, err := kong.New(&cli, append([]kong.Option{kong.Name("genx"), kong.Exit(func(int) { t.Fatal("unexpected exit") })}, opts...)...)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func declFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "event.def")
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	return p
}

func TestGenxDefaultCommand(t *testing.T) {
	in := declFile(t)
	cli, _ := parseGenx(t, []string{"--target=spectcl", in, "out/event"})
	assert.Equal(t, "spectcl", cli.Generate.Target)
	assert.Equal(t, in, cli.Generate.Input)
	assert.Equal(t, "out/event", cli.Generate.Basename)
	assert.Equal(t, "parser", cli.Generate.Parser)
	assert.Equal(t, "info", cli.Log.Level)
}

func TestGenxTargetDefaultsToRoot(t *testing.T) {
	cli, _ := parseGenx(t, []string{"generate", declFile(t), "event"})
	assert.Equal(t, "root", cli.Generate.Target)
}

func TestGenxRejectsUnknownTarget(t *testing.T) {
	var cli Genx
	parser, err := kong.New(&cli, kong.Name("genx"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--target=geant", declFile(t), "event"})
	assert.Error(t, err)
}

func TestGenxConfigInitCommand(t *testing.T) {
	cli, ctx := parseGenx(t, []string{"config", "init", "--format=toml"})
	assert.Equal(t, "config init", ctx.Command())
	assert.Equal(t, "toml", cli.Cfg.Init.Format)
}

func TestGenxJSONConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "site.json")
	body := `{"target": "spectcl", "bin_dir": "/opt/genx/bin", "log": {"level": "debug"}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cli, _ := parseGenx(t, []string{declFile(t), "event"}, Loaders(path)...)
	assert.Equal(t, "spectcl", cli.Generate.Target)
	assert.Equal(t, "/opt/genx/bin", cli.Generate.BinDir)
	assert.Equal(t, "debug", cli.Log.Level)

	cli, _ = parseGenx(t, []string{"--target=root", declFile(t), "event"}, Loaders(path)...)
	assert.Equal(t, "root", cli.Generate.Target)
}

func TestIRToolCommands(t *testing.T) {
	var cli IRTool
	parser, err := kong.New(&cli, kong.Name("irtool"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"dump", "--format=yaml", "--raw-file=raw.log"})
	require.NoError(t, err)
	assert.Equal(t, "dump", ctx.Command())
	assert.Equal(t, "yaml", cli.Dump.Format)
	assert.Equal(t, "raw.log", cli.RawFile)

	model := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, os.WriteFile(model, nil, 0o644))
	ctx, err = parser.Parse([]string{"pack", model, "-o", "m.ir"})
	require.NoError(t, err)
	assert.Equal(t, "pack <input>", ctx.Command())
	assert.Equal(t, "m.ir", cli.Pack.Output)
}
