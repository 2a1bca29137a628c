package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/frib-daq/genx/internal/config"
	"github.com/frib-daq/genx/internal/configpaths"
	"github.com/frib-daq/genx/internal/log"
)

func main() {
	userCfg := configpaths.FindUserConfig(os.Args[1:])

	var cli config.Genx
	opts := []kong.Option{
		kong.Name("genx"),
		kong.Description("Generate ROOT or SpecTcl event structures from a declaration file"),
		kong.UsageOnError(),
	}
	opts = append(opts, config.Loaders(userCfg)...)
	ctx := kong.Parse(&cli, opts...)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	ctx.Bind(logger)

	err = ctx.Run()
	_ = log.CloseAll(closeFiles)
	ctx.FatalIfErrorf(err)
}
