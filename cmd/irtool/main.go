package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/frib-daq/genx/internal/config"
	"github.com/frib-daq/genx/internal/log"
)

func main() {
	var cli config.IRTool
	ctx := kong.Parse(&cli,
		kong.Name("irtool"),
		kong.Description("Inspect and produce genx IR wire streams"),
		kong.UsageOnError(),
	)

	// stdout carries the dump or the packed stream.
	logger, closeFiles, err := log.SetupStderrLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	var rawLogger log.RawLogger
	switch {
	case cli.RawFile != "":
		f, err := os.OpenFile(cli.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cli.RawFile, "error", err)
			rawLogger = log.NewRaw(nil, "")
		} else {
			rawLogger = log.NewRaw(f, "ir")
			closeFiles = append(closeFiles, f)
		}
	case cli.Log.Level == "trace":
		rawLogger = log.NewRaw(os.Stderr, "ir")
	default:
		rawLogger = log.NewRaw(nil, "")
	}

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))

	err = ctx.Run()
	_ = log.CloseAll(closeFiles)
	ctx.FatalIfErrorf(err)
}
