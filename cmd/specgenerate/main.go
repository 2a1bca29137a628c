package main

import (
	"os"

	"github.com/frib-daq/genx/internal/cmd"
	"github.com/frib-daq/genx/internal/log"
)

func main() {
	parser, cli, err := cmd.NewBackendParser("spectcl", os.Stderr)
	if err != nil {
		panic(err)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	// Backends take no options, so logging is fixed at info level.
	logger, closeFiles, err := log.SetupLogger("info", "")
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	err = cli.Run(logger, os.Stdin)
	_ = log.CloseAll(closeFiles)
	parser.FatalIfErrorf(err)
}
