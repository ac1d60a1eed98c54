package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segmet/config"
	"github.com/revelaction/segmet/logging"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	cfg, err := config.Load()
	if err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat, ui.Err)

	if err := newApp(cfg, ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "segmet: %v\n", err)
}

func newApp(cfg *config.Config, ui UI) *cli.App {
	return &cli.App{
		Name:                 "segmet",
		Usage:                "annotate tagged sentences and sum verb metrics",
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		HideVersion:          true,
		Commands: []*cli.Command{
			annotateCommand(cfg, ui),
			sentenceCommand(cfg, ui),
			statCommand(cfg, ui),
			exploreCommand(cfg, ui),
			runsCommand(cfg, ui),
			versionCommand(ui),
		},
	}
}
