package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/segmet/config"
	"github.com/revelaction/segmet/explore"
	"github.com/revelaction/segmet/render"
)

func exploreCommand(cfg *config.Config, ui UI) *cli.Command {
	flags := append(inputFlags(cfg),
		&cli.BoolFlag{Name: "no-color", Usage: "do not color the output"},
	)

	return &cli.Command{
		Name:      "explore",
		Usage:     "browse the annotated sentences of a document interactively",
		ArgsUsage: "<doc>",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			a, err := annotateDoc(c.Args().First(), inputOptions(c), true, ui.Err)
			if err != nil {
				return err
			}

			r := &render.Renderer{W: ui.Out, HasColor: !c.Bool("no-color")}
			return explore.NewHandler(a.Records, a.Sums, a.Sentiment, r).Run()
		},
	}
}
