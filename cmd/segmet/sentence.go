package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segmet/config"
	"github.com/revelaction/segmet/render"
)

func sentenceCommand(cfg *config.Config, ui UI) *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "show the tokens and the annotation of one sentence",
		ArgsUsage: "<doc> <para> <sent>",
		Flags:     inputFlags(cfg),
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				return fmt.Errorf("sentence needs 3 arguments, got %d", c.NArg())
			}

			para, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid paragraph number %q: %w", c.Args().Get(1), err)
			}

			sentId, err := strconv.Atoi(c.Args().Get(2))
			if err != nil {
				return fmt.Errorf("invalid sentence number %q: %w", c.Args().Get(2), err)
			}

			return runSentence(inputOptions(c), c.Args().First(), para, sentId, ui)
		},
	}
}

func runSentence(opts InputOptions, arg string, para, sentId int, ui UI) error {
	a, err := annotateDoc(arg, opts, false, nil)
	if err != nil {
		return err
	}

	for _, rec := range a.Records {
		if rec.Paragraph != para || rec.Sentence != sentId {
			continue
		}

		r := &render.Renderer{W: ui.Out}
		r.Record(rec)
		fmt.Fprintln(ui.Out)
		r.Tokens(rec.Tokens)
		return nil
	}

	return fmt.Errorf("sentence %d-%d not found (doc has %d annotated sentences)", para, sentId, len(a.Records))
}
