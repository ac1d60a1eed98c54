package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/segmet/config"
	"github.com/revelaction/segmet/render"
	"github.com/revelaction/segmet/sentiment"
	"github.com/revelaction/segmet/storage"
)

func runsCommand(cfg *config.Config, ui UI) *cli.Command {
	return &cli.Command{
		Name:      "runs",
		Usage:     "list the saved annotation runs, or show one",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Value: cfg.DBPath, Usage: "SQLite database of runs"},
		},
		Action: func(c *cli.Context) error {
			if c.String("db") == "" {
				return errors.New("no database given (--db or SEGMET_DB)")
			}

			var p Pool
			defer p.Close()

			store, err := p.RunStore(c.String("db"))
			if err != nil {
				return err
			}

			if c.NArg() == 0 {
				return listRuns(store, ui)
			}

			id, err := uuid.Parse(c.Args().First())
			if err != nil {
				return fmt.Errorf("invalid run id %q: %w", c.Args().First(), err)
			}

			return showRun(store, id, ui)
		},
	}
}

func listRuns(repo storage.RunReader, ui UI) error {
	runs, err := repo.List()
	if err != nil {
		return err
	}

	for _, run := range runs {
		fmt.Fprintf(ui.Out, "🗂  %s %s %s [%s]\n", run.Id, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Title, joinInts(run.Sums))
	}

	return nil
}

func showRun(repo storage.RunReader, id uuid.UUID, ui UI) error {
	run, err := repo.Read(id)
	if err != nil {
		return err
	}

	r := &render.Renderer{W: ui.Out}
	if err := r.Render(run.Records); err != nil {
		return err
	}

	printSummary(ui.Out, &Annotation{
		Records:      run.Records,
		Sums:         run.Sums,
		Sentiment:    run.Sentiment,
		HasSentiment: run.Sentiment != (sentiment.Tally{}),
	})

	return nil
}

func joinInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(s, " ")
}
