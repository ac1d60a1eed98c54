package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segmet/config"
	"github.com/revelaction/segmet/render"
	"github.com/revelaction/segmet/storage"
)

type AnnotateOptions struct {
	InputOptions

	Format       string
	Out          string
	SumsOut      string
	SentimentOut string
	DB           string
	NoProgress   bool
	NoColor      bool
}

func annotateCommand(cfg *config.Config, ui UI) *cli.Command {
	flags := append(inputFlags(cfg),
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: render.DefaultFormat, Usage: "output format: " + strings.Join(render.SupportedFormats(), ", ")},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the records to file instead of stdout"},
		&cli.StringFlag{Name: "sums", Usage: "write the metric sums as CSV to file"},
		&cli.StringFlag{Name: "sentiment-out", Usage: "write the sentiment tally as CSV to file"},
		&cli.StringFlag{Name: "db", Value: cfg.DBPath, Usage: "save the run in this SQLite database"},
		&cli.BoolFlag{Name: "no-progress", Usage: "do not show the progress bar"},
		&cli.BoolFlag{Name: "no-color", Usage: "do not color the text output"},
	)

	return &cli.Command{
		Name:      "annotate",
		Usage:     "classify the sentences of a document and sum its verb metrics",
		ArgsUsage: "<doc>",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			opts := AnnotateOptions{
				InputOptions: inputOptions(c),
				Format:       c.String("format"),
				Out:          c.String("out"),
				SumsOut:      c.String("sums"),
				SentimentOut: c.String("sentiment-out"),
				DB:           c.String("db"),
				NoProgress:   c.Bool("no-progress"),
				NoColor:      c.Bool("no-color"),
			}
			return runAnnotate(opts, c.Args().First(), ui)
		},
	}
}

func runAnnotate(opts AnnotateOptions, arg string, ui UI) (err error) {
	var progress io.Writer
	if !opts.NoProgress {
		progress = ui.Err
	}

	a, err := annotateDoc(arg, opts.InputOptions, true, progress)
	if err != nil {
		return err
	}

	var w io.Writer = ui.Out
	if opts.Out != "" {
		f, ferr := os.Create(opts.Out)
		if ferr != nil {
			return fmt.Errorf("IO error: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	r, err := render.New(opts.Format, w, a.Table.Columns())
	if err != nil {
		return err
	}

	switch rr := r.(type) {
	case *render.Renderer:
		rr.HasColor = !opts.NoColor && opts.Out == ""
	case *render.HTMLRenderer:
		rr.Title = a.Doc.Title
	}

	if err := r.Render(a.Records); err != nil {
		return err
	}

	if opts.Format == render.DefaultFormat {
		printSummary(w, a)
	}

	if opts.SumsOut != "" {
		if err := writeFile(opts.SumsOut, func(w io.Writer) error { return render.WriteSums(w, a.Sums) }); err != nil {
			return err
		}
	}

	if opts.SentimentOut != "" {
		if !a.HasSentiment {
			return errors.New("--sentiment-out needs the --positive and --negative word lists")
		}
		if err := writeFile(opts.SentimentOut, func(w io.Writer) error { return render.WriteSentiment(w, a.Sentiment) }); err != nil {
			return err
		}
	}

	if opts.DB == "" {
		return nil
	}

	var p Pool
	defer p.Close()

	store, err := p.RunStore(opts.DB)
	if err != nil {
		return err
	}

	run := &storage.Run{
		Title:     a.Doc.Title,
		Columns:   a.Table.Columns(),
		Records:   a.Records,
		Sums:      a.Sums,
		Sentiment: a.Sentiment,
	}
	if err := store.Write(run); err != nil {
		return err
	}

	fmt.Fprintf(ui.Err, "🗂  run %s saved in %s\n", run.Id, opts.DB)
	return nil
}

func printSummary(w io.Writer, a *Annotation) {
	fmt.Fprintln(w, strings.Repeat("=", 30))
	for i, s := range a.Sums {
		fmt.Fprintf(w, "%14s %d\n", fmt.Sprintf("ctg. #%d:", i+1), s)
	}

	if a.HasSentiment {
		fmt.Fprintf(w, "%14s %d\n", "positive:", a.Sentiment.Positive)
		fmt.Fprintf(w, "%14s %d\n", "negative:", a.Sentiment.Negative)
		fmt.Fprintf(w, "%14s %d\n", "neutral:", a.Sentiment.Neutral)
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
