package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segmet/annotate"
	"github.com/revelaction/segmet/config"
	"github.com/revelaction/segmet/stat"
)

func statCommand(cfg *config.Config, ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "show statistics of a document, or list the documents of --doc-path",
		ArgsUsage: "[doc]",
		Flags:     inputFlags(cfg),
		Action: func(c *cli.Context) error {
			opts := inputOptions(c)
			if c.NArg() == 0 {
				return listDocs(opts, ui)
			}
			return runStat(opts, c.Args().First(), ui)
		},
	}
}

func listDocs(opts InputOptions, ui UI) error {
	if opts.DocPath == "" {
		return errors.New("no document given and no --doc-path")
	}

	repo, err := NewDocRepository(opts.DocPath)
	if err != nil {
		return err
	}

	docs, err := repo.List()
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Fprintf(ui.Out, "📖 %d %s \n", doc.Id, doc.Title)
	}

	return nil
}

func runStat(opts InputOptions, arg string, ui UI) error {
	a, err := annotateDoc(arg, opts, false, nil)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(a.Doc)
	hdl.AggregateRecords(a.Records)

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num paragraphs %d, num sentences %d, num tokens %d\n", stats.NumParagraphs, stats.NumSentences, stats.NumTokens)
	fmt.Fprintf(ui.Out, "Num tokens per sentence %d\n", stats.TokensPerSentenceMean)
	fmt.Fprintf(ui.Out, "Num annotated sentences %d, num empty %d\n", stats.NumRecords, stats.NumEmpty)

	fmt.Fprintf(ui.Out, "Verbs %d\n", len(verbCounts(a.Records)))

	tags := make([]string, 0, len(stats.TagDis))
	for tag := range stats.TagDis {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Fprintf(ui.Out, "%8s %d\n", tag, stats.TagDis[tag])
	}

	return nil
}

func verbCounts(records []*annotate.Record) map[string]int {
	counts := map[string]int{}
	for _, rec := range records {
		for v := range rec.ActualVerbs {
			counts[v]++
		}
	}

	return counts
}
