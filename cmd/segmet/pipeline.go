package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/segmet/annotate"
	"github.com/revelaction/segmet/metric"
	sent "github.com/revelaction/segmet/sentence"
	"github.com/revelaction/segmet/sentiment"
	"github.com/revelaction/segmet/verb"
)

// Annotation is the result of annotating one document.
type Annotation struct {
	Doc   sent.Doc
	Table *metric.Table

	Records []*annotate.Record
	Sums    []int

	// Sentiment is only set if a lexicon was given.
	Sentiment    sentiment.Tally
	HasSentiment bool
}

// annotateDoc loads the tables, then reads, classifies and scores the doc.
// Without metric table the records have no metrics, unless requireMetrics.
// A progress bar is rendered to progress if not nil.
func annotateDoc(arg string, opts InputOptions, requireMetrics bool, progress io.Writer) (*Annotation, error) {
	a := &Annotation{}

	if opts.MetricsPath == "" && requireMetrics {
		return nil, errors.New("no metric table given (--metrics or SEGMET_METRICS)")
	}

	if opts.MetricsPath != "" {
		t, err := metric.LoadTable(opts.MetricsPath)
		if err != nil {
			return nil, err
		}
		slog.Info("metric table loaded", "path", opts.MetricsPath, "verbs", t.Len(), "columns", t.Columns())
		a.Table = t
	}

	var lex sentiment.Lexicon
	if opts.PositivePath != "" || opts.NegativePath != "" {
		if opts.PositivePath == "" || opts.NegativePath == "" {
			return nil, errors.New("sentiment needs both --positive and --negative word lists")
		}

		var err error
		if lex, err = sentiment.LoadLexicon(opts.PositivePath, opts.NegativePath); err != nil {
			return nil, err
		}
		slog.Info("sentiment lexicon loaded", "words", len(lex))
	}

	doc, err := readDoc(arg, opts)
	if err != nil {
		return nil, err
	}
	a.Doc = doc

	n, err := normalizer(doc, opts.VerbsPath)
	if err != nil {
		return nil, err
	}

	if progress != nil && len(doc.Paragraphs) > 0 {
		p := uiprogress.New()
		p.SetOut(progress)
		p.Start()
		bar := p.AddBar(len(doc.Paragraphs))
		bar.AppendCompleted()
		bar.PrependElapsed()
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			return doc.Title
		})

		a.Records = annotate.ProcessFunc(doc, n, func(para int) {
			bar.Set(para)
		})

		p.Stop()
	} else {
		a.Records = annotate.Process(doc, n)
	}

	if a.Table != nil {
		sums := metric.NewSums(a.Table.Columns())
		if err := annotate.ApplyMetrics(a.Records, a.Table, sums); err != nil {
			return nil, err
		}
		a.Sums = sums.Get()
	}

	if lex != nil {
		a.Sentiment = sentiment.Score(a.Records, lex)
		a.HasSentiment = true
	}

	return a, nil
}

// normalizer resolves verbs with the conjugation table if given, then with
// the lemmas of the doc. Without table, unknown verbs are kept as they are.
func normalizer(doc sent.Doc, verbsPath string) (verb.Normalizer, error) {
	var chain verb.Chain
	if verbsPath != "" {
		t, err := verb.LoadTable(verbsPath)
		if err != nil {
			return nil, err
		}
		slog.Info("conjugation table loaded", "path", verbsPath, "forms", len(t))
		chain = append(chain, t)
	}

	chain = append(chain, verb.Lemmas(doc))

	if verbsPath == "" {
		chain = append(chain, verb.Identity)
	}

	return chain, nil
}
