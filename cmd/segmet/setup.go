package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segmet/config"
	"github.com/revelaction/segmet/file"
	sent "github.com/revelaction/segmet/sentence"
	"github.com/revelaction/segmet/storage"
	"github.com/revelaction/segmet/storage/filesystem"
)

// InputOptions are the paths of the document and of the tables used to
// annotate it.
type InputOptions struct {
	DocPath      string
	MetricsPath  string
	PositivePath string
	NegativePath string
	VerbsPath    string
	WordsPath    string
}

func inputFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "doc-path", Aliases: []string{"d"}, Value: cfg.DocPath, Usage: "directory of documents, to address them by id"},
		&cli.StringFlag{Name: "metrics", Aliases: []string{"m"}, Value: cfg.MetricsPath, Usage: "verb metric table (CSV)"},
		&cli.StringFlag{Name: "positive", Value: cfg.PositivePath, Usage: "positive word list"},
		&cli.StringFlag{Name: "negative", Value: cfg.NegativePath, Usage: "negative word list"},
		&cli.StringFlag{Name: "verbs", Value: cfg.VerbsPath, Usage: "verb conjugation table (CSV)"},
		&cli.StringFlag{Name: "words", Value: cfg.WordsPath, Usage: "word list to strip sentence identifiers"},
	}
}

func inputOptions(c *cli.Context) InputOptions {
	return InputOptions{
		DocPath:      c.String("doc-path"),
		MetricsPath:  c.String("metrics"),
		PositivePath: c.String("positive"),
		NegativePath: c.String("negative"),
		VerbsPath:    c.String("verbs"),
		WordsPath:    c.String("words"),
	}
}

func NewDocRepository(path string) (storage.DocReader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("repository is not a directory: %s", path)
	}

	return filesystem.NewDocStore(path)
}

// readDoc reads the doc given as argument: a file path, or an id in the doc
// path directory.
func readDoc(arg string, opts InputOptions) (sent.Doc, error) {
	if arg == "" {
		return sent.Doc{}, errors.New("no document given")
	}

	var doc sent.Doc
	id, convErr := strconv.Atoi(arg)
	if convErr == nil && opts.DocPath != "" {
		repo, err := NewDocRepository(opts.DocPath)
		if err != nil {
			return doc, err
		}
		if doc, err = repo.Read(id); err != nil {
			return doc, err
		}
	} else {
		var err error
		if doc, err = file.ReadDoc(arg); err != nil {
			return doc, err
		}
	}

	if opts.WordsPath == "" {
		return doc, nil
	}

	words, err := file.ReadWordSet(opts.WordsPath)
	if err != nil {
		return doc, err
	}

	return file.StripIdentifiers(doc, words), nil
}
