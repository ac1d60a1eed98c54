package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/segmet/annotate"
	"github.com/revelaction/segmet/config"
	"github.com/revelaction/segmet/metric"
	"github.com/revelaction/segmet/storage/sqlite/zombiezen"
)

const story = `The/DT cat/NN sat/VBD ./.
The/DT happy/JJ dog/NN ran/VBD ./.

Dogs/NNS run/VBP ./.
`

type fixture struct {
	dir      string
	doc      string
	metrics  string
	verbs    string
	positive string
	negative string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.Mkdir(docs, 0o755))

	f := fixture{
		dir:      dir,
		doc:      filepath.Join(docs, "story.tag"),
		metrics:  filepath.Join(dir, "metrics.csv"),
		verbs:    filepath.Join(dir, "verbs.csv"),
		positive: filepath.Join(dir, "positive-words.txt"),
		negative: filepath.Join(dir, "negative-words.txt"),
	}

	write(t, f.doc, story)
	write(t, f.metrics, "verb,a,b\nsit,1,2\nrun,3,0\n")
	write(t, f.verbs, "sit,sat,sitting\nrun,runs,ran,running\n")
	write(t, f.positive, "; positive words\nhappy\n")
	write(t, f.negative, "sad\n")

	return f
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errBuf bytes.Buffer
	app := newApp(&config.Config{}, UI{Out: &out, Err: &errBuf})
	err := app.Run(append([]string{"segmet"}, args...))
	return out.String(), errBuf.String(), err
}

func TestAnnotateText(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "annotate", "--no-progress", "--no-color", "--metrics", f.metrics, "--verbs", f.verbs, f.doc)
	require.NoError(t, err)

	assert.Contains(t, out, "| 1 | 1 | The cat | Sit | Sit |  | 1=1 | 2=2 |")
	assert.Contains(t, out, "| 2 | 1 | Dogs | Run | Run |  | 3=3 | 0=0 |")
	assert.Contains(t, out, "      ctg. #1: 7\n      ctg. #2: 2\n")
	assert.NotContains(t, out, "positive:")
}

func TestAnnotateOutputs(t *testing.T) {
	f := newFixture(t)

	jsonOut := filepath.Join(f.dir, "records.json")
	sumsOut := filepath.Join(f.dir, "sums.csv")
	sentimentOut := filepath.Join(f.dir, "sentiment.csv")
	db := filepath.Join(f.dir, "runs.db")

	_, errOut, err := run(t, "annotate", "--no-progress",
		"--metrics", f.metrics, "--verbs", f.verbs,
		"--positive", f.positive, "--negative", f.negative,
		"--format", "json", "--out", jsonOut,
		"--sums", sumsOut, "--sentiment-out", sentimentOut,
		"--db", db,
		f.doc)
	require.NoError(t, err)
	assert.Contains(t, errOut, "saved in "+db)

	data, err := os.ReadFile(jsonOut)
	require.NoError(t, err)
	var records []*annotate.Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 3)
	assert.Equal(t, []string{"3=3", "0=0"}, records[1].Metrics)

	sums, err := os.ReadFile(sumsOut)
	require.NoError(t, err)
	assert.Equal(t, "category,value\n1,7\n2,2\n", string(sums))

	sentiment, err := os.ReadFile(sentimentOut)
	require.NoError(t, err)
	assert.Equal(t, "category,value\nPositive,1\nNegative,0\nNeutral,11\n", string(sentiment))

	store, pool, err := zombiezen.OpenRunStore(db)
	require.NoError(t, err)
	runs, err := store.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "story", runs[0].Title)
	assert.Equal(t, []int{7, 2}, runs[0].Sums)
	require.NoError(t, pool.Close())

	out, _, err := run(t, "runs", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, runs[0].Id.String())
	assert.Contains(t, out, "story [7 2]")

	out, _, err = run(t, "runs", "--db", db, runs[0].Id.String())
	require.NoError(t, err)
	assert.Contains(t, out, "| 2 | 1 | Dogs |")
	assert.Contains(t, out, "positive: 1")

	_, _, err = run(t, "runs", "--db", db, "not-a-uuid")
	require.Error(t, err)
}

func TestAnnotateProgressGoesToErr(t *testing.T) {
	f := newFixture(t)

	out, errOut, err := run(t, "annotate", "--format", "json", "--metrics", f.metrics, "--verbs", f.verbs, f.doc)
	require.NoError(t, err)

	var records []*annotate.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 3)

	assert.Contains(t, errOut, "100%")
	assert.Contains(t, errOut, "story")
}

func TestAnnotateHTML(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "annotate", "--no-progress", "--format", "html", "--metrics", f.metrics, "--verbs", f.verbs, f.doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>story</title>")
	assert.Contains(t, out, "Ctg. #2")
}

func TestAnnotateErrors(t *testing.T) {
	f := newFixture(t)

	_, _, err := run(t, "annotate", "--no-progress", f.doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no metric table")

	bad := filepath.Join(f.dir, "bad.csv")
	write(t, bad, "verb,a\nsit,x\n")
	_, _, err = run(t, "annotate", "--no-progress", "--metrics", bad, f.doc)
	assert.True(t, errors.Is(err, metric.ErrBadValue))

	ragged := filepath.Join(f.dir, "ragged.csv")
	write(t, ragged, "verb,a,b\nsit,1,2\nrun,3\n")
	out, _, err := run(t, "annotate", "--no-progress", "--metrics", ragged, f.doc)
	assert.True(t, errors.Is(err, metric.ErrRaggedTable))
	assert.Empty(t, out)

	_, _, err = run(t, "annotate", "--no-progress", "--metrics", f.metrics, "--positive", f.positive, f.doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--negative")

	_, _, err = run(t, "annotate", "--no-progress", "--metrics", f.metrics, "--format", "yaml", f.doc)
	require.Error(t, err)

	_, _, err = run(t, "annotate", "--no-progress", "--metrics", f.metrics)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document given")
}

func TestAnnotateByDocId(t *testing.T) {
	f := newFixture(t)
	docs := filepath.Dir(f.doc)

	out, _, err := run(t, "stat", "--doc-path", docs)
	require.NoError(t, err)
	assert.Equal(t, "📖 0 story.tag \n", out)

	out, _, err = run(t, "annotate", "--no-progress", "--no-color", "--doc-path", docs, "--metrics", f.metrics, "--verbs", f.verbs, "0")
	require.NoError(t, err)
	assert.Contains(t, out, "| 1 | 1 | The cat | Sit |")
}

func TestSentence(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "sentence", "--verbs", f.verbs, "--metrics", f.metrics, f.doc, "1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "✍  1-1 The cat sat.")
	assert.Contains(t, out, "actual verbs: Sit")
	assert.Contains(t, out, "ctg. #2: 2=2")
	assert.Contains(t, out, `"sat"`)

	_, _, err = run(t, "sentence", f.doc, "3", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, _, err = run(t, "sentence", f.doc, "1")
	require.Error(t, err)
}

func TestStat(t *testing.T) {
	f := newFixture(t)

	out, _, err := run(t, "stat", "--verbs", f.verbs, f.doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Num paragraphs 2, num sentences 3, num tokens 12\n")
	assert.Contains(t, out, "Num annotated sentences 3, num empty 0\n")
	assert.Contains(t, out, "     VBD 2\n")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "segmet version dev (commit: none)\n", out)
}
