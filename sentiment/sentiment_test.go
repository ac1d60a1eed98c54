package sentiment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/segmet/annotate"
	sent "github.com/revelaction/segmet/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(words ...string) *annotate.Record {
	r := annotate.NewRecord(1, 1)
	for i, w := range words {
		r.AddToken(sent.Token{Text: w, Tag: "NN", Index: i})
	}

	return r
}

func TestScore(t *testing.T) {
	lex := Lexicon{"good": Positive, "bad": Negative}

	got := Score([]*annotate.Record{record("good", "bad", "bad", "table")}, lex)
	assert.Equal(t, Tally{Positive: 1, Negative: 2, Neutral: 1}, got)
}

func TestScoreAcrossRecords(t *testing.T) {
	lex := Lexicon{"good": Positive, "bad": Negative}

	records := []*annotate.Record{
		record("good", "."),
		record("Good", "bads"),
		record("bad"),
	}

	got := Score(records, lex)
	assert.Equal(t, Tally{Positive: 1, Negative: 1, Neutral: 3}, got)
}

func TestScoreEmpty(t *testing.T) {
	assert.Equal(t, Tally{}, Score(nil, Lexicon{"good": Positive}))
}

func TestReadWords(t *testing.T) {
	in := ";; opinion lexicon\n;\n\nabound\n  abounds \n"
	l := Lexicon{}
	require.NoError(t, l.ReadWords(strings.NewReader(in), Positive))

	assert.Equal(t, Lexicon{"abound": Positive, "abounds": Positive}, l)
}

func TestScoreDecomposedWord(t *testing.T) {
	decomposed := "cafe\u0301"
	l := Lexicon{}
	require.NoError(t, l.ReadWords(strings.NewReader(decomposed+"\n"), Positive))

	rec := annotate.NewRecord(1, 1)
	rec.AddToken(sent.Token{Text: decomposed, Tag: "NN"})
	assert.Equal(t, Tally{Positive: 1}, Score([]*annotate.Record{rec}, l))

	// the composed form is a different surface
	composed := annotate.NewRecord(1, 2)
	composed.AddToken(sent.Token{Text: "caf\u00e9", Tag: "NN"})
	assert.Equal(t, Tally{Neutral: 1}, Score([]*annotate.Record{composed}, l))
}

func TestLoadLexicon(t *testing.T) {
	dir := t.TempDir()
	pos := filepath.Join(dir, "positive-words.txt")
	neg := filepath.Join(dir, "negative-words.txt")
	require.NoError(t, os.WriteFile(pos, []byte("good\nfine\n"), 0o644))
	require.NoError(t, os.WriteFile(neg, []byte("bad\nfine\n"), 0o644))

	l, err := LoadLexicon(pos, neg)
	require.NoError(t, err)

	assert.Equal(t, Positive, l["good"])
	assert.Equal(t, Negative, l["bad"])
	assert.Equal(t, Negative, l["fine"])
}

func TestLoadLexiconErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte(";; nothing\n"), 0o644))

	_, err := LoadLexicon(empty, empty)
	assert.ErrorIs(t, err, ErrEmptyLexicon)

	_, err = LoadLexicon(filepath.Join(dir, "missing.txt"), empty)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPolarityString(t *testing.T) {
	assert.Equal(t, "Positive", Positive.String())
	assert.Equal(t, "Negative", Negative.String())
	assert.Equal(t, "Polarity(7)", Polarity(7).String())
}
