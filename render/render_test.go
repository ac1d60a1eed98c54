package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/segmet/annotate"
	sent "github.com/revelaction/segmet/sentence"
	"github.com/revelaction/segmet/sentiment"
)

func record() *annotate.Record {
	rec := annotate.NewRecord(1, 3)
	rec.AddToken(sent.Token{Text: "The", Tag: "DT"})
	rec.AddToken(sent.Token{Text: "cat", Tag: "NN", Index: 1})
	rec.AddToken(sent.Token{Text: "sat", Tag: "VBD", Index: 2})
	rec.AddToken(sent.Token{Text: ".", Tag: ".", Index: 3})
	rec.Subjects.Add("The cat")
	rec.ActualVerbs.Add("Sit")
	rec.Remaining.Add("the")
	rec.Metrics = []string{"1+\n2=3", "0"}
	rec.Sums = []int{3, 0}
	return rec
}

func TestRendererRender(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{W: &buf}
	require.NoError(t, r.Render([]*annotate.Record{record()}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat("-", 30), lines[0])
	assert.Equal(t, "| 1 | 3 | The cat | Sit | Sit | the | 1+ 2=3 | 0 |", lines[1])
}

func TestRendererColor(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{W: &buf, HasColor: true}
	require.NoError(t, r.Render([]*annotate.Record{record()}))
	assert.Contains(t, buf.String(), "| "+Yellow256+"Sit"+Off+" | "+Green256+"Sit"+Off+" |")
}

func TestSentenceString(t *testing.T) {
	r := &Renderer{}
	tokens := []sent.Token{
		{Text: "He", Tag: "PRP"},
		{Text: "(", Tag: "("},
		{Text: "quietly", Tag: "RB"},
		{Text: ")", Tag: ")"},
		{Text: "left", Tag: "VBD"},
		{Text: ",", Tag: ","},
		{Text: "then", Tag: "RB"},
		{Text: ".", Tag: "."},
	}
	assert.Equal(t, "He (quietly) left, then.", r.SentenceString(tokens))
}

func TestNewUnsupportedFormat(t *testing.T) {
	_, err := New("yaml", &bytes.Buffer{}, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, html, json")

	for _, f := range SupportedFormats() {
		r, err := New(f, &bytes.Buffer{}, 2)
		require.NoError(t, err)
		assert.NotNil(t, r)
	}
}

func TestHTMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewHTMLRenderer(&buf, 2)
	r.Title = "Tom & Jerry"
	require.NoError(t, r.Render([]*annotate.Record{record()}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Tom &amp; Jerry</title>")
	assert.Contains(t, out, "<th><span>Ctg. #1</span></th><th><span>Ctg. #2</span></th>")
	assert.NotContains(t, out, "Ctg. #3")
	assert.Contains(t, out, "<td>The cat</td>")
	assert.Contains(t, out, "<td>1+<br/>2=3</td><td>0</td>")
}

func TestWriteSums(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSums(&buf, []int{3, 0, 7}))
	assert.Equal(t, "category,value\n1,3\n2,0\n3,7\n", buf.String())
}

func TestWriteSentiment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSentiment(&buf, sentiment.Tally{Positive: 2, Negative: 1, Neutral: 5}))
	assert.Equal(t, "category,value\nPositive,2\nNegative,1\nNeutral,5\n", buf.String())
}
