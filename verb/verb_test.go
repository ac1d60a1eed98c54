package verb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	sent "github.com/revelaction/segmet/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	in := "# base,forms\nbe,am,is,are,was,were,been,being\nrun,runs,ran,running\nsit\n"
	tbl, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)

	tests := []struct {
		word string
		want string
		ok   bool
	}{
		{"is", "be", true},
		{"Was", "be", true},
		{"be", "be", true},
		{"ran", "run", true},
		{"RUNNING", "run", true},
		{"sit", "sit", true},
		{"sat", "", false},
	}

	for _, tt := range tests {
		got, ok := tbl.Present(tt.word)
		assert.Equal(t, tt.ok, ok, tt.word)
		assert.Equal(t, tt.want, got, tt.word)
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLemmas(t *testing.T) {
	doc := sent.Doc{Paragraphs: []sent.Paragraph{{
		{
			{Text: "cats", Tag: "NNS", Lemma: "cat"},
			{Text: "sat", Tag: "VBD", Lemma: "sit"},
			{Text: "purring", Tag: "VBG", Lemma: "purr"},
			{Text: "ran", Tag: "VBD"},
		},
	}}}

	tbl := Lemmas(doc)

	base, ok := tbl.Present("sat")
	assert.True(t, ok)
	assert.Equal(t, "sit", base)

	base, ok = tbl.Present("purring")
	assert.True(t, ok)
	assert.Equal(t, "purr", base)

	_, ok = tbl.Present("cats")
	assert.False(t, ok)

	_, ok = tbl.Present("ran")
	assert.False(t, ok)
}

func TestChain(t *testing.T) {
	first := Table{}
	first.Add("go", "went")
	second := Table{}
	second.Add("run", "ran")

	c := Chain{nil, first, second}

	base, ok := c.Present("went")
	assert.True(t, ok)
	assert.Equal(t, "go", base)

	base, ok = c.Present("ran")
	assert.True(t, ok)
	assert.Equal(t, "run", base)

	_, ok = c.Present("flew")
	assert.False(t, ok)
}

func TestIdentity(t *testing.T) {
	base, ok := Identity.Present("sat")
	assert.True(t, ok)
	assert.Equal(t, "sat", base)

	_, ok = Identity.Present("")
	assert.False(t, ok)
}
