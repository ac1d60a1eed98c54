package sentence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagGroupsAreNested(t *testing.T) {
	for _, tag := range ProperNounTags {
		assert.True(t, IsNoun(tag), tag)
	}

	for _, tag := range NounTags {
		assert.True(t, IsSubject(tag), tag)
	}

	assert.False(t, IsNoun("DT"))
	assert.True(t, IsSubject("DT"))
	assert.True(t, IsSubject("PRP$"))
}

func TestIsActualVerb(t *testing.T) {
	for _, tag := range []string{"VB", "VBD", "VBP", "VBZ"} {
		assert.True(t, IsActualVerb(tag), tag)
	}

	assert.False(t, IsActualVerb("VBG"))
	assert.False(t, IsActualVerb("VBN"))
	assert.True(t, IsVerbLike("VBG"))
	assert.True(t, IsVerbLike("VBN"))
	assert.False(t, IsVerbLike("NN"))
}

func TestIsPunctuation(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{".", true},
		{",", true},
		{":", true},
		{"(", true},
		{")", true},
		{"", true},
		{"NN", false},
		{"``", false},
		{"$", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPunctuation(tt.tag), "tag %q", tt.tag)
	}
}

func TestBrackets(t *testing.T) {
	for _, s := range []string{"(", "[", "{"} {
		assert.True(t, IsOpenBracket(s))
		assert.False(t, IsCloseBracket(s))
	}

	for _, s := range []string{")", "]", "}"} {
		assert.True(t, IsCloseBracket(s))
		assert.False(t, IsOpenBracket(s))
	}

	assert.False(t, IsOpenBracket("run"))
}

func TestDocNumSentences(t *testing.T) {
	doc := Doc{Paragraphs: []Paragraph{
		{{{Text: "a"}}, {{Text: "b"}}},
		{},
		{{{Text: "c"}}},
	}}

	assert.Equal(t, 3, doc.NumSentences())
}
