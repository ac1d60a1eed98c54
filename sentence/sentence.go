package sentence

// Doc is a tagged document: paragraphs of sentences of tokens, as produced by
// an external tokenizer and POS tagger.
type Doc struct {
	Id int `json:"-"`

	Title string `json:"title"`

	Labels     []string    `json:"labels,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Paragraph is an ordered list of sentences
type Paragraph [][]Token

// Library is a collection of Doc
type Library []Doc

// NumSentences returns the number of sentences in all paragraphs of the doc.
func (d Doc) NumSentences() int {
	n := 0
	for _, p := range d.Paragraphs {
		n += len(p)
	}

	return n
}

// Token represents a word of the sentence, with its POS tag.
type Token struct {
	// The unmodified word
	Text string `json:"text"`

	// The Penn Treebank tag of the word (NN, VBD, DT, ...)
	Tag string `json:"tag"`

	// Coarse POS, if the tagger gives one
	Pos string `json:"pos,omitempty"`

	// The lemma of the word, if the tagger gives one
	Lemma string `json:"lemma,omitempty"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}
