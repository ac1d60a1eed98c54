package file

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	sent "github.com/revelaction/segmet/sentence"
)

// WordSet is a dictionary of known words, lowercase and in NFC form.
type WordSet map[string]struct{}

// Has looks up word with the same folding applied to the list.
func (w WordSet) Has(word string) bool {
	_, ok := w[fold(word)]
	return ok
}

func fold(word string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(word)))
}

// ReadWordSet reads a word list, one word per line.
func ReadWordSet(path string) (WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	words := WordSet{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := fold(sc.Text())
		if word == "" {
			continue
		}
		words[word] = struct{}{}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	return words, nil
}

// StripIdentifiers removes outline identifiers (1., IV, a) ...) from the start
// of sentences: a first token that is not a known word is dropped. Sentences
// starting with punctuation are left as they are.
func StripIdentifiers(doc sent.Doc, words WordSet) sent.Doc {
	out := doc
	out.Paragraphs = make([]sent.Paragraph, len(doc.Paragraphs))
	for i, para := range doc.Paragraphs {
		stripped := make(sent.Paragraph, len(para))
		for j, tokens := range para {
			if len(tokens) > 0 && !sent.IsPunctuation(tokens[0].Tag) && !words.Has(tokens[0].Text) {
				tokens = reindex(tokens[1:])
			}
			stripped[j] = tokens
		}
		out.Paragraphs[i] = stripped
	}

	return out
}

func reindex(tokens []sent.Token) []sent.Token {
	out := make([]sent.Token, len(tokens))
	for i, t := range tokens {
		t.Index = i
		out[i] = t
	}

	return out
}
