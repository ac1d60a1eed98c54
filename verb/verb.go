// Package verb resolves inflected verb forms to their present (base) form.
package verb

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	sent "github.com/revelaction/segmet/sentence"
)

// Normalizer returns the present form of a verb. The bool is false when the
// form is not recognized.
type Normalizer interface {
	Present(word string) (string, bool)
}

// NormalizerFunc adapts a function to the Normalizer interface.
type NormalizerFunc func(word string) (string, bool)

func (f NormalizerFunc) Present(word string) (string, bool) {
	return f(word)
}

// Table maps a lowercase inflected form to its base form.
type Table map[string]string

var _ Normalizer = Table(nil)

func (t Table) Present(word string) (string, bool) {
	base, ok := t[strings.ToLower(word)]
	return base, ok
}

// Add registers base and each of its forms.
func (t Table) Add(base string, forms ...string) {
	base = strings.ToLower(strings.TrimSpace(base))
	if base == "" {
		return
	}

	t[base] = base
	for _, f := range forms {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		t[f] = base
	}
}

// ReadTable reads a conjugation table: one verb per line, the base form
// first followed by its inflections.
//
//	be,am,is,are,was,were,been,being
//	run,runs,ran,running
func ReadTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'

	t := Table{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("conjugation table: %w", err)
		}

		t.Add(rec[0], rec[1:]...)
	}

	return t, nil
}

// LoadTable reads the conjugation table at path.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	return ReadTable(f)
}

// Lemmas builds a Table from the lemmas the tagger attached to the verb
// tokens of the doc. Tokens without lemma are ignored.
func Lemmas(doc sent.Doc) Table {
	t := Table{}
	for _, p := range doc.Paragraphs {
		for _, s := range p {
			for _, token := range s {
				if token.Lemma == "" || !sent.IsVerbLike(token.Tag) {
					continue
				}
				t.Add(token.Lemma, token.Text)
			}
		}
	}

	return t
}

// Chain asks each Normalizer in order and returns the first hit.
type Chain []Normalizer

func (c Chain) Present(word string) (string, bool) {
	for _, n := range c {
		if n == nil {
			continue
		}
		if base, ok := n.Present(word); ok {
			return base, true
		}
	}

	return "", false
}

// Identity recognizes every word as its own present form.
var Identity = NormalizerFunc(func(word string) (string, bool) {
	return word, word != ""
})
