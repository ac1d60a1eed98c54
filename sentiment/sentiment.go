// Package sentiment tallies the positive and negative words of annotated
// sentences using a binary opinion lexicon.
package sentiment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/segmet/annotate"
)

// Polarity is the label of a lexicon word.
type Polarity int

const (
	Positive Polarity = iota
	Negative
)

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	}

	return fmt.Sprintf("Polarity(%d)", int(p))
}

var ErrEmptyLexicon = errors.New("sentiment lexicon has no words")

// Lexicon maps a word to its polarity.
type Lexicon map[string]Polarity

// Tally is the count of positive, negative and neutral tokens.
type Tally struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Score looks up the text of every token of every record in the lexicon.
// The lookup is literal: no case folding nor stemming.
func Score(records []*annotate.Record, lex Lexicon) Tally {
	var t Tally
	for _, r := range records {
		for _, token := range r.Tokens {
			p, ok := lex[token.Text]
			switch {
			case !ok:
				t.Neutral++
			case p == Positive:
				t.Positive++
			default:
				t.Negative++
			}
		}
	}

	return t
}

// ReadWords adds the words of r, one per line, to the lexicon with polarity
// p. Empty lines and lines starting with ';' are skipped. Words are kept as
// they are, Score matches them byte for byte.
func (l Lexicon) ReadWords(r io.Reader, p Polarity) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" || strings.HasPrefix(word, ";") {
			continue
		}

		l[word] = p
	}

	return sc.Err()
}

// LoadLexicon reads the positive word file and then the negative one. A word
// present in both files is negative.
func LoadLexicon(positivePath, negativePath string) (Lexicon, error) {
	l := Lexicon{}
	for _, src := range []struct {
		path string
		p    Polarity
	}{
		{positivePath, Positive},
		{negativePath, Negative},
	} {
		f, err := os.Open(src.path)
		if err != nil {
			return nil, fmt.Errorf("IO error: %w", err)
		}

		err = l.ReadWords(f, src.p)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.path, err)
		}
	}

	if len(l) == 0 {
		return nil, ErrEmptyLexicon
	}

	return l, nil
}
