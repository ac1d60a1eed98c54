package annotate

import (
	"log/slog"
	"strings"

	sent "github.com/revelaction/segmet/sentence"
	"github.com/revelaction/segmet/verb"
)

// pair is the classification window: the tag of the current token and the
// tag of the token before it.
type pair struct {
	prev    string
	hasPrev bool
	tag     string
}

// prevIsNoun is false at the start of the sentence.
func (p pair) prevIsNoun() bool {
	return p.hasPrev && sent.IsNoun(p.prev)
}

// rule is a transition of the classifier. The first matching rule is
// applied to the token at index i.
type rule struct {
	name  string
	match func(p pair) bool
	apply func(r *Record, i int, n verb.Normalizer)
}

var rules = []rule{
	{
		// finite verb: look for its subject
		name:  "actual verb",
		match: func(p pair) bool { return sent.IsActualVerb(p.tag) },
		apply: func(r *Record, i int, n verb.Normalizer) {
			if subject, ok := findSubject(r.Tokens, i); ok {
				r.Subjects.Add(subject)
			}
			r.addActualVerb(r.Tokens[i].Text, n)
		},
	},
	{
		// gerund not preceded by a noun: backed by an implicit verb
		name:  "backed gerund",
		match: func(p pair) bool { return sent.IsVerbLike(p.tag) && !p.prevIsNoun() },
		apply: func(r *Record, i int, n verb.Normalizer) {
			r.addActualVerb(r.Tokens[i].Text, n)
		},
	},
	{
		name:  "bare gerund",
		match: func(p pair) bool { return sent.IsVerbLike(p.tag) },
		apply: func(r *Record, i int, _ verb.Normalizer) {
			r.Verbs.Add(capitalize(r.Tokens[i].Text))
		},
	},
	{
		name:  "content word",
		match: func(p pair) bool { return !sent.IsPunctuation(p.tag) },
		apply: func(r *Record, i int, _ verb.Normalizer) {
			r.Remaining.Add(r.Tokens[i].Text)
		},
	},
}

// Classify builds the Record of a sentence.
func Classify(para, sentence int, tokens []sent.Token, n verb.Normalizer) *Record {
	r := NewRecord(para, sentence)
	for _, t := range tokens {
		r.AddToken(t)
	}

	r.Classify(n)
	return r
}

// Classify fills the Subjects, Verbs, ActualVerbs and Remaining sets from the
// tokens. The tokens are walked in order, the result depends on it.
func (r *Record) Classify(n verb.Normalizer) {
	for i, token := range r.Tokens {
		p := pair{tag: token.Tag}
		if i > 0 {
			p.prev = r.Tokens[i-1].Tag
			p.hasPrev = true
		}

		for _, rl := range rules {
			if rl.match(p) {
				rl.apply(r, i, n)
				break
			}
		}
	}

	if len(r.ActualVerbs) > 1 {
		r.ActualVerbs.Delete(Copula)
	}

	for subject := range r.Subjects {
		for _, w := range strings.Fields(subject) {
			r.Remaining.Delete(w)
		}
	}
}

func (r *Record) addActualVerb(word string, n verb.Normalizer) {
	present, ok := n.Present(word)
	if !ok {
		slog.Debug("unknown verb form", "word", word, "para", r.Paragraph, "sent", r.Sentence)
		return
	}

	r.ActualVerbs.Add(capitalize(present))
}
