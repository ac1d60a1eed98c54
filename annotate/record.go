// Package annotate classifies the tokens of tagged sentences into subjects,
// verbs and remaining words, and scores the sentences against a verb metric
// table.
package annotate

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	sent "github.com/revelaction/segmet/sentence"
)

// Copula is dropped from the actual verbs when a more specific verb is
// present in the sentence.
const Copula = "Be"

// Record is the annotation of one sentence.
type Record struct {
	// Paragraph and Sentence are 1 based. Sentence restarts at each paragraph
	// and only counts non empty records.
	Paragraph int `json:"para"`
	Sentence  int `json:"sent"`

	Tokens []sent.Token `json:"tokens"`

	// Subjects are the subject phrases found backtracking from each verb.
	Subjects Set `json:"subjects"`

	// Verbs are gerunds and participles following a noun, capitalized.
	Verbs Set `json:"verbs"`

	// ActualVerbs are the finite verbs, in present form and capitalized.
	ActualVerbs Set `json:"actual_verbs"`

	// Remaining are the content words that are not part of the above.
	Remaining Set `json:"remaining"`

	// Metrics has one display string per metric column, f.ex. "1+\n2=3".
	Metrics []string `json:"metrics,omitempty"`

	// Sums has the sentence total per metric column.
	Sums []int `json:"sums,omitempty"`
}

// NewRecord returns an empty Record for the sentence at paragraph para.
func NewRecord(para, sentence int) *Record {
	return &Record{
		Paragraph:   para,
		Sentence:    sentence,
		Subjects:    Set{},
		Verbs:       Set{},
		ActualVerbs: Set{},
		Remaining:   Set{},
	}
}

func (r *Record) AddToken(t sent.Token) {
	r.Tokens = append(r.Tokens, t)
}

// IsEmpty is true if the sentence had only punctuation, or nothing.
func (r *Record) IsEmpty() bool {
	return len(r.Subjects)+len(r.Verbs)+len(r.ActualVerbs)+len(r.Remaining) == 0
}

// AllVerbs returns the union of Verbs and ActualVerbs, sorted.
func (r *Record) AllVerbs() []string {
	all := Set{}
	for v := range r.Verbs {
		all.Add(v)
	}
	for v := range r.ActualVerbs {
		all.Add(v)
	}

	return all.Sorted()
}

// capitalize upper cases the first letter and lower cases the rest, hyphens
// included: "well-fed" is "Well-fed".
func capitalize(w string) string {
	_, size := utf8.DecodeRuneInString(w)
	return cases.Upper(language.English).String(w[:size]) + cases.Lower(language.English).String(w[size:])
}
