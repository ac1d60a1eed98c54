// Package explore is an interactive prompt to browse the records of an
// annotated document.
package explore

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/segmet/annotate"
	"github.com/revelaction/segmet/render"
	"github.com/revelaction/segmet/sentiment"
)

const (
	cmdVerb      = "verb"
	cmdSubject   = "subject"
	cmdSums      = "sums"
	cmdSentiment = "sentiment"
	cmdQuit      = "quit"
)

var ErrUnknownCommand = errors.New("unknown command")

type Handler struct {
	Records   []*annotate.Record
	Sums      []int
	Sentiment sentiment.Tally
	Renderer  *render.Renderer

	W io.Writer
}

func NewHandler(records []*annotate.Record, sums []int, tally sentiment.Tally, r *render.Renderer) *Handler {
	return &Handler{
		Records:   records,
		Sums:      sums,
		Sentiment: tally,
		Renderer:  r,
		W:         r.W,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.W, "🔑 <para> <sent>, verb <Verb>, subject <word>, sums, sentiment, 🔧 quit")
	verbs := h.verbs()

	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer(verbs),
			prompt.OptionTitle("segmet explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		history = append(history, in)

		quit, err := h.Exec(in)
		if err != nil {
			fmt.Fprintf(h.W, "%v\n", err)
			continue
		}

		if quit {
			return nil
		}
	}
}

// Exec runs one prompt line. It returns true if the line asks to quit.
func (h *Handler) Exec(in string) (bool, error) {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case cmdQuit:
		return true, nil

	case cmdSums:
		for i, s := range h.Sums {
			fmt.Fprintf(h.W, "%14s %d\n", fmt.Sprintf("ctg. #%d:", i+1), s)
		}
		return false, nil

	case cmdSentiment:
		fmt.Fprintf(h.W, "%14s %d\n", "positive:", h.Sentiment.Positive)
		fmt.Fprintf(h.W, "%14s %d\n", "negative:", h.Sentiment.Negative)
		fmt.Fprintf(h.W, "%14s %d\n", "neutral:", h.Sentiment.Neutral)
		return false, nil

	case cmdVerb:
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: %s <Verb>", cmdVerb)
		}
		return false, h.Renderer.Render(h.withVerb(fields[1]))

	case cmdSubject:
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: %s <word>", cmdSubject)
		}
		return false, h.Renderer.Render(h.withSubject(fields[1]))
	}

	if len(fields) != 2 {
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, in)
	}

	para, err := strconv.Atoi(fields[0])
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, in)
	}

	sentence, err := strconv.Atoi(fields[1])
	if err != nil {
		return false, fmt.Errorf("invalid sentence number %q: %w", fields[1], err)
	}

	rec := h.find(para, sentence)
	if rec == nil {
		return false, fmt.Errorf("no sentence %d in paragraph %d", sentence, para)
	}

	h.Renderer.Record(rec)
	return false, nil
}

func (h *Handler) find(para, sentence int) *annotate.Record {
	for _, rec := range h.Records {
		if rec.Paragraph == para && rec.Sentence == sentence {
			return rec
		}
	}

	return nil
}

// withVerb returns the records having the verb as verb or actual verb.
func (h *Handler) withVerb(v string) []*annotate.Record {
	var out []*annotate.Record
	for _, rec := range h.Records {
		if rec.Verbs.Has(v) || rec.ActualVerbs.Has(v) {
			out = append(out, rec)
		}
	}

	return out
}

// withSubject returns the records with a subject phrase containing the word.
func (h *Handler) withSubject(word string) []*annotate.Record {
	word = strings.ToLower(word)
	var out []*annotate.Record
	for _, rec := range h.Records {
		for subject := range rec.Subjects {
			if containsWord(subject, word) {
				out = append(out, rec)
				break
			}
		}
	}

	return out
}

func containsWord(phrase, word string) bool {
	for _, w := range strings.Fields(phrase) {
		if strings.ToLower(w) == word {
			return true
		}
	}

	return false
}

// verbs returns all verbs of the records, sorted.
func (h *Handler) verbs() []string {
	all := annotate.Set{}
	for _, rec := range h.Records {
		for _, v := range rec.AllVerbs() {
			all.Add(v)
		}
	}

	return all.Sorted()
}

func (h *Handler) completer(verbs []string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return h.suggest(in.TextBeforeCursor(), verbs)
	}
}

func (h *Handler) suggest(befCursor string, verbs []string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")

	if len(tokens) == 1 {
		for _, c := range []string{cmdVerb, cmdSubject, cmdSums, cmdSentiment, cmdQuit} {
			if strings.HasPrefix(c, tokens[0]) {
				s = append(s, prompt.Suggest{Text: c})
			}
		}
		return s
	}

	if len(tokens) == 2 && tokens[0] == cmdVerb {
		counts := h.verbCounts()
		for _, v := range verbs {
			if strings.HasPrefix(strings.ToLower(v), strings.ToLower(tokens[1])) {
				s = append(s, prompt.Suggest{Text: v, Description: fmt.Sprintf("✍  %d", counts[v])})
			}
		}
	}

	return s
}

// verbCounts counts the sentences of each verb.
func (h *Handler) verbCounts() map[string]int {
	counts := map[string]int{}
	for _, rec := range h.Records {
		for _, v := range rec.AllVerbs() {
			counts[v]++
		}
	}

	return counts
}
