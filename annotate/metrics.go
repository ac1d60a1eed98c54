package annotate

import (
	"strconv"
	"strings"

	"github.com/revelaction/segmet/metric"
	sent "github.com/revelaction/segmet/sentence"
)

// ApplyMetrics scores the actual verbs of the sentence against the metric
// table and adds the column sums to sums.
//
// ignore holds the words already spent in the paragraph. Words inside an
// unclosed bracket of this sentence are ignored too. A verb in the table
// that is ignored contributes a zero. Verbs not in the table are skipped.
//
// It returns the ignore list for the next sentence of the paragraph (ignore
// plus the bracketed words plus the verbs matched here) and the matched
// verbs.
func (r *Record) ApplyMetrics(t *metric.Table, sums *metric.Sums, ignore []string) ([]string, []string, error) {
	out := newIgnoreList(ignore)
	for _, w := range bracketed(r.Tokens) {
		out.add(w)
	}

	cols := t.Columns()
	parts := make([][]string, cols)
	colSums := make([]int, cols)

	var matched []string
	for _, v := range r.ActualVerbs.Sorted() {
		key := strings.ToLower(v)
		values, ok := t.Values(key)
		if !ok {
			continue
		}

		if out.has(key) {
			for i := range parts {
				parts[i] = append(parts[i], "0")
			}
			continue
		}

		matched = append(matched, key)
		for i, val := range values {
			parts[i] = append(parts[i], strconv.Itoa(val))
			colSums[i] += val
		}
	}

	r.Metrics = make([]string, cols)
	for i := range parts {
		r.Metrics[i] = display(parts[i], colSums[i])
	}
	r.Sums = colSums

	if err := sums.Add(colSums); err != nil {
		return nil, nil, err
	}

	for _, key := range matched {
		out.add(key)
	}

	return out.words, matched, nil
}

// display renders the contributions of a column: "1+\n2=3". A column without
// contributions is "0".
func display(parts []string, sum int) string {
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, "+\n") + "=" + strconv.Itoa(sum)
}

// bracketed returns the lowercased words found while an opening bracket of
// the sentence is not closed. The bracket tokens themselves are not
// included.
func bracketed(tokens []sent.Token) []string {
	var words []string
	depth := 0
	for _, t := range tokens {
		if depth < 0 {
			words = append(words, strings.ToLower(t.Text))
		}

		if sent.IsOpenBracket(t.Text) {
			depth--
		}
		if sent.IsCloseBracket(t.Text) {
			depth++
		}
	}

	return words
}

// ignoreList is an ordered list of words without duplicates.
type ignoreList struct {
	words []string
	seen  map[string]struct{}
}

func newIgnoreList(words []string) *ignoreList {
	l := &ignoreList{seen: map[string]struct{}{}}
	for _, w := range words {
		l.add(w)
	}

	return l
}

func (l *ignoreList) add(w string) {
	if _, ok := l.seen[w]; ok {
		return
	}
	l.seen[w] = struct{}{}
	l.words = append(l.words, w)
}

func (l *ignoreList) has(w string) bool {
	_, ok := l.seen[w]
	return ok
}
