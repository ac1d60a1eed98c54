package annotate

import (
	"log/slog"

	"github.com/revelaction/segmet/metric"
	sent "github.com/revelaction/segmet/sentence"
	"github.com/revelaction/segmet/verb"
)

// Process classifies every sentence of the doc and returns the non empty
// records in document order.
//
// The paragraph index increments for every paragraph of the doc, empty or
// not. The sentence index restarts at 1 for each paragraph and only
// increments for kept records.
func Process(doc sent.Doc, n verb.Normalizer) []*Record {
	return ProcessFunc(doc, n, nil)
}

// ProcessFunc is Process calling progress after each paragraph.
func ProcessFunc(doc sent.Doc, n verb.Normalizer, progress func(para int)) []*Record {
	var records []*Record
	for p, paragraph := range doc.Paragraphs {
		para := p + 1
		sentence := 1
		for _, tokens := range paragraph {
			r := Classify(para, sentence, tokens, n)
			if r.IsEmpty() {
				slog.Debug("skip empty sentence", "para", para, "tokens", len(tokens))
				continue
			}

			records = append(records, r)
			sentence++
		}

		if progress != nil {
			progress(para)
		}
	}

	return records
}

// ApplyMetrics scores the records in order, threading the ignore list from
// sentence to sentence. The ignore list is cleared when the paragraph
// changes.
func ApplyMetrics(records []*Record, t *metric.Table, sums *metric.Sums) error {
	var ignore []string
	paragraph := 0
	for _, r := range records {
		if r.Paragraph != paragraph {
			paragraph = r.Paragraph
			ignore = nil
		}

		next, matched, err := r.ApplyMetrics(t, sums, ignore)
		if err != nil {
			return err
		}

		if len(matched) > 0 {
			slog.Debug("verb metrics", "para", r.Paragraph, "sent", r.Sentence, "verbs", matched)
		}

		ignore = next
	}

	return nil
}
