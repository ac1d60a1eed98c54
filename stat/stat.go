package stat

import (
	"github.com/revelaction/segmet/annotate"
	sent "github.com/revelaction/segmet/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumParagraphs         int
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// NumRecords are the non empty sentences, NumEmpty the rest.
	NumRecords int
	NumEmpty   int

	// TagDis is the number of tokens per tag.
	TagDis map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}, TagDis: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the paragraphs, sentences and tokens of the doc.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumParagraphs += len(doc.Paragraphs)
	for _, para := range doc.Paragraphs {
		for _, sentence := range para {
			h.stats.NumSentences++
			h.stats.NumTokens += len(sentence)
			h.stats.TokensPerSentenceDis[len(sentence)]++

			for _, token := range sentence {
				h.stats.TagDis[token.Tag]++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// AggregateRecords counts the records kept after classification. It must be
// called after Aggregate.
func (h *Handler) AggregateRecords(records []*annotate.Record) {
	h.stats.NumRecords += len(records)
	h.stats.NumEmpty = h.stats.NumSentences - h.stats.NumRecords
}
