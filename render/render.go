package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/segmet/annotate"
	sent "github.com/revelaction/segmet/sentence"
)

const (
	DefaultFormat = "text"
	rowSeparator  = 30
)

var (
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"text", "html", "json"}
}

// RecordRenderer writes annotated records.
type RecordRenderer interface {
	Render(records []*annotate.Record) error
}

// New returns the RecordRenderer for format.
func New(format string, w io.Writer, columns int) (RecordRenderer, error) {
	switch format {
	case "text":
		return &Renderer{W: w}, nil
	case "html":
		return NewHTMLRenderer(w, columns), nil
	case "json":
		return NewJSONRenderer(w), nil
	}

	return nil, fmt.Errorf("unsupported format %q, allowed values are %s", format, strings.Join(SupportedFormats(), ", "))
}

// Renderer writes records as a text table, one row per sentence.
type Renderer struct {
	W io.Writer

	HasColor bool
}

var _ RecordRenderer = (*Renderer)(nil)

// Render writes one row per record:
//
//	------------------------------
//	| 1 | 1 | The cat | Sat | Sat |  | 1=1 | 0 |
func (r *Renderer) Render(records []*annotate.Record) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(r.W, "%s\n%s\n", strings.Repeat("-", rowSeparator), r.row(rec)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) row(rec *annotate.Record) string {
	cells := []string{
		fmt.Sprintf("%d", rec.Paragraph),
		fmt.Sprintf("%d", rec.Sentence),
		strings.Join(rec.Subjects.Sorted(), ", "),
		r.color(strings.Join(rec.AllVerbs(), " "), Yellow256),
		r.color(strings.Join(rec.ActualVerbs.Sorted(), " "), Green256),
		strings.Join(rec.Remaining.Sorted(), " "),
	}

	for _, m := range rec.Metrics {
		cells = append(cells, strings.ReplaceAll(m, "\n", " "))
	}

	return "| " + strings.Join(cells, " | ") + " |"
}

// Record writes the detail of one record: the sentence, the derived sets
// and the metrics.
func (r *Renderer) Record(rec *annotate.Record) {
	fmt.Fprintf(r.W, "✍  %d-%d %s\n", rec.Paragraph, rec.Sentence, r.SentenceString(rec.Tokens))
	fmt.Fprintf(r.W, "%14s %s\n", "subjects:", strings.Join(rec.Subjects.Sorted(), ", "))
	fmt.Fprintf(r.W, "%14s %s\n", "verbs:", strings.Join(rec.Verbs.Sorted(), " "))
	fmt.Fprintf(r.W, "%14s %s\n", "actual verbs:", strings.Join(rec.ActualVerbs.Sorted(), " "))
	fmt.Fprintf(r.W, "%14s %s\n", "remaining:", strings.Join(rec.Remaining.Sorted(), " "))
	for i, m := range rec.Metrics {
		fmt.Fprintf(r.W, "%14s %s\n", fmt.Sprintf("ctg. #%d:", i+1), strings.ReplaceAll(m, "\n", " "))
	}
}

// Tokens writes one line per token with its tag.
func (r *Renderer) Tokens(tokens []sent.Token) {
	for _, token := range tokens {
		fmt.Fprintf(r.W, "%20q %15q %6s %6d\n", token.Text, token.Lemma, token.Tag, token.Index)
	}
}

// SentenceString rebuilds the text of the sentence. Punctuation and closing
// brackets stick to the previous word. Actual verb tokens are colored.
func (r *Renderer) SentenceString(tokens []sent.Token) string {
	var str strings.Builder
	stick := true
	for _, token := range tokens {
		closing := sent.IsCloseBracket(token.Text) || (token.Tag != "" && sent.IsPunctuation(token.Tag) && !sent.IsOpenBracket(token.Text))
		if !stick && !closing {
			str.WriteString(" ")
		}

		text := token.Text
		if sent.IsActualVerb(token.Tag) {
			text = r.color(text, Green256)
		}
		str.WriteString(text)

		stick = sent.IsOpenBracket(token.Text)
	}

	return str.String()
}

func (r *Renderer) color(s, color string) string {
	if !r.HasColor || s == "" {
		return s
	}

	return color + s + Off
}
