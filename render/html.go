package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/revelaction/segmet/annotate"
)

// HTMLRenderer writes records as an HTML table.
type HTMLRenderer struct {
	W io.Writer

	// Columns is the number of metric columns of the table.
	Columns int

	Title string

	// Stylesheet is linked from the page head if not empty.
	Stylesheet string
}

var _ RecordRenderer = (*HTMLRenderer)(nil)

func NewHTMLRenderer(w io.Writer, columns int) *HTMLRenderer {
	return &HTMLRenderer{W: w, Columns: columns, Title: "segmet"}
}

func (r *HTMLRenderer) Render(records []*annotate.Record) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	root.AppendChild(head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	title := element(atom.Title)
	title.AppendChild(text(r.Title))
	head.AppendChild(title)
	if r.Stylesheet != "" {
		head.AppendChild(element(atom.Link,
			html.Attribute{Key: "rel", Val: "stylesheet"},
			html.Attribute{Key: "href", Val: r.Stylesheet},
		))
	}

	body := element(atom.Body)
	root.AppendChild(body)
	h1 := element(atom.H1)
	h1.AppendChild(text(r.Title))
	body.AppendChild(h1)

	table := element(atom.Table, html.Attribute{Key: "id", Val: "keywords"})
	body.AppendChild(table)

	thead := element(atom.Thead)
	table.AppendChild(thead)
	thead.AppendChild(r.header())

	tbody := element(atom.Tbody)
	table.AppendChild(tbody)
	for _, rec := range records {
		tbody.AppendChild(r.row(rec))
	}

	return html.Render(r.W, doc)
}

func (r *HTMLRenderer) header() *html.Node {
	names := []string{"Para. #", "Sent. #", "Subject", "Verbs", "Actual Verbs", "Remaining"}
	for i := 1; i <= r.Columns; i++ {
		names = append(names, fmt.Sprintf("Ctg. #%d", i))
	}

	tr := element(atom.Tr)
	for _, name := range names {
		th := element(atom.Th)
		span := element(atom.Span)
		span.AppendChild(text(name))
		th.AppendChild(span)
		tr.AppendChild(th)
	}

	return tr
}

func (r *HTMLRenderer) row(rec *annotate.Record) *html.Node {
	tr := element(atom.Tr)
	cells := []string{
		strconv.Itoa(rec.Paragraph),
		strconv.Itoa(rec.Sentence),
		strings.Join(rec.Subjects.Sorted(), ", "),
		strings.Join(rec.AllVerbs(), " "),
		strings.Join(rec.ActualVerbs.Sorted(), " "),
		strings.Join(rec.Remaining.Sorted(), " "),
	}
	for _, c := range cells {
		td := element(atom.Td)
		td.AppendChild(text(c))
		tr.AppendChild(td)
	}

	// one line per contribution
	for _, m := range rec.Metrics {
		td := element(atom.Td)
		for i, line := range strings.Split(m, "\n") {
			if i > 0 {
				td.AppendChild(element(atom.Br))
			}
			td.AppendChild(text(line))
		}
		tr.AppendChild(td)
	}

	return tr
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
