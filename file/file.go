package file

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	sent "github.com/revelaction/segmet/sentence"
)

const (
	ExtJSON   = ".json"
	ExtTagged = ".tag"
)

// ReadDoc reads a Doc from the given path. JSON files are unmarshalled,
// anything else is read as tagged text.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if filepath.Ext(path) == ExtJSON {
		var doc sent.Doc
		if err := json.NewDecoder(f).Decode(&doc); err != nil {
			return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
		}
		if doc.Title == "" {
			doc.Title = title
		}
		return doc, nil
	}

	return ReadTagged(f, title)
}

// ReadTagged reads tagged text: one sentence per line, tokens separated by
// spaces, each token is the word and its tag joined by the last '/'. An
// empty line starts a new paragraph.
//
//	The/DT cat/NN sat/VBD ./.
//	It/PRP was/VBD tired/JJ ./.
//
//	Then/RB it/PRP slept/VBD ./.
func ReadTagged(r io.Reader, title string) (sent.Doc, error) {
	doc := sent.Doc{Title: title}
	var para sent.Paragraph

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			doc.Paragraphs = append(doc.Paragraphs, para)
			para = nil
			continue
		}

		var tokens []sent.Token
		for i, field := range strings.Fields(line) {
			idx := strings.LastIndex(field, "/")
			if idx <= 0 || idx == len(field)-1 {
				return sent.Doc{}, fmt.Errorf("line %d: token %q is not word/TAG", lineNum, field)
			}

			tokens = append(tokens, sent.Token{Text: field[:idx], Tag: field[idx+1:], Index: i})
		}

		para = append(para, tokens)
	}

	if err := sc.Err(); err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	if para != nil || len(doc.Paragraphs) == 0 {
		doc.Paragraphs = append(doc.Paragraphs, para)
	}

	return doc, nil
}

// WriteTagged writes the doc in the tagged text format.
func WriteTagged(w io.Writer, doc sent.Doc) error {
	bw := bufio.NewWriter(w)
	for i, para := range doc.Paragraphs {
		if i > 0 {
			bw.WriteString("\n")
		}
		for _, tokens := range para {
			words := make([]string, len(tokens))
			for j, t := range tokens {
				words[j] = t.Text + "/" + t.Tag
			}
			bw.WriteString(strings.Join(words, " "))
			bw.WriteString("\n")
		}
	}

	return bw.Flush()
}
