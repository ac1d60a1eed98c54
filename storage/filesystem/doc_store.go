package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/segmet/file"
	sent "github.com/revelaction/segmet/sentence"
	"github.com/revelaction/segmet/storage"
)

type DocStore struct {
	docDir string

	// In-memory cache
	docs []sent.Doc

	loaded []bool
}

var _ storage.DocReader = (*DocStore)(nil)

// NewDocStore creates a filesystem document store over the tagged (.tag)
// and JSON documents of docDir. Docs are read on demand.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))

	idx := 0
	for _, f := range files {
		if f.IsDir() {
			continue
		}

		ext := filepath.Ext(f.Name())
		if ext != file.ExtJSON && ext != file.ExtTagged {
			continue
		}

		docs = append(docs, sent.Doc{
			Id:    idx,
			Title: f.Name(),
		})
		idx++
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
		loaded: make([]bool, len(docs)),
	}, nil
}

// LoadAll preloads all docs into memory.
func (h *DocStore) LoadAll(cb func(total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		if cb != nil {
			cb(total, h.docs[i].Title)
		}

		if err := h.load(i); err != nil {
			return err
		}
	}

	return nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	return h.docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	if err := h.load(id); err != nil {
		return sent.Doc{}, err
	}

	return h.docs[id], nil
}

func (h *DocStore) load(id int) error {
	if h.loaded[id] {
		return nil
	}

	doc := &h.docs[id] // pointer to modify in place
	full, err := file.ReadDoc(filepath.Join(h.docDir, doc.Title))
	if err != nil {
		return fmt.Errorf("filesystem document %q: %w", doc.Title, err)
	}

	// Title and Id are already set
	doc.Labels = full.Labels
	doc.Paragraphs = full.Paragraphs
	h.loaded[id] = true

	return nil
}
