package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/revelaction/segmet/annotate"
	sent "github.com/revelaction/segmet/sentence"
	"github.com/revelaction/segmet/sentiment"
)

var ErrRunNotFound = errors.New("run not found")

// DocReader defines read operations for tagged document storage
type DocReader interface {
	// List returns the metadata (Id, Title) of documents.
	// Content (Paragraphs) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)
}

// Run is the result of annotating one document.
type Run struct {
	Id        uuid.UUID
	Title     string
	CreatedAt time.Time

	// Columns is the number of metric columns.
	Columns int

	Records   []*annotate.Record
	Sums      []int
	Sentiment sentiment.Tally
}

// RunReader defines read operations for annotation run storage
type RunReader interface {
	// List returns the runs without records, newest first.
	List() ([]Run, error)

	// Read returns a run with all its records.
	Read(id uuid.UUID) (Run, error)
}

// RunWriter defines write operations for annotation run storage
type RunWriter interface {
	// Write persists a run. The Id and CreatedAt are set if empty.
	Write(run *Run) error
}

// RunRepository combines read and write operations
type RunRepository interface {
	RunReader
	RunWriter
}
