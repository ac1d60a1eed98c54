package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/segmet/annotate"
)

// JSONRenderer writes records as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the records as a JSON array.
func (r *JSONRenderer) Render(records []*annotate.Record) error {
	if records == nil {
		records = []*annotate.Record{}
	}

	return json.NewEncoder(r.W).Encode(records)
}

// compile-time interface check
var _ RecordRenderer = (*JSONRenderer)(nil)
