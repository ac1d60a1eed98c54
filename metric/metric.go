// Package metric holds the per verb metric table and the document wide
// running sums of its columns.
package metric

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrEmptyTable  = errors.New("metric table has no rows")
	ErrRaggedTable = errors.New("metric table rows have different column counts")
	ErrBadValue    = errors.New("metric table value is not an integer")
)

// Table maps a lowercase verb to its metric values, one per column. All rows
// have the same number of columns.
type Table struct {
	rows    map[string][]int
	columns int
}

// NewTable validates rows and builds a Table. Keys are lowercased.
func NewTable(rows map[string][]int) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{rows: make(map[string][]int, len(rows)), columns: -1}
	for key, values := range rows {
		if t.columns == -1 {
			t.columns = len(values)
		}
		if len(values) != t.columns {
			return nil, fmt.Errorf("%w: %q has %d columns, expected %d", ErrRaggedTable, key, len(values), t.columns)
		}
		t.rows[strings.ToLower(key)] = append([]int(nil), values...)
	}

	if t.columns == 0 {
		return nil, fmt.Errorf("%w: rows have no metric columns", ErrEmptyTable)
	}

	return t, nil
}

// Columns returns the number of metric columns.
func (t *Table) Columns() int {
	return t.columns
}

// Len returns the number of verbs.
func (t *Table) Len() int {
	return len(t.rows)
}

// Values returns the metric values of the lowercase verb key.
func (t *Table) Values(key string) ([]int, bool) {
	v, ok := t.rows[key]
	return v, ok
}

// Has reports whether the lowercase verb key is in the table.
func (t *Table) Has(key string) bool {
	_, ok := t.rows[key]
	return ok
}

// ReadTable reads a metric table in CSV format. The first row is a header and
// is skipped. The first column is the verb, the rest are integer values.
//
//	verb,ctg1,ctg2,ctg3
//	run,1,2,0
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	// header
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("metric table: %w", err)
	}

	rows := map[string][]int{}
	columns := -1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("metric table: %w", err)
		}

		line, _ := cr.FieldPos(0)
		key := strings.ToLower(strings.TrimSpace(rec[0]))

		if columns == -1 {
			columns = len(rec) - 1
		}
		if len(rec)-1 != columns {
			return nil, fmt.Errorf("%w: line %d has %d columns, expected %d", ErrRaggedTable, line, len(rec)-1, columns)
		}

		values := make([]int, 0, len(rec)-1)
		for _, field := range rec[1:] {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadValue, line, field)
			}
			values = append(values, v)
		}

		rows[key] = values
	}

	return NewTable(rows)
}

// LoadTable reads the metric table at path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}
