package metric

import "fmt"

// Sums accumulates the column totals of the metric table over a whole
// document. It only grows.
type Sums struct {
	totals []int
}

// NewSums returns zeroed totals for a table of n columns.
func NewSums(n int) *Sums {
	return &Sums{totals: make([]int, n)}
}

// Add adds a sentence column sums to the totals.
func (s *Sums) Add(values []int) error {
	if len(values) != len(s.totals) {
		return fmt.Errorf("sums: got %d columns, expected %d", len(values), len(s.totals))
	}

	for i, v := range values {
		s.totals[i] += v
	}

	return nil
}

// Get returns a copy of the totals.
func (s *Sums) Get() []int {
	return append([]int(nil), s.totals...)
}

func (s *Sums) Len() int {
	return len(s.totals)
}
