package annotate

import (
	"encoding/json"
	"sort"
)

// Set is an unordered set of words. It is rendered sorted.
type Set map[string]struct{}

func (s Set) Add(w string) {
	s[w] = struct{}{}
}

func (s Set) Has(w string) bool {
	_, ok := s[w]
	return ok
}

func (s Set) Delete(w string) {
	delete(s, w)
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return err
	}

	*s = Set{}
	for _, w := range words {
		s.Add(w)
	}

	return nil
}
