package models

import "sort"

// StringSet is an unordered set of ids. Membership is what matters during
// generation; serialization sorts for stable output.
type StringSet map[string]struct{}

// NewStringSet returns a set containing the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a value; duplicates are a no-op.
func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

// Contains reports membership.
func (s StringSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s StringSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
