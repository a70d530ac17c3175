// SPDX-License-Identifier: MPL-2.0

package manifest

import "sort"

// DependencySet is an unordered, deduplicated set of dependency names
// (no versions). Presence in any discovered manifest under a root counts
// as presence in the set.
type DependencySet map[string]struct{}

// NewDependencySet builds a set from the given names.
func NewDependencySet(names ...string) DependencySet {
	s := make(DependencySet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s DependencySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// HasAny reports whether at least one of the given names is in the set.
func (s DependencySet) HasAny(names ...string) bool {
	for _, n := range names {
		if s.Has(n) {
			return true
		}
	}
	return false
}

// Add inserts name into the set.
func (s DependencySet) Add(name string) {
	s[name] = struct{}{}
}

// Merge adds every name from other into s (union semantics).
func (s DependencySet) Merge(other DependencySet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// Names returns the dependency names in sorted order, for stable output.
func (s DependencySet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
