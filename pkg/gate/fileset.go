package gate

import (
	"slices"
)

// FileSet is an immutable set of file names kept in sorted order.
type FileSet struct {
	names []string
}

// NewFileSet builds a set from names, dropping duplicates.
func NewFileSet(names ...string) FileSet {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return FileSet{names: slices.Compact(sorted)}
}

// Contains reports whether name is in the set.
func (s FileSet) Contains(name string) bool {
	_, found := slices.BinarySearch(s.names, name)
	return found
}

// Names returns the members in sorted order.
func (s FileSet) Names() []string {
	return slices.Clone(s.names)
}

// Len returns the number of members.
func (s FileSet) Len() int {
	return len(s.names)
}

// Intersect returns the sorted names present in both sets.
func (s FileSet) Intersect(other FileSet) []string {
	var common []string
	for _, name := range s.names {
		if other.Contains(name) {
			common = append(common, name)
		}
	}
	return common
}
