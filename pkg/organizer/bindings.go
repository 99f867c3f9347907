package organizer

import (
	"sort"
	"strings"
)

// SortBindings returns a new slice of named bindings ordered by display name
// using plain byte-wise comparison. The input is left untouched.
func SortBindings(bindings []Binding) []Binding {
	if bindings == nil {
		return nil
	}
	sorted := append([]Binding(nil), bindings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.Compare(sorted[i].DisplayName(), sorted[j].DisplayName()) < 0
	})
	return sorted
}
