package organizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func names(bindings []Binding) []string {
	var out []string
	for _, b := range bindings {
		out = append(out, b.DisplayName())
	}
	return out
}

func TestSortBindings(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name  string
		input []Binding
		want  []string
	}{
		{
			name:  "simple",
			input: []Binding{{ImportedName: "b", LocalName: "b"}, {ImportedName: "a", LocalName: "a"}},
			want:  []string{"a", "b"},
		},
		{
			name: "sorted by alias when aliased",
			input: []Binding{
				{ImportedName: "a", LocalName: "zeta"},
				{ImportedName: "z", LocalName: "alpha"},
			},
			want: []string{"alpha", "zeta"},
		},
		{
			name:  "case sensitive byte order",
			input: []Binding{{ImportedName: "useState"}, {ImportedName: "FC"}, {ImportedName: "createContext"}},
			want:  []string{"FC", "createContext", "useState"},
		},
		{
			name:  "single binding",
			input: []Binding{{ImportedName: "only"}},
			want:  []string{"only"},
		},
		{
			name:  "empty",
			input: []Binding{},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, names(SortBindings(tt.input)))
		})
	}
}

func TestSortBindings_doesNotMutateInput(t *testing.T) {
	req := require.New(t)
	input := []Binding{{ImportedName: "b"}, {ImportedName: "a"}}

	sorted := SortBindings(input)

	req.Equal([]string{"a", "b"}, names(sorted))
	req.Equal([]string{"b", "a"}, names(input))
	req.Nil(SortBindings(nil))
}

func TestSortBindings_typeOnlyFlagTravels(t *testing.T) {
	req := require.New(t)
	sorted := SortBindings([]Binding{
		{ImportedName: "b", LocalName: "b"},
		{ImportedName: "A", LocalName: "A", IsTypeOnly: true},
	})
	req.Equal("A", sorted[0].DisplayName())
	req.True(sorted[0].IsTypeOnly)
	req.False(sorted[1].IsTypeOnly)
}
