package inkdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Params(t *testing.T) {
	tests := []struct {
		name     string
		params   *Params
		expected string
	}{
		{
			name:     "empty note options",
			params:   NoteListOptions{}.Params(),
			expected: "",
		},
		{
			name: "all note options",
			params: NoteListOptions{
				Keyword:    "book:Blog",
				Limit:      20,
				Skip:       40,
				Sort:       SortUpdatedAt,
				Descending: true,
			}.Params(),
			expected: "keyword=book%3ABlog&limit=20&skip=40&sort=updatedAt&descending=true",
		},
		{
			name:     "paging",
			params:   ListOptions{Limit: 5, Skip: 5}.Params(),
			expected: "limit=5&skip=5",
		},
		{
			name:     "get options",
			params:   GetOptions{Rev: "2-abc", Attachments: true, Conflicts: true}.Params(),
			expected: "rev=2-abc&attachments=true&conflicts=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := BuildURL(testBase, "/notes", tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u.RawQuery)
		})
	}
}
