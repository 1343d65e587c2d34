package inkdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "http://127.0.0.1:19840"

func TestBuildURL(t *testing.T) {
	str := "v"
	var nilStr *string

	tests := []struct {
		name     string
		base     string
		path     string
		params   *Params
		expected string
	}{
		{
			name:     "no params",
			base:     testBase,
			path:     "/notes",
			expected: "http://127.0.0.1:19840/notes",
		},
		{
			name:     "empty params",
			base:     testBase,
			path:     "/notes",
			params:   NewParams(),
			expected: "http://127.0.0.1:19840/notes",
		},
		{
			name:     "scalars keep insertion order",
			base:     testBase,
			path:     "/notes",
			params:   NewParams().Set("limit", 10).Set("descending", true),
			expected: "http://127.0.0.1:19840/notes?limit=10&descending=true",
		},
		{
			name:     "arrays repeat the key",
			base:     testBase,
			path:     "/notes",
			params:   NewParams().Set("tags", []string{"a", "b"}),
			expected: "http://127.0.0.1:19840/notes?tags=a&tags=b",
		},
		{
			name:     "nil values are dropped",
			base:     testBase,
			path:     "/x",
			params:   NewParams().Set("a", nil).Set("b", "v").Set("c", nilStr),
			expected: "http://127.0.0.1:19840/x?b=v",
		},
		{
			name:     "pointers are dereferenced",
			base:     testBase,
			path:     "/x",
			params:   NewParams().Set("s", &str),
			expected: "http://127.0.0.1:19840/x?s=v",
		},
		{
			name:     "numbers use plain notation",
			base:     testBase,
			path:     "/x",
			params:   NewParams().Set("f", 1.5).Set("g", 100.0).Set("i", int64(-3)),
			expected: "http://127.0.0.1:19840/x?f=1.5&g=100&i=-3",
		},
		{
			name:     "values are escaped",
			base:     testBase,
			path:     "/notes",
			params:   NewParams().Set("keyword", "tag:draft a&b"),
			expected: "http://127.0.0.1:19840/notes?keyword=tag%3Adraft+a%26b",
		},
		{
			name:     "mixed arrays",
			base:     testBase,
			path:     "/x",
			params:   NewParams().Set("n", []any{1, "two", true}),
			expected: "http://127.0.0.1:19840/x?n=1&n=two&n=true",
		},
		{
			name:     "empty array adds nothing",
			base:     testBase,
			path:     "/x",
			params:   NewParams().Set("tags", []string{}),
			expected: "http://127.0.0.1:19840/x",
		},
		{
			name:     "absolute path replaces base path",
			base:     "http://localhost:19840/api/",
			path:     "/notes",
			expected: "http://localhost:19840/notes",
		},
		{
			name:     "relative path joins base path",
			base:     "http://localhost:19840/api/",
			path:     "notes",
			expected: "http://localhost:19840/api/notes",
		},
		{
			name:     "scalar overwrites existing key",
			base:     "http://localhost:19840/x?limit=1&q=z&limit=2",
			path:     "",
			params:   NewParams().Set("limit", 5),
			expected: "http://localhost:19840/x?limit=5&q=z",
		},
		{
			name:     "array appends to existing key",
			base:     "http://localhost:19840/x?tags=a",
			path:     "",
			params:   NewParams().Set("tags", []string{"b"}),
			expected: "http://localhost:19840/x?tags=a&tags=b",
		},
		{
			name:     "document id path",
			base:     testBase,
			path:     docPath("note:Bk5Ivk0T"),
			expected: "http://127.0.0.1:19840/note:Bk5Ivk0T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := BuildURL(tt.base, tt.path, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u.String())
		})
	}
}

func TestBuildURL_InvalidBase(t *testing.T) {
	_, err := BuildURL("http://[::1", "/notes", nil)
	assert.Error(t, err)
}

func TestParams(t *testing.T) {
	p := NewParams().Set("a", 1).Set("b", 2).Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, p.Keys())
	assert.Equal(t, 2, p.Len())

	v, ok := p.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	p.Delete("a")
	assert.Equal(t, []string{"b"}, p.Keys())

	var zero Params
	zero.Set("x", "y")
	assert.Equal(t, 1, zero.Len())

	var nilParams *Params
	assert.Equal(t, 0, nilParams.Len())
	assert.Empty(t, nilParams.Keys())
}
