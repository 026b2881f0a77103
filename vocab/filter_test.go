package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSimpleWord(t *testing.T) {
	opts := DefaultFilterOptions()

	tests := []struct {
		name string
		word string
		want bool
	}{
		{"plain word", "apple", true},
		{"infinitive article stripped", "to go", true},
		{"definite article stripped", "the house", true},
		{"indefinite article stripped", "an idea", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"slash variant", "was/were", false},
		{"hyphenated", "well-known", false},
		{"multi word", "give up", false},
		{"abbreviation", "sth", false},
		{"abbreviation with period", "etc.", false},
		{"too short", "I", false},
		{"exactly min length", "go", true},
		{"umlauts count as letters", "Tür", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSimpleWord(tt.word, opts))
		})
	}
}

func TestIsSimpleWordOptionVariants(t *testing.T) {
	// With article stripping off, "to go" keeps its space and is rejected.
	noArticles := FilterOptions{IgnoreArticles: false, IgnoreAbbrev: true, MinLength: 2}
	assert.False(t, IsSimpleWord("to go", noArticles))

	// With abbreviation filtering off, "sth" is just a short word.
	noAbbrev := FilterOptions{IgnoreArticles: true, IgnoreAbbrev: false, MinLength: 2}
	assert.True(t, IsSimpleWord("sth", noAbbrev))

	// Min length 1 admits single letters.
	short := FilterOptions{IgnoreArticles: true, IgnoreAbbrev: true, MinLength: 1}
	assert.True(t, IsSimpleWord("I", short))
}

func TestFilterSimple(t *testing.T) {
	entries := []Entry{
		{De: "gehen", En: "to go"},
		{De: "aufgeben", En: "give up"},
		{De: "Apfel", En: "apple"},
		{De: "war", En: "was/were"},
	}

	got := FilterSimple(entries, DefaultFilterOptions())

	assert.Len(t, got, 2)
	assert.Equal(t, "to go", got[0].En)
	assert.Equal(t, "apple", got[1].En)
}
