package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trim and lower", "  Hello World  ", "hello world"},
		{"accent folding", "Café", "cafe"},
		{"umlauts fold", "über Grüße", "uber gruße"},
		{"collapse whitespace", "a \t b\n c", "a b c"},
		{"french accents", "élève", "eleve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "  Héllo ", "was/were", "Straße", "a  b   c", "ÉLÈVE"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strip punctuation", "don't!", "dont"},
		{"keep slash", "was/were", "was/were"},
		{"keep hyphen", "well-known?", "well-known"},
		{"strip commas", "to go, to walk", "to go to walk"},
		{"digits survive", "Nr. 7", "nr 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAnswer(tt.in))
		})
	}
}

func TestAnswersEqual(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		accepted string
		want     bool
	}{
		{"exact", "go", "go", true},
		{"case and space", "  GO ", "go", true},
		{"accent insensitive", "eleve", "élève", true},
		{"slash variant first", "was", "was/were", true},
		{"slash variant second", "were", "was/were", true},
		{"full slash string matches itself", "was/were", "was/were", true},
		{"not a variant", "is", "was/were", false},
		{"wrong word", "walk", "go", false},
		{"punctuation forgiven", "don't", "dont", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnswersEqual(tt.answer, tt.accepted))
		})
	}
}

func TestLiteralEqual(t *testing.T) {
	// Meanings never split on "/": a literal slash is content.
	assert.True(t, LiteralEqual("sein", "sein"))
	assert.True(t, LiteralEqual("gehen/laufen", "gehen/laufen"))
	assert.False(t, LiteralEqual("gehen", "gehen/laufen"))
	assert.False(t, LiteralEqual("laufen", "gehen/laufen"))
}
