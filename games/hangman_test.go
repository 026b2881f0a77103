package games

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wortschatz/vocab"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func singleWordRound(en string, maxFails int) *HangmanRound {
	entries := []vocab.Entry{{De: "hinweis", En: en}}
	return NewHangmanRound(entries, maxFails, testRng())
}

func TestHangmanSolveByLetters(t *testing.T) {
	r := singleWordRound("go", DefaultMaxFails)

	r.GuessLetter("g")
	assert.Equal(t, HangmanInProgress, r.Status())

	r.GuessLetter("o")
	assert.Equal(t, HangmanSolved, r.Status())
	assert.Equal(t, 0, r.Fails())
	assert.False(t, r.Timer.Running())
}

func TestHangmanSolveOrderIndependent(t *testing.T) {
	r := singleWordRound("go", DefaultMaxFails)

	r.GuessLetter("o")
	r.GuessLetter("g")
	assert.Equal(t, HangmanSolved, r.Status())
}

func TestHangmanFailsAtThreshold(t *testing.T) {
	r := singleWordRound("go", DefaultMaxFails)

	wrong := []string{"a", "b", "c", "d", "e", "f", "h", "i"}
	require.Len(t, wrong, DefaultMaxFails)

	for i, l := range wrong {
		assert.Equal(t, HangmanInProgress, r.Status(), "before guess %d", i)
		r.GuessLetter(l)
	}

	assert.Equal(t, HangmanFailed, r.Status())
	assert.Equal(t, DefaultMaxFails, r.Fails())
	assert.Equal(t, DefaultMaxFails, r.Stage())

	// Settled words ignore further guesses.
	r.GuessLetter("g")
	assert.Equal(t, HangmanFailed, r.Status())
}

func TestHangmanRepeatedLetterIsIdempotent(t *testing.T) {
	r := singleWordRound("apple", DefaultMaxFails)

	r.GuessLetter("z")
	assert.Equal(t, 1, r.Fails())
	r.GuessLetter("z")
	r.GuessLetter("Z")
	assert.Equal(t, 1, r.Fails())

	r.GuessLetter("a")
	r.GuessLetter("a")
	assert.Equal(t, 1, r.Fails())
	assert.Equal(t, []string{"a", "z"}, r.Guessed())
}

func TestHangmanIgnoresNonLetters(t *testing.T) {
	r := singleWordRound("go", DefaultMaxFails)

	r.GuessLetter("7")
	r.GuessLetter("!")
	r.GuessLetter("ab")
	r.GuessLetter("")
	assert.Equal(t, 0, r.Fails())
	assert.Empty(t, r.Guessed())
}

func TestHangmanWordGuess(t *testing.T) {
	r := singleWordRound("to go", DefaultMaxFails)

	// A wrong full word costs one fail, same as a wrong letter.
	r.GuessWord("to walk")
	assert.Equal(t, 1, r.Fails())
	assert.Equal(t, HangmanInProgress, r.Status())

	r.GuessWord("TO GO")
	assert.Equal(t, HangmanSolved, r.Status())
	assert.Equal(t, 1, r.Fails())
}

func TestHangmanWordGuessSlashVariant(t *testing.T) {
	r := singleWordRound("was/were", DefaultMaxFails)

	r.GuessWord("were")
	assert.Equal(t, HangmanSolved, r.Status())
}

func TestHangmanDisplay(t *testing.T) {
	r := singleWordRound("to go", DefaultMaxFails)

	// Space stays visible, letters are masked.
	assert.Equal(t, "_ _   _ _", r.Display())

	r.GuessLetter("o")
	assert.Equal(t, "_ o   _ o", r.Display())
}

func TestHangmanShowSolution(t *testing.T) {
	r := singleWordRound("apple", DefaultMaxFails)

	r.GuessLetter("z")
	r.ShowSolution()
	assert.Equal(t, HangmanSolved, r.Status())
	assert.Equal(t, "a p p l e", r.Display())
	// Stage reflects the fails that happened before revealing.
	assert.Equal(t, 1, r.Stage())
}

func TestHangmanAdvanceResetsWordState(t *testing.T) {
	entries := []vocab.Entry{
		{De: "gehen", En: "go"},
		{De: "Haus", En: "house"},
	}
	r := NewHangmanRound(entries, DefaultMaxFails, testRng())

	r.GuessLetter("z")
	require.Equal(t, 1, r.Fails())

	r.Advance()
	assert.Equal(t, 0, r.Fails())
	assert.Empty(t, r.Guessed())
	assert.Equal(t, HangmanInProgress, r.Status())
	assert.True(t, r.Timer.Running())
}

func TestHangmanAdvanceWrapsAround(t *testing.T) {
	entries := []vocab.Entry{
		{De: "gehen", En: "go"},
		{De: "Haus", En: "house"},
	}
	r := NewHangmanRound(entries, DefaultMaxFails, testRng())

	// Advancing past the end reshuffles and keeps serving words.
	for i := 0; i < 5; i++ {
		r.Advance()
		assert.NotEmpty(t, r.Target())
	}
}

func TestHangmanMaxFailsClamped(t *testing.T) {
	r := singleWordRound("go", 99)
	assert.Equal(t, DefaultMaxFails, r.MaxFails())

	r = singleWordRound("go", 0)
	assert.Equal(t, DefaultMaxFails, r.MaxFails())

	r = singleWordRound("go", 3)
	assert.Equal(t, 3, r.MaxFails())
}
