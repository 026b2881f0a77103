package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wortschatz/vocab"
)

func storeKey(game Game) RoundKey {
	return RoundKey{Game: game, Classe: 7, Page: 12, Params: "p"}
}

func TestStoreHangmanKeepsRoundForSameInput(t *testing.T) {
	s := NewStore()
	entries := quizEntries()
	key := storeKey(GameHangman)

	first := s.Hangman(key, entries, DefaultMaxFails, testRng())
	first.GuessLetter("z")
	require.Equal(t, 1, first.Fails())

	// Same key and unchanged rows return the same round, fails intact.
	again := s.Hangman(key, entries, DefaultMaxFails, testRng())
	assert.Same(t, first, again)
	assert.Equal(t, 1, again.Fails())
}

func TestStoreHangmanSupersededOnDataChange(t *testing.T) {
	s := NewStore()
	key := storeKey(GameHangman)

	first := s.Hangman(key, quizEntries(), DefaultMaxFails, testRng())
	first.GuessLetter("z")

	changed := append(quizEntries(), vocab.Entry{De: "neu", En: "new"})
	second := s.Hangman(key, changed, DefaultMaxFails, testRng())

	assert.NotSame(t, first, second)
	assert.Equal(t, 0, second.Fails())
}

func TestStoreKeysIsolateRounds(t *testing.T) {
	s := NewStore()
	entries := quizEntries()

	a := s.Hangman(RoundKey{Game: GameHangman, Classe: 7, Page: 12}, entries, DefaultMaxFails, testRng())
	b := s.Hangman(RoundKey{Game: GameHangman, Classe: 7, Page: 13}, entries, DefaultMaxFails, testRng())
	assert.NotSame(t, a, b)

	c := s.Hangman(RoundKey{Game: GameHangman, Classe: 7, Page: 12, Params: "filtered"}, entries, DefaultMaxFails, testRng())
	assert.NotSame(t, a, c)
}

func TestStoreQuizDropForcesRebuild(t *testing.T) {
	s := NewStore()
	entries := quizEntries()
	key := storeKey(GameQuiz)

	first := s.Quiz(key, entries, testRng())
	first.Submit("wrong")
	require.Equal(t, 1, first.Total())

	s.DropQuiz(key)
	second := s.Quiz(key, entries, testRng())

	assert.NotSame(t, first, second)
	assert.Equal(t, 0, second.Total())
}

func TestStoreMemoryAndVerbsGetOrCreate(t *testing.T) {
	s := NewStore()
	sampler := vocab.NewSampler()

	m1 := s.Memory(storeKey(GameMemory), sampler, vocab.ModeK, 4, "seed", testRng())
	m2 := s.Memory(storeKey(GameMemory), sampler, vocab.ModeK, 4, "seed", testRng())
	assert.Same(t, m1, m2)

	v1 := s.Verbs(storeKey(GameVerbs), testRng())
	v2 := s.Verbs(storeKey(GameVerbs), testRng())
	assert.Same(t, v1, v2)
}
