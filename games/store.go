package games

import (
	"fmt"
	"math/rand"
	"sync"

	"wortschatz/vocab"
)

// Game names the four drill modes.
type Game string

const (
	GameHangman Game = "hangman"
	GameMemory  Game = "memory"
	GameQuiz    Game = "quiz"
	GameVerbs   Game = "verbs"
)

// RoundKey partitions round state so different pages, courses or parameter
// sets never share state. Params folds in filter settings and seed.
type RoundKey struct {
	Game   Game
	Classe int
	Course vocab.Course
	Page   int
	Params string
}

type hangmanSlot struct {
	round       *HangmanRound
	fingerprint uint64
}

type quizSlot struct {
	round       *InputQuizRound
	fingerprint uint64
}

// Store is the session-scoped home of round state machines. Rounds are
// created on first access per key and superseded, not mutated, when the
// fingerprint of their input vocabulary changes. The page body re-executes
// on every interaction, so every accessor is a read-modify-write under one
// lock.
type Store struct {
	mu      sync.Mutex
	hangman map[RoundKey]*hangmanSlot
	memory  map[RoundKey]*MemoryRound
	quiz    map[RoundKey]*quizSlot
	verbs   map[RoundKey]*IrregularVerbRound
}

func NewStore() *Store {
	return &Store{
		hangman: make(map[RoundKey]*hangmanSlot),
		memory:  make(map[RoundKey]*MemoryRound),
		quiz:    make(map[RoundKey]*quizSlot),
		verbs:   make(map[RoundKey]*IrregularVerbRound),
	}
}

// Hangman returns the round for key, constructing or superseding it when
// the input set changed. Entries must be non-empty.
func (s *Store) Hangman(key RoundKey, entries []vocab.Entry, maxFails int, rng *rand.Rand) *HangmanRound {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp := vocab.Fingerprint(entries)
	if slot, ok := s.hangman[key]; ok && slot.fingerprint == fp {
		return slot.round
	}
	round := NewHangmanRound(entries, maxFails, rng)
	s.hangman[key] = &hangmanSlot{round: round, fingerprint: fp}
	return round
}

// Quiz returns the round for key, rebuilding when the input set changed.
func (s *Store) Quiz(key RoundKey, entries []vocab.Entry, rng *rand.Rand) *InputQuizRound {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp := vocab.Fingerprint(entries)
	if slot, ok := s.quiz[key]; ok && slot.fingerprint == fp {
		return slot.round
	}
	round := NewInputQuizRound(entries, rng)
	s.quiz[key] = &quizSlot{round: round, fingerprint: fp}
	return round
}

// DropQuiz discards the quiz round for key, forcing reconstruction on next
// access ("retry").
func (s *Store) DropQuiz(key RoundKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quiz, key)
}

// Memory returns the pair-selection round for key. Input changes are
// handled inside Refresh via the sampler fingerprint.
func (s *Store) Memory(key RoundKey, sampler *vocab.Sampler, mode vocab.Mode, k int, seed string, rng *rand.Rand) *MemoryRound {
	s.mu.Lock()
	defer s.mu.Unlock()

	if round, ok := s.memory[key]; ok {
		return round
	}
	round := NewMemoryRound(sampler, memoryStateKey(key), mode, k, seed, rng)
	s.memory[key] = round
	return round
}

// Verbs returns the irregular-verb round for key. The verb table is fixed,
// so the round never gets superseded by input changes.
func (s *Store) Verbs(key RoundKey, rng *rand.Rand) *IrregularVerbRound {
	s.mu.Lock()
	defer s.mu.Unlock()

	if round, ok := s.verbs[key]; ok {
		return round
	}
	round := NewIrregularVerbRound(rng)
	s.verbs[key] = round
	return round
}

func memoryStateKey(key RoundKey) string {
	return fmt.Sprintf("%s|%d|%s|%d|%s", key.Game, key.Classe, key.Course, key.Page, key.Params)
}
