package games

import (
	"math/rand"
	"sort"
	"strings"
	"unicode"

	"wortschatz/vocab"
)

// HangmanStatus is the per-word state of a hangman round.
type HangmanStatus string

const (
	HangmanInProgress HangmanStatus = "in_progress"
	HangmanSolved     HangmanStatus = "solved"
	HangmanFailed     HangmanStatus = "failed"
)

// HangmanStages are the pictorial stages; the configured max-fails selects
// how many of them a round may walk through.
var HangmanStages = []string{
	"",
	"\n\n\n\n\n\n----",
	"\n\n\n\n\n |\n----",
	"\n\n\n\n  |\n  |\n----",
	"\n  O\n\n\n  |\n----",
	"\n  O\n  |\n\n  |\n----",
	"\n  O\n /|\n\n  |\n----",
	"\n  O\n /|\n / \n  |\n----",
	"\n  O\n /|\n / \n  |\n / \\\n----",
}

// DefaultMaxFails matches the full stage list above (8 fails, 9 stages).
const DefaultMaxFails = 8

// HangmanRound walks a fixed permutation of the working subset, one target
// word at a time. The permutation is fixed for the lifetime of the round;
// only the position and per-word counters advance.
type HangmanRound struct {
	entries  []vocab.Entry
	order    []int
	position int
	maxFails int
	rng      *rand.Rand

	guessed map[rune]bool
	fails   int
	solved  bool

	Timer *Stopwatch
}

// NewHangmanRound builds a round over entries with a shuffled traversal
// order. Entries must be non-empty; callers disable the game otherwise.
func NewHangmanRound(entries []vocab.Entry, maxFails int, rng *rand.Rand) *HangmanRound {
	if maxFails <= 0 || maxFails > DefaultMaxFails {
		maxFails = DefaultMaxFails
	}
	r := &HangmanRound{
		entries:  entries,
		order:    rng.Perm(len(entries)),
		maxFails: maxFails,
		rng:      rng,
		guessed:  make(map[rune]bool),
		Timer:    NewStopwatch(),
	}
	r.Timer.Start()
	return r
}

func (r *HangmanRound) current() vocab.Entry {
	return r.entries[r.order[r.position]]
}

// Target is the word to guess (English side).
func (r *HangmanRound) Target() string {
	return r.current().En
}

// Hint is the German side shown to the player.
func (r *HangmanRound) Hint() string {
	return r.current().De
}

// Fails returns the wrong-guess count for the current word.
func (r *HangmanRound) Fails() int {
	return r.fails
}

// MaxFails returns the configured fail threshold.
func (r *HangmanRound) MaxFails() int {
	return r.maxFails
}

// Stage returns the pictorial stage index for the current fail count.
func (r *HangmanRound) Stage() int {
	if r.fails > r.maxFails {
		return r.maxFails
	}
	return r.fails
}

// Guessed lists the letters guessed so far, for disabling keyboard buttons.
func (r *HangmanRound) Guessed() []string {
	out := make([]string, 0, len(r.guessed))
	for l := range r.guessed {
		out = append(out, string(l))
	}
	sort.Strings(out)
	return out
}

// Status reports the per-word state machine position.
func (r *HangmanRound) Status() HangmanStatus {
	switch {
	case r.solved:
		return HangmanSolved
	case r.fails >= r.maxFails:
		return HangmanFailed
	default:
		return HangmanInProgress
	}
}

// GuessLetter records a letter guess. Idempotent: repeating an already
// guessed letter, or guessing after the word is settled, changes nothing.
func (r *HangmanRound) GuessLetter(letter string) {
	if r.Status() != HangmanInProgress {
		return
	}
	norm := []rune(vocab.Normalize(letter))
	if len(norm) != 1 || !unicode.IsLetter(norm[0]) {
		return
	}
	l := norm[0]
	if r.guessed[l] {
		return
	}

	if strings.ContainsRune(vocab.Normalize(r.Target()), l) {
		r.guessed[l] = true
		r.checkSolved()
	} else {
		r.fails++
	}
}

// GuessWord grades a full-word guess. A wrong full-word guess costs exactly
// one fail, the same weight as a wrong letter.
func (r *HangmanRound) GuessWord(text string) {
	if r.Status() != HangmanInProgress {
		return
	}
	if vocab.NormalizeAnswer(text) == "" {
		return
	}
	if vocab.AnswersEqual(text, r.Target()) {
		r.markAllGuessed()
		r.checkSolved()
	} else {
		r.fails++
	}
}

// Reveal returns the solution without mutating state or ending the word.
func (r *HangmanRound) Reveal() string {
	return r.Target()
}

// ShowSolution fills in every letter like the reveal button in the original
// UI: the word is displayed solved and the stage is clamped, but no win is
// scored beyond the solved display.
func (r *HangmanRound) ShowSolution() {
	if r.Status() != HangmanInProgress {
		return
	}
	r.markAllGuessed()
	r.checkSolved()
}

// Advance steps to the next word in the fixed traversal order, reshuffling
// and wrapping when exhausted. Per-word state resets; the timer restarts.
func (r *HangmanRound) Advance() {
	r.position++
	if r.position >= len(r.order) {
		r.order = r.rng.Perm(len(r.entries))
		r.position = 0
	}
	r.resetWord()
}

// NewWord replaces only the current slot with a fresh random index,
// independent of the traversal order ("new card" skip).
func (r *HangmanRound) NewWord() {
	r.order[r.position] = r.rng.Intn(len(r.entries))
	r.resetWord()
}

func (r *HangmanRound) resetWord() {
	r.guessed = make(map[rune]bool)
	r.fails = 0
	r.solved = false
	r.Timer.Reset()
	r.Timer.Start()
}

// Display renders the target with un-guessed letters replaced by "_".
// Non-alphabetic characters stay visible.
func (r *HangmanRound) Display() string {
	var parts []string
	for _, c := range r.Target() {
		if !unicode.IsLetter(c) || r.letterGuessed(c) {
			parts = append(parts, string(c))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

func (r *HangmanRound) letterGuessed(c rune) bool {
	norm := []rune(vocab.Normalize(string(c)))
	if len(norm) == 0 {
		return false
	}
	return r.guessed[norm[0]]
}

func (r *HangmanRound) markAllGuessed() {
	for _, c := range vocab.Normalize(r.Target()) {
		if unicode.IsLetter(c) {
			r.guessed[c] = true
		}
	}
}

// checkSolved transitions to SOLVED when every alphabetic character of the
// normalized target has been guessed; the timer freezes at that moment.
func (r *HangmanRound) checkSolved() {
	for _, c := range vocab.Normalize(r.Target()) {
		if unicode.IsLetter(c) && !r.guessed[c] {
			return
		}
	}
	r.solved = true
	r.Timer.Pause()
}
