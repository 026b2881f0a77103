package games

import (
	"math/rand"

	"wortschatz/vocab"
)

// QuizResult classifies one history entry.
type QuizResult string

const (
	QuizCorrect QuizResult = "correct"
	QuizWrong   QuizResult = "wrong"
	QuizSkipped QuizResult = "skipped"
)

// revealedAnswer marks history entries whose solution was shown before
// advancing, matching the original UI's literal marker.
const revealedAnswer = "(angezeigt)"

// QuizRecord is one attempted item in the history table.
type QuizRecord struct {
	De     string     `json:"de"`
	Answer string     `json:"answer"`
	En     string     `json:"en"`
	Result QuizResult `json:"result"`
}

// InputQuizRound is the typed DE→EN quiz. Every item of the filtered view
// participates, in a shuffled order fixed at construction. Only graded
// submissions affect score and total; skips only advance the position and
// extend the history.
type InputQuizRound struct {
	items    []vocab.Entry
	order    []int
	position int
	score    int
	total    int
	history  []QuizRecord
	revealed bool

	Timer *Stopwatch
}

// NewInputQuizRound shuffles a fresh order over all items.
func NewInputQuizRound(items []vocab.Entry, rng *rand.Rand) *InputQuizRound {
	r := &InputQuizRound{
		items: items,
		order: rng.Perm(len(items)),
		Timer: NewStopwatch(),
	}
	r.Timer.Start()
	return r
}

// Current returns the item at the present position, or false when the round
// is finished.
func (r *InputQuizRound) Current() (vocab.Entry, bool) {
	if r.Done() {
		return vocab.Entry{}, false
	}
	return r.items[r.order[r.position]], true
}

// Done reports the terminal state: every position consumed.
func (r *InputQuizRound) Done() bool {
	return r.position >= len(r.order)
}

// Submit grades a typed answer, updates score/total, logs history and
// advances. No-op once the round is done.
func (r *InputQuizRound) Submit(answer string) {
	item, ok := r.Current()
	if !ok {
		return
	}

	result := QuizWrong
	if vocab.AnswersEqual(answer, item.En) {
		result = QuizCorrect
		r.score++
	}
	r.total++

	r.history = append(r.history, QuizRecord{
		De:     item.De,
		Answer: answer,
		En:     item.En,
		Result: result,
	})
	r.advance()
}

// Skip logs the item as skipped with an empty answer and advances. Skips do
// not count toward the score denominator; skipped items never re-appear
// within the round.
func (r *InputQuizRound) Skip() {
	item, ok := r.Current()
	if !ok {
		return
	}
	r.history = append(r.history, QuizRecord{
		De:     item.De,
		En:     item.En,
		Result: QuizSkipped,
	})
	r.advance()
}

// Reveal peeks at the solution without advancing. Advancing happens only
// via a follow-up Continue or Skip.
func (r *InputQuizRound) Reveal() (string, bool) {
	item, ok := r.Current()
	if !ok {
		return "", false
	}
	r.revealed = true
	return item.En, true
}

// Revealed reports whether the current item's solution has been shown.
func (r *InputQuizRound) Revealed() bool {
	return r.revealed
}

// Continue resolves a revealed item: logged as not correct with the literal
// shown-solution marker, counted toward total, then advances. No-op unless
// a reveal is pending.
func (r *InputQuizRound) Continue() {
	if !r.revealed {
		return
	}
	item, ok := r.Current()
	if !ok {
		return
	}
	r.total++
	r.history = append(r.history, QuizRecord{
		De:     item.De,
		Answer: revealedAnswer,
		En:     item.En,
		Result: QuizWrong,
	})
	r.advance()
}

// End jumps straight to the terminal state ("Serie beenden").
func (r *InputQuizRound) End() {
	r.position = len(r.order)
	r.revealed = false
	r.Timer.Pause()
}

func (r *InputQuizRound) advance() {
	r.position++
	r.revealed = false
	if r.Done() {
		r.Timer.Pause()
	}
}

func (r *InputQuizRound) Score() int            { return r.score }
func (r *InputQuizRound) Total() int            { return r.total }
func (r *InputQuizRound) Position() int         { return r.position }
func (r *InputQuizRound) Len() int              { return len(r.order) }
func (r *InputQuizRound) History() []QuizRecord { return r.history }
