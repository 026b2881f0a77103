package games

import (
	"math/rand"

	"wortschatz/vocab"
)

// IrregularVerb is one row of the fixed in-memory verb table. Forms may
// encode alternatives as slash-variants ("was/were"); the Meaning field is
// literal German text and is never slash-split.
type IrregularVerb struct {
	Infinitive     string `json:"infinitive"`
	PastSimple     string `json:"pastSimple"`
	PastParticiple string `json:"pastParticiple"`
	Meaning        string `json:"meaning"`
}

// Target field names for AttemptMatch.
const (
	FieldInfinitive     = "infinitive"
	FieldPastSimple     = "pastSimple"
	FieldPastParticiple = "pastParticiple"
	FieldMeaning        = "meaning"
)

// VerbFields lists the four match targets in display order.
var VerbFields = []string{FieldInfinitive, FieldPastSimple, FieldPastParticiple, FieldMeaning}

// IrregularVerbs is the fixed verb table the round draws from.
var IrregularVerbs = []IrregularVerb{
	{"be", "was/were", "been", "sein"},
	{"become", "became", "become", "werden"},
	{"begin", "began", "begun", "anfangen/beginnen"},
	{"break", "broke", "broken", "brechen"},
	{"bring", "brought", "brought", "bringen"},
	{"buy", "bought", "bought", "kaufen"},
	{"catch", "caught", "caught", "fangen"},
	{"come", "came", "come", "kommen"},
	{"do", "did", "done", "tun/machen"},
	{"drink", "drank", "drunk", "trinken"},
	{"drive", "drove", "driven", "fahren"},
	{"eat", "ate", "eaten", "essen"},
	{"fall", "fell", "fallen", "fallen"},
	{"find", "found", "found", "finden"},
	{"fly", "flew", "flown", "fliegen"},
	{"forget", "forgot", "forgotten", "vergessen"},
	{"get", "got", "got/gotten", "bekommen"},
	{"give", "gave", "given", "geben"},
	{"go", "went", "gone", "gehen"},
	{"have", "had", "had", "haben"},
	{"know", "knew", "known", "wissen/kennen"},
	{"leave", "left", "left", "verlassen"},
	{"lose", "lost", "lost", "verlieren"},
	{"make", "made", "made", "machen"},
	{"read", "read", "read", "lesen"},
	{"run", "ran", "run", "laufen/rennen"},
	{"see", "saw", "seen", "sehen"},
	{"sing", "sang", "sung", "singen"},
	{"speak", "spoke", "spoken", "sprechen"},
	{"swim", "swam", "swum", "schwimmen"},
	{"take", "took", "taken", "nehmen"},
	{"write", "wrote", "written", "schreiben"},
}

// VerbTile is one draggable form tile.
type VerbTile struct {
	Text   string `json:"text"`
	Field  string `json:"field"` // the target field this tile belongs to
	Hidden bool   `json:"hidden"`
}

// IrregularVerbRound matches four shuffled form tiles onto their target
// fields for one verb. A cumulative score persists across rounds until
// explicitly reset. There is no failure terminal; mismatches are rejected
// attempts with no penalty beyond visible feedback.
type IrregularVerbRound struct {
	verb      IrregularVerb
	tiles     []VerbTile
	matches   map[string]int // target field -> matched tile index
	selected  int            // tile index, -1 when none
	completed bool
	score     int
	rng       *rand.Rand

	Timer *Stopwatch
}

// NewIrregularVerbRound draws a random verb and deals its tiles.
func NewIrregularVerbRound(rng *rand.Rand) *IrregularVerbRound {
	r := &IrregularVerbRound{
		rng:   rng,
		Timer: NewStopwatch(),
	}
	r.deal()
	return r
}

func (r *IrregularVerbRound) deal() {
	r.verb = IrregularVerbs[r.rng.Intn(len(IrregularVerbs))]
	r.tiles = []VerbTile{
		{Text: r.verb.Infinitive, Field: FieldInfinitive},
		{Text: r.verb.PastSimple, Field: FieldPastSimple},
		{Text: r.verb.PastParticiple, Field: FieldPastParticiple},
		{Text: r.verb.Meaning, Field: FieldMeaning},
	}
	r.rng.Shuffle(len(r.tiles), func(i, j int) {
		r.tiles[i], r.tiles[j] = r.tiles[j], r.tiles[i]
	})
	r.matches = make(map[string]int)
	r.selected = -1
	r.completed = false
	r.Timer.Reset()
	r.Timer.Start()
}

// Verb returns the verb under play.
func (r *IrregularVerbRound) Verb() IrregularVerb {
	return r.verb
}

// Tiles returns the current tile states.
func (r *IrregularVerbRound) Tiles() []VerbTile {
	return r.tiles
}

// Selected returns the selected tile index, -1 when none.
func (r *IrregularVerbRound) Selected() int {
	return r.selected
}

// Completed reports the terminal condition: all four fields matched.
func (r *IrregularVerbRound) Completed() bool {
	return r.completed
}

// Score is the cumulative cross-round counter.
func (r *IrregularVerbRound) Score() int {
	return r.score
}

// MatchedFields lists the target fields already resolved.
func (r *IrregularVerbRound) MatchedFields() []string {
	out := make([]string, 0, len(r.matches))
	for _, f := range VerbFields {
		if _, ok := r.matches[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// SelectTile marks a tile as in hand. No-op if the index is out of range or
// the tile is already hidden.
func (r *IrregularVerbRound) SelectTile(i int) {
	if i < 0 || i >= len(r.tiles) || r.tiles[i].Hidden {
		return
	}
	r.selected = i
}

// AttemptMatch tries to place the selected tile on a target field. Form
// fields accept any slash-variant; the meaning field accepts only the
// literal string, since slashes in German meanings are content. On match
// the tile hides and the cumulative score increments; on mismatch only the
// selection clears.
func (r *IrregularVerbRound) AttemptMatch(targetField string) bool {
	if r.completed || r.selected < 0 {
		return false
	}
	if _, done := r.matches[targetField]; done {
		return false
	}

	tile := r.tiles[r.selected]
	var ok bool
	switch targetField {
	case FieldInfinitive:
		ok = vocab.AnswersEqual(tile.Text, r.verb.Infinitive)
	case FieldPastSimple:
		ok = vocab.AnswersEqual(tile.Text, r.verb.PastSimple)
	case FieldPastParticiple:
		ok = vocab.AnswersEqual(tile.Text, r.verb.PastParticiple)
	case FieldMeaning:
		ok = vocab.LiteralEqual(tile.Text, r.verb.Meaning)
	default:
		r.selected = -1
		return false
	}

	if !ok {
		r.selected = -1
		return false
	}

	r.matches[targetField] = r.selected
	r.tiles[r.selected].Hidden = true
	r.selected = -1
	r.score++

	if len(r.matches) == len(VerbFields) {
		r.completed = true
		r.Timer.Pause()
	}
	return true
}

// NewRound draws a fresh verb and resets per-round state, preserving the
// cumulative score.
func (r *IrregularVerbRound) NewRound() {
	r.deal()
}

// ResetScore zeroes the cumulative counter.
func (r *IrregularVerbRound) ResetScore() {
	r.score = 0
}
