// Package vocab loads, cleans and samples vocabulary pairs from CSV files.
package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free text for comparison: trimmed, lowercased,
// accents folded ("café" -> "cafe"), internal whitespace collapsed.
// Total over all inputs; an empty string stays empty.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeAnswer is the grading variant of Normalize: it additionally drops
// every rune outside letters, digits, space, hyphen and slash, so stray
// punctuation in a typed answer never costs the point. Slashes survive
// because accepted answers encode alternatives as "was/were".
func NormalizeAnswer(s string) string {
	var b strings.Builder
	for _, r := range Normalize(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '/' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// AnswersEqual is the single source of truth for grading free-text answers.
// The accepted string may hold multiple valid forms separated by "/"; the
// answer matches if it equals any single form, or the accepted string as a
// whole (so a tile labelled "was/were" still matches its own column).
func AnswersEqual(answer, accepted string) bool {
	got := NormalizeAnswer(answer)
	if got == NormalizeAnswer(accepted) {
		return true
	}
	for _, variant := range strings.Split(accepted, "/") {
		if got == NormalizeAnswer(variant) {
			return true
		}
	}
	return false
}

// LiteralEqual compares without splitting on "/". German meanings may
// legitimately contain a literal slash that is content, not alternatives.
func LiteralEqual(answer, accepted string) bool {
	return NormalizeAnswer(answer) == NormalizeAnswer(accepted)
}
