package vocab

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FilterOptions control what counts as a "simple" single word.
type FilterOptions struct {
	IgnoreArticles bool
	IgnoreAbbrev   bool
	MinLength      int
}

// DefaultFilterOptions mirror the defaults offered in the UI.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		IgnoreArticles: true,
		IgnoreAbbrev:   true,
		MinLength:      2,
	}
}

var (
	leadingArticle = regexp.MustCompile(`(?i)^(to\s+|the\s+|a\s+|an\s+)`)
	abbrevToken    = regexp.MustCompile(`(?i)\b(sth|sb|etc|e\.g|i\.e)\b`)
)

// IsSimpleWord reports whether word qualifies for single-word games.
// Entries containing slashes, spaces, hyphens or periods are multi-word or
// variant entries and never qualify.
func IsSimpleWord(word string, opts FilterOptions) bool {
	w := strings.TrimSpace(word)
	if w == "" {
		return false
	}
	if opts.IgnoreArticles {
		w = leadingArticle.ReplaceAllString(w, "")
	}
	if strings.ContainsAny(w, "/ -") {
		return false
	}
	if opts.IgnoreAbbrev && abbrevToken.MatchString(w) {
		return false
	}
	if strings.Contains(w, ".") {
		return false
	}
	return utf8.RuneCountInString(w) >= opts.MinLength
}

// FilterSimple returns the entries whose English side passes IsSimpleWord.
func FilterSimple(entries []Entry, opts FilterOptions) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if IsSimpleWord(e.En, opts) {
			out = append(out, e)
		}
	}
	return out
}
