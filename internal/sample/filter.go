package sample

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/uikit/core/datatable"
)

// fuzzyRatio is the largest edit distance, relative to the longer word,
// that still counts as a match.
const fuzzyRatio = 0.4

// Filter keeps the rows where every query term matches some word of one of
// the given fields. A blank query keeps everything. The result is a new
// slice; rows are not copied.
func Filter(rows []datatable.Record, query string, fields ...string) []datatable.Record {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return rows
	}
	out := make([]datatable.Record, 0, len(rows))
	for _, r := range rows {
		words := recordWords(r, fields)
		if matchesAll(terms, words) {
			out = append(out, r)
		}
	}
	return out
}

func recordWords(r datatable.Record, fields []string) []string {
	var words []string
	for _, f := range fields {
		words = append(words, strings.Fields(strings.ToLower(datatable.Stringify(r.Get(f))))...)
	}
	return words
}

func matchesAll(terms, words []string) bool {
	for _, t := range terms {
		found := false
		for _, w := range words {
			if matchTerm(t, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchTerm(term, word string) bool {
	if strings.Contains(word, term) {
		return true
	}
	n := utf8.RuneCountInString(term)
	if n < 3 {
		return false
	}
	if near(term, word) {
		return true
	}
	// typo in a prefix, e.g. "nishk" against "nishikant"
	if runes := []rune(word); len(runes) > n {
		return near(term, string(runes[:n]))
	}
	return false
}

// near compares by runes, matching how levenshtein counts edits.
func near(a, b string) bool {
	dist := levenshtein.ComputeDistance(a, b)
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	return float64(dist)/float64(longest) < fuzzyRatio
}
