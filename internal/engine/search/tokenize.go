// Package search implements a BM25 ranking engine over the mod database,
// with domain-specific query expansion for modding jargon.
package search

import (
	"strings"
	"unicode"
)

// minTokenLength drops noise tokens; single characters carry no signal in
// plugin names.
const minTokenLength = 2

// tokenize lowercases the input and splits it on runs of non-alphanumeric
// characters, discarding tokens shorter than minTokenLength.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
