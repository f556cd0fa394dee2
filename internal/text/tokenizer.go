// Package text turns raw page or query text into the ordered (position,
// stem) pairs the rest of the engine indexes and searches on.
//
// Positions are assigned before stop-word filtering: every raw token,
// including ones later dropped as stop words or reduced to an empty stem,
// still advances the position counter. The indexing path (internal/crawler
// feeding internal/index) and the query parser (internal/query) both call
// Tokenize, and the phrase matcher (internal/phrase) checks the positions
// it assigned, so the discipline can never drift between write path and
// read path.
package text

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

// nonWord matches runs of characters that do not make up a word. A word is
// an ASCII letter, digit, or underscore.
var nonWord = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Token is a surviving (position, stem) pair. Position is the index of the
// token within the pre-filter split of the source text, so adjacent
// Tokens differ by exactly 1 in Position only when no stop word or
// empty-stem token intervened between them.
type Token struct {
	Position int
	Stem     string
}

// Stopwords is a case-sensitive set of already-lower-cased stop words.
type Stopwords map[string]struct{}

// Tokenize lower-cases text, splits it on runs of non-word characters,
// drops stop words and tokens that stem to nothing, and stems the rest
// with the Porter (Snowball English) algorithm. Positions are assigned
// before stop-word filtering: a dropped token still consumes a position,
// so phrase queries stay coherent with the source text's spacing.
func Tokenize(body string, stop Stopwords) []Token {
	if body == "" {
		return nil
	}
	raw := nonWord.Split(strings.ToLower(body), -1)

	tokens := make([]Token, 0, len(raw))
	for position, word := range raw {
		if word == "" {
			continue
		}
		if _, isStop := stop[word]; isStop {
			continue
		}
		s := Stem(word)
		if s == "" {
			continue
		}
		tokens = append(tokens, Token{Position: position, Stem: s})
	}
	return tokens
}

// Stem applies the Porter (Snowball English) stemming algorithm to a
// single already-lower-cased word.
func Stem(word string) string {
	return english.Stem(word, true)
}
