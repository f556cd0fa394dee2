// Package query implements the phrase-aware query parser: a raw query
// string becomes an ordered list of phrases, each an ordered list of
// stems. It reuses text.Tokenize so the parser shares the indexer's
// stop-word and stemming discipline exactly.
package query

import (
	"strings"
	"unicode"

	"github.com/frejajensen9/web-based-search-engine-24/internal/text"
)

// Phrase is an ordered list of stems; a bare word becomes a one-stem
// phrase, a quoted span becomes a phrase of its constituent stems.
type Phrase []string

// MaxPhraseStems is the trigram cap applied to every phrase.
const MaxPhraseStems = 3

// MaxQueryWords is the total word-token budget across the whole query,
// counting each word inside a quoted phrase as one.
const MaxQueryWords = 10

type rawSpan struct {
	text   string
	quoted bool
}

// Parse tokenizes raw into an ordered list of phrases. Unbalanced quotes
// are closed at end-of-string; empty phrases (every token filtered out)
// are discarded.
func Parse(raw string, stop text.Stopwords) []Phrase {
	spans := splitRawSpans(raw)

	phrases := make([]Phrase, 0, len(spans))
	budget := MaxQueryWords
	for _, sp := range spans {
		if budget <= 0 {
			break
		}
		words := strings.Fields(sp.text)
		if len(words) > budget {
			words = words[:budget]
		}
		budget -= len(words)

		stems := stemWords(strings.Join(words, " "), stop)
		switch {
		case sp.quoted && len(stems) > MaxPhraseStems:
			stems = stems[:MaxPhraseStems]
		case !sp.quoted && len(stems) > 1:
			stems = stems[:1]
		}
		if len(stems) == 0 {
			continue
		}
		phrases = append(phrases, Phrase(stems))
	}
	return phrases
}

// splitRawSpans walks raw character by character, splitting on whitespace
// outside quotes and treating each `"`-delimited span as a single unit.
func splitRawSpans(raw string) []rawSpan {
	var spans []rawSpan
	var cur strings.Builder
	inQuotes := false

	flush := func(quoted bool) {
		if cur.Len() > 0 {
			spans = append(spans, rawSpan{text: cur.String(), quoted: quoted})
			cur.Reset()
		}
	}

	for _, r := range raw {
		switch {
		case r == '"':
			if inQuotes {
				flush(true)
			}
			inQuotes = !inQuotes
		case !inQuotes && unicode.IsSpace(r):
			flush(false)
		default:
			cur.WriteRune(r)
		}
	}
	flush(inQuotes)
	return spans
}

func stemWords(content string, stop text.Stopwords) []string {
	tokens := text.Tokenize(content, stop)
	stems := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		stems = append(stems, tok.Stem)
	}
	return stems
}
