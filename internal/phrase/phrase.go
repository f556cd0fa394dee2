// Package phrase implements the phrase gate: a boolean filter, not a
// scorer, admitting a document only if a query phrase's stems occur at
// consecutive positions within it.
package phrase

import (
	"sort"

	"github.com/frejajensen9/web-based-search-engine-24/internal/posting"
	"github.com/frejajensen9/web-based-search-engine-24/internal/query"
)

// Matches reports whether docTerms (a document's term→Posting map, as
// returned by index.Index.Terms) satisfies phrase. A single-stem phrase
// matches iff its stem has any posting in the document. A phrase of k≥2
// stems matches iff some position π has tᵢ recorded at π+(i-1) for every
// i in the phrase.
func Matches(docTerms map[string]*posting.Posting, phrase query.Phrase) bool {
	if len(phrase) == 0 {
		return false
	}
	first, ok := docTerms[phrase[0]]
	if !ok {
		return false
	}
	if len(phrase) == 1 {
		return true
	}

	for _, pos := range first.Positions {
		matched := true
		for i := 1; i < len(phrase); i++ {
			next, ok := docTerms[phrase[i]]
			if !ok || !containsPosition(next.Positions, pos+i) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// containsPosition reports whether the strictly increasing slice
// positions contains target.
func containsPosition(positions []int, target int) bool {
	i := sort.SearchInts(positions, target)
	return i < len(positions) && positions[i] == target
}
