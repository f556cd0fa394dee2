// Package search implements the result assembler and the top-level
// query entry point search(query) -> list<Result>, resolving
// lastModified/size live against the origin via the Fetcher rather than
// from a stale crawl-time snapshot.
package search

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/frejajensen9/web-based-search-engine-24/internal/fetch"
	"github.com/frejajensen9/web-based-search-engine-24/internal/index"
	"github.com/frejajensen9/web-based-search-engine-24/internal/posting"
	"github.com/frejajensen9/web-based-search-engine-24/internal/query"
	"github.com/frejajensen9/web-based-search-engine-24/internal/scoring"
	"github.com/frejajensen9/web-based-search-engine-24/internal/text"
)

// MaxKeywords is the number of top keywords shown per result row.
const MaxKeywords = 5

// MaxLinks is the number of parent/child links shown per result row.
const MaxLinks = 10

// Result is one ranked document, assembled for the query interface.
type Result struct {
	URL             string
	Title           string
	LastModified    string
	Size            int64
	Keywords        string
	ParentLinks     []string
	ChildLinks      []string
	Score           float64
	NormalizedScore int
}

// Engine is the single entry point search(query) -> list<Result>.
type Engine struct {
	idx       *index.Index
	scorer    *scoring.Scorer
	fetcher   fetch.Fetcher
	stopwords text.Stopwords
}

// New builds an Engine. fetcher may be nil, in which case lastModified
// and size always default to "Unknown" and 0.
func New(idx *index.Index, fetcher fetch.Fetcher, stop text.Stopwords) *Engine {
	return &Engine{idx: idx, scorer: scoring.New(idx), fetcher: fetcher, stopwords: stop}
}

// Search parses q, scores every indexed document, and assembles the
// ranked result rows.
func (e *Engine) Search(ctx context.Context, q string) ([]Result, error) {
	phrases := query.Parse(q, e.stopwords)
	if len(phrases) == 0 {
		return nil, nil
	}

	scored := e.scorer.Score(phrases)
	results := make([]Result, 0, len(scored))
	for _, sc := range scored {
		url, _ := e.idx.URLForDoc(sc.DocID)
		lastModified, size := e.resolveMetadata(ctx, url)

		results = append(results, Result{
			URL:             url,
			Title:           e.idx.Title(sc.DocID),
			LastModified:    lastModified,
			Size:            size,
			Keywords:        formatKeywords(topKeywords(e.idx.Terms(sc.DocID), MaxKeywords)),
			ParentLinks:     e.idx.Parents(sc.DocID, MaxLinks),
			ChildLinks:      e.idx.Children(sc.DocID, MaxLinks),
			Score:           sc.Score,
			NormalizedScore: normalizeScore(sc.Score),
		})
	}
	return results, nil
}

// resolveMetadata resolves lastModified/size live against the origin,
// best effort; failures default to "Unknown" and 0.
func (e *Engine) resolveMetadata(ctx context.Context, url string) (string, int64) {
	if e.fetcher == nil || url == "" {
		return "Unknown", 0
	}
	lastModified, size, err := e.fetcher.Stat(ctx, url)
	if err != nil || lastModified.IsZero() {
		return "Unknown", size
	}
	return lastModified.String(), size
}

func normalizeScore(score float64) int {
	n := int(math.Round(score * 100))
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return n
}

type keywordCount struct {
	term string
	freq int
}

// topKeywords returns the terms with highest frequency in terms, ties
// broken by lexicographic term order.
func topKeywords(terms map[string]*posting.Posting, limit int) []keywordCount {
	list := make([]keywordCount, 0, len(terms))
	for term, p := range terms {
		list = append(list, keywordCount{term: term, freq: p.Frequency})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].freq != list[j].freq {
			return list[i].freq > list[j].freq
		}
		return list[i].term < list[j].term
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// formatKeywords renders list as "term(freq)" entries joined by ", ",
// the query interface's keyword format.
func formatKeywords(list []keywordCount) string {
	parts := make([]string, len(list))
	for i, kw := range list {
		parts[i] = fmt.Sprintf("%s(%d)", kw.term, kw.freq)
	}
	return strings.Join(parts, ", ")
}
