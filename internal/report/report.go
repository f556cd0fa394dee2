// Package report writes the crawl report file: per indexed document, in
// docID order, the title, URL, live last-modified/size, top keywords,
// and child links.
package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/frejajensen9/web-based-search-engine-24/internal/fetch"
	"github.com/frejajensen9/web-based-search-engine-24/internal/index"
	"github.com/frejajensen9/web-based-search-engine-24/internal/posting"
)

// MaxKeywords is the number of keywords listed per document in the report.
const MaxKeywords = 20

// MaxChildLinks is the number of child links listed per document.
const MaxChildLinks = 10

const separator = "-----------------------------------------"

// Write renders idx's crawl report to w, in ascending docID order.
// fetcher may be nil, in which case every row's lastModDate/size default
// to "Unknown"/0.
func Write(ctx context.Context, w io.Writer, idx *index.Index, fetcher fetch.Fetcher) error {
	for _, docID := range idx.AllDocIDs() {
		url, _ := idx.URLForDoc(docID)
		title := idx.Title(docID)
		lastModified, size := resolveMetadata(ctx, fetcher, url)
		keywords := formatKeywords(topKeywords(idx.Terms(docID), MaxKeywords))
		children := idx.Children(docID, MaxChildLinks)

		if _, err := fmt.Fprintf(w, "%s\n%s\n%s, %d bytes\nKeywords: %s\nChild Links:\n", title, url, lastModified, size, keywords); err != nil {
			return err
		}
		for _, child := range children {
			if _, err := fmt.Fprintf(w, "%s\n", child); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", separator); err != nil {
			return err
		}
	}
	return nil
}

func resolveMetadata(ctx context.Context, fetcher fetch.Fetcher, url string) (string, int64) {
	if fetcher == nil || url == "" {
		return "Unknown", 0
	}
	lastModified, size, err := fetcher.Stat(ctx, url)
	if err != nil || lastModified.IsZero() {
		return "Unknown", size
	}
	return lastModified.String(), size
}

type keywordCount struct {
	term string
	freq int
}

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

// formatKeywords renders "term freq" entries joined by "; ", the crawl
// report's keyword format — distinct from the query interface's
// "term(freq)" format used by internal/search.
func formatKeywords(list []keywordCount) string {
	parts := make([]string, len(list))
	for i, kw := range list {
		parts[i] = fmt.Sprintf("%s %d", kw.term, kw.freq)
	}
	return strings.Join(parts, "; ")
}
