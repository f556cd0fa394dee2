package search

import (
	"context"
	"strings"
	"testing"

	"github.com/frejajensen9/web-based-search-engine-24/internal/index"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
	"github.com/frejajensen9/web-based-search-engine-24/internal/text"
)

func openTestIndex(t *testing.T) *index.Index {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	idx, err := index.Open(s)
	if err != nil {
		t.Fatalf("index.Open: %v", err)
	}
	return idx
}

func TestSearchAssemblesResultFields(t *testing.T) {
	idx := openTestIndex(t)
	sess := idx.BeginSession()
	a := sess.AllocateDocID("/A")
	sess.SetTitle(a, "Page A")
	sess.AddEdge(a, "/B")
	sess.IndexBody(a, text.Tokenize("apple apple orange", nil))
	b := sess.AllocateDocID("/B")
	sess.SetTitle(b, "Page B")
	sess.IndexBody(b, text.Tokenize("orange banana", nil))
	if err := sess.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	engine := New(idx, nil, text.DefaultStopwords())
	results, err := engine.Search(context.Background(), "apple")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Search(apple) = %#v; want 1 result", results)
	}
	r := results[0]
	if r.URL != "/A" || r.Title != "Page A" {
		t.Fatalf("result = %+v; want URL /A, title Page A", r)
	}
	if r.LastModified != "Unknown" || r.Size != 0 {
		t.Fatalf("result metadata = %q, %d; want Unknown, 0 (no fetcher)", r.LastModified, r.Size)
	}
	if !strings.Contains(r.Keywords, "(") {
		t.Fatalf("Keywords = %q; want term(freq) format", r.Keywords)
	}
	if len(r.ChildLinks) != 1 || r.ChildLinks[0] != "/B" {
		t.Fatalf("ChildLinks = %#v; want [/B]", r.ChildLinks)
	}
	if r.NormalizedScore < 0 || r.NormalizedScore > 100 {
		t.Fatalf("NormalizedScore = %d; want in [0,100]", r.NormalizedScore)
	}
}

func TestSearchEmptyQueryReturnsNoResults(t *testing.T) {
	idx := openTestIndex(t)
	engine := New(idx, nil, text.DefaultStopwords())
	results, err := engine.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Search(\"\") = %#v; want no results", results)
	}
}
