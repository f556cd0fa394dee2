// Package index holds the persistent index data model: the four (plus
// the durable docID counter, five) named-root maps and the invariants
// between them.
//
//	(1) URL→docID
//	(2) docID→title
//	(3) term→(docID→Posting)   — the positional inverted index
//	(4) (parentDocID,childURL)→unit — the link graph
//
// Index keeps all four live in memory and persists them through
// internal/store as a single snapshot per commit. Four purely-derived
// views are also kept in memory only: docID→URL (the reverse of map 1),
// a per-document term→Posting transpose of map 3, and parent→children
// and child→parents views of map 4, so result assembly and keyword
// extraction never have to scan the whole index.
package index

import (
	"sort"
	"sync"

	"github.com/frejajensen9/web-based-search-engine-24/internal/posting"
	"github.com/frejajensen9/web-based-search-engine-24/internal/store"
)

// Untitled is the title shown for a document whose title is empty or
// unrecorded.
const Untitled = "Untitled"

// LinkEdge is the structured key for the link graph: a directed
// (parentDocID, childURL) pair. Using a struct key rather than a string
// join (e.g. "docID->url") keeps write-time and read-time encoding
// identical by construction.
type LinkEdge struct {
	Parent int
	Child  string
}

// Index is the in-memory, store-backed index. All exported methods are
// safe for concurrent readers. Writers (the crawler) go through a
// Session, which works on a private copy and takes the write lock only
// inside Commit.
type Index struct {
	mu *sync.RWMutex

	store *store.Store

	urlToDoc map[string]int
	docToURL map[int]string // derived, in-memory only
	docTitle map[int]string
	postings map[string]map[int]*posting.Posting // term -> docID -> Posting
	docTerms map[int]map[string]*posting.Posting // derived, in-memory only
	links    map[LinkEdge]struct{}

	parentToChildren map[int][]string // derived, in-memory only
	childToParents   map[string][]int // derived, in-memory only (keyed by child URL)

	nextDocID int // durable iff the commit that advanced it completed
}

const (
	rootURLIndex     = "urlIndex"
	rootTitleIndex   = "titleIndex"
	rootPostingIndex = "postingIndex"
	rootLinkGraph    = "linkGraph"
	rootLastPageID   = "lastPageId"
)

// Open loads an Index from the named roots in s, creating any that are
// absent.
func Open(s *store.Store) (*Index, error) {
	idx := &Index{
		mu:       &sync.RWMutex{},
		store:    s,
		urlToDoc: make(map[string]int),
		docTitle: make(map[int]string),
		postings: make(map[string]map[int]*posting.Posting),
		links:    make(map[LinkEdge]struct{}),
	}

	if _, err := s.LoadRoot(rootURLIndex, &idx.urlToDoc); err != nil {
		return nil, err
	}
	if _, err := s.LoadRoot(rootTitleIndex, &idx.docTitle); err != nil {
		return nil, err
	}
	if _, err := s.LoadRoot(rootPostingIndex, &idx.postings); err != nil {
		return nil, err
	}
	var edges []LinkEdge
	if _, err := s.LoadRoot(rootLinkGraph, &edges); err != nil {
		return nil, err
	}
	for _, e := range edges {
		idx.links[e] = struct{}{}
	}
	if _, err := s.LoadRoot(rootLastPageID, &idx.nextDocID); err != nil {
		return nil, err
	}

	idx.rebuildDerived()
	return idx, nil
}

// rebuildDerived recomputes every in-memory-only view from the persisted
// maps. Called once on Open, and again after a commit so readers never
// see the derived views lag the canonical ones.
func (idx *Index) rebuildDerived() {
	idx.docToURL = make(map[int]string, len(idx.urlToDoc))
	for u, d := range idx.urlToDoc {
		idx.docToURL[d] = u
	}

	idx.docTerms = make(map[int]map[string]*posting.Posting)
	for term, byDoc := range idx.postings {
		for doc, p := range byDoc {
			if idx.docTerms[doc] == nil {
				idx.docTerms[doc] = make(map[string]*posting.Posting)
			}
			idx.docTerms[doc][term] = p
		}
	}

	idx.parentToChildren = make(map[int][]string)
	idx.childToParents = make(map[string][]int)
	for e := range idx.links {
		idx.parentToChildren[e.Parent] = append(idx.parentToChildren[e.Parent], e.Child)
		idx.childToParents[e.Child] = append(idx.childToParents[e.Child], e.Parent)
	}
	for _, children := range idx.parentToChildren {
		sort.Strings(children)
	}
	for _, parents := range idx.childToParents {
		sort.Ints(parents)
	}
}

// N returns the total number of indexed documents.
func (idx *Index) N() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docToURL)
}

// NextDocID returns the docID that Session.AllocateDocID would allocate next,
// without allocating it.
func (idx *Index) NextDocID() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.nextDocID
}

// DocIDForURL returns the docID already assigned to url, if any.
func (idx *Index) DocIDForURL(url string) (int, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	id, ok := idx.urlToDoc[url]
	return id, ok
}

// URLForDoc returns the URL a docID was assigned to.
func (idx *Index) URLForDoc(docID int) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	u, ok := idx.docToURL[docID]
	return u, ok
}

// Title returns a document's title, or Untitled if it has none recorded.
func (idx *Index) Title(docID int) string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if t, ok := idx.docTitle[docID]; ok && t != "" {
		return t
	}
	return Untitled
}

// DocumentFrequency returns the number of documents containing term.
func (idx *Index) DocumentFrequency(term string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.postings[term])
}

// Postings returns the docID→Posting map for term (nil if the term was
// never indexed). Callers must not mutate the returned map.
func (idx *Index) Postings(term string) map[int]*posting.Posting {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.postings[term]
}

// Terms returns the term→Posting map for docID (nil if the document has
// no postings). Callers must not mutate the returned map.
func (idx *Index) Terms(docID int) map[string]*posting.Posting {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.docTerms[docID]
}

// Children returns up to limit child URLs linked from docID, in
// ascending lexical order (deterministic for result assembly).
func (idx *Index) Children(docID int, limit int) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	children := idx.parentToChildren[docID]
	if len(children) > limit {
		children = children[:limit]
	}
	out := make([]string, len(children))
	copy(out, children)
	return out
}

// Parents returns up to limit parent URLs that link to docID, in
// ascending docID order (deterministic for result assembly).
func (idx *Index) Parents(docID int, limit int) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	url, ok := idx.docToURL[docID]
	if !ok {
		return nil
	}
	parentIDs := idx.childToParents[url]
	if len(parentIDs) > limit {
		parentIDs = parentIDs[:limit]
	}
	out := make([]string, 0, len(parentIDs))
	for _, pid := range parentIDs {
		if u, ok := idx.docToURL[pid]; ok {
			out = append(out, u)
		}
	}
	return out
}

// AllDocIDs returns every indexed docID in ascending order.
func (idx *Index) AllDocIDs() []int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	ids := make([]int, 0, len(idx.docToURL))
	for id := range idx.docToURL {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
