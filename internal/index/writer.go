package index

import (
	"github.com/frejajensen9/web-based-search-engine-24/internal/posting"
	"github.com/frejajensen9/web-based-search-engine-24/internal/text"
)

// Session is the write capability the crawler borrows for the duration
// of one crawl. A Session mutates a private clone of the index's maps;
// nothing becomes visible to readers, and nothing is durable, until
// Commit succeeds. This is what makes a crash mid-crawl leave the store
// in its pre-crawl state true by construction rather than by care.
type Session struct {
	idx *Index

	urlToDoc  map[string]int
	docTitle  map[int]string
	postings  map[string]map[int]*posting.Posting
	links     map[LinkEdge]struct{}
	nextDocID int
}

// BeginSession starts a write session against idx. Only one Session may
// be open on an Index at a time; the caller is responsible for that.
func (idx *Index) BeginSession() *Session {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	s := &Session{
		idx:       idx,
		urlToDoc:  make(map[string]int, len(idx.urlToDoc)),
		docTitle:  make(map[int]string, len(idx.docTitle)),
		postings:  make(map[string]map[int]*posting.Posting, len(idx.postings)),
		links:     make(map[LinkEdge]struct{}, len(idx.links)),
		nextDocID: idx.nextDocID,
	}
	for u, d := range idx.urlToDoc {
		s.urlToDoc[u] = d
	}
	for d, t := range idx.docTitle {
		s.docTitle[d] = t
	}
	for term, byDoc := range idx.postings {
		clone := make(map[int]*posting.Posting, len(byDoc))
		for doc, p := range byDoc {
			clone[doc] = &posting.Posting{Frequency: p.Frequency, Positions: append([]int(nil), p.Positions...)}
		}
		s.postings[term] = clone
	}
	for e := range idx.links {
		s.links[e] = struct{}{}
	}
	return s
}

// AllocateDocID assigns the next durable docID to url and records the
// URL→docID mapping. This is only called after a successful fetch; a
// page that fails to fetch never reaches here and so never consumes a
// docID.
func (s *Session) AllocateDocID(url string) int {
	id := s.nextDocID
	s.nextDocID++
	s.urlToDoc[url] = id
	return id
}

// SetTitle records docID's title if it is non-empty. An empty or never-set
// title reads back as index.Untitled.
func (s *Session) SetTitle(docID int, title string) {
	if title == "" {
		return
	}
	s.docTitle[docID] = title
}

// AddEdge unconditionally records the directed edge (parent, child). The
// child need not be indexed; set semantics dedup an edge recorded twice
// from the same page.
func (s *Session) AddEdge(parent int, child string) {
	s.links[LinkEdge{Parent: parent, Child: child}] = struct{}{}
}

// IndexBody writes the postings for docID's body tokens: for each
// (position, stem), load or create the term's posting list, load or
// create that document's Posting, append the position (which also
// advances Frequency), and write both back. Tokens must already be in
// ascending position order — text.Tokenize guarantees this — so
// posting.Posting.Add's increasing-position invariant holds.
func (s *Session) IndexBody(docID int, tokens []text.Token) {
	for _, tok := range tokens {
		byDoc, ok := s.postings[tok.Stem]
		if !ok {
			byDoc = make(map[int]*posting.Posting)
			s.postings[tok.Stem] = byDoc
		}
		p, ok := byDoc[docID]
		if !ok {
			p = posting.New()
			byDoc[docID] = p
		}
		p.Add(tok.Position)
	}
}

// Commit persists the session's maps as a single transaction, the only
// durability boundary the engine has, and swaps them into the live Index
// so subsequent readers see them. The docID counter only becomes durable
// if this call returns nil.
func (s *Session) Commit() error {
	edges := make([]LinkEdge, 0, len(s.links))
	for e := range s.links {
		edges = append(edges, e)
	}

	if err := s.idx.store.CommitRoots(map[string]any{
		rootURLIndex:     s.urlToDoc,
		rootTitleIndex:   s.docTitle,
		rootPostingIndex: s.postings,
		rootLinkGraph:    edges,
		rootLastPageID:   s.nextDocID,
	}); err != nil {
		return err
	}

	s.idx.mu.Lock()
	defer s.idx.mu.Unlock()
	s.idx.urlToDoc = s.urlToDoc
	s.idx.docTitle = s.docTitle
	s.idx.postings = s.postings
	s.idx.links = s.links
	s.idx.nextDocID = s.nextDocID
	s.idx.rebuildDerived()
	return nil
}
