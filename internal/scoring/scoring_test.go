package scoring

import (
	"testing"

	"github.com/frejajensen9/web-based-search-engine-24/internal/index"
	"github.com/frejajensen9/web-based-search-engine-24/internal/query"
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

// Two docs identical in body "rust rust memory"; D0 has title "Rust
// guide", D1 has title "Intro". Query "rust" should rank D0 above D1.
func TestScoreTitleBoostRanksMatchingTitleHigher(t *testing.T) {
	idx := openTestIndex(t)
	sess := idx.BeginSession()
	d0 := sess.AllocateDocID("/d0")
	sess.SetTitle(d0, "Rust guide")
	sess.IndexBody(d0, text.Tokenize("rust rust memory", nil))

	d1 := sess.AllocateDocID("/d1")
	sess.SetTitle(d1, "Intro")
	sess.IndexBody(d1, text.Tokenize("rust rust memory", nil))

	if err := sess.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	scorer := New(idx)
	phrases := query.Parse("rust", text.DefaultStopwords())
	scored := scorer.Score(phrases)
	if len(scored) != 2 {
		t.Fatalf("Score() = %#v; want 2 results", scored)
	}
	if scored[0].DocID != d0 {
		t.Fatalf("top result = doc %d; want doc %d (title boost)", scored[0].DocID, d0)
	}
	if scored[0].Score <= scored[1].Score {
		t.Fatalf("scores = %v, %v; want strictly descending", scored[0].Score, scored[1].Score)
	}
}

// Only the document with consecutive "quick brown" survives the phrase
// gate.
func TestScorePhraseGateExcludesNonConsecutiveMatch(t *testing.T) {
	idx := openTestIndex(t)
	sess := idx.BeginSession()
	d0 := sess.AllocateDocID("/d0")
	sess.IndexBody(d0, text.Tokenize("the quick brown fox", nil))
	sess.AllocateDocID("/d1")
	sess.IndexBody(1, text.Tokenize("brown quick the fox", nil))
	if err := sess.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	scorer := New(idx)
	phrases := query.Parse(`"quick brown"`, text.DefaultStopwords())
	scored := scorer.Score(phrases)
	if len(scored) != 1 || scored[0].DocID != d0 {
		t.Fatalf("Score() = %#v; want only doc %d", scored, d0)
	}
}
