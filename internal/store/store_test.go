package store

import "testing"

func TestCommitAndLoadRoundTrip(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	urls := map[string]int{"http://a": 0, "http://b": 1}
	if err := s.CommitRoots(map[string]any{
		"urlIndex":   urls,
		"lastPageId": 2,
	}); err != nil {
		t.Fatalf("CommitRoots: %v", err)
	}

	var gotURLs map[string]int
	ok, err := s.LoadRoot("urlIndex", &gotURLs)
	if err != nil {
		t.Fatalf("LoadRoot: %v", err)
	}
	if !ok {
		t.Fatalf("urlIndex root missing after commit")
	}
	if len(gotURLs) != 2 || gotURLs["http://a"] != 0 || gotURLs["http://b"] != 1 {
		t.Fatalf("urlIndex round-trip = %#v", gotURLs)
	}

	var lastID int
	ok, err = s.LoadRoot("lastPageId", &lastID)
	if err != nil || !ok || lastID != 2 {
		t.Fatalf("lastPageId round-trip = %d, ok=%v, err=%v", lastID, ok, err)
	}
}

func TestLoadRootMissingIsNotError(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	var dest map[string]int
	ok, err := s.LoadRoot("neverCommitted", &dest)
	if err != nil {
		t.Fatalf("LoadRoot: %v", err)
	}
	if ok {
		t.Fatalf("expected missing root to report ok=false")
	}
}

func TestCommitOverwritesExistingRoot(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.CommitRoots(map[string]any{"lastPageId": 5}); err != nil {
		t.Fatalf("CommitRoots #1: %v", err)
	}
	if err := s.CommitRoots(map[string]any{"lastPageId": 9}); err != nil {
		t.Fatalf("CommitRoots #2: %v", err)
	}

	var lastID int
	if _, err := s.LoadRoot("lastPageId", &lastID); err != nil {
		t.Fatalf("LoadRoot: %v", err)
	}
	if lastID != 9 {
		t.Fatalf("lastPageId = %d; want 9", lastID)
	}
}
