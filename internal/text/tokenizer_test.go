package text

import (
	"reflect"
	"testing"
)

func TestTokenizePositionsSurviveStopwordDrop(t *testing.T) {
	stop := DefaultStopwords()
	// "the" is a stop word; it must still consume position 1 so "quick"
	// (position 0) and "brown" (position 2) stay 2 apart, matching the
	// raw token stream rather than collapsing after filtering.
	got := Tokenize("quick the brown", stop)
	want := []Token{
		{Position: 0, Stem: Stem("quick")},
		{Position: 2, Stem: Stem("brown")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %#v; want %#v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize("", nil); got != nil {
		t.Fatalf("Tokenize(\"\") = %#v; want nil", got)
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	text := "Apple apple Orange, orange! banana?"
	a := Tokenize(text, nil)
	b := Tokenize(text, nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Tokenize not deterministic: %#v != %#v", a, b)
	}
}

func TestTokenizeStopwordsNeverSurvive(t *testing.T) {
	stop := DefaultStopwords()
	for _, tok := range Tokenize("the and of in to a an this", stop) {
		t.Fatalf("stop word leaked into tokens: %#v", tok)
	}
}

func TestTokenizeAssignsSequentialPositions(t *testing.T) {
	a := Tokenize("apple apple orange", nil)
	wantA := []Token{
		{Position: 0, Stem: Stem("apple")},
		{Position: 1, Stem: Stem("apple")},
		{Position: 2, Stem: Stem("orange")},
	}
	if !reflect.DeepEqual(a, wantA) {
		t.Fatalf("doc A tokens = %#v; want %#v", a, wantA)
	}

	b := Tokenize("orange banana", nil)
	wantB := []Token{
		{Position: 0, Stem: Stem("orange")},
		{Position: 1, Stem: Stem("banana")},
	}
	if !reflect.DeepEqual(b, wantB) {
		t.Fatalf("doc B tokens = %#v; want %#v", b, wantB)
	}
}
