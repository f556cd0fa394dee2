// Package scoring implements the vector-space scorer: TF-IDF document
// and query vectors, title-match boosting, cosine similarity, and
// phrase-gated multi-phrase combination.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/frejajensen9/web-based-search-engine-24/internal/index"
	"github.com/frejajensen9/web-based-search-engine-24/internal/phrase"
	"github.com/frejajensen9/web-based-search-engine-24/internal/query"
)

// TitleBoost is applied to a document-vector weight when the term
// appears (lower-cased, substring match) in the document's title.
const TitleBoost = 1.5

// TopK is the maximum number of results returned by Score.
const TopK = 50

// Scored is one document's combined score across all query phrases.
type Scored struct {
	DocID int
	Score float64
}

// Scorer computes TF-IDF vectors and cosine similarity against idx.
type Scorer struct {
	idx *index.Index
}

// New builds a Scorer reading from idx.
func New(idx *index.Index) *Scorer {
	return &Scorer{idx: idx}
}

func (s *Scorer) idf(term string) float64 {
	df := s.idx.DocumentFrequency(term)
	if df == 0 {
		return 0
	}
	n := s.idx.N()
	return math.Log(float64(n) / float64(df))
}

// documentVector builds V_d. Returns nil if docID has no indexed terms.
func (s *Scorer) documentVector(docID int) map[string]float64 {
	terms := s.idx.Terms(docID)
	if len(terms) == 0 {
		return nil
	}
	maxTF := 0
	for _, p := range terms {
		if p.Frequency > maxTF {
			maxTF = p.Frequency
		}
	}
	if maxTF == 0 {
		return nil
	}

	title := strings.ToLower(s.idx.Title(docID))
	vec := make(map[string]float64, len(terms))
	for term, p := range terms {
		weight := (float64(p.Frequency) / float64(maxTF)) * s.idf(term)
		if strings.Contains(title, term) {
			weight *= TitleBoost
		}
		vec[term] = weight
	}
	return vec
}

// queryVector builds V_q for a single phrase. Terms with no recorded
// document frequency (unseen at index time) are dropped, since their
// idf is undefined.
func (s *Scorer) queryVector(ph query.Phrase) map[string]float64 {
	counts := make(map[string]int, len(ph))
	for _, term := range ph {
		counts[term]++
	}
	maxTF := 0
	for _, c := range counts {
		if c > maxTF {
			maxTF = c
		}
	}
	vec := make(map[string]float64, len(counts))
	if maxTF == 0 {
		return vec
	}
	for term, c := range counts {
		if s.idx.DocumentFrequency(term) == 0 {
			continue
		}
		vec[term] = (float64(c) / float64(maxTF)) * s.idf(term)
	}
	return vec
}

// cosineSimilarity computes similarity between a query vector and a
// document vector. Norms sum over all terms present in their own
// vector; absent terms contribute zero to the dot product.
func cosineSimilarity(q, d map[string]float64) float64 {
	var dot, normQ, normD float64
	for term, qw := range q {
		if dw, ok := d[term]; ok {
			dot += qw * dw
		}
		normQ += qw * qw
	}
	for _, dw := range d {
		normD += dw * dw
	}
	if normQ == 0 || normD == 0 {
		return 0
	}
	return dot / (math.Sqrt(normQ) * math.Sqrt(normD))
}

// Score ranks every indexed document against phrases: a document's score
// is the sum of per-phrase cosine similarities, for documents passing the
// phrase gate for every phrase. Returns the top TopK documents by
// descending score, ties broken by ascending docID.
func (s *Scorer) Score(phrases []query.Phrase) []Scored {
	if len(phrases) == 0 {
		return nil
	}

	docIDs := s.idx.AllDocIDs()
	eligible := make(map[int]bool, len(docIDs))
	for _, d := range docIDs {
		eligible[d] = true
	}
	totals := make(map[int]float64, len(docIDs))

	for _, ph := range phrases {
		qvec := s.queryVector(ph)
		for _, d := range docIDs {
			if !eligible[d] {
				continue
			}
			if !phrase.Matches(s.idx.Terms(d), ph) {
				eligible[d] = false
				continue
			}
			totals[d] += cosineSimilarity(qvec, s.documentVector(d))
		}
	}

	results := make([]Scored, 0, len(totals))
	for d, ok := range eligible {
		if !ok {
			continue
		}
		results = append(results, Scored{DocID: d, Score: totals[d]})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})
	if len(results) > TopK {
		results = results[:TopK]
	}
	return results
}
