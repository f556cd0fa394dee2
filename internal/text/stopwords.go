package text

import (
	"bufio"
	"os"
	"strings"
)

// LoadStopwords reads a UTF-8 text file, one stop word per line, trims
// leading/trailing whitespace, and ignores blank lines. Matching against
// already-lower-cased tokens is case-sensitive, so callers that want
// case-insensitive stop words must lower-case the file themselves.
//
// A stop-word file that cannot be read is not fatal: the caller should
// log the failure and fall back to an empty set (or DefaultStopwords, if
// strictness is not required) rather than abort indexing.
func LoadStopwords(path string) (Stopwords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ws := make(Stopwords)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ws[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ws, nil
}

// DefaultStopwords returns a built-in common English stopword set. The
// CLI commands do not fall back to it: when the configured stop-word file
// cannot be read they proceed with an empty set.
func DefaultStopwords() Stopwords {
	ws := []string{
		"a", "an", "the", "and", "or", "but",
		"to", "in", "of", "on", "for", "with", "as", "at", "by", "from",
		"is", "are", "was", "were", "be", "been", "being",
		"this", "that", "these", "those", "it", "its", "itself",
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"they", "them", "their", "theirs", "themselves",
		"do", "does", "did", "doing",
		"have", "has", "had", "having",
		"not", "no", "nor", "only", "very", "too",
		"can", "could", "should", "would", "may", "might", "must", "will",
		"if", "then", "else", "than", "so", "because", "while", "when", "where",
		"about", "above", "below", "under", "over", "into", "out", "up", "down",
		"again", "further", "once", "here", "there",
	}
	m := make(Stopwords, len(ws))
	for _, w := range ws {
		m[w] = struct{}{}
	}
	return m
}
