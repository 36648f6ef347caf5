package rag

import "sort"

// DefaultTopK is the number of chunks handed to the model as context.
const DefaultTopK = 3

// ScoredChunk pairs a chunk with its similarity score against a query.
// Index is the chunk's position in the original chunk sequence.
type ScoredChunk struct {
	Index int
	Text  string
	Score float64
}

// Retrieve ranks every chunk against the query and returns the top
// min(k, len(chunks)) entries, descending by score. Equal scores keep
// ascending chunk order, so identical input always yields an identical
// result.
func Retrieve(query string, chunks []string, k int) []ScoredChunk {
	if k <= 0 {
		k = DefaultTopK
	}
	scored := make([]ScoredChunk, len(chunks))
	for i, text := range chunks {
		scored[i] = ScoredChunk{Index: i, Text: text, Score: Similarity(query, text)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}
