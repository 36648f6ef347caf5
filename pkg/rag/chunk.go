package rag

import "strings"

// DefaultChunkSize is the number of sentences per retrieval chunk.
const DefaultChunkSize = 5

// Chunk groups consecutive sentences into non-overlapping windows of
// size sentences each, joined by single spaces. The last window holds
// the remainder. Empty input yields no chunks.
func Chunk(sentences []string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	chunks := make([]string, 0, (len(sentences)+size-1)/size)
	for i := 0; i < len(sentences); i += size {
		end := i + size
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks = append(chunks, strings.Join(sentences[i:end], " "))
	}
	return chunks
}
