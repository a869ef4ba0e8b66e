package ai

import "strings"

const (
	// ChunkSize is the maximum character count per chunk.
	ChunkSize = 600
	// ChunkOverlap is the character count carried over between adjacent
	// chunks so context is not cut at chunk boundaries.
	ChunkOverlap = 100
)

// ChunkText splits a document into overlapping fixed-size chunks for
// embedding. Chunk boundaries are pulled back to the nearest word boundary
// when one exists inside the window.
func ChunkText(text string) []string {
	return chunkText(text, ChunkSize, ChunkOverlap)
}

func chunkText(text string, size, overlap int) []string {
	if size <= 0 || overlap >= size {
		return nil
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + size
		if end > len(text) {
			end = len(text)
		} else if lastSpace := strings.LastIndex(text[:end], " "); lastSpace > start {
			end = lastSpace
		}

		if chunk := strings.TrimSpace(text[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := end
		if end-start > overlap {
			next = end - overlap
		}
		if next <= start {
			// No word boundary made progress; force a hard split.
			next = start + size
		}
		start = next
	}
	return chunks
}
