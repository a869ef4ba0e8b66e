package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

const (
	// ContextCharLimit is the document size above which retrieval replaces
	// sending the full text to the model.
	ContextCharLimit = 12000

	// retrieveTopK is the number of top-ranked chunks considered.
	retrieveTopK = 5
	// excerptBudget bounds the total length of the returned excerpt.
	excerptBudget = 6000
	// chunkSeparator joins the selected chunks in the excerpt.
	chunkSeparator = "\n\n---\n\n"

	// fingerprintPrefix is how much of the document participates in the
	// cache fingerprint alongside its length.
	fingerprintPrefix = 200

	// TruncationMarker is appended when retrieval is unavailable and the
	// document is cut off instead.
	TruncationMarker = "\n\n[Document truncated. Configure an embedding API key for retrieval.]"
)

// EmbeddingClient generates embedding vectors. *Provider implements it;
// tests substitute a mock.
type EmbeddingClient interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	IsEnabled() bool
}

// Retriever selects the document excerpts most relevant to a query, so
// long documents fit the model's context. Chunk embeddings are cached per
// document fingerprint.
type Retriever struct {
	client EmbeddingClient
	cache  *embeddingCache
}

// NewRetriever creates a retriever over the given embedding client.
func NewRetriever(client EmbeddingClient) *Retriever {
	return &Retriever{
		client: client,
		cache:  newEmbeddingCache(16),
	}
}

// RelevantChunks returns the part of fullText to use as chat context for
// the query. Documents at or under maxChars pass through whole. Longer
// documents are chunked, embedded and ranked by cosine similarity, and the
// top chunks are joined under a fixed budget.
//
// Retrieval never fails the calling chat flow: with no credential, or when
// embedding fails, the document is truncated to maxChars with a visible
// marker instead.
func (r *Retriever) RelevantChunks(ctx context.Context, fullText, query string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = ContextCharLimit
	}
	if len(fullText) <= maxChars {
		return fullText
	}
	if r.client == nil || !r.client.IsEnabled() {
		return fullText[:maxChars] + TruncationMarker
	}

	chunks, vectors, err := r.documentEmbeddings(ctx, fullText)
	if err != nil {
		slog.Warn("chunk embedding failed, falling back to truncation", "error", err)
		return fullText[:maxChars] + TruncationMarker
	}

	queryVectors, err := r.client.EmbedBatch(ctx, []string{query})
	if err != nil || len(queryVectors) == 0 {
		slog.Warn("query embedding failed, falling back to truncation", "error", err)
		return fullText[:maxChars] + TruncationMarker
	}
	queryVector := queryVectors[0]

	type scoredChunk struct {
		chunk string
		score float64
	}
	scored := make([]scoredChunk, len(chunks))
	for i, chunk := range chunks {
		scored[i] = scoredChunk{chunk: chunk, score: CosineSimilarity(vectors[i], queryVector)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var selected []string
	totalLen := 0
	for i := 0; i < len(scored) && i < retrieveTopK; i++ {
		if totalLen+len(scored[i].chunk) > excerptBudget {
			break
		}
		selected = append(selected, scored[i].chunk)
		totalLen += len(scored[i].chunk)
	}

	if len(selected) == 0 {
		if len(chunks) > 0 {
			return chunks[0]
		}
		return ""
	}
	return strings.Join(selected, chunkSeparator)
}

// documentEmbeddings returns the chunks and vectors for a document, from
// cache when the fingerprint matches.
func (r *Retriever) documentEmbeddings(ctx context.Context, fullText string) ([]string, [][]float32, error) {
	key := fingerprint(fullText)
	if chunks, vectors, ok := r.cache.get(key); ok {
		return chunks, vectors, nil
	}

	chunks := ChunkText(fullText)
	vectors, err := r.client.EmbedBatch(ctx, chunks)
	if err != nil {
		return nil, nil, err
	}
	r.cache.set(key, chunks, vectors)

	slog.Debug("document embedded for retrieval",
		"chunks", len(chunks),
		"doc_chars", len(fullText))
	return chunks, vectors, nil
}

// fingerprint identifies a document by its length and prefix; good enough
// to reuse embeddings across queries without hashing the whole text.
func fingerprint(doc string) string {
	prefix := doc
	if len(prefix) > fingerprintPrefix {
		prefix = prefix[:fingerprintPrefix]
	}
	return fmt.Sprintf("%d:%s", len(doc), prefix)
}
