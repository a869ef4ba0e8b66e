package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkg/errors"
)

// fakeEmbeddingClient embeds texts as keyword-count vectors so similarity
// is deterministic.
type fakeEmbeddingClient struct {
	enabled bool
	failing bool
	calls   int
}

func (f *fakeEmbeddingClient) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.failing {
		return nil, errors.New("embedding service unavailable")
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = []float32{
			float32(strings.Count(text, "kangaroo")),
			float32(strings.Count(text, "submarine")),
			1,
		}
	}
	return vectors, nil
}

func (f *fakeEmbeddingClient) IsEnabled() bool {
	return f.enabled
}

func longDocument() string {
	kangaroo := strings.TrimSpace(strings.Repeat("kangaroo habitat notes ", 30))
	submarine := strings.TrimSpace(strings.Repeat("submarine engine manual ", 30))
	return kangaroo + " " + submarine + " " + kangaroo
}

func TestRelevantChunks_ShortDocumentPassesThrough(t *testing.T) {
	r := NewRetriever(&fakeEmbeddingClient{enabled: true})
	doc := "short document"
	assert.Equal(t, doc, r.RelevantChunks(context.Background(), doc, "anything", 1000))
}

func TestRelevantChunks_NoCredentialTruncates(t *testing.T) {
	r := NewRetriever(&fakeEmbeddingClient{enabled: false})
	doc := longDocument()

	got := r.RelevantChunks(context.Background(), doc, "kangaroo", 500)
	assert.True(t, strings.HasPrefix(got, doc[:500]))
	assert.True(t, strings.HasSuffix(got, TruncationMarker))
}

func TestRelevantChunks_EmbeddingFailureTruncates(t *testing.T) {
	r := NewRetriever(&fakeEmbeddingClient{enabled: true, failing: true})
	doc := longDocument()

	got := r.RelevantChunks(context.Background(), doc, "kangaroo", 500)
	assert.True(t, strings.HasSuffix(got, TruncationMarker))
}

func TestRelevantChunks_RanksByQuerySimilarity(t *testing.T) {
	r := NewRetriever(&fakeEmbeddingClient{enabled: true})
	doc := longDocument()

	got := r.RelevantChunks(context.Background(), doc, "kangaroo", 500)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), excerptBudget+len(chunkSeparator)*retrieveTopK)

	// The best-matching chunk leads the excerpt.
	firstChunk := strings.Split(got, chunkSeparator)[0]
	assert.Contains(t, firstChunk, "kangaroo")
	assert.NotContains(t, firstChunk, "submarine")
}

func TestRelevantChunks_CachesDocumentEmbeddings(t *testing.T) {
	client := &fakeEmbeddingClient{enabled: true}
	r := NewRetriever(client)
	doc := longDocument()

	r.RelevantChunks(context.Background(), doc, "kangaroo", 500)
	// Chunks + query.
	assert.Equal(t, 2, client.calls)

	r.RelevantChunks(context.Background(), doc, "submarine", 500)
	// Only the new query is embedded; chunks come from the cache.
	assert.Equal(t, 3, client.calls)
}
