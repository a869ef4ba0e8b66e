package store

import (
	"context"
	"fmt"
)

// Question is one quiz question from a document's analysis. IDs are unique
// within one document's question set.
type Question struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// KeyPoint is one key point from a document's analysis.
type KeyPoint struct {
	ID         int    `json:"id"`
	Point      string `json:"point"`
	Definition string `json:"definition"`
}

// LastDocSnapshot is the single most-recent analyzed document, overwritten
// on every completed analysis. It is the fallback source for the daily quiz
// when nothing was studied yesterday.
type LastDocSnapshot struct {
	DocKey    string     `json:"docKey"`
	DocName   string     `json:"docName"`
	Questions []Question `json:"questions"`
	KeyPoints []KeyPoint `json:"keyPoints"`
}

// DocKey derives the heuristic identifier for a document from its display
// name and the length of its extracted text. Two documents with the same
// name and length collapse to one record; that approximation is accepted.
func DocKey(name string, textLength int) string {
	return fmt.Sprintf("%s|%d", name, textLength)
}

// GetLastDoc returns the last analyzed document, or nil when none has been
// recorded yet.
func (s *Store) GetLastDoc(ctx context.Context) (*LastDocSnapshot, error) {
	return loadRecord[*LastDocSnapshot](ctx, s, keyLastDoc, nil)
}

// SetLastDoc overwrites the last analyzed document snapshot.
func (s *Store) SetLastDoc(ctx context.Context, snapshot *LastDocSnapshot) error {
	if snapshot == nil || snapshot.DocKey == "" {
		return nil
	}
	return saveRecord(ctx, s, keyLastDoc, snapshot)
}
