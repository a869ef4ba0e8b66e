package store

import (
	"context"
	"time"

	"github.com/lumenhq/lumen/internal/progress"
)

// MasteryEntry is the derived mastery flag for one document. MasteredAt
// records the last time mastery was achieved and is preserved when a later
// evaluation drops below the threshold.
type MasteryEntry struct {
	Mastered   bool   `json:"mastered"`
	MasteredAt string `json:"masteredAt,omitempty"`
}

// GetMastery returns the mastery flags for all documents.
func (s *Store) GetMastery(ctx context.Context) (map[string]MasteryEntry, error) {
	return loadRecord(ctx, s, keyMastery, map[string]MasteryEntry{})
}

// IsMastered reports whether one document is currently mastered.
func (s *Store) IsMastered(ctx context.Context, docKey string) (bool, error) {
	all, err := s.GetMastery(ctx)
	if err != nil {
		return false, err
	}
	return all[docKey].Mastered, nil
}

// RecomputeMastery re-derives the mastery flag for one document from its
// current ratings. It is a materialized view over the rating ledger and
// must be called after every rating mutation for the document; when fewer
// than 3 questions are rated the prior record is left untouched.
func (s *Store) RecomputeMastery(ctx context.Context, docKey string, questionCount int) (*MasteryEntry, error) {
	if docKey == "" {
		return nil, nil
	}
	ratings, err := s.GetDocRatings(ctx, docKey)
	if err != nil {
		return nil, err
	}
	mastered, evaluated := progress.EvaluateMastery(questionCount, ratings)
	if !evaluated {
		return nil, nil
	}

	all, err := s.GetMastery(ctx)
	if err != nil {
		return nil, err
	}
	entry := MasteryEntry{
		Mastered:   mastered,
		MasteredAt: all[docKey].MasteredAt,
	}
	if mastered {
		entry.MasteredAt = s.clock.Now().UTC().Format(time.RFC3339)
	}
	all[docKey] = entry
	if err := saveRecord(ctx, s, keyMastery, all); err != nil {
		return nil, err
	}
	return &entry, nil
}
