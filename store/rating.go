package store

import (
	"context"

	"github.com/lumenhq/lumen/internal/progress"
)

// RatingLedger maps a document key to its per-question recall ratings.
type RatingLedger map[string]progress.RecallRatings

// GetRatings returns the full rating ledger. Absence or corruption yields
// an empty ledger.
func (s *Store) GetRatings(ctx context.Context) (RatingLedger, error) {
	return loadRecord(ctx, s, keyRatings, RatingLedger{})
}

// GetDocRatings returns one document's ratings. An unknown docKey means
// "no ratings yet" and yields an empty map.
func (s *Store) GetDocRatings(ctx context.Context, docKey string) (progress.RecallRatings, error) {
	ledger, err := s.GetRatings(ctx)
	if err != nil {
		return nil, err
	}
	ratings, ok := ledger[docKey]
	if !ok {
		return progress.RecallRatings{}, nil
	}
	return ratings, nil
}

// SetDocRatings replaces the entire inner rating map for one document,
// leaving other documents' ratings untouched. The write is persisted
// immediately.
func (s *Store) SetDocRatings(ctx context.Context, docKey string, ratings progress.RecallRatings) error {
	if docKey == "" {
		return nil
	}
	ledger, err := s.GetRatings(ctx)
	if err != nil {
		return err
	}
	if ratings == nil {
		ratings = progress.RecallRatings{}
	}
	ledger[docKey] = ratings
	return saveRecord(ctx, s, keyRatings, ledger)
}
