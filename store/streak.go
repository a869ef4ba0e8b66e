package store

import (
	"context"

	"github.com/lumenhq/lumen/internal/dateutil"
	"github.com/lumenhq/lumen/internal/progress"
)

// GetStreak returns the streak singleton, defaulting to an empty state when
// nothing has been recorded yet.
func (s *Store) GetStreak(ctx context.Context) (progress.StreakState, error) {
	return loadRecord(ctx, s, keyStreak, progress.StreakState{})
}

// RecordActivity applies one study activity to the streak state machine and
// persists the result. Calling it again on the same calendar day changes
// nothing.
func (s *Store) RecordActivity(ctx context.Context) (progress.StreakState, error) {
	prev, err := s.GetStreak(ctx)
	if err != nil {
		return progress.StreakState{}, err
	}
	next := progress.NextStreak(prev, dateutil.Today(s.clock))
	if next == prev {
		return prev, nil
	}
	if err := saveRecord(ctx, s, keyStreak, next); err != nil {
		return progress.StreakState{}, err
	}
	return next, nil
}
