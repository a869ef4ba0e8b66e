// Package store provides persistence for all study-progress records: recall
// ratings, the per-day study log, the streak singleton, mastery flags, the
// last analyzed document and takeaways.
//
// Each record is serialized to JSON under a fixed namespaced key. A record
// that fails to deserialize degrades to its empty default instead of
// surfacing an error; only driver-level failures are returned to callers.
package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/lumenhq/lumen/internal/dateutil"
	"github.com/lumenhq/lumen/internal/profile"
)

// Keys are prefixed to keep all lumen records in one namespace.
const (
	keyRatings       = "lumen-ratings"
	keyLastDoc       = "lumen-last-doc"
	keyStudiedPerDay = "lumen-studied-per-day"
	keyTakeaways     = "lumen-takeaways"
	keyStreak        = "lumen-streak"
	keyMastery       = "lumen-mastery"
)

// Store provides access to all study-progress records.
type Store struct {
	profile *profile.Profile
	driver  Driver
	clock   dateutil.Clock
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return NewWithClock(driver, profile, dateutil.SystemClock{})
}

// NewWithClock creates a Store with an injected clock, for tests that pin
// "today".
func NewWithClock(driver Driver, profile *profile.Profile, clock dateutil.Clock) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
		clock:   clock,
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	return s.driver.Close()
}

// loadRecord reads and deserializes one record. An absent key or a value
// that no longer parses yields the fallback; corruption is logged but never
// returned as an error.
func loadRecord[T any](ctx context.Context, s *Store, key string, fallback T) (T, error) {
	raw, ok, err := s.driver.Get(ctx, key)
	if err != nil {
		return fallback, err
	}
	if !ok || raw == "" {
		return fallback, nil
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		slog.Warn("discarding corrupt record", "key", key, "error", err)
		return fallback, nil
	}
	return value, nil
}

// saveRecord serializes and writes one record, replacing any prior value.
func saveRecord(ctx context.Context, s *Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.driver.Set(ctx, key, string(raw))
}
