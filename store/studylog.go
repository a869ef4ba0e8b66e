package store

import (
	"context"

	"github.com/lumenhq/lumen/internal/dateutil"
)

// StudiedDocEntry is one document's snapshot for "studied on this date".
// Yesterday's entries are the source for today's quiz.
type StudiedDocEntry struct {
	DocKey    string     `json:"docKey"`
	DocName   string     `json:"docName"`
	Questions []Question `json:"questions"`
}

// studyLog maps a day string to the documents studied that day, in the
// order they were recorded.
type studyLog map[string][]StudiedDocEntry

// StudiedDocsForDate returns the documents studied on the given day, oldest
// first. Unknown dates yield an empty list.
func (s *Store) StudiedDocsForDate(ctx context.Context, date string) ([]StudiedDocEntry, error) {
	log, err := loadRecord(ctx, s, keyStudiedPerDay, studyLog{})
	if err != nil {
		return nil, err
	}
	return log[date], nil
}

// StudiedDocsYesterday returns the documents studied one calendar day
// before today.
func (s *Store) StudiedDocsYesterday(ctx context.Context) ([]StudiedDocEntry, error) {
	return s.StudiedDocsForDate(ctx, dateutil.Yesterday(s.clock))
}

// RecordStudied marks a document as studied today. Recording the same
// document twice on one day is a no-op, as is a call with an empty docKey
// or question set.
func (s *Store) RecordStudied(ctx context.Context, docKey, docName string, questions []Question) error {
	if docKey == "" || len(questions) == 0 {
		return nil
	}
	log, err := loadRecord(ctx, s, keyStudiedPerDay, studyLog{})
	if err != nil {
		return err
	}
	today := dateutil.Today(s.clock)
	for _, entry := range log[today] {
		if entry.DocKey == docKey {
			return nil
		}
	}
	log[today] = append(log[today], StudiedDocEntry{
		DocKey:    docKey,
		DocName:   docName,
		Questions: questions,
	})
	return saveRecord(ctx, s, keyStudiedPerDay, log)
}
