package store

import (
	"context"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// TakeawayEntry is the user's saved takeaway for one document. At most one
// live entry exists per document key.
type TakeawayEntry struct {
	ID       string `json:"id"`
	DocKey   string `json:"docKey"`
	DocName  string `json:"docName"`
	Takeaway string `json:"takeaway"`
	Date     string `json:"date"`
}

// ListTakeaways returns all takeaways, oldest first.
func (s *Store) ListTakeaways(ctx context.Context) ([]TakeawayEntry, error) {
	return loadRecord(ctx, s, keyTakeaways, []TakeawayEntry{})
}

// AddTakeaway saves a takeaway for a document, replacing any prior entry
// for the same docKey regardless of its id. An empty docKey or takeaway is
// silently ignored.
func (s *Store) AddTakeaway(ctx context.Context, docKey, docName, takeaway string) (*TakeawayEntry, error) {
	if docKey == "" || takeaway == "" {
		return nil, nil
	}
	list, err := s.ListTakeaways(ctx)
	if err != nil {
		return nil, err
	}
	kept := make([]TakeawayEntry, 0, len(list)+1)
	for _, entry := range list {
		if entry.DocKey != docKey {
			kept = append(kept, entry)
		}
	}
	entry := TakeawayEntry{
		ID:       shortuuid.New(),
		DocKey:   docKey,
		DocName:  docName,
		Takeaway: takeaway,
		Date:     s.clock.Now().UTC().Format(time.RFC3339),
	}
	kept = append(kept, entry)
	if err := saveRecord(ctx, s, keyTakeaways, kept); err != nil {
		return nil, err
	}
	return &entry, nil
}

// TakeawayForDoc returns the takeaway saved for a document, or nil when
// none exists.
func (s *Store) TakeawayForDoc(ctx context.Context, docKey string) (*TakeawayEntry, error) {
	list, err := s.ListTakeaways(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range list {
		if entry.DocKey == docKey {
			return &entry, nil
		}
	}
	return nil, nil
}
