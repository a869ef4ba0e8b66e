// Package stats provides simple local study statistics for the lumen UI.
// This is an on-demand aggregation, not a monitoring system.
package stats

import (
	"context"
	"time"

	"github.com/lumenhq/lumen/internal/dateutil"
	"github.com/lumenhq/lumen/server/quiz"
	"github.com/lumenhq/lumen/store"
)

// activityWindowDays is the look-back window for study activity counts.
const activityWindowDays = 30

// Summary is an aggregated view of study progress.
type Summary struct {
	CurrentStreak int  `json:"currentStreak"`
	StreakActive  bool `json:"streakActive"`

	MasteredDocs int `json:"masteredDocs"`

	// Activity over the last 30 days.
	StudyDays   int `json:"studyDays"`
	DocsStudied int `json:"docsStudied"`

	TakeawayCount int  `json:"takeawayCount"`
	PendingQuiz   bool `json:"pendingQuiz"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// Collector aggregates study statistics from the store.
type Collector struct {
	store    *store.Store
	selector *quiz.Selector
	clock    dateutil.Clock
}

// NewCollector creates a new statistics collector.
func NewCollector(st *store.Store, selector *quiz.Selector) *Collector {
	return NewCollectorWithClock(st, selector, dateutil.SystemClock{})
}

// NewCollectorWithClock creates a collector with an injected clock.
func NewCollectorWithClock(st *store.Store, selector *quiz.Selector, clock dateutil.Clock) *Collector {
	return &Collector{store: st, selector: selector, clock: clock}
}

// Collect gathers the current summary. Each call reads the live records so
// the result never lags a mutation.
func (c *Collector) Collect(ctx context.Context) (*Summary, error) {
	summary := &Summary{LastUpdated: c.clock.Now()}

	streak, err := c.store.GetStreak(ctx)
	if err != nil {
		return nil, err
	}
	summary.CurrentStreak = streak.CurrentStreak
	summary.StreakActive = streak.IsActive(dateutil.Today(c.clock))

	mastery, err := c.store.GetMastery(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range mastery {
		if entry.Mastered {
			summary.MasteredDocs++
		}
	}

	seenDocs := map[string]bool{}
	day := c.clock.Now().UTC()
	for i := 0; i < activityWindowDays; i++ {
		entries, err := c.store.StudiedDocsForDate(ctx, dateutil.Day(day))
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			summary.StudyDays++
		}
		for _, entry := range entries {
			seenDocs[entry.DocKey] = true
		}
		day = day.AddDate(0, 0, -1)
	}
	summary.DocsStudied = len(seenDocs)

	takeaways, err := c.store.ListTakeaways(ctx)
	if err != nil {
		return nil, err
	}
	summary.TakeawayCount = len(takeaways)

	pending, err := c.selector.HasPending(ctx)
	if err != nil {
		return nil, err
	}
	summary.PendingQuiz = pending

	return summary, nil
}
