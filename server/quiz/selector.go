// Package quiz builds the daily quiz: a bounded, date-deterministic
// selection of questions from the documents studied the previous day.
package quiz

import (
	"context"

	"github.com/lumenhq/lumen/internal/dateutil"
	"github.com/lumenhq/lumen/store"
)

// MaxQuestions bounds the size of one day's quiz.
const MaxQuestions = 10

// QuestionItem is one question in the daily quiz, tagged with its source
// document so ratings land in the right ledger entry.
type QuestionItem struct {
	DocKey   string `json:"docKey"`
	DocName  string `json:"docName"`
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Selector assembles the quiz for the current day.
type Selector struct {
	store *store.Store
	clock dateutil.Clock
}

// NewSelector creates a selector over the progress store.
func NewSelector(st *store.Store) *Selector {
	return NewSelectorWithClock(st, dateutil.SystemClock{})
}

// NewSelectorWithClock creates a selector with an injected clock, for tests
// that pin the quiz date.
func NewSelectorWithClock(st *store.Store, clock dateutil.Clock) *Selector {
	return &Selector{store: st, clock: clock}
}

// TodayQuestions returns today's quiz, at most MaxQuestions long. The pool
// is every question from yesterday's studied documents, in document order;
// when nothing was studied yesterday it falls back to the last analyzed
// document. The order is a pure function of today's date and the pool, so
// repeated calls within one day return the identical sequence.
func (s *Selector) TodayQuestions(ctx context.Context) ([]QuestionItem, error) {
	pool, err := s.candidatePool(ctx)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return []QuestionItem{}, nil
	}

	shuffled := shuffleWithSeed(pool, seedFromDate(dateutil.Today(s.clock)))
	if len(shuffled) > MaxQuestions {
		shuffled = shuffled[:MaxQuestions]
	}
	return shuffled, nil
}

// HasPending reports whether today's quiz exists and at least one of its
// questions is still unrated. Recomputed on every call; the pending state
// must track rating mutations immediately.
func (s *Selector) HasPending(ctx context.Context) (bool, error) {
	questions, err := s.TodayQuestions(ctx)
	if err != nil {
		return false, err
	}
	if len(questions) == 0 {
		return false, nil
	}
	ledger, err := s.store.GetRatings(ctx)
	if err != nil {
		return false, err
	}
	for _, q := range questions {
		if _, rated := ledger[q.DocKey][q.ID]; !rated {
			return true, nil
		}
	}
	return false, nil
}

func (s *Selector) candidatePool(ctx context.Context) ([]QuestionItem, error) {
	yesterdayDocs, err := s.store.StudiedDocsYesterday(ctx)
	if err != nil {
		return nil, err
	}

	var pool []QuestionItem
	if len(yesterdayDocs) > 0 {
		for _, doc := range yesterdayDocs {
			for _, q := range doc.Questions {
				pool = append(pool, QuestionItem{
					DocKey:   doc.DocKey,
					DocName:  doc.DocName,
					ID:       q.ID,
					Question: q.Question,
					Answer:   q.Answer,
				})
			}
		}
		return pool, nil
	}

	last, err := s.store.GetLastDoc(ctx)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, nil
	}
	for _, q := range last.Questions {
		pool = append(pool, QuestionItem{
			DocKey:   last.DocKey,
			DocName:  last.DocName,
			ID:       q.ID,
			Question: q.Question,
			Answer:   q.Answer,
		})
	}
	return pool, nil
}
