package quiz

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/dateutil"
	"github.com/lumenhq/lumen/internal/progress"
	"github.com/lumenhq/lumen/store"
	"github.com/lumenhq/lumen/store/test"
)

func fixedClock(day string) dateutil.FixedClock {
	t, err := dateutil.ParseDay(day)
	if err != nil {
		panic(err)
	}
	return dateutil.FixedClock{Time: t.Add(12 * time.Hour)}
}

func questions(n int) []store.Question {
	qs := make([]store.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, store.Question{
			ID:       i,
			Question: fmt.Sprintf("question %d", i),
			Answer:   fmt.Sprintf("answer %d", i),
		})
	}
	return qs
}

// selectorOn returns a store that studied docs on day one and a selector
// reading it on day two.
func selectorOn(ctx context.Context, t *testing.T, studyDay, quizDay string) (*store.Store, *Selector) {
	ts := test.NewTestingStoreWithClock(ctx, t, fixedClock(studyDay))
	next := store.NewWithClock(ts.GetDriver(), nil, fixedClock(quizDay))
	return ts, NewSelectorWithClock(next, fixedClock(quizDay))
}

func TestTodayQuestions_FromYesterdaysDocs(t *testing.T) {
	ctx := context.Background()
	ts, sel := selectorOn(ctx, t, "2024-01-01", "2024-01-02")

	require.NoError(t, ts.RecordStudied(ctx, "doc-a", "A", questions(2)))

	got, err := sel.TodayQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	ids := map[int]bool{}
	for _, q := range got {
		assert.Equal(t, "doc-a", q.DocKey)
		assert.Equal(t, "A", q.DocName)
		ids[q.ID] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, ids)
}

func TestTodayQuestions_DeterministicWithinDay(t *testing.T) {
	ctx := context.Background()
	ts, sel := selectorOn(ctx, t, "2024-01-01", "2024-01-02")

	require.NoError(t, ts.RecordStudied(ctx, "doc-a", "A", questions(30)))

	first, err := sel.TodayQuestions(ctx)
	require.NoError(t, err)
	second, err := sel.TodayQuestions(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, MaxQuestions)
}

func TestTodayQuestions_FallbackToLastDoc(t *testing.T) {
	ctx := context.Background()
	ts, sel := selectorOn(ctx, t, "2024-01-01", "2024-01-02")

	// Nothing studied yesterday, but an analysis snapshot exists.
	require.NoError(t, ts.SetLastDoc(ctx, &store.LastDocSnapshot{
		DocKey:    "doc-last",
		DocName:   "Last",
		Questions: questions(3),
	}))

	got, err := sel.TodayQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, q := range got {
		assert.Equal(t, "doc-last", q.DocKey)
	}
}

func TestTodayQuestions_EmptyWhenNoSources(t *testing.T) {
	ctx := context.Background()
	_, sel := selectorOn(ctx, t, "2024-01-01", "2024-01-02")

	got, err := sel.TodayQuestions(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTodayQuestions_StudyTodayNotInTodaysQuiz(t *testing.T) {
	ctx := context.Background()
	ts := test.NewTestingStoreWithClock(ctx, t, fixedClock("2024-01-02"))
	sel := NewSelectorWithClock(ts, fixedClock("2024-01-02"))

	// Studied today only; the quiz draws from yesterday and there is no
	// last-doc fallback recorded.
	require.NoError(t, ts.RecordStudied(ctx, "doc-a", "A", questions(2)))

	got, err := sel.TodayQuestions(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHasPending(t *testing.T) {
	ctx := context.Background()
	ts, sel := selectorOn(ctx, t, "2024-01-01", "2024-01-02")

	pending, err := sel.HasPending(ctx)
	require.NoError(t, err)
	assert.False(t, pending, "no quiz means nothing pending")

	require.NoError(t, ts.RecordStudied(ctx, "doc-a", "A", questions(2)))

	pending, err = sel.HasPending(ctx)
	require.NoError(t, err)
	assert.True(t, pending)

	// Rating one question keeps the quiz pending.
	require.NoError(t, ts.SetDocRatings(ctx, "doc-a", progress.RecallRatings{
		1: progress.RatingGotIt,
	}))
	pending, err = sel.HasPending(ctx)
	require.NoError(t, err)
	assert.True(t, pending)

	// Rating every question clears it.
	require.NoError(t, ts.SetDocRatings(ctx, "doc-a", progress.RecallRatings{
		1: progress.RatingGotIt,
		2: progress.RatingMissed,
	}))
	pending, err = sel.HasPending(ctx)
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestShuffleWithSeed_PureAndBounded(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	a := shuffleWithSeed(items, seedFromDate("2024-01-02"))
	b := shuffleWithSeed(items, seedFromDate("2024-01-02"))
	assert.Equal(t, a, b, "same seed must give the same permutation")

	c := shuffleWithSeed(items, seedFromDate("2024-01-03"))
	assert.NotEqual(t, a, c, "different dates should reorder the pool")

	// A permutation, not a resampling.
	seen := map[int]bool{}
	for _, v := range a {
		seen[v] = true
	}
	assert.Len(t, seen, len(items))

	// Input untouched.
	assert.Equal(t, 0, items[0])
	assert.Equal(t, 49, items[49])
}
