package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/dateutil"
	"github.com/lumenhq/lumen/internal/progress"
	"github.com/lumenhq/lumen/server/quiz"
	"github.com/lumenhq/lumen/store"
	"github.com/lumenhq/lumen/store/test"
)

func fixedClock(day string) dateutil.FixedClock {
	t, err := dateutil.ParseDay(day)
	if err != nil {
		panic(err)
	}
	return dateutil.FixedClock{Time: t.Add(8 * time.Hour)}
}

func TestCollector_EmptyStore(t *testing.T) {
	ctx := context.Background()
	ts := test.NewTestingStore(ctx, t)
	collector := NewCollector(ts, quiz.NewSelector(ts))

	summary, err := collector.Collect(ctx)
	require.NoError(t, err)
	assert.Zero(t, summary.CurrentStreak)
	assert.False(t, summary.StreakActive)
	assert.Zero(t, summary.MasteredDocs)
	assert.Zero(t, summary.StudyDays)
	assert.False(t, summary.PendingQuiz)
	assert.False(t, summary.LastUpdated.IsZero())
}

func TestCollector_AggregatesActivity(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock("2024-05-10")
	ts := test.NewTestingStoreWithClock(ctx, t, clock)

	qs := []store.Question{{ID: 1, Question: "q", Answer: "a"}, {ID: 2, Question: "q", Answer: "a"}, {ID: 3, Question: "q", Answer: "a"}}
	require.NoError(t, ts.RecordStudied(ctx, "doc-a", "A", qs))
	_, err := ts.RecordActivity(ctx)
	require.NoError(t, err)

	// Same doc studied two days earlier as well.
	earlier := store.NewWithClock(ts.GetDriver(), nil, fixedClock("2024-05-08"))
	require.NoError(t, earlier.RecordStudied(ctx, "doc-a", "A", qs))
	require.NoError(t, earlier.RecordStudied(ctx, "doc-b", "B", qs))

	require.NoError(t, ts.SetDocRatings(ctx, "doc-a", progress.RecallRatings{
		1: progress.RatingGotIt, 2: progress.RatingGotIt, 3: progress.RatingGotIt,
	}))
	_, err = ts.RecomputeMastery(ctx, "doc-a", len(qs))
	require.NoError(t, err)

	_, err = ts.AddTakeaway(ctx, "doc-a", "A", "remember this")
	require.NoError(t, err)

	collector := NewCollectorWithClock(ts, quiz.NewSelectorWithClock(ts, clock), clock)
	summary, err := collector.Collect(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.CurrentStreak)
	assert.True(t, summary.StreakActive)
	assert.Equal(t, 1, summary.MasteredDocs)
	assert.Equal(t, 2, summary.StudyDays)
	assert.Equal(t, 2, summary.DocsStudied)
	assert.Equal(t, 1, summary.TakeawayCount)
}
