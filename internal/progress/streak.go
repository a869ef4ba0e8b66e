// Package progress holds the pure study-progress calculations: the streak
// state machine and the mastery evaluation. Both are plain functions over
// in-memory values so they can be tested with injected dates, independent
// of the store that persists their results.
package progress

import (
	"github.com/lumenhq/lumen/internal/dateutil"
)

// StreakState is the singleton consecutive-day activity counter.
type StreakState struct {
	LastActivityDate string `json:"lastActivityDate"`
	CurrentStreak    int    `json:"currentStreak"`
}

// NextStreak applies one recorded activity on the given day to the previous
// state and returns the new state.
//
// Transitions:
//   - already active today: unchanged (idempotent within a day)
//   - first-ever activity: streak starts at 1
//   - exactly one day since last activity: streak extends
//   - more than one day: streak restarts at 1
//   - last activity after today (clock skew): unchanged; rewriting the
//     state on a transient clock problem would destroy a valid streak
//
// An unparsable stored date is treated as corrupt and restarts the streak.
func NextStreak(prev StreakState, today string) StreakState {
	if prev.LastActivityDate == today {
		return prev
	}
	if prev.LastActivityDate == "" {
		return StreakState{LastActivityDate: today, CurrentStreak: 1}
	}

	diffDays, err := dateutil.DaysBetween(prev.LastActivityDate, today)
	if err != nil {
		return StreakState{LastActivityDate: today, CurrentStreak: 1}
	}

	switch {
	case diffDays == 1:
		return StreakState{LastActivityDate: today, CurrentStreak: prev.CurrentStreak + 1}
	case diffDays > 1:
		return StreakState{LastActivityDate: today, CurrentStreak: 1}
	default:
		// diffDays < 0: the stored date is in the future.
		return prev
	}
}

// IsActive reports whether the stored streak counts for today. A streak
// whose last activity is older than today is stale and should not be shown
// as current.
func (s StreakState) IsActive(today string) bool {
	return s.LastActivityDate == today && s.CurrentStreak > 0
}
