package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	today := "2024-06-10"

	tests := []struct {
		name string
		prev StreakState
		want StreakState
	}{
		{
			name: "first ever activity",
			prev: StreakState{},
			want: StreakState{LastActivityDate: today, CurrentStreak: 1},
		},
		{
			name: "same day is idempotent",
			prev: StreakState{LastActivityDate: today, CurrentStreak: 4},
			want: StreakState{LastActivityDate: today, CurrentStreak: 4},
		},
		{
			name: "consecutive day extends",
			prev: StreakState{LastActivityDate: "2024-06-09", CurrentStreak: 5},
			want: StreakState{LastActivityDate: today, CurrentStreak: 6},
		},
		{
			name: "gap of two days restarts",
			prev: StreakState{LastActivityDate: "2024-06-08", CurrentStreak: 5},
			want: StreakState{LastActivityDate: today, CurrentStreak: 1},
		},
		{
			name: "long gap restarts",
			prev: StreakState{LastActivityDate: "2023-11-02", CurrentStreak: 30},
			want: StreakState{LastActivityDate: today, CurrentStreak: 1},
		},
		{
			name: "future last activity is a no-op",
			prev: StreakState{LastActivityDate: "2024-06-12", CurrentStreak: 3},
			want: StreakState{LastActivityDate: "2024-06-12", CurrentStreak: 3},
		},
		{
			name: "corrupt stored date restarts",
			prev: StreakState{LastActivityDate: "not-a-date", CurrentStreak: 9},
			want: StreakState{LastActivityDate: today, CurrentStreak: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStreak(tt.prev, today))
		})
	}
}

func TestNextStreak_TwiceSameDay(t *testing.T) {
	today := "2024-06-10"
	first := NextStreak(StreakState{LastActivityDate: "2024-06-09", CurrentStreak: 5}, today)
	second := NextStreak(first, today)
	assert.Equal(t, first, second)
	assert.Equal(t, 6, second.CurrentStreak)
}

func TestStreakState_IsActive(t *testing.T) {
	s := StreakState{LastActivityDate: "2024-06-10", CurrentStreak: 3}
	assert.True(t, s.IsActive("2024-06-10"))
	assert.False(t, s.IsActive("2024-06-11"))
	assert.False(t, StreakState{}.IsActive("2024-06-10"))
}
