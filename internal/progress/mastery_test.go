package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateMastery(t *testing.T) {
	tests := []struct {
		name          string
		questionCount int
		ratings       RecallRatings
		wantMastered  bool
		wantEvaluated bool
	}{
		{
			name:          "three got_it out of three is mastered",
			questionCount: 3,
			ratings:       RecallRatings{1: RatingGotIt, 2: RatingGotIt, 3: RatingGotIt},
			wantMastered:  true,
			wantEvaluated: true,
		},
		{
			name:          "two of three got_it is below threshold",
			questionCount: 3,
			ratings:       RecallRatings{1: RatingGotIt, 2: RatingGotIt, 3: RatingMissed},
			wantMastered:  false,
			wantEvaluated: true,
		},
		{
			name:          "four of five got_it meets 80 percent",
			questionCount: 5,
			ratings: RecallRatings{
				1: RatingGotIt, 2: RatingGotIt, 3: RatingGotIt,
				4: RatingGotIt, 5: RatingAlmost,
			},
			wantMastered:  true,
			wantEvaluated: true,
		},
		{
			name:          "almost does not count toward mastery",
			questionCount: 4,
			ratings:       RecallRatings{1: RatingAlmost, 2: RatingAlmost, 3: RatingAlmost},
			wantMastered:  false,
			wantEvaluated: true,
		},
		{
			name:          "fewer than three rated is not evaluated",
			questionCount: 5,
			ratings:       RecallRatings{1: RatingGotIt, 2: RatingGotIt},
			wantMastered:  false,
			wantEvaluated: false,
		},
		{
			name:          "fewer than three questions is not evaluated",
			questionCount: 2,
			ratings:       RecallRatings{1: RatingGotIt, 2: RatingGotIt},
			wantMastered:  false,
			wantEvaluated: false,
		},
		{
			name:          "no ratings",
			questionCount: 10,
			ratings:       RecallRatings{},
			wantMastered:  false,
			wantEvaluated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mastered, evaluated := EvaluateMastery(tt.questionCount, tt.ratings)
			assert.Equal(t, tt.wantEvaluated, evaluated)
			assert.Equal(t, tt.wantMastered, mastered)
		})
	}
}

func TestRecallRating_IsValid(t *testing.T) {
	assert.True(t, RatingGotIt.IsValid())
	assert.True(t, RatingAlmost.IsValid())
	assert.True(t, RatingMissed.IsValid())
	assert.False(t, RecallRating("perfect").IsValid())
	assert.False(t, RecallRating("").IsValid())
}
