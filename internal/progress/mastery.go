package progress

// RecallRating is a self-assessed confidence label on one quiz question.
type RecallRating string

const (
	RatingGotIt  RecallRating = "got_it"
	RatingAlmost RecallRating = "almost"
	RatingMissed RecallRating = "missed"
)

// IsValid reports whether r is one of the three known ratings.
func (r RecallRating) IsValid() bool {
	switch r {
	case RatingGotIt, RatingAlmost, RatingMissed:
		return true
	}
	return false
}

// RecallRatings maps a question id to its rating. Absence means unrated.
type RecallRatings map[int]RecallRating

const (
	// masteryMinRated is the minimum number of rated questions before
	// mastery is evaluated at all.
	masteryMinRated = 3
	// masteryThreshold is the got_it share required for mastery.
	masteryThreshold = 0.8
)

// EvaluateMastery derives the mastered flag for a document from its current
// ratings. evaluated is false when there are fewer than 3 questions or fewer
// than 3 rated questions; callers must leave the prior mastery record
// untouched in that case.
func EvaluateMastery(questionCount int, ratings RecallRatings) (mastered, evaluated bool) {
	if questionCount < masteryMinRated {
		return false, false
	}
	rated := len(ratings)
	if rated < masteryMinRated {
		return false, false
	}
	gotIt := 0
	for _, r := range ratings {
		if r == RatingGotIt {
			gotIt++
		}
	}
	return float64(gotIt)/float64(rated) >= masteryThreshold, true
}
