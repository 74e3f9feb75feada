// internal/matching/eligibility.go
package matching

import (
	"math"

	"guidance-workers/internal/models"
)

// Classification is the outcome of the eligibility ladder for one
// average/minimum pair.
type Classification struct {
	Status models.EligibilityStatus
	Score  float64
	Gap    float64
}

// Classify runs the grade-gap ladder. The rules are ordered and the ranges
// are adjacent, boundary-inclusive to the tighter tier (gap of exactly 0.5
// is close, exactly 1.0 is needs_improvement), so the evaluation order must
// not be rearranged. The second return is false when the gap is too large
// to recommend at all.
func Classify(averageGrade, minimumGrade float64) (Classification, bool) {
	gap := minimumGrade - averageGrade

	switch {
	case gap <= 0:
		return Classification{
			Status: models.EligibilityEligible,
			Score:  math.Min(100, 70+(-gap)*15),
			Gap:    gap,
		}, true
	case gap <= 0.5:
		return Classification{
			Status: models.EligibilityClose,
			Score:  75 - gap*20,
			Gap:    gap,
		}, true
	case gap <= 1.0:
		return Classification{
			Status: models.EligibilityNeedsWork,
			Score:  60 - gap*15,
			Gap:    gap,
		}, true
	case gap <= 1.5 && averageGrade >= 7.0:
		return Classification{
			Status: models.EligibilityAlternatives,
			Score:  45 - gap*10,
			Gap:    gap,
		}, true
	default:
		return Classification{Gap: gap}, false
	}
}
