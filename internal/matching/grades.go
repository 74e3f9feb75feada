// internal/matching/grades.go
package matching

import (
	"math"

	"guidance-workers/internal/models"
)

// gradeAverages keeps full-precision averages for internal comparisons.
// Display rounding happens only in SummarizeGrades.
type gradeAverages struct {
	overall   float64
	core      float64
	yearly    float64
	examBoard float64

	overallCount   int
	coreCount      int
	yearlyCount    int
	examBoardCount int
}

// aggregateGrades computes the average set from a grade list. Records whose
// numeric grade falls outside their grade-type range are skipped; a single
// malformed row never aborts the batch. Empty subsets average to 0.
func aggregateGrades(records []models.GradeRecord) gradeAverages {
	var (
		overallSum, coreSum, yearlySum, boardSum float64
		avg                                      gradeAverages
	)

	for _, rec := range records {
		if !rec.Valid() {
			continue
		}

		// Board-decision grades sit outside the subject ledger and only
		// feed the exam-board average.
		if rec.Type != models.GradeTypeBoardDecision {
			overallSum += rec.Grade
			avg.overallCount++
		}

		if rec.CoreSubject {
			coreSum += rec.Grade
			avg.coreCount++
		}

		if rec.Type == models.GradeTypeYearly {
			yearlySum += rec.Grade
			avg.yearlyCount++
		}

		if rec.Type == models.GradeTypeBoardDecision || rec.Type == models.GradeTypeAverage {
			boardSum += rec.Grade
			avg.examBoardCount++
		}
	}

	if avg.overallCount > 0 {
		avg.overall = overallSum / float64(avg.overallCount)
	}
	if avg.coreCount > 0 {
		avg.core = coreSum / float64(avg.coreCount)
	}
	if avg.yearlyCount > 0 {
		avg.yearly = yearlySum / float64(avg.yearlyCount)
	}
	if avg.examBoardCount > 0 {
		avg.examBoard = boardSum / float64(avg.examBoardCount)
	}
	return avg
}

// SummarizeGrades computes the display summary over a grade list. All
// averages are rounded to 2 decimals; empty input yields an all-zero
// summary rather than a division error.
func SummarizeGrades(records []models.GradeRecord) models.GradeSummary {
	avg := aggregateGrades(records)
	return models.GradeSummary{
		Overall:      round2(avg.overall),
		CoreSubjects: round2(avg.core),
		Yearly:       round2(avg.yearly),
		ExamBoard:    round2(avg.examBoard),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
