// internal/workers/guidance/check-program-eligibility/models.go
package checkprogrameligibility

import "guidance-workers/internal/models"

type Input struct {
	UserID       string                      `json:"userId"`
	AverageGrade float64                     `json:"averageGrade,omitempty"`
	Grades       []models.GradeRecord        `json:"gradeRecords,omitempty"`
	Programs     []models.ProgramCatalogEntry `json:"programCatalog"`
}

// EligibilityResult is the verdict for one program. Programs whose grade
// gap is too large to recommend are reported with an empty status and
// Recommendable false rather than omitted.
type EligibilityResult struct {
	ProgramID     string                   `json:"programId"`
	ProgramName   string                   `json:"programName"`
	MinimumGrade  float64                  `json:"minimumGrade"`
	Status        models.EligibilityStatus `json:"eligibilityStatus,omitempty"`
	Gap           float64                  `json:"gradeGap"`
	Recommendable bool                     `json:"recommendable"`
}

type Output struct {
	AverageGrade  float64             `json:"averageGrade"`
	Results       []EligibilityResult `json:"eligibilityResults"`
	EligibleCount int                 `json:"eligibleCount"`
}
