// internal/workers/assessment/extract-profile/models.go
package extractprofile

import "guidance-workers/internal/models"

type Input struct {
	UserID string                 `json:"userId"`
	Tests  []models.TestAnswerSet `json:"completedTests"`
}

type Output struct {
	Profile              models.NormalizedProfile `json:"normalizedProfile"`
	CompletedAssessments int                      `json:"completedAssessments"`
	MeanTestScore        float64                  `json:"meanTestScore"`
	StrongCategories     []string                 `json:"strongCategories"`
}
