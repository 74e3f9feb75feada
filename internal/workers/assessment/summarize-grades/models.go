// internal/workers/assessment/summarize-grades/models.go
package summarizegrades

import "guidance-workers/internal/models"

type Input struct {
	UserID string               `json:"userId"`
	Grades []models.GradeRecord `json:"gradeRecords"`
}

type Output struct {
	Summary        models.GradeSummary `json:"gradeSummary"`
	RecordsUsed    int                 `json:"recordsUsed"`
	RecordsSkipped int                 `json:"recordsSkipped"`
}
