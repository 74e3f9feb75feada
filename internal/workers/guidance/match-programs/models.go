// internal/workers/guidance/match-programs/models.go
package matchprograms

import "guidance-workers/internal/models"

type Input struct {
	UserID   string                       `json:"userId"`
	Mode     string                       `json:"matchMode,omitempty"`
	Grades   []models.GradeRecord         `json:"gradeRecords,omitempty"`
	Tests    []models.TestAnswerSet       `json:"completedTests,omitempty"`
	Programs []models.ProgramCatalogEntry `json:"programCatalog,omitempty"`
}

type Output struct {
	Recommendations []models.MatchResult `json:"programRecommendations"`
	Count           int                  `json:"recommendationCount"`
	Mode            string               `json:"matchModeUsed"`
	Fallback        bool                 `json:"fallbackUsed"`
}
