// internal/workers/guidance/match-careers/models.go
package matchcareers

import "guidance-workers/internal/models"

type Input struct {
	UserID  string                      `json:"userId"`
	Tests   []models.TestAnswerSet      `json:"completedTests,omitempty"`
	Careers []models.CareerCatalogEntry `json:"careerCatalog,omitempty"`
}

type Output struct {
	Recommendations []models.MatchResult `json:"careerRecommendations"`
	Count           int                  `json:"recommendationCount"`
	Fallback        bool                 `json:"fallbackUsed"`
}
